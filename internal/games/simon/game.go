// Package simon implements Simon Says: a four-pad call-and-response
// memory game. Each round appends one random pad to the sequence and
// replays it; the player echoes the whole sequence back on the digit
// keys, and the first wrong pad ends the session.
package simon

import (
	"fmt"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/config"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/registry"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/sched"
)

// awardDivisor converts the final score to wallet points.
const awardDivisor = 4

// padCount is the palette size; pads map to digit keys 1..4.
const padCount = 4

// pressTicks is how long a pad stays lit after a player press.
const pressTicks = 6

// roundPauseTicks is the dark pause between a completed round and the
// next playback.
const roundPauseTicks = 30

// padDim and padLit are the idle and lit colors per pad.
var (
	padDim = [padCount]core.Color{core.ColorGreen, core.ColorRed, core.ColorYellow, core.ColorBlue}
	padLit = [padCount]core.Color{core.ColorBrightGreen, core.ColorBrightRed, core.ColorBrightYellow, core.ColorBrightBlue}
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets a custom configuration file path.
func SetConfigPath(path string) {
	configPath = path
}

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset = config.DifficultyNormal

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements Simon Says.
type Game struct {
	cfg   config.SimonConfig
	rng   core.Rand
	tick  uint64
	timer *sched.Queue

	status   core.Status
	sequence []int // Pad indices, append-only
	progress int   // Next sequence index the player must press
	score    int
	litPad   int // -1 when all pads are dark
	flash    *sched.Task

	screenW  int
	screenH  int
	tooSmall bool

	awardSent bool
}

// New creates a new Simon Says game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("simon", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "simon"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Simon Says"
}

// Reset initializes/restarts the game into the waiting state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	acfg, err := config.Load(configPath)
	if err != nil {
		acfg = config.Default()
	}
	config.ApplyPreset(&acfg, difficultyPreset)
	g.cfg = acfg.Simon
	if g.cfg.LitTicks < 1 || g.cfg.GapTicks < 0 {
		g.cfg = config.Default().Simon
	}

	g.rng = core.NewRand(cfg.Seed)
	g.tick = 0
	g.timer = sched.NewQueue()

	g.status = core.StatusWaiting
	g.sequence = nil
	g.progress = 0
	g.score = 0
	g.litPad = -1
	g.flash = nil
	g.awardSent = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < 36 || g.screenH < 16
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	res := core.StepResult{}

	if g.tooSmall {
		res.State = g.State()
		return res
	}

	switch g.status {
	case core.StatusWaiting:
		if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
			g.beginRound()
		}
	case core.StatusShowing:
		// Playback: pads light on the timer, input is ignored
		g.timer.Tick()
	case core.StatusPlaying:
		g.timer.Tick()
		g.handlePress(in, &res)
	}

	res.State = g.State()
	return res
}

// beginRound appends one random pad and replays the whole sequence.
func (g *Game) beginRound() {
	g.sequence = append(g.sequence, g.rng.Intn(padCount))
	g.startPlayback()
}

// startPlayback schedules the lit/dark chain for the full sequence and
// hands control back to the player when it ends.
func (g *Game) startPlayback() {
	g.status = core.StatusShowing
	g.progress = 0
	g.litPad = -1
	g.flash = nil

	step := uint64(g.cfg.LitTicks + g.cfg.GapTicks)
	for i, pad := range g.sequence {
		at := uint64(i) * step
		g.timer.After(at, func() { g.litPad = pad })
		g.timer.After(at+uint64(g.cfg.LitTicks), func() { g.litPad = -1 })
	}
	g.timer.After(uint64(len(g.sequence))*step, func() {
		g.status = core.StatusPlaying
	})
}

// handlePress checks one echoed pad against the sequence.
func (g *Game) handlePress(in core.InputFrame, res *core.StepResult) {
	if in.Digit < 1 || in.Digit > padCount {
		return
	}
	pad := in.Digit - 1

	if pad != g.sequence[g.progress] {
		g.litPad = pad
		g.endGame(res)
		return
	}

	g.flashPad(pad)
	g.progress++
	if g.progress == len(g.sequence) {
		g.completeRound()
	}
}

// flashPad lights a pad briefly as press feedback. A rapid next press
// replaces the pending unlight.
func (g *Game) flashPad(pad int) {
	g.timer.Cancel(g.flash)
	g.litPad = pad
	g.flash = g.timer.After(pressTicks, func() { g.litPad = -1 })
}

// completeRound banks the round score and schedules the next, longer
// playback after a short dark pause.
func (g *Game) completeRound() {
	g.score += 10 * len(g.sequence)
	g.status = core.StatusShowing
	g.timer.After(roundPauseTicks, func() {
		g.beginRound()
	})
}

// endGame transitions to gameover and emits the wallet award exactly
// once per session.
func (g *Game) endGame(res *core.StepResult) {
	g.status = core.StatusGameOver
	g.timer.CancelAll()

	if g.awardSent {
		return
	}
	g.awardSent = true

	points := g.score / awardDivisor
	if points <= 0 {
		return
	}
	res.Award = &core.AwardEvent{
		Points: points,
		Reason: fmt.Sprintf("simon score %d", g.score),
	}
}

// Pad cell geometry for rendering.
const (
	padW   = 10
	padH   = 4
	padGap = 2
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	g.renderHUD(dst)

	gridW := 2*padW + padGap
	gridX := (dst.Width() - gridW) / 2
	gridY := 4

	for i := 0; i < padCount; i++ {
		x := gridX + (i%2)*(padW+padGap)
		y := gridY + (i/2)*(padH+1)
		g.renderPad(dst, i, x, y)
	}

	g.renderOverlay(dst, gridY+2*padH+2)
}

// renderPad draws one pad, filled while lit.
func (g *Game) renderPad(dst *core.Screen, pad, x, y int) {
	r := core.NewRect(x, y, padW, padH)
	if g.litPad == pad {
		dst.DrawRectColored(r, '█', padLit[pad])
		return
	}
	dst.DrawBox(r)
	dst.DrawTextColored(x+padW/2, y+padH/2, fmt.Sprintf("%d", pad+1), padDim[pad])
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(0, 0, fmt.Sprintf(" Simon Says  Score: %d", g.score))

	round := fmt.Sprintf("Round: %d ", len(g.sequence))
	dst.DrawText(dst.Width()-len(round)-1, 0, round)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws state messages below the pads.
func (g *Game) renderOverlay(dst *core.Screen, y int) {
	switch g.status {
	case core.StatusWaiting:
		dst.DrawTextCentered(y, "Press SPACE to start")
	case core.StatusShowing:
		dst.DrawTextCentered(y, "Watch the sequence...")
	case core.StatusPlaying:
		dst.DrawTextCentered(y, fmt.Sprintf("Your turn: %d/%d (keys 1-4)", g.progress, len(g.sequence)))
	case core.StatusGameOver:
		dst.DrawTextCentered(y, fmt.Sprintf("Wrong pad! Score: %d  |  Press R to restart", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Status: g.status,
		Score:  g.score,
		Round:  len(g.sequence),
	}
}
