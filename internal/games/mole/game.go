// Package mole implements Whack-a-Mole: a 3x3 grid of holes against a
// short session clock. Moles pop up on a random cadence and sink back
// down if not whacked in time; consecutive hits build a combo that
// multiplies the per-hit score.
package mole

import (
	"fmt"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/config"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/registry"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/sched"
)

// awardDivisor converts the final score to wallet points.
const awardDivisor = 10

// gridSize is the hole grid edge; cells map to digit keys 1..9 in
// reading order.
const gridSize = 3

// hitPoints is the base score per whacked mole before the combo
// multiplier.
const hitPoints = 10

// comboPerLevel is how many consecutive hits raise the multiplier by one.
const comboPerLevel = 5

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

// Game implements Whack-a-Mole.
type Game struct {
	cfg      config.MoleConfig
	rng      core.Rand
	tick     uint64
	timer    *sched.Queue
	tickRate int

	status      core.Status
	moles       [gridSize * gridSize]bool
	expiry      [gridSize * gridSize]*sched.Task
	cursor      int // Cell index 0..8
	score       int
	combo       int
	hits        int
	spawnTicker int
	ticksLeft   int

	screenW  int
	screenH  int
	tooSmall bool

	awardSent bool
}

// New creates a new Whack-a-Mole game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("mole", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mole"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Whack-a-Mole"
}

// Reset initializes/restarts the game into the waiting state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	acfg, err := config.Load(configPath)
	if err != nil {
		acfg = config.Default()
	}
	config.ApplyPreset(&acfg, difficultyPreset)
	g.cfg = acfg.Mole
	if g.cfg.SessionSecs < 1 || g.cfg.SpawnEveryTicks < 1 ||
		g.cfg.MinActiveTicks < 1 || g.cfg.MaxActiveTicks < g.cfg.MinActiveTicks {
		g.cfg = config.Default().Mole
	}

	g.rng = core.NewRand(cfg.Seed)
	g.tick = 0
	g.timer = sched.NewQueue()
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	g.status = core.StatusWaiting
	g.moles = [gridSize * gridSize]bool{}
	g.expiry = [gridSize * gridSize]*sched.Task{}
	g.cursor = gridSize * gridSize / 2
	g.score = 0
	g.combo = 0
	g.hits = 0
	g.spawnTicker = 0
	g.ticksLeft = g.cfg.SessionSecs * g.tickRate
	g.awardSent = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < 36 || g.screenH < 17
}

// secondsLeft converts the tick countdown to whole display seconds,
// rounding up so the clock only shows 0 when time is actually out.
func (g *Game) secondsLeft() int {
	if g.ticksLeft <= 0 {
		return 0
	}
	return (g.ticksLeft + g.tickRate - 1) / g.tickRate
}

// multiplier is the current combo score multiplier.
func (g *Game) multiplier() int {
	return 1 + g.combo/comboPerLevel
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
			g.status = core.StatusPlaying
		}
	case core.StatusPlaying:
		g.countDown(&res)
		if g.status != core.StatusPlaying {
			break
		}
		g.timer.Tick() // Mole lifetimes
		g.updateSpawner()
		g.handleInput(in)
	}

	res.State = g.State()
	return res
}

// countDown burns one tick of the session clock and ends the game when
// it reaches zero.
func (g *Game) countDown(res *core.StepResult) {
	g.ticksLeft--
	if g.ticksLeft > 0 {
		return
	}
	g.ticksLeft = 0
	g.endGame(res)
}

// updateSpawner pops a mole out of a random empty hole on the spawn
// cadence.
func (g *Game) updateSpawner() {
	g.spawnTicker++
	if g.spawnTicker < g.cfg.SpawnEveryTicks {
		return
	}
	g.spawnTicker = 0

	if g.rng.Float64() >= g.cfg.SpawnProb {
		return
	}

	var empty []int
	for i, up := range g.moles {
		if !up {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		return
	}

	cell := empty[g.rng.Intn(len(empty))]
	lifetime := g.cfg.MinActiveTicks + g.rng.Intn(g.cfg.MaxActiveTicks-g.cfg.MinActiveTicks+1)
	g.moles[cell] = true
	g.expiry[cell] = g.timer.After(uint64(lifetime), func() {
		// Sank back unwhacked
		g.moles[cell] = false
		g.expiry[cell] = nil
		g.combo = 0
	})
}

// handleInput moves the cursor and whacks cells. Digits address cells
// directly in reading order.
func (g *Game) handleInput(in core.InputFrame) {
	if d := in.Digit; d >= 1 && d <= gridSize*gridSize {
		g.cursor = d - 1
		g.whack(g.cursor)
		return
	}

	row, col := g.cursor/gridSize, g.cursor%gridSize
	switch {
	case in.Has(core.ActionUp):
		if row > 0 {
			row--
		}
	case in.Has(core.ActionDown):
		if row < gridSize-1 {
			row++
		}
	case in.Has(core.ActionLeft):
		if col > 0 {
			col--
		}
	case in.Has(core.ActionRight):
		if col < gridSize-1 {
			col++
		}
	case in.Has(core.ActionFire) || in.Has(core.ActionConfirm):
		g.whack(g.cursor)
		return
	}
	g.cursor = row*gridSize + col
}

// whack resolves one hammer strike. A hit cancels the mole's sink-back
// task so the combo survives; an empty hole breaks the combo.
func (g *Game) whack(cell int) {
	if !g.moles[cell] {
		g.combo = 0
		return
	}

	g.moles[cell] = false
	g.timer.Cancel(g.expiry[cell])
	g.expiry[cell] = nil

	g.combo++
	g.hits++
	g.score += hitPoints * g.multiplier()
}

// endGame transitions to gameover and emits the wallet award exactly
// once per session. There is no victory state; the clock always wins.
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
		Reason: fmt.Sprintf("mole score %d", g.score),
	}
}

// Hole cell geometry for rendering.
const (
	holeW   = 7
	holeH   = 3
	holeGap = 2
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	g.renderHUD(dst)

	gridW := gridSize*holeW + (gridSize-1)*holeGap
	gridX := (dst.Width() - gridW) / 2
	gridY := 3

	for i := range g.moles {
		x := gridX + (i%gridSize)*(holeW+holeGap)
		y := gridY + (i/gridSize)*(holeH+1)
		g.renderHole(dst, i, x, y)
	}

	g.renderOverlay(dst, gridY+gridSize*holeH+gridSize)
}

// renderHole draws one hole cell with its digit key and occupant.
func (g *Game) renderHole(dst *core.Screen, cell, x, y int) {
	dst.DrawBox(core.NewRect(x, y, holeW, holeH))
	dst.SetColored(x+1, y, rune('0'+cell+1), core.ColorGray)

	cx, cy := x+holeW/2, y+holeH/2
	if g.moles[cell] {
		dst.DrawTextColored(cx-1, cy, "(◉)", core.ColorBrightYellow)
	} else {
		dst.DrawTextColored(cx-1, cy, "(_)", core.ColorGray)
	}

	if g.cursor == cell && g.status == core.StatusPlaying {
		dst.SetColored(x-1, cy, '>', core.ColorBrightCyan)
		dst.SetColored(x+holeW, cy, '<', core.ColorBrightCyan)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Whack-a-Mole  Score: %d  Combo: %d (x%d)", g.score, g.combo, g.multiplier())
	dst.DrawText(0, 0, hud)

	clock := fmt.Sprintf("Time: %ds ", g.secondsLeft())
	clockColor := core.ColorDefault
	if g.secondsLeft() <= 5 {
		clockColor = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-len(clock)-1, 0, clock, clockColor)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws state messages below the grid.
func (g *Game) renderOverlay(dst *core.Screen, y int) {
	switch g.status {
	case core.StatusWaiting:
		dst.DrawTextCentered(y, "Press SPACE to start, keys 1-9 whack")
	case core.StatusGameOver:
		dst.DrawTextCentered(y, fmt.Sprintf("Time's up! Score: %d (%d hits)  |  Press R to restart", g.score, g.hits))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Status:   g.status,
		Score:    g.score,
		TimeLeft: g.secondsLeft(),
	}
}
