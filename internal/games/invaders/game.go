// Package invaders implements Space Invaders: waves of marching
// enemies descend toward the player's ship. Waves grow wider, deeper
// and faster; the session ends when bombs or the descending formation
// exhaust the ship's lives.
package invaders

import (
	"fmt"
	"strings"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/config"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/registry"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/sched"
)

// awardDivisor converts the final score to wallet points.
const awardDivisor = 15

// readyTicks is the pause before a wave starts marching.
const readyTicks = 60

// bombEvery throttles bomb descent to one cell every N ticks; player
// shots climb one cell every tick.
const bombEvery = 2

// killPointsBase is the score for one enemy on wave 1; each later wave
// adds killPointsPerWave.
const (
	killPointsBase    = 10
	killPointsPerWave = 2
)

// waveBonus is multiplied by the wave number when the wave is cleared.
const waveBonus = 100

// enemyColors bands the formation rows.
var enemyColors = []core.Color{
	core.ColorBrightMagenta,
	core.ColorBrightRed,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
}

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

// Game implements Space Invaders.
type Game struct {
	cfg   config.InvadersConfig
	rng   core.Rand
	tick  uint64
	timer *sched.Queue

	status core.Status
	wave   int
	score  int
	lives  int

	shipX int
	shipY int
	shots []core.Point
	bombs []core.Point

	form       *Formation
	moveTicker int
	bombTicker int

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool

	awardSent bool
}

// New creates a new Space Invaders game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes/restarts the game into the waiting state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	acfg, err := config.Load(configPath)
	if err != nil {
		acfg = config.Default()
	}
	config.ApplyPreset(&acfg, difficultyPreset)
	g.cfg = acfg.Invaders
	if g.cfg.Lives < 1 || g.cfg.MaxShots < 1 {
		g.cfg = config.Default().Invaders
	}

	g.rng = core.NewRand(cfg.Seed)
	g.tick = 0
	g.timer = sched.NewQueue()

	g.status = core.StatusWaiting
	g.wave = 1
	g.score = 0
	g.lives = g.cfg.Lives
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.shipY = g.screenH - 2
	g.shipX = g.screenW / 2
	g.shots = nil
	g.bombs = nil
	g.form = NewFormation(g.wave, g.screenW)
	g.moveTicker = 0
	g.bombTicker = 0
	g.paused = false
	g.awardSent = false
	g.tooSmall = g.screenW < 40 || g.screenH < 20
}

// moveEvery is the tick interval between formation moves; waves march
// faster until the floor of one move per three ticks.
func (g *Game) moveEvery() int {
	return max(12-2*g.wave, 3)
}

// killPoints is the score for one enemy on the current wave.
func (g *Game) killPoints() int {
	return killPointsBase + killPointsPerWave*(g.wave-1)
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
			g.beginReady()
		}
	case core.StatusShowing:
		// Wave intro pause; the formation holds position
		g.timer.Tick()
	case core.StatusPlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		g.timer.Tick()
		g.advancePlay(in, &res)
	}

	res.State = g.State()
	return res
}

// beginReady spawns the current wave's formation and pauses briefly
// before it starts marching.
func (g *Game) beginReady() {
	g.status = core.StatusShowing
	g.form = NewFormation(g.wave, g.screenW)
	g.shots = nil
	g.bombs = nil
	g.moveTicker = 0
	g.bombTicker = 0
	g.shipX = g.screenW / 2

	g.timer.After(readyTicks, func() {
		g.status = core.StatusPlaying
	})
}

// advancePlay runs one playing tick: ship, shots, formation, bombs.
func (g *Game) advancePlay(in core.InputFrame, res *core.StepResult) {
	g.moveShip(in)
	g.checkShipHit(res)
	if g.status != core.StatusPlaying {
		return
	}

	g.handleFire(in)
	g.advanceShots()
	if g.form.AliveCount() == 0 {
		g.clearWave()
		return
	}

	g.advanceFormation(res)
	if g.status != core.StatusPlaying {
		return
	}
	g.advanceBombs(res)
}

// moveShip slides the ship one cell per held direction key, keeping the
// three-cell sprite inside the arena.
func (g *Game) moveShip(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.shipX--
	case in.Has(core.ActionRight):
		g.shipX++
	}
	g.shipX = core.Clamp(g.shipX, 2, g.screenW-3)
}

// handleFire launches a shot from the ship's nose, capped at the
// configured number in flight.
func (g *Game) handleFire(in core.InputFrame) {
	if !in.Has(core.ActionFire) || len(g.shots) >= g.cfg.MaxShots {
		return
	}
	g.shots = append(g.shots, core.Point{X: g.shipX, Y: g.shipY - 1})
}

// advanceShots climbs every shot one cell and resolves enemy hits.
func (g *Game) advanceShots() {
	kept := g.shots[:0]
	for _, s := range g.shots {
		s.Y--
		if s.Y < 2 {
			continue
		}
		if row, col, ok := g.form.HitTest(s); ok {
			g.form.Kill(row, col)
			g.score += g.killPoints()
			continue
		}
		kept = append(kept, s)
	}
	g.shots = kept
}

// clearWave banks the wave bonus and spawns the next, larger wave.
func (g *Game) clearWave() {
	g.score += waveBonus * g.wave
	g.wave++
	g.beginReady()
}

// advanceFormation marches the enemies on their cadence. After a move
// the formation may have crossed the defense line, and may drop a bomb.
func (g *Game) advanceFormation(res *core.StepResult) {
	g.moveTicker++
	if g.moveTicker < g.moveEvery() {
		return
	}
	g.moveTicker = 0

	g.form.StepMove(1, g.screenW-2)

	if g.form.LowestAliveY() >= g.shipY-1 {
		g.loseLife(res, true)
		return
	}
	g.dropBomb()
}

// dropBomb rolls the per-move bomb chance and releases one from the
// bottom enemy of a random live column.
func (g *Game) dropBomb() {
	if g.rng.Float64() >= g.cfg.BombProb {
		return
	}
	cols := g.form.AliveColumns()
	if len(cols) == 0 {
		return
	}
	col := cols[g.rng.Intn(len(cols))]
	row := g.form.BottomAliveOfColumn(col)
	x, y := g.form.EnemyAt(row, col)
	g.bombs = append(g.bombs, core.Point{X: x, Y: y + 1})
}

// advanceBombs descends bombs on their throttle and checks the ship.
func (g *Game) advanceBombs(res *core.StepResult) {
	g.bombTicker++
	if g.bombTicker < bombEvery {
		return
	}
	g.bombTicker = 0

	kept := g.bombs[:0]
	for _, b := range g.bombs {
		b.Y++
		if b.Y > g.shipY {
			continue
		}
		kept = append(kept, b)
	}
	g.bombs = kept

	g.checkShipHit(res)
}

// checkShipHit resolves a bomb touching the ship sprite. All bombs are
// cleared on a hit so one explosion cannot chain into another.
func (g *Game) checkShipHit(res *core.StepResult) {
	for _, b := range g.bombs {
		if b.Y == g.shipY && core.Abs(b.X-g.shipX) <= 1 {
			g.bombs = nil
			g.loseLife(res, false)
			return
		}
	}
}

// loseLife takes one life. A defense-line breach additionally respawns
// the wave from the top.
func (g *Game) loseLife(res *core.StepResult, respawnWave bool) {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.endGame(res)
		return
	}
	if respawnWave {
		g.beginReady()
	}
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
		Reason: fmt.Sprintf("invaders score %d", g.score),
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	g.renderHUD(dst)

	for row := 0; row < g.form.Rows; row++ {
		for col := 0; col < g.form.Cols; col++ {
			if !g.form.Alive(row, col) {
				continue
			}
			x, y := g.form.EnemyAt(row, col)
			dst.DrawTextColored(x-1, y, "<W>", enemyColors[row%len(enemyColors)])
		}
	}

	for _, s := range g.shots {
		dst.SetColored(s.X, s.Y, '|', core.ColorBrightWhite)
	}
	for _, b := range g.bombs {
		dst.SetColored(b.X, b.Y, '•', core.ColorBrightRed)
	}

	if g.status != core.StatusWaiting {
		dst.DrawTextColored(g.shipX-1, g.shipY, "/A\\", core.ColorBrightCyan)
	}

	g.renderOverlay(dst)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(0, 0, fmt.Sprintf(" Score: %d", g.score))

	lives := "Lives: " + strings.Repeat("♥", g.lives)
	dst.DrawTextColored((dst.Width()-len("Lives: ")-g.lives)/2, 0, lives, core.ColorBrightRed)

	wave := fmt.Sprintf("Wave: %d ", g.wave)
	dst.DrawText(dst.Width()-len(wave)-1, 0, wave)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	cy := dst.Height() / 2
	switch g.status {
	case core.StatusWaiting:
		dst.DrawTextCentered(cy, "Press SPACE to start")
	case core.StatusShowing:
		dst.DrawTextCentered(cy, fmt.Sprintf("Wave %d  |  Get ready...", g.wave))
	case core.StatusGameOver:
		box := core.NewRect(dst.Width()/2-16, cy-1, 32, 3)
		dst.DrawRect(box, ' ')
		dst.DrawBox(box)
		dst.DrawTextCentered(cy, fmt.Sprintf("Game over! Score: %d", g.score))
	case core.StatusPlaying:
		if g.paused {
			dst.DrawTextCentered(cy, "Paused")
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Status: g.status,
		Score:  g.score,
		Lives:  g.lives,
		Round:  g.wave,
		Paused: g.paused,
	}
}
