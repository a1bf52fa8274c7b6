// Package t2048 implements the 2048 sliding-tile game: slide, merge,
// spawn, and a configurable win tile with keep-playing support.
package t2048

import (
	"fmt"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/config"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/registry"
)

// awardDivisor converts the final score to wallet points.
const awardDivisor = 20

// Game implements the 2048 puzzle game.
type Game struct {
	cfg  config.T2048Config
	rng  core.Rand
	tick uint64

	status core.Status
	score  int
	moves  int
	board  Board

	// wonOnce latches after the win tile is first reached; further
	// terminal checks fall back to the no-moves-left predicate only.
	wonOnce   bool
	awardSent bool

	// Screen dimensions
	screenW int
	screenH int

	tooSmall      bool
	moveProcessed bool // Prevent multiple moves per tick
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets a custom configuration file path.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new 2048 game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game into the waiting state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	acfg, err := config.Load(configPath)
	if err != nil {
		acfg = config.Default()
	}
	g.cfg = acfg.T2048
	if g.cfg.WinValue <= 0 {
		g.cfg.WinValue = config.Default().T2048.WinValue
	}

	g.rng = core.NewRand(cfg.Seed)
	g.tick = 0
	g.status = core.StatusWaiting
	g.score = 0
	g.moves = 0
	g.wonOnce = false
	g.awardSent = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.moveProcessed = false

	// Fresh board with two starting tiles
	g.board = Board{}
	g.spawnTile()
	g.spawnTile()

	g.checkScreenSize()
}

// spawnTile spawns a new tile (2 or 4) in a random empty cell.
func (g *Game) spawnTile() {
	emptyCells := EmptyCells(g.board)
	if len(emptyCells) == 0 {
		return
	}

	// Pick random empty cell
	cell := emptyCells[g.rng.Intn(len(emptyCells))]

	// Determine value (90% 2, 10% 4 by default)
	value := 2
	if g.rng.Float64() < g.cfg.SpawnFourProb {
		value = 4
	}

	g.board[cell.Y][cell.X] = value
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: board (21 wide, 9 tall) + HUD (2 lines)
	minW := 25
	minH := 12
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

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
	case core.StatusVictory:
		// The player may keep playing past the win tile
		if in.Has(core.ActionConfirm) {
			g.status = core.StatusPlaying
		}
	case core.StatusPlaying:
		g.processMove(in, &res)
	}

	res.State = g.State()
	return res
}

// processMove handles a directional move, if one was input this tick.
func (g *Game) processMove(in core.InputFrame, res *core.StepResult) {
	var dir Direction
	moved := false

	switch {
	case in.Has(core.ActionUp):
		dir = DirUp
		moved = true
	case in.Has(core.ActionDown):
		dir = DirDown
		moved = true
	case in.Has(core.ActionLeft):
		dir = DirLeft
		moved = true
	case in.Has(core.ActionRight):
		dir = DirRight
		moved = true
	}

	if !moved || g.moveProcessed {
		return
	}
	g.moveProcessed = true

	newBoard, scoreGained, changed := Slide(g.board, dir)
	if !changed {
		// Move that changes nothing: no spawn, no score, silently ignored
		return
	}

	g.board = newBoard
	g.score += scoreGained
	g.moves++

	// Exactly one new tile per accepted move
	g.spawnTile()

	if !g.wonOnce && MaxTile(g.board) >= g.cfg.WinValue {
		g.wonOnce = true
		g.status = core.StatusVictory
		res.Award = g.award()
		return
	}

	if IsGameOver(g.board) {
		g.status = core.StatusGameOver
		res.Award = g.award()
	}
}

// award builds the once-per-session wallet event.
func (g *Game) award() *core.AwardEvent {
	if g.awardSent {
		return nil
	}
	g.awardSent = true

	points := g.score / awardDivisor
	if points <= 0 {
		return nil
	}
	return &core.AwardEvent{
		Points: points,
		Reason: fmt.Sprintf("2048 score %d", g.score),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Status: g.status,
		Score:  g.score,
	}
}
