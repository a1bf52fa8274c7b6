// Package connect4 implements Connect Four against a scripted CPU
// opponent. The human drops red discs, the CPU answers after a short
// thinking pause with a win/block/center-biased move.
package connect4

import (
	"fmt"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/config"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/registry"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/sched"
)

// awardDivisor converts the final score to wallet points.
const awardDivisor = 4

// result is the session outcome from the human player's side.
type result int

const (
	resultNone result = iota
	resultWin
	resultLoss
	resultTie
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets a custom configuration file path.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements Connect Four.
type Game struct {
	cfg   config.Connect4Config
	rng   core.Rand
	tick  uint64
	timer *sched.Queue

	status      core.Status
	board       Board
	cursor      int
	humanPieces int
	score       int
	outcome     result
	winLine     []core.Point

	screenW  int
	screenH  int
	tooSmall bool

	awardSent    bool
	pendingAward *core.AwardEvent
}

// New creates a new Connect Four game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("connect4", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "connect4"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Connect Four"
}

// Reset initializes/restarts the game into the waiting state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	acfg, err := config.Load(configPath)
	if err != nil {
		acfg = config.Default()
	}
	g.cfg = acfg.Connect4
	if g.cfg.ThinkTicks < 0 {
		g.cfg.ThinkTicks = 0
	}

	g.rng = core.NewRand(cfg.Seed)
	g.tick = 0
	g.timer = sched.NewQueue()
	g.status = core.StatusWaiting
	g.board = Board{}
	g.cursor = BoardCols / 2
	g.humanPieces = 0
	g.score = 0
	g.outcome = resultNone
	g.winLine = nil
	g.awardSent = false
	g.pendingAward = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < 40 || g.screenH < 20
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
		g.handleTurn(in)
	case core.StatusShowing:
		// CPU thinking pause; the scheduled move fires from the timer
		g.timer.Tick()
	}

	if g.pendingAward != nil {
		res.Award = g.pendingAward
		g.pendingAward = nil
	}
	res.State = g.State()
	return res
}

// handleTurn processes the human player's column selection and drop.
func (g *Game) handleTurn(in core.InputFrame) {
	drop := -1

	switch {
	case in.Digit >= 1 && in.Digit <= BoardCols:
		g.cursor = in.Digit - 1
		drop = g.cursor
	case in.Has(core.ActionLeft):
		if g.cursor > 0 {
			g.cursor--
		}
	case in.Has(core.ActionRight):
		if g.cursor < BoardCols-1 {
			g.cursor++
		}
	case in.Has(core.ActionFire) || in.Has(core.ActionConfirm):
		drop = g.cursor
	}

	if drop >= 0 {
		g.humanDrop(drop)
	}
}

// humanDrop places the human disc and hands the turn to the CPU.
// Full columns are silently ignored.
func (g *Game) humanDrop(col int) {
	if _, ok := g.board.Drop(col, HumanDisc); !ok {
		return
	}
	g.humanPieces++
	g.score = g.cfg.PiecePoints * g.humanPieces

	if line := g.board.FindWin(HumanDisc); line != nil {
		g.winLine = line
		g.finish(resultWin)
		return
	}
	if g.board.Full() {
		g.finish(resultTie)
		return
	}

	g.status = core.StatusShowing
	g.timer.After(uint64(g.cfg.ThinkTicks), g.aiMove)
}

// aiMove plays the CPU disc after the thinking pause.
func (g *Game) aiMove() {
	col := BestMove(&g.board, g.rng, g.cfg.CenterWeight)
	if col < 0 {
		g.finish(resultTie)
		return
	}
	g.board.Drop(col, AIDisc)

	if line := g.board.FindWin(AIDisc); line != nil {
		g.winLine = line
		g.finish(resultLoss)
		return
	}
	if g.board.Full() {
		g.finish(resultTie)
		return
	}

	g.status = core.StatusPlaying
}

// finish enters the terminal state and queues the wallet award.
func (g *Game) finish(r result) {
	g.outcome = r

	base := 0
	switch r {
	case resultWin:
		base = g.cfg.WinPoints
		g.status = core.StatusVictory
	case resultTie:
		base = g.cfg.TiePoints
		g.status = core.StatusGameOver
	case resultLoss:
		g.status = core.StatusGameOver
	}
	g.score = base + g.cfg.PiecePoints*g.humanPieces

	if g.awardSent {
		return
	}
	g.awardSent = true

	points := g.score / awardDivisor
	if points <= 0 {
		return
	}
	g.pendingAward = &core.AwardEvent{
		Points: points,
		Reason: fmt.Sprintf("connect4 score %d", g.score),
	}
}

// Cell geometry for rendering: 4 columns wide, 2 rows tall per cell.
const (
	cellW = 4
	cellH = 2
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Need 40x20")
		return
	}

	g.renderHUD(dst)

	boardW := BoardCols*cellW + 1
	boardH := BoardRows*cellH + 1
	boardX := (dst.Width() - boardW) / 2
	boardY := 4

	// Cursor marker and column numbers above the board
	if g.status == core.StatusPlaying {
		dst.SetColored(boardX+g.cursor*cellW+cellW/2, boardY-2, '▼', core.ColorBrightRed)
	}
	for col := range BoardCols {
		dst.Set(boardX+col*cellW+cellW/2, boardY-1, rune('1'+col))
	}

	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH))

	for row := range BoardRows {
		for col := range BoardCols {
			x := boardX + col*cellW + cellW/2
			y := boardY + 1 + row*cellH
			switch g.board.At(row, col) {
			case HumanDisc:
				dst.SetColored(x, y, '●', core.ColorBrightRed)
			case AIDisc:
				dst.SetColored(x, y, '●', core.ColorBrightYellow)
			default:
				dst.SetColored(x, y, '·', core.ColorGray)
			}
		}
	}

	// Highlight the winning line
	for _, p := range g.winLine {
		x := boardX + p.X*cellW + cellW/2
		y := boardY + 1 + p.Y*cellH
		dst.SetColored(x, y, '◉', core.ColorBrightWhite)
	}

	g.renderOverlay(dst, boardY+boardH)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Connect Four  Score: %d", g.score))
	legend := "You: red  CPU: yellow"
	dst.DrawText(dst.Width()-len(legend)-1, 0, legend)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws state messages below the board.
func (g *Game) renderOverlay(dst *core.Screen, y int) {
	switch g.status {
	case core.StatusWaiting:
		dst.DrawTextCentered(y+1, "Press SPACE to start")
	case core.StatusShowing:
		dst.DrawTextCentered(y+1, "CPU is thinking...")
	case core.StatusPlaying:
		dst.DrawTextCentered(y+1, "1-7 or arrows + SPACE to drop")
	case core.StatusVictory:
		dst.DrawTextCentered(y+1, fmt.Sprintf("You win! Score: %d  |  Press R to restart", g.score))
	case core.StatusGameOver:
		if g.outcome == resultTie {
			dst.DrawTextCentered(y+1, fmt.Sprintf("Tie game. Score: %d  |  Press R to restart", g.score))
		} else {
			dst.DrawTextCentered(y+1, fmt.Sprintf("CPU wins. Score: %d  |  Press R to restart", g.score))
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Status: g.status,
		Score:  g.score,
	}
}
