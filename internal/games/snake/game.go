// Package snake implements Snake on a single bounded arena: grid
// movement on a tick divider, buffered turns, food growth and
// wall/self collision.
package snake

import (
	"fmt"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/config"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/registry"
)

// awardDivisor converts the final score to wallet points.
const awardDivisor = 2

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Game implements the Snake game.
type Game struct {
	cfg  config.SnakeConfig
	rng  core.Rand
	tick uint64

	status     core.Status
	score      int
	moveTicker int // Counts ticks until next move

	// Snake state
	snake     []core.Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction, applied on the next move
	growing   bool      // If true, don't remove tail on next move
	food      core.Point

	// Arena placement
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	// Screen dimensions
	screenW int
	screenH int

	paused    bool
	tooSmall  bool
	awardSent bool
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

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game into the waiting state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	acfg, err := config.Load(configPath)
	if err != nil {
		acfg = config.Default()
	}
	config.ApplyPreset(&acfg, difficultyPreset)
	g.cfg = acfg.Snake
	if g.cfg.GridWidth <= 4 || g.cfg.GridHeight <= 4 {
		g.cfg = config.Default().Snake
	}
	if g.cfg.MoveEvery < 1 {
		g.cfg.MoveEvery = 1
	}

	g.rng = core.NewRand(cfg.Seed)
	g.tick = 0
	g.status = core.StatusWaiting
	g.score = 0
	g.moveTicker = 0
	g.paused = false
	g.awardSent = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2 // Top HUD lines

	// Arena must fit inside the screen with its border
	requiredW := g.cfg.GridWidth + 2
	requiredH := g.cfg.GridHeight + g.hudHeight + 2
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	if g.tooSmall {
		return
	}

	// Center the arena below the HUD
	g.mapOffsetX = (g.screenW - g.cfg.GridWidth) / 2
	g.mapOffsetY = g.hudHeight + 1

	g.initSnake()
	g.spawnFood()
}

// initSnake places a 3-segment snake heading right near the arena center.
func (g *Game) initSnake() {
	startX := g.cfg.GridWidth / 3
	startY := g.cfg.GridHeight / 2

	g.snake = []core.Point{
		{X: startX + 2, Y: startY}, // Head
		{X: startX + 1, Y: startY},
		{X: startX, Y: startY},
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.growing = false
}

// spawnFood places food at a random empty cell, never on the snake.
func (g *Game) spawnFood() {
	var emptyCells []core.Point
	for y := 0; y < g.cfg.GridHeight; y++ {
		for x := 0; x < g.cfg.GridWidth; x++ {
			p := core.Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		// Snake fills the arena - no space for food
		g.food = core.Point{X: -1, Y: -1}
		return
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	res := core.StepResult{}

	if g.tooSmall {
		res.State = g.State()
		return res
	}

	switch g.status {
	case core.StatusWaiting:
		if input.Has(core.ActionFire) || input.Has(core.ActionConfirm) {
			g.status = core.StatusPlaying
		}
	case core.StatusPlaying:
		if input.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}

		// Buffer direction input for the next move
		g.processInput(input)

		// Move snake on tick interval
		g.moveTicker++
		if g.moveTicker >= g.cfg.MoveEvery {
			g.moveTicker = 0
			g.moveSnake(&res)
		}
	}

	res.State = g.State()
	return res
}

// processInput handles direction changes.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	// Prevent instant reversal into the own neck
	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake moves the snake one cell in the current direction.
func (g *Game) moveSnake(res *core.StepResult) {
	if len(g.snake) == 0 {
		return
	}

	// Apply buffered direction
	g.direction = g.nextDir

	// Calculate new head position
	head := g.snake[0]
	var newHead core.Point
	switch g.direction {
	case DirUp:
		newHead = head.Add(0, -1)
	case DirDown:
		newHead = head.Add(0, 1)
	case DirLeft:
		newHead = head.Add(-1, 0)
	case DirRight:
		newHead = head.Add(1, 0)
	}

	// Wall collision
	if newHead.X < 0 || newHead.X >= g.cfg.GridWidth ||
		newHead.Y < 0 || newHead.Y >= g.cfg.GridHeight {
		g.endGame(res)
		return
	}

	// Self collision (excluding tail if not growing, since it will move)
	checkLen := len(g.snake)
	if !g.growing && checkLen > 0 {
		checkLen-- // Tail will be removed
	}
	for i := range checkLen {
		if g.snake[i] == newHead {
			g.endGame(res)
			return
		}
	}

	// Move snake: add new head
	g.snake = append([]core.Point{newHead}, g.snake...)

	// Food collision grows the snake by one
	if newHead == g.food {
		g.score += g.cfg.FoodPoints
		g.growing = true // Don't remove tail this move
		g.spawnFood()
	}

	// Remove tail unless growing
	if g.growing {
		g.growing = false
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// endGame enters the terminal state and emits the wallet award.
func (g *Game) endGame(res *core.StepResult) {
	g.status = core.StatusGameOver

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
		Reason: fmt.Sprintf("snake score %d", g.score),
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Arena border
	dst.DrawBox(core.Rect{
		X: g.mapOffsetX - 1,
		Y: g.mapOffsetY - 1,
		W: g.cfg.GridWidth + 2,
		H: g.cfg.GridHeight + 2,
	})

	// Snake
	for i, seg := range g.snake {
		sx := g.mapOffsetX + seg.X
		sy := g.mapOffsetY + seg.Y
		if i == 0 {
			dst.SetColored(sx, sy, 'O', core.ColorBrightGreen) // Head
		} else {
			dst.SetColored(sx, sy, 'o', core.ColorGreen) // Body
		}
	}

	// Food
	if g.food.X >= 0 && g.food.Y >= 0 {
		dst.SetColored(g.mapOffsetX+g.food.X, g.mapOffsetY+g.food.Y, '*', core.ColorBrightRed)
	}

	// Overlays
	switch {
	case g.status == core.StatusWaiting:
		g.renderOverlay(dst, "Snake", "Press SPACE to start")
	case g.status == core.StatusGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d", g.score, len(g.snake))
	dst.DrawText(0, 0, hud)

	// Separator
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Clear area behind overlay
	dst.DrawRect(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, ' ')
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	// Draw text
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Status: g.status,
		Score:  g.score,
		Paused: g.paused,
	}
}
