// Package breakout implements Breakout: a paddle, a single ball on
// fixed-point physics and a regenerating brick wall. Levels cycle
// endlessly, each one adding rows and ball speed.
package breakout

import (
	"fmt"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/config"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/registry"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/sched"
)

// awardDivisor converts the final score to wallet points.
const awardDivisor = 10

// serveTicks is the "Get ready" countdown before the ball can be served.
const serveTicks = 60

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
)

// Brick row colors, top to bottom.
var brickColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
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

// Game implements the Breakout game.
type Game struct {
	cfg   config.BreakoutConfig
	tick  uint64
	timer *sched.Queue

	status core.Status
	score  int
	lives  int
	level  int // 1-based

	paddle    *Paddle
	ball      *Ball
	field     *BrickField
	ballSpeed Fixed // Current base ball speed

	// Layout (computed from screen size)
	brickAreaTop int
	brickWidth   int
	paddleY      int

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool

	awardSent bool
}

// New creates a new Breakout game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes/restarts the game into the waiting state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	acfg, err := config.Load(configPath)
	if err != nil {
		acfg = config.Default()
	}
	config.ApplyPreset(&acfg, difficultyPreset)
	g.cfg = acfg.Breakout
	if g.cfg.Physics.BallSpeed <= 0 || g.cfg.Paddle.Width <= 0 || g.cfg.Gameplay.Lives <= 0 {
		g.cfg = config.Default().Breakout
	}

	g.tick = 0
	g.timer = sched.NewQueue()
	g.status = core.StatusWaiting
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.paused = false
	g.awardSent = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.ballSpeed = Fixed(g.cfg.Physics.BallSpeed)

	g.tooSmall = g.screenW < 30 || g.screenH < 15
	if g.tooSmall {
		return
	}

	// Layout: HUD takes the top 2 rows, paddle sits 3 rows from the bottom
	g.brickAreaTop = 2
	g.brickWidth = g.screenW / FieldCols
	g.paddleY = g.screenH - 3

	g.field = NewBrickField(g.level)
	g.paddle = &Paddle{
		X:     ToFixed((g.screenW - g.cfg.Paddle.Width) / 2),
		Y:     g.paddleY,
		Width: g.cfg.Paddle.Width,
	}
	g.ball = &Ball{Stuck: true}
	g.stickBallToPaddle()
}

// stickBallToPaddle parks the ball on top of the paddle center.
func (g *Game) stickBallToPaddle() {
	g.ball.X = g.paddle.CenterX()
	g.ball.Y = ToFixed(g.paddle.Y - 1)
	g.ball.VX = 0
	g.ball.VY = 0
}

// beginServe runs the pre-serve countdown, after which the ball rides
// the paddle until launched.
func (g *Game) beginServe() {
	g.status = core.StatusShowing
	g.ball.Stuck = true
	g.stickBallToPaddle()
	g.timer.After(serveTicks, func() {
		g.status = core.StatusPlaying
	})
}

// launchBall sends the stuck ball off with a slight horizontal bias.
func (g *Game) launchBall() {
	g.ball.Stuck = false
	g.ball.VX = g.ballSpeed / 4
	g.ball.VY = -g.ballSpeed
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
			g.beginServe()
		}
	case core.StatusShowing:
		// Countdown; input is ignored, ball follows the paddle
		g.timer.Tick()
		g.stickBallToPaddle()
	case core.StatusPlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		g.timer.Tick()
		g.movePaddle(in)

		if g.ball.Stuck {
			g.stickBallToPaddle()
			if in.Has(core.ActionFire) {
				g.launchBall()
			}
			break
		}

		g.advanceBall(&res)
	}

	res.State = g.State()
	return res
}

// movePaddle applies horizontal input, clamped to the playfield.
func (g *Game) movePaddle(in core.InputFrame) {
	speed := Fixed(g.cfg.Physics.PaddleSpeed)

	if in.Has(core.ActionLeft) {
		g.paddle.X = g.paddle.X.Sub(speed)
	}
	if in.Has(core.ActionRight) {
		g.paddle.X = g.paddle.X.Add(speed)
	}

	minX := ToFixed(1)
	maxX := ToFixed(g.screenW - g.paddle.Width - 1)
	g.paddle.X = ClampFixed(g.paddle.X, minX, maxX)
}

// advanceBall moves the ball and resolves wall, paddle and brick contact.
func (g *Game) advanceBall(res *core.StepResult) {
	g.ball.Move()

	side, fellOff := CheckWallCollision(g.ball, g.screenW, g.screenH)
	if fellOff {
		g.loseLife(res)
		return
	}
	if side != CollisionNone {
		ApplyCollisionBounce(g.ball, side)
	}

	if CheckPaddleCollision(g.ball, g.paddle, g.ballSpeed) {
		return
	}

	if row, col, ok := FindBrickHit(g.ball, g.field, g.brickAreaTop, g.brickWidth); ok {
		g.field.Bricks[row][col].Alive = false
		g.score += g.cfg.Gameplay.BrickPoints
		g.ball.BounceY()

		if g.field.CountAlive() == 0 {
			g.advanceLevel()
		}
	}
}

// loseLife handles the ball falling off the bottom.
func (g *Game) loseLife(res *core.StepResult) {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.endGame(res)
		return
	}
	g.beginServe()
}

// advanceLevel rebuilds the wall one level up and speeds the ball up.
func (g *Game) advanceLevel() {
	g.score += g.cfg.Gameplay.LevelBonus
	g.level++

	g.ballSpeed = g.ballSpeed.Add(Fixed(g.cfg.Physics.SpeedStep))
	maxSpeed := Fixed(g.cfg.Physics.MaxBallSpeed)
	if g.ballSpeed > maxSpeed {
		g.ballSpeed = maxSpeed
	}

	g.field = NewBrickField(g.level)
	g.beginServe()
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
		Reason: fmt.Sprintf("breakout score %d", g.score),
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Need 30x15")
		return
	}

	g.renderHUD(dst)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives and level on the top rows.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	levelText := fmt.Sprintf("Level: %d", g.level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBricks draws the standing bricks, one color band per row.
func (g *Game) renderBricks(dst *core.Screen) {
	for row := range g.field.Rows {
		color := brickColors[row%len(brickColors)]
		for col := range g.field.Cols {
			if !g.field.Bricks[row][col].Alive {
				continue
			}

			screenY := g.brickAreaTop + row
			screenX := col * g.brickWidth
			for dx := range g.brickWidth {
				if screenX+dx < dst.Width() {
					dst.SetColored(screenX+dx, screenY, '█', color)
				}
			}
		}
	}
}

// renderPaddle draws the paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	paddleX := g.paddle.CellX()
	for i := range g.paddle.Width {
		if paddleX+i < dst.Width() {
			dst.SetColored(paddleX+i, g.paddle.Y, PaddleChar, core.ColorBrightWhite)
		}
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	x := g.ball.CellX()
	y := g.ball.CellY()
	if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
		dst.SetColored(x, y, BallChar, core.ColorBrightYellow)
	}
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.status == core.StatusWaiting:
		g.drawCenteredBox(dst, "Breakout", "Press SPACE to start")
	case g.status == core.StatusShowing:
		dst.DrawTextCentered(dst.Height()-1, "Get ready...")
	case g.status == core.StatusPlaying && g.ball.Stuck:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
	case g.status == core.StatusGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Status: g.status,
		Score:  g.score,
		Lives:  g.lives,
		Round:  g.level,
		Paused: g.paused,
	}
}
