// Package memory implements Memory Match: a grid of face-down card
// pairs against a countdown clock. Mismatched flips stay revealed for a
// short lockout before turning back.
package memory

import (
	"fmt"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/config"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/registry"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/sched"
)

// awardDivisor converts the final score to wallet points.
const awardDivisor = 10

// matchPoints is scored per completed pair.
const matchPoints = 100

// gridCols is the fixed card grid width; rows follow from the pair count.
const gridCols = 4

// cardSymbols is the pool the deck draws from. Pair counts beyond the
// pool fall back to the default config.
var cardSymbols = []rune{'♠', '♥', '♦', '♣', '★', '☀', '☾', '♪', '☂', '⚑'}

// Card is one cell of the grid.
type Card struct {
	Symbol  rune
	FaceUp  bool
	Matched bool
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

// Game implements Memory Match.
type Game struct {
	cfg      config.MemoryConfig
	rng      core.Rand
	tick     uint64
	timer    *sched.Queue
	tickRate int

	status    core.Status
	cards     [][]Card
	rows      int
	cursor    core.Point
	first     core.Point // First card of the current attempt
	firstUp   bool
	matches   int
	moves     int // Completed two-card attempts
	score     int
	ticksLeft int

	screenW  int
	screenH  int
	tooSmall bool

	awardSent    bool
	pendingAward *core.AwardEvent
}

// New creates a new Memory Match game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory Match"
}

// Reset initializes/restarts the game into the waiting state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	acfg, err := config.Load(configPath)
	if err != nil {
		acfg = config.Default()
	}
	config.ApplyPreset(&acfg, difficultyPreset)
	g.cfg = acfg.Memory
	if g.cfg.Pairs < 2 || g.cfg.Pairs > len(cardSymbols) ||
		(2*g.cfg.Pairs)%gridCols != 0 || g.cfg.TimeLimitSecs <= 0 {
		g.cfg = config.Default().Memory
	}

	g.rng = core.NewRand(cfg.Seed)
	g.tick = 0
	g.timer = sched.NewQueue()
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	g.status = core.StatusWaiting
	g.rows = 2 * g.cfg.Pairs / gridCols
	g.cursor = core.Point{}
	g.firstUp = false
	g.matches = 0
	g.moves = 0
	g.score = 0
	g.ticksLeft = g.cfg.TimeLimitSecs * g.tickRate
	g.awardSent = false
	g.pendingAward = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < 40 || g.screenH < 4+g.rows*2+2

	g.dealCards()
}

// dealCards builds the pair deck and shuffles it onto the grid.
func (g *Game) dealCards() {
	deck := make([]rune, 0, 2*g.cfg.Pairs)
	for _, s := range cardSymbols[:g.cfg.Pairs] {
		deck = append(deck, s, s)
	}
	g.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	g.cards = make([][]Card, g.rows)
	for row := range g.cards {
		g.cards[row] = make([]Card, gridCols)
		for col := range g.cards[row] {
			g.cards[row][col] = Card{Symbol: deck[row*gridCols+col]}
		}
	}
}

// cardAt returns the card at a grid point.
func (g *Game) cardAt(p core.Point) *Card {
	return &g.cards[p.Y][p.X]
}

// secondsLeft converts the tick countdown to whole display seconds,
// rounding up so the clock only shows 0 when time is actually out.
func (g *Game) secondsLeft() int {
	if g.ticksLeft <= 0 {
		return 0
	}
	return (g.ticksLeft + g.tickRate - 1) / g.tickRate
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
		g.countDown()
		if g.status == core.StatusPlaying {
			g.handleInput(in)
		}
	case core.StatusShowing:
		// Mismatch lockout: the clock keeps running, input does not
		g.countDown()
		g.timer.Tick()
	}

	if g.pendingAward != nil {
		res.Award = g.pendingAward
		g.pendingAward = nil
	}
	res.State = g.State()
	return res
}

// countDown burns one tick of the session clock and ends the game when
// it reaches zero.
func (g *Game) countDown() {
	g.ticksLeft--
	if g.ticksLeft > 0 {
		return
	}
	g.ticksLeft = 0
	g.timer.CancelAll()
	g.status = core.StatusGameOver
	g.queueAward()
}

// handleInput moves the cursor and flips cards.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		if g.cursor.Y > 0 {
			g.cursor.Y--
		}
	case in.Has(core.ActionDown):
		if g.cursor.Y < g.rows-1 {
			g.cursor.Y++
		}
	case in.Has(core.ActionLeft):
		if g.cursor.X > 0 {
			g.cursor.X--
		}
	case in.Has(core.ActionRight):
		if g.cursor.X < gridCols-1 {
			g.cursor.X++
		}
	case in.Has(core.ActionFire) || in.Has(core.ActionConfirm):
		g.flipAt(g.cursor)
	}
}

// flipAt reveals the card at p. Matched and already face-up cards are
// no-ops. The second reveal of an attempt either locks the pair in or
// schedules both cards to flip back.
func (g *Game) flipAt(p core.Point) {
	card := g.cardAt(p)
	if card.Matched || card.FaceUp {
		return
	}
	card.FaceUp = true

	if !g.firstUp {
		g.first = p
		g.firstUp = true
		return
	}

	g.moves++
	g.firstUp = false
	first := g.cardAt(g.first)

	if first.Symbol == card.Symbol {
		first.Matched = true
		card.Matched = true
		g.matches++
		g.score += matchPoints
		if g.matches == g.cfg.Pairs {
			g.finishVictory()
		}
		return
	}

	// Mismatch: lock input while both stay revealed
	a, b := g.first, p
	g.status = core.StatusShowing
	g.timer.After(uint64(g.cfg.FlipBackTicks), func() {
		g.cardAt(a).FaceUp = false
		g.cardAt(b).FaceUp = false
		g.status = core.StatusPlaying
	})
}

// finishVictory applies the final scoring formula and queues the award.
func (g *Game) finishVictory() {
	g.status = core.StatusVictory

	score := g.matches*matchPoints + g.secondsLeft()*10 - g.moves*5
	if score < 0 {
		score = 0
	}
	g.score = score
	g.queueAward()
}

// queueAward emits the wallet award exactly once per session.
func (g *Game) queueAward() {
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
		Reason: fmt.Sprintf("memory score %d", g.score),
	}
}

// Card cell geometry for rendering.
const (
	cardW = 6
	cardH = 2
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	g.renderHUD(dst)

	gridW := gridCols * cardW
	gridX := (dst.Width() - gridW) / 2
	gridY := 3

	for row := range g.cards {
		for col := range g.cards[row] {
			g.renderCard(dst, gridX+col*cardW, gridY+row*cardH, row, col)
		}
	}

	g.renderOverlay(dst, gridY+g.rows*cardH+1)
}

// renderCard draws a single card cell.
func (g *Game) renderCard(dst *core.Screen, x, y, row, col int) {
	card := g.cards[row][col]
	selected := g.status == core.StatusPlaying && g.cursor.X == col && g.cursor.Y == row

	var body string
	var color core.Color
	switch {
	case card.Matched:
		body = fmt.Sprintf(" %c ", card.Symbol)
		color = core.ColorGreen
	case card.FaceUp:
		body = fmt.Sprintf(" %c ", card.Symbol)
		color = core.ColorBrightYellow
	default:
		body = "▒▒▒"
		color = core.ColorGray
	}

	lb, rb := ' ', ' '
	if selected {
		lb, rb = '[', ']'
	}

	dst.Set(x, y, lb)
	dst.DrawTextColored(x+1, y, body, color)
	dst.Set(x+4, y, rb)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Memory  Score: %d  Pairs: %d/%d  Moves: %d",
		g.score, g.matches, g.cfg.Pairs, g.moves)
	dst.DrawText(0, 0, hud)

	clock := fmt.Sprintf("Time: %ds ", g.secondsLeft())
	clockColor := core.ColorDefault
	if g.secondsLeft() <= 10 {
		clockColor = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-len(clock)-1, 0, clock, clockColor)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws state messages below the grid.
func (g *Game) renderOverlay(dst *core.Screen, y int) {
	switch g.status {
	case core.StatusWaiting:
		dst.DrawTextCentered(y, "Press SPACE to start")
	case core.StatusVictory:
		dst.DrawTextCentered(y, fmt.Sprintf("All pairs found! Score: %d  |  Press R to restart", g.score))
	case core.StatusGameOver:
		dst.DrawTextCentered(y, fmt.Sprintf("Time's up! Score: %d  |  Press R to restart", g.score))
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
