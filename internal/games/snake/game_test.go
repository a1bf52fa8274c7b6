package snake

import (
	"strings"
	"testing"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"
)

func startGame(t *testing.T, seed int64) *Game {
	t.Helper()

	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	if g.status != core.StatusWaiting {
		t.Fatalf("expected waiting after Reset, got %v", g.status)
	}

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)
	if g.status != core.StatusPlaying {
		t.Fatalf("expected playing after confirm, got %v", g.status)
	}
	return g
}

func TestResetPlacesSnakeAndFood(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})

	if len(g.snake) != 3 {
		t.Fatalf("expected 3-segment snake, got %d", len(g.snake))
	}
	if g.direction != DirRight {
		t.Errorf("expected initial direction right, got %v", g.direction)
	}
	if g.isSnakeAt(g.food) {
		t.Errorf("food spawned on snake at (%d,%d)", g.food.X, g.food.Y)
	}
	if g.food.X < 0 || g.food.X >= g.cfg.GridWidth || g.food.Y < 0 || g.food.Y >= g.cfg.GridHeight {
		t.Errorf("food out of bounds at (%d,%d)", g.food.X, g.food.Y)
	}
}

func TestMoveCadence(t *testing.T) {
	g := startGame(t, 7)

	head := g.snake[0]
	input := core.NewInputFrame()

	// One tick short of the move interval: snake has not moved
	for range g.cfg.MoveEvery - 1 {
		g.Step(input)
	}
	if g.snake[0] != head {
		t.Fatalf("snake moved before interval elapsed: %v -> %v", head, g.snake[0])
	}

	// The interval tick moves the head one cell right
	g.Step(input)
	want := head.Add(1, 0)
	if g.snake[0] != want {
		t.Errorf("expected head at %v, got %v", want, g.snake[0])
	}
}

func TestEatFoodGrowsAndScores(t *testing.T) {
	g := startGame(t, 2)

	// Single-segment snake at (10,10) heading right, food directly ahead
	g.snake = []core.Point{{X: 10, Y: 10}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.food = core.Point{X: 11, Y: 10}

	var res core.StepResult
	g.moveSnake(&res)

	if len(g.snake) != 2 {
		t.Errorf("expected length 2 after eating, got %d", len(g.snake))
	}
	if g.snake[0] != (core.Point{X: 11, Y: 10}) {
		t.Errorf("expected head at (11,10), got %v", g.snake[0])
	}
	if g.score != g.cfg.FoodPoints {
		t.Errorf("expected score %d, got %d", g.cfg.FoodPoints, g.score)
	}
	if g.isSnakeAt(g.food) {
		t.Errorf("respawned food on snake at (%d,%d)", g.food.X, g.food.Y)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := startGame(t, 42)

	// Moving right; left must be rejected
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if g.nextDir == DirLeft {
		t.Error("reversal from right to left should be rejected")
	}

	// Down is perpendicular and accepted
	input.Clear()
	input.Set(core.ActionDown)
	g.Step(input)

	if g.nextDir != DirDown {
		t.Errorf("expected buffered direction down, got %v", g.nextDir)
	}
}

func TestTurnChainBuffersLatest(t *testing.T) {
	g := startGame(t, 9)

	// Down then left before the next move fires: left is legal against
	// the buffered down even though the committed direction is right.
	input := core.NewInputFrame()
	input.Set(core.ActionDown)
	g.Step(input)
	input.Clear()
	input.Set(core.ActionLeft)
	g.Step(input)

	if g.nextDir != DirLeft {
		t.Errorf("expected buffered direction left, got %v", g.nextDir)
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := startGame(t, 3)

	g.snake = []core.Point{
		{X: 1, Y: 0},
		{X: 2, Y: 0},
		{X: 3, Y: 0},
	}
	g.direction = DirUp
	g.nextDir = DirUp
	g.score = 40

	var res core.StepResult
	g.moveSnake(&res)

	if g.status != core.StatusGameOver {
		t.Fatalf("expected gameover after wall hit, got %v", g.status)
	}
	if res.Award == nil {
		t.Fatal("expected award on game over")
	}
	if res.Award.Points != 40/awardDivisor {
		t.Errorf("expected %d award points, got %d", 40/awardDivisor, res.Award.Points)
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := startGame(t, 4)

	// Hook shape: moving right from (5,5) hits the body at (6,5)
	g.snake = []core.Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.direction = DirRight
	g.nextDir = DirRight

	var res core.StepResult
	g.moveSnake(&res)

	if g.status != core.StatusGameOver {
		t.Errorf("expected gameover after self collision, got %v", g.status)
	}
}

func TestTailCellIsSafeWhenNotGrowing(t *testing.T) {
	g := startGame(t, 5)

	// 2x2 loop: head moves onto the tail cell, which vacates this move
	g.snake = []core.Point{
		{X: 5, Y: 5},
		{X: 6, Y: 5},
		{X: 6, Y: 6},
		{X: 5, Y: 6},
	}
	g.direction = DirDown
	g.nextDir = DirDown
	g.growing = false
	g.food = core.Point{X: 0, Y: 0}

	var res core.StepResult
	g.moveSnake(&res)

	if g.status != core.StatusPlaying {
		t.Errorf("moving onto vacating tail should be safe, got %v", g.status)
	}
	if g.snake[0] != (core.Point{X: 5, Y: 6}) {
		t.Errorf("expected head at (5,6), got %v", g.snake[0])
	}
}

func TestAwardOnlyOnce(t *testing.T) {
	g := startGame(t, 6)
	g.score = 100

	var res1 core.StepResult
	g.endGame(&res1)
	if res1.Award == nil || res1.Award.Points != 50 {
		t.Fatalf("expected first award of 50 points, got %+v", res1.Award)
	}

	var res2 core.StepResult
	g.endGame(&res2)
	if res2.Award != nil {
		t.Errorf("expected no second award, got %+v", res2.Award)
	}
}

func TestZeroScoreNoAward(t *testing.T) {
	g := startGame(t, 8)

	var res core.StepResult
	g.endGame(&res)
	if res.Award != nil {
		t.Errorf("expected no award for zero score, got %+v", res.Award)
	}
}

func TestPauseFreezesMovement(t *testing.T) {
	g := startGame(t, 10)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Fatal("expected paused after pause action")
	}

	head := g.snake[0]
	input.Clear()
	for range g.cfg.MoveEvery * 3 {
		g.Step(input)
	}
	if g.snake[0] != head {
		t.Errorf("snake moved while paused: %v -> %v", head, g.snake[0])
	}

	input.Set(core.ActionPause)
	g.Step(input)
	if g.paused {
		t.Error("expected unpaused after second pause action")
	}
}

func TestDeterminismSameSeed(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 60}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		switch i {
		case 0:
			input.Set(core.ActionConfirm)
		case 30:
			input.Set(core.ActionDown)
		case 60:
			input.Set(core.ActionLeft)
		case 90:
			input.Set(core.ActionUp)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 10, ScreenH: 5, TickRate: 60})

	if !g.tooSmall {
		t.Fatal("expected tooSmall on a 10x5 screen")
	}

	// Steps are inert while too small
	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)
	if g.status != core.StatusWaiting {
		t.Errorf("expected waiting while too small, got %v", g.status)
	}
}

func TestRenderShowsHUD(t *testing.T) {
	g := startGame(t, 11)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Snake") {
		t.Error("HUD should contain the game title")
	}
}
