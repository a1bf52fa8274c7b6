package connect4

import (
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

func TestDropGravity(t *testing.T) {
	var b Board

	for i, wantRow := range []int{5, 4, 3} {
		row, ok := b.Drop(3, HumanDisc)
		if !ok {
			t.Fatalf("drop %d failed", i)
		}
		if row != wantRow {
			t.Errorf("drop %d: expected row %d, got %d", i, wantRow, row)
		}
	}
}

func TestDropFullColumn(t *testing.T) {
	var b Board

	for range BoardRows {
		if _, ok := b.Drop(0, AIDisc); !ok {
			t.Fatal("drop into non-full column failed")
		}
	}
	if b.CanDrop(0) {
		t.Error("expected column 0 full")
	}
	if _, ok := b.Drop(0, AIDisc); ok {
		t.Error("drop into full column should fail")
	}
}

func TestUndoRemovesTopDisc(t *testing.T) {
	var b Board

	b.Drop(2, HumanDisc)
	b.Drop(2, AIDisc)
	b.Undo(2)

	if b.At(4, 2) != Empty {
		t.Error("expected top disc removed")
	}
	if b.At(5, 2) != HumanDisc {
		t.Error("expected bottom disc untouched")
	}
}

func TestFindWinLines(t *testing.T) {
	tests := []struct {
		name  string
		cells [][2]int // row, col
		want  []core.Point
	}{
		{
			name:  "horizontal bottom row",
			cells: [][2]int{{5, 1}, {5, 2}, {5, 3}, {5, 4}},
			want:  []core.Point{{X: 1, Y: 5}, {X: 2, Y: 5}, {X: 3, Y: 5}, {X: 4, Y: 5}},
		},
		{
			name:  "vertical",
			cells: [][2]int{{2, 2}, {3, 2}, {4, 2}, {5, 2}},
			want:  []core.Point{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}, {X: 2, Y: 5}},
		},
		{
			name:  "diagonal down-right",
			cells: [][2]int{{1, 1}, {2, 2}, {3, 3}, {4, 4}},
			want:  []core.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}},
		},
		{
			name:  "diagonal down-left",
			cells: [][2]int{{1, 5}, {2, 4}, {3, 3}, {4, 2}},
			want:  []core.Point{{X: 5, Y: 1}, {X: 4, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board
			for _, rc := range tt.cells {
				b.cells[rc[0]][rc[1]] = HumanDisc
			}

			got := b.FindWin(HumanDisc)
			if len(got) != 4 {
				t.Fatalf("expected 4 win cells, got %v", got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("cell %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestFindWinNeedsFour(t *testing.T) {
	var b Board
	b.cells[5][1] = HumanDisc
	b.cells[5][2] = HumanDisc
	b.cells[5][3] = HumanDisc

	if win := b.FindWin(HumanDisc); win != nil {
		t.Errorf("three in a row should not win, got %v", win)
	}
}

func TestAITakesImmediateWin(t *testing.T) {
	var b Board
	b.cells[5][0] = AIDisc
	b.cells[4][0] = AIDisc
	b.cells[3][0] = AIDisc

	col := BestMove(&b, &core.ScriptRand{}, 3)
	if col != 0 {
		t.Errorf("expected AI to win in column 0, got %d", col)
	}
	if b.At(2, 0) != Empty {
		t.Error("probe moves must be undone")
	}
}

func TestAIBlocksHumanWin(t *testing.T) {
	var b Board
	b.cells[5][2] = HumanDisc
	b.cells[5][3] = HumanDisc
	b.cells[5][4] = HumanDisc

	// Human threatens at columns 1 and 5; the scan finds 1 first
	col := BestMove(&b, &core.ScriptRand{}, 3)
	if col != 1 {
		t.Errorf("expected AI to block at column 1, got %d", col)
	}
}

func TestAICenterWeightedFallback(t *testing.T) {
	// Empty board, center weight 3: the draw list is
	// [0 1 2 3 3 3 4 5 6], so indices 3..5 all land on the center.
	tests := []struct {
		index int
		want  int
	}{
		{0, 0},
		{3, 3},
		{4, 3},
		{5, 3},
		{6, 4},
		{8, 6},
	}

	for _, tt := range tests {
		var b Board
		rng := &core.ScriptRand{Ints: []int{tt.index}}
		col := BestMove(&b, rng, 3)
		if col != tt.want {
			t.Errorf("index %d: expected column %d, got %d", tt.index, tt.want, col)
		}
	}
}

func TestHumanDropThenAIAnswers(t *testing.T) {
	g := startGame(t, 21)

	input := core.NewInputFrame()
	input.SetDigit(4)
	g.Step(input)

	if g.board.At(5, 3) != HumanDisc {
		t.Fatal("expected human disc at bottom of column 4")
	}
	if g.status != core.StatusShowing {
		t.Fatalf("expected thinking pause, got %v", g.status)
	}

	input.Clear()
	for range g.cfg.ThinkTicks {
		g.Step(input)
	}

	if g.status != core.StatusPlaying {
		t.Fatalf("expected playing after AI move, got %v", g.status)
	}

	discs := 0
	for row := range BoardRows {
		for col := range BoardCols {
			if g.board.At(row, col) != Empty {
				discs++
			}
		}
	}
	if discs != 2 {
		t.Errorf("expected 2 discs on board, got %d", discs)
	}
}

func TestCursorMovesAndClamps(t *testing.T) {
	g := startGame(t, 22)

	if g.cursor != BoardCols/2 {
		t.Fatalf("expected cursor at center, got %d", g.cursor)
	}

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	for range 10 {
		g.Step(input)
	}
	if g.cursor != BoardCols-1 {
		t.Errorf("expected cursor clamped at %d, got %d", BoardCols-1, g.cursor)
	}

	input.Clear()
	input.Set(core.ActionLeft)
	for range 10 {
		g.Step(input)
	}
	if g.cursor != 0 {
		t.Errorf("expected cursor clamped at 0, got %d", g.cursor)
	}
}

func TestHumanVictoryScoresAndAwards(t *testing.T) {
	g := startGame(t, 23)

	g.board.cells[5][0] = HumanDisc
	g.board.cells[5][1] = HumanDisc
	g.board.cells[5][2] = HumanDisc
	g.humanPieces = 3

	input := core.NewInputFrame()
	input.SetDigit(4)
	res := g.Step(input)

	if g.status != core.StatusVictory {
		t.Fatalf("expected victory, got %v", g.status)
	}
	wantScore := g.cfg.WinPoints + g.cfg.PiecePoints*4
	if g.score != wantScore {
		t.Errorf("expected score %d, got %d", wantScore, g.score)
	}
	if res.Award == nil {
		t.Fatal("expected award on victory")
	}
	if res.Award.Points != wantScore/awardDivisor {
		t.Errorf("expected %d award points, got %d", wantScore/awardDivisor, res.Award.Points)
	}
	if len(g.winLine) != 4 {
		t.Errorf("expected 4 highlighted win cells, got %d", len(g.winLine))
	}

	// Terminal state ignores further drops and never re-awards
	for range 5 {
		res = g.Step(input)
		if res.Award != nil {
			t.Fatal("award emitted more than once")
		}
	}
}

func TestAIWinIsLoss(t *testing.T) {
	g := startGame(t, 24)

	g.board.cells[5][6] = AIDisc
	g.board.cells[4][6] = AIDisc
	g.board.cells[3][6] = AIDisc

	// Human plays a harmless column; the AI completes its vertical line
	input := core.NewInputFrame()
	input.SetDigit(1)
	g.Step(input)
	if g.status != core.StatusShowing {
		t.Fatalf("expected thinking pause, got %v", g.status)
	}

	input.Clear()
	var award *core.AwardEvent
	for range g.cfg.ThinkTicks {
		res := g.Step(input)
		if res.Award != nil {
			award = res.Award
		}
	}

	if g.status != core.StatusGameOver {
		t.Fatalf("expected gameover after AI win, got %v", g.status)
	}
	if g.outcome != resultLoss {
		t.Errorf("expected loss outcome, got %v", g.outcome)
	}
	wantScore := g.cfg.PiecePoints * 1
	if g.score != wantScore {
		t.Errorf("expected score %d on loss, got %d", wantScore, g.score)
	}
	if award == nil || award.Points != wantScore/awardDivisor {
		t.Errorf("expected award %d, got %+v", wantScore/awardDivisor, award)
	}
}

func TestFullBoardIsTie(t *testing.T) {
	g := startGame(t, 25)

	// Fill with a shifted HHAA tiling that contains no four-in-a-row in
	// any direction, leaving the top of column 7 for the final drop.
	pattern := [4]Disc{HumanDisc, HumanDisc, AIDisc, AIDisc}
	for row := range BoardRows {
		for col := range BoardCols {
			if row == 0 && col == 6 {
				continue
			}
			g.board.cells[row][col] = pattern[(col+2*row)%4]
		}
	}
	if g.board.FindWin(HumanDisc) != nil || g.board.FindWin(AIDisc) != nil {
		t.Fatal("tiling precondition violated: board already has a win")
	}
	g.humanPieces = 21

	g.cursor = 6
	input := core.NewInputFrame()
	input.Set(core.ActionFire)
	res := g.Step(input)

	if g.status != core.StatusGameOver {
		t.Fatalf("expected gameover on tie, got %v", g.status)
	}
	if g.outcome != resultTie {
		t.Errorf("expected tie outcome, got %v", g.outcome)
	}
	wantScore := g.cfg.TiePoints + g.cfg.PiecePoints*22
	if g.score != wantScore {
		t.Errorf("expected score %d, got %d", wantScore, g.score)
	}
	if res.Award == nil || res.Award.Points != wantScore/awardDivisor {
		t.Errorf("expected award %d, got %+v", wantScore/awardDivisor, res.Award)
	}
}

func TestDropIntoFullColumnIgnored(t *testing.T) {
	g := startGame(t, 26)

	for range BoardRows {
		g.board.Drop(0, AIDisc)
	}

	input := core.NewInputFrame()
	input.SetDigit(1)
	g.Step(input)

	if g.status != core.StatusPlaying {
		t.Errorf("full-column drop should be ignored, got %v", g.status)
	}
	if g.humanPieces != 0 {
		t.Errorf("expected no piece placed, got %d", g.humanPieces)
	}
}

func TestDeterminismSameSeed(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 9001, ScreenW: 80, ScreenH: 24, TickRate: 60}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 400; i++ {
		input.Clear()
		switch i {
		case 0:
			input.Set(core.ActionConfirm)
		case 5:
			input.SetDigit(4)
		case 60:
			input.SetDigit(4)
		case 120:
			input.SetDigit(2)
		case 180:
			input.SetDigit(6)
		case 240:
			input.SetDigit(1)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}
