package connect4

import "github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"

// BestMove picks the AI's column by a three-step priority:
//
//  1. a column that wins immediately,
//  2. a column that blocks an immediate human win,
//  3. a uniformly random legal column, with the center column entered
//     into the draw centerWeight times.
//
// Returns -1 if no column is playable.
func BestMove(b *Board, rng core.Rand, centerWeight int) int {
	// Win now
	for col := range BoardCols {
		if winsFor(b, col, AIDisc) {
			return col
		}
	}

	// Block the human's win
	for col := range BoardCols {
		if winsFor(b, col, HumanDisc) {
			return col
		}
	}

	// Center-weighted random fallback
	if centerWeight < 1 {
		centerWeight = 1
	}
	candidates := make([]int, 0, BoardCols+centerWeight-1)
	for col := range BoardCols {
		if !b.CanDrop(col) {
			continue
		}
		weight := 1
		if col == BoardCols/2 {
			weight = centerWeight
		}
		for range weight {
			candidates = append(candidates, col)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[rng.Intn(len(candidates))]
}

// winsFor probes whether dropping d into col completes four-in-a-row.
// The board is restored before returning.
func winsFor(b *Board, col int, d Disc) bool {
	if _, ok := b.Drop(col, d); !ok {
		return false
	}
	won := b.FindWin(d) != nil
	b.Undo(col)
	return won
}
