package t2048

import "github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// BoardSize is the board dimension.
const BoardSize = 4

// Board represents a 4x4 game board. Zero means an empty cell.
type Board [BoardSize][BoardSize]int

// slideRow slides and merges a single row to the left.
// Works in two phases: compact the non-zero tiles, then merge equal
// neighbors in one left-to-right pass. A merge consumes both tiles and
// the doubled result is never revisited, so each tile merges at most
// once per move.
// Returns the updated row and the score gained from merges.
func slideRow(row [BoardSize]int) (result [BoardSize]int, score int) {
	var tiles [BoardSize]int
	n := 0
	for _, v := range row {
		if v != 0 {
			tiles[n] = v
			n++
		}
	}

	w := 0
	for i := 0; i < n; i++ {
		v := tiles[i]
		if i+1 < n && tiles[i+1] == v {
			v *= 2
			score += v
			i++
		}
		result[w] = v
		w++
	}

	return result, score
}

// slideRowsLeft slides every row left and sums the merge scores.
func slideRowsLeft(board Board) (Board, int) {
	var result Board
	score := 0
	for y := range BoardSize {
		row, gained := slideRow(board[y])
		result[y] = row
		score += gained
	}
	return result, score
}

// reverseRow reverses a row.
func reverseRow(row [BoardSize]int) [BoardSize]int {
	var result [BoardSize]int
	for i := range BoardSize {
		result[i] = row[BoardSize-1-i]
	}
	return result
}

// mirror flips the board horizontally.
func mirror(board Board) Board {
	var result Board
	for y := range BoardSize {
		result[y] = reverseRow(board[y])
	}
	return result
}

// transpose returns the matrix transpose.
func transpose(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[x][y]
		}
	}
	return result
}

// Slide performs a move in the given direction.
// Returns the new board, the score gained from merges, and whether the
// board changed.
//
// Every direction reduces to a leftward slide: mirror turns right moves
// into left moves, transpose turns vertical moves into horizontal ones.
// Both helpers are involutions, so undoing a reorientation repeats it in
// reverse order.
func Slide(board Board, dir Direction) (Board, int, bool) {
	var result Board
	var score int

	switch dir {
	case DirLeft:
		result, score = slideRowsLeft(board)
	case DirRight:
		result, score = slideRowsLeft(mirror(board))
		result = mirror(result)
	case DirUp:
		result, score = slideRowsLeft(transpose(board))
		result = transpose(result)
	case DirDown:
		result, score = slideRowsLeft(mirror(transpose(board)))
		result = transpose(mirror(result))
	default:
		return board, 0, false
	}

	return result, score, result != board
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []core.Point {
	var cells []core.Point
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, core.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for _, row := range board {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			// Check right neighbor
			if x < BoardSize-1 && board[y][x+1] == val {
				return true
			}
			// Check bottom neighbor
			if y < BoardSize-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return HasEmptyCell(board) || HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	best := 0
	for _, row := range board {
		for _, v := range row {
			best = max(best, v)
		}
	}
	return best
}

// BoardSum returns the sum of all tile values. A slide never changes the
// sum; a spawn increases it by exactly the spawned value.
func BoardSum(board Board) int {
	sum := 0
	for _, row := range board {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// IsGameOver returns true if no moves are possible.
func IsGameOver(board Board) bool {
	return !CanMove(board)
}
