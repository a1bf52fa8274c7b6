package connect4

import "github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"

// Board dimensions, standard Connect Four.
const (
	BoardCols = 7
	BoardRows = 6
)

// Disc identifies the owner of a board cell.
type Disc int8

const (
	Empty Disc = iota
	HumanDisc
	AIDisc
)

// Board is the 7x6 grid. Row 0 is the top; discs stack from the bottom.
type Board struct {
	cells [BoardRows][BoardCols]Disc
}

// At returns the disc at the given cell, Empty for out-of-range.
func (b *Board) At(row, col int) Disc {
	if row < 0 || row >= BoardRows || col < 0 || col >= BoardCols {
		return Empty
	}
	return b.cells[row][col]
}

// CanDrop reports whether the column has room for another disc.
func (b *Board) CanDrop(col int) bool {
	if col < 0 || col >= BoardCols {
		return false
	}
	return b.cells[0][col] == Empty
}

// Drop places a disc in the lowest empty row of the column.
// Returns the landing row, or ok=false if the column is full or invalid.
func (b *Board) Drop(col int, d Disc) (row int, ok bool) {
	if col < 0 || col >= BoardCols {
		return -1, false
	}
	for row = BoardRows - 1; row >= 0; row-- {
		if b.cells[row][col] == Empty {
			b.cells[row][col] = d
			return row, true
		}
	}
	return -1, false
}

// Undo removes the topmost disc from the column. Used by the AI to
// probe candidate moves without copying the board.
func (b *Board) Undo(col int) {
	if col < 0 || col >= BoardCols {
		return
	}
	for row := 0; row < BoardRows; row++ {
		if b.cells[row][col] != Empty {
			b.cells[row][col] = Empty
			return
		}
	}
}

// Full reports whether no column can take another disc.
func (b *Board) Full() bool {
	for col := range BoardCols {
		if b.CanDrop(col) {
			return false
		}
	}
	return true
}

// winDirections are the four line orientations to scan, as (dCol, dRow)
// unit steps. Scanning every cell as a line start with these steps
// covers all eight directions.
var winDirections = [4][2]int{
	{1, 0},  // horizontal
	{0, 1},  // vertical
	{1, 1},  // diagonal down-right
	{-1, 1}, // diagonal down-left
}

// FindWin scans for four-in-a-row of the given disc. It returns exactly
// the four aligned cells in line order from the scan start, or nil.
func (b *Board) FindWin(d Disc) []core.Point {
	for row := range BoardRows {
		for col := range BoardCols {
			if b.cells[row][col] != d {
				continue
			}
			for _, dir := range winDirections {
				if line := b.lineFrom(row, col, dir[0], dir[1], d); line != nil {
					return line
				}
			}
		}
	}
	return nil
}

// lineFrom returns the 4-cell line starting at (row, col) stepping by
// (dCol, dRow) if every cell holds d, else nil.
func (b *Board) lineFrom(row, col, dCol, dRow int, d Disc) []core.Point {
	line := make([]core.Point, 0, 4)
	for i := range 4 {
		r := row + dRow*i
		c := col + dCol*i
		if r < 0 || r >= BoardRows || c < 0 || c >= BoardCols {
			return nil
		}
		if b.cells[r][c] != d {
			return nil
		}
		line = append(line, core.Point{X: c, Y: r})
	}
	return line
}

// Cells returns a copy of the raw grid for snapshots.
func (b *Board) Cells() [BoardRows][BoardCols]Disc {
	return b.cells
}
