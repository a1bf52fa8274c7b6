package invaders

import "github.com/stokes4738-rgb/pocket-bounty-arcade/internal/core"

// Enemy spacing between sprite centers. Sprites are three cells wide,
// so a column gap of four leaves one empty cell between neighbours.
const (
	colGap = 4
	rowGap = 2
)

// Formation is the marching enemy grid. It drifts sideways one cell per
// move, reverses at the arena edges and steps down one row on each
// reversal.
type Formation struct {
	Cols, Rows int
	X, Y       int // Center of the top-left enemy
	Dir        int // +1 drifting right, -1 left

	alive      [][]bool
	aliveCount int
}

// NewFormation builds the wave's grid centered near the top of the
// arena. Higher waves field wider and deeper formations.
func NewFormation(wave, screenW int) *Formation {
	f := &Formation{
		Cols: min(4+wave, 9),
		Rows: min(1+wave, 4),
		Y:    3,
		Dir:  1,
	}
	f.X = (screenW - (f.Cols-1)*colGap) / 2

	f.alive = make([][]bool, f.Rows)
	for row := range f.alive {
		f.alive[row] = make([]bool, f.Cols)
		for col := range f.alive[row] {
			f.alive[row][col] = true
		}
	}
	f.aliveCount = f.Rows * f.Cols
	return f
}

// EnemyAt returns the center cell of the enemy at a grid slot.
func (f *Formation) EnemyAt(row, col int) (x, y int) {
	return f.X + col*colGap, f.Y + row*rowGap
}

// Alive reports whether the enemy at a grid slot is still up.
func (f *Formation) Alive(row, col int) bool {
	if row < 0 || row >= f.Rows || col < 0 || col >= f.Cols {
		return false
	}
	return f.alive[row][col]
}

// AliveCount returns the number of remaining enemies.
func (f *Formation) AliveCount() int {
	return f.aliveCount
}

// Kill removes the enemy at a grid slot.
func (f *Formation) Kill(row, col int) {
	if f.Alive(row, col) {
		f.alive[row][col] = false
		f.aliveCount--
	}
}

// HitTest finds the live enemy whose three-cell sprite covers p.
func (f *Formation) HitTest(p core.Point) (row, col int, ok bool) {
	for row = 0; row < f.Rows; row++ {
		for col = 0; col < f.Cols; col++ {
			if !f.alive[row][col] {
				continue
			}
			x, y := f.EnemyAt(row, col)
			if p.Y == y && core.Abs(p.X-x) <= 1 {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

// aliveSpanX returns the leftmost and rightmost live enemy centers.
func (f *Formation) aliveSpanX() (lo, hi int, ok bool) {
	for row := range f.alive {
		for col, up := range f.alive[row] {
			if !up {
				continue
			}
			x, _ := f.EnemyAt(row, col)
			if !ok || x < lo {
				lo = x
			}
			if !ok || x > hi {
				hi = x
			}
			ok = true
		}
	}
	return lo, hi, ok
}

// StepMove advances the formation one move: sideways while the sprites
// fit, otherwise reverse and descend. Limits are the outermost cells
// sprites may touch.
func (f *Formation) StepMove(leftLimit, rightLimit int) {
	lo, hi, ok := f.aliveSpanX()
	if !ok {
		return
	}

	if (f.Dir > 0 && hi+1+f.Dir > rightLimit) || (f.Dir < 0 && lo-1+f.Dir < leftLimit) {
		f.Dir = -f.Dir
		f.Y++
		return
	}
	f.X += f.Dir
}

// LowestAliveY returns the row coordinate of the deepest live enemy,
// or -1 when the formation is empty.
func (f *Formation) LowestAliveY() int {
	lowest := -1
	for row := range f.alive {
		for col, up := range f.alive[row] {
			if up {
				_, y := f.EnemyAt(row, col)
				if y > lowest {
					lowest = y
				}
			}
		}
	}
	return lowest
}

// AliveColumns returns the columns that still hold at least one enemy,
// in ascending order.
func (f *Formation) AliveColumns() []int {
	var cols []int
	for col := 0; col < f.Cols; col++ {
		for row := 0; row < f.Rows; row++ {
			if f.alive[row][col] {
				cols = append(cols, col)
				break
			}
		}
	}
	return cols
}

// BottomAliveOfColumn returns the deepest live row in a column, or -1.
// Bombs drop from these enemies.
func (f *Formation) BottomAliveOfColumn(col int) int {
	for row := f.Rows - 1; row >= 0; row-- {
		if f.Alive(row, col) {
			return row
		}
	}
	return -1
}
