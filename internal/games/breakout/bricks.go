package breakout

// Brick is a single destructible cell in the wall.
type Brick struct {
	Alive bool
}

// BrickField is the wall of bricks for one level. Levels are generated,
// not authored: the wall grows from 4 to 6 rows over the first three
// levels and stays at 6 from then on.
type BrickField struct {
	Rows   int
	Cols   int
	Bricks [][]Brick
}

// FieldCols is the fixed number of brick columns.
const FieldCols = 10

// NewBrickField builds the wall for a 1-based level number.
func NewBrickField(level int) *BrickField {
	rows := 4 + (level - 1)
	if rows > 6 {
		rows = 6
	}
	if rows < 4 {
		rows = 4
	}

	f := &BrickField{
		Rows:   rows,
		Cols:   FieldCols,
		Bricks: make([][]Brick, rows),
	}
	for r := range f.Bricks {
		f.Bricks[r] = make([]Brick, f.Cols)
		for c := range f.Bricks[r] {
			f.Bricks[r][c].Alive = true
		}
	}
	return f
}

// CountAlive returns the number of bricks still standing.
func (f *BrickField) CountAlive() int {
	count := 0
	for r := range f.Bricks {
		for c := range f.Bricks[r] {
			if f.Bricks[r][c].Alive {
				count++
			}
		}
	}
	return count
}

// FindBrickHit locates the live brick the ball currently overlaps.
// Bricks are one cell tall, brickW cells wide, starting at areaTop.
func FindBrickHit(ball *Ball, f *BrickField, areaTop, brickW int) (row, col int, ok bool) {
	if brickW <= 0 {
		return -1, -1, false
	}

	row = ball.CellY() - areaTop
	col = ball.CellX() / brickW

	if row < 0 || row >= f.Rows || col < 0 || col >= f.Cols {
		return -1, -1, false
	}
	if !f.Bricks[row][col].Alive {
		return -1, -1, false
	}
	return row, col, true
}
