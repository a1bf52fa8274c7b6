package snake

// Snapshot captures the deterministic game state for testing.
// Comparable so two snapshots from identically-seeded runs can be
// checked with ==.
type Snapshot struct {
	Tick     uint64
	Status   string
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
}

// Snapshot returns the current state snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Status:   g.status.String(),
		Score:    g.score,
		SnakeLen: len(g.snake),
		Dir:      g.direction,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
	}
	if len(g.snake) > 0 {
		s.HeadX = g.snake[0].X
		s.HeadY = g.snake[0].Y
	}
	return s
}
