package breakout

// Snapshot captures the deterministic game state for testing.
// Comparable so two snapshots from identically-seeded runs can be
// checked with ==.
type Snapshot struct {
	Tick        uint64
	Status      string
	Score       int
	Lives       int
	Level       int
	BallX       int // Fixed-point
	BallY       int // Fixed-point
	BallVX      int
	BallVY      int
	BallStuck   bool
	PaddleX     int // Fixed-point
	BricksAlive int
}

// Snapshot returns the current state snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Status: g.status.String(),
		Score:  g.score,
		Lives:  g.lives,
		Level:  g.level,
	}
	if g.ball != nil {
		s.BallX = int(g.ball.X)
		s.BallY = int(g.ball.Y)
		s.BallVX = int(g.ball.VX)
		s.BallVY = int(g.ball.VY)
		s.BallStuck = g.ball.Stuck
	}
	if g.paddle != nil {
		s.PaddleX = int(g.paddle.X)
	}
	if g.field != nil {
		s.BricksAlive = g.field.CountAlive()
	}
	return s
}
