package invaders

// Snapshot is a comparable digest of the observable session state, used
// by determinism tests.
type Snapshot struct {
	Tick       uint64
	Status     string
	Score      int
	Lives      int
	Wave       int
	ShipX      int
	Shots      int
	Bombs      int
	FormX      int
	FormY      int
	FormDir    int
	AliveCount int
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Status:     g.status.String(),
		Score:      g.score,
		Lives:      g.lives,
		Wave:       g.wave,
		ShipX:      g.shipX,
		Shots:      len(g.shots),
		Bombs:      len(g.bombs),
		FormX:      g.form.X,
		FormY:      g.form.Y,
		FormDir:    g.form.Dir,
		AliveCount: g.form.AliveCount(),
	}
}
