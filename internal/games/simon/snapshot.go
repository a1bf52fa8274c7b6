package simon

// Snapshot is a comparable digest of the observable session state, used
// by determinism tests.
type Snapshot struct {
	Tick     uint64
	Status   string
	Score    int
	Round    int
	Progress int
	LitPad   int
	LastPad  int // Most recently appended sequence pad, -1 before the first round
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	last := -1
	if len(g.sequence) > 0 {
		last = g.sequence[len(g.sequence)-1]
	}
	return Snapshot{
		Tick:     g.tick,
		Status:   g.status.String(),
		Score:    g.score,
		Round:    len(g.sequence),
		Progress: g.progress,
		LitPad:   g.litPad,
		LastPad:  last,
	}
}
