package mole

// Snapshot is a comparable digest of the observable session state, used
// by determinism tests.
type Snapshot struct {
	Tick      uint64
	Status    string
	Score     int
	Combo     int
	Hits      int
	Cursor    int
	TicksLeft int
	Moles     [gridSize * gridSize]bool
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Status:    g.status.String(),
		Score:     g.score,
		Combo:     g.combo,
		Hits:      g.hits,
		Cursor:    g.cursor,
		TicksLeft: g.ticksLeft,
		Moles:     g.moles,
	}
}
