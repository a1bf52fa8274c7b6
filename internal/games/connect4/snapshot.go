package connect4

// Snapshot captures the deterministic game state for testing.
// Comparable so two snapshots from identically-seeded runs can be
// checked with ==.
type Snapshot struct {
	Tick        uint64
	Status      string
	Score       int
	Cursor      int
	HumanPieces int
	Board       [BoardRows][BoardCols]Disc
}

// Snapshot returns the current state snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Status:      g.status.String(),
		Score:       g.score,
		Cursor:      g.cursor,
		HumanPieces: g.humanPieces,
		Board:       g.board.Cells(),
	}
}
