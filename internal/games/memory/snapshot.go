package memory

// Snapshot captures the deterministic game state for testing.
// Comparable so two snapshots from identically-seeded runs can be
// checked with ==.
type Snapshot struct {
	Tick      uint64
	Status    string
	Score     int
	Matches   int
	Moves     int
	TicksLeft int
	CursorX   int
	CursorY   int
	FaceUp    int // Cards currently revealed, matched included
}

// Snapshot returns the current state snapshot.
func (g *Game) Snapshot() Snapshot {
	faceUp := 0
	for row := range g.cards {
		for col := range g.cards[row] {
			if g.cards[row][col].FaceUp || g.cards[row][col].Matched {
				faceUp++
			}
		}
	}
	return Snapshot{
		Tick:      g.tick,
		Status:    g.status.String(),
		Score:     g.score,
		Matches:   g.matches,
		Moves:     g.moves,
		TicksLeft: g.ticksLeft,
		CursorX:   g.cursor.X,
		CursorY:   g.cursor.Y,
		FaceUp:    faceUp,
	}
}
