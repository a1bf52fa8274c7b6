package t2048

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Status  string
	Score   int
	Moves   int
	Board   [BoardSize][BoardSize]int
	MaxTile int  // Highest tile on board
	WonOnce bool // Win tile reached at least once
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Status:  g.status.String(),
		Score:   g.score,
		Moves:   g.moves,
		Board:   g.board,
		MaxTile: MaxTile(g.board),
		WonOnce: g.wonOnce,
	}
}
