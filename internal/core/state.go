package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Status is the lifecycle phase of a game session.
//
// Every game starts in StatusWaiting and moves to StatusPlaying on the
// player's first confirm. StatusShowing is a non-interactive pause the
// game controls itself: Simon sequence playback, Memory mismatch
// flip-back, Connect Four AI thinking, Breakout re-serve countdown.
// StatusGameOver and StatusVictory are terminal; only a restart leaves
// them.
type Status int

const (
	StatusWaiting Status = iota
	StatusPlaying
	StatusShowing
	StatusGameOver
	StatusVictory
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusPlaying:
		return "playing"
	case StatusShowing:
		return "showing"
	case StatusGameOver:
		return "gameover"
	case StatusVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal returns true if the status ends the session.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusVictory
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Status   Status // Lifecycle phase
	Score    int    // Current score, never negative
	Lives    int    // Remaining lives; 0 for games without lives
	TimeLeft int    // Remaining seconds for timed games; 0 otherwise
	Round    int    // Level, wave or round counter; 0 for games without one
	Paused   bool   // Whether the game is paused
}

// Terminal reports whether the session has ended.
func (s GameState) Terminal() bool {
	return s.Status.Terminal()
}

// AwardEvent asks the platform to credit wallet points for a finished
// session. Each game emits it at most once per session.
type AwardEvent struct {
	Points int    // Points to credit, always positive
	Reason string // Human-readable audit line, e.g. "snake score 120"
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// Award is non-nil on the tick the game decides points were earned.
	// The platform forwards it to the wallet asynchronously.
	Award *AwardEvent
}
