package api

import "github.com/prometheus/client_golang/prometheus"

// Counters exported for the platform to increment. The sidecar only
// serves them; sessions and award outcomes happen in the TUI layer.
var (
	SessionsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arcade_sessions_started_total",
			Help: "Arcade sessions started, local and SSH",
		},
	)
	GamesPlayed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arcade_games_played_total",
			Help: "Finished game rounds by game",
		},
		[]string{"game"},
	)
	PointsAwarded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arcade_points_awarded_total",
			Help: "Wallet points successfully awarded",
		},
	)
	AwardFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arcade_award_failures_total",
			Help: "Wallet award attempts that failed",
		},
	)
)

func init() {
	prometheus.MustRegister(SessionsStarted, GamesPlayed, PointsAwarded, AwardFailures)
}
