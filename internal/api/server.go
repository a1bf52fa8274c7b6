// Package api serves the read-only HTTP sidecar next to the SSH
// arcade: health, the per-game leaderboard backed by the scores
// database, and Prometheus metrics.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/registry"
	"github.com/stokes4738-rgb/pocket-bounty-arcade/internal/storage"
)

// Server is the leaderboard/metrics HTTP server. The store must be
// open; all endpoints are read-only.
type Server struct {
	store  *storage.Store
	logger *log.Logger
	http   *http.Server
}

// NewServer creates the sidecar listening on addr.
func NewServer(addr string, store *storage.Store) *Server {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade-api",
	})

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{store: store, logger: logger}
	s.registerRoutes(engine)
	s.http = &http.Server{Addr: addr, Handler: engine}

	return s
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/games", s.listGames)
		api.GET("/leaderboard/:game", s.leaderboard)
		api.GET("/stats/:game", s.gameStats)
	}
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks serving requests until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting HTTP API", "address", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("api: server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"games":  len(registry.List()),
	})
}

func (s *Server) listGames(c *gin.Context) {
	games := registry.List()
	out := make([]gin.H, 0, len(games))
	for _, g := range games {
		out = append(out, gin.H{"id": g.ID, "title": g.Title})
	}
	c.JSON(http.StatusOK, gin.H{"games": out})
}

// leaderboardEntry is one row of the leaderboard response.
type leaderboardEntry struct {
	Score    int       `json:"score"`
	PlayedAt time.Time `json:"played_at"`
}

func (s *Server) leaderboard(c *gin.Context) {
	gameID := c.Param("game")
	if !registry.Exists(gameID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown game"})
		return
	}

	limit := 10
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := s.store.TopScores(gameID, limit)
	if err != nil {
		s.logger.Error("leaderboard query failed", "game", gameID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot read scores"})
		return
	}

	out := make([]leaderboardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, leaderboardEntry{Score: e.Score, PlayedAt: e.CreatedAt})
	}

	c.JSON(http.StatusOK, gin.H{
		"game":    gameID,
		"title":   registry.Title(gameID),
		"best":    s.store.BestScore(gameID),
		"entries": out,
	})
}

func (s *Server) gameStats(c *gin.Context) {
	gameID := c.Param("game")
	if !registry.Exists(gameID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown game"})
		return
	}

	stats, err := s.store.Stats(gameID)
	if err != nil {
		s.logger.Error("stats query failed", "game", gameID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot read stats"})
		return
	}

	resp := gin.H{
		"game":        gameID,
		"plays":       stats.GamesCount,
		"high_score":  stats.HighScore,
		"avg_score":   stats.AvgScore,
		"total_score": stats.TotalScore,
	}
	if !stats.LastPlayed.IsZero() {
		resp["last_played"] = stats.LastPlayed
	}
	c.JSON(http.StatusOK, resp)
}
