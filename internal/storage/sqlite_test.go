package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "arcade.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 300, 200} {
		if _, err := store.SaveScore("snake", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("2048", 4096); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	entries, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("TopScores() returned %d entries, want 3", len(entries))
	}

	want := []int{300, 200, 100}
	for i, entry := range entries {
		if entry.Score != want[i] {
			t.Errorf("entry %d score = %d, want %d", i, entry.Score, want[i])
		}
		if entry.GameID != "snake" {
			t.Errorf("entry %d game ID = %q, want snake", i, entry.GameID)
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		if _, err := store.SaveScore("breakout", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	entries, err := store.TopScores("breakout", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("TopScores(5) returned %d entries", len(entries))
	}

	// Zero limit falls back to the default of 10.
	entries, err = store.TopScores("breakout", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("TopScores(0) returned %d entries, want 10", len(entries))
	}
}

func TestBestScoreStartsAtZero(t *testing.T) {
	store := openTestStore(t)

	if best := store.BestScore("simon"); best != 0 {
		t.Errorf("BestScore() = %d for empty table, want 0", best)
	}
}

func TestUpdateBest(t *testing.T) {
	store := openTestStore(t)

	improved, err := store.UpdateBest("snake", 120)
	if err != nil {
		t.Fatalf("UpdateBest() failed: %v", err)
	}
	if !improved {
		t.Error("first UpdateBest() reported no improvement")
	}
	if best := store.BestScore("snake"); best != 120 {
		t.Errorf("BestScore() = %d, want 120", best)
	}

	improved, err = store.UpdateBest("snake", 80)
	if err != nil {
		t.Fatalf("UpdateBest() failed: %v", err)
	}
	if improved {
		t.Error("lower score reported as improvement")
	}
	if best := store.BestScore("snake"); best != 120 {
		t.Errorf("BestScore() after lower update = %d, want 120", best)
	}

	improved, err = store.UpdateBest("snake", 250)
	if err != nil {
		t.Fatalf("UpdateBest() failed: %v", err)
	}
	if !improved {
		t.Error("higher score reported no improvement")
	}
	if best := store.BestScore("snake"); best != 250 {
		t.Errorf("BestScore() after higher update = %d, want 250", best)
	}
}

func TestUpdateBestEqualScoreKeepsOld(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.UpdateBest("memory", 500); err != nil {
		t.Fatalf("UpdateBest() failed: %v", err)
	}

	improved, err := store.UpdateBest("memory", 500)
	if err != nil {
		t.Fatalf("UpdateBest() failed: %v", err)
	}
	if improved {
		t.Error("equal score reported as improvement")
	}
}

func TestUpdateBestPerGameIsolation(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.UpdateBest("snake", 90); err != nil {
		t.Fatalf("UpdateBest() failed: %v", err)
	}
	if _, err := store.UpdateBest("2048", 2048); err != nil {
		t.Fatalf("UpdateBest() failed: %v", err)
	}

	if best := store.BestScore("snake"); best != 90 {
		t.Errorf("snake best = %d, want 90", best)
	}
	if best := store.BestScore("2048"); best != 2048 {
		t.Errorf("2048 best = %d, want 2048", best)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	if score, err := store.HighScore("invaders"); err != nil || score != 0 {
		t.Errorf("HighScore() on empty table = (%d, %v), want (0, nil)", score, err)
	}

	for _, score := range []int{50, 175, 90} {
		if _, err := store.SaveScore("invaders", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	score, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 175 {
		t.Errorf("HighScore() = %d, want 175", score)
	}
}

func TestClearScoresDropsHistoryAndBest(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("connect4", 40); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.UpdateBest("connect4", 40); err != nil {
		t.Fatalf("UpdateBest() failed: %v", err)
	}
	if _, err := store.SaveScore("mole", 310); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.UpdateBest("mole", 310); err != nil {
		t.Fatalf("UpdateBest() failed: %v", err)
	}

	if err := store.ClearScores("connect4"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	entries, err := store.TopScores("connect4", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("connect4 history has %d entries after clear", len(entries))
	}
	if best := store.BestScore("connect4"); best != 0 {
		t.Errorf("connect4 best = %d after clear, want 0", best)
	}

	// Other games are untouched.
	if best := store.BestScore("mole"); best != 310 {
		t.Errorf("mole best = %d, want 310", best)
	}
}

func TestAwardLog(t *testing.T) {
	store := openTestStore(t)

	if err := store.LogAward("snake", 12, "snake score 24", true, ""); err != nil {
		t.Fatalf("LogAward() failed: %v", err)
	}
	if err := store.LogAward("simon", 5, "simon score 20", false, "wallet unreachable"); err != nil {
		t.Fatalf("LogAward() failed: %v", err)
	}

	entries, err := store.RecentAwards(10)
	if err != nil {
		t.Fatalf("RecentAwards() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("RecentAwards() returned %d entries, want 2", len(entries))
	}

	// Newest first.
	if entries[0].GameID != "simon" || entries[0].Delivered || entries[0].Error != "wallet unreachable" {
		t.Errorf("unexpected newest entry: %+v", entries[0])
	}
	if entries[1].GameID != "snake" || !entries[1].Delivered || entries[1].Points != 12 {
		t.Errorf("unexpected oldest entry: %+v", entries[1])
	}
}

func TestRecentAwardsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 30 {
		if err := store.LogAward("2048", i, "2048 score 0", true, ""); err != nil {
			t.Fatalf("LogAward() failed: %v", err)
		}
	}

	entries, err := store.RecentAwards(0)
	if err != nil {
		t.Fatalf("RecentAwards() failed: %v", err)
	}
	if len(entries) != 20 {
		t.Errorf("RecentAwards(0) returned %d entries, want default 20", len(entries))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 20, 30} {
		if _, err := store.SaveScore("breakout", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	stats, err := store.Stats("breakout")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, want 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, want 20", stats.AvgScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("TotalScore = %d, want 60", stats.TotalScore)
	}
}

func TestStatsEmptyGame(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("mole")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty game stats = %+v", stats)
	}
	if !stats.LastPlayed.IsZero() {
		t.Errorf("LastPlayed = %v for unplayed game", stats.LastPlayed)
	}
}

func TestAllStats(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("snake", 100); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("snake", 200); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("invaders", 330); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("AllStats() returned %d games, want 2", len(stats))
	}
	if stats["snake"].GamesCount != 2 || stats["snake"].HighScore != 200 {
		t.Errorf("snake stats = %+v", stats["snake"])
	}
	if stats["invaders"].GamesCount != 1 || stats["invaders"].HighScore != 330 {
		t.Errorf("invaders stats = %+v", stats["invaders"])
	}
}
