package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("dash", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("dash", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("dash", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("dash_hard", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for dash
	scores, err := store.TopScores("dash", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for hard
	hardScores, err := store.TopScores("dash_hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(hardScores) != 1 {
		t.Errorf("Expected 1 hard score, got %d", len(hardScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("dash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("dash", 100)
	store.SaveScore("dash", 300)
	store.SaveScore("dash", 200)

	high, err = store.HighScore("dash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("dash", 100)
	store.SaveScore("dash", 200)
	store.SaveScore("dash_hard", 300)

	// Clear only dash scores
	err = store.ClearScores("dash")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Flappy should be empty
	dashScores, _ := store.TopScores("dash", 10)
	if len(dashScores) != 0 {
		t.Errorf("Expected 0 dash scores after clear, got %d", len(dashScores))
	}

	// Hard should still have scores
	hardScores, _ := store.TopScores("dash_hard", 10)
	if len(hardScores) != 1 {
		t.Errorf("Hard scores should not be affected by clearing dash")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreKVRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	v, err := store.GetInt("missing")
	if err != nil || v != 0 {
		t.Errorf("GetInt(missing) = %d, %v, expected 0, nil", v, err)
	}

	if err := store.SetInt("best", 300); err != nil {
		t.Fatalf("SetInt() failed: %v", err)
	}
	if err := store.SetInt("best", 500); err != nil {
		t.Fatalf("SetInt() overwrite failed: %v", err)
	}

	v, err = store.GetInt("best")
	if err != nil {
		t.Fatalf("GetInt() failed: %v", err)
	}
	if v != 500 {
		t.Errorf("GetInt(best) = %d, expected 500", v)
	}
}

func TestKVHighScoresPersistAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	hs := store.HighScores(nil)
	if hs.Get("delhiDashHighScore") != 0 {
		t.Errorf("Get() on empty store = %d, expected 0", hs.Get("delhiDashHighScore"))
	}
	hs.Set("delhiDashHighScore", 420)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if got := store.HighScores(nil).Get("delhiDashHighScore"); got != 420 {
		t.Errorf("Get() after reopen = %d, expected 420", got)
	}
}

func TestKVHighScoresSwallowErrors(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	hs := store.HighScores(nil)
	store.Close()

	// A closed database degrades to 0 without panicking
	if got := hs.Get("any"); got != 0 {
		t.Errorf("Get() on closed store = %d, expected 0", got)
	}
	hs.Set("any", 10)
}

func TestStoreSaveRunAndStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []struct {
		score int
		run   RunRecord
	}{
		{120, RunRecord{Coins: 4, Distance: 310, NewBest: true}},
		{80, RunRecord{Coins: 2, Distance: 450}},
		{200, RunRecord{Coins: 9, Distance: 390, NewBest: true}},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("dash", r.score, r.run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopScores("dash", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 200 || top[0].Coins != 9 || top[0].Distance != 390 || !top[0].NewBest {
		t.Errorf("top run = %+v, expected score 200, 9 coins, 390m, new best", top[0])
	}
	if top[2].NewBest {
		t.Errorf("run with score %d should not be flagged as new best", top[2].Score)
	}

	stats, err := store.GetGameStats("dash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 200 {
		t.Errorf("HighScore = %d, expected 200", stats.HighScore)
	}
	if stats.TotalCoins != 15 {
		t.Errorf("TotalCoins = %d, expected 15", stats.TotalCoins)
	}
	if stats.LongestRun != 450 {
		t.Errorf("LongestRun = %d, expected 450", stats.LongestRun)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if all["dash"] == nil || all["dash"].GamesCount != 3 {
		t.Errorf("GetAllGamesStats()[dash] = %+v, expected 3 games", all["dash"])
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	stats, err := store.GetGameStats("dash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v, expected zero values", stats)
	}
}
