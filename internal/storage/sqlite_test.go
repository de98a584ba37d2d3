package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("flappy", score, 0); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("shooter", 500, 3); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 flappy scores, got %d", len(scores))
	}
	// Sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	shooterScores, err := store.TopScores("shooter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(shooterScores) != 1 {
		t.Fatalf("Expected 1 shooter score, got %d", len(shooterScores))
	}
	if shooterScores[0].Level != 3 {
		t.Errorf("Level should round-trip, got %d", shooterScores[0].Level)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("bricks", (i+1)*100, 1)
	}

	scores, err := store.TopScores("bricks", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("flappy", 100, 0)
	store.SaveScore("flappy", 300, 0)
	store.SaveScore("flappy", 200, 0)

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", 100, 0)
	store.SaveScore("flappy", 200, 0)
	store.SaveScore("shooter", 300, 2)

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	flappyScores, _ := store.TopScores("flappy", 10)
	if len(flappyScores) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(flappyScores))
	}

	shooterScores, _ := store.TopScores("shooter", 10)
	if len(shooterScores) != 1 {
		t.Error("Shooter scores should not be affected by clearing flappy")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("bricks", i*10, i/5)
	}

	scores, err := store.AllScores("bricks")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("shooter", 100, 1)
	store.SaveScore("shooter", 300, 2)

	stats, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount: got %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore: got %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore: got %f, want 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore: got %d, want 400", stats.TotalScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["shooter"] == nil {
		t.Errorf("GetAllGamesStats: %v", all)
	}
}
