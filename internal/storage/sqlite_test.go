package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/stardrift/internal/core"
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

func saveScore(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	run := RunFromSnapshot(gameID, core.Snapshot{Score: score, Level: 1}, "collision")
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	snap := core.Snapshot{Score: 130, Level: 2, Progress: 30, Missed: 3, GameOver: true}
	id, err := store.SaveRun(RunFromSnapshot("stardrift", snap, "missed"))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == 0 {
		t.Errorf("SaveRun() returned zero ID")
	}

	runs, err := store.TopRuns("stardrift", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	if got.Score != 130 || got.Level != 2 || got.Collected != 13 || got.Missed != 3 || got.Cause != "missed" {
		t.Errorf("Unexpected run: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Errorf("CreatedAt not populated")
	}
}

func TestStoreTopRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 500, 300, 200, 400} {
		saveScore(t, store, "stardrift", score)
	}
	saveScore(t, store, "other", 900)

	runs, err := store.TopRuns("stardrift", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 20, 30} {
		saveScore(t, store, "stardrift", score)
	}

	runs, err := store.RecentRuns("stardrift", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 30 || runs[1].Score != 20 {
		t.Errorf("Unexpected recent runs: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("stardrift")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveScore(t, store, "stardrift", 100)
	saveScore(t, store, "stardrift", 300)
	saveScore(t, store, "stardrift", 200)

	high, err = store.HighScore("stardrift")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "stardrift", 100)
	saveScore(t, store, "stardrift", 200)
	saveScore(t, store, "other", 300)

	if err := store.ClearRuns("stardrift"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("stardrift", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	other, _ := store.TopRuns("other", 10)
	if len(other) != 1 {
		t.Errorf("Other game's runs should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("stardrift")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty game: %+v", empty)
	}

	store.SaveRun(Run{GameID: "stardrift", Score: 100, Level: 2, Collected: 10, Cause: "collision"}) //nolint:errcheck
	store.SaveRun(Run{GameID: "stardrift", Score: 50, Level: 1, Collected: 5, Missed: 3, Cause: "missed"}) //nolint:errcheck

	stats, err := store.GameStats("stardrift")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 100 || stats.BestLevel != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 75 || stats.TotalCollected != 15 || stats.Collisions != 1 {
		t.Errorf("Unexpected aggregates: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Errorf("LastPlayed not populated")
	}
}

func TestStoreNestedPath(t *testing.T) {
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
