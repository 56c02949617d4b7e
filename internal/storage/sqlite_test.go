package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func mustSave(t *testing.T, store *Store, r Result) int64 {
	t.Helper()
	id, err := store.SaveResult(r)
	if err != nil {
		t.Fatalf("SaveResult(%+v) failed: %v", r, err)
	}
	return id
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndBestResults(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "easy", Difficulty: 4, Moves: 30, Seed: 1, Duration: 40 * time.Second})
	mustSave(t, store, Result{GameID: "easy", Difficulty: 4, Moves: 18, Seed: 2, Duration: 90 * time.Second})
	mustSave(t, store, Result{GameID: "easy", Difficulty: 4, Moves: 18, Seed: 3, Duration: 25 * time.Second})
	mustSave(t, store, Result{GameID: "hard", Difficulty: 6, Moves: 12, Seed: 4})

	results, err := store.BestResults("easy", 10)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Fewest moves first, ties broken by duration
	wantSeeds := []int64{3, 2, 1}
	for i, r := range results {
		if r.Seed != wantSeeds[i] {
			t.Errorf("result %d: seed = %d, want %d", i, r.Seed, wantSeeds[i])
		}
	}
	if results[0].Duration != 25*time.Second {
		t.Errorf("Duration = %v, want 25s", results[0].Duration)
	}
	if results[0].Difficulty != 4 || results[0].GameID != "easy" {
		t.Errorf("unexpected result %+v", results[0])
	}
	if results[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreBestResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, Result{GameID: "test", Difficulty: 5, Moves: 50 - i})
	}

	results, err := store.BestResults("test", 3)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}
	if results[0].Moves != 46 || results[1].Moves != 47 || results[2].Moves != 48 {
		t.Errorf("Results not in expected order: %+v", results)
	}
}

func TestStoreRejectsUnfinishedResult(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{GameID: "easy", Difficulty: 4, Moves: 0}); err == nil {
		t.Error("a result with no moves should be rejected")
	}
}

func TestStoreBestMoves(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.BestMoves("medium"); err != nil || ok {
		t.Fatalf("BestMoves() on empty game = ok %v, err %v", ok, err)
	}

	mustSave(t, store, Result{GameID: "medium", Difficulty: 5, Moves: 40})
	mustSave(t, store, Result{GameID: "medium", Difficulty: 5, Moves: 22})

	best, ok, err := store.BestMoves("medium")
	if err != nil || !ok {
		t.Fatalf("BestMoves() failed: ok %v, err %v", ok, err)
	}
	if best != 22 {
		t.Errorf("BestMoves() = %d, want 22", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("expert")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Solved != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, Result{GameID: "expert", Difficulty: 7, Moves: 40, Duration: 3 * time.Minute})
	mustSave(t, store, Result{GameID: "expert", Difficulty: 7, Moves: 60, Duration: 2 * time.Minute})

	stats, err := store.Stats("expert")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Solved != 2 || stats.BestMoves != 40 || stats.AvgMoves != 50 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.BestDuration != 2*time.Minute {
		t.Errorf("BestDuration = %v, want 2m", stats.BestDuration)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{GameID: "easy", Difficulty: 4, Moves: 10})
	mustSave(t, store, Result{GameID: "hard", Difficulty: 6, Moves: 20})

	if err := store.ClearResults("easy"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	if results, _ := store.BestResults("easy", 10); len(results) != 0 {
		t.Errorf("Expected 0 easy results after clear, got %d", len(results))
	}
	if results, _ := store.BestResults("hard", 10); len(results) != 1 {
		t.Error("hard results should not be affected by clearing easy")
	}
}
