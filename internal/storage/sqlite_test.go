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

func saveRun(t *testing.T, store *Store, score int, outcome Outcome) Run {
	t.Helper()
	run, err := store.SaveRun(Run{
		Player:       "tester",
		Score:        score,
		LevelReached: 1,
		LevelName:    "Green Hills",
		Coins:        score / 100,
		Enemies:      1,
		PowerUps:     2,
		Outcome:      outcome,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return run
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

	saved := saveRun(t, store, 1200, OutcomeGameOver)
	if saved.ID == 0 {
		t.Error("Expected ID to be assigned")
	}
	if saved.RunID == "" {
		t.Error("Expected RunID to be assigned")
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for saved run")
	}
	if got.Score != 1200 || got.Coins != 12 || got.Enemies != 1 || got.PowerUps != 2 {
		t.Errorf("Counters not round-tripped: %+v", got)
	}
	if got.Player != "tester" || got.LevelName != "Green Hills" || got.LevelReached != 1 {
		t.Errorf("Labels not round-tripped: %+v", got)
	}
	if got.Outcome != OutcomeGameOver {
		t.Errorf("Expected outcome game_over, got %q", got.Outcome)
	}
	if got.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
}

func TestStoreKeepsGivenRunID(t *testing.T) {
	store := openTestStore(t)

	run, err := store.SaveRun(Run{RunID: "fixed-id", Score: 10, LevelName: "x", Outcome: OutcomeVictory})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if run.RunID != "fixed-id" {
		t.Errorf("Expected RunID fixed-id, got %q", run.RunID)
	}

	if _, err := store.SaveRun(run); err == nil {
		t.Error("Expected duplicate RunID to fail")
	}
}

func TestStoreRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Score: 10, Outcome: "abandoned"}); err == nil {
		t.Error("Expected error for unknown outcome")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil, got %+v", got)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 500, 300, 500, 50} {
		saveRun(t, store, score, OutcomeGameOver)
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	expected := []int{500, 500, 300}
	for i, want := range expected {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, expected %d", i, runs[i].Score, want)
		}
	}
	if runs[0].ID > runs[1].ID {
		t.Error("Expected equal scores in insertion order")
	}

	all, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected default limit to return all 5 runs, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	saveRun(t, store, 700, OutcomeVictory)
	saveRun(t, store, 900, OutcomeGameOver)
	saveRun(t, store, 400, OutcomeGameOver)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 900 {
		t.Errorf("Expected high score 900, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	saveRun(t, store, 1000, OutcomeVictory)
	saveRun(t, store, 200, OutcomeGameOver)
	if _, err := store.SaveRun(Run{Score: 300, LevelReached: 2, LevelName: "Sky Bridges", Coins: 5, Enemies: 4, Outcome: OutcomeGameOver}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Expected 3 runs, got %d", stats.Runs)
	}
	if stats.Victories != 1 {
		t.Errorf("Expected 1 victory, got %d", stats.Victories)
	}
	if stats.HighScore != 1000 {
		t.Errorf("Expected high score 1000, got %d", stats.HighScore)
	}
	if stats.AvgScore != 500 {
		t.Errorf("Expected average 500, got %v", stats.AvgScore)
	}
	if stats.TotalCoins != 10+2+5 {
		t.Errorf("Expected 17 coins, got %d", stats.TotalCoins)
	}
	if stats.TotalEnemies != 6 {
		t.Errorf("Expected 6 enemies, got %d", stats.TotalEnemies)
	}
	if stats.BestLevel != 2 {
		t.Errorf("Expected best level 2, got %d", stats.BestLevel)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, 100, OutcomeGameOver)
	saveRun(t, store, 200, OutcomeGameOver)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
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

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	saveRun(t, store, 321, OutcomeVictory)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 321 {
		t.Errorf("Expected 321 after reopen, got %d", high)
	}
}
