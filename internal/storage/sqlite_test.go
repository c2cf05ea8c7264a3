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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{3, 12, 7} {
		if _, err := store.SaveScore("dodge", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("circuit", 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("dodge", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("expected 3 dodge scores, got %d", len(scores))
	}
	if scores[0].Score != 12 || scores[1].Score != 7 || scores[2].Score != 3 {
		t.Errorf("scores not sorted descending: %v, %v, %v",
			scores[0].Score, scores[1].Score, scores[2].Score)
	}
	for _, e := range scores {
		if e.GameID != "dodge" {
			t.Errorf("got score for game %q, want dodge", e.GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("dodge", i); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("dodge", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("expected 5 scores with limit 5, got %d", len(scores))
	}

	// Non-positive limit falls back to the default of 10.
	scores, err = store.TopScores("dodge", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("expected 10 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet: zero, not an error.
	best, err := store.HighScore("dodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("empty high score = %d, want 0", best)
	}

	for _, score := range []int{4, 9, 2} {
		if _, err := store.SaveScore("dodge", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	best, err = store.HighScore("dodge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if best != 9 {
		t.Errorf("high score = %d, want 9", best)
	}
}

func TestStoreCountScores(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("circuit", 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("circuit", 2); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	n, err := store.CountScores("circuit")
	if err != nil {
		t.Fatalf("CountScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}

	n, err = store.CountScores("dodge")
	if err != nil {
		t.Fatalf("CountScores() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("count for unplayed game = %d, want 0", n)
	}
}
