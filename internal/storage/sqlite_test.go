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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.flappy/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".flappy", "scores.db")); err != nil {
		t.Errorf("database should be created under HOME: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		player string
		score  int
	}{
		{"alice", 10},
		{"bob", 5},
		{"alice", 20},
		{"carol", 10},
	} {
		if _, err := store.SaveScore(s.player, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}

	want := []struct {
		player string
		score  int
	}{
		{"alice", 20},
		{"alice", 10}, // ties keep insertion order
		{"carol", 10},
		{"bob", 5},
	}
	for i, w := range want {
		if scores[i].Player != w.player || scores[i].Score != w.score {
			t.Errorf("rank %d = %s/%d, expected %s/%d", i, scores[i].Player, scores[i].Score, w.player, w.score)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreSaveScoreAnonymous(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("   ", 3); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	scores, _ := store.TopScores(1)
	if len(scores) != 1 || scores[0].Player != AnonymousPlayer {
		t.Errorf("blank player should be stored as %q, got %+v", AnonymousPlayer, scores)
	}
}

func TestPlayerName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"  bob\t", "bob"},
		{"", AnonymousPlayer},
		{" \n ", AnonymousPlayer},
	}
	for _, tc := range tests {
		if got := PlayerName(tc.in); got != tc.want {
			t.Errorf("PlayerName(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestStoreSaveScoreNegative(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("alice", -1); err == nil {
		t.Error("negative scores should be rejected")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		store.SaveScore("test", (i+1)*10)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 150 || scores[1].Score != 140 || scores[2].Score != 130 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10.
	scores, _ = store.TopScores(0)
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveScore("alice", 7)
	store.SaveScore("bob", 30)
	store.SaveScore("alice", 12)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStorePlayerBest(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("alice", 7)
	store.SaveScore("bob", 30)
	store.SaveScore("alice", 12)
	store.SaveScore("  ", 5)

	tests := []struct {
		player string
		want   int
	}{
		{"alice", 12},
		{"bob", 30},
		{"nobody", 0},
		{" alice ", 12},
		{"", 5},
		{AnonymousPlayer, 5},
	}
	for _, tc := range tests {
		got, err := store.PlayerBest(tc.player)
		if err != nil {
			t.Fatalf("PlayerBest(%q) failed: %v", tc.player, err)
		}
		if got != tc.want {
			t.Errorf("PlayerBest(%q) = %d, expected %d", tc.player, got, tc.want)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 0 || st.HighScore != 0 || !st.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", st)
	}

	store.SaveScore("alice", 4)
	store.SaveScore("bob", 8)

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.HighScore != 8 || st.AvgScore != 6 {
		t.Errorf("stats = %+v", st)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("alice", 100)
	store.SaveScore("bob", 200)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
}
