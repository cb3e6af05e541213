package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveMatch(Match{GameID: "hexletters", Winner: "red", Moves: 9}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	matches, err := store.RecentMatches("hexletters", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match after reopen, got %d", len(matches))
	}
}

func TestSaveMatchGeneratesUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveMatch(Match{GameID: "hexletters", Winner: "green", Moves: 12, Player: "amal", DurationSecs: 40})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("SaveMatch() returned non-UUID id %q", id)
	}

	m, err := store.MatchByID(id)
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if m == nil {
		t.Fatal("MatchByID() returned nil for saved match")
	}
	if m.Winner != "green" || m.Moves != 12 || m.Player != "amal" || m.DurationSecs != 40 {
		t.Errorf("Unexpected match: %+v", *m)
	}
	if m.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestSaveMatchRejectsBadInput(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(Match{}); err == nil {
		t.Error("Expected error for match without game id")
	}
	if _, err := store.SaveMatch(Match{GameID: "hexletters", MatchID: "not-a-uuid"}); err == nil {
		t.Error("Expected error for malformed match id")
	}

	id := uuid.NewString()
	if _, err := store.SaveMatch(Match{GameID: "hexletters", MatchID: id}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch(Match{GameID: "hexletters", MatchID: id}); err == nil {
		t.Error("Expected error for duplicate match id")
	}
}

func TestMatchByIDMissing(t *testing.T) {
	store := openTestStore(t)

	m, err := store.MatchByID(uuid.NewString())
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if m != nil {
		t.Errorf("Expected nil for unknown match, got %+v", *m)
	}
}

func TestRecentMatchesOrderAndFilter(t *testing.T) {
	store := openTestStore(t)

	for _, m := range []Match{
		{GameID: "hexletters", Winner: "red", Moves: 10},
		{GameID: "hexletters", Winner: "", Moves: 3},
		{GameID: "other", Winner: "green", Moves: 7},
		{GameID: "hexletters", Winner: "green", Moves: 8},
	} {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	recent, err := store.RecentMatches("hexletters", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(recent))
	}
	if recent[0].Moves != 8 || recent[2].Moves != 10 {
		t.Errorf("Expected newest first, got moves %d..%d", recent[0].Moves, recent[2].Moves)
	}

	all, err := store.RecentMatches("", 2)
	if err != nil {
		t.Fatalf("RecentMatches(all) failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected limit of 2, got %d", len(all))
	}
}

func TestBestMatchesSkipsAbandoned(t *testing.T) {
	store := openTestStore(t)

	for _, m := range []Match{
		{GameID: "hexletters", Winner: "red", Moves: 15},
		{GameID: "hexletters", Winner: "", Moves: 2},
		{GameID: "hexletters", Winner: "green", Moves: 9},
		{GameID: "hexletters", Winner: "red", Moves: 11},
	} {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	best, err := store.BestMatches("hexletters", 10)
	if err != nil {
		t.Fatalf("BestMatches() failed: %v", err)
	}
	want := []int{9, 11, 15}
	if len(best) != len(want) {
		t.Fatalf("Expected %d matches, got %d", len(want), len(best))
	}
	for i, m := range best {
		if m.Moves != want[i] {
			t.Errorf("best[%d].Moves = %d, want %d", i, m.Moves, want[i])
		}
	}
}

func TestWinTallyAndStats(t *testing.T) {
	store := openTestStore(t)

	for _, m := range []Match{
		{GameID: "hexletters", Winner: "red", Moves: 12},
		{GameID: "hexletters", Winner: "red", Moves: 8},
		{GameID: "hexletters", Winner: "green", Moves: 10},
		{GameID: "hexletters", Winner: "", Moves: 6},
	} {
		if _, err := store.SaveMatch(m); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	tally, err := store.WinTally("hexletters")
	if err != nil {
		t.Fatalf("WinTally() failed: %v", err)
	}
	if tally["red"] != 2 || tally["green"] != 1 || len(tally) != 2 {
		t.Errorf("Unexpected tally: %v", tally)
	}

	stats, err := store.GetGameStats("hexletters")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Matches != 4 || stats.Wins != 3 || stats.BestMoves != 8 {
		t.Errorf("Unexpected stats: %+v", *stats)
	}
	if stats.AvgMoves != 9 {
		t.Errorf("AvgMoves = %v, want 9", stats.AvgMoves)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["hexletters"].Matches != 4 {
		t.Errorf("Unexpected all-games stats: %v", all)
	}
}

func TestGameStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("hexletters")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Matches != 0 || stats.Wins != 0 || stats.BestMoves != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats, got %+v", *stats)
	}
}

func TestClearMatches(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch(Match{GameID: "hexletters", Winner: "red", Moves: 5})
	store.SaveMatch(Match{GameID: "other", Winner: "red", Moves: 5})

	if err := store.ClearMatches("hexletters"); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	left, _ := store.RecentMatches("hexletters", 10)
	if len(left) != 0 {
		t.Errorf("Expected no hexletters matches, got %d", len(left))
	}
	other, _ := store.RecentMatches("other", 10)
	if len(other) != 1 {
		t.Errorf("Expected other game untouched, got %d", len(other))
	}
}
