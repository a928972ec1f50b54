package state

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "frolfbook.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_LoadMissingReturnsDefault(t *testing.T) {
	s := openTestStore(t)

	st := s.Load()
	if len(st.Matches) != 0 {
		t.Errorf("fresh load returned %d matches, want 0", len(st.Matches))
	}
	if st.Bubbly.PoolRemaining() == 0 {
		t.Error("fresh load should carry the seeded pool")
	}
}

// TestStore_RoundTrip saves a populated state and checks the reload is
// byte-for-byte identical.
func TestStore_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	st := Default()
	st.Matches = append(st.Matches, Match{
		ID:     "m1",
		Date:   "2024-09-14",
		Course: "Maple Hill",
		Players: []PlayerRound{
			{ID: PlayerJeffy, Score: 54, Holes: []int{3, 3, 4}},
			{ID: PlayerNicky, Score: 58},
		},
		CtpPerHole:   []string{"jeffy", "none"},
		OtherPerHole: [][]string{{"N30"}, {}},
	})
	st.Bubbly.Season = "2024-2025"
	st.Bubbly.Tallies[PlayerNicky].Points = 15
	st.Bubbly.History = append(st.Bubbly.History, BubblyAward{
		Timestamp: time.Date(2024, 9, 14, 19, 0, 0, 0, time.UTC),
		WinnerID:  PlayerNicky,
		ItemLabel: "+5 points",
		Type:      RewardPoints,
		Delta:     5,
	})

	if err := s.Save(st); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := s.Load()

	want, _ := json.Marshal(st)
	have, _ := json.Marshal(got)
	if string(want) != string(have) {
		t.Errorf("round trip mismatch:\nsaved  %s\nloaded %s", want, have)
	}
}

func TestStore_SaveReplacesWholeBlob(t *testing.T) {
	s := openTestStore(t)

	st := Default()
	st.Matches = append(st.Matches, Match{ID: "m1", Date: "2024-01-01"})
	if err := s.Save(st); err != nil {
		t.Fatalf("first save: %v", err)
	}

	st2 := Default()
	if err := s.Save(st2); err != nil {
		t.Fatalf("second save: %v", err)
	}

	if got := s.Load(); len(got.Matches) != 0 {
		t.Errorf("loaded %d matches, want 0 (save is total replacement)", len(got.Matches))
	}
}

// TestStore_CorruptBlobDefaults writes garbage under the state key and
// checks load falls back to a fresh default instead of failing.
func TestStore_CorruptBlobDefaults(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.db.Exec(
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)`,
		StateKey, "{not json", "2024-01-01T00:00:00Z",
	); err != nil {
		t.Fatalf("inject corrupt row: %v", err)
	}

	st := s.Load()
	if st == nil || len(st.Matches) != 0 {
		t.Error("corrupt blob should load as a fresh default state")
	}
}

func TestStore_LoadNormalizesSparseBlob(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.db.Exec(
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)`,
		StateKey, `{"matches":null,"bubbly":{"pool":null}}`, "2024-01-01T00:00:00Z",
	); err != nil {
		t.Fatalf("inject sparse row: %v", err)
	}

	st := s.Load()
	if st.Matches == nil || st.Bubbly.Pool == nil || st.Bubbly.Tallies[PlayerJeffy] == nil {
		t.Error("sparse blob not normalized on load")
	}
}

func TestStore_OpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("expected an error for an empty path")
	}
}
