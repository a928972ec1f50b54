package state

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed pool.yaml
var poolSeed []byte

type poolConfig struct {
	Pool []BubblyItem `yaml:"pool"`
}

// SeedPool returns a fresh copy of the default BUBBLY pool.
func SeedPool() []BubblyItem {
	var cfg poolConfig
	if err := yaml.Unmarshal(poolSeed, &cfg); err != nil || len(cfg.Pool) == 0 {
		// The seed file is compiled in, so this only fires if it is edited
		// into something unparsable. Fall back to a bare points pool rather
		// than shipping an empty lottery.
		fmt.Printf("[State] Failed to parse pool seed: %v\n", err)
		return []BubblyItem{{Label: "+5 points", Type: RewardPoints, Delta: 5, Qty: 5}}
	}
	pool := make([]BubblyItem, len(cfg.Pool))
	copy(pool, cfg.Pool)
	return pool
}

// Default returns a freshly initialized state: no matches, seeded pool, zero
// tallies, empty history and archive. The season marker is left empty and is
// stamped on first load by the auto-reset pass.
func Default() *RootState {
	return &RootState{
		Matches: []Match{},
		Bubbly: BubblyState{
			Pool:           SeedPool(),
			Tallies:        ZeroTallies(),
			History:        []BubblyAward{},
			HistoryArchive: []ArchiveEntry{},
		},
	}
}

// ZeroTallies returns a tallies map with a zeroed entry for both players.
func ZeroTallies() map[string]*Tally {
	t := make(map[string]*Tally, len(Players))
	for _, id := range Players {
		t[id] = &Tally{Items: map[string]int{}}
	}
	return t
}

// Wipe resets st in place to the default empty shape. Destructive and
// unconditional; callers confirm with the user first.
func Wipe(st *RootState) {
	*st = *Default()
}

// Normalize fills in whatever a decoded blob is missing so every field is
// safe to use: nil slices become empty, both players get a tally, every
// tally gets an items map. It never rejects anything.
func Normalize(st *RootState) {
	if st.Matches == nil {
		st.Matches = []Match{}
	}
	for i := range st.Matches {
		if st.Matches[i].Players == nil {
			st.Matches[i].Players = []PlayerRound{}
		}
	}

	b := &st.Bubbly
	if b.Pool == nil {
		b.Pool = []BubblyItem{}
	}
	if b.Tallies == nil {
		b.Tallies = make(map[string]*Tally, len(Players))
	}
	for _, id := range Players {
		if b.Tallies[id] == nil {
			b.Tallies[id] = &Tally{}
		}
		if b.Tallies[id].Items == nil {
			b.Tallies[id].Items = map[string]int{}
		}
	}
	if b.History == nil {
		b.History = []BubblyAward{}
	}
	if b.HistoryArchive == nil {
		b.HistoryArchive = []ArchiveEntry{}
	}
	for i := range b.HistoryArchive {
		if b.HistoryArchive[i].Tallies == nil {
			b.HistoryArchive[i].Tallies = map[string]*Tally{}
		}
		if b.HistoryArchive[i].History == nil {
			b.HistoryArchive[i].History = []BubblyAward{}
		}
	}
}
