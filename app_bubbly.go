package main

import (
	"fmt"

	"frolfbook/internal/state"
)

// BubblyStatus is the BUBBLY view's data: remaining draws, per-player
// tallies, and the recent history panel (newest first).
type BubblyStatus struct {
	Remaining int                     `json:"remaining"`
	Season    string                  `json:"season"`
	Tallies   map[string]*state.Tally `json:"tallies"`
	Recent    []state.BubblyAward     `json:"recent"`
}

// recentHistoryLimit caps the history panel.
const recentHistoryLimit = 15

// DrawBubbly draws one item and credits it to winnerID. Returns nil when the
// pool is exhausted, in which case nothing changed and the frontend shows
// its "pool is empty" message.
func (a *App) DrawBubbly(winnerID string) *state.BubblyItem {
	copy := a.state.Clone()
	item := a.engine.RandomPick(copy)
	if item == nil {
		fmt.Println("[Bubbly] Draw requested but pool is empty")
		return nil
	}
	a.engine.ApplyAward(copy, item, winnerID)
	a.commit(copy)
	fmt.Printf("[Bubbly] %s won %q\n", winnerID, item.Label)
	return item
}

// UndoBubbly reverses the most recent draw. Returns false when there is
// nothing to undo; no state changes in that case.
func (a *App) UndoBubbly() bool {
	copy := a.state.Clone()
	if !a.engine.UndoLast(copy) {
		return false
	}
	a.commit(copy)
	fmt.Println("[Bubbly] Last award undone")
	return true
}

// ResetBubblyWithArchive archives the current season's tallies and history,
// then reseeds the pool. The frontend confirms with the user before calling.
func (a *App) ResetBubblyWithArchive() {
	copy := a.state.Clone()
	a.engine.ResetWithArchive(copy)
	a.commit(copy)
	fmt.Println("[Bubbly] Manual reset - season archived, pool reseeded")
}

// GetBubblyStatus returns the BUBBLY view's current numbers.
func (a *App) GetBubblyStatus() BubblyStatus {
	b := &a.state.Bubbly

	n := len(b.History)
	limit := n
	if limit > recentHistoryLimit {
		limit = recentHistoryLimit
	}
	recent := make([]state.BubblyAward, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		recent = append(recent, b.History[i])
	}

	return BubblyStatus{
		Remaining: b.PoolRemaining(),
		Season:    b.Season,
		Tallies:   b.Tallies,
		Recent:    recent,
	}
}
