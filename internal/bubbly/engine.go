// Package bubbly implements the BUBBLY reward lottery: a weighted random
// draw from a finite depleting pool, award bookkeeping with single-level
// undo, and the season rollover that archives one season's results before
// reseeding the pool.
package bubbly

import (
	"math/rand/v2"
	"time"

	"frolfbook/internal/season"
	"frolfbook/internal/state"
)

// Engine runs the lottery. The clock and rng are fields so tests can pin
// both; the zero value is not usable, construct with New.
type Engine struct {
	now  func() time.Time
	intn func(int) int
}

// New returns an engine on the real clock and rng.
func New() *Engine {
	return &Engine{now: time.Now, intn: rand.IntN}
}

// NewWithHooks returns an engine with a fixed clock and/or rng. Nil hooks
// fall back to the real ones.
func NewWithHooks(now func() time.Time, intn func(int) int) *Engine {
	e := New()
	if now != nil {
		e.now = now
	}
	if intn != nil {
		e.intn = intn
	}
	return e
}

// RandomPick draws one unit from the pool, weighted by remaining quantity:
// every remaining unit is one ticket. The winning entry's qty is decremented
// as part of the draw; the entry itself stays in the pool even at zero so a
// later undo can find it by label. Returns nil without touching state when
// nothing is left to draw.
func (e *Engine) RandomPick(st *state.RootState) *state.BubblyItem {
	pool := st.Bubbly.Pool

	total := 0
	for i := range pool {
		if pool[i].Qty > 0 {
			total += pool[i].Qty
		}
	}
	if total == 0 {
		return nil
	}

	// Cumulative walk instead of materializing one ticket per unit.
	ticket := e.intn(total)
	for i := range pool {
		if pool[i].Qty <= 0 {
			continue
		}
		ticket -= pool[i].Qty
		if ticket < 0 {
			drawn := pool[i] // snapshot before the decrement
			pool[i].Qty--
			return &drawn
		}
	}
	// Unreachable: tickets always land inside the cumulative range.
	return nil
}

// ApplyAward records a drawn item against a winner: appends the history
// entry and updates the winner's tally. winnerID must be one of the two
// fixed player identities; that is the caller's contract.
func (e *Engine) ApplyAward(st *state.RootState, item *state.BubblyItem, winnerID string) {
	st.Bubbly.History = append(st.Bubbly.History, state.BubblyAward{
		Timestamp: e.now(),
		WinnerID:  winnerID,
		ItemLabel: item.Label,
		Type:      item.Type,
		Delta:     item.Delta,
	})

	t := st.Bubbly.Tallies[winnerID]
	if t == nil {
		t = &state.Tally{Items: map[string]int{}}
		st.Bubbly.Tallies[winnerID] = t
	}
	if item.Type == state.RewardPoints {
		t.Points += item.Delta
	} else {
		t.Items[item.Label]++
	}
}

// UndoLast reverses the most recent award: pops it from history, puts one
// unit back on the matching pool entry, and unwinds the tally. Returns false
// when there is nothing to undo. If the pool no longer carries the label
// (imported data from a variant that deleted exhausted entries) the qty
// restore is skipped; the tally is still unwound.
func (e *Engine) UndoLast(st *state.RootState) bool {
	n := len(st.Bubbly.History)
	if n == 0 {
		return false
	}
	last := st.Bubbly.History[n-1]
	st.Bubbly.History = st.Bubbly.History[:n-1]

	for i := range st.Bubbly.Pool {
		if st.Bubbly.Pool[i].Label == last.ItemLabel {
			st.Bubbly.Pool[i].Qty++
			break
		}
	}

	if t := st.Bubbly.Tallies[last.WinnerID]; t != nil {
		if last.Type == state.RewardPoints {
			t.Points -= last.Delta
		} else if t.Items[last.ItemLabel] > 0 {
			t.Items[last.ItemLabel]--
			if t.Items[last.ItemLabel] == 0 {
				delete(t.Items, last.ItemLabel)
			}
		}
	}
	return true
}

// Reset reseeds the pool, zeroes both tallies, clears the undo log, and
// stamps the state with the current season label. The archive is left
// alone — archiving is a separate step that happens before reset on the
// manual and auto paths.
func (e *Engine) Reset(st *state.RootState) {
	st.Bubbly.Pool = state.SeedPool()
	st.Bubbly.Tallies = state.ZeroTallies()
	st.Bubbly.History = []state.BubblyAward{}
	st.Bubbly.Season = season.Label(e.now())
}

// Archive freezes the current tallies and history into a new archive entry
// under the given season label. Snapshots are deep copies, so later resets
// cannot reach back into them.
func (e *Engine) Archive(st *state.RootState, label string) {
	st.Bubbly.HistoryArchive = append(st.Bubbly.HistoryArchive, state.ArchiveEntry{
		Season:  label,
		Tallies: state.CloneTallies(st.Bubbly.Tallies),
		History: append([]state.BubblyAward{}, st.Bubbly.History...),
	})
}

// ResetWithArchive is the manual reset: archive the season being closed,
// then reset. The label comes from the state's own marker when present, so
// a reset done after July 5 on a stale pool still files it under the season
// it was played in.
func (e *Engine) ResetWithArchive(st *state.RootState) {
	label := st.Bubbly.Season
	if label == "" {
		label = season.Label(e.now())
	}
	e.Archive(st, label)
	e.Reset(st)
}

// MaybeAutoReset rolls the pool over when a season boundary has been crossed
// since the last recorded activity. Called once on every app load; reports
// whether a rollover happened. Idempotent within a season: after the first
// rollover the marker matches the current label and further calls no-op.
// Blobs with no marker (written before the marker existed) adopt the current
// season without archiving — wiping a live mid-season pool on upgrade would
// be worse than missing one historical rollover.
func (e *Engine) MaybeAutoReset(st *state.RootState) bool {
	current := season.Label(e.now())
	switch st.Bubbly.Season {
	case current:
		return false
	case "":
		st.Bubbly.Season = current
		return false
	}

	e.Archive(st, st.Bubbly.Season)
	e.Reset(st)
	return true
}
