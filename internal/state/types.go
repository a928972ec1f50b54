// Package state defines the persisted blob for the scorekeeper and the
// sqlite-backed store that owns it. The JSON layout is the app's save format
// and its export/import format, so field tags are load-bearing.
package state

import "time"

// The two fixed player identities. Tallies and PlayerRound ids are keyed on
// these strings throughout.
const (
	PlayerJeffy = "jeffy"
	PlayerNicky = "nicky"
)

// Players lists both identities in display order.
var Players = [2]string{PlayerJeffy, PlayerNicky}

// BubblyItem reward kinds.
const (
	RewardPoints = "points"
	RewardItem   = "item"
)

// RootState is the whole persisted document. It is read and written as a
// unit; there is no partial update path.
type RootState struct {
	Matches []Match     `json:"matches"`
	Bubbly  BubblyState `json:"bubbly"`
}

// Match is one completed round. Matches are append-only: once recorded they
// are never edited or deleted.
type Match struct {
	ID      string        `json:"id"`
	Date    string        `json:"date"` // ISO YYYY-MM-DD, user supplied
	Course  string        `json:"course"`
	Players []PlayerRound `json:"players"`

	// Per-hole extras. The entry form evolved over time, so older matches
	// may carry none of these; readers treat absent as empty.
	CtpPerHole   []string   `json:"ctpPerHole,omitempty"`
	OtherPerHole [][]string `json:"otherPerHole,omitempty"`
	PuttFt       []int      `json:"puttFt,omitempty"`
	ObPerHole    []int      `json:"obPerHole,omitempty"`
}

// PlayerRound is one player's line in a match. Score is the only field the
// summary and history views aggregate; everything else is carried as entered.
type PlayerRound struct {
	ID    string `json:"id"`
	Score int    `json:"score"`
	Holes []int  `json:"holes,omitempty"`

	// Legacy single-flag stats from the earliest form layout.
	CTP              bool   `json:"ctp,omitempty"`
	Putt30           bool   `json:"putt30,omitempty"`
	Putt40           bool   `json:"putt40,omitempty"`
	Putt50           bool   `json:"putt50,omitempty"`
	LongPuttDistance string `json:"longPuttDistance,omitempty"`
	OB               int    `json:"ob,omitempty"`
}

// BubblyState holds the reward lottery: the depleting pool, per-player
// tallies, the undo log, and frozen snapshots of past seasons.
type BubblyState struct {
	// Season is the label of the season this pool belongs to, e.g.
	// "2025-2026". The auto-reset scheduler compares it against the label
	// for the current date. Empty on blobs written before the marker
	// existed.
	Season string `json:"season,omitempty"`

	Pool           []BubblyItem      `json:"pool"`
	Tallies        map[string]*Tally `json:"tallies"`
	History        []BubblyAward     `json:"history"`
	HistoryArchive []ArchiveEntry    `json:"historyArchive"`
}

// BubblyItem is one pool entry. Label doubles as the entry's identity key.
// Entries drawn down to qty 0 stay in the pool so an undo can always find
// them by label.
type BubblyItem struct {
	Label string `json:"label"`
	Type  string `json:"type"` // RewardPoints or RewardItem
	Delta int    `json:"delta,omitempty"`
	Qty   int    `json:"qty"`
}

// Tally is one player's accumulated rewards for the active season.
type Tally struct {
	Points int            `json:"points"`
	Items  map[string]int `json:"items"`
}

// BubblyAward records one draw in the undo log. It snapshots the item at
// draw time so later pool edits cannot change what was won.
type BubblyAward struct {
	Timestamp time.Time `json:"timestamp"`
	WinnerID  string    `json:"winnerId"`
	ItemLabel string    `json:"itemLabel"`
	Type      string    `json:"type"`
	Delta     int       `json:"delta,omitempty"`
}

// ArchiveEntry is a frozen tallies/history snapshot written when a season's
// pool is reset. Resets never touch existing entries.
type ArchiveEntry struct {
	Season  string            `json:"season"`
	Tallies map[string]*Tally `json:"tallies"`
	History []BubblyAward     `json:"history"`
}

// PoolRemaining returns the total draws left across all pool entries.
func (b *BubblyState) PoolRemaining() int {
	total := 0
	for _, it := range b.Pool {
		if it.Qty > 0 {
			total += it.Qty
		}
	}
	return total
}

// Player returns the match line for the given player id, or nil if the match
// is missing that player.
func (m *Match) Player(id string) *PlayerRound {
	for i := range m.Players {
		if m.Players[i].ID == id {
			return &m.Players[i]
		}
	}
	return nil
}
