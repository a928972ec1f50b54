// Package matchlog owns the append-only round log and its season-filtered
// views. Matches are recorded exactly as entered; anything aggregating them
// must tolerate rounds that are missing a player.
package matchlog

import (
	"time"

	"github.com/google/uuid"

	"frolfbook/internal/season"
	"frolfbook/internal/state"
)

// Filter values accepted by Matches.
const (
	FilterAll     = "all"
	FilterCurrent = "current"
)

// MatchPayload is what the entry form submits. The players slice should
// carry both fixed identities; Add does not enforce that, downstream
// aggregation just skips incomplete matches.
type MatchPayload struct {
	Date         string              `json:"date"`
	Course       string              `json:"course"`
	Players      []state.PlayerRound `json:"players"`
	CtpPerHole   []string            `json:"ctpPerHole,omitempty"`
	OtherPerHole [][]string          `json:"otherPerHole,omitempty"`
	PuttFt       []int               `json:"puttFt,omitempty"`
	ObPerHole    []int               `json:"obPerHole,omitempty"`
}

// Add appends a new match built from the payload, assigning a fresh id, and
// returns the stored match. No plausibility validation is performed.
func Add(st *state.RootState, p MatchPayload) state.Match {
	m := state.Match{
		ID:           uuid.NewString(),
		Date:         p.Date,
		Course:       p.Course,
		Players:      p.Players,
		CtpPerHole:   p.CtpPerHole,
		OtherPerHole: p.OtherPerHole,
		PuttFt:       p.PuttFt,
		ObPerHole:    p.ObPerHole,
	}
	if m.Players == nil {
		m.Players = []state.PlayerRound{}
	}
	st.Matches = append(st.Matches, m)
	return m
}

// Matches returns the log filtered by "all" or "current". Current keeps only
// matches dated inside the season window of now, endpoints inclusive, and
// preserves log order. Unknown filters behave like "all".
func Matches(st *state.RootState, filter string, now time.Time) []state.Match {
	if filter != FilterCurrent {
		return st.Matches
	}
	start, end := season.Window(now)
	var out []state.Match
	for _, m := range st.Matches {
		if season.Contains(start, end, m.Date) {
			out = append(out, m)
		}
	}
	return out
}
