package main

import (
	"time"

	"frolfbook/internal/matchlog"
	"frolfbook/internal/season"
	"frolfbook/internal/state"
)

// MatchRow is a match plus the rendered notes column for the history table.
type MatchRow struct {
	state.Match
	Notes string `json:"notes"`
}

// SeasonWindow is what the header's season line renders.
type SeasonWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// SaveMatch appends a match from the entry form and returns the stored
// record. The form submits already-validated data; nothing is checked here.
func (a *App) SaveMatch(payload matchlog.MatchPayload) state.Match {
	copy := a.state.Clone()
	m := matchlog.Add(copy, payload)
	a.commit(copy)
	return m
}

// GetMatches returns matches for the history view, filtered by "all" or
// "current", in the order they were entered.
func (a *App) GetMatches(filter string) []MatchRow {
	matches := matchlog.Matches(a.state, filter, time.Now())
	rows := make([]MatchRow, len(matches))
	for i, m := range matches {
		rows[i] = MatchRow{Match: m, Notes: matchlog.Notes(m)}
	}
	return rows
}

// GetSeasonSummary returns the head-to-head rollup over the filtered
// matches.
func (a *App) GetSeasonSummary(filter string) matchlog.SeasonSummary {
	return matchlog.Summarize(matchlog.Matches(a.state, filter, time.Now()))
}

// GetSeasonWindow returns the current season's bounds and label.
func (a *App) GetSeasonWindow() SeasonWindow {
	now := time.Now()
	start, end := season.Window(now)
	return SeasonWindow{Start: start, End: end, Label: season.Label(now)}
}
