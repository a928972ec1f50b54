package matchlog

import (
	"fmt"
	"strings"

	"frolfbook/internal/state"
)

// PlayerSummary aggregates one player's results over a set of matches.
type PlayerSummary struct {
	Wins     int     `json:"wins"`
	Played   int     `json:"played"`
	ScoreSum int     `json:"scoreSum"`
	AvgScore float64 `json:"avgScore"`
}

// SeasonSummary is the head-to-head rollup the summary view renders.
type SeasonSummary struct {
	Jeffy PlayerSummary `json:"jeffy"`
	Nicky PlayerSummary `json:"nicky"`
}

// Summarize computes win/played/average totals over the given matches.
// Lower score wins; ties count for neither. Matches missing either player
// are skipped entirely.
func Summarize(matches []state.Match) SeasonSummary {
	var sum SeasonSummary
	for i := range matches {
		pj := matches[i].Player(state.PlayerJeffy)
		pn := matches[i].Player(state.PlayerNicky)
		if pj == nil || pn == nil {
			continue
		}
		sum.Jeffy.Played++
		sum.Nicky.Played++
		sum.Jeffy.ScoreSum += pj.Score
		sum.Nicky.ScoreSum += pn.Score
		if pj.Score < pn.Score {
			sum.Jeffy.Wins++
		} else if pn.Score < pj.Score {
			sum.Nicky.Wins++
		}
	}
	if sum.Jeffy.Played > 0 {
		sum.Jeffy.AvgScore = float64(sum.Jeffy.ScoreSum) / float64(sum.Jeffy.Played)
	}
	if sum.Nicky.Played > 0 {
		sum.Nicky.AvgScore = float64(sum.Nicky.ScoreSum) / float64(sum.Nicky.Played)
	}
	return sum
}

// otherTokens is the fixed token vocabulary of the "Other" per-hole picker:
// long putts made (30/40/50 ft) and out-of-bounds, per player initial.
var otherTokens = []string{"N30", "N40", "N50", "NOB", "J30", "J40", "J50", "JOB"}

// Notes renders the history table's notes column for a match: CTP counts per
// player plus token tallies, e.g. "J-CTP:2 · N30:1 · JOB:1". Empty when the
// match has no extras.
func Notes(m state.Match) string {
	ctpN, ctpJ := 0, 0
	for _, who := range m.CtpPerHole {
		switch who {
		case state.PlayerNicky:
			ctpN++
		case state.PlayerJeffy:
			ctpJ++
		}
	}

	counts := map[string]int{}
	for _, toks := range m.OtherPerHole {
		for _, t := range toks {
			counts[t]++
		}
	}

	var parts []string
	if ctpJ > 0 {
		parts = append(parts, fmt.Sprintf("J-CTP:%d", ctpJ))
	}
	if ctpN > 0 {
		parts = append(parts, fmt.Sprintf("N-CTP:%d", ctpN))
	}
	for _, tok := range otherTokens {
		if n := counts[tok]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", tok, n))
		}
	}
	return strings.Join(parts, " · ")
}
