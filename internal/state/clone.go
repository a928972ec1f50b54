package state

// Clone returns a deep copy of the state. Every mutation in the app runs on
// a clone and the result replaces the published snapshot wholesale, so a
// half-applied operation can never be observed through the old pointer.
func (st *RootState) Clone() *RootState {
	out := &RootState{
		Matches: make([]Match, len(st.Matches)),
		Bubbly: BubblyState{
			Season:         st.Bubbly.Season,
			Pool:           make([]BubblyItem, len(st.Bubbly.Pool)),
			Tallies:        CloneTallies(st.Bubbly.Tallies),
			History:        make([]BubblyAward, len(st.Bubbly.History)),
			HistoryArchive: make([]ArchiveEntry, len(st.Bubbly.HistoryArchive)),
		},
	}

	for i, m := range st.Matches {
		out.Matches[i] = m.clone()
	}
	copy(out.Bubbly.Pool, st.Bubbly.Pool)
	copy(out.Bubbly.History, st.Bubbly.History)
	for i, a := range st.Bubbly.HistoryArchive {
		out.Bubbly.HistoryArchive[i] = ArchiveEntry{
			Season:  a.Season,
			Tallies: CloneTallies(a.Tallies),
			History: append([]BubblyAward{}, a.History...),
		}
	}
	return out
}

func (m Match) clone() Match {
	out := m
	out.Players = make([]PlayerRound, len(m.Players))
	for i, p := range m.Players {
		out.Players[i] = p
		out.Players[i].Holes = append([]int(nil), p.Holes...)
	}
	out.CtpPerHole = append([]string(nil), m.CtpPerHole...)
	out.PuttFt = append([]int(nil), m.PuttFt...)
	out.ObPerHole = append([]int(nil), m.ObPerHole...)
	if m.OtherPerHole != nil {
		out.OtherPerHole = make([][]string, len(m.OtherPerHole))
		for i, toks := range m.OtherPerHole {
			out.OtherPerHole[i] = append([]string(nil), toks...)
		}
	}
	return out
}

// CloneTallies deep-copies a tallies map, including each items map.
func CloneTallies(in map[string]*Tally) map[string]*Tally {
	out := make(map[string]*Tally, len(in))
	for id, t := range in {
		if t == nil {
			out[id] = nil
			continue
		}
		items := make(map[string]int, len(t.Items))
		for k, v := range t.Items {
			items[k] = v
		}
		out[id] = &Tally{Points: t.Points, Items: items}
	}
	return out
}
