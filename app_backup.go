package main

import (
	"encoding/json"
	"fmt"
	"time"

	"frolfbook/internal/state"
)

// ExportPayload carries a full backup: pretty-printed JSON plus the
// suggested download filename.
type ExportPayload struct {
	Filename string `json:"filename"`
	Data     string `json:"data"`
}

// ExportData serializes the entire state for a local backup file.
func (a *App) ExportData() (ExportPayload, error) {
	raw, err := json.MarshalIndent(a.state, "", "  ")
	if err != nil {
		return ExportPayload{}, fmt.Errorf("failed to marshal state: %w", err)
	}
	return ExportPayload{
		Filename: fmt.Sprintf("disc-golf-data-%s.json", time.Now().Format("2006-01-02")),
		Data:     string(raw),
	}, nil
}

// ImportData replaces the whole state with an exported document. The
// document only has to pass the shape sniff (top-level "matches" and
// "bubbly" keys); everything else is defaulted on the way in.
func (a *App) ImportData(raw string) error {
	if err := state.SniffShape([]byte(raw)); err != nil {
		return fmt.Errorf("that file does not look like disc golf data: %w", err)
	}

	st := &state.RootState{}
	if err := json.Unmarshal([]byte(raw), st); err != nil {
		return fmt.Errorf("could not read that file: %w", err)
	}
	state.Normalize(st)
	a.commit(st)
	fmt.Println("[Backup] Data imported")
	return nil
}

// WipeAll resets everything to the default empty state: matches, pool,
// tallies, history, and archive. The frontend double-confirms before
// calling.
func (a *App) WipeAll() {
	copy := a.state.Clone()
	state.Wipe(copy)
	a.commit(copy)
	fmt.Println("[Backup] All data wiped")
}
