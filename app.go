package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"frolfbook/internal/bubbly"
	"frolfbook/internal/state"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App struct. It owns the store handle and the published state snapshot; all
// bound methods mutate a clone and swap it in through commit.
type App struct {
	ctx    context.Context
	store  *state.Store
	engine *bubbly.Engine
	state  *state.RootState
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{
		engine: bubbly.New(),
		state:  state.Default(),
	}
}

// startup is called when the app starts: open the store, load the blob, run
// the season rollover check, and publish the result.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	store, err := state.Open(dbPath())
	if err != nil {
		// Keep running on an in-memory default; nothing will persist but the
		// user can still export.
		fmt.Printf("Failed to open state store: %v\n", err)
	} else {
		a.store = store
		fmt.Printf("[Store] Using %s\n", store.Path())
	}

	st := state.Default()
	if a.store != nil {
		st = a.store.Load()
	}
	if a.engine.MaybeAutoReset(st) {
		fmt.Println("[Bubbly] New season detected - pool archived and reseeded")
	}
	a.commit(st)
}

// shutdown is called when the app is closing
func (a *App) shutdown(ctx context.Context) {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			fmt.Printf("[Store] Close failed: %v\n", err)
		}
	}
}

// commit persists st, publishes it as the current snapshot, and notifies the
// frontend. Every mutation path funnels through here.
func (a *App) commit(st *state.RootState) {
	if a.store != nil {
		if err := a.store.Save(st); err != nil {
			fmt.Printf("[Store] Save failed: %v\n", err)
		}
	}
	a.state = st
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "state:update", st)
	}
}

// GetState returns the full current snapshot for the initial render.
func (a *App) GetState() *state.RootState {
	return a.state
}

// dbPath resolves the sqlite file location. FROLFBOOK_DATA_DIR wins; the
// default is the per-user config directory.
func dbPath() string {
	dir := os.Getenv("FROLFBOOK_DATA_DIR")
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			base = "."
		}
		dir = filepath.Join(base, "frolfbook")
	}
	return filepath.Join(dir, "frolfbook.db")
}
