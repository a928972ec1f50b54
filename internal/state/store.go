package state

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// StateKey is the single well-known key the whole blob lives under.
const StateKey = "discgolf/state/v1"

// Store persists the RootState blob as one row in a local sqlite database.
// The table is a plain key/value store: load reads the row, save replaces it
// in a single upsert, so a reader always sees either the old or the new blob.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates the database (and its parent directory) if needed and
// prepares the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Load reads the blob and returns it normalized. A missing row, unreadable
// database, or corrupt JSON all come back as a fresh default state — load
// never fails past this boundary.
func (s *Store) Load() *RootState {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, StateKey).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Default()
	case err != nil:
		fmt.Printf("[Store] Failed to read state, starting fresh: %v\n", err)
		return Default()
	}

	st := &RootState{}
	if err := json.Unmarshal([]byte(raw), st); err != nil {
		fmt.Printf("[Store] Corrupt state blob, starting fresh: %v\n", err)
		return Default()
	}
	Normalize(st)
	return st
}

// Save serializes the full state and replaces the stored blob.
func (s *Store) Save(st *RootState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		StateKey, string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SniffShape checks that an imported document at least looks like a state
// blob: a JSON object carrying both a "matches" and a "bubbly" key. It is a
// shape sniff, not schema validation — Normalize handles the rest.
func SniffShape(raw []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("not a JSON object: %w", err)
	}
	if _, ok := doc["matches"]; !ok {
		return fmt.Errorf("missing \"matches\" key")
	}
	if _, ok := doc["bubbly"]; !ok {
		return fmt.Errorf("missing \"bubbly\" key")
	}
	return nil
}
