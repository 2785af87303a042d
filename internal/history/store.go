// Package history persists resolution attempts to a local SQLite
// database so doctor and the history command can show what was tried on
// this machine and when.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver registration

	"github.com/pydevkit/frameeval/internal/resolver"
)

// Entry is one recorded resolution attempt.
type Entry struct {
	ID        int64
	Timestamp time.Time
	Requested []string
	Outcome   resolver.Outcome
	Provider  string
	Error     string
}

// Store is an append-only attempt log backed by SQLite.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens or creates the store at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS attempts (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			ts        TEXT NOT NULL,
			requested TEXT NOT NULL,
			outcome   TEXT NOT NULL,
			provider  TEXT NOT NULL DEFAULT '',
			error     TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_ts ON attempts(ts);
	`)
	return err
}

// Record implements resolver.Recorder. Failures to persist are dropped;
// history is diagnostics, not a ledger.
func (s *Store) Record(a resolver.Attempt) {
	_, _ = s.Append(a)
}

// Append stores one attempt and returns its row id.
func (s *Store) Append(a resolver.Attempt) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requested, err := json.Marshal(a.Requested)
	if err != nil {
		return 0, fmt.Errorf("marshaling requested names: %w", err)
	}

	errText := ""
	if a.Err != nil {
		errText = a.Err.Error()
	}

	res, err := s.db.Exec(`
		INSERT INTO attempts (ts, requested, outcome, provider, error)
		VALUES (?, ?, ?, ?, ?)
	`, time.Now().UTC().Format(time.RFC3339Nano), string(requested), string(a.Outcome), a.Provider, errText)
	if err != nil {
		return 0, fmt.Errorf("inserting attempt: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit attempts, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, ts, requested, outcome, provider, error
		FROM attempts ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying attempts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts, requested, outcome string
		if err := rows.Scan(&e.ID, &ts, &requested, &outcome, &e.Provider, &e.Error); err != nil {
			return nil, fmt.Errorf("scanning attempt: %w", err)
		}
		if e.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
		}
		if err := json.Unmarshal([]byte(requested), &e.Requested); err != nil {
			return nil, fmt.Errorf("parsing requested names: %w", err)
		}
		e.Outcome = resolver.Outcome(outcome)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
