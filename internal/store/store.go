// Package store provides SQLite persistence for the player's fish
// journal: which fish are caught, which are pinned.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex // Protects all database operations
}

// State is the stored bookkeeping for one fish. A fish with no row
// has the zero State.
type State struct {
	FishID  uint32
	Caught  bool
	Pinned  bool
	Updated time.Time
}

// Open creates a new Store with the given database path.
// Creates the parent directory and tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// For in-memory databases, use shared cache mode so all connections
		// in the pool see the same database
		connStr = "file::memory:?cache=shared"
	} else if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// For in-memory databases, limit to 1 connection to avoid issues
	// with multiple connections getting different databases
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Enable WAL mode for file-based databases (not :memory:)
	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS fish_state (
		fish_id INTEGER PRIMARY KEY,
		caught INTEGER NOT NULL DEFAULT 0,
		pinned INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// MarkCaught sets the caught flag for a fish, creating its row on
// first touch. The pinned flag is left alone.
// Thread-safe: acquires write lock.
func (s *Store) MarkCaught(fishID uint32, caught bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO fish_state (fish_id, caught, pinned, updated_at)
		VALUES (?, ?, 0, ?)
		ON CONFLICT(fish_id) DO UPDATE SET
			caught = excluded.caught,
			updated_at = excluded.updated_at
	`, fishID, boolToInt(caught), time.Now().UTC())
	return err
}

// MarkPinned sets the pinned flag for a fish, creating its row on
// first touch. The caught flag is left alone.
// Thread-safe: acquires write lock.
func (s *Store) MarkPinned(fishID uint32, pinned bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO fish_state (fish_id, caught, pinned, updated_at)
		VALUES (?, 0, ?, ?)
		ON CONFLICT(fish_id) DO UPDATE SET
			pinned = excluded.pinned,
			updated_at = excluded.updated_at
	`, fishID, boolToInt(pinned), time.Now().UTC())
	return err
}

// GetStates retrieves the whole journal keyed by fish id.
// Thread-safe: acquires read lock.
func (s *Store) GetStates() (map[uint32]State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT fish_id, caught, pinned, updated_at FROM fish_state`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states := make(map[uint32]State)
	for rows.Next() {
		var st State
		var caughtInt, pinnedInt int
		if err := rows.Scan(&st.FishID, &caughtInt, &pinnedInt, &st.Updated); err != nil {
			return nil, err
		}
		st.Caught = caughtInt != 0
		st.Pinned = pinnedInt != 0
		states[st.FishID] = st
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return states, nil
}

// GetState retrieves the stored state for one fish. A fish never
// touched returns the zero State, not an error.
// Thread-safe: acquires read lock.
func (s *Store) GetState(fishID uint32) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st State
	var caughtInt, pinnedInt int
	err := s.db.QueryRow(
		`SELECT fish_id, caught, pinned, updated_at FROM fish_state WHERE fish_id = ?`,
		fishID,
	).Scan(&st.FishID, &caughtInt, &pinnedInt, &st.Updated)
	if errors.Is(err, sql.ErrNoRows) {
		return State{FishID: fishID}, nil
	}
	if err != nil {
		return State{}, err
	}
	st.Caught = caughtInt != 0
	st.Pinned = pinnedInt != 0
	return st, nil
}

// boolToInt converts a bool to an int for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
