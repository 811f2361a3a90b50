package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a SQLite implementation of Store[S].
//
// It archives search runs in a single-file database.
// Designed for:
//   - Development and local use with zero setup
//   - Keeping a personal history of solves on one machine
//   - Prototyping before migrating to a shared database
//
// SQLiteStore uses WAL mode for concurrent reads and parameterized writes.
//
// Features:
//   - Single file database (e.g., "./runs.db")
//   - Auto-migration on first use
//   - WAL mode for concurrent reads
//
// Schema:
//   - search_runs: one row per archived run, path stored as a JSON array
//
// Type parameter S is the puzzle state type to persist (must be
// JSON-serializable).
type SQLiteStore[S any] struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
	path   string
}

// NewSQLiteStore creates a new SQLite-backed archive.
//
// The path parameter specifies the database file location:
//   - "./runs.db" - file in current directory
//   - "/tmp/runs.db" - absolute path
//   - ":memory:" - in-memory database (data lost on close)
//
// The store automatically:
//   - Creates the database file if it doesn't exist
//   - Creates the search_runs table
//   - Enables WAL mode for concurrent reads
//   - Configures a busy timeout for lock contention
//
// Example:
//
//	archive, err := store.NewSQLiteStore[crossing.State]("./runs.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer archive.Close()
func NewSQLiteStore[S any](path string) (*SQLiteStore[S], error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// SQLite supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close() // Ignore close error when returning pragma error
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Wait up to 5 seconds for locks
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close() // Ignore close error when returning pragma error
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	store := &SQLiteStore[S]{
		db:     db,
		closed: false,
		path:   path,
	}

	if err := store.createTables(ctx); err != nil {
		_ = db.Close() // Ignore close error when returning table creation error
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

// createTables creates the required database schema if it doesn't exist.
func (s *SQLiteStore[S]) createTables(ctx context.Context) error {
	runsTable := `
		CREATE TABLE IF NOT EXISTS search_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			model TEXT NOT NULL,
			search_order TEXT NOT NULL,
			found INTEGER NOT NULL,
			path TEXT NOT NULL,
			expanded INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, runsTable); err != nil {
		return fmt.Errorf("failed to create search_runs table: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_runs_model ON search_runs(model)"); err != nil {
		return fmt.Errorf("failed to create idx_runs_model: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_runs_created ON search_runs(created_at)"); err != nil {
		return fmt.Errorf("failed to create idx_runs_created: %w", err)
	}

	return nil
}

// SaveRun archives one completed search run (implements Store interface).
//
// If a record with the same RunID already exists, it is replaced.
// Thread-safe for concurrent writes.
func (s *SQLiteStore[S]) SaveRun(ctx context.Context, rec Record[S]) error {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return fmt.Errorf("store is closed")
	}
	s.mu.RUnlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	pathJSON, err := json.Marshal(rec.Path)
	if err != nil {
		return fmt.Errorf("failed to marshal path: %w", err)
	}

	found := 0
	if rec.Found {
		found = 1
	}

	query := `
		INSERT INTO search_runs (run_id, model, search_order, found, path, expanded, duration_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			model = excluded.model,
			search_order = excluded.search_order,
			found = excluded.found,
			path = excluded.path,
			expanded = excluded.expanded,
			duration_ns = excluded.duration_ns,
			created_at = excluded.created_at
	`

	_, err = s.db.ExecContext(ctx, query,
		rec.RunID,
		rec.Model,
		rec.Order,
		found,
		string(pathJSON),
		rec.Expanded,
		int64(rec.Duration),
		rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	return nil
}

// LoadRun retrieves a single archived run (implements Store interface).
//
// Returns ErrNotFound if the run ID doesn't exist.
func (s *SQLiteStore[S]) LoadRun(ctx context.Context, runID string) (Record[S], error) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		var zero Record[S]
		return zero, fmt.Errorf("store is closed")
	}
	s.mu.RUnlock()

	query := `
		SELECT run_id, model, search_order, found, path, expanded, duration_ns, created_at
		FROM search_runs
		WHERE run_id = ?
	`

	var (
		rec        Record[S]
		found      int64
		pathJSON   string
		durationNS int64
		createdNS  int64
	)

	err := s.db.QueryRowContext(ctx, query, runID).Scan(
		&rec.RunID,
		&rec.Model,
		&rec.Order,
		&found,
		&pathJSON,
		&rec.Expanded,
		&durationNS,
		&createdNS,
	)
	if err == sql.ErrNoRows {
		var zero Record[S]
		return zero, ErrNotFound
	}
	if err != nil {
		var zero Record[S]
		return zero, fmt.Errorf("failed to load run: %w", err)
	}

	if err := json.Unmarshal([]byte(pathJSON), &rec.Path); err != nil {
		var zero Record[S]
		return zero, fmt.Errorf("failed to unmarshal path: %w", err)
	}

	rec.Found = found != 0
	rec.Duration = time.Duration(durationNS)
	rec.CreatedAt = time.Unix(0, createdNS)

	return rec, nil
}

// ListRuns retrieves archived runs, most recently archived first
// (implements Store interface).
//
// An empty model lists every run.
func (s *SQLiteStore[S]) ListRuns(ctx context.Context, model string) ([]Record[S], error) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, fmt.Errorf("store is closed")
	}
	s.mu.RUnlock()

	query := `
		SELECT run_id, model, search_order, found, path, expanded, duration_ns, created_at
		FROM search_runs
		ORDER BY created_at DESC, id DESC
	`
	args := []interface{}{}
	if model != "" {
		query = `
			SELECT run_id, model, search_order, found, path, expanded, duration_ns, created_at
			FROM search_runs
			WHERE model = ?
			ORDER BY created_at DESC, id DESC
		`
		args = append(args, model)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recs := []Record[S]{}
	for rows.Next() {
		var (
			rec        Record[S]
			found      int64
			pathJSON   string
			durationNS int64
			createdNS  int64
		)

		if err := rows.Scan(
			&rec.RunID,
			&rec.Model,
			&rec.Order,
			&found,
			&pathJSON,
			&rec.Expanded,
			&durationNS,
			&createdNS,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}

		if err := json.Unmarshal([]byte(pathJSON), &rec.Path); err != nil {
			return nil, fmt.Errorf("failed to unmarshal path: %w", err)
		}

		rec.Found = found != 0
		rec.Duration = time.Duration(durationNS)
		rec.CreatedAt = time.Unix(0, createdNS)

		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run rows: %w", err)
	}

	return recs, nil
}

// Close closes the database connection.
//
// After Close, all operations will return an error.
// Calling Close multiple times is safe (subsequent calls are no-ops).
func (s *SQLiteStore[S]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil // Double-close is a no-op
	}

	s.closed = true
	return s.db.Close()
}

// Ping verifies the database connection is alive.
//
// Useful for health checks and connection validation.
func (s *SQLiteStore[S]) Ping(ctx context.Context) error {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return fmt.Errorf("store is closed")
	}
	s.mu.RUnlock()

	return s.db.PingContext(ctx)
}

// Path returns the database file path.
func (s *SQLiteStore[S]) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}
