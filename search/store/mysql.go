package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore is a MySQL/MariaDB implementation of Store[S].
//
// It archives search runs in a relational database.
// Designed for:
//   - Shared archives queried by multiple users or machines
//   - Long-lived solve histories that survive process restarts
//   - Audit trails for batch experiments
//
// MySQLStore uses connection pooling for reliability.
//
// Schema:
//   - search_runs: one row per archived run, path stored as a JSON column
//
// Type parameter S is the puzzle state type to persist (must be
// JSON-serializable).
type MySQLStore[S any] struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewMySQLStore creates a new MySQL-backed archive.
//
// The DSN (Data Source Name) format is:
//
//	[username[:password]@][protocol[(address)]]/dbname[?param1=value1&...&paramN=valueN]
//
// Example DSNs:
//
//	user:password@tcp(localhost:3306)/statespace
//	user:password@tcp(127.0.0.1:3306)/statespace?parseTime=true
//
// Security Warning:
//
//	NEVER hardcode credentials in your source code. Use environment variables:
//	    dsn := os.Getenv("MYSQL_DSN")
//	    if dsn == "" {
//	        log.Fatal("MYSQL_DSN environment variable not set")
//	    }
//	    archive, err := store.NewMySQLStore[State](dsn)
//
// The store automatically:
//   - Creates the search_runs table if it doesn't exist
//   - Configures connection pooling
//   - Verifies the connection with a ping
func NewMySQLStore[S any](dsn string) (*MySQLStore[S], error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)                  // Maximum open connections
	db.SetMaxIdleConns(5)                   // Keep idle connections for reuse
	db.SetConnMaxLifetime(5 * time.Minute)  // Max connection lifetime (prevent stale connections)
	db.SetConnMaxIdleTime(10 * time.Minute) // Max idle time before closing

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close() // Ignore close error when returning ping error
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	store := &MySQLStore[S]{
		db:     db,
		closed: false,
	}

	if err := store.createTables(ctx); err != nil {
		_ = db.Close() // Ignore close error when returning table creation error
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

// createTables creates the required database schema if it doesn't exist.
func (m *MySQLStore[S]) createTables(ctx context.Context) error {
	runsTable := `
		CREATE TABLE IF NOT EXISTS search_runs (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			run_id VARCHAR(255) NOT NULL UNIQUE,
			model VARCHAR(255) NOT NULL,
			search_order VARCHAR(64) NOT NULL,
			found TINYINT(1) NOT NULL,
			path JSON NOT NULL,
			expanded INT NOT NULL,
			duration_ns BIGINT NOT NULL,
			created_at BIGINT NOT NULL,
			INDEX idx_runs_model (model),
			INDEX idx_runs_created (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci
	`

	if _, err := m.db.ExecContext(ctx, runsTable); err != nil {
		return fmt.Errorf("failed to create search_runs table: %w", err)
	}

	return nil
}

// SaveRun archives one completed search run (implements Store interface).
//
// If a record with the same RunID already exists, it is replaced.
// Thread-safe for concurrent writes.
func (m *MySQLStore[S]) SaveRun(ctx context.Context, rec Record[S]) error {
	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return fmt.Errorf("store is closed")
	}
	m.mu.RUnlock()

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
		ON DUPLICATE KEY UPDATE
			model = VALUES(model),
			search_order = VALUES(search_order),
			found = VALUES(found),
			path = VALUES(path),
			expanded = VALUES(expanded),
			duration_ns = VALUES(duration_ns),
			created_at = VALUES(created_at)
	`

	_, err = m.db.ExecContext(ctx, query,
		rec.RunID,
		rec.Model,
		rec.Order,
		found,
		pathJSON,
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
func (m *MySQLStore[S]) LoadRun(ctx context.Context, runID string) (Record[S], error) {
	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		var zero Record[S]
		return zero, fmt.Errorf("store is closed")
	}
	m.mu.RUnlock()

	query := `
		SELECT run_id, model, search_order, found, path, expanded, duration_ns, created_at
		FROM search_runs
		WHERE run_id = ?
	`

	var (
		rec        Record[S]
		found      int64
		pathJSON   []byte
		durationNS int64
		createdNS  int64
	)

	err := m.db.QueryRowContext(ctx, query, runID).Scan(
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

	if err := json.Unmarshal(pathJSON, &rec.Path); err != nil {
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
func (m *MySQLStore[S]) ListRuns(ctx context.Context, model string) ([]Record[S], error) {
	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return nil, fmt.Errorf("store is closed")
	}
	m.mu.RUnlock()

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

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recs := []Record[S]{}
	for rows.Next() {
		var (
			rec        Record[S]
			found      int64
			pathJSON   []byte
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

		if err := json.Unmarshal(pathJSON, &rec.Path); err != nil {
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
func (m *MySQLStore[S]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil // Double-close is a no-op
	}

	m.closed = true
	return m.db.Close()
}

// Ping verifies the database connection is alive.
//
// Useful for health checks and connection validation.
func (m *MySQLStore[S]) Ping(ctx context.Context) error {
	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return fmt.Errorf("store is closed")
	}
	m.mu.RUnlock()

	return m.db.PingContext(ctx)
}
