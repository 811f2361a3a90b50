package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested run ID does not exist.
var ErrNotFound = errors.New("not found")

// Record is one archived search run: the outcome of a single Check call
// together with enough context to identify it later.
//
// Type parameter S is the puzzle state type (must be JSON-serializable).
type Record[S any] struct {
	// RunID is the unique identifier assigned to the Check call.
	RunID string

	// Model names the state space that was searched ("crossing", "frogs", ...).
	Model string

	// Order is the search discipline used, as reported by Order.String().
	Order string

	// Found reports whether the search reached a goal state.
	Found bool

	// Path is the solution path from initial state to goal, inclusive.
	// Nil when the space was exhausted without reaching a goal.
	Path []S

	// Expanded is the number of states expanded during the search.
	Expanded int

	// Duration is the wall-clock time the search took.
	Duration time.Duration

	// CreatedAt is when the record was archived. Backends stamp it with
	// the current time when the caller leaves it zero.
	CreatedAt time.Time
}

// Store archives completed search runs.
//
// It enables:
//   - Persisting the outcome of each solve for later inspection
//   - Retrieval of a single run by its ID
//   - Listing archived runs, optionally filtered by model
//
// Implementations can use:
//   - In-memory storage (for testing, see memory.go)
//   - SQLite (single-file local archive, see sqlite.go)
//   - MySQL/MariaDB (shared archive, see mysql.go)
//
// Type parameter S is the puzzle state type to persist.
type Store[S any] interface {
	// SaveRun archives one completed search run.
	// If a record with the same RunID already exists, it is replaced.
	//
	// Parameters:
	//   - rec: The run to archive; a zero CreatedAt is stamped with the current time
	//
	// Returns error if persistence fails.
	SaveRun(ctx context.Context, rec Record[S]) error

	// LoadRun retrieves a single archived run.
	//
	// Parameters:
	//   - runID: Unique identifier of the run
	//
	// Returns:
	//   - rec: The archived record
	//   - error: ErrNotFound if runID doesn't exist, or other persistence errors
	LoadRun(ctx context.Context, runID string) (Record[S], error)

	// ListRuns retrieves archived runs, most recently archived first.
	//
	// Parameters:
	//   - model: Restrict the listing to runs of one model; empty lists every run
	//
	// Returns:
	//   - recs: Matching records, newest first
	//   - error: Only on store access failure (an empty list is not an error)
	ListRuns(ctx context.Context, model string) ([]Record[S], error)
}
