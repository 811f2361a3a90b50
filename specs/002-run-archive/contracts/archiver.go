// Package contracts defines the interface and types for the run archive.
// This file serves as the contract specification for persisting completed
// reachability checks across SQLite, MySQL, and in-memory backends.
package contracts

import (
	"context"
	"time"
)

// RunArchiver is the interface every archive backend must implement.
// Backends persist the outcome of a Check call so that runs can be
// listed and replayed after the process exits.
type RunArchiver interface {
	// SaveRun archives one completed check. Saving a run ID that
	// already exists replaces the earlier record, which makes the
	// operation safe to retry.
	//
	// Context is used for cancellation and timeout control.
	//
	// Returns an error only when persistence fails; a duplicate run ID
	// is not an error.
	SaveRun(ctx context.Context, rec ArchivedRun) error

	// LoadRun retrieves a single archived run by its ID.
	//
	// Returns ErrNotFound when the ID was never archived. Callers must
	// distinguish that from backend failures.
	LoadRun(ctx context.Context, runID string) (ArchivedRun, error)

	// ListRuns retrieves archived runs, most recently archived first.
	// An empty model lists every run; otherwise only runs whose Model
	// matches exactly are returned.
	ListRuns(ctx context.Context, model string) ([]ArchivedRun, error)
}

// ArchivedRun is the persisted outcome of one reachability check.
type ArchivedRun struct {
	// RunID is the engine-assigned identifier, unique per check
	RunID string `json:"run_id"`

	// Model names the state space that was searched ("crossing", ...)
	Model string `json:"model"`

	// Order is the search discipline, as reported by Order.String()
	Order string `json:"order"`

	// Found reports whether a goal state was reached
	Found bool `json:"found"`

	// Path holds the rendered states from start to goal, empty when
	// the space was exhausted
	Path []string `json:"path"`

	// Expanded counts the states the check expanded
	Expanded int `json:"expanded"`

	// Duration is the wall-clock time the check took
	Duration time.Duration `json:"duration"`

	// CreatedAt is stamped by the backend when left zero
	CreatedAt time.Time `json:"created_at"`
}
