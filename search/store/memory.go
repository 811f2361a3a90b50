package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemStore is an in-memory implementation of Store[S].
//
// It keeps archived runs in a map guarded by a mutex.
// Designed for:
//   - Testing and development
//   - Single-process tools that don't need a durable archive
//
// MemStore is thread-safe and supports concurrent access.
//
// Limitations:
//   - Data is lost when the process terminates
//   - Memory usage grows with the number of archived runs
//
// For a durable archive, use SQLiteStore or MySQLStore.
//
// Type parameter S is the puzzle state type to persist.
type MemStore[S any] struct {
	mu    sync.RWMutex
	runs  map[string]Record[S] // runID -> record
	order []string             // runIDs in insertion order
}

// NewMemStore creates a new in-memory archive.
//
// Example:
//
//	archive := store.NewMemStore[crossing.State]()
//	err := archive.SaveRun(ctx, rec)
func NewMemStore[S any]() *MemStore[S] {
	return &MemStore[S]{
		runs: make(map[string]Record[S]),
	}
}

// SaveRun archives one completed search run.
//
// Replacing an existing RunID moves the record to the newest position.
// Thread-safe for concurrent writes.
func (m *MemStore[S]) SaveRun(_ context.Context, rec Record[S]) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	// Re-saving a run ID drops its old position before appending.
	if _, exists := m.runs[rec.RunID]; exists {
		for i, id := range m.order {
			if id == rec.RunID {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}

	m.runs[rec.RunID] = rec
	m.order = append(m.order, rec.RunID)
	return nil
}

// LoadRun retrieves a single archived run.
//
// Returns ErrNotFound if the run ID doesn't exist.
func (m *MemStore[S]) LoadRun(_ context.Context, runID string) (Record[S], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.runs[runID]
	if !exists {
		var zero Record[S]
		return zero, ErrNotFound
	}

	return rec, nil
}

// ListRuns retrieves archived runs, most recently archived first.
//
// An empty model lists every run. The returned slice is a fresh copy;
// callers may modify it freely.
func (m *MemStore[S]) ListRuns(_ context.Context, model string) ([]Record[S], error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	recs := make([]Record[S], 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		rec := m.runs[m.order[i]]
		if model != "" && rec.Model != model {
			continue
		}
		recs = append(recs, rec)
	}

	// Explicit CreatedAt values may disagree with insertion order; the
	// stable sort keeps reverse-insertion order among equal timestamps.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})

	return recs, nil
}
