package search

import "time"

// Result reports the outcome of a reachability check.
//
// A check that exhausts the space without reaching the goal is not an
// error: it returns Found=false with a nil error. Errors are reserved for
// faults (bad configuration, cancellation, expansion limits, corrupt
// trace links), not for the answer "unreachable".
type Result[S comparable] struct {
	// Found reports whether a state satisfying the goal was reached.
	Found bool

	// Path holds the states from the initial state to the goal state,
	// inclusive, in traversal order. Nil when Found is false.
	Path []S

	// RunID identifies the check for event correlation and run archival.
	RunID string

	// Stats summarizes the work the check performed.
	Stats Stats
}

// Stats summarizes the work performed by a single Check call.
type Stats struct {
	// Expanded counts states popped from the frontier and expanded.
	// The goal state is not expanded, so it is not counted.
	Expanded int

	// Generated counts successor states produced by the generator,
	// before invariant filtering and duplicate suppression.
	Generated int

	// Rejected counts generated states that failed the invariant.
	Rejected int

	// Duplicates counts generated states suppressed because they were
	// already expanded or already waiting in the frontier.
	Duplicates int

	// PeakFrontier is the largest number of states simultaneously
	// waiting in the frontier.
	PeakFrontier int

	// Duration is the wall-clock time the check took.
	Duration time.Duration
}
