package search

import "github.com/dshills/statespace-go/search/emit"

// Options configures check execution behavior.
//
// Zero values are valid - the Space will run unbounded, silent, and
// unmeasured.
type Options struct {
	// MaxStates caps the number of states a single Check may expand.
	// If 0, no limit is enforced (use with caution on spaces that are
	// large or infinite).
	// When the cap is reached, Check returns an error wrapping
	// ErrStateLimit.
	MaxStates int

	// Emitter receives search events (check start, expansions,
	// discoveries, rejections, outcome). Optional, nil disables
	// emission.
	Emitter emit.Emitter

	// Metrics records Prometheus metrics during checks. Optional, nil
	// disables collection.
	Metrics *PrometheusMetrics
}
