// Package search provides the reachability checking engine for statespace-go.
package search

import "errors"

// ErrUnknownOrder indicates that Check was called with an Order value
// outside the declared set. The order is validated before any state is
// expanded, so a check never fails partway through on a bad order.
var ErrUnknownOrder = errors.New("unknown search order")

// ErrNoGoal indicates that Check was called with a nil goal predicate.
var ErrNoGoal = errors.New("goal predicate is required")

// ErrNoGenerator indicates that the space has no successor generator.
// A space without a generator can only ever contain its initial state.
var ErrNoGenerator = errors.New("successor generator is required")

// ErrBadCostModel indicates that a cost-guided check was requested but
// the space's cost model is missing its Evaluate or Less function.
var ErrBadCostModel = errors.New("cost model is incomplete")

// ErrStateLimit indicates that the check expanded MaxStates states
// without reaching the goal. This bounds runaway exploration of large
// or infinite state spaces.
var ErrStateLimit = errors.New("expansion limit reached before goal")

// ErrCorruptTrace indicates that path reconstruction encountered a state
// with no recorded predecessor. Every state discovered during a check
// records the state it was generated from, so a missing link means the
// trace bookkeeping was violated.
var ErrCorruptTrace = errors.New("missing trace link during path reconstruction")
