package search

import (
	"context"
	"fmt"
	"time"

	"github.com/dshills/statespace-go/search/emit"
	"github.com/google/uuid"
)

// Successors generates the immediate successor states of a state.
//
// The generator defines the edges of the state space implicitly: the space
// is never materialized, states exist only as they are generated. Order
// matters - the driver examines successors in the order returned, so the
// generator fixes the tie-breaking of every search discipline.
//
// Generators built from move descriptors (see FromMoves) inherit their
// ordering from the move enumeration.
type Successors[S any] func(S) []S

// Invariant reports whether a state is admissible.
//
// States that fail the invariant are rejected at generation time: they are
// never entered, never expanded, and never remembered. The initial state
// is exempt - a space is explored from its initial state even when that
// state would not pass the invariant.
//
// A nil invariant admits every state.
type Invariant[S any] func(S) bool

// Goal reports whether a state satisfies the objective of a check.
type Goal[S any] func(S) bool

// Space is an implicit state space rooted at an initial state.
//
// A Space is defined by:
//   - An initial state the exploration starts from
//   - A successor generator producing the states one step away
//   - An optional invariant filtering inadmissible states
//   - A cost model ranking frontier states for cost-guided checks
//
// Check explores the space with duplicate detection until a goal state is
// reached or the space is exhausted. The same Space can be checked many
// times, with different goals and orders; checks are independent and do
// not share visited sets.
//
// Type parameter S is the state type. It must be comparable because
// duplicate detection and trace reconstruction key maps by state. C is
// the cost type used by cost-guided checks.
//
// Example:
//
//	space := search.New(crossing.Initial(), crossing.Successors, crossing.Valid, search.Options{})
//	result, err := space.Check(ctx, crossing.Solved, search.BreadthFirst)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Found {
//	    for i, state := range result.Path {
//	        fmt.Printf("%d: %v\n", i, state)
//	    }
//	}
type Space[S comparable, C any] struct {
	// initial is the root of the exploration
	initial S

	// successors generates the states one transition away
	successors Successors[S]

	// invariant rejects inadmissible states at generation time
	invariant Invariant[S]

	// cost ranks frontier states for cost-guided checks
	cost CostModel[S, C]

	// opts contains execution configuration
	opts Options
}

// New creates a search space over states of type S with a constant cost
// model.
//
// Parameters:
//   - initial: State the exploration starts from
//   - successors: Successor generator (required for Check)
//   - invariant: Admissibility filter (optional, can be nil)
//   - opts: Execution configuration (MaxStates, Emitter, Metrics)
//
// The constructor does not validate parameters to allow flexible
// initialization. Validation occurs when Check is called.
//
// Spaces built with New can still run CostGuided checks: the constant
// model ranks every state equally, which degenerates to breadth-first
// expansion. Use NewWithCost to supply a real cost model.
func New[S comparable](initial S, successors Successors[S], invariant Invariant[S], opts Options) *Space[S, int] {
	return NewWithCost(initial, successors, invariant, ConstantCost[S](), opts)
}

// NewWithCost creates a search space with a caller-supplied cost model
// for cost-guided checks.
//
// Example:
//
//	model := family.ByNoise(2, 1)
//	space := search.NewWithCost(family.Initial(), family.Successors, family.Valid, model, search.Options{})
//	result, err := space.Check(ctx, family.Solved, search.CostGuided)
func NewWithCost[S comparable, C any](initial S, successors Successors[S], invariant Invariant[S], model CostModel[S, C], opts Options) *Space[S, C] {
	return &Space[S, C]{
		initial:    initial,
		successors: successors,
		invariant:  invariant,
		cost:       model,
		opts:       opts,
	}
}

// Check explores the space until a state satisfying goal is reached or
// the space is exhausted.
//
// The driver maintains a frontier of discovered but unexpanded states,
// seeded with the initial state, and repeatedly:
//  1. Pops the next state per the order discipline
//  2. Tests the goal; on success it reconstructs and returns the path
//  3. Marks the state expanded
//  4. Generates its successors, dropping those that fail the invariant
//     and those already expanded or already waiting
//  5. Records a trace link for each surviving successor and appends it
//     to the frontier
//
// Exhausting the frontier without reaching the goal is not an error: the
// result reports Found=false with a nil error. Errors are reserved for
// faults:
//   - ErrNoGoal, ErrNoGenerator: missing required configuration
//   - ErrUnknownOrder: order outside the declared set (checked up front)
//   - ErrBadCostModel: CostGuided without a complete cost model
//   - ErrStateLimit: MaxStates expansions performed without success
//   - ErrCorruptTrace: broken predecessor link during reconstruction
//   - ctx.Err(): context canceled or deadline exceeded
//
// Each call is independent: it gets a fresh run ID, visited set, trace,
// and running cost. Check must not be called concurrently on the same
// Space from multiple goroutines with a stateful generator; with pure
// functions concurrent checks are safe because all mutable bookkeeping
// is per-call.
func (sp *Space[S, C]) Check(ctx context.Context, goal Goal[S], order Order) (Result[S], error) {
	var zero Result[S]

	// Validate configuration
	if goal == nil {
		return zero, ErrNoGoal
	}
	if sp.successors == nil {
		return zero, ErrNoGenerator
	}
	if !order.known() {
		return zero, fmt.Errorf("%w: %d", ErrUnknownOrder, int(order))
	}
	if order == CostGuided && !sp.cost.complete() {
		return zero, ErrBadCostModel
	}

	runID := uuid.NewString()
	started := time.Now()

	var stats Stats
	visited := make(map[S]struct{})
	trace := make(map[S]S)

	// The initial state enters the frontier unfiltered. Invariants gate
	// transitions into states, not the state the exploration starts from.
	waiting := newFrontier[S]()
	waiting.push(sp.initial)
	stats.PeakFrontier = 1

	// Running cost for cost-guided picks, re-seeded per check.
	previous := sp.cost.Initial

	sp.publish(emit.Event{
		RunID: runID,
		State: render(sp.initial),
		Msg:   emit.MsgCheckStart,
		Meta:  map[string]interface{}{"order": order.String()},
	})

	for waiting.len() > 0 {
		// Check context cancellation
		select {
		case <-ctx.Done():
			stats.Duration = time.Since(started)
			if sp.opts.Metrics != nil {
				sp.opts.Metrics.ObserveCheck(runID, order.String(), "canceled", stats)
			}
			return zero, ctx.Err()
		default:
		}

		// Check MaxStates limit
		if sp.opts.MaxStates > 0 && stats.Expanded >= sp.opts.MaxStates {
			stats.Duration = time.Since(started)
			sp.publish(emit.Event{
				RunID: runID,
				Step:  stats.Expanded,
				Msg:   emit.MsgLimit,
				Meta:  map[string]interface{}{"limit": sp.opts.MaxStates},
			})
			if sp.opts.Metrics != nil {
				sp.opts.Metrics.ObserveCheck(runID, order.String(), "limit", stats)
			}
			return zero, fmt.Errorf("%w: %d states expanded", ErrStateLimit, stats.Expanded)
		}

		var current S
		switch order {
		case DepthFirst:
			current = waiting.popBack()
		case CostGuided:
			current, previous = sp.popCheapest(waiting, previous)
		default:
			current = waiting.popFront()
		}

		// Goal is tested at pop time, before the state is expanded.
		if goal(current) {
			path, err := sp.reconstruct(trace, current)
			if err != nil {
				return zero, err
			}
			stats.Duration = time.Since(started)
			sp.publish(emit.Event{
				RunID: runID,
				Step:  stats.Expanded,
				State: render(current),
				Msg:   emit.MsgGoal,
				Meta: map[string]interface{}{
					"path_length": len(path),
					"expanded":    stats.Expanded,
				},
			})
			if sp.opts.Metrics != nil {
				sp.opts.Metrics.ObserveCheck(runID, order.String(), "found", stats)
				sp.opts.Metrics.ObserveSolution(order.String(), len(path))
			}
			return Result[S]{Found: true, Path: path, RunID: runID, Stats: stats}, nil
		}

		visited[current] = struct{}{}
		stats.Expanded++
		sp.publish(emit.Event{
			RunID: runID,
			Step:  stats.Expanded,
			State: render(current),
			Msg:   emit.MsgExpanded,
			Meta:  map[string]interface{}{"frontier": waiting.len()},
		})
		if sp.opts.Metrics != nil {
			sp.opts.Metrics.ObserveExpansion(runID, order.String(), waiting.len(), len(visited))
		}

		for _, candidate := range sp.successors(current) {
			stats.Generated++

			if sp.invariant != nil && !sp.invariant(candidate) {
				stats.Rejected++
				sp.publish(emit.Event{
					RunID: runID,
					Step:  stats.Expanded,
					State: render(candidate),
					Msg:   emit.MsgRejected,
					Meta:  map[string]interface{}{"from": render(current)},
				})
				continue
			}

			if _, seen := visited[candidate]; seen {
				stats.Duplicates++
				continue
			}
			if waiting.contains(candidate) {
				stats.Duplicates++
				continue
			}

			trace[candidate] = current
			waiting.push(candidate)
			if waiting.len() > stats.PeakFrontier {
				stats.PeakFrontier = waiting.len()
			}
			sp.publish(emit.Event{
				RunID: runID,
				Step:  stats.Expanded,
				State: render(candidate),
				Msg:   emit.MsgDiscovered,
				Meta:  map[string]interface{}{"from": render(current)},
			})
		}
	}

	stats.Duration = time.Since(started)
	sp.publish(emit.Event{
		RunID: runID,
		Step:  stats.Expanded,
		Msg:   emit.MsgExhausted,
		Meta:  map[string]interface{}{"expanded": stats.Expanded},
	})
	if sp.opts.Metrics != nil {
		sp.opts.Metrics.ObserveCheck(runID, order.String(), "exhausted", stats)
	}
	return Result[S]{Found: false, RunID: runID, Stats: stats}, nil
}

// popCheapest ranks every waiting state against the cost of the previously
// expanded state and pops the first minimum. The scan is linear: ranks
// depend on the running cost, so they cannot be precomputed at push time
// the way a priority queue would require.
func (sp *Space[S, C]) popCheapest(waiting *frontier[S], previous C) (S, C) {
	best := 0
	bestCost := sp.cost.Evaluate(waiting.queue[0], previous)
	for i := 1; i < len(waiting.queue); i++ {
		c := sp.cost.Evaluate(waiting.queue[i], previous)
		if sp.cost.Less(c, bestCost) {
			best = i
			bestCost = c
		}
	}
	return waiting.popAt(best), bestCost
}

// reconstruct walks trace links from the goal state back to the initial
// state and returns the path in traversal order.
func (sp *Space[S, C]) reconstruct(trace map[S]S, goal S) ([]S, error) {
	path := []S{goal}
	current := goal
	for current != sp.initial {
		parent, ok := trace[current]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrCorruptTrace, current)
		}
		current = parent
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// publish sends an event to the configured emitter, if any.
func (sp *Space[S, C]) publish(event emit.Event) {
	if sp.opts.Emitter != nil {
		sp.opts.Emitter.Emit(event)
	}
}

// render formats a state for event payloads.
func render(v interface{}) string {
	return fmt.Sprint(v)
}
