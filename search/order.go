// Package search provides the reachability checking engine for statespace-go.
package search

import (
	"fmt"
	"strings"
)

// Order selects the pop discipline used by Check to pick the next state
// to expand from the frontier.
//
// The discipline determines the shape of the exploration:
//   - BreadthFirst pops the oldest discovered state (FIFO). Paths found
//     are shortest in step count.
//   - DepthFirst pops the newest discovered state (LIFO). Paths follow
//     one branch as deep as it goes before backtracking.
//   - CostGuided pops the state a CostModel ranks cheapest relative to
//     the previously expanded state. Requires a complete cost model.
type Order int

const (
	// BreadthFirst expands states in discovery order.
	BreadthFirst Order = iota

	// DepthFirst expands the most recently discovered state first.
	DepthFirst

	// CostGuided expands the state the cost model ranks cheapest.
	CostGuided
)

// String returns the canonical name of the order.
func (o Order) String() string {
	switch o {
	case BreadthFirst:
		return "breadth_first"
	case DepthFirst:
		return "depth_first"
	case CostGuided:
		return "cost_guided"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// known reports whether the order is one of the declared disciplines.
// Check validates this before any state is expanded.
func (o Order) known() bool {
	return o >= BreadthFirst && o <= CostGuided
}

// ParseOrder converts a name into an Order.
//
// Accepts canonical names ("breadth_first", "depth_first", "cost_guided")
// and the short aliases "bfs", "dfs", and "cost". Matching is
// case-insensitive. Unknown names return ErrUnknownOrder.
//
// Example:
//
//	order, err := search.ParseOrder("bfs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := space.Check(ctx, goal, order)
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "breadth_first", "bfs":
		return BreadthFirst, nil
	case "depth_first", "dfs":
		return DepthFirst, nil
	case "cost_guided", "cost":
		return CostGuided, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
	}
}
