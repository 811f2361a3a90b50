package search

// CostModel ranks frontier states for cost-guided checks.
//
// The model carries a running cost of type C. Each time the driver picks a
// state to expand, it evaluates every frontier state against the cost of
// the previously expanded state and pops the first minimum. The cost of
// the popped state becomes the running cost for the next pick.
//
// Cost values are opaque to the engine: C can be a scalar, a struct with
// lexicographic ordering, or anything else Less can compare. Evaluate must
// be side-effect free because it runs once per frontier state per pick.
//
// Example (depth counting):
//
//	model := search.CostModel[MyState, int]{
//	    Evaluate: func(_ MyState, previous int) int { return previous + 1 },
//	    Less:     func(a, b int) bool { return a < b },
//	}
//	space := search.NewWithCost(initial, successors, invariant, model, search.Options{})
type CostModel[S comparable, C any] struct {
	// Initial seeds the running cost at the start of each Check.
	// The zero value of C is used when left unset.
	Initial C

	// Evaluate computes the cost of expanding state next, given the cost
	// of the previously expanded state.
	Evaluate func(state S, previous C) C

	// Less reports whether cost a ranks strictly before cost b.
	Less func(a, b C) bool
}

// complete reports whether the model can drive a cost-guided check.
func (m CostModel[S, C]) complete() bool {
	return m.Evaluate != nil && m.Less != nil
}

// ConstantCost returns a model that ranks every state equally.
//
// Under a constant model the first frontier state always wins the scan, so
// a cost-guided check degenerates to breadth-first expansion. New uses this
// model for spaces built without an explicit CostModel, which keeps
// CostGuided usable on any space.
func ConstantCost[S comparable]() CostModel[S, int] {
	return CostModel[S, int]{
		Evaluate: func(S, int) int { return 0 },
		Less:     func(a, b int) bool { return a < b },
	}
}
