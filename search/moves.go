package search

// FromMoves builds a successor generator from a move enumerator and a move
// applier.
//
// Puzzle packages describe transitions as data: moves lists the legal moves
// available in a state, and apply produces the state a move leads to. The
// returned generator applies every enumerated move in order, so successor
// order (and therefore expansion order) is exactly the enumeration order.
//
// Returns nil (no successors) when moves yields nothing for a state.
//
// Example:
//
//	var Successors = search.FromMoves(Moves, Apply)
func FromMoves[S comparable, M any](moves func(S) []M, apply func(S, M) S) Successors[S] {
	return func(state S) []S {
		ms := moves(state)
		if len(ms) == 0 {
			return nil
		}
		next := make([]S, 0, len(ms))
		for _, m := range ms {
			next = append(next, apply(state, m))
		}
		return next
	}
}

// Annotate recovers the move taken at each step of a path.
//
// For each consecutive pair of path states it finds the first enumerated
// move whose application produces the next state. The result has one move
// per path edge (len(path)-1 moves).
//
// Returns ok=false when some step cannot be explained by any enumerated
// move, which happens when the path was not produced by the same move set.
// A path shorter than two states has no edges and yields an empty
// annotation with ok=true.
func Annotate[S comparable, M any](path []S, moves func(S) []M, apply func(S, M) S) ([]M, bool) {
	if len(path) < 2 {
		return nil, true
	}
	steps := make([]M, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		matched := false
		for _, m := range moves(path[i]) {
			if apply(path[i], m) == path[i+1] {
				steps = append(steps, m)
				matched = true
				break
			}
		}
		if !matched {
			return nil, false
		}
	}
	return steps, true
}
