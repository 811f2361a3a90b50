package search

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/statespace-go/search/emit"
)

// ferryState is a two-actor crossing fixture: actors A and B each sit on
// the left bank, the raft, or the right bank, and the raft holds one actor
// at a time.
type ferryState struct {
	A, B byte // 'L', 'T', 'R'
}

func (s ferryState) String() string {
	return string([]byte{s.A, s.B})
}

// ferrySuccessors moves one actor at a time: an ashore actor boards the
// raft, a rafted actor lands on either bank (left first). Actor A's moves
// are enumerated before actor B's.
func ferrySuccessors(s ferryState) []ferryState {
	var next []ferryState
	step := func(apply func(ferryState, byte) ferryState, pos byte) {
		switch pos {
		case 'L', 'R':
			next = append(next, apply(s, 'T'))
		case 'T':
			next = append(next, apply(s, 'L'), apply(s, 'R'))
		}
	}
	step(func(s ferryState, p byte) ferryState { s.A = p; return s }, s.A)
	step(func(s ferryState, p byte) ferryState { s.B = p; return s }, s.B)
	return next
}

// ferryValid rejects states with both actors on the one-seat raft.
func ferryValid(s ferryState) bool {
	return !(s.A == 'T' && s.B == 'T')
}

func ferrySolved(s ferryState) bool {
	return s.A == 'R' && s.B == 'R'
}

func newFerrySpace(opts Options) *Space[ferryState, int] {
	return New(ferryState{A: 'L', B: 'L'}, ferrySuccessors, ferryValid, opts)
}

func pathStrings(path []ferryState) []string {
	out := make([]string, len(path))
	for i, s := range path {
		out[i] = s.String()
	}
	return out
}

// TestSpace_Construction verifies Space[S, C] can be constructed.
func TestSpace_Construction(t *testing.T) {
	t.Run("construct with New", func(t *testing.T) {
		space := newFerrySpace(Options{MaxStates: 100})
		if space == nil {
			t.Fatal("New returned nil space")
		}
	})

	t.Run("space with nil invariant", func(t *testing.T) {
		// Should not panic with nil invariant (every state admitted)
		space := New(ferryState{A: 'L', B: 'L'}, ferrySuccessors, nil, Options{})
		if space == nil {
			t.Fatal("New returned nil with nil invariant")
		}
	})

	t.Run("space with nil generator", func(t *testing.T) {
		// Should not panic with nil generator (validated on Check)
		space := New[ferryState](ferryState{A: 'L', B: 'L'}, nil, ferryValid, Options{})
		if space == nil {
			t.Fatal("New returned nil with nil generator")
		}
	})

	t.Run("construct with NewWithCost", func(t *testing.T) {
		model := CostModel[int, int]{
			Evaluate: func(_ int, previous int) int { return previous + 1 },
			Less:     func(a, b int) bool { return a < b },
		}
		space := NewWithCost(0, func(n int) []int { return []int{n + 1} }, nil, model, Options{})
		if space == nil {
			t.Fatal("NewWithCost returned nil space")
		}
	})
}

// TestCheck_BreadthFirst verifies FIFO expansion finds the shortest ferry plan.
func TestCheck_BreadthFirst(t *testing.T) {
	space := newFerrySpace(Options{})

	result, err := space.Check(context.Background(), ferrySolved, BreadthFirst)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if !result.Found {
		t.Fatal("expected goal to be reachable")
	}

	want := []string{"LL", "TL", "RL", "RT", "RR"}
	got := pathStrings(result.Path)
	if len(got) != len(want) {
		t.Fatalf("path length = %d, want %d (path %v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if result.RunID == "" {
		t.Error("expected non-empty RunID")
	}

	// The ferry space is small enough to pin the work counters exactly.
	if result.Stats.Expanded != 7 {
		t.Errorf("Expanded = %d, want 7", result.Stats.Expanded)
	}
	if result.Stats.Generated != 18 {
		t.Errorf("Generated = %d, want 18", result.Stats.Generated)
	}
	if result.Stats.Rejected != 4 {
		t.Errorf("Rejected = %d, want 4", result.Stats.Rejected)
	}
	if result.Stats.Duplicates != 7 {
		t.Errorf("Duplicates = %d, want 7", result.Stats.Duplicates)
	}
	if result.Stats.PeakFrontier != 2 {
		t.Errorf("PeakFrontier = %d, want 2", result.Stats.PeakFrontier)
	}
}

// TestCheck_DepthFirst verifies LIFO expansion follows the newest branch.
func TestCheck_DepthFirst(t *testing.T) {
	space := newFerrySpace(Options{})

	result, err := space.Check(context.Background(), ferrySolved, DepthFirst)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if !result.Found {
		t.Fatal("expected goal to be reachable")
	}

	want := []string{"LL", "LT", "LR", "TR", "RR"}
	got := pathStrings(result.Path)
	if len(got) != len(want) {
		t.Fatalf("path length = %d, want %d (path %v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if result.Stats.Expanded != 4 {
		t.Errorf("Expanded = %d, want 4", result.Stats.Expanded)
	}
}

// TestCheck_CostGuided verifies cost-ranked expansion.
func TestCheck_CostGuided(t *testing.T) {
	t.Run("constant cost degenerates to breadth-first", func(t *testing.T) {
		space := newFerrySpace(Options{})

		result, err := space.Check(context.Background(), ferrySolved, CostGuided)
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if !result.Found {
			t.Fatal("expected goal to be reachable")
		}

		// Equal costs make the scan pick the frontier head every time.
		want := []string{"LL", "TL", "RL", "RT", "RR"}
		got := pathStrings(result.Path)
		if len(got) != len(want) {
			t.Fatalf("path length = %d, want %d (path %v)", len(got), len(want), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("path[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("greedy model skips the frontier head", func(t *testing.T) {
		// States are integers, transitions add 1 or 3, and the model
		// ranks states by remaining distance to 9. The cheapest frontier
		// state always wins, so the check strides 0, 3, 6, 9.
		successors := func(n int) []int { return []int{n + 1, n + 3} }
		invariant := func(n int) bool { return n <= 9 }
		model := CostModel[int, int]{
			Evaluate: func(n int, _ int) int { return 9 - n },
			Less:     func(a, b int) bool { return a < b },
		}
		space := NewWithCost(0, successors, invariant, model, Options{})

		result, err := space.Check(context.Background(), func(n int) bool { return n == 9 }, CostGuided)
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if !result.Found {
			t.Fatal("expected goal to be reachable")
		}

		want := []int{0, 3, 6, 9}
		if len(result.Path) != len(want) {
			t.Fatalf("path = %v, want %v", result.Path, want)
		}
		for i := range want {
			if result.Path[i] != want[i] {
				t.Errorf("path[%d] = %d, want %d", i, result.Path[i], want[i])
			}
		}
		if result.Stats.Expanded != 3 {
			t.Errorf("Expanded = %d, want 3", result.Stats.Expanded)
		}
	})

	t.Run("running cost threads through picks", func(t *testing.T) {
		// Single-successor chain so every pick evaluates exactly one
		// state. Each Evaluate must see the cost of the previous pick,
		// seeded from Initial.
		var seen []int
		model := CostModel[int, int]{
			Initial: 100,
			Evaluate: func(_ int, previous int) int {
				seen = append(seen, previous)
				return previous + 1
			},
			Less: func(a, b int) bool { return a < b },
		}
		successors := func(n int) []int { return []int{n + 1} }
		space := NewWithCost(0, successors, nil, model, Options{})

		_, err := space.Check(context.Background(), func(n int) bool { return n == 3 }, CostGuided)
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}

		want := []int{100, 101, 102, 103}
		if len(seen) != len(want) {
			t.Fatalf("previous costs = %v, want %v", seen, want)
		}
		for i := range want {
			if seen[i] != want[i] {
				t.Errorf("previous[%d] = %d, want %d", i, seen[i], want[i])
			}
		}

		// A second check re-seeds the running cost from Initial.
		seen = nil
		_, err = space.Check(context.Background(), func(n int) bool { return n == 2 }, CostGuided)
		if err != nil {
			t.Fatalf("second Check failed: %v", err)
		}
		if len(seen) == 0 || seen[0] != 100 {
			t.Errorf("second check previous costs = %v, want first element 100", seen)
		}
	})
}

// TestCheck_GoalAtInitial verifies the goal is tested before any expansion.
func TestCheck_GoalAtInitial(t *testing.T) {
	calls := 0
	successors := func(n int) []int {
		calls++
		return []int{n + 1}
	}
	space := New(7, successors, nil, Options{})

	result, err := space.Check(context.Background(), func(n int) bool { return n == 7 }, BreadthFirst)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if !result.Found {
		t.Fatal("expected initial state to satisfy the goal")
	}
	if len(result.Path) != 1 || result.Path[0] != 7 {
		t.Errorf("path = %v, want [7]", result.Path)
	}
	if calls != 0 {
		t.Errorf("generator called %d times, want 0", calls)
	}
	if result.Stats.Expanded != 0 {
		t.Errorf("Expanded = %d, want 0", result.Stats.Expanded)
	}
}

// TestCheck_Exhaustion verifies an unreachable goal is an answer, not an error.
func TestCheck_Exhaustion(t *testing.T) {
	// Finite chain 0..3, goal far beyond it.
	successors := func(n int) []int {
		if n >= 3 {
			return nil
		}
		return []int{n + 1}
	}
	space := New(0, successors, nil, Options{})

	result, err := space.Check(context.Background(), func(n int) bool { return n == 10 }, BreadthFirst)
	if err != nil {
		t.Fatalf("expected nil error on exhaustion, got %v", err)
	}

	if result.Found {
		t.Error("expected Found=false for unreachable goal")
	}
	if result.Path != nil {
		t.Errorf("expected nil path, got %v", result.Path)
	}
	if result.RunID == "" {
		t.Error("expected non-empty RunID on exhaustion")
	}
	if result.Stats.Expanded != 4 {
		t.Errorf("Expanded = %d, want 4", result.Stats.Expanded)
	}
}

// TestCheck_Validation verifies fail-fast configuration errors.
func TestCheck_Validation(t *testing.T) {
	t.Run("nil goal", func(t *testing.T) {
		space := newFerrySpace(Options{})

		_, err := space.Check(context.Background(), nil, BreadthFirst)
		if !errors.Is(err, ErrNoGoal) {
			t.Errorf("expected ErrNoGoal, got %v", err)
		}
	})

	t.Run("nil generator", func(t *testing.T) {
		space := New[int](0, nil, nil, Options{})

		_, err := space.Check(context.Background(), func(int) bool { return false }, BreadthFirst)
		if !errors.Is(err, ErrNoGenerator) {
			t.Errorf("expected ErrNoGenerator, got %v", err)
		}
	})

	t.Run("unknown order fails before any expansion", func(t *testing.T) {
		calls := 0
		successors := func(n int) []int {
			calls++
			return []int{n + 1}
		}
		space := New(0, successors, nil, Options{})

		_, err := space.Check(context.Background(), func(int) bool { return false }, Order(42))
		if !errors.Is(err, ErrUnknownOrder) {
			t.Errorf("expected ErrUnknownOrder, got %v", err)
		}
		if calls != 0 {
			t.Errorf("generator called %d times before validation, want 0", calls)
		}
	})

	t.Run("incomplete cost model", func(t *testing.T) {
		space := NewWithCost(0, func(n int) []int { return []int{n + 1} }, nil, CostModel[int, int]{}, Options{})

		_, err := space.Check(context.Background(), func(int) bool { return false }, CostGuided)
		if !errors.Is(err, ErrBadCostModel) {
			t.Errorf("expected ErrBadCostModel, got %v", err)
		}
	})

	t.Run("incomplete cost model only blocks cost-guided checks", func(t *testing.T) {
		successors := func(n int) []int {
			if n >= 2 {
				return nil
			}
			return []int{n + 1}
		}
		space := NewWithCost(0, successors, nil, CostModel[int, int]{}, Options{})

		result, err := space.Check(context.Background(), func(n int) bool { return n == 2 }, BreadthFirst)
		if err != nil {
			t.Fatalf("breadth-first check failed: %v", err)
		}
		if !result.Found {
			t.Error("expected goal to be reachable")
		}
	})
}

// TestCheck_MaxStates verifies the expansion cap.
func TestCheck_MaxStates(t *testing.T) {
	t.Run("unbounded chain hits the limit", func(t *testing.T) {
		successors := func(n int) []int { return []int{n + 1} }
		space := New(0, successors, nil, Options{MaxStates: 5})

		_, err := space.Check(context.Background(), func(int) bool { return false }, BreadthFirst)
		if !errors.Is(err, ErrStateLimit) {
			t.Fatalf("expected ErrStateLimit, got %v", err)
		}
	})

	t.Run("goal within the limit succeeds", func(t *testing.T) {
		successors := func(n int) []int { return []int{n + 1} }
		space := New(0, successors, nil, Options{MaxStates: 5})

		result, err := space.Check(context.Background(), func(n int) bool { return n == 3 }, BreadthFirst)
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if !result.Found {
			t.Error("expected goal within limit to be found")
		}
	})

	t.Run("zero means unlimited", func(t *testing.T) {
		successors := func(n int) []int {
			if n >= 50 {
				return nil
			}
			return []int{n + 1}
		}
		space := New(0, successors, nil, Options{})

		result, err := space.Check(context.Background(), func(n int) bool { return n == 50 }, BreadthFirst)
		if err != nil {
			t.Fatalf("Check failed: %v", err)
		}
		if !result.Found {
			t.Error("expected goal to be reachable without a limit")
		}
	})
}

// TestCheck_ContextCancellation verifies the driver honors ctx.
func TestCheck_ContextCancellation(t *testing.T) {
	successors := func(n int) []int { return []int{n + 1} }
	space := New(0, successors, nil, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel before the check starts

	_, err := space.Check(ctx, func(int) bool { return false }, BreadthFirst)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// TestCheck_Determinism verifies repeated checks replay identically.
func TestCheck_Determinism(t *testing.T) {
	space := newFerrySpace(Options{})

	first, err := space.Check(context.Background(), ferrySolved, BreadthFirst)
	if err != nil {
		t.Fatalf("first Check failed: %v", err)
	}
	second, err := space.Check(context.Background(), ferrySolved, BreadthFirst)
	if err != nil {
		t.Fatalf("second Check failed: %v", err)
	}

	if len(first.Path) != len(second.Path) {
		t.Fatalf("path lengths differ: %d vs %d", len(first.Path), len(second.Path))
	}
	for i := range first.Path {
		if first.Path[i] != second.Path[i] {
			t.Errorf("path[%d] differs: %v vs %v", i, first.Path[i], second.Path[i])
		}
	}
	if first.Stats.Expanded != second.Stats.Expanded {
		t.Errorf("Expanded differs: %d vs %d", first.Stats.Expanded, second.Stats.Expanded)
	}

	// Checks are independent runs with distinct identities.
	if first.RunID == second.RunID {
		t.Error("expected distinct RunIDs for independent checks")
	}
}

// TestCheck_Events verifies the event stream a check produces.
func TestCheck_Events(t *testing.T) {
	emitter := emit.NewBufferedEmitter()
	space := newFerrySpace(Options{Emitter: emitter})

	result, err := space.Check(context.Background(), ferrySolved, BreadthFirst)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	history := emitter.GetHistory(result.RunID)
	if len(history) == 0 {
		t.Fatal("expected events, got none")
	}

	if history[0].Msg != emit.MsgCheckStart {
		t.Errorf("first event = %q, want %q", history[0].Msg, emit.MsgCheckStart)
	}
	if history[0].Meta["order"] != "breadth_first" {
		t.Errorf("check start order = %v, want breadth_first", history[0].Meta["order"])
	}
	if history[0].State != "LL" {
		t.Errorf("check start state = %q, want LL", history[0].State)
	}

	last := history[len(history)-1]
	if last.Msg != emit.MsgGoal {
		t.Errorf("last event = %q, want %q", last.Msg, emit.MsgGoal)
	}
	if last.Meta["path_length"] != len(result.Path) {
		t.Errorf("goal path_length = %v, want %d", last.Meta["path_length"], len(result.Path))
	}

	expanded := emitter.GetHistoryWithFilter(result.RunID, emit.HistoryFilter{Msg: emit.MsgExpanded})
	if len(expanded) != result.Stats.Expanded {
		t.Errorf("expansion events = %d, want %d", len(expanded), result.Stats.Expanded)
	}
	seen := make(map[string]bool, len(expanded))
	for _, event := range expanded {
		if seen[event.State] {
			t.Errorf("state %s expanded twice", event.State)
		}
		seen[event.State] = true
	}

	rejected := emitter.GetHistoryWithFilter(result.RunID, emit.HistoryFilter{Msg: emit.MsgRejected})
	if len(rejected) != result.Stats.Rejected {
		t.Errorf("rejection events = %d, want %d", len(rejected), result.Stats.Rejected)
	}
	for _, event := range rejected {
		from, ok := event.Meta["from"].(string)
		if !ok || from == "" {
			t.Error("rejection event missing originating state")
		}
	}

	discovered := emitter.GetHistoryWithFilter(result.RunID, emit.HistoryFilter{Msg: emit.MsgDiscovered})
	if len(discovered) != 7 {
		t.Errorf("discovery events = %d, want 7", len(discovered))
	}

	// Exhausted checks emit a terminal event instead of goal_reached.
	exhaustedResult, err := space.Check(context.Background(), func(ferryState) bool { return false }, BreadthFirst)
	if err != nil {
		t.Fatalf("exhaustion Check failed: %v", err)
	}
	exhaustedHistory := emitter.GetHistory(exhaustedResult.RunID)
	last = exhaustedHistory[len(exhaustedHistory)-1]
	if last.Msg != emit.MsgExhausted {
		t.Errorf("last event = %q, want %q", last.Msg, emit.MsgExhausted)
	}
}

// TestCheck_NilEmitter verifies checks run silently without an emitter.
func TestCheck_NilEmitter(t *testing.T) {
	space := newFerrySpace(Options{})

	// Should not panic with no emitter configured.
	result, err := space.Check(context.Background(), ferrySolved, BreadthFirst)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !result.Found {
		t.Error("expected goal to be reachable")
	}
}

// TestCheck_NilInvariant verifies a nil invariant admits every state.
func TestCheck_NilInvariant(t *testing.T) {
	space := New(ferryState{A: 'L', B: 'L'}, ferrySuccessors, nil, Options{})

	result, err := space.Check(context.Background(), ferrySolved, BreadthFirst)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !result.Found {
		t.Fatal("expected goal to be reachable")
	}
	if result.Stats.Rejected != 0 {
		t.Errorf("Rejected = %d, want 0 with nil invariant", result.Stats.Rejected)
	}

	// The overloaded raft states become reachable but each transition
	// still moves a single actor, so the shortest plan stays 5 states.
	if len(result.Path) != 5 {
		t.Errorf("path length = %d, want 5", len(result.Path))
	}
}
