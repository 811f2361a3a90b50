package crossing

import (
	"context"
	"strings"
	"testing"

	"github.com/dshills/statespace-go/search"
)

func pathStrings(path []State) []string {
	out := make([]string, len(path))
	for i, s := range path {
		out[i] = s.String()
	}
	return out
}

func TestState_String(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{"initial", State{}, "111"},
		{"goat mid-river", State{Shore1, Travel, Shore1}, "1~1"},
		{"mixed shores", State{Shore2, Travel, Shore1}, "2~1"},
		{"solved", State{Shore2, Shore2, Shore2}, "222"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInitial(t *testing.T) {
	s := Initial()
	for a, p := range s {
		if p != Shore1 {
			t.Errorf("actor %d starts at %d, want Shore1", a, p)
		}
	}
}

func TestMoves(t *testing.T) {
	t.Run("everyone ashore boards in actor order", func(t *testing.T) {
		got := Moves(Initial())
		want := []Move{
			{Actor: Cabbage, To: Travel},
			{Actor: Goat, To: Travel},
			{Actor: Wolf, To: Travel},
		}
		if len(got) != len(want) {
			t.Fatalf("got %d moves, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("move %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("traveler lands on shore 1 before shore 2", func(t *testing.T) {
		got := Moves(State{Shore2, Travel, Shore1})
		want := []Move{
			{Actor: Cabbage, To: Travel},
			{Actor: Goat, To: Shore1},
			{Actor: Goat, To: Shore2},
			{Actor: Wolf, To: Travel},
		}
		if len(got) != len(want) {
			t.Fatalf("got %d moves, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("move %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	})
}

func TestApply(t *testing.T) {
	s := Initial()
	next := Apply(s, Move{Actor: Goat, To: Travel})

	if next.String() != "1~1" {
		t.Errorf("Apply = %q, want 1~1", next)
	}
	if s.String() != "111" {
		t.Errorf("Apply mutated its input: %q", s)
	}
}

func TestMove_String(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{Actor: Goat, To: Travel}, "goat boards"},
		{Move{Actor: Wolf, To: Shore1}, "wolf lands on shore 1"},
		{Move{Actor: Cabbage, To: Shore2}, "cabbage lands on shore 2"},
	}

	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{"initial state", State{}, true},
		{"goat mid-river", State{Shore1, Travel, Shore1}, true},
		{"two travelers", State{Travel, Travel, Shore1}, false},
		{"goat alone with wolf", State{Travel, Shore1, Shore1}, false},
		{"goat alone with cabbage", State{Shore1, Shore1, Travel}, false},
		{"cabbage crossing after goat", State{Travel, Shore2, Shore1}, true},
		{"wolf crossing after goat", State{Shore1, Shore2, Travel}, true},
		{"goat and wolf apart while cabbage crosses", State{Travel, Shore2, Shore2}, false},
		{"all delivered", State{Shore2, Shore2, Shore2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.state); got != tt.want {
				t.Errorf("Valid(%v) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}

func TestSolved(t *testing.T) {
	if Solved(Initial()) {
		t.Error("initial state reported solved")
	}
	if Solved(State{Shore2, Shore2, Travel}) {
		t.Error("wolf still mid-river reported solved")
	}
	if !Solved(State{Shore2, Shore2, Shore2}) {
		t.Error("delivered state not reported solved")
	}
}

func TestSolve_BreadthFirst(t *testing.T) {
	space := search.New(Initial(), Successors, Valid, search.Options{})

	result, err := space.Check(context.Background(), Solved, search.BreadthFirst)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !result.Found {
		t.Fatal("no solution found")
	}

	want := []string{"111", "1~1", "121", "~21", "221", "2~1", "211", "21~", "212", "2~2", "222"}
	got := pathStrings(result.Path)
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("path = %v, want %v", got, want)
	}

	if result.Stats.Expanded != 15 {
		t.Errorf("Expanded = %d, want 15", result.Stats.Expanded)
	}

	moves, ok := search.Annotate(result.Path, Moves, Apply)
	if !ok {
		t.Fatal("solution path not explainable by Moves/Apply")
	}
	if len(moves) != len(result.Path)-1 {
		t.Fatalf("got %d moves for %d states", len(moves), len(result.Path))
	}
	if moves[0] != (Move{Actor: Goat, To: Travel}) {
		t.Errorf("first move = %+v, want the goat boarding", moves[0])
	}
	if moves[len(moves)-1] != (Move{Actor: Goat, To: Shore2}) {
		t.Errorf("last move = %+v, want the goat landing on shore 2", moves[len(moves)-1])
	}
}

func TestSolve_DepthFirst(t *testing.T) {
	space := search.New(Initial(), Successors, Valid, search.Options{})

	result, err := space.Check(context.Background(), Solved, search.DepthFirst)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !result.Found {
		t.Fatal("no solution found")
	}

	// The depth-first path differs from the breadth-first one; assert it
	// is a legal walk rather than pinning the exact route.
	if result.Path[0] != Initial() {
		t.Errorf("path starts at %v, want the initial state", result.Path[0])
	}
	if !Solved(result.Path[len(result.Path)-1]) {
		t.Errorf("path ends at %v, want a solved state", result.Path[len(result.Path)-1])
	}
	for i, s := range result.Path {
		if !Valid(s) {
			t.Errorf("path state %d (%v) violates the invariant", i, s)
		}
	}
	if _, ok := search.Annotate(result.Path, Moves, Apply); !ok {
		t.Error("path not explainable by Moves/Apply")
	}
}
