// Package frogs models the leaping frogs puzzle.
//
// A row of 2n+1 stones holds n green frogs on the left, n brown frogs on
// the right, and one empty stone between them. Green frogs only move
// right and brown frogs only move left; a frog either steps onto the
// empty stone or jumps over a single neighbor onto it. The puzzle is
// solved when the two groups have swapped sides.
package frogs

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/statespace-go/search"
)

// Stone contents, one byte per stone.
const (
	Green byte = 'G'
	Brown byte = 'B'
	Empty byte = '_'
)

// State is the row of stones rendered as a string of Green, Brown and
// Empty bytes, e.g. "GG_BB".
type State string

// Start returns the initial row for the given number of frog pairs:
// greens on the left, browns on the right, the empty stone between.
func Start(pairs int) State {
	row := make([]byte, 2*pairs+1)
	for i := range row {
		row[i] = Empty
	}
	for i := 0; i < pairs; i++ {
		row[i] = Green
		row[len(row)-1-i] = Brown
	}
	return State(row)
}

// Finish returns the goal row: the mirror image of Start.
func Finish(pairs int) State {
	row := make([]byte, 2*pairs+1)
	for i := range row {
		row[i] = Empty
	}
	for i := 0; i < pairs; i++ {
		row[i] = Brown
		row[len(row)-1-i] = Green
	}
	return State(row)
}

// Move hops the frog on stone From onto the empty stone To.
type Move struct {
	From int
	To   int
}

// String names the hop by color: greens only ever move right, browns
// only ever move left.
func (m Move) String() string {
	if m.From < m.To {
		return fmt.Sprintf("green frog hops %d to %d", m.From, m.To)
	}
	return fmt.Sprintf("brown frog hops %d to %d", m.From, m.To)
}

// Moves enumerates the legal hops from s: a green stepping right into
// the empty stone, a green jumping over one stone, then the same for a
// brown moving left. Rows without an empty stone have no moves.
func Moves(s State) []Move {
	if len(s) < 2 {
		return nil
	}
	gap := strings.IndexByte(string(s), Empty)
	if gap < 0 {
		return nil
	}

	var moves []Move
	if gap > 0 && s[gap-1] == Green {
		moves = append(moves, Move{From: gap - 1, To: gap})
	}
	if gap > 1 && s[gap-2] == Green {
		moves = append(moves, Move{From: gap - 2, To: gap})
	}
	if gap < len(s)-1 && s[gap+1] == Brown {
		moves = append(moves, Move{From: gap + 1, To: gap})
	}
	if gap < len(s)-2 && s[gap+2] == Brown {
		moves = append(moves, Move{From: gap + 2, To: gap})
	}
	return moves
}

// Apply returns the row after the hop.
func Apply(s State, m Move) State {
	row := []byte(s)
	row[m.To] = row[m.From]
	row[m.From] = Empty
	return State(row)
}

// Successors generates the one-hop reachable rows in Moves order.
var Successors = search.FromMoves(Moves, Apply)

// Solved reports whether the groups have fully swapped sides.
func Solved(s State) bool {
	return s == Finish(len(s) / 2)
}

// WriteTree writes the tree of states reachable from s to w, one state
// per line, indented two spaces per level:
//
//	state GG_BB has 4 transitions, leading to:
//	  state G_GBB has 2 transitions, leading to:
//	    state _GGBB has 0 transitions
//	    ...
//
// maxDepth limits how many levels below s are expanded; zero or a
// negative value expands the whole tree. States revisited on separate
// branches are expanded again, so the dump grows quickly with the pair
// count; it is meant for explaining small instances.
func WriteTree(w io.Writer, s State, maxDepth int) error {
	return writeTree(w, s, 0, maxDepth)
}

func writeTree(w io.Writer, s State, level, maxDepth int) error {
	moves := Moves(s)
	indent := strings.Repeat("  ", level)

	if len(moves) == 0 {
		_, err := fmt.Fprintf(w, "%sstate %s has 0 transitions\n", indent, s)
		return err
	}
	if maxDepth > 0 && level >= maxDepth {
		_, err := fmt.Fprintf(w, "%sstate %s has %d transitions\n", indent, s, len(moves))
		return err
	}

	if _, err := fmt.Fprintf(w, "%sstate %s has %d transitions, leading to:\n", indent, s, len(moves)); err != nil {
		return err
	}
	for _, m := range moves {
		if err := writeTree(w, Apply(s, m), level+1, maxDepth); err != nil {
			return err
		}
	}
	return nil
}
