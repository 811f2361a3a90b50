// Package crossing models the wolf, goat and cabbage crossing puzzle.
//
// Three actors start on shore 1 and must all reach shore 2. A boatman
// ferries one actor at a time; while he is mid-river, the actors left
// ashore are unattended, and the wolf eats the goat or the goat eats the
// cabbage if the pair shares a shore.
package crossing

import (
	"fmt"

	"github.com/dshills/statespace-go/search"
)

// Pos locates one actor: the starting shore, mid-river aboard the boat,
// or the destination shore.
type Pos uint8

const (
	Shore1 Pos = iota
	Travel
	Shore2
)

// Actor indexes an actor's position in a State.
type Actor int

const (
	Cabbage Actor = iota
	Goat
	Wolf
)

func (a Actor) String() string {
	switch a {
	case Cabbage:
		return "cabbage"
	case Goat:
		return "goat"
	case Wolf:
		return "wolf"
	}
	return fmt.Sprintf("actor(%d)", int(a))
}

// NumActors is the number of actors in the puzzle.
const NumActors = 3

// State holds the position of every actor, indexed by Actor.
// The zero value places everyone on shore 1.
type State [NumActors]Pos

// String renders one character per actor in C, G, W order:
// "1" and "2" for the shores, "~" mid-river.
func (s State) String() string {
	buf := make([]byte, NumActors)
	for i, p := range s {
		switch p {
		case Shore1:
			buf[i] = '1'
		case Shore2:
			buf[i] = '2'
		case Travel:
			buf[i] = '~'
		}
	}
	return string(buf)
}

// Initial returns the starting state: every actor on shore 1.
func Initial() State {
	return State{}
}

// Move ferries one actor one leg of a crossing: from a shore into the
// boat, or from the boat onto a shore.
type Move struct {
	Actor Actor
	To    Pos
}

func (m Move) String() string {
	switch m.To {
	case Travel:
		return m.Actor.String() + " boards"
	case Shore1:
		return m.Actor.String() + " lands on shore 1"
	}
	return m.Actor.String() + " lands on shore 2"
}

// Moves enumerates every one-leg move from s, in actor order. An actor
// ashore can board the boat; a traveling actor can land on either shore,
// shore 1 before shore 2.
func Moves(s State) []Move {
	var moves []Move
	for i, p := range s {
		a := Actor(i)
		switch p {
		case Shore1, Shore2:
			moves = append(moves, Move{Actor: a, To: Travel})
		case Travel:
			moves = append(moves, Move{Actor: a, To: Shore1})
			moves = append(moves, Move{Actor: a, To: Shore2})
		}
	}
	return moves
}

// Apply returns the state after playing m.
func Apply(s State, m Move) State {
	s[m.Actor] = m.To
	return s
}

// Successors generates the one-step reachable states in Moves order.
var Successors = search.FromMoves(Moves, Apply)

// Valid rejects overloaded boats and states where an actor gets eaten.
// The boatman rows whichever actor is traveling, so a predator and its
// prey are unattended exactly when the third actor is mid-river.
func Valid(s State) bool {
	travelers := 0
	for _, p := range s {
		if p == Travel {
			travelers++
		}
	}
	// The boat carries one passenger.
	if travelers > 1 {
		return false
	}
	// The wolf eats the goat.
	if s[Goat] == s[Wolf] && s[Cabbage] == Travel {
		return false
	}
	// The goat eats the cabbage.
	if s[Goat] == s[Cabbage] && s[Wolf] == Travel {
		return false
	}
	return true
}

// Solved reports whether every actor reached shore 2.
func Solved(s State) bool {
	for _, p := range s {
		if p != Shore2 {
			return false
		}
	}
	return true
}
