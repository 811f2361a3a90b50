// Package family models the Japanese river crossing puzzle.
//
// A mother, a father, two daughters, two sons, a policeman and a prisoner
// must cross the river in a two-seat boat. Only the adults can row.
// The prisoner attacks the family when the policeman is not with him, the
// daughters cannot be near the father without the mother, and the sons
// cannot be near the mother without the father.
package family

import (
	"fmt"
	"strings"

	"github.com/dshills/statespace-go/search"
)

// Pos locates one person: the starting shore, aboard the boat, or the
// destination shore.
type Pos uint8

const (
	Shore1 Pos = iota
	Onboard
	Shore2
)

// Person indexes a person's position in a State.
type Person int

const (
	Mother Person = iota
	Father
	Daughter1
	Daughter2
	Son1
	Son2
	Policeman
	Prisoner
)

// NumPersons is the number of persons in the puzzle.
const NumPersons = 8

var personNames = [NumPersons]string{
	"mother", "father", "daughter1", "daughter2",
	"son1", "son2", "policeman", "prisoner",
}

func (p Person) String() string {
	if p < 0 || p >= NumPersons {
		return fmt.Sprintf("person(%d)", int(p))
	}
	return personNames[p]
}

// BoatPos locates the boat: docked at a shore or mid-river.
type BoatPos uint8

const (
	BoatShore1 BoatPos = iota
	BoatTravel
	BoatShore2
)

// Boat is the ferry: where it is, how many seats it has, and how many
// passengers are aboard. Passengers always equals the number of persons
// at Onboard; Apply keeps the count in sync.
type Boat struct {
	Pos        BoatPos
	Capacity   int
	Passengers int
}

// State holds the boat and the position of every person, indexed by
// Person.
type State struct {
	Boat    Boat
	Persons [NumPersons]Pos
}

// Header labels the columns of the String rendering.
const Header = "Boat,     Mothr,Fathr,Daug1,Daug2,Son1, Son2, Polic,Prisn"

// String renders the boat as {pos,passengers,capacity} with pos one of
// sh1, trv, sh2, followed by one {SH1}, {~~~} or {SH2} cell per person
// in Person order.
func (s State) String() string {
	var b strings.Builder
	switch s.Boat.Pos {
	case BoatShore1:
		fmt.Fprintf(&b, "{sh1,%d,%d}", s.Boat.Passengers, s.Boat.Capacity)
	case BoatTravel:
		fmt.Fprintf(&b, "{trv,%d,%d}", s.Boat.Passengers, s.Boat.Capacity)
	case BoatShore2:
		fmt.Fprintf(&b, "{sh2,%d,%d}", s.Boat.Passengers, s.Boat.Capacity)
	}
	for _, pos := range s.Persons {
		switch pos {
		case Shore1:
			b.WriteString("{SH1}")
		case Onboard:
			b.WriteString("{~~~}")
		case Shore2:
			b.WriteString("{SH2}")
		}
	}
	return b.String()
}

// Initial returns the starting state: the boat docked at shore 1 with
// two seats, everyone on shore 1.
func Initial() State {
	return State{Boat: Boat{Capacity: 2}}
}

// MoveKind classifies a Move.
type MoveKind uint8

const (
	// Depart pushes the docked boat off with its passengers aboard.
	Depart MoveKind = iota
	// Arrive docks the traveling boat at Shore and lands every passenger.
	Arrive
	// Board moves Person from the boat's shore into the boat.
	Board
	// Disembark moves Person from the docked boat onto its shore.
	Disembark
)

// Move is one atomic change: the boat departing or arriving, or a single
// person boarding or leaving the docked boat.
type Move struct {
	Kind   MoveKind
	Person Person // who boards or disembarks, for Board and Disembark
	Shore  Pos    // landing shore, for Arrive
}

func (m Move) String() string {
	switch m.Kind {
	case Depart:
		return "boat departs"
	case Arrive:
		if m.Shore == Shore1 {
			return "boat arrives at shore 1"
		}
		return "boat arrives at shore 2"
	case Board:
		return m.Person.String() + " boards"
	case Disembark:
		return m.Person.String() + " disembarks"
	}
	return fmt.Sprintf("move(%d)", m.Kind)
}

// Moves enumerates every atomic move from s: boat moves first, then
// person moves in Person order. A docked boat departs only with
// passengers aboard; a traveling boat can dock at either shore, shore 1
// before shore 2. Boarding is not capacity checked here; Valid rejects
// the overloaded state instead.
func Moves(s State) []Move {
	var moves []Move
	switch s.Boat.Pos {
	case BoatShore1, BoatShore2:
		if s.Boat.Passengers > 0 {
			moves = append(moves, Move{Kind: Depart})
		}
	case BoatTravel:
		moves = append(moves, Move{Kind: Arrive, Shore: Shore1})
		moves = append(moves, Move{Kind: Arrive, Shore: Shore2})
	}
	for i, pos := range s.Persons {
		p := Person(i)
		switch pos {
		case Shore1:
			if s.Boat.Pos == BoatShore1 {
				moves = append(moves, Move{Kind: Board, Person: p})
			}
		case Shore2:
			if s.Boat.Pos == BoatShore2 {
				moves = append(moves, Move{Kind: Board, Person: p})
			}
		case Onboard:
			if s.Boat.Pos != BoatTravel {
				moves = append(moves, Move{Kind: Disembark, Person: p})
			}
		}
	}
	return moves
}

// Apply returns the state after playing m.
func Apply(s State, m Move) State {
	switch m.Kind {
	case Depart:
		s.Boat.Pos = BoatTravel
	case Arrive:
		if m.Shore == Shore1 {
			s.Boat.Pos = BoatShore1
		} else {
			s.Boat.Pos = BoatShore2
		}
		s.Boat.Passengers = 0
		for i, pos := range s.Persons {
			if pos == Onboard {
				s.Persons[i] = m.Shore
			}
		}
	case Board:
		s.Persons[m.Person] = Onboard
		s.Boat.Passengers++
	case Disembark:
		if s.Boat.Pos == BoatShore1 {
			s.Persons[m.Person] = Shore1
		} else {
			s.Persons[m.Person] = Shore2
		}
		s.Boat.Passengers--
	}
	return s
}

// Successors generates the one-step reachable states in Moves order.
var Successors = search.FromMoves(Moves, Apply)

var children = [...]Person{Daughter1, Daughter2, Son1, Son2}

// Violation names the first rule s breaks, or returns "" for a legal
// state. Rules are checked in a fixed order, so a state breaking several
// rules always reports the same one.
//
// A child aboard a docked boat is fine; the travel rules bind only while
// the boat is mid-river.
func Violation(s State) string {
	if s.Boat.Passengers > s.Boat.Capacity {
		return "boat overload"
	}
	if s.Boat.Pos == BoatTravel {
		for _, c := range children {
			if s.Persons[c] != Onboard {
				continue
			}
			// A child may only travel beside an adult of the family
			// or the policeman.
			unguarded := s.Boat.Passengers == 1 || s.Persons[Prisoner] == Onboard
			for _, other := range children {
				if other != c && s.Persons[other] == Onboard {
					unguarded = true
				}
			}
			if unguarded {
				return c.String() + " travels without a guardian"
			}
			break
		}
		if s.Persons[Prisoner] != s.Persons[Policeman] {
			at := s.Persons[Prisoner]
			family := s.Persons[Mother] == at || s.Persons[Father] == at
			for _, c := range children {
				if s.Persons[c] == at {
					family = true
				}
			}
			if family {
				return "prisoner left with the family unguarded"
			}
		}
		if s.Persons[Prisoner] == Onboard && s.Boat.Passengers < 2 {
			return "prisoner alone on the boat"
		}
	}
	switch {
	case s.Persons[Daughter1] == s.Persons[Father] && s.Persons[Daughter1] != s.Persons[Mother]:
		return "daughter1 with father without mother"
	case s.Persons[Daughter2] == s.Persons[Father] && s.Persons[Daughter2] != s.Persons[Mother]:
		return "daughter2 with father without mother"
	case s.Persons[Son1] == s.Persons[Mother] && s.Persons[Son1] != s.Persons[Father]:
		return "son1 with mother without father"
	case s.Persons[Son2] == s.Persons[Mother] && s.Persons[Son2] != s.Persons[Father]:
		return "son2 with mother without father"
	}
	return ""
}

// Valid reports whether s breaks no rule. The engine filters candidates
// with it; Violation supplies the printable reason.
func Valid(s State) bool {
	return Violation(s) == ""
}

// Solved reports whether every person reached shore 2.
func Solved(s State) bool {
	for _, pos := range s.Persons {
		if pos != Shore2 {
			return false
		}
	}
	return true
}

// Cost ranks states for cost-guided checks: Depth counts expansions,
// Noise accumulates while a son waits on shore 1. Comparison is
// lexicographic, depth before noise.
type Cost struct {
	Depth int
	Noise int
}

// Less reports whether c ranks strictly before other.
func (c Cost) Less(other Cost) bool {
	if c.Depth != other.Depth {
		return c.Depth < other.Depth
	}
	return c.Noise < other.Noise
}

// ByDepth charges one depth unit per expansion. Every frontier state then
// evaluates equally, so the check expands in breadth-first order and
// finds a shortest solution.
func ByDepth() search.CostModel[State, Cost] {
	return search.CostModel[State, Cost]{
		Evaluate: func(_ State, previous Cost) Cost {
			return Cost{Depth: previous.Depth + 1, Noise: previous.Noise}
		},
		Less: Cost.Less,
	}
}

// ByNoise charges noise for each son still waiting on shore 1, weighted
// per son. Weighting a son higher steers the search toward states that
// ferry him across earlier, so ByNoise(2, 1) and ByNoise(1, 2) surface
// different solutions. Depth is left untouched.
func ByNoise(older, younger int) search.CostModel[State, Cost] {
	return search.CostModel[State, Cost]{
		Evaluate: func(s State, previous Cost) Cost {
			noise := previous.Noise
			if s.Persons[Son1] == Shore1 {
				noise += older
			}
			if s.Persons[Son2] == Shore1 {
				noise += younger
			}
			return Cost{Depth: previous.Depth, Noise: noise}
		},
		Less: Cost.Less,
	}
}
