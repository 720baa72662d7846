// Package dfa builds, minimizes, and simulates the deterministic automaton
// that drives one scanner mode: subset construction over a multi-pattern NFA
// (subset.go), Hopcroft-style minimization that preserves per-terminal
// acceptance identity (minimize.go), and longest-match simulation with
// lookahead and priority tie-break (simulate.go, lookahead.go).
package dfa

import (
	"sort"

	"github.com/jsinger67/scnr-sub000/internal/charclass"
	"github.com/jsinger67/scnr-sub000/internal/ids"
)

// CompiledDFA is an immutable, simulation-ready automaton for one scanner
// mode (or one lookahead sub-pattern). Transitions are dense: for state s and
// disjoint class d, Transitions[s][d] is the target state, or InvalidState if
// the automaton has no transition on that class from that state.
type CompiledDFA struct {
	NumStates   int
	NumClasses  int
	Transitions [][]ids.StateID // [state][disjointClassID]

	// Accepting[s] reports whether state s is a terminal state. When true,
	// AcceptTerminal[s] / AcceptPatternIndex[s] name the pattern that
	// accepts there (the highest-priority one, if minimization merged more
	// than one terminal's end state into s — which it never does, since the
	// initial partition separates by terminal identity, but a single
	// original NFA accepting state still maps to exactly one terminal).
	Accepting          []bool
	AcceptTerminal     []ids.TerminalID
	AcceptPatternIndex []int

	// Lookaheads maps a TerminalID to the compiled lookahead its pattern
	// carries, for terminals whose pattern had one. Absent entries mean no
	// lookahead requirement.
	Lookaheads map[ids.TerminalID]*CompiledLookahead

	Start ids.StateID

	// Intervals is the elementary-interval partition this DFA's transitions
	// are labeled against: Intervals[d] is the rune range denoted by
	// DisjointClassID d. Carried by value (not a *charclass.Registry
	// reference) so a CompiledDFA remains a self-contained, immutable
	// simulation artifact once built.
	Intervals []charclass.Interval
}

// Classify returns the DisjointClassID whose elementary interval contains r,
// or (0, false) if r is not covered by any class this DFA was built against
// (in which case no transition can ever be taken on r).
func (d *CompiledDFA) Classify(r rune) (ids.DisjointClassID, bool) {
	ivs := d.Intervals
	i := sort.Search(len(ivs), func(i int) bool { return ivs[i].Hi >= r })
	if i < len(ivs) && ivs[i].Lo <= r && r <= ivs[i].Hi {
		return ids.DisjointClassID(i), true
	}
	return 0, false
}

func newCompiledDFA(numStates, numClasses int) *CompiledDFA {
	d := &CompiledDFA{
		NumStates:          numStates,
		NumClasses:         numClasses,
		Transitions:        make([][]ids.StateID, numStates),
		Accepting:          make([]bool, numStates),
		AcceptTerminal:     make([]ids.TerminalID, numStates),
		AcceptPatternIndex: make([]int, numStates),
		Lookaheads:         make(map[ids.TerminalID]*CompiledLookahead),
	}
	for s := 0; s < numStates; s++ {
		row := make([]ids.StateID, numClasses)
		for c := range row {
			row[c] = ids.InvalidState
		}
		d.Transitions[s] = row
	}
	return d
}

// Step returns the target state for (state, class), or (InvalidState, false)
// if there is no such transition.
func (d *CompiledDFA) Step(state ids.StateID, class ids.DisjointClassID) (ids.StateID, bool) {
	if int(class) >= d.NumClasses {
		return ids.InvalidState, false
	}
	t := d.Transitions[state][class]
	if t == ids.InvalidState {
		return ids.InvalidState, false
	}
	return t, true
}
