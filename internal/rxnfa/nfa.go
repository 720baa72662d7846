// Package rxnfa lowers a parsed regular expression (via the standard
// library's regexp/syntax parser) into a Thompson-construction NFA whose
// consuming transitions are labeled with interned character-class IDs, and
// combines several such per-pattern NFAs into one multi-pattern NFA sharing
// a single synthetic start state.
package rxnfa

import (
	"github.com/jsinger67/scnr-sub000/internal/conv"
	"github.com/jsinger67/scnr-sub000/internal/ids"
	"github.com/jsinger67/scnr-sub000/internal/sparse"
)

// State is one NFA state: zero or more outgoing epsilon transitions, plus at
// most one outgoing consuming transition labeled with a character class.
type State struct {
	Epsilons      []ids.StateID
	HasConsuming  bool
	Class         ids.CharClassID
	ConsumingNext ids.StateID
}

// NFA is a single compiled pattern: a Thompson-construction fragment with one
// start state and one accepting end state, plus the terminal it produces.
type NFA struct {
	States     []State
	Start      ids.StateID
	End        ids.StateID
	TerminalID ids.TerminalID
	// PatternIndex is the pattern's position in the caller-supplied pattern
	// list. It is the sole priority tie-break key subset construction uses
	// when two patterns accept in the same DFA state — not TerminalID, which
	// the caller is free to assign in any order.
	PatternIndex int
	Pattern      string
}

func (n *NFA) newState() ids.StateID {
	id := ids.StateID(len(n.States))
	n.States = append(n.States, State{})
	return id
}

func (n *NFA) addEpsilon(from, to ids.StateID) {
	n.States[from].Epsilons = append(n.States[from].Epsilons, to)
}

func (n *NFA) addConsuming(from ids.StateID, class ids.CharClassID, to ids.StateID) {
	n.States[from].HasConsuming = true
	n.States[from].Class = class
	n.States[from].ConsumingNext = to
}

// EpsilonClosure computes the epsilon-closure of a set of states, seeded by
// start, into a freshly allocated slice. Returned order is a stable
// traversal order, not sorted.
func (n *NFA) EpsilonClosure(start []ids.StateID) []ids.StateID {
	seen := sparse.NewSparseSet(conv.IntToUint32(len(n.States)))
	queue := make([]ids.StateID, 0, len(start)*2)
	queue = append(queue, start...)
	for _, s := range start {
		seen.Insert(uint32(s))
	}
	for i := 0; i < len(queue); i++ {
		s := queue[i]
		for _, next := range n.States[s].Epsilons {
			if !seen.Contains(uint32(next)) {
				seen.Insert(uint32(next))
				queue = append(queue, next)
			}
		}
	}
	return queue
}
