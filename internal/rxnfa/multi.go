package rxnfa

import (
	"github.com/jsinger67/scnr-sub000/internal/conv"
	"github.com/jsinger67/scnr-sub000/internal/ids"
	"github.com/jsinger67/scnr-sub000/internal/sparse"
)

// Acceptance records what a single NFA's end state produces, for lookup once
// that state is folded into a MultiPattern's shared state space.
type Acceptance struct {
	TerminalID   ids.TerminalID
	PatternIndex int
}

// MultiPattern combines several per-pattern NFAs into one automaton: a fresh
// synthetic state 0 epsilon-branches into every pattern's (shifted) start
// state. Each original NFA's states are renumbered into a disjoint range of
// the shared state space so a single subset construction can run over all
// patterns of a mode at once.
type MultiPattern struct {
	States     []State
	Accept     map[ids.StateID]Acceptance
	NumClasses int // one more than the highest CharClassID referenced, for sizing disjoint lookups
}

// BuildMultiPattern folds nfas into one shared state space. Order matters:
// nfas[i].PatternIndex should equal i for the priority tie-break to reflect
// declaration order, but BuildMultiPattern itself only reads PatternIndex,
// it does not assign it.
func BuildMultiPattern(nfas []*NFA) *MultiPattern {
	mp := &MultiPattern{Accept: make(map[ids.StateID]Acceptance, len(nfas))}
	mp.States = append(mp.States, State{}) // state 0: synthetic start

	for _, nfa := range nfas {
		offset := ids.StateID(len(mp.States))
		for _, st := range nfa.States {
			ns := State{HasConsuming: st.HasConsuming}
			for _, e := range st.Epsilons {
				ns.Epsilons = append(ns.Epsilons, e+offset)
			}
			if st.HasConsuming {
				ns.Class = st.Class
				ns.ConsumingNext = st.ConsumingNext + offset
				if int(st.Class)+1 > mp.NumClasses {
					mp.NumClasses = int(st.Class) + 1
				}
			}
			mp.States = append(mp.States, ns)
		}
		mp.States[0].Epsilons = append(mp.States[0].Epsilons, nfa.Start+offset)
		mp.Accept[nfa.End+offset] = Acceptance{TerminalID: nfa.TerminalID, PatternIndex: nfa.PatternIndex}
	}
	return mp
}

// EpsilonClosure computes the epsilon-closure of a seed set of states.
func (mp *MultiPattern) EpsilonClosure(seed []ids.StateID) []ids.StateID {
	seen := sparse.NewSparseSet(conv.IntToUint32(len(mp.States)))
	queue := make([]ids.StateID, 0, len(seed)*2)
	queue = append(queue, seed...)
	for _, s := range seed {
		seen.Insert(uint32(s))
	}
	for i := 0; i < len(queue); i++ {
		for _, next := range mp.States[queue[i]].Epsilons {
			if !seen.Contains(uint32(next)) {
				seen.Insert(uint32(next))
				queue = append(queue, next)
			}
		}
	}
	return queue
}
