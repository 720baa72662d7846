package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jsinger67/scnr-sub000/internal/charclass"
	"github.com/jsinger67/scnr-sub000/internal/ids"
	"github.com/jsinger67/scnr-sub000/internal/rxnfa"
)

// BuildFromMultiPattern runs subset construction over mp: DFA state 0 is the
// epsilon-closure of the synthetic NFA start state 0, and every further DFA
// state is the epsilon-closure of the set reached by following one disjoint
// class's worth of consuming transitions from the states of some existing
// DFA state. reg must already be finalized (reg.Finalize called) so its
// elementary-interval partition and per-class disjoint lists are available.
func BuildFromMultiPattern(mp *rxnfa.MultiPattern, reg *charclass.Registry) *CompiledDFA {
	numClasses := reg.NumElementaryIntervals()

	type pending struct {
		set []ids.StateID
	}
	stateOf := make(map[string]ids.StateID)
	var order []pending

	keyOf := func(set []ids.StateID) string {
		sorted := append([]ids.StateID(nil), set...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		var sb strings.Builder
		for i, s := range sorted {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatUint(uint64(s), 10))
		}
		return sb.String()
	}

	internState := func(set []ids.StateID) ids.StateID {
		k := keyOf(set)
		if id, ok := stateOf[k]; ok {
			return id
		}
		id := ids.StateID(len(order))
		stateOf[k] = id
		order = append(order, pending{set: set})
		return id
	}

	start := mp.EpsilonClosure([]ids.StateID{0})
	internState(start)

	// BFS; order grows as new DFA states are discovered.
	transitions := make(map[ids.StateID]map[ids.DisjointClassID]ids.StateID)
	for i := 0; i < len(order); i++ {
		stateID := ids.StateID(i)
		moveSets := make(map[ids.DisjointClassID][]ids.StateID)
		for _, nfaState := range order[i].set {
			st := mp.States[nfaState]
			if !st.HasConsuming {
				continue
			}
			for _, d := range reg.DisjointClasses(st.Class) {
				moveSets[d] = append(moveSets[d], st.ConsumingNext)
			}
		}
		rowTrans := make(map[ids.DisjointClassID]ids.StateID, len(moveSets))
		for d, targets := range moveSets {
			closed := mp.EpsilonClosure(targets)
			rowTrans[d] = internState(closed)
		}
		transitions[stateID] = rowTrans
	}

	out := newCompiledDFA(len(order), numClasses)
	out.Start = 0
	out.Intervals = make([]charclass.Interval, numClasses)
	for c := 0; c < numClasses; c++ {
		out.Intervals[c] = reg.ElementaryInterval(ids.DisjointClassID(c))
	}
	for i, p := range order {
		sid := ids.StateID(i)
		for d, target := range transitions[sid] {
			out.Transitions[i][d] = target
		}
		best, any := bestAcceptance(mp, p.set)
		if any {
			out.Accepting[i] = true
			out.AcceptTerminal[i] = best.TerminalID
			out.AcceptPatternIndex[i] = best.PatternIndex
		}
	}
	return out
}

// bestAcceptance returns the highest-priority (lowest PatternIndex)
// acceptance among the NFA states in set that are accepting, if any.
func bestAcceptance(mp *rxnfa.MultiPattern, set []ids.StateID) (rxnfa.Acceptance, bool) {
	var best rxnfa.Acceptance
	found := false
	for _, s := range set {
		acc, ok := mp.Accept[s]
		if !ok {
			continue
		}
		if !found || acc.PatternIndex < best.PatternIndex {
			best = acc
			found = true
		}
	}
	return best, found
}
