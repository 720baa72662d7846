package dfa

import (
	"strconv"
	"strings"

	"github.com/jsinger67/scnr-sub000/internal/ids"
)

// Minimize collapses equivalent states of d into one canonical DFA using
// Hopcroft-style partition refinement. The initial partition groups states by
// terminal identity (one group per distinct accepting terminal, plus one
// group for every non-accepting state) rather than the usual binary
// accepting/non-accepting split, so that minimization can never merge two
// states that accept different patterns — the partition is then refined by
// transition signature until it reaches a fixpoint. The group that contains
// the original start state becomes the minimized automaton's state 0.
func Minimize(d *CompiledDFA) *CompiledDFA {
	group := make([]int, d.NumStates)
	terminalGroup := make(map[ids.TerminalID]int)
	nextGroup := 0
	for s := 0; s < d.NumStates; s++ {
		if d.Accepting[s] {
			t := d.AcceptTerminal[s]
			g, ok := terminalGroup[t]
			if !ok {
				g = nextGroup
				nextGroup++
				terminalGroup[t] = g
			}
			group[s] = g
		}
	}
	nonAcceptingGroup := -1
	for s := 0; s < d.NumStates; s++ {
		if !d.Accepting[s] {
			if nonAcceptingGroup == -1 {
				nonAcceptingGroup = nextGroup
				nextGroup++
			}
			group[s] = nonAcceptingGroup
		}
	}
	numGroups := nextGroup

	for {
		sigOf := make([]string, d.NumStates)
		for s := 0; s < d.NumStates; s++ {
			var sb strings.Builder
			for c := 0; c < d.NumClasses; c++ {
				t := d.Transitions[s][c]
				if t == ids.InvalidState {
					sb.WriteString("x,")
				} else {
					sb.WriteString(strconv.Itoa(group[int(t)]))
					sb.WriteByte(',')
				}
			}
			sigOf[s] = sb.String()
		}

		newGroup := make([]int, d.NumStates)
		groupSigToNew := make(map[int]map[string]int)
		nextNewGroup := 0
		for s := 0; s < d.NumStates; s++ {
			og := group[s]
			m, ok := groupSigToNew[og]
			if !ok {
				m = make(map[string]int)
				groupSigToNew[og] = m
			}
			ng, ok := m[sigOf[s]]
			if !ok {
				ng = nextNewGroup
				nextNewGroup++
				m[sigOf[s]] = ng
			}
			newGroup[s] = ng
		}

		changed := nextNewGroup != numGroups
		group = newGroup
		numGroups = nextNewGroup
		if !changed {
			break
		}
	}

	return buildFromPartition(d, group, numGroups)
}

// buildFromPartition materializes the minimized automaton from a converged
// partition, reordering groups so the one containing the original start
// state becomes state 0.
func buildFromPartition(d *CompiledDFA, group []int, numGroups int) *CompiledDFA {
	reorder := make([]int, numGroups)
	for i := range reorder {
		reorder[i] = -1
	}
	startGroup := group[int(d.Start)]
	reorder[startGroup] = 0
	next := 1
	for g := 0; g < numGroups; g++ {
		if reorder[g] == -1 {
			reorder[g] = next
			next++
		}
	}

	representative := make([]ids.StateID, numGroups)
	seen := make([]bool, numGroups)
	for s := 0; s < d.NumStates; s++ {
		g := reorder[group[s]]
		if !seen[g] {
			seen[g] = true
			representative[g] = ids.StateID(s)
		}
	}

	out := newCompiledDFA(numGroups, d.NumClasses)
	out.Start = 0
	out.Lookaheads = d.Lookaheads
	out.Intervals = d.Intervals
	for g := 0; g < numGroups; g++ {
		rep := representative[g]
		out.Accepting[g] = d.Accepting[rep]
		out.AcceptTerminal[g] = d.AcceptTerminal[rep]
		out.AcceptPatternIndex[g] = d.AcceptPatternIndex[rep]
		for c := 0; c < d.NumClasses; c++ {
			t := d.Transitions[rep][c]
			if t == ids.InvalidState {
				continue
			}
			out.Transitions[g][c] = ids.StateID(reorder[group[int(t)]])
		}
	}
	return out
}
