package dfa

import (
	"unicode/utf8"

	"github.com/jsinger67/scnr-sub000/internal/ids"
)

// Result is one longest match found by FindFrom.
type Result struct {
	Start, End   int // byte offsets into the scanned input
	TerminalID   ids.TerminalID
	PatternIndex int
}

// FindFrom drives d over input starting at byte offset from, returning the
// longest match whose terminal's lookahead (if any) is satisfied at the
// candidate end position. Because d is deterministic and every one of its
// accepting states was already resolved to a single highest-priority
// terminal at subset-construction time (see bestAcceptance), the simulator
// itself only needs to track "is this candidate longer than the last one
// that passed its lookahead" — every later candidate in the scan is, by
// construction, at a strictly greater byte offset than the one before it.
//
// FindFrom never returns a zero-length match: the loop body only considers
// acceptance after successfully consuming at least one rune.
func FindFrom(d *CompiledDFA, input string, from int) (Result, bool) {
	state := d.Start
	pos := from
	var best Result
	found := false

	for pos < len(input) {
		r, size := utf8.DecodeRuneInString(input[pos:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		class, ok := d.Classify(r)
		if !ok {
			break
		}
		next, ok := d.Step(state, class)
		if !ok {
			break
		}
		state = next
		pos += size

		if d.Accepting[state] {
			terminal := d.AcceptTerminal[state]
			if lookaheadSatisfied(d, input, pos, terminal) {
				best = Result{
					Start:        from,
					End:          pos,
					TerminalID:   terminal,
					PatternIndex: d.AcceptPatternIndex[state],
				}
				found = true
			}
		}
	}
	return best, found
}

func lookaheadSatisfied(d *CompiledDFA, input string, pos int, terminal ids.TerminalID) bool {
	la, ok := d.Lookaheads[terminal]
	if !ok {
		return true
	}
	_, matched := FindFrom(la.DFA, input, pos)
	if la.IsPositive {
		return matched
	}
	return !matched
}
