package scnr

import (
	"sort"
	"unicode/utf8"

	"github.com/jsinger67/scnr-sub000/internal/dfa"
	"github.com/jsinger67/scnr-sub000/internal/modemachine"
)

// FindMatches is a single-pass cursor over one input string, driving a
// Scanner's mode machine forward. It is not safe for concurrent use: all of
// its state (the input cursor, the active mode, recorded line-start
// offsets) is mutated in place by Next, AdvanceTo, SetOffset, SetMode, and
// Position.
type FindMatches struct {
	machine *modemachine.Machine
	input   string

	pos int // next byte offset Next will attempt to match at

	// lineOffsets[i] is the byte offset where line i+1 begins; always
	// starts with lineOffsets[0] == 0. Strictly increasing. recorded is how
	// far into input lineOffsets has already accounted for, so repeated
	// Position/AdvanceTo/Next calls only scan the new suffix of input, not
	// the whole prefix again.
	lineOffsets []int
	recorded    int
}

func newFindMatches(s *Scanner, input string) *FindMatches {
	return &FindMatches{
		machine:     modemachine.NewMachine(s.modes),
		input:       input,
		lineOffsets: []int{0},
	}
}

// recordLineOffsetsUpTo scans input[recorded:end) for newlines, extending
// lineOffsets, then advances recorded to end. end must be <= len(input).
func (fm *FindMatches) recordLineOffsetsUpTo(end int) {
	if end <= fm.recorded {
		return
	}
	for i := fm.recorded; i < end; i++ {
		if fm.input[i] == '\n' {
			fm.lineOffsets = append(fm.lineOffsets, i+1)
		}
	}
	fm.recorded = end
}

// Next returns the next match, advancing the cursor past it. On a miss at
// the current position it retries at the next rune (or, when the active
// mode's patterns are all exact literals, jumps straight to the next
// literal occurrence) — this is what guarantees Next eventually terminates
// instead of getting stuck at unrecognized input.
func (fm *FindMatches) Next() (Match, bool) {
	for {
		res, ok := fm.machine.FindCommitted(fm.input, fm.pos)
		if ok {
			fm.recordLineOffsetsUpTo(res.End)
			fm.pos = res.End
			return Match{TerminalID: uint32(res.TerminalID), Span: Span{Start: res.Start, End: res.End}}, true
		}

		mode := fm.machine.Current()
		if mode.Prefilter != nil {
			next, found := mode.Prefilter.NextOccurrence(fm.input, fm.pos)
			if found {
				fm.recordLineOffsetsUpTo(next)
				fm.pos = next
				continue
			}
			fm.recordLineOffsetsUpTo(len(fm.input))
			fm.pos = len(fm.input)
			return Match{}, false
		}

		if fm.pos >= len(fm.input) {
			fm.recordLineOffsetsUpTo(len(fm.input))
			return Match{}, false
		}
		_, size := utf8.DecodeRuneInString(fm.input[fm.pos:])
		newPos := fm.pos + size
		fm.recordLineOffsetsUpTo(newPos)
		fm.pos = newPos
	}
}

// simulateNext mirrors Next's skip-and-retry loop without mutating fm or
// the mode machine, used by PeekN to look ahead without committing. It
// delegates to the mode machine's Peek rather than driving a *dfa.CompiledDFA
// directly, so a simulated mode index is handled the same way FindCommitted
// handles the real active mode.
func (fm *FindMatches) simulateNext(modeIdx, pos int) (dfa.Result, int, bool) {
	mode := fm.machine.ModeAt(modeIdx)
	for {
		res, ok := fm.machine.Peek(modeIdx, fm.input, pos)
		if ok {
			return res, res.End, true
		}
		if mode.Prefilter != nil {
			next, found := mode.Prefilter.NextOccurrence(fm.input, pos)
			if found {
				pos = next
				continue
			}
			return dfa.Result{}, len(fm.input), false
		}
		if pos >= len(fm.input) {
			return dfa.Result{}, pos, false
		}
		_, size := utf8.DecodeRuneInString(fm.input[pos:])
		pos += size
	}
}

// PeekResultKind classifies a PeekN result.
type PeekResultKind int

const (
	// PeekNotFound means no match at all was found before the input ended.
	PeekNotFound PeekResultKind = iota
	// PeekMatches means all n matches were found without hitting the end
	// of input or a mode switch.
	PeekMatches
	// PeekMatchesReachedEnd means fewer than n matches were found because
	// the input ended.
	PeekMatchesReachedEnd
	// PeekMatchesReachedModeSwitch means peeking stopped early because the
	// last match found would, if committed, switch the active mode —
	// matches found after a mode switch would depend on the new mode, so
	// peeking never looks past it.
	PeekMatchesReachedModeSwitch
)

// PeekResult is the outcome of PeekN.
type PeekResult struct {
	Kind    PeekResultKind
	Matches []Match
}

// PeekN looks ahead at the next n matches as if calling Next n times, but
// without mutating fm: the cursor, active mode, and recorded line offsets
// are all left exactly as they were. All matches are peeked under the
// active mode: peeking stops at the first match whose terminal would switch
// modes, so no match is ever peeked under another mode. Only FindCommitted
// (driven by Next) commits a mode switch.
func (fm *FindMatches) PeekN(n int) PeekResult {
	if n <= 0 {
		return PeekResult{Kind: PeekMatches}
	}
	simMode := fm.machine.CurrentMode()
	pos := fm.pos
	matches := make([]Match, 0, n)
	kind := PeekMatches

	for i := 0; i < n; i++ {
		res, newPos, ok := fm.simulateNext(simMode, pos)
		if !ok {
			if i == 0 {
				kind = PeekNotFound
			} else {
				kind = PeekMatchesReachedEnd
			}
			break
		}
		matches = append(matches, Match{TerminalID: uint32(res.TerminalID), Span: Span{Start: res.Start, End: res.End}})
		pos = newPos

		if target, has := fm.machine.WouldSwitchMode(simMode, res); has {
			simMode = target
			kind = PeekMatchesReachedModeSwitch
			break
		}
	}
	return PeekResult{Kind: kind, Matches: matches}
}

// AdvanceTo moves the cursor forward to byte offset target and returns the
// cursor's new position. Backward motion is refused: if target is at or
// behind the current position, the cursor is left unchanged and its
// current value is returned. Use SetOffset for backward resets.
func (fm *FindMatches) AdvanceTo(target int) int {
	if target <= fm.pos {
		return fm.pos
	}
	if target > len(fm.input) {
		target = len(fm.input)
	}
	fm.recordLineOffsetsUpTo(target)
	fm.pos = target
	return fm.pos
}

// SetOffset resets the cursor to offset, which may move it backward,
// unlike AdvanceTo. The active mode is left unchanged; only the scan
// position is reset.
func (fm *FindMatches) SetOffset(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(fm.input) {
		offset = len(fm.input)
	}
	fm.pos = offset
}

// Offset returns the cursor's current byte offset.
func (fm *FindMatches) Offset() int { return fm.pos }

// Position resolves a byte offset (as found in a Match's Span) into a
// 1-based (line, column) Position. It scans at most the portion of the
// input between the highest previously-resolved offset and offset itself,
// so repeated calls with increasing offsets stay cheap.
func (fm *FindMatches) Position(offset int) Position {
	if offset > fm.recorded {
		end := offset
		if end > len(fm.input) {
			end = len(fm.input)
		}
		fm.recordLineOffsetsUpTo(end)
	}
	i := sort.Search(len(fm.lineOffsets), func(i int) bool { return fm.lineOffsets[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return Position{Line: i + 1, Column: offset - fm.lineOffsets[i] + 1}
}

// WithPositions wraps fm so each match's span also comes out resolved into
// Positions.
func (fm *FindMatches) WithPositions() *WithPositions {
	return &WithPositions{iter: fm}
}

// SetMode implements ModeSwitcher.
func (fm *FindMatches) SetMode(mode int) { fm.machine.SetMode(mode) }

// CurrentMode implements ModeSwitcher.
func (fm *FindMatches) CurrentMode() int { return fm.machine.CurrentMode() }

// ModeName implements ModeSwitcher.
func (fm *FindMatches) ModeName(mode int) string { return fm.machine.ModeName(mode) }

var _ ModeSwitcher = (*FindMatches)(nil)
