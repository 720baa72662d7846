// Package modemachine implements the scanner's mode machine: one compiled
// DFA per named mode, plus the per-mode terminal -> next-mode transition
// table that drives scanner-side mode switching.
package modemachine

import (
	"fmt"

	"github.com/jsinger67/scnr-sub000/internal/dfa"
	"github.com/jsinger67/scnr-sub000/internal/ids"
	"github.com/jsinger67/scnr-sub000/internal/prefilter"
)

// Mode is one compiled scanner mode: its DFA, its terminal -> next-mode
// transition table, and (when every one of its patterns is a bare literal)
// an Aho-Corasick prefilter used to jump the scan cursor ahead on a miss.
type Mode struct {
	Name        string
	DFA         *dfa.CompiledDFA
	Transitions map[ids.TerminalID]int // terminal -> mode index; absent means "stay"
	Prefilter   *prefilter.Literal     // nil if this mode mixes non-literal patterns
}

// HasTransition reports whether matching terminal should switch the active
// mode, and to which mode index.
func (m *Mode) HasTransition(terminal ids.TerminalID) (int, bool) {
	idx, ok := m.Transitions[terminal]
	return idx, ok
}

// Machine holds every compiled mode and tracks which one is active. The zero
// value is not usable; construct with NewMachine.
type Machine struct {
	modes   []*Mode
	current int
}

// NewMachine builds a Machine starting in mode 0.
func NewMachine(modes []*Mode) *Machine {
	return &Machine{modes: modes, current: 0}
}

// CurrentMode returns the active mode's index.
func (m *Machine) CurrentMode() int { return m.current }

// ModeName returns the name of mode i.
func (m *Machine) ModeName(i int) string { return m.modes[i].Name }

// SetMode forces the active mode to i, bypassing any transition table. Used
// by callers (e.g. a parser) that drive mode switches themselves rather than
// relying on FindCommitted's terminal-triggered switching.
func (m *Machine) SetMode(i int) {
	if i < 0 || i >= len(m.modes) {
		panic(fmt.Sprintf("modemachine: SetMode(%d): out of range [0,%d)", i, len(m.modes)))
	}
	m.current = i
}

// ModeAt returns the compiled mode at index i, for callers (like the
// literal-prefilter-aware match iterator) that need direct access to a
// mode's DFA or prefilter.
func (m *Machine) ModeAt(i int) *Mode { return m.modes[i] }

// Current returns the active compiled mode.
func (m *Machine) Current() *Mode { return m.modes[m.current] }

// FindCommitted runs the active mode's DFA at byte offset pos in input, and
// if a match is found whose terminal names a mode transition, switches the
// active mode as a side effect before returning. Callers that have decided to
// consume this match call FindCommitted; callers that merely want to look
// ahead without affecting scanner state call Peek instead.
func (m *Machine) FindCommitted(input string, pos int) (dfa.Result, bool) {
	res, ok := dfa.FindFrom(m.Current().DFA, input, pos)
	if !ok {
		return res, false
	}
	if next, has := m.Current().HasTransition(res.TerminalID); has {
		m.current = next
	}
	return res, true
}

// Peek runs the DFA of the mode at modeIdx at byte offset pos without ever
// mutating which mode is active, regardless of whether the match's terminal
// would normally trigger a transition. modeIdx need not be the machine's
// current mode; Peek reads only modes[modeIdx] and never writes m.current.
func (m *Machine) Peek(modeIdx int, input string, pos int) (dfa.Result, bool) {
	return dfa.FindFrom(m.modes[modeIdx].DFA, input, pos)
}

// WouldSwitchMode reports whether, were result to be committed while modeIdx
// is the active mode, it would trigger a transition, and to which mode —
// used by peek-ahead to stop accumulating lookahead matches once a mode
// boundary would be crossed.
func (m *Machine) WouldSwitchMode(modeIdx int, res dfa.Result) (int, bool) {
	return m.modes[modeIdx].HasTransition(res.TerminalID)
}
