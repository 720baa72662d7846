package modemachine

import (
	"testing"

	"github.com/jsinger67/scnr-sub000/internal/charclass"
	"github.com/jsinger67/scnr-sub000/internal/dfa"
	"github.com/jsinger67/scnr-sub000/internal/ids"
	"github.com/jsinger67/scnr-sub000/internal/rxnfa"
)

func buildCompiledDFA(t *testing.T, patterns []string) *dfa.CompiledDFA {
	t.Helper()
	reg := charclass.NewRegistry()
	nfas := make([]*rxnfa.NFA, len(patterns))
	for i, p := range patterns {
		n, err := rxnfa.Compile(p, ids.TerminalID(i), i, reg)
		if err != nil {
			t.Fatalf("compile %q: %v", p, err)
		}
		nfas[i] = n
	}
	reg.Finalize()
	mp := rxnfa.BuildMultiPattern(nfas)
	return dfa.Minimize(dfa.BuildFromMultiPattern(mp, reg))
}

func newTwoModeMachine(t *testing.T) *Machine {
	t.Helper()
	initial := &Mode{
		Name:        "INITIAL",
		DFA:         buildCompiledDFA(t, []string{`[a-zA-Z]+`, `"`}),
		Transitions: map[ids.TerminalID]int{1: 1},
	}
	str := &Mode{
		Name:        "STRING",
		DFA:         buildCompiledDFA(t, []string{`[^"]+`, `"`}),
		Transitions: map[ids.TerminalID]int{1: 0},
	}
	return NewMachine([]*Mode{initial, str})
}

func TestFindCommittedSwitchesMode(t *testing.T) {
	m := newTwoModeMachine(t)
	if m.CurrentMode() != 0 {
		t.Fatalf("expected to start in mode 0")
	}

	res, ok := m.FindCommitted(`"hi"`, 0)
	if !ok || res.TerminalID != 1 {
		t.Fatalf("expected an opening-quote match, got %+v ok=%v", res, ok)
	}
	if m.CurrentMode() != 1 {
		t.Fatalf("FindCommitted on the quote terminal should switch to STRING, got mode %d", m.CurrentMode())
	}

	res, ok = m.FindCommitted(`"hi"`, 1)
	if !ok || res.TerminalID != 0 {
		t.Fatalf("expected a string-body match, got %+v ok=%v", res, ok)
	}
	if m.CurrentMode() != 1 {
		t.Fatalf("a non-transitioning terminal must not change the active mode")
	}

	if _, ok := m.FindCommitted(`"hi"`, 3); !ok {
		t.Fatalf("expected a closing-quote match")
	}
	if m.CurrentMode() != 0 {
		t.Fatalf("the closing quote should switch back to INITIAL, got mode %d", m.CurrentMode())
	}
}

func TestPeekNeverMutatesMode(t *testing.T) {
	m := newTwoModeMachine(t)
	res, ok := m.Peek(m.CurrentMode(), `"hi"`, 0)
	if !ok || res.TerminalID != 1 {
		t.Fatalf("expected an opening-quote match, got %+v ok=%v", res, ok)
	}
	if m.CurrentMode() != 0 {
		t.Fatalf("Peek must never switch the active mode, got mode %d", m.CurrentMode())
	}
	target, has := m.WouldSwitchMode(m.CurrentMode(), res)
	if !has || target != 1 {
		t.Fatalf("WouldSwitchMode should report a switch to mode 1 for the opening-quote terminal, got target=%d has=%v", target, has)
	}
}

func TestPeekAtArbitraryModeIndex(t *testing.T) {
	m := newTwoModeMachine(t)
	m.SetMode(1)

	// Peek at mode 0 (INITIAL) while the machine is actually in mode 1
	// (STRING): the result must reflect mode 0's DFA, and the machine's
	// real current mode must be left untouched.
	res, ok := m.Peek(0, `hi`, 0)
	if !ok || res.TerminalID != 0 {
		t.Fatalf("expected an identifier match under INITIAL, got %+v ok=%v", res, ok)
	}
	if m.CurrentMode() != 1 {
		t.Fatalf("Peek(0, ...) must not disturb the machine's real current mode, got %d", m.CurrentMode())
	}
	if _, has := m.WouldSwitchMode(0, res); has {
		t.Fatalf("the identifier terminal in INITIAL has no registered transition")
	}
}

func TestSetModeBypassesTransitionTable(t *testing.T) {
	m := newTwoModeMachine(t)
	m.SetMode(1)
	if m.CurrentMode() != 1 {
		t.Fatalf("SetMode should force the active mode")
	}
	if m.ModeName(m.CurrentMode()) != "STRING" {
		t.Fatalf("expected STRING, got %q", m.ModeName(m.CurrentMode()))
	}
}
