package dfa

import (
	"github.com/jsinger67/scnr-sub000/internal/charclass"
	"github.com/jsinger67/scnr-sub000/internal/ids"
	"github.com/jsinger67/scnr-sub000/internal/rxnfa"
)

// CompiledLookahead is a fully built DFA for a lookahead sub-pattern, plus
// whether the lookahead is positive (must match) or negative (must not).
// It is evaluated at the candidate end position of a main-pattern match, and
// its own match span never extends the reported token span.
type CompiledLookahead struct {
	DFA        *CompiledDFA
	IsPositive bool
	Pattern    string
}

// BuildLookahead compiles a standalone lookahead pattern through the same
// parse -> NFA -> multi-pattern -> subset -> minimize pipeline used for
// ordinary patterns, boxed into its own CompiledDFA so its terminal/pattern
// IDs don't collide with the owning mode's.
func BuildLookahead(pattern string, isPositive bool) (*CompiledLookahead, error) {
	reg := charclass.NewRegistry()
	nfa, err := rxnfa.Compile(pattern, ids.TerminalID(0), 0, reg)
	if err != nil {
		return nil, err
	}
	reg.Finalize()
	mp := rxnfa.BuildMultiPattern([]*rxnfa.NFA{nfa})
	built := BuildFromMultiPattern(mp, reg)
	min := Minimize(built)
	return &CompiledLookahead{DFA: min, IsPositive: isPositive, Pattern: pattern}, nil
}
