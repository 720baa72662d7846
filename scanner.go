package scnr

import (
	"fmt"

	"github.com/jsinger67/scnr-sub000/internal/charclass"
	"github.com/jsinger67/scnr-sub000/internal/conv"
	"github.com/jsinger67/scnr-sub000/internal/dfa"
	"github.com/jsinger67/scnr-sub000/internal/ids"
	"github.com/jsinger67/scnr-sub000/internal/modemachine"
	"github.com/jsinger67/scnr-sub000/internal/prefilter"
	"github.com/jsinger67/scnr-sub000/internal/rxnfa"

	"github.com/projectdiscovery/gologger"
)

// Scanner is an immutable, compiled set of scanner modes. It is safe to
// share across goroutines: all per-scan state (the active mode, the input
// cursor, recorded line offsets) lives in the *FindMatches values it hands
// out, not in the Scanner itself.
type Scanner struct {
	modes     []*modemachine.Mode
	modeIndex map[string]int
}

// Build compiles a flat pattern list into a single-mode Scanner named
// INITIAL, with sequential terminal IDs 0..len(patterns)-1 in list order —
// the simplest entry point, for callers that have no need for scanner
// modes.
func Build(patterns []string) (*Scanner, error) {
	pats := make([]Pattern, len(patterns))
	for i, p := range patterns {
		pats[i] = Pattern{Regex: p, TerminalID: conv.IntToUint32(i)}
	}
	return BuildModes([]ScannerMode{NewScannerMode("INITIAL", pats)})
}

// BuildModes compiles a set of scanner modes into a Scanner, with an
// optional Config (DefaultConfig is used if cfg is omitted).
func BuildModes(modes []ScannerMode, cfg ...Config) (*Scanner, error) {
	c := DefaultConfig()
	if len(cfg) > 0 {
		c = cfg[0]
	}
	return buildScanner(modes, c)
}

type modeWork struct {
	def        ScannerMode
	nfas       []*rxnfa.NFA
	lookaheads map[ids.TerminalID]*dfa.CompiledLookahead
}

func buildScanner(modeDefs []ScannerMode, cfg Config) (*Scanner, error) {
	if cfg.Trace {
		gologger.Debug().Msgf("scnr: compiling %d scanner mode(s)", len(modeDefs))
	}

	reg := charclass.NewRegistry()
	works := make([]modeWork, len(modeDefs))

	// Phase 1: lower every pattern of every mode into an NFA, interning
	// character classes into one shared registry. The registry must not be
	// finalized until every mode has contributed its classes, since the
	// elementary-interval partition (and therefore every mode's DFA
	// transition labels) depends on the full set.
	for mi, md := range modeDefs {
		w := modeWork{def: md, lookaheads: make(map[ids.TerminalID]*dfa.CompiledLookahead)}
		for pi, pat := range md.Patterns {
			nfa, err := rxnfa.Compile(pat.Regex, ids.TerminalID(pat.TerminalID), pi, reg)
			if err != nil {
				return nil, wrapLoweringError(err, md.Name)
			}
			w.nfas = append(w.nfas, nfa)

			if pat.Lookahead != nil {
				la, err := dfa.BuildLookahead(pat.Lookahead.Pattern, pat.Lookahead.IsPositive)
				if err != nil {
					return nil, wrapLoweringError(err, md.Name)
				}
				w.lookaheads[ids.TerminalID(pat.TerminalID)] = la
			}
		}
		if err := checkEmptyTokens(w.nfas, md.Name); err != nil {
			return nil, err
		}
		works[mi] = w
	}
	reg.Finalize()

	modeIndex := make(map[string]int, len(modeDefs))
	for i, md := range modeDefs {
		modeIndex[md.Name] = i
	}

	// Phase 2: per mode, combine its patterns' NFAs, run subset
	// construction and minimization against the now-finalized shared
	// registry, and attach lookaheads and (where sound) a literal
	// prefilter.
	compiled := make([]*modemachine.Mode, len(modeDefs))
	for mi, w := range works {
		if cfg.Trace {
			gologger.Verbose().Msgf("scnr: building mode %q (%d patterns)", w.def.Name, len(w.nfas))
		}

		mp := rxnfa.BuildMultiPattern(w.nfas)
		built := dfa.BuildFromMultiPattern(mp, reg)
		if cfg.MaxStates > 0 && built.NumStates > cfg.MaxStates {
			return nil, &Error{
				Kind: UnsupportedFeatureKind,
				Mode: w.def.Name,
				Cause: fmt.Errorf("subset construction produced %d states, exceeding MaxStates %d",
					built.NumStates, cfg.MaxStates),
			}
		}
		minimized := dfa.Minimize(built)
		for term, la := range w.lookaheads {
			minimized.Lookaheads[term] = la
		}
		if cfg.Trace {
			gologger.Debug().Msgf("scnr: mode %q minimized to %d states", w.def.Name, minimized.NumStates)
		}

		transitions := make(map[ids.TerminalID]int, len(w.def.Transitions))
		for _, tr := range w.def.Transitions {
			target, ok := modeIndex[tr.TargetMode]
			if !ok {
				panic(fmt.Sprintf("scnr: mode %q transitions to unknown mode %q", w.def.Name, tr.TargetMode))
			}
			transitions[ids.TerminalID(tr.TerminalID)] = target
		}

		mode := &modemachine.Mode{Name: w.def.Name, DFA: minimized, Transitions: transitions}
		if cfg.EnableLiteralPrefilter {
			mode.Prefilter = buildPrefilter(w.def.Patterns)
		}
		compiled[mi] = mode
	}

	return &Scanner{modes: compiled, modeIndex: modeIndex}, nil
}

// buildPrefilter returns a literal skip-ahead automaton when every pattern
// is an exact literal with no lookahead, or nil otherwise — only then is
// "jump to the next literal occurrence" guaranteed not to skip a valid match
// start.
func buildPrefilter(patterns []Pattern) *prefilter.Literal {
	if len(patterns) == 0 {
		return nil
	}
	literals := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p.Lookahead != nil {
			return nil
		}
		lit, ok := rxnfa.ExactLiteral(p.Regex)
		if !ok {
			return nil
		}
		literals = append(literals, lit)
	}
	pf, err := prefilter.Build(literals)
	if err != nil {
		return nil
	}
	return pf
}

// checkEmptyTokens rejects any pattern whose NFA can reach its accepting
// state via epsilon transitions alone — i.e. a pattern that matches the
// empty string. Detecting this statically, at build time, is preferred over
// a runtime panic: it turns a would-be infinite loop (a token that never
// advances the scan cursor) into a build-time Error.
func checkEmptyTokens(nfas []*rxnfa.NFA, mode string) error {
	for _, n := range nfas {
		for _, s := range n.EpsilonClosure([]ids.StateID{n.Start}) {
			if s == n.End {
				return newEmptyTokenError(mode, n.Pattern)
			}
		}
	}
	return nil
}

// FindIter returns a fresh match iterator over input, starting in mode 0
// (or whichever mode a prior SetMode call left active, via ModeSwitcher — a
// Scanner itself holds no mode state, so "prior" only applies to a
// *FindMatches the caller is reusing, which FindIter never does: each call
// starts a brand new iterator in mode 0).
func (s *Scanner) FindIter(input string) *FindMatches {
	return newFindMatches(s, input)
}

// ModeSwitcher lets an external driver (typically a parser) take direct
// control of which scanner mode is active, instead of relying on the
// mode-transition table baked into the scanner modes.
//
// This distinction matters for parser architectures that need lookahead:
// an LL(k) or LR parser may need to peek several tokens ahead before
// deciding a production, and only then commit to a mode switch — at which
// point it calls SetMode itself rather than letting the scanner switch
// modes as a side effect of a match it merely peeked at. A parser that
// drives itself token-by-token with no lookahead, on the other hand, can
// simply let FindMatches commit each match via its built-in mode-transition
// table and never call SetMode at all.
type ModeSwitcher interface {
	SetMode(mode int)
	CurrentMode() int
	ModeName(mode int) string
}
