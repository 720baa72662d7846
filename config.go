package scnr

// Config controls build-time behavior of Build/BuildModes. It has no effect
// on simulation semantics: every Config produces a scanner with identical
// observable match sequences, only differing in build cost and diagnostics.
type Config struct {
	// EnableLiteralPrefilter builds an Aho-Corasick skip-ahead automaton for
	// any scanner mode whose every pattern is an exact literal with no
	// lookahead. Defaults to true; set false to always use the plain
	// rune-at-a-time skip-and-retry path (useful when comparing behavior
	// for the prefilter's own property tests).
	EnableLiteralPrefilter bool

	// Trace enables build-time diagnostic logging (the number of modes, the
	// start of each mode's build, and each mode's minimized state count) via
	// gologger. It has no effect on the compiled scanner itself.
	Trace bool

	// MaxStates bounds the number of states subset construction may
	// produce for a single mode before Build gives up. Zero means
	// unlimited. This is a safety valve against pathological patterns
	// (e.g. deeply nested bounded repetition) producing DFAs too large to
	// be practical, not a correctness requirement.
	MaxStates int
}

// DefaultConfig returns the Config used when none is supplied: literal
// prefiltering on, tracing off, no state-count ceiling.
func DefaultConfig() Config {
	return Config{
		EnableLiteralPrefilter: true,
		Trace:                  false,
		MaxStates:              0,
	}
}
