package scnr

// ModeTransition says that matching TerminalID while in a mode should switch
// the active mode to TargetMode. TargetMode names a mode by its Name, not
// its index: MarshalModes/UnmarshalModes are responsible for translating
// to and from the index-based wire format, since only they see the full
// mode list a name resolves against.
type ModeTransition struct {
	TerminalID uint32
	TargetMode string
}

// ScannerMode is one named set of patterns plus the mode transitions they
// can trigger. A Scanner built from several modes switches its active mode
// as matches are committed (see ModeSwitcher), so the same input text can be
// lexed differently depending on which mode is active — e.g. a string-body
// mode that disables the outer language's own tokens until it sees a
// closing quote.
type ScannerMode struct {
	Name        string
	Patterns    []Pattern
	Transitions []ModeTransition
}

// NewScannerMode builds a mode with no transitions. Use WithTransitions to
// add mode-switching behavior.
func NewScannerMode(name string, patterns []Pattern) ScannerMode {
	return ScannerMode{Name: name, Patterns: patterns}
}

// WithTransitions returns a copy of m carrying the given transitions.
func (m ScannerMode) WithTransitions(transitions []ModeTransition) ScannerMode {
	m.Transitions = transitions
	return m
}
