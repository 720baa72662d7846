package scnr

import (
	"errors"
	"fmt"

	"github.com/jsinger67/scnr-sub000/internal/rxnfa"
)

// ErrorKind classifies why building a Scanner failed.
type ErrorKind int

const (
	// RegexSyntaxErrorKind means a pattern was rejected by regexp/syntax.
	RegexSyntaxErrorKind ErrorKind = iota
	// UnsupportedFeatureKind means a pattern parsed fine but uses a
	// construct this scanner's DFA model cannot express, such as an anchor
	// or word-boundary assertion.
	UnsupportedFeatureKind
	// EmptyTokenKind means a pattern can match the empty string, which
	// would make the scanner's totality guarantee (every position
	// eventually advances) impossible to uphold.
	EmptyTokenKind
	// IoErrorKind wraps a failure reading or writing a serialized mode
	// definition.
	IoErrorKind
)

func (k ErrorKind) String() string {
	switch k {
	case RegexSyntaxErrorKind:
		return "RegexSyntaxError"
	case UnsupportedFeatureKind:
		return "UnsupportedFeature"
	case EmptyTokenKind:
		return "EmptyToken"
	case IoErrorKind:
		return "IoError"
	default:
		return "Unknown"
	}
}

// Error is returned by Build, BuildModes, and (*ScannerBuilder).Build.
type Error struct {
	Kind    ErrorKind
	Mode    string // name of the scanner mode the failing pattern belongs to
	Pattern string
	Cause   error
}

func (e *Error) Error() string {
	if e.Mode != "" {
		return fmt.Sprintf("scnr: mode %q, pattern %q: %s: %v", e.Mode, e.Pattern, e.Kind, e.Cause)
	}
	return fmt.Sprintf("scnr: pattern %q: %s: %v", e.Pattern, e.Kind, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// wrapLoweringError translates an internal rxnfa.Error into the public
// Error type, attaching which mode the failing pattern came from.
func wrapLoweringError(err error, mode string) error {
	var re *rxnfa.Error
	if errors.As(err, &re) {
		kind := RegexSyntaxErrorKind
		if re.Kind == rxnfa.KindUnsupportedFeature {
			kind = UnsupportedFeatureKind
		}
		return &Error{Kind: kind, Mode: mode, Pattern: re.Pattern, Cause: re}
	}
	return &Error{Kind: RegexSyntaxErrorKind, Mode: mode, Cause: err}
}

// newEmptyTokenError reports that pattern can match the empty string.
func newEmptyTokenError(mode, pattern string) error {
	return &Error{
		Kind:    EmptyTokenKind,
		Mode:    mode,
		Pattern: pattern,
		Cause:   fmt.Errorf("pattern can match the empty string, which no token may do"),
	}
}
