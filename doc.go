// Package scnr implements a multi-mode lexical scanner core: regex-to-NFA
// compilation, subset construction over a disjoint character-class
// partition, DFA minimization, and longest-match simulation with lookahead
// and mode switching.
//
// A Scanner is built once from a set of patterns or ScannerModes:
//
//	s, err := scnr.Build([]string{`[0-9]+`, `[a-zA-Z_][a-zA-Z0-9_]*`, `\s+`})
//	if err != nil {
//	    // err is a *scnr.Error; err.Kind names why (syntax, unsupported
//	    // construct, a pattern that can match the empty string, or I/O).
//	}
//
//	it := s.FindIter("foo 123 bar")
//	for {
//	    m, ok := it.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(m.TerminalID, m.Start(), m.End())
//	}
//
// Patterns are parsed by the standard library's regexp/syntax package, so
// the accepted syntax is whatever regexp/syntax accepts minus zero-width
// assertions (anchors and word boundaries), which this engine's DFA model
// has no way to express — Build reports those as an UnsupportedFeatureKind
// Error rather than silently ignoring them.
//
// A Scanner is immutable and safe to share across goroutines once built;
// the *FindMatches values its FindIter method returns are not — each one
// owns its own scan cursor and active-mode state and must not be used
// concurrently.
//
// Multiple named modes (ScannerMode, via BuildModes or ScannerBuilder) let
// a set of patterns only apply while a particular mode is active, and name
// which matched terminal should switch to which mode next — the building
// block for things like a lexer that tokenizes a string's contents
// differently once it has seen the opening quote.
package scnr
