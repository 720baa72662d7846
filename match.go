package scnr

// Span is a half-open byte-offset range [Start, End) into the scanned input.
type Span struct {
	Start int
	End   int
}

// Len returns the span's length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// IsEmpty reports whether the span has zero length. The scanner never
// produces an empty Match, but a Span can still be constructed and tested
// directly.
func (s Span) IsEmpty() bool { return s.Start == s.End }

// Range returns the span's bounds as a pair, for slicing the original input:
// input[start:end].
func (s Span) Range() (start, end int) { return s.Start, s.End }

// Match is one recognized token: the terminal (token type) it produced and
// the byte span it occupies in the scanned input.
type Match struct {
	TerminalID uint32
	Span       Span
}

// Start returns the match's starting byte offset.
func (m Match) Start() int { return m.Span.Start }

// End returns the match's ending byte offset.
func (m Match) End() int { return m.Span.End }

// Len returns the match's length in bytes.
func (m Match) Len() int { return m.Span.Len() }

// IsEmpty reports whether the match is empty. Always false for a Match
// actually produced by FindMatches — see the EmptyToken build-time check —
// but meaningful for a zero-value Match.
func (m Match) IsEmpty() bool { return m.Span.IsEmpty() }
