// Package prefilter wraps an Aho-Corasick automaton as a literal skip-ahead
// optimization for scanner modes whose every pattern is an exact literal.
//
// It exists purely to speed up the match iterator's miss-handling path: when
// no pattern matches at the current position, the iterator must advance by
// one rune and retry to guarantee it always terminates. If a mode's patterns
// are all literals, any valid match can only start at the beginning of one of
// those literals' occurrences in the input, so jumping straight to the next
// occurrence (instead of retrying rune by rune) is sound and changes no
// observable match sequence.
package prefilter

import "github.com/coregx/ahocorasick"

// Literal is a built Aho-Corasick automaton over a mode's literal patterns.
type Literal struct {
	automaton *ahocorasick.Automaton
}

// Build constructs a Literal prefilter over the given exact-literal pattern
// strings. Callers must only call Build when every pattern of a mode reduces
// to a bare literal (see buildPrefilter in the mode-compilation path) —
// Build itself does not re-validate that invariant.
func Build(literals []string) (*Literal, error) {
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Literal{automaton: automaton}, nil
}

// NextOccurrence returns the byte offset of the next place, at or after
// from, where some literal of this prefilter occurs in input, and whether
// one was found.
func (l *Literal) NextOccurrence(input string, from int) (int, bool) {
	if l == nil || from >= len(input) {
		return 0, false
	}
	m := l.automaton.Find([]byte(input), from)
	if m == nil {
		return 0, false
	}
	return m.Start, true
}
