package scnr

import "fmt"

// Lookahead attaches a zero-width lookahead requirement to a Pattern. A
// positive lookahead requires Pattern to match immediately after the main
// pattern's match; a negative lookahead requires that it does not. Either
// way the lookahead's own match is never included in the reported token
// span.
type Lookahead struct {
	Pattern    string `json:"pattern"`
	IsPositive bool   `json:"is_positive"`
}

func (l Lookahead) String() string {
	if l.IsPositive {
		return fmt.Sprintf("(?=%s)", l.Pattern)
	}
	return fmt.Sprintf("(?!%s)", l.Pattern)
}

// Pattern is one token rule: a regular expression, the token type it
// produces on a match, and an optional lookahead gate.
type Pattern struct {
	Regex      string     `json:"pattern"`
	TerminalID uint32     `json:"token_type"`
	Lookahead  *Lookahead `json:"lookahead,omitempty"`
}

// WithLookahead returns a copy of p carrying the given lookahead.
func (p Pattern) WithLookahead(la Lookahead) Pattern {
	p.Lookahead = &la
	return p
}
