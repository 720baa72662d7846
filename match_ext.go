package scnr

// MatchExt is a Match with its span resolved into line/column Positions, as
// produced by (*FindMatches).WithPositions.
type MatchExt struct {
	TerminalID uint32
	Span       Span
	Start      Position
	End        Position
}

// WithPositions wraps an iteration over fm so that every match's span is
// additionally resolved into Positions. Position resolution is lazy and
// incremental: it only scans the portion of the input between the last
// resolved offset and the new one, via fm.Position.
type WithPositions struct {
	iter *FindMatches
}

// Next returns the next match with its positions resolved, or false when
// the underlying FindMatches is exhausted.
func (w *WithPositions) Next() (MatchExt, bool) {
	m, ok := w.iter.Next()
	if !ok {
		return MatchExt{}, false
	}
	return MatchExt{
		TerminalID: m.TerminalID,
		Span:       m.Span,
		Start:      w.iter.Position(m.Start()),
		End:        w.iter.Position(m.End()),
	}, true
}
