package scnr

import "fmt"

// Position is a 1-based (line, column) location in the scanned input.
// Column is computed in bytes from the start of the line, not in runes or
// grapheme clusters — a deliberate performance concession: exact grapheme
// columns would require a full Unicode segmentation pass over every line,
// which no caller of this package has needed.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
