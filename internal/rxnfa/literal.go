package rxnfa

import "regexp/syntax"

// ExactLiteral reports whether pattern denotes exactly one literal string
// (no alternation, repetition, or character class) and returns it. Used by
// the literal-prefilter wiring to decide, mode by mode, whether an
// Aho-Corasick skip-ahead is sound.
func ExactLiteral(pattern string) (string, bool) {
	ast, err := syntax.Parse(pattern, ParseFlags)
	if err != nil {
		return "", false
	}
	ast = ast.Simplify()
	if ast.Op != syntax.OpLiteral || len(ast.Rune) == 0 || ast.Flags&syntax.FoldCase != 0 {
		return "", false
	}
	return string(ast.Rune), true
}
