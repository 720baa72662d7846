package rxnfa

import (
	"fmt"
	"regexp/syntax"
	"unicode"

	"github.com/jsinger67/scnr-sub000/internal/charclass"
	"github.com/jsinger67/scnr-sub000/internal/ids"
)

// ParseFlags controls how regexp/syntax parses pattern source. Perl gives
// the familiar \d \w \s classes and non-greedy-quantifier syntax; greediness
// itself is irrelevant here since this engine always computes the longest
// match (spec's simulator explores every reachable transition, it does not
// backtrack), so Star/Plus/Quest and their non-greedy variants lower
// identically.
const ParseFlags = syntax.Perl

// Compile parses pattern with regexp/syntax and lowers it into a Thompson NFA
// whose consuming transitions reference character classes interned in reg.
// terminal is the caller-supplied token type produced on a full match;
// patternIndex is the pattern's position in the caller's pattern list and is
// the priority tie-break key used by subset construction.
func Compile(pattern string, terminal ids.TerminalID, patternIndex int, reg *charclass.Registry) (*NFA, error) {
	ast, err := syntax.Parse(pattern, ParseFlags)
	if err != nil {
		return nil, &Error{Kind: KindRegexSyntax, Pattern: pattern, Cause: err}
	}
	n := &NFA{Pattern: pattern, TerminalID: terminal, PatternIndex: patternIndex}
	frag, err := lower(ast, n, reg, pattern)
	if err != nil {
		return nil, err
	}
	n.Start = frag.Start
	n.End = frag.End
	return n, nil
}

func lower(re *syntax.Regexp, n *NFA, reg *charclass.Registry, pattern string) (Fragment, error) {
	switch re.Op {
	case syntax.OpLiteral:
		return lowerLiteral(re, n, reg), nil

	case syntax.OpCharClass:
		return n.ConsumingFragment(reg.Intern(charclass.ClassSpec{Ranges: rangesFromPairs(re.Rune)})), nil

	case syntax.OpAnyChar:
		return n.ConsumingFragment(reg.Intern(charclass.ClassSpec{
			Ranges: []charclass.Interval{{Lo: 0, Hi: 0x10FFFF}},
		})), nil

	case syntax.OpAnyCharNotNL:
		return n.ConsumingFragment(reg.Intern(charclass.ClassSpec{
			Ranges: []charclass.Interval{{Lo: 0, Hi: '\n' - 1}, {Lo: '\n' + 1, Hi: 0x10FFFF}},
		})), nil

	case syntax.OpEmptyMatch:
		return n.EmptyFragment(), nil

	case syntax.OpCapture:
		return lower(re.Sub[0], n, reg, pattern)

	case syntax.OpConcat:
		return lowerConcat(re.Sub, n, reg, pattern)

	case syntax.OpAlternate:
		return lowerAlternate(re.Sub, n, reg, pattern)

	case syntax.OpStar:
		sub, err := lower(re.Sub[0], n, reg, pattern)
		if err != nil {
			return Fragment{}, err
		}
		return n.ZeroOrMore(sub), nil

	case syntax.OpPlus:
		sub, err := lower(re.Sub[0], n, reg, pattern)
		if err != nil {
			return Fragment{}, err
		}
		return n.OneOrMore(sub), nil

	case syntax.OpQuest:
		sub, err := lower(re.Sub[0], n, reg, pattern)
		if err != nil {
			return Fragment{}, err
		}
		return n.ZeroOrOne(sub), nil

	case syntax.OpRepeat:
		sub, err := lower(re.Sub[0], n, reg, pattern)
		if err != nil {
			return Fragment{}, err
		}
		if re.Max == -1 {
			return n.AtLeastRepeat(sub, re.Min), nil
		}
		return n.BoundedRepeat(sub, re.Min, re.Max), nil

	case syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return Fragment{}, &Error{Kind: KindUnsupportedFeature, Pattern: pattern, Feature: opName(re.Op)}

	default:
		return Fragment{}, &Error{Kind: KindUnsupportedFeature, Pattern: pattern, Feature: opName(re.Op)}
	}
}

func lowerLiteral(re *syntax.Regexp, n *NFA, reg *charclass.Registry) Fragment {
	if len(re.Rune) == 0 {
		return n.EmptyFragment()
	}
	// regexp/syntax rewrites case pairs such as [Ee] (and literals under
	// (?i)) into a FoldCase literal holding one rune of each fold orbit.
	fold := re.Flags&syntax.FoldCase != 0
	class := func(r rune) charclass.ClassSpec {
		ranges := []charclass.Interval{{Lo: r, Hi: r}}
		if fold {
			for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
				ranges = append(ranges, charclass.Interval{Lo: f, Hi: f})
			}
		}
		return charclass.ClassSpec{Ranges: ranges}
	}
	frag := n.ConsumingFragment(reg.Intern(class(re.Rune[0])))
	for _, r := range re.Rune[1:] {
		next := n.ConsumingFragment(reg.Intern(class(r)))
		frag = n.Concat(frag, next)
	}
	return frag
}

func lowerConcat(subs []*syntax.Regexp, n *NFA, reg *charclass.Registry, pattern string) (Fragment, error) {
	if len(subs) == 0 {
		return n.EmptyFragment(), nil
	}
	frag, err := lower(subs[0], n, reg, pattern)
	if err != nil {
		return Fragment{}, err
	}
	for _, s := range subs[1:] {
		next, err := lower(s, n, reg, pattern)
		if err != nil {
			return Fragment{}, err
		}
		frag = n.Concat(frag, next)
	}
	return frag, nil
}

func lowerAlternate(subs []*syntax.Regexp, n *NFA, reg *charclass.Registry, pattern string) (Fragment, error) {
	if len(subs) == 0 {
		return n.EmptyFragment(), nil
	}
	frag, err := lower(subs[0], n, reg, pattern)
	if err != nil {
		return Fragment{}, err
	}
	for _, s := range subs[1:] {
		next, err := lower(s, n, reg, pattern)
		if err != nil {
			return Fragment{}, err
		}
		frag = n.Alternation(frag, next)
	}
	return frag, nil
}

// rangesFromPairs converts regexp/syntax's flat (lo,hi,lo,hi,...) rune-pair
// encoding of OpCharClass into Interval values.
func rangesFromPairs(pairs []rune) []charclass.Interval {
	out := make([]charclass.Interval, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, charclass.Interval{Lo: pairs[i], Hi: pairs[i+1]})
	}
	return out
}

func opName(op syntax.Op) string {
	switch op {
	case syntax.OpBeginLine:
		return "^ (multiline begin-line anchor)"
	case syntax.OpEndLine:
		return "$ (multiline end-line anchor)"
	case syntax.OpBeginText:
		return "\\A (begin-text anchor)"
	case syntax.OpEndText:
		return "\\z (end-text anchor)"
	case syntax.OpWordBoundary:
		return "\\b (word boundary)"
	case syntax.OpNoWordBoundary:
		return "\\B (negated word boundary)"
	default:
		return fmt.Sprintf("syntax.Op(%d)", op)
	}
}
