package ecmalex

import (
	"fmt"
	"strings"
)

// TokenKind discriminates the variants of Token.
type TokenKind uint8

const (
	TokenCharClass TokenKind = iota
	TokenCaret
	TokenDollar
	TokenWordBoundary
	TokenNonWordBoundary
	TokenAlternation
	TokenCaptureGroupBegin
	TokenNonCaptureGroupBegin
	TokenLookAheadAssertionBegin
	TokenLookBehindAssertionBegin
	TokenGroupEnd
	TokenBackReference
	TokenQuantifier
)

// InfiniteRepetition is the Max of a quantifier with no upper bound, and
// the Min/Max of bounds whose literal value exceeds the representable
// range.
const InfiniteRepetition = -1

// Token is one lexical element of a regular expression pattern. Tokens
// are immutable once produced by the lexer.
type Token struct {
	Kind TokenKind

	// CodePointSet is the character set of a TokenCharClass, already
	// case-folded and negated as required by the flags.
	CodePointSet *CodePointSet

	// GroupNumber is the referenced capture group of a TokenBackReference.
	GroupNumber int

	// Negated distinguishes (?! from (?= and (?<! from (?<=.
	Negated bool

	// Quantifier bounds. Max is InfiniteRepetition when unbounded.
	Min    int
	Max    int
	Greedy bool

	// Pos and End delimit the consumed source text in UTF-16 code units,
	// for diagnostics.
	Pos int
	End int
}

func charClassToken(set *CodePointSet) Token {
	return Token{Kind: TokenCharClass, CodePointSet: set}
}

// String renders the token in a canonical, pattern-like form.
func (t Token) String() string {
	switch t.Kind {
	case TokenCharClass:
		return t.CodePointSet.String()
	case TokenCaret:
		return "^"
	case TokenDollar:
		return "$"
	case TokenWordBoundary:
		return `\b`
	case TokenNonWordBoundary:
		return `\B`
	case TokenAlternation:
		return "|"
	case TokenCaptureGroupBegin:
		return "("
	case TokenNonCaptureGroupBegin:
		return "(?:"
	case TokenLookAheadAssertionBegin:
		if t.Negated {
			return "(?!"
		}
		return "(?="
	case TokenLookBehindAssertionBegin:
		if t.Negated {
			return "(?<!"
		}
		return "(?<="
	case TokenGroupEnd:
		return ")"
	case TokenBackReference:
		return fmt.Sprintf(`\%d`, t.GroupNumber)
	case TokenQuantifier:
		var out strings.Builder
		switch {
		case t.Min == 0 && t.Max == InfiniteRepetition:
			out.WriteByte('*')
		case t.Min == 1 && t.Max == InfiniteRepetition:
			out.WriteByte('+')
		case t.Min == 0 && t.Max == 1:
			out.WriteByte('?')
		case t.Max == InfiniteRepetition:
			fmt.Fprintf(&out, "{%d,}", t.Min)
		case t.Max == t.Min:
			fmt.Fprintf(&out, "{%d}", t.Min)
		default:
			fmt.Fprintf(&out, "{%d,%d}", t.Min, t.Max)
		}
		if !t.Greedy {
			out.WriteByte('?')
		}
		return out.String()
	}
	return fmt.Sprintf("<invalid token kind %d>", t.Kind)
}
