// Package ecmalex implements a lexer for ECMAScript regular expression
// patterns, including the Unicode case-folding step required for
// case-insensitive character classes.
//
// The lexer turns a pattern string plus a flag set into a pull-based
// sequence of Tokens for a downstream parser. It implements both the
// strict grammar of the u flag and the lenient legacy grammar of Annex B.
// It does not build an automaton and does not match input text.
package ecmalex

import (
	"fmt"
	"strings"
)

// Flag is a bitmask of RegExp options.
// The zero value corresponds to /pattern/ with no flags.
// Combine flags with bitwise OR, e.g. FlagIgnoreCase|FlagUnicode.
type Flag uint16

const (
	// Case-insensitive matching ("i" flag). Character classes are routed
	// through ApplyCaseFold.
	FlagIgnoreCase Flag = 1 << iota

	// "^" and "$" match line boundaries ("m" flag). Irrelevant to lexing
	// but carried for error reporting.
	FlagMultiline

	// "." matches line terminators ("s" flag).
	FlagDotAll

	// Unicode-aware mode ("u" flag). Surrogate pairs combine into single
	// code points and the lenient Annex B fallbacks become hard errors.
	FlagUnicode

	// Sticky match from current position ("y" flag). Irrelevant to lexing
	// but carried for error reporting.
	FlagSticky
)

// ParseFlags converts an ECMAScript flag string such as "iu" into a Flag
// bitmask.
func ParseFlags(str string) (Flag, error) {
	var flags Flag
	for _, char := range str {
		var m Flag
		switch char {
		case 'i':
			m = FlagIgnoreCase
		case 'm':
			m = FlagMultiline
		case 's':
			m = FlagDotAll
		case 'u':
			m = FlagUnicode
		case 'y':
			m = FlagSticky
		default:
			return 0, fmt.Errorf("invalid flag %q", char)
		}
		if flags&m != 0 {
			return 0, fmt.Errorf("duplicate flag %q", char)
		}
		flags |= m
	}
	return flags, nil
}

// String renders the bitmask as an ECMAScript flag string.
func (f Flag) String() string {
	var out strings.Builder
	for _, e := range [...]struct {
		flag Flag
		char byte
	}{
		{FlagIgnoreCase, 'i'},
		{FlagMultiline, 'm'},
		{FlagDotAll, 's'},
		{FlagUnicode, 'u'},
		{FlagSticky, 'y'},
	} {
		if f&e.flag != 0 {
			out.WriteByte(e.char)
		}
	}
	return out.String()
}

// Options carries lexing behavior that is not part of the flag string.
// The zero value is ready to use.
type Options struct {
	// U180EWhitespace makes \s include U+180E MONGOLIAN VOWEL SEPARATOR,
	// matching Unicode versions before 6.3.
	U180EWhitespace bool

	// UnicodeProperties resolves the property name of a \p{...} escape to
	// a code-point set. When nil, resolveUnicodeProperty is used, which
	// serves general categories, scripts and binary properties from the
	// stdlib unicode tables.
	UnicodeProperties func(name string) (*CodePointSet, error)
}

// SyntaxError reports a malformed pattern. The whole pattern is rejected;
// there is no partial result or retry.
type SyntaxError struct {
	Pattern string
	Flags   Flag
	Message string

	// Pos is the UTF-16 code-unit offset at which the error was detected.
	Pos int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid regular expression: /%s/%s: %s (at position %d)", e.Pattern, e.Flags, e.Message, e.Pos)
}

var _ error = (*SyntaxError)(nil)
