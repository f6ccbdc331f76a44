package ecmalex

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

func lexTokens(t *testing.T, pattern, flagStr string, opts Options) []Token {
	t.Helper()
	flags, err := ParseFlags(flagStr)
	assert.NilError(t, err)
	lexer := NewLexer(pattern, flags, opts)
	tokens := []Token{}
	for lexer.HasNext() {
		token, err := lexer.Next()
		assert.NilError(t, err, "pattern %q", pattern)
		tokens = append(tokens, token)
	}
	return tokens
}

func lexError(t *testing.T, pattern, flagStr string, opts Options) *SyntaxError {
	t.Helper()
	flags, err := ParseFlags(flagStr)
	assert.NilError(t, err)
	lexer := NewLexer(pattern, flags, opts)
	for lexer.HasNext() {
		if _, err := lexer.Next(); err != nil {
			var syntaxErr *SyntaxError
			assert.Assert(t, errors.As(err, &syntaxErr), "unexpected error type: %v", err)
			return syntaxErr
		}
	}
	t.Fatalf("pattern %q lexed without error", pattern)
	return nil
}

func classRanges(t *testing.T, token Token) []CodePointRange {
	t.Helper()
	assert.Equal(t, token.Kind, TokenCharClass)
	return token.CodePointSet.Ranges()
}

func kinds(tokens []Token) []TokenKind {
	res := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		res[i] = t.Kind
	}
	return res
}

func TestParseFlags(t *testing.T) {
	flags, err := ParseFlags("iu")
	assert.NilError(t, err)
	assert.Equal(t, flags, FlagIgnoreCase|FlagUnicode)
	assert.Equal(t, flags.String(), "iu")

	flags, err = ParseFlags("imsuy")
	assert.NilError(t, err)
	assert.Equal(t, flags, FlagIgnoreCase|FlagMultiline|FlagDotAll|FlagUnicode|FlagSticky)
	assert.Equal(t, flags.String(), "imsuy")

	flags, err = ParseFlags("")
	assert.NilError(t, err)
	assert.Equal(t, flags, Flag(0))

	_, err = ParseFlags("x")
	assert.ErrorContains(t, err, "invalid flag")
	_, err = ParseFlags("ii")
	assert.ErrorContains(t, err, "duplicate flag")
}

func TestSyntaxErrorValue(t *testing.T) {
	err := lexError(t, "a**", "", Options{})
	assert.Equal(t, err.Pattern, "a**")
	assert.Equal(t, err.Flags, Flag(0))
	assert.Equal(t, err.Message, errQuantifierOnQuantifier)
	assert.Equal(t, err.Pos, 3)
	assert.Equal(t, err.Error(), "invalid regular expression: /a**/: quantifier on quantifier (at position 3)")
}

func TestLiterals(t *testing.T) {
	tokens := lexTokens(t, "ab", "", Options{})
	assert.Equal(t, len(tokens), 2)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'a', 'a'}})
	assert.DeepEqual(t, classRanges(t, tokens[1]), []CodePointRange{{'b', 'b'}})
}

func TestDot(t *testing.T) {
	tokens := lexTokens(t, ".", "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{
		{0x0000, 0x0009}, {0x000b, 0x000c}, {0x000e, 0x2027}, {0x202a, MaxCodePoint},
	})

	tokens = lexTokens(t, ".", "s", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0, MaxCodePoint}})
}

func TestAnchorsAndAlternation(t *testing.T) {
	tokens := lexTokens(t, "^a|b$", "", Options{})
	assert.DeepEqual(t, kinds(tokens), []TokenKind{
		TokenCaret, TokenCharClass, TokenAlternation, TokenCharClass, TokenDollar,
	})
}

func TestWordBoundaries(t *testing.T) {
	tokens := lexTokens(t, `\b\B`, "", Options{})
	assert.DeepEqual(t, kinds(tokens), []TokenKind{TokenWordBoundary, TokenNonWordBoundary})
}

func TestQuantifiers(t *testing.T) {
	cases := []struct {
		pattern string
		min     int
		max     int
		greedy  bool
	}{
		{"a*", 0, InfiniteRepetition, true},
		{"a*?", 0, InfiniteRepetition, false},
		{"a+", 1, InfiniteRepetition, true},
		{"a+?", 1, InfiniteRepetition, false},
		{"a?", 0, 1, true},
		{"a??", 0, 1, false},
		{"a{2}", 2, 2, true},
		{"a{2,}", 2, InfiniteRepetition, true},
		{"a{2,3}", 2, 3, true},
		{"a{2,3}?", 2, 3, false},
		{"a{0,0}", 0, 0, true},
		{"a{99999999999999999999,}", InfiniteRepetition, InfiniteRepetition, true},
	}
	for _, c := range cases {
		t.Run(c.pattern, func(t *testing.T) {
			tokens := lexTokens(t, c.pattern, "", Options{})
			assert.Equal(t, len(tokens), 2)
			q := tokens[1]
			assert.Equal(t, q.Kind, TokenQuantifier)
			assert.Equal(t, q.Min, c.min)
			assert.Equal(t, q.Max, c.max)
			assert.Equal(t, q.Greedy, c.greedy)
		})
	}
}

func TestQuantifierErrors(t *testing.T) {
	assert.Equal(t, lexError(t, "a**", "", Options{}).Message, errQuantifierOnQuantifier)
	assert.Equal(t, lexError(t, "a**", "u", Options{}).Message, errQuantifierOnQuantifier)
	assert.Equal(t, lexError(t, "*", "", Options{}).Message, errQuantifierWithoutTarget)
	assert.Equal(t, lexError(t, "^*", "", Options{}).Message, errQuantifierWithoutTarget)
	assert.Equal(t, lexError(t, "a|*", "", Options{}).Message, errQuantifierWithoutTarget)
	assert.Equal(t, lexError(t, "a{3,2}", "", Options{}).Message, errQuantifierOutOfOrder)
	assert.Equal(t, lexError(t, "a{3,2}", "u", Options{}).Message, errQuantifierOutOfOrder)
	// ordering is checked on the literal values, not the clamped ones
	assert.Equal(t,
		lexError(t, "a{99999999999999999999,99999999999999999998}", "", Options{}).Message,
		errQuantifierOutOfOrder)
	assert.Equal(t, lexError(t, "{", "u", Options{}).Message, errIncompleteQuantifier)
	assert.Equal(t, lexError(t, "a{2,3", "u", Options{}).Message, errIncompleteQuantifier)
}

func TestBraceLiteralFallback(t *testing.T) {
	// Annex B: a '{' that is not a well-formed counted repetition is a
	// literal.
	tokens := lexTokens(t, "{", "", Options{})
	assert.Equal(t, len(tokens), 1)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'{', '{'}})

	// The cursor lands right after the consumed '{' and does not re-scan
	// it.
	tokens = lexTokens(t, "a{2", "", Options{})
	assert.Equal(t, len(tokens), 3)
	assert.DeepEqual(t, classRanges(t, tokens[1]), []CodePointRange{{'{', '{'}})
	assert.Equal(t, tokens[1].Pos, 1)
	assert.Equal(t, tokens[1].End, 2)
	assert.DeepEqual(t, classRanges(t, tokens[2]), []CodePointRange{{'2', '2'}})
	assert.Equal(t, tokens[2].Pos, 2)

	tokens = lexTokens(t, "a{2,3", "", Options{})
	assert.Equal(t, len(tokens), 5)
	assert.DeepEqual(t, classRanges(t, tokens[1]), []CodePointRange{{'{', '{'}})
}

func TestUnmatchedClosers(t *testing.T) {
	tokens := lexTokens(t, "}", "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'}', '}'}})
	tokens = lexTokens(t, "]", "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{']', ']'}})

	assert.Equal(t, lexError(t, "}", "u", Options{}).Message, errUnmatchedRightBrace)
	assert.Equal(t, lexError(t, "]", "u", Options{}).Message, errUnmatchedRightBracket)
}

func TestTokenOffsets(t *testing.T) {
	tokens := lexTokens(t, "a{2,3}", "", Options{})
	assert.Equal(t, tokens[0].Pos, 0)
	assert.Equal(t, tokens[0].End, 1)
	assert.Equal(t, tokens[1].Pos, 1)
	assert.Equal(t, tokens[1].End, 6)
}

func TestGroups(t *testing.T) {
	tokens := lexTokens(t, "(a)(?:b)(?=c)(?!d)(?<=e)(?<!f)()", "", Options{})
	assert.DeepEqual(t, kinds(tokens), []TokenKind{
		TokenCaptureGroupBegin, TokenCharClass, TokenGroupEnd,
		TokenNonCaptureGroupBegin, TokenCharClass, TokenGroupEnd,
		TokenLookAheadAssertionBegin, TokenCharClass, TokenGroupEnd,
		TokenLookAheadAssertionBegin, TokenCharClass, TokenGroupEnd,
		TokenLookBehindAssertionBegin, TokenCharClass, TokenGroupEnd,
		TokenLookBehindAssertionBegin, TokenCharClass, TokenGroupEnd,
		TokenCaptureGroupBegin, TokenGroupEnd,
	})
	assert.Equal(t, tokens[6].Negated, false)
	assert.Equal(t, tokens[9].Negated, true)
	assert.Equal(t, tokens[12].Negated, false)
	assert.Equal(t, tokens[15].Negated, true)
}

func TestNamedGroups(t *testing.T) {
	tokens := lexTokens(t, `(?<name>a)\k<name>`, "u", Options{})
	assert.DeepEqual(t, kinds(tokens), []TokenKind{
		TokenCaptureGroupBegin, TokenCharClass, TokenGroupEnd, TokenBackReference,
	})
	assert.Equal(t, tokens[3].GroupNumber, 1)

	// forward reference resolves through the pre-scan
	tokens = lexTokens(t, `\k<x>(?<x>a)`, "u", Options{})
	assert.Equal(t, tokens[0].Kind, TokenBackReference)
	assert.Equal(t, tokens[0].GroupNumber, 1)

	// \k before the named group also works in Annex B mode, because the
	// mere presence of a named group selects the +N grammar
	tokens = lexTokens(t, `\k<x>(?<x>a)`, "", Options{})
	assert.Equal(t, tokens[0].Kind, TokenBackReference)

	// without named groups, Annex B treats \k as a literal
	tokens = lexTokens(t, `\k`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'k', 'k'}})

	assert.Equal(t, lexError(t, `\k`, "u", Options{}).Message, errEndsWithUnfinishedEscape)
	assert.Equal(t, lexError(t, `\kx`, "u", Options{}).Message, errMissingGroupName)
	assert.Equal(t, lexError(t, `\k<nosuch>`, "u", Options{}).Message, errMissingGroupForBackReference)
	assert.Equal(t, lexError(t, `(?<a>x)(?<a>y)`, "u", Options{}).Message, errMultipleGroupsSameName)
	assert.Equal(t, lexError(t, `(?<a>x)(?<a>y)`, "", Options{}).Message, errMultipleGroupsSameName)
	assert.Equal(t, lexError(t, `(?<>x)`, "u", Options{}).Message, errEmptyGroupName)
	assert.Equal(t, lexError(t, `(?<1a>x)`, "u", Options{}).Message, errInvalidGroupNameStart)
	assert.Equal(t, lexError(t, `(?<a!>x)`, "u", Options{}).Message, errInvalidGroupNamePart)
	assert.Equal(t, lexError(t, `(?<abc`, "u", Options{}).Message, errUnterminatedGroupName)
}

func TestGroupNameEscapes(t *testing.T) {
	// group names may spell their code points as \u escapes
	lexer := NewLexer(`(?<abc>x)\k<abc>`, FlagUnicode, Options{})
	groups, err := lexer.NamedCaptureGroups()
	assert.NilError(t, err)
	assert.DeepEqual(t, groups, map[string]int{"abc": 1})

	tokens := []Token{}
	for lexer.HasNext() {
		token, err := lexer.Next()
		assert.NilError(t, err)
		tokens = append(tokens, token)
	}
	assert.Equal(t, tokens[len(tokens)-1].Kind, TokenBackReference)
	assert.Equal(t, tokens[len(tokens)-1].GroupNumber, 1)
}

func TestNamedCaptureGroupsAPI(t *testing.T) {
	lexer := NewLexer("(?<a>x)(?<b>y)", 0, Options{})
	groups, err := lexer.NamedCaptureGroups()
	assert.NilError(t, err)
	assert.DeepEqual(t, groups, map[string]int{"a": 1, "b": 2})

	// cached on repeated calls
	again, err := lexer.NamedCaptureGroups()
	assert.NilError(t, err)
	assert.DeepEqual(t, again, groups)

	// lexing through the pattern afterwards does not double-register
	for lexer.HasNext() {
		_, err := lexer.Next()
		assert.NilError(t, err)
	}

	// no named groups: the mapping is absent
	lexer = NewLexer("(a)(b)", 0, Options{})
	groups, err = lexer.NamedCaptureGroups()
	assert.NilError(t, err)
	assert.Assert(t, groups == nil)

	_, err = NewLexer("(?<a>x)(?<a>y)", 0, Options{}).NamedCaptureGroups()
	var syntaxErr *SyntaxError
	assert.Assert(t, errors.As(err, &syntaxErr))
	assert.Equal(t, syntaxErr.Message, errMultipleGroupsSameName)
}

func TestBackReferences(t *testing.T) {
	tokens := lexTokens(t, `(a)\1`, "", Options{})
	assert.Equal(t, tokens[3].Kind, TokenBackReference)
	assert.Equal(t, tokens[3].GroupNumber, 1)

	// forward numeric reference counts groups via the pre-scan
	tokens = lexTokens(t, `\1(a)`, "", Options{})
	assert.Equal(t, tokens[0].Kind, TokenBackReference)
	assert.Equal(t, tokens[0].GroupNumber, 1)

	// escaped parentheses and class members do not count as groups
	tokens = lexTokens(t, `\1\(a\)`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0x01, 0x01}})
	tokens = lexTokens(t, `\1([)])`, "", Options{})
	assert.Equal(t, tokens[0].Kind, TokenBackReference)

	// Annex B: a dangling reference re-reads as an octal escape
	tokens = lexTokens(t, `(a)\2`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[3]), []CodePointRange{{0x02, 0x02}})
	assert.Equal(t, lexError(t, `(a)\2`, "u", Options{}).Message, errMissingGroupForBackReference)

	// oversized numerals saturate and can never resolve to a group
	tokens = lexTokens(t, `(a)\99999999999`, "", Options{})
	assert.Equal(t, len(tokens), 14)
	assert.DeepEqual(t, classRanges(t, tokens[3]), []CodePointRange{{'9', '9'}})
	assert.Equal(t, lexError(t, `(a)\99999999999`, "u", Options{}).Message, errMissingGroupForBackReference)
}

func TestCharClasses(t *testing.T) {
	cases := []struct {
		pattern string
		ranges  []CodePointRange
	}{
		{"[a-z]", []CodePointRange{{'a', 'z'}}},
		{"[^a-z]", []CodePointRange{{0, 0x60}, {0x7b, MaxCodePoint}}},
		{"[]", []CodePointRange{}},
		{"[^]", []CodePointRange{{0, MaxCodePoint}}},
		{"[a-]", []CodePointRange{{'-', '-'}, {'a', 'a'}}},
		{"[-a]", []CodePointRange{{'-', '-'}, {'a', 'a'}}},
		{"[a-z0-9]", []CodePointRange{{'0', '9'}, {'a', 'z'}}},
		{`[\d]`, []CodePointRange{{'0', '9'}}},
		{`[\b]`, []CodePointRange{{0x08, 0x08}}},
		{`[\-]`, []CodePointRange{{'-', '-'}}},
		{`[\cJ]`, []CodePointRange{{0x0a, 0x0a}}},
	}
	for _, c := range cases {
		t.Run(c.pattern, func(t *testing.T) {
			tokens := lexTokens(t, c.pattern, "", Options{})
			assert.Equal(t, len(tokens), 1)
			if len(c.ranges) == 0 {
				assert.Equal(t, len(classRanges(t, tokens[0])), 0)
			} else {
				assert.DeepEqual(t, classRanges(t, tokens[0]), c.ranges)
			}
		})
	}

	assert.Equal(t, lexError(t, "[z-a]", "", Options{}).Message, errCharClassRangeOutOfOrder)
	assert.Equal(t, lexError(t, "[", "", Options{}).Message, errUnmatchedLeftBracket)
	assert.Equal(t, lexError(t, "[a", "u", Options{}).Message, errUnmatchedLeftBracket)
}

func TestCharClassDashLeniency(t *testing.T) {
	// a predefined class as a range bound is only an error in unicode
	// mode; Annex B unions both atoms plus a literal '-'
	tokens := lexTokens(t, `[\d-z]`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'-', '-'}, {'0', '9'}, {'z', 'z'}})
	tokens = lexTokens(t, `[%-\d]`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'%', '%'}, {'-', '-'}, {'0', '9'}})

	assert.Equal(t, lexError(t, `[\d-z]`, "u", Options{}).Message, errInvalidCharacterClass)
	assert.Equal(t, lexError(t, `[%-\d]`, "u", Options{}).Message, errInvalidCharacterClass)
}

func TestControlEscapesInClass(t *testing.T) {
	// legacy quirk: \c followed by a digit or '_' inside a class
	tokens := lexTokens(t, `[\c1]`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0x11, 0x11}})
	tokens = lexTokens(t, `[\c_]`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0x1f, 0x1f}})
}

func TestEscapeChars(t *testing.T) {
	cases := []struct {
		pattern string
		cp      rune
	}{
		{`\t`, 0x09},
		{`\n`, 0x0a},
		{`\v`, 0x0b},
		{`\f`, 0x0c},
		{`\r`, 0x0d},
		{`\0`, 0x00},
		{`\cA`, 0x01},
		{`\cj`, 0x0a},
		{`\x41`, 0x41},
		{`a`, 0x61},
		{`\$`, '$'},
		{`\.`, '.'},
		{`\\`, '\\'},
	}
	for _, c := range cases {
		t.Run(c.pattern, func(t *testing.T) {
			for _, flagStr := range []string{"", "u"} {
				tokens := lexTokens(t, c.pattern, flagStr, Options{})
				assert.Equal(t, len(tokens), 1)
				assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{c.cp, c.cp}})
			}
		})
	}
}

func TestEscapeLeniency(t *testing.T) {
	// malformed escapes resolve to literal characters in Annex B mode and
	// hard errors in unicode mode
	tokens := lexTokens(t, `\q`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'q', 'q'}})
	assert.Equal(t, lexError(t, `\q`, "u", Options{}).Message, errInvalidEscape)

	tokens = lexTokens(t, `\-`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'-', '-'}})
	assert.Equal(t, lexError(t, `\-`, "u", Options{}).Message, errInvalidEscape)

	tokens = lexTokens(t, `\xf`, "", Options{})
	assert.Equal(t, len(tokens), 2)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'x', 'x'}})
	assert.Equal(t, lexError(t, `\xf`, "u", Options{}).Message, errInvalidEscape)

	tokens = lexTokens(t, `\u123`, "", Options{})
	assert.Equal(t, len(tokens), 4)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'u', 'u'}})
	assert.Equal(t, lexError(t, `\u123`, "u", Options{}).Message, errInvalidUnicodeEscape)

	tokens = lexTokens(t, `\c`, "", Options{})
	assert.Equal(t, len(tokens), 2)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'\\', '\\'}})
	assert.DeepEqual(t, classRanges(t, tokens[1]), []CodePointRange{{'c', 'c'}})
	assert.Equal(t, lexError(t, `\c`, "u", Options{}).Message, errInvalidControlCharEscape)

	tokens = lexTokens(t, `\c1`, "", Options{})
	assert.Equal(t, len(tokens), 3)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'\\', '\\'}})

	assert.Equal(t, lexError(t, `\`, "", Options{}).Message, errEndsWithUnfinishedEscape)
	assert.Equal(t, lexError(t, `\01`, "u", Options{}).Message, errInvalidEscape)
}

func TestOctalEscapes(t *testing.T) {
	tokens := lexTokens(t, `\101`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0x41, 0x41}})

	tokens = lexTokens(t, `\01`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0x01, 0x01}})

	// the accumulated value caps at 255
	tokens = lexTokens(t, `\777`, "", Options{})
	assert.Equal(t, len(tokens), 2)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0x3f, 0x3f}})
	assert.DeepEqual(t, classRanges(t, tokens[1]), []CodePointRange{{'7', '7'}})

	// '8' and '9' are not octal digits
	tokens = lexTokens(t, `\8`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'8', '8'}})
}

func TestUnicodeEscapes(t *testing.T) {
	tokens := lexTokens(t, `\u{1f600}`, "u", Options{})
	assert.Equal(t, len(tokens), 1)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0x1f600, 0x1f600}})

	assert.Equal(t, lexError(t, `\u{110000}`, "u", Options{}).Message, errInvalidUnicodeEscape)
	assert.Equal(t, lexError(t, `\u{}`, "u", Options{}).Message, errInvalidUnicodeEscape)

	// surrogate pair escapes combine in unicode mode
	tokens = lexTokens(t, `😀`, "u", Options{})
	assert.Equal(t, len(tokens), 1)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0x1f600, 0x1f600}})

	// ...but not in Annex B mode
	tokens = lexTokens(t, `😀`, "", Options{})
	assert.Equal(t, len(tokens), 2)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0xd83d, 0xd83d}})

	// a trail that is not a low surrogate rolls the cursor back
	tokens = lexTokens(t, `\uD83Da`, "u", Options{})
	assert.Equal(t, len(tokens), 2)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0xd83d, 0xd83d}})
	assert.DeepEqual(t, classRanges(t, tokens[1]), []CodePointRange{{0x61, 0x61}})

	// the \u{...} form never acts as a trail surrogate
	tokens = lexTokens(t, `\uD83D\u{61}`, "u", Options{})
	assert.Equal(t, len(tokens), 2)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0xd83d, 0xd83d}})
}

func TestLiteralSurrogatePairs(t *testing.T) {
	tokens := lexTokens(t, "😀", "u", Options{})
	assert.Equal(t, len(tokens), 1)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0x1f600, 0x1f600}})

	tokens = lexTokens(t, "😀", "", Options{})
	assert.Equal(t, len(tokens), 2)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0xd83d, 0xd83d}})
	assert.DeepEqual(t, classRanges(t, tokens[1]), []CodePointRange{{0xde00, 0xde00}})

	// a lone high surrogate stands for itself
	lexer := NewLexerFromCodeUnits([]uint16{0xd83d}, FlagUnicode, Options{})
	token, err := lexer.Next()
	assert.NilError(t, err)
	assert.DeepEqual(t, classRanges(t, token), []CodePointRange{{0xd83d, 0xd83d}})
}

func TestPredefCharClasses(t *testing.T) {
	tokens := lexTokens(t, `\d`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'0', '9'}})

	tokens = lexTokens(t, `\D`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0, 0x2f}, {0x3a, MaxCodePoint}})

	tokens = lexTokens(t, `\w`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{
		{'0', '9'}, {'A', 'Z'}, {'_', '_'}, {'a', 'z'},
	})

	// predefined classes skip the case-folding step
	tokens = lexTokens(t, `\w`, "i", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{
		{'0', '9'}, {'A', 'Z'}, {'_', '_'}, {'a', 'z'},
	})

	// ...but under u+i the word characters gain the two fold extras
	tokens = lexTokens(t, `\w`, "iu", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{
		{'0', '9'}, {'A', 'Z'}, {'_', '_'}, {'a', 'z'}, {0x017f, 0x017f}, {0x212a, 0x212a},
	})
	tokens = lexTokens(t, `\W`, "iu", Options{})
	assert.Equal(t, tokens[0].CodePointSet.ContainsCodePoint(0x017f), false)
	assert.Equal(t, tokens[0].CodePointSet.ContainsCodePoint('!'), true)

	tokens = lexTokens(t, `\s`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{
		{0x0009, 0x000d}, {0x0020, 0x0020}, {0x00a0, 0x00a0}, {0x1680, 0x1680},
		{0x2000, 0x200a}, {0x2028, 0x2029}, {0x202f, 0x202f}, {0x205f, 0x205f},
		{0x3000, 0x3000}, {0xfeff, 0xfeff},
	})

	// pre-6.3 Unicode counted U+180E as white space
	tokens = lexTokens(t, `\s`, "", Options{U180EWhitespace: true})
	assert.Equal(t, tokens[0].CodePointSet.ContainsCodePoint(0x180e), true)
	tokens = lexTokens(t, `\S`, "", Options{U180EWhitespace: true})
	assert.Equal(t, tokens[0].CodePointSet.ContainsCodePoint(0x180e), false)
}

func TestUnicodeProperties(t *testing.T) {
	tokens := lexTokens(t, `\p{Lu}`, "u", Options{})
	set := tokens[0].CodePointSet
	assert.Equal(t, set.ContainsCodePoint('A'), true)
	assert.Equal(t, set.ContainsCodePoint('a'), false)

	tokens = lexTokens(t, `\P{Lu}`, "u", Options{})
	set = tokens[0].CodePointSet
	assert.Equal(t, set.ContainsCodePoint('A'), false)
	assert.Equal(t, set.ContainsCodePoint('a'), true)

	tokens = lexTokens(t, `\p{Script=Greek}`, "u", Options{})
	assert.Equal(t, tokens[0].CodePointSet.ContainsCodePoint(0x03b1), true)

	tokens = lexTokens(t, `\p{Greek}`, "u", Options{})
	assert.Equal(t, tokens[0].CodePointSet.ContainsCodePoint(0x03b1), true)

	tokens = lexTokens(t, `\p{White_Space}`, "u", Options{})
	assert.Equal(t, tokens[0].CodePointSet.ContainsCodePoint(' '), true)

	// property sets go through case folding under u+i
	tokens = lexTokens(t, `\p{Lu}`, "iu", Options{})
	assert.Equal(t, tokens[0].CodePointSet.ContainsCodePoint('a'), true)

	// outside unicode mode, \p is just an identity escape
	tokens = lexTokens(t, `\p`, "", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'p', 'p'}})

	assert.Equal(t, lexError(t, `\p{Nosuch}`, "u", Options{}).Message, `unknown Unicode property "Nosuch"`)
	assert.Equal(t, lexError(t, `\p{Lu`, "u", Options{}).Message, errUnterminatedUnicodeProperty)
	assert.Equal(t, lexError(t, `\pL`, "u", Options{}).Message, errInvalidUnicodeProperty)
}

func TestCustomPropertyResolver(t *testing.T) {
	opts := Options{UnicodeProperties: func(name string) (*CodePointSet, error) {
		assert.Equal(t, name, "Custom")
		return pointSet(0x41), nil
	}}
	tokens := lexTokens(t, `\p{Custom}`, "u", opts)
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0x41, 0x41}})
}

func TestIgnoreCaseFolding(t *testing.T) {
	tokens := lexTokens(t, "k", "iu", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{
		{'K', 'K'}, {'k', 'k'}, {0x212a, 0x212a},
	})

	tokens = lexTokens(t, "k", "i", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'K', 'K'}, {'k', 'k'}})

	tokens = lexTokens(t, "K", "i", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0x212a, 0x212a}})

	tokens = lexTokens(t, "[a-z]", "i", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{'A', 'Z'}, {'a', 'z'}})

	tokens = lexTokens(t, "ß", "iu", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{{0x00df, 0x00df}, {0x1e9e, 0x1e9e}})

	// folding happens before inversion
	tokens = lexTokens(t, "[^a]", "iu", Options{})
	assert.DeepEqual(t, classRanges(t, tokens[0]), []CodePointRange{
		{0, 0x40}, {0x42, 0x60}, {0x62, MaxCodePoint},
	})
}

func TestLexerExhaustion(t *testing.T) {
	lexer := NewLexer("a", 0, Options{})
	assert.Equal(t, lexer.HasNext(), true)
	_, err := lexer.Next()
	assert.NilError(t, err)
	assert.Equal(t, lexer.HasNext(), false)
	_, err = lexer.Next()
	var syntaxErr *SyntaxError
	assert.Assert(t, errors.As(err, &syntaxErr))
	assert.Equal(t, syntaxErr.Message, errUnexpectedEndOfPattern)
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		token    Token
		expected string
	}{
		{Token{Kind: TokenCaret}, "^"},
		{Token{Kind: TokenDollar}, "$"},
		{Token{Kind: TokenWordBoundary}, `\b`},
		{Token{Kind: TokenNonWordBoundary}, `\B`},
		{Token{Kind: TokenAlternation}, "|"},
		{Token{Kind: TokenCaptureGroupBegin}, "("},
		{Token{Kind: TokenNonCaptureGroupBegin}, "(?:"},
		{Token{Kind: TokenLookAheadAssertionBegin}, "(?="},
		{Token{Kind: TokenLookAheadAssertionBegin, Negated: true}, "(?!"},
		{Token{Kind: TokenLookBehindAssertionBegin}, "(?<="},
		{Token{Kind: TokenLookBehindAssertionBegin, Negated: true}, "(?<!"},
		{Token{Kind: TokenGroupEnd}, ")"},
		{Token{Kind: TokenBackReference, GroupNumber: 3}, `\3`},
		{Token{Kind: TokenQuantifier, Min: 0, Max: InfiniteRepetition, Greedy: true}, "*"},
		{Token{Kind: TokenQuantifier, Min: 1, Max: InfiniteRepetition, Greedy: false}, "+?"},
		{Token{Kind: TokenQuantifier, Min: 0, Max: 1, Greedy: true}, "?"},
		{Token{Kind: TokenQuantifier, Min: 2, Max: InfiniteRepetition, Greedy: true}, "{2,}"},
		{Token{Kind: TokenQuantifier, Min: 2, Max: 2, Greedy: true}, "{2}"},
		{Token{Kind: TokenQuantifier, Min: 2, Max: 3, Greedy: false}, "{2,3}?"},
		{charClassToken(pointSet('a')), "[0061]"},
	}
	for _, c := range cases {
		assert.Equal(t, c.token.String(), c.expected)
	}
}
