package ecmalex

import (
	"math"
	"math/big"
	"strings"
	"unicode/utf16"
)

// Syntax error messages. Mode-dependent leniency means several of these
// are only reachable with the u flag; Annex B resolves the same inputs to
// literal characters instead.
const (
	errEndsWithUnfinishedEscape      = `\ at end of pattern`
	errUnexpectedEndOfPattern        = "unexpected end of pattern"
	errInvalidEscape                 = "invalid escape"
	errInvalidUnicodeEscape          = "invalid Unicode escape"
	errInvalidControlCharEscape      = "invalid control escape"
	errInvalidUnicodeProperty        = "invalid Unicode property"
	errUnterminatedUnicodeProperty   = "unterminated Unicode property"
	errIncompleteQuantifier          = "incomplete quantifier"
	errQuantifierOnQuantifier        = "quantifier on quantifier"
	errQuantifierOutOfOrder          = "quantifier out of order"
	errQuantifierWithoutTarget       = "quantifier without target"
	errUnmatchedLeftBracket          = "unmatched ["
	errUnmatchedRightBracket         = "unmatched ]"
	errUnmatchedRightBrace           = "unmatched }"
	errCharClassRangeOutOfOrder      = "character class range out of order"
	errInvalidCharacterClass         = "invalid character class"
	errMissingGroupName              = "missing group name"
	errEmptyGroupName                = "empty group name"
	errInvalidGroupNameStart         = "invalid group name start"
	errInvalidGroupNamePart          = "invalid group name part"
	errUnterminatedGroupName         = "unterminated group name"
	errMultipleGroupsSameName        = "multiple groups with same name"
	errMissingGroupForBackReference  = "missing group for backreference"
)

// Lexer produces the token sequence of one regular expression pattern.
// A Lexer lexes its pattern exactly once and is not safe for concurrent
// use; re-lexing requires a new instance.
type Lexer struct {
	pattern string
	units   []uint16
	flags   Flag
	opts    Options

	index     int
	lastToken *Token

	// Capture group bookkeeping. nGroups starts at 1 because group 0 is
	// the implicit whole-match group. Once the pre-scan has run,
	// identifiedAllGroups freezes the count and the name map.
	nGroups             int
	identifiedAllGroups bool
	namedCaptureGroups  map[string]int
}

// NewLexer creates a lexer over pattern. The pattern is lexed as the
// sequence of UTF-16 code units encoding it, following ECMAScript string
// semantics.
func NewLexer(pattern string, flags Flag, opts Options) *Lexer {
	return &Lexer{
		pattern: pattern,
		units:   utf16.Encode([]rune(pattern)),
		flags:   flags,
		opts:    opts,
		nGroups: 1,
	}
}

// NewLexerFromCodeUnits creates a lexer over a pattern given directly as
// UTF-16 code units. Unlike NewLexer this permits lone surrogates in the
// pattern.
func NewLexerFromCodeUnits(units []uint16, flags Flag, opts Options) *Lexer {
	return &Lexer{
		pattern: string(utf16.Decode(units)),
		units:   units,
		flags:   flags,
		opts:    opts,
		nGroups: 1,
	}
}

func (l *Lexer) isUnicode() bool {
	return l.flags&FlagUnicode != 0
}

// HasNext reports whether the pattern has more tokens.
func (l *Lexer) HasNext() bool {
	return !l.atEnd()
}

// Next returns the next token of the pattern. On malformed input it
// returns a *SyntaxError and the lexer must not be used further.
func (l *Lexer) Next() (Token, error) {
	if l.atEnd() {
		return Token{}, l.syntaxError(errUnexpectedEndOfPattern)
	}
	startIndex := l.index
	t, err := l.getNext()
	if err != nil {
		return Token{}, err
	}
	t.Pos = startIndex
	t.End = l.index
	l.lastToken = &t
	return t, nil
}

// NamedCaptureGroups returns the mapping from group name to group index,
// or nil if the pattern has no named groups. The first call triggers a
// pre-scan of the remaining pattern; the result is cached.
func (l *Lexer) NamedCaptureGroups() (map[string]int, error) {
	if !l.identifiedAllGroups {
		if err := l.identifyCaptureGroups(); err != nil {
			return nil, err
		}
		l.identifiedAllGroups = true
	}
	return l.namedCaptureGroups, nil
}

// Whether we are lexing the goal symbol Pattern[~U, +N] or Pattern[~U, ~N]
// of the ECMAScript RegExp grammar.
func (l *Lexer) hasNamedCaptureGroups() (bool, error) {
	m, err := l.NamedCaptureGroups()
	return m != nil, err
}

func (l *Lexer) numberOfCaptureGroups() (int, error) {
	if !l.identifiedAllGroups {
		if err := l.identifyCaptureGroups(); err != nil {
			return 0, err
		}
		l.identifiedAllGroups = true
	}
	return l.nGroups, nil
}

func (l *Lexer) registerCaptureGroup() {
	if !l.identifiedAllGroups {
		l.nGroups++
	}
}

func (l *Lexer) registerNamedCaptureGroup(name string) error {
	if !l.identifiedAllGroups {
		if l.namedCaptureGroups == nil {
			l.namedCaptureGroups = map[string]int{}
		}
		if _, ok := l.namedCaptureGroups[name]; ok {
			return l.syntaxError(errMultipleGroupsSameName)
		}
		l.namedCaptureGroups[name] = l.nGroups
	}
	l.registerCaptureGroup()
	return nil
}

// identifyCaptureGroups counts the capture groups in the rest of the
// pattern. Only '(' matters, minus occurrences whose meaning is cancelled
// by an escape or a surrounding character class; group-begin sequences are
// classified by re-running parseGroupBegin, so duplicate or malformed
// group names surface here as well. The cursor is restored afterwards.
func (l *Lexer) identifyCaptureGroups() error {
	insideCharClass := false
	restoreIndex := l.index
	for !l.atEnd() {
		switch l.consumeChar() {
		case '\\':
			l.advance(1)
		case '[':
			insideCharClass = true
		case ']':
			insideCharClass = false
		case '(':
			if !insideCharClass {
				if _, err := l.parseGroupBegin(); err != nil {
					return err
				}
			}
		}
	}
	l.index = restoreIndex
	return nil
}

/* input string access */

func (l *Lexer) atEnd() bool {
	return l.index >= len(l.units)
}

func (l *Lexer) curChar() uint16 {
	return l.units[l.index]
}

func (l *Lexer) consumeChar() uint16 {
	c := l.units[l.index]
	l.index++
	return c
}

func (l *Lexer) advance(n int) {
	l.index += n
}

func (l *Lexer) retreat() {
	l.index--
}

func (l *Lexer) lookahead(match string) bool {
	if len(l.units)-l.index < len(match) {
		return false
	}
	for i := 0; i < len(match); i++ {
		if l.units[l.index+i] != uint16(match[i]) {
			return false
		}
	}
	return true
}

func (l *Lexer) consumingLookahead(match string) bool {
	matches := l.lookahead(match)
	if matches {
		l.advance(len(match))
	}
	return matches
}

func (l *Lexer) syntaxError(msg string) *SyntaxError {
	return &SyntaxError{Pattern: l.pattern, Flags: l.flags, Message: msg, Pos: l.index}
}

// charClass wraps set into a character class token, applying case folding
// and inversion as dictated by the flags.
func (l *Lexer) charClass(set *CodePointSet, invert bool) Token {
	if l.flags&FlagIgnoreCase != 0 {
		set = ApplyCaseFold(set, l.isUnicode())
	}
	if invert {
		set = set.Inverse()
	}
	return charClassToken(set)
}

/* lexer */

func (l *Lexer) getNext() (Token, error) {
	c := l.consumeChar()
	switch c {
	case '.':
		if l.flags&FlagDotAll != 0 {
			return l.charClass(dotAllSet, false), nil
		}
		return l.charClass(dotSet, false), nil
	case '^':
		return Token{Kind: TokenCaret}, nil
	case '$':
		return Token{Kind: TokenDollar}, nil
	case '{', '*', '+', '?':
		return l.parseQuantifier(c)
	case '}':
		// Annex B allows unmatched '}' and ']' as literal characters; the
		// u flag restores strictness.
		if l.isUnicode() {
			return Token{}, l.syntaxError(errUnmatchedRightBrace)
		}
		return l.charClass(pointSet('}'), false), nil
	case '|':
		return Token{Kind: TokenAlternation}, nil
	case '(':
		return l.parseGroupBegin()
	case ')':
		return Token{Kind: TokenGroupEnd}, nil
	case '[':
		return l.parseCharClass()
	case ']':
		if l.isUnicode() {
			return Token{}, l.syntaxError(errUnmatchedRightBracket)
		}
		return l.charClass(pointSet(']'), false), nil
	case '\\':
		return l.parseEscape()
	default:
		if l.isUnicode() && isHighSurrogate(c) {
			return l.charClass(pointSet(l.finishSurrogatePair(c)), false), nil
		}
		return l.charClass(pointSet(rune(c)), false), nil
	}
}

func (l *Lexer) parseEscape() (Token, error) {
	if l.atEnd() {
		return Token{}, l.syntaxError(errEndsWithUnfinishedEscape)
	}
	c := l.consumeChar()
	if '1' <= c && c <= '9' {
		restoreIndex := l.index
		backRefNumber := l.parseInteger(int(c - '0'))
		total, err := l.numberOfCaptureGroups()
		if err != nil {
			return Token{}, err
		}
		if backRefNumber < total {
			return Token{Kind: TokenBackReference, GroupNumber: backRefNumber}, nil
		}
		if l.isUnicode() {
			return Token{}, l.syntaxError(errMissingGroupForBackReference)
		}
		// Annex B: re-interpret the digits as an octal escape instead.
		l.index = restoreIndex
	}
	switch c {
	case 'k':
		named := l.isUnicode()
		if !named {
			var err error
			named, err = l.hasNamedCaptureGroups()
			if err != nil {
				return Token{}, err
			}
		}
		if !named {
			return l.charClass(pointSet('k'), false), nil
		}
		if l.atEnd() {
			return Token{}, l.syntaxError(errEndsWithUnfinishedEscape)
		}
		if l.consumeChar() != '<' {
			return Token{}, l.syntaxError(errMissingGroupName)
		}
		groupName, err := l.parseGroupName()
		if err != nil {
			return Token{}, err
		}
		// backward reference
		if index, ok := l.namedCaptureGroups[groupName]; ok {
			return Token{Kind: TokenBackReference, GroupNumber: index}, nil
		}
		// possible forward reference
		allNamedCaptureGroups, err := l.NamedCaptureGroups()
		if err != nil {
			return Token{}, err
		}
		if index, ok := allNamedCaptureGroups[groupName]; ok {
			return Token{Kind: TokenBackReference, GroupNumber: index}, nil
		}
		return Token{}, l.syntaxError(errMissingGroupForBackReference)
	case 'b':
		return Token{Kind: TokenWordBoundary}, nil
	case 'B':
		return Token{Kind: TokenNonWordBoundary}, nil
	default:
		// The six basic predefined classes come pre-folded and pre-negated
		// and skip the charClass folding step; Unicode property escapes
		// and single-character escapes go through it.
		if isPredefCharClass(c) {
			return charClassToken(l.parsePredefCharClass(c)), nil
		}
		if l.isUnicode() && (c == 'p' || c == 'P') {
			set, err := l.parseUnicodeCharacterProperty(c == 'P')
			if err != nil {
				return Token{}, err
			}
			return l.charClass(set, false), nil
		}
		cp, err := l.parseEscapeChar(c, false)
		if err != nil {
			return Token{}, err
		}
		return l.charClass(pointSet(cp), false), nil
	}
}

func (l *Lexer) parseGroupBegin() (Token, error) {
	switch {
	case l.consumingLookahead("?="):
		return Token{Kind: TokenLookAheadAssertionBegin}, nil
	case l.consumingLookahead("?!"):
		return Token{Kind: TokenLookAheadAssertionBegin, Negated: true}, nil
	case l.consumingLookahead("?<="):
		return Token{Kind: TokenLookBehindAssertionBegin}, nil
	case l.consumingLookahead("?<!"):
		return Token{Kind: TokenLookBehindAssertionBegin, Negated: true}, nil
	case l.consumingLookahead("?:"):
		return Token{Kind: TokenNonCaptureGroupBegin}, nil
	case l.consumingLookahead("?<"):
		groupName, err := l.parseGroupName()
		if err != nil {
			return Token{}, err
		}
		if err := l.registerNamedCaptureGroup(groupName); err != nil {
			return Token{}, err
		}
		return Token{Kind: TokenCaptureGroupBegin}, nil
	default:
		l.registerCaptureGroup()
		return Token{Kind: TokenCaptureGroupBegin}, nil
	}
}

// parseCodePointInGroupName returns the next code point of a group name,
// or -1 once the closing '>' is consumed.
func (l *Lexer) parseCodePointInGroupName() (rune, error) {
	if l.consumingLookahead(`\u`) {
		cp, err := l.parseUnicodeEscapeChar()
		if err != nil {
			return 0, err
		}
		if cp < 0 {
			return 0, l.syntaxError(errInvalidUnicodeEscape)
		}
		return cp, nil
	}
	if l.atEnd() {
		return 0, l.syntaxError(errUnterminatedGroupName)
	}
	if l.consumingLookahead(">") {
		return -1, nil
	}
	c := l.consumeChar()
	if l.isUnicode() && isHighSurrogate(c) {
		return l.finishSurrogatePair(c), nil
	}
	return rune(c), nil
}

// parseGroupName parses a RegExpIdentifierName, assuming that the opening
// '<' was already consumed.
func (l *Lexer) parseGroupName() (string, error) {
	var groupName strings.Builder
	cp, err := l.parseCodePointInGroupName()
	if err != nil {
		return "", err
	}
	if cp == -1 {
		return "", l.syntaxError(errEmptyGroupName)
	}
	if !(isIDStart(cp) || cp == '$' || cp == '_') {
		return "", l.syntaxError(errInvalidGroupNameStart)
	}
	groupName.WriteRune(cp)
	for {
		cp, err = l.parseCodePointInGroupName()
		if err != nil {
			return "", err
		}
		if cp == -1 {
			break
		}
		if !(isIDContinue(cp) || cp == '$' || cp == 0x200c || cp == 0x200d) {
			return "", l.syntaxError(errInvalidGroupNamePart)
		}
		groupName.WriteRune(cp)
	}
	return groupName.String(), nil
}

func (l *Lexer) parseQuantifier(c uint16) (Token, error) {
	var min, max int
	max = InfiniteRepetition
	var greedy bool
	if c == '{' {
		resetIndex := l.index
		literalMin := l.parseDecimal()
		if literalMin.Sign() < 0 {
			return l.countedRepetitionSyntaxError(resetIndex)
		}
		min = clampQuantifierBound(literalMin)
		if l.consumingLookahead(",}") {
			greedy = !l.consumingLookahead("?")
		} else if l.consumingLookahead("}") {
			max = min
			greedy = !l.consumingLookahead("?")
		} else {
			if !l.consumingLookahead(",") {
				return l.countedRepetitionSyntaxError(resetIndex)
			}
			literalMax := l.parseDecimal()
			if literalMax.Sign() < 0 || !l.consumingLookahead("}") {
				return l.countedRepetitionSyntaxError(resetIndex)
			}
			max = clampQuantifierBound(literalMax)
			greedy = !l.consumingLookahead("?")
			// The ordering check uses the literal values, not the clamped
			// ones.
			if literalMin.Cmp(literalMax) > 0 {
				return Token{}, l.syntaxError(errQuantifierOutOfOrder)
			}
		}
	} else {
		greedy = !l.consumingLookahead("?")
		if c == '+' {
			min = 1
		}
		if c == '?' {
			max = 1
		}
	}
	if l.lastToken == nil {
		return Token{}, l.syntaxError(errQuantifierWithoutTarget)
	}
	if l.lastToken.Kind == TokenQuantifier {
		return Token{}, l.syntaxError(errQuantifierOnQuantifier)
	}
	switch l.lastToken.Kind {
	case TokenCharClass, TokenGroupEnd, TokenBackReference:
	default:
		return Token{}, l.syntaxError(errQuantifierWithoutTarget)
	}
	return Token{Kind: TokenQuantifier, Min: min, Max: max, Greedy: greedy}, nil
}

// countedRepetitionSyntaxError resolves a '{' that did not turn into a
// well-formed counted repetition: a hard error in unicode mode, a literal
// '{' with the cursor rewound right past it in Annex B mode.
func (l *Lexer) countedRepetitionSyntaxError(resetIndex int) (Token, error) {
	if l.isUnicode() {
		return Token{}, l.syntaxError(errIncompleteQuantifier)
	}
	l.index = resetIndex
	return l.charClass(pointSet('{'), false), nil
}

func (l *Lexer) parseCharClass() (Token, error) {
	invert := l.consumingLookahead("^")
	curCharClass := NewCodePointSet()
	for !l.atEnd() {
		c := l.consumeChar()
		if c == ']' {
			return l.charClass(curCharClass, invert), nil
		}
		if err := l.parseCharClassRange(c, curCharClass); err != nil {
			return Token{}, err
		}
	}
	return Token{}, l.syntaxError(errUnmatchedLeftBracket)
}

func (l *Lexer) parseCharClassAtom(c uint16) (*CodePointSet, error) {
	if c == '\\' {
		if l.atEnd() {
			return nil, l.syntaxError(errEndsWithUnfinishedEscape)
		}
		if l.isEscapeCharClass(l.curChar()) {
			return l.parseEscapeCharClass(l.consumeChar())
		}
		cp, err := l.parseEscapeChar(l.consumeChar(), true)
		if err != nil {
			return nil, err
		}
		return pointSet(cp), nil
	}
	if l.isUnicode() && isHighSurrogate(c) {
		return pointSet(l.finishSurrogatePair(c)), nil
	}
	return pointSet(rune(c)), nil
}

func (l *Lexer) parseCharClassRange(c uint16, curCharClass *CodePointSet) error {
	firstAtom, err := l.parseCharClassAtom(c)
	if err != nil {
		return err
	}
	if !l.consumingLookahead("-") {
		curCharClass.AddSet(firstAtom)
		return nil
	}
	if l.atEnd() || l.lookahead("]") {
		// Trailing '-' is a literal.
		curCharClass.AddSet(firstAtom)
		curCharClass.AddRange(singleRange('-'))
		return nil
	}
	secondAtom, err := l.parseCharClassAtom(l.consumeChar())
	if err != nil {
		return err
	}
	// Runtime Semantics: CharacterRangeOrUnion(firstAtom, secondAtom)
	if !firstAtom.MatchesSingleCodePoint() || !secondAtom.MatchesSingleCodePoint() {
		if l.isUnicode() {
			return l.syntaxError(errInvalidCharacterClass)
		}
		curCharClass.AddSet(firstAtom)
		curCharClass.AddSet(secondAtom)
		curCharClass.AddRange(singleRange('-'))
		return nil
	}
	firstChar := firstAtom.Ranges()[0].Lo
	secondChar := secondAtom.Ranges()[0].Lo
	if secondChar < firstChar {
		return l.syntaxError(errCharClassRangeOutOfOrder)
	}
	curCharClass.AddRange(CodePointRange{Lo: firstChar, Hi: secondChar})
	return nil
}

func (l *Lexer) parseEscapeCharClass(c uint16) (*CodePointSet, error) {
	if isPredefCharClass(c) {
		return l.parsePredefCharClass(c), nil
	}
	if l.isUnicode() && (c == 'p' || c == 'P') {
		return l.parseUnicodeCharacterProperty(c == 'P')
	}
	panic("parseEscapeCharClass called on non-class escape")
}

// parsePredefCharClass resolves \s \S \d \D \w \W. The returned sets have
// already been case-folded and negated.
func (l *Lexer) parsePredefCharClass(c uint16) *CodePointSet {
	switch c {
	case 's':
		if l.opts.U180EWhitespace {
			return legacyWhiteSpaceSet
		}
		return whiteSpaceSet
	case 'S':
		if l.opts.U180EWhitespace {
			return legacyNonWhiteSpaceSet
		}
		return nonWhiteSpaceSet
	case 'd':
		return digitsSet
	case 'D':
		return nonDigitsSet
	case 'w':
		if l.isUnicode() && l.flags&FlagIgnoreCase != 0 {
			return wordCharsUnicodeIgnoreCaseSet
		}
		return wordCharsSet
	case 'W':
		if l.isUnicode() && l.flags&FlagIgnoreCase != 0 {
			return nonWordCharsUnicodeIgnoreCaseSet
		}
		return nonWordCharsSet
	}
	panic("parsePredefCharClass called on non-predefined class")
}

func (l *Lexer) parseUnicodeCharacterProperty(invert bool) (*CodePointSet, error) {
	if !l.consumingLookahead("{") {
		return nil, l.syntaxError(errInvalidUnicodeProperty)
	}
	specStart := l.index
	for !l.atEnd() && l.curChar() != '}' {
		l.advance(1)
	}
	spec := string(utf16.Decode(l.units[specStart:l.index]))
	if !l.consumingLookahead("}") {
		return nil, l.syntaxError(errUnterminatedUnicodeProperty)
	}
	resolve := l.opts.UnicodeProperties
	if resolve == nil {
		resolve = resolveUnicodeProperty
	}
	propertySet, err := resolve(spec)
	if err != nil {
		return nil, l.syntaxError(err.Error())
	}
	if invert {
		return propertySet.Inverse(), nil
	}
	return propertySet, nil
}

// parseUnicodeEscapeChar parses a RegExpUnicodeEscapeSequence, assuming
// that the prefix '\u' has already been consumed. It returns -1 if the
// escape is malformed and the mode is lenient; the cursor is then restored
// to right after the 'u'.
func (l *Lexer) parseUnicodeEscapeChar() (rune, error) {
	if l.isUnicode() && l.consumingLookahead("{") {
		value, err := l.parseHex(1, math.MaxInt, 0x10ffff, errInvalidUnicodeEscape)
		if err != nil {
			return 0, err
		}
		if !l.consumingLookahead("}") {
			return 0, l.syntaxError(errInvalidUnicodeEscape)
		}
		return value, nil
	}
	value, err := l.parseHex(4, 4, 0xffff, errInvalidUnicodeEscape)
	if err != nil {
		return 0, err
	}
	if l.isUnicode() && value >= 0 && isHighSurrogate(uint16(value)) {
		// A high surrogate combines with an immediately following \uXXXX
		// low surrogate (but never with the \u{...} form).
		resetIndex := l.index
		if l.consumingLookahead(`\u`) && !l.lookahead("{") {
			trail, err := l.parseHex(4, 4, 0xffff, errInvalidUnicodeEscape)
			if err != nil {
				return 0, err
			}
			if trail >= 0 && isLowSurrogate(uint16(trail)) {
				return surrogatePairToCodePoint(uint16(value), uint16(trail)), nil
			}
			l.index = resetIndex
		} else {
			l.index = resetIndex
		}
	}
	return value, nil
}

func (l *Lexer) parseEscapeChar(c uint16, inCharClass bool) (rune, error) {
	if inCharClass && c == 'b' {
		return '\b', nil
	}
	switch c {
	case '0':
		if l.isUnicode() && !l.atEnd() && isDecimalDigit(l.curChar()) {
			return 0, l.syntaxError(errInvalidEscape)
		}
		if !l.isUnicode() && !l.atEnd() && isOctalDigit(l.curChar()) {
			return l.parseOctal(0), nil
		}
		return 0, nil
	case 't':
		return '\t', nil
	case 'n':
		return '\n', nil
	case 'v':
		return '\v', nil
	case 'f':
		return '\f', nil
	case 'r':
		return '\r', nil
	case 'c':
		if l.atEnd() {
			l.retreat()
			return l.escapeCharSyntaxError('\\', errInvalidControlCharEscape)
		}
		controlLetter := l.curChar()
		if !l.isUnicode() && inCharClass && (isDecimalDigit(controlLetter) || controlLetter == '_') {
			l.advance(1)
			return rune(controlLetter % 32), nil
		}
		if !isASCIILetterChar(controlLetter) {
			l.retreat()
			return l.escapeCharSyntaxError('\\', errInvalidControlCharEscape)
		}
		l.advance(1)
		return rune(upperASCII(controlLetter) - ('A' - 1)), nil
	case 'u':
		unicodeEscape, err := l.parseUnicodeEscapeChar()
		if err != nil {
			return 0, err
		}
		if unicodeEscape < 0 {
			return 'u', nil
		}
		return unicodeEscape, nil
	case 'x':
		value, err := l.parseHex(2, 2, 0xff, errInvalidEscape)
		if err != nil {
			return 0, err
		}
		if value < 0 {
			return 'x', nil
		}
		return value, nil
	case '-':
		if !inCharClass {
			return l.escapeCharSyntaxError('-', errInvalidEscape)
		}
		return '-', nil
	default:
		if !l.isUnicode() && isOctalDigit(c) {
			return l.parseOctal(rune(c - '0')), nil
		}
		if !isSyntaxChar(c) {
			return l.escapeCharSyntaxError(rune(c), errInvalidEscape)
		}
		return rune(c), nil
	}
}

// finishSurrogatePair combines a high surrogate with a directly following
// low surrogate; a lone surrogate stands for itself.
func (l *Lexer) finishSurrogatePair(c uint16) rune {
	if !l.atEnd() && isLowSurrogate(l.curChar()) {
		return surrogatePairToCodePoint(c, l.consumeChar())
	}
	return rune(c)
}

func (l *Lexer) escapeCharSyntaxError(c rune, msg string) (rune, error) {
	if l.isUnicode() {
		return 0, l.syntaxError(msg)
	}
	return c, nil
}

// parseDecimal parses a non-negative decimal integer at full precision,
// or returns -1 if the cursor is not on a digit.
func (l *Lexer) parseDecimal() *big.Int {
	if l.atEnd() || !isDecimalDigit(l.curChar()) {
		return big.NewInt(-1)
	}
	ret := new(big.Int)
	var digit big.Int
	for !l.atEnd() && isDecimalDigit(l.curChar()) {
		ret.Mul(ret, bigTen)
		ret.Add(ret, digit.SetInt64(int64(l.consumeChar()-'0')))
	}
	return ret
}

var bigTen = big.NewInt(10)

func clampQuantifierBound(v *big.Int) int {
	if v.IsInt64() && v.Int64() <= math.MaxInt32 {
		return int(v.Int64())
	}
	return InfiniteRepetition
}

// parseInteger parses a non-negative decimal integer, saturating at
// math.MaxInt32. Used for back-reference numerals, where the saturated
// value is compared against the (small) total group count, so oversized
// numerals can never resolve to a group.
func (l *Lexer) parseInteger(firstDigit int) int {
	ret := firstDigit
	initialIndex := l.index
	for !l.atEnd() && isDecimalDigit(l.curChar()) {
		l.advance(1)
	}
	for i := initialIndex; i < l.index; i++ {
		nextDigit := int(l.units[i] - '0')
		if ret > math.MaxInt32/10 {
			return math.MaxInt32
		}
		ret *= 10
		if ret > math.MaxInt32-nextDigit {
			return math.MaxInt32
		}
		ret += nextDigit
	}
	return ret
}

// parseOctal consumes up to two further octal digits, capping the value
// at 255.
func (l *Lexer) parseOctal(firstDigit rune) rune {
	ret := firstDigit
	for i := 0; !l.atEnd() && isOctalDigit(l.curChar()) && i < 2; i++ {
		if ret*8 > 255 {
			return ret
		}
		ret *= 8
		ret += rune(l.consumeChar() - '0')
	}
	return ret
}

// parseHex parses between minDigits and maxDigits hex digits. With fewer
// than minDigits available it fails in unicode mode; in lenient mode it
// restores the cursor and returns -1. Exceeding maxValue is always an
// error.
func (l *Lexer) parseHex(minDigits, maxDigits int, maxValue rune, errMsg string) (rune, error) {
	var ret rune
	initialIndex := l.index
	for i := 0; i < maxDigits; i++ {
		if l.atEnd() || !isHexDigit(l.curChar()) {
			if i < minDigits {
				if l.isUnicode() {
					return 0, l.syntaxError(errMsg)
				}
				l.index = initialIndex
				return -1, nil
			}
			break
		}
		ret = ret*16 + rune(parseHexDigit(l.consumeChar()))
		if ret > maxValue {
			return 0, l.syntaxError(errMsg)
		}
	}
	return ret, nil
}

/* character predicates */

func lowerASCII[T uint16 | rune](c T) T {
	return c | ('a' - 'A')
}

func upperASCII(c uint16) uint16 {
	return c &^ ('a' - 'A')
}

func isDecimalDigit(c uint16) bool {
	return (c - '0') <= 9
}

func isOctalDigit(c uint16) bool {
	return (c - '0') <= 7
}

func isHexDigit(c uint16) bool {
	return ((c - '0') <= (9 - 0)) || (lowerASCII(c)-'a' <= 'f'-'a')
}

func isASCIILetterChar(c uint16) bool {
	return lowerASCII(c)-'a' <= 'z'-'a'
}

func parseHexDigit(c uint16) uint16 {
	return (c & 0b1111) + (c>>6)*9
}

func isHighSurrogate(c uint16) bool {
	return 0xd800 <= c && c <= 0xdbff
}

func isLowSurrogate(c uint16) bool {
	return 0xdc00 <= c && c <= 0xdfff
}

func surrogatePairToCodePoint(lead, trail uint16) rune {
	return utf16.DecodeRune(rune(lead), rune(trail))
}

func isPredefCharClass(c uint16) bool {
	switch c {
	case 's', 'S', 'd', 'D', 'w', 'W':
		return true
	}
	return false
}

func isSyntaxChar(c uint16) bool {
	switch c {
	case '^', '$', '/', '\\', '.', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|':
		return true
	}
	return false
}

func (l *Lexer) isEscapeCharClass(c uint16) bool {
	return isPredefCharClass(c) || (l.isUnicode() && (c == 'p' || c == 'P'))
}
