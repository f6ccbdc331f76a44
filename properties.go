package ecmalex

import (
	"fmt"
	"strings"
	"unicode"
)

// ID_Start and ID_Continue per UAX #31, used for RegExpIdentifierName in
// group names. ECMAScript additionally allows '$', '_' and ZWNJ/ZWJ; the
// lexer checks those separately.
func isIDStart(c rune) bool {
	return unicode.In(c, unicode.L, unicode.Nl, unicode.Other_ID_Start) &&
		!unicode.In(c, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

func isIDContinue(c rune) bool {
	return isIDStart(c) ||
		unicode.In(c, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

func setFromRangeTable(rt *unicode.RangeTable) *CodePointSet {
	s := NewCodePointSet()
	for _, r := range rt.R16 {
		addStridedRange(s, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	for _, r := range rt.R32 {
		addStridedRange(s, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	return s
}

func addStridedRange(s *CodePointSet, lo, hi, stride rune) {
	if stride == 1 {
		s.AddRange(CodePointRange{Lo: lo, Hi: hi})
		return
	}
	for c := lo; c <= hi; c += stride {
		s.AddRange(singleRange(c))
	}
}

// resolveUnicodeProperty is the default resolver behind \p{...}. It
// accepts general category values and aliases ("L", "Lu", ...) with an
// optional "General_Category="/"gc=" prefix, script names with a
// "Script="/"sc=" prefix or bare, and the binary property names of the
// stdlib unicode.Properties table (e.g. "White_Space").
func resolveUnicodeProperty(spec string) (*CodePointSet, error) {
	name := spec
	tables := []map[string]*unicode.RangeTable{unicode.Categories, unicode.Scripts, unicode.Properties}
	if cut, ok := strings.CutPrefix(spec, "General_Category="); ok {
		name = cut
		tables = tables[:1]
	} else if cut, ok := strings.CutPrefix(spec, "gc="); ok {
		name = cut
		tables = tables[:1]
	} else if cut, ok := strings.CutPrefix(spec, "Script="); ok {
		name = cut
		tables = tables[1:2]
	} else if cut, ok := strings.CutPrefix(spec, "sc="); ok {
		name = cut
		tables = tables[1:2]
	}
	for _, table := range tables {
		if rt, ok := table[name]; ok {
			return setFromRangeTable(rt), nil
		}
	}
	return nil, fmt.Errorf("unknown Unicode property %q", spec)
}
