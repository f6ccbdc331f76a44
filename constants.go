package ecmalex

// Predefined code-point sets backing '.' and the \s \d \w escapes and
// their negations. The negated variants are materialized up front so that
// parsePredefCharClass never allocates; all of them are effectively
// constant and must not be mutated.
var (
	lineTerminators = rangeSet(
		CodePointRange{0x000a, 0x000a},
		CodePointRange{0x000d, 0x000d},
		CodePointRange{0x2028, 0x2029},
	)

	dotSet    = lineTerminators.Inverse()
	dotAllSet = rangeSet(CodePointRange{0, MaxCodePoint})

	// WhiteSpace and LineTerminator per the ECMAScript spec.
	whiteSpaceSet = rangeSet(
		CodePointRange{0x0009, 0x000d},
		CodePointRange{0x0020, 0x0020},
		CodePointRange{0x00a0, 0x00a0},
		CodePointRange{0x1680, 0x1680},
		CodePointRange{0x2000, 0x200a},
		CodePointRange{0x2028, 0x2029},
		CodePointRange{0x202f, 0x202f},
		CodePointRange{0x205f, 0x205f},
		CodePointRange{0x3000, 0x3000},
		CodePointRange{0xfeff, 0xfeff},
	)
	nonWhiteSpaceSet = whiteSpaceSet.Inverse()

	// Before Unicode 6.3, U+180E MONGOLIAN VOWEL SEPARATOR was classified
	// as white space. Options.U180EWhitespace restores that behavior.
	legacyWhiteSpaceSet    = union(whiteSpaceSet, pointSet(0x180e))
	legacyNonWhiteSpaceSet = legacyWhiteSpaceSet.Inverse()

	digitsSet    = rangeSet(CodePointRange{'0', '9'})
	nonDigitsSet = digitsSet.Inverse()

	wordCharsSet = rangeSet(
		CodePointRange{'0', '9'},
		CodePointRange{'A', 'Z'},
		CodePointRange{'_', '_'},
		CodePointRange{'a', 'z'},
	)
	nonWordCharsSet = wordCharsSet.Inverse()

	// Under u+i, case folding maps U+017F and U+212A into [a-z], which
	// makes them word characters as well.
	wordCharsUnicodeIgnoreCaseSet    = union(wordCharsSet, pointSet(0x017f, 0x212a))
	nonWordCharsUnicodeIgnoreCaseSet = wordCharsUnicodeIgnoreCaseSet.Inverse()
)

func union(a, b *CodePointSet) *CodePointSet {
	res := a.Copy()
	res.AddSet(b)
	return res
}
