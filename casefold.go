package ecmalex

// The fold tables map each code point to its case-insensitive equivalents.
// Rather than one entry per code point, rules cover whole ranges and come
// in three shapes: a constant delta applied to the range, alternating
// upper/lower pairs, and direct mappings into one of the small equivalence
// classes in foldEquivalences.
type caseFoldKind uint8

const (
	foldDelta caseFoldKind = iota
	foldAlternating
	foldDirect
)

type caseFoldEntry struct {
	rng     CodePointRange
	kind    caseFoldKind
	delta   rune          // foldDelta
	aligned bool          // foldAlternating
	set     *CodePointSet // foldDirect
}

func (e caseFoldEntry) codePointRange() CodePointRange {
	return e.rng
}

// alt returns the alternating-case partner of i. In an aligned range the
// pairs start on even code points, otherwise on odd ones.
func (e caseFoldEntry) alt(i rune) rune {
	if e.aligned {
		return i ^ 1
	}
	return ((i - 1) ^ 1) + 1
}

// apply expands sub, a sub-range of e.rng, into result.
func (e caseFoldEntry) apply(result *CodePointSet, sub CodePointRange) {
	switch e.kind {
	case foldDelta:
		result.AddRange(sub.move(e.delta))
	case foldAlternating:
		altRange := rangeFromUnordered(e.alt(sub.Lo), e.alt(sub.Hi))
		// A sub-range spanning both halves of its pairs already contains
		// its partners.
		if !sub.contains(altRange) {
			result.AddRange(altRange)
		}
	case foldDirect:
		// The whole equivalence class applies no matter which part of
		// e.rng was hit.
		result.AddSet(e.set)
	}
}

func deltaP(lo, hi, delta rune) caseFoldEntry {
	return caseFoldEntry{rng: CodePointRange{Lo: lo, Hi: hi}, kind: foldDelta, delta: delta}
}

func deltaN(lo, hi, delta rune) caseFoldEntry {
	return caseFoldEntry{rng: CodePointRange{Lo: lo, Hi: hi}, kind: foldDelta, delta: -delta}
}

func altAL(lo, hi rune) caseFoldEntry {
	return caseFoldEntry{rng: CodePointRange{Lo: lo, Hi: hi}, kind: foldAlternating, aligned: true}
}

func altUL(lo, hi rune) caseFoldEntry {
	return caseFoldEntry{rng: CodePointRange{Lo: lo, Hi: hi}, kind: foldAlternating}
}

func direct(lo, hi rune, class int) caseFoldEntry {
	return caseFoldEntry{rng: CodePointRange{Lo: lo, Hi: hi}, kind: foldDirect, set: foldEquivalences[class]}
}

// foldTableWellFormed reports whether a fold table satisfies the invariant
// both lookups rely on: entries sorted ascending and pairwise disjoint.
// A violation is a defect in the table data, so this is checked by tests
// rather than at lex time.
func foldTableWellFormed(table []caseFoldEntry) bool {
	return rangesSortedAndDisjoint(table)
}

// ApplyCaseFold returns set expanded with every code point that compares
// equal to a member of set under case-insensitive matching. The unicode
// parameter selects between the Simple Case Folding rules of the u flag
// and the legacy Annex B canonicalization. Code points of the input are
// never removed.
func ApplyCaseFold(set *CodePointSet, unicode bool) *CodePointSet {
	table := nonUnicodeFoldTable
	if unicode {
		table = unicodeFoldTable
	}
	result := set.Copy()
	for _, r := range set.Ranges() {
		pos, found := searchRange(table, r)
		if found {
			// Fast path: single-character classes usually hit an entry
			// exactly.
			table[pos].apply(result, r)
			continue
		}
		first, ok := firstIntersecting(table, r, pos)
		if !ok {
			continue
		}
		for i := first; i < len(table); i++ {
			if table[i].rng.rightOf(r) {
				break
			}
			if in, ok := r.intersection(table[i].rng); ok {
				table[i].apply(result, in)
			}
		}
	}
	return result
}
