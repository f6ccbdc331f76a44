package ecmalex

import (
	"fmt"
	"slices"
	"strings"
)

// MaxCodePoint is the upper bound of the Unicode code-point domain.
const MaxCodePoint rune = 0x10ffff

// CodePointRange is an inclusive interval [Lo, Hi] of Unicode code points.
// A single code point is represented as Lo == Hi. Ranges are ordered by
// (Lo, Hi).
type CodePointRange struct {
	Lo rune
	Hi rune
}

func singleRange(c rune) CodePointRange {
	return CodePointRange{Lo: c, Hi: c}
}

// rangeFromUnordered builds a range from two bounds in either order.
func rangeFromUnordered(a, b rune) CodePointRange {
	if a > b {
		return CodePointRange{Lo: b, Hi: a}
	}
	return CodePointRange{Lo: a, Hi: b}
}

func (r CodePointRange) contains(o CodePointRange) bool {
	return r.Lo <= o.Lo && o.Hi <= r.Hi
}

func (r CodePointRange) containsCodePoint(c rune) bool {
	return r.Lo <= c && c <= r.Hi
}

func (r CodePointRange) intersects(o CodePointRange) bool {
	return r.Lo <= o.Hi && o.Lo <= r.Hi
}

// intersection returns the overlap of r and o; ok is false if they are
// disjoint.
func (r CodePointRange) intersection(o CodePointRange) (CodePointRange, bool) {
	lo := max(r.Lo, o.Lo)
	hi := min(r.Hi, o.Hi)
	if lo > hi {
		return CodePointRange{}, false
	}
	return CodePointRange{Lo: lo, Hi: hi}, true
}

// move shifts the range by delta. Callers must not move a range outside
// [0, MaxCodePoint]; the fold tables are constructed to never do so.
func (r CodePointRange) move(delta rune) CodePointRange {
	return CodePointRange{Lo: r.Lo + delta, Hi: r.Hi + delta}
}

// rightOf reports whether r lies entirely to the right of o. Used for
// early exits when scanning sorted tables.
func (r CodePointRange) rightOf(o CodePointRange) bool {
	return r.Lo > o.Hi
}

func (r CodePointRange) compareTo(o CodePointRange) int {
	if r.Lo != o.Lo {
		return int(r.Lo - o.Lo)
	}
	return int(r.Hi - o.Hi)
}

func (r CodePointRange) codePointRange() CodePointRange {
	return r
}

func (r CodePointRange) String() string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("%04x", r.Lo)
	}
	return fmt.Sprintf("%04x-%04x", r.Lo, r.Hi)
}

// rangeBearer is anything carrying a code-point range: plain ranges and
// case-fold table entries. The binary-search helpers below work on sorted,
// disjoint slices of either.
type rangeBearer interface {
	codePointRange() CodePointRange
}

// searchRange binary-searches entries (sorted by (Lo, Hi)) for a range
// comparing equal to r. It returns the index of the exact match, or the
// insertion point and false.
func searchRange[T rangeBearer](entries []T, r CodePointRange) (int, bool) {
	return slices.BinarySearchFunc(entries, r, func(e T, t CodePointRange) int {
		return e.codePointRange().compareTo(t)
	})
}

// firstIntersecting returns the index of the first entry intersecting r,
// given the insertion point reported by searchRange. ok is false if no
// entry intersects r. Only the entry left of the insertion point can start
// before r, so a single extra probe suffices.
func firstIntersecting[T rangeBearer](entries []T, r CodePointRange, insertionPoint int) (int, bool) {
	if insertionPoint > 0 && entries[insertionPoint-1].codePointRange().intersects(r) {
		return insertionPoint - 1, true
	}
	if insertionPoint < len(entries) && entries[insertionPoint].codePointRange().intersects(r) {
		return insertionPoint, true
	}
	return insertionPoint, false
}

// rangesSortedAndDisjoint reports whether entries are in strictly
// ascending order without overlaps.
func rangesSortedAndDisjoint[T rangeBearer](entries []T) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i].codePointRange().Lo <= entries[i-1].codePointRange().Hi {
			return false
		}
	}
	return true
}

// CodePointSet is an ordered sequence of disjoint code-point ranges.
// The zero value is the empty set.
type CodePointSet struct {
	ranges []CodePointRange
}

// NewCodePointSet returns an empty set.
func NewCodePointSet() *CodePointSet {
	return &CodePointSet{}
}

func pointSet(points ...rune) *CodePointSet {
	s := &CodePointSet{}
	for _, c := range points {
		s.AddRange(singleRange(c))
	}
	return s
}

func rangeSet(ranges ...CodePointRange) *CodePointSet {
	s := &CodePointSet{}
	for _, r := range ranges {
		s.AddRange(r)
	}
	return s
}

// Ranges returns the ranges of the set in ascending order. The slice is
// owned by the set and must not be mutated.
func (s *CodePointSet) Ranges() []CodePointRange {
	return s.ranges
}

// AddRange inserts r, merging with overlapping or adjacent ranges so that
// the set stays sorted and disjoint.
func (s *CodePointSet) AddRange(r CodePointRange) {
	pos, _ := searchRange(s.ranges, r)
	// Ranges at pos-1 and onwards may overlap or abut r; widen r over all
	// of them and splice it in.
	lo := pos
	if lo > 0 && s.ranges[lo-1].Hi+1 >= r.Lo {
		lo--
	}
	hi := lo
	for hi < len(s.ranges) && s.ranges[hi].Lo <= r.Hi+1 {
		r.Lo = min(r.Lo, s.ranges[hi].Lo)
		r.Hi = max(r.Hi, s.ranges[hi].Hi)
		hi++
	}
	s.ranges = slices.Replace(s.ranges, lo, hi, r)
}

// AddSet unions other into s.
func (s *CodePointSet) AddSet(other *CodePointSet) {
	if len(s.ranges) == 0 {
		s.ranges = slices.Clone(other.ranges)
		return
	}
	for _, r := range other.ranges {
		s.AddRange(r)
	}
}

// Copy returns an independent copy of the set.
func (s *CodePointSet) Copy() *CodePointSet {
	return &CodePointSet{ranges: slices.Clone(s.ranges)}
}

// Inverse returns the complement of the set over [0, MaxCodePoint].
func (s *CodePointSet) Inverse() *CodePointSet {
	inv := &CodePointSet{}
	var next rune
	for _, r := range s.ranges {
		if r.Lo > next {
			inv.ranges = append(inv.ranges, CodePointRange{Lo: next, Hi: r.Lo - 1})
		}
		next = r.Hi + 1
	}
	if next <= MaxCodePoint {
		inv.ranges = append(inv.ranges, CodePointRange{Lo: next, Hi: MaxCodePoint})
	}
	return inv
}

// Intersect returns the intersection of s and other.
func (s *CodePointSet) Intersect(other *CodePointSet) *CodePointSet {
	res := &CodePointSet{}
	i := 0
	j := 0
	for i < len(s.ranges) && j < len(other.ranges) {
		if in, ok := s.ranges[i].intersection(other.ranges[j]); ok {
			res.ranges = append(res.ranges, in)
		}
		if s.ranges[i].Hi < other.ranges[j].Hi {
			i++
		} else {
			j++
		}
	}
	return res
}

// ContainsCodePoint reports whether c is in the set.
func (s *CodePointSet) ContainsCodePoint(c rune) bool {
	pos, found := searchRange(s.ranges, singleRange(c))
	if found {
		return true
	}
	if pos > 0 && s.ranges[pos-1].containsCodePoint(c) {
		return true
	}
	return pos < len(s.ranges) && s.ranges[pos].containsCodePoint(c)
}

// MatchesSingleCodePoint reports whether the set consists of exactly one
// code point.
func (s *CodePointSet) MatchesSingleCodePoint() bool {
	return len(s.ranges) == 1 && s.ranges[0].Lo == s.ranges[0].Hi
}

func (s *CodePointSet) String() string {
	var out strings.Builder
	out.WriteByte('[')
	for i, r := range s.ranges {
		if i > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(r.String())
	}
	out.WriteByte(']')
	return out.String()
}
