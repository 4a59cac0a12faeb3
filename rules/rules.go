// Package rules holds the grammar-symbol and character-class values that
// the parse and lex tables are keyed by.
package rules

import (
	"fmt"
	"math"
	"sort"

	c "github.com/dtromb/collections"
)

// Symbol identifies one grammar symbol.  Auxiliary symbols are synthesized
// by the grammar builder rather than declared by the user, and live in a
// disjoint identifier namespace.
type Symbol struct {
	Name      string
	Auxiliary bool
}

func NewSymbol(name string) Symbol {
	return Symbol{Name: name}
}

func NewAuxiliarySymbol(name string) Symbol {
	return Symbol{Name: name, Auxiliary: true}
}

// CompareTo orders regular symbols before auxiliary ones, then by name.
func (s Symbol) CompareTo(o c.Comparable) int8 {
	t := o.(Symbol)
	if !s.Auxiliary && t.Auxiliary {
		return -1
	}
	if s.Auxiliary && !t.Auxiliary {
		return 1
	}
	if s.Name < t.Name {
		return -1
	}
	if s.Name > t.Name {
		return 1
	}
	return 0
}

func (s Symbol) String() string {
	if s.Auxiliary {
		return "`" + s.Name
	}
	return s.Name
}

// Bounds of the character code domain.
const (
	MinChar rune = 0
	MaxChar rune = math.MaxInt32
)

// CharacterRange is a closed interval of character codes.
type CharacterRange struct {
	Least    rune
	Greatest rune
}

func (cr CharacterRange) Test(x rune) bool {
	return cr.Least <= x && x <= cr.Greatest
}

func (cr CharacterRange) String() string {
	if cr.Least == cr.Greatest {
		return fmt.Sprintf("%d", cr.Least)
	}
	return fmt.Sprintf("%d-%d", cr.Least, cr.Greatest)
}

// CharacterSet is a union of character ranges.  The ranges held by a set
// are always regularized: sorted by lower bound, non-overlapping and
// non-adjacent, so two sets match the same characters iff their range
// slices are equal.
type CharacterSet struct {
	ranges []CharacterRange
}

// NewCharacterSet regularizes the given ranges into a set.
func NewCharacterSet(ranges ...CharacterRange) CharacterSet {
	rs := make([]CharacterRange, 0, len(ranges))
	for _, r := range ranges {
		if r.Least > r.Greatest {
			panic("character range least value may not be greater than greatest")
		}
		rs = append(rs, r)
	}
	return CharacterSet{ranges: regularizeRanges(rs)}
}

func (cs CharacterSet) NumRanges() int {
	return len(cs.ranges)
}

func (cs CharacterSet) Range(idx int) CharacterRange {
	if idx < 0 || idx >= len(cs.ranges) {
		panic("character range index out of range")
	}
	return cs.ranges[idx]
}

func (cs CharacterSet) Ranges() []CharacterRange {
	res := make([]CharacterRange, len(cs.ranges))
	copy(res, cs.ranges)
	return res
}

func (cs CharacterSet) Empty() bool {
	return len(cs.ranges) == 0
}

func (cs CharacterSet) Test(x rune) bool {
	idx := sort.Search(len(cs.ranges), func(n int) bool {
		return cs.ranges[n].Greatest >= x
	})
	return idx < len(cs.ranges) && cs.ranges[idx].Test(x)
}

func (cs CharacterSet) Equals(o CharacterSet) bool {
	if len(cs.ranges) != len(o.ranges) {
		return false
	}
	for i, r := range cs.ranges {
		if o.ranges[i] != r {
			return false
		}
	}
	return true
}

// Complement returns the set of all character codes not in cs.
func (cs CharacterSet) Complement() CharacterSet {
	if len(cs.ranges) == 0 {
		return CharacterSet{ranges: []CharacterRange{{MinChar, MaxChar}}}
	}
	var res []CharacterRange
	next := MinChar
	for _, r := range cs.ranges {
		if r.Least > next {
			res = append(res, CharacterRange{next, r.Least - 1})
		}
		if r.Greatest == MaxChar {
			return CharacterSet{ranges: res}
		}
		next = r.Greatest + 1
	}
	res = append(res, CharacterRange{next, MaxChar})
	return CharacterSet{ranges: res}
}

// MostCompactRepresentation selects whichever of the set or its complement
// needs fewer range comparisons.  The second return is true when the direct
// form was chosen.  Ties go to the direct form.
func (cs CharacterSet) MostCompactRepresentation() (CharacterSet, bool) {
	comp := cs.Complement()
	if len(comp.ranges) < len(cs.ranges) {
		return comp, false
	}
	return cs, true
}

func (cs CharacterSet) String() string {
	buf := []byte{'['}
	for i, r := range cs.ranges {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, r.String()...)
	}
	return string(append(buf, ']'))
}

type leastSortedRanges []CharacterRange

func (lsr leastSortedRanges) Len() int           { return len(lsr) }
func (lsr leastSortedRanges) Less(i, j int) bool { return lsr[i].Least < lsr[j].Least }
func (lsr leastSortedRanges) Swap(i, j int)      { lsr[i], lsr[j] = lsr[j], lsr[i] }

// regularizeRanges sorts the ranges by lower bound and merges any that
// overlap or are adjacent.
func regularizeRanges(ranges []CharacterRange) []CharacterRange {
	if len(ranges) == 0 {
		return nil
	}
	lSort := leastSortedRanges(make([]CharacterRange, len(ranges)))
	copy(lSort, ranges)
	sort.Sort(lSort)
	var res []CharacterRange
	lidx := 0
	for lidx < len(lSort) {
		lRange := lSort[lidx]
		lidx++
		for lidx < len(lSort) && (lRange.Greatest == MaxChar || lSort[lidx].Least-1 <= lRange.Greatest) {
			// The intervals overlap or touch; merge them.
			if lSort[lidx].Greatest > lRange.Greatest {
				lRange.Greatest = lSort[lidx].Greatest
			}
			lidx++
		}
		res = append(res, lRange)
	}
	return res
}
