package perm

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Cycle is a read-only view of one cycle of a [Decomposition], listed in
// successor order.
//
// A Cycle borrows the decomposition's storage. It stays valid until the
// decomposition is normalized; use Values for a copy that outlives that.
type Cycle struct {
	elems []int
}

// Len returns the number of elements in the cycle.
func (c Cycle) Len() int {
	return len(c.elems)
}

// At returns the i-th element of the listing. It panics if i is outside
// [0, Len()).
func (c Cycle) At(i int) int {
	return c.elems[i]
}

// First returns the element the listing starts from.
func (c Cycle) First() int {
	return c.elems[0]
}

// Values returns a copy of the elements in successor order.
func (c Cycle) Values() []int {
	return slices.Clone(c.elems)
}

// All yields the elements in successor order.
func (c Cycle) All() iter.Seq[int] {
	return slices.Values(c.elems)
}

// Contains reports whether x is an element of the cycle.
func (c Cycle) Contains(x int) bool {
	return slices.Contains(c.elems, x)
}

// String returns the cycle in parenthesized notation, e.g. "(0 1 3)".
func (c Cycle) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range c.elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(x))
	}
	sb.WriteByte(')')
	return sb.String()
}
