package perm

import (
	"iter"
	"slices"
	"strings"

	"github.com/matzehuels/cyclekit/pkg/errors"
)

// Decomposition is a permutation written as disjoint cycles.
//
// All N elements live in one flat buffer, the enumeration. Each cycle
// occupies a contiguous run of it, listed in successor order: the element
// after x in a run is the image of x, and the first element is the image of
// the last. starts holds the offset of every run in increasing order; a run
// ends where the next one starts, or at N for the last.
//
// Equal compares representations, not permutations. Two decompositions of
// one permutation that list cycles from different elements or in a
// different order are unequal until both are normalized.
type Decomposition struct {
	enumeration []int
	starts      []int
}

// Decompose returns the cycles of t.
//
// Cycles are discovered by following orbits, always seeding the next orbit
// at the lowest element not yet visited, so the result is deterministic: the
// first element of every cycle is its minimum and cycles appear in order of
// their minima. Fixed points become cycles of length one.
//
// Decompose runs in O(N) time and O(N) extra bits.
func Decompose(t Table) *Decomposition {
	n := len(t.table)
	d := &Decomposition{
		enumeration: make([]int, n),
		starts:      make([]int, 0, 1),
	}

	visited := newBitset(n)
	i := 0
	for seed := 0; seed < n; seed++ {
		if visited.get(seed) {
			continue
		}
		d.starts = append(d.starts, i)
		j := seed
		for {
			visited.set(j)
			d.enumeration[i] = j
			i++
			if j = t.table[j]; j == seed {
				break
			}
		}
	}
	return d
}

// FromCycles builds a decomposition of size n from cycles given in
// successor order. Cycles are stored exactly as given: no rotation and no
// reordering.
//
// The cycles must partition [0, n): fixed points have to be listed as
// cycles of length one. Errors carry the INVALID_CYCLE or INVALID_LENGTH
// code.
func FromCycles(n int, cycles [][]int) (*Decomposition, error) {
	if err := errors.ValidateCycles(n, cycles, false); err != nil {
		return nil, err
	}
	d := &Decomposition{
		enumeration: make([]int, 0, n),
		starts:      make([]int, 0, len(cycles)),
	}
	for _, c := range cycles {
		d.starts = append(d.starts, len(d.enumeration))
		d.enumeration = append(d.enumeration, c...)
	}
	return d, nil
}

// Table returns the permutation d describes. Every element is mapped to
// its successor within its cycle, so the result does not depend on where
// each cycle's listing starts or on the order of the cycles.
func (d *Decomposition) Table() Table {
	table := make([]int, len(d.enumeration))
	for c := range d.Cycles() {
		k := c.Len()
		for j := 0; j < k; j++ {
			table[c.At(j)] = c.At((j + 1) % k)
		}
	}
	return Table{table: table}
}

// Len returns N, the number of elements.
func (d *Decomposition) Len() int {
	return len(d.enumeration)
}

// NumCycles returns the number of cycles, fixed points included.
func (d *Decomposition) NumCycles() int {
	return len(d.starts)
}

// Cycle returns a view of the k-th cycle. It panics if k is outside
// [0, NumCycles()).
func (d *Decomposition) Cycle(k int) Cycle {
	start, end := d.bounds(k)
	return Cycle{elems: d.enumeration[start:end:end]}
}

// Cycles returns the cycles in storage order. The sequence can be ranged
// over any number of times and does not modify d.
//
// The yielded views share storage with d and are invalidated by Normalize.
func (d *Decomposition) Cycles() iter.Seq[Cycle] {
	return func(yield func(Cycle) bool) {
		for k := range d.starts {
			if !yield(d.Cycle(k)) {
				return
			}
		}
	}
}

// Enumeration returns a copy of the flat element buffer.
func (d *Decomposition) Enumeration() []int {
	return slices.Clone(d.enumeration)
}

// Starts returns a copy of the cycle start offsets.
func (d *Decomposition) Starts() []int {
	return slices.Clone(d.starts)
}

// Lists returns the cycles as independent slices, in storage order.
func (d *Decomposition) Lists() [][]int {
	out := make([][]int, 0, len(d.starts))
	for c := range d.Cycles() {
		out = append(out, c.Values())
	}
	return out
}

// Clone returns a deep copy of d.
func (d *Decomposition) Clone() *Decomposition {
	return &Decomposition{
		enumeration: slices.Clone(d.enumeration),
		starts:      slices.Clone(d.starts),
	}
}

// Equal reports whether d and o have identical representations: the same
// enumeration and the same cycle boundaries.
func (d *Decomposition) Equal(o *Decomposition) bool {
	return slices.Equal(d.enumeration, o.enumeration) && slices.Equal(d.starts, o.starts)
}

// String returns cycle notation including fixed points, e.g. "(0 1 3)(2)".
// The empty decomposition is written "()".
func (d *Decomposition) String() string {
	if len(d.starts) == 0 {
		return "()"
	}
	var sb strings.Builder
	for c := range d.Cycles() {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// bounds returns the half-open range of the k-th cycle in the enumeration.
func (d *Decomposition) bounds(k int) (int, int) {
	start := d.starts[k]
	if k+1 < len(d.starts) {
		return start, d.starts[k+1]
	}
	return start, len(d.enumeration)
}
