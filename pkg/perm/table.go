package perm

import (
	"fmt"
	"slices"

	"github.com/matzehuels/cyclekit/pkg/errors"
)

// Table is a permutation of [0, N) stored as its image array: the value at
// index i is the image of i.
//
// A Table is immutable. Operations that produce a different permutation
// return a new Table. The zero value is the empty permutation (N = 0).
type Table struct {
	table []int
}

// New returns the table with the given images after checking that values
// is a bijection on [0, n).
//
// New is the entry point for values that come from outside the program. It
// returns an INVALID_LENGTH error when len(values) != n and NOT_BIJECTIVE
// when a value is out of range or repeated. The values slice is copied.
func New(n int, values []int) (Table, error) {
	if err := errors.ValidateTable(n, values); err != nil {
		return Table{}, err
	}
	return Table{table: slices.Clone(values)}, nil
}

// MustNew is like New with n = len(values), but panics if values is not a
// bijection. It simplifies literals in tests and examples.
func MustNew(values ...int) Table {
	t, err := New(len(values), values)
	if err != nil {
		panic("perm: " + err.Error())
	}
	return t
}

// Identity returns the identity permutation of size n.
func Identity(n int) Table {
	checkSize(n)
	return Table{table: Seq(n)}
}

// CyclicGenerator returns the n-cycle i → i+1 mod n.
func CyclicGenerator(n int) Table {
	checkSize(n)
	table := make([]int, n)
	for i := range table {
		table[i] = (i + 1) % n
	}
	return Table{table: table}
}

// Transposition returns the permutation of size n that swaps i and j and
// fixes every other element. If i == j the result is the identity.
//
// Transposition panics if i or j is outside [0, n).
func Transposition(n, i, j int) Table {
	return NewBuilder(n).Swap(i, j).Build()
}

// Len returns N, the size of the domain.
func (t Table) Len() int {
	return len(t.table)
}

// At returns the image of i. It panics if i is outside [0, N).
func (t Table) At(i int) int {
	return t.table[i]
}

// Apply returns the image of x mod N.
//
// Values outside [0, N), including negative ones, are reduced modulo N
// first, so a table can be reused across repeated copies of the index
// space. Apply panics on the empty permutation.
func (t Table) Apply(x int) int {
	n := len(t.table)
	if n == 0 {
		panic("perm: apply on empty permutation")
	}
	return t.table[pmod(x, n)]
}

// Slice returns a copy of the image array.
func (t Table) Slice() []int {
	return slices.Clone(t.table)
}

// Equal reports whether t and u are the same permutation.
func (t Table) Equal(u Table) bool {
	return slices.Equal(t.table, u.table)
}

// IsIdentity reports whether t fixes every element.
func (t Table) IsIdentity() bool {
	for i, x := range t.table {
		if i != x {
			return false
		}
	}
	return true
}

// String returns the one-line form, e.g. "[1 3 2 0]".
func (t Table) String() string {
	return fmt.Sprint(t.table)
}

// Compose returns the permutation c with c[i] = a[b[i]].
//
// Read as functions, c applies b first and then a (c = a∘b). The order
// matters: composition is associative but not commutative.
//
// Compose panics if a and b have different sizes.
func Compose(a, b Table) Table {
	if len(a.table) != len(b.table) {
		panic(fmt.Sprintf("perm: compose size mismatch: %d and %d", len(a.table), len(b.table)))
	}
	c := make([]int, len(b.table))
	for i, x := range b.table {
		c[i] = a.table[x]
	}
	return Table{table: c}
}

// Invert returns the inverse permutation: Invert(a)[a[i]] = i.
func Invert(a Table) Table {
	inv := make([]int, len(a.table))
	for i, x := range a.table {
		inv[x] = i
	}
	return Table{table: inv}
}

// Power returns t composed with itself k times. Negative k gives powers of
// the inverse and k = 0 gives the identity.
//
// Power runs in O(N) regardless of k: each element moves k steps along its
// own cycle.
func (t Table) Power(k int) Table {
	table := make([]int, len(t.table))
	for c := range Decompose(t).Cycles() {
		n := c.Len()
		shift := pmod(k, n)
		for j := 0; j < n; j++ {
			table[c.At(j)] = c.At((j + shift) % n)
		}
	}
	return Table{table: table}
}

// Builder assembles a Table by swapping image entries, starting from the
// identity. Every swap keeps the array a bijection.
//
// A Builder is not safe for concurrent use. Build copies the array, so the
// builder may keep being used afterwards.
type Builder struct {
	table []int
}

// NewBuilder returns a builder for a permutation of size n, initialized to
// the identity.
func NewBuilder(n int) *Builder {
	checkSize(n)
	return &Builder{table: Seq(n)}
}

// Swap exchanges the images of i and j. It panics if either index is outside
// [0, N).
func (b *Builder) Swap(i, j int) *Builder {
	n := len(b.table)
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(fmt.Sprintf("perm: swap (%d %d) outside [0, %d)", i, j, n))
	}
	b.table[i], b.table[j] = b.table[j], b.table[i]
	return b
}

// Build returns the permutation assembled so far.
func (b *Builder) Build() Table {
	return Table{table: slices.Clone(b.table)}
}

func checkSize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("perm: negative size %d", n))
	}
}

// pmod returns the non-negative remainder of x divided by n.
func pmod(x, n int) int { return (x%n + n) % n }
