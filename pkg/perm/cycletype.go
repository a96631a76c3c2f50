package perm

import (
	"cmp"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/matzehuels/cyclekit/pkg/errors"
)

// CycleType counts the cycles of a permutation by length: Count(k) is the
// number of cycles of length k. Internally counts[k-1] holds that number,
// for k in [1, N].
//
// Two permutations of the same size are conjugate in the symmetric group if
// and only if their cycle types are equal, so the cycle type identifies a
// conjugacy class. A CycleType is immutable.
type CycleType struct {
	counts []int
}

// CycleType returns the cycle type of d.
func (d *Decomposition) CycleType() CycleType {
	counts := make([]int, len(d.enumeration))
	for c := range d.Cycles() {
		counts[c.Len()-1]++
	}
	return CycleType{counts: counts}
}

// TypeOf returns the cycle type of t.
func TypeOf(t Table) CycleType {
	return Decompose(t).CycleType()
}

// Conjugate reports whether a and b are conjugate, that is whether some
// table g satisfies b = g·a·g⁻¹. Tables of different sizes are never
// conjugate.
func Conjugate(a, b Table) bool {
	return a.Len() == b.Len() && TypeOf(a).Equal(TypeOf(b))
}

// Conjugator returns a table g with b = g·a·g⁻¹, so that
// Compose(Compose(g, a), Invert(g)) equals b. It reports false when a and b
// are not conjugate.
//
// g maps the cycles of a onto the cycles of b of the same length, element
// by element in cycle order.
func Conjugator(a, b Table) (Table, bool) {
	if !Conjugate(a, b) {
		return Table{}, false
	}
	ca, cb := cyclesByLength(a), cyclesByLength(b)
	g := make([]int, a.Len())
	for k, c := range ca {
		for j, x := range c {
			g[x] = cb[k][j]
		}
	}
	return Table{table: g}, true
}

func cyclesByLength(t Table) [][]int {
	lists := Decompose(t).Lists()
	slices.SortStableFunc(lists, func(x, y []int) int { return cmp.Compare(len(x), len(y)) })
	return lists
}

// NewCycleType builds a cycle type from counts indexed by length−1. The
// counts must be non-negative and satisfy Σ (k+1)·counts[k] = len(counts).
func NewCycleType(counts []int) (CycleType, error) {
	n := len(counts)
	if err := errors.ValidateSize(n); err != nil {
		return CycleType{}, err
	}
	total := 0
	for k, m := range counts {
		if m < 0 {
			return CycleType{}, errors.New(errors.ErrCodeInvalidInput, "negative count %d for length %d", m, k+1)
		}
		total += (k + 1) * m
	}
	if total != n {
		return CycleType{}, errors.New(errors.ErrCodeInvalidLength, "cycle lengths sum to %d, want %d", total, n)
	}
	return CycleType{counts: slices.Clone(counts)}, nil
}

// typeFromPartition builds the cycle type whose cycle lengths are parts.
func typeFromPartition(n int, parts []int) CycleType {
	counts := make([]int, n)
	for _, p := range parts {
		counts[p-1]++
	}
	return CycleType{counts: counts}
}

// Len returns N, the size of the permuted set.
func (ct CycleType) Len() int {
	return len(ct.counts)
}

// Count returns the number of cycles of the given length, or 0 for lengths
// outside [1, N].
func (ct CycleType) Count(length int) int {
	if length < 1 || length > len(ct.counts) {
		return 0
	}
	return ct.counts[length-1]
}

// Counts returns a copy of the counts, indexed by length−1.
func (ct CycleType) Counts() []int {
	return slices.Clone(ct.counts)
}

// Equal reports whether ct and o describe the same conjugacy class.
func (ct CycleType) Equal(o CycleType) bool {
	return slices.Equal(ct.counts, o.counts)
}

// NumCycles returns the total number of cycles, fixed points included.
func (ct CycleType) NumCycles() int {
	total := 0
	for _, m := range ct.counts {
		total += m
	}
	return total
}

// FixedPoints returns the number of cycles of length one.
func (ct CycleType) FixedPoints() int {
	return ct.Count(1)
}

// Sign returns +1 for even permutations and −1 for odd ones. A permutation
// with C cycles on N elements is a product of N−C transpositions.
func (ct CycleType) Sign() int {
	if (len(ct.counts)-ct.NumCycles())%2 == 0 {
		return 1
	}
	return -1
}

// Order returns the order of the permutation: the least common multiple of
// its cycle lengths. The identity, including the empty permutation, has
// order 1.
func (ct CycleType) Order() *big.Int {
	order := big.NewInt(1)
	var gcd, length big.Int
	for k, m := range ct.counts {
		if m == 0 {
			continue
		}
		length.SetInt64(int64(k + 1))
		gcd.GCD(nil, nil, order, &length)
		order.Mul(order, length.Quo(&length, &gcd))
	}
	return order
}

// Partition returns the cycle lengths in non-increasing order, one entry
// per cycle.
func (ct CycleType) Partition() []int {
	parts := make([]int, 0, ct.NumCycles())
	for k := len(ct.counts) - 1; k >= 0; k-- {
		for range ct.counts[k] {
			parts = append(parts, k+1)
		}
	}
	return parts
}

// ClassSize returns the number of permutations with this cycle type:
// N! / ∏ k^m·m! over the lengths k that occur m times.
func (ct CycleType) ClassSize() *big.Int {
	size := new(big.Int).MulRange(1, int64(len(ct.counts)))
	var denom, f big.Int
	denom.SetInt64(1)
	for k, m := range ct.counts {
		if m == 0 {
			continue
		}
		f.Exp(big.NewInt(int64(k+1)), big.NewInt(int64(m)), nil)
		denom.Mul(&denom, &f)
		f.MulRange(1, int64(m))
		denom.Mul(&denom, &f)
	}
	return size.Quo(size, &denom)
}

// Representative returns a permutation with this cycle type: the cycles,
// longest first, cover consecutive runs of elements starting at 0.
func (ct CycleType) Representative() Table {
	table := make([]int, len(ct.counts))
	start := 0
	for _, length := range ct.Partition() {
		for j := 0; j < length; j++ {
			table[start+j] = start + (j+1)%length
		}
		start += length
	}
	return Table{table: table}
}

// String returns the counts, e.g. "[1 0 1 0]".
func (ct CycleType) String() string {
	return fmt.Sprint(ct.counts)
}

// Notation returns the exponent notation of the class with lengths in
// increasing order, e.g. "1^1 3^1". The empty permutation is written "-".
func (ct CycleType) Notation() string {
	var parts []string
	for k, m := range ct.counts {
		if m > 0 {
			parts = append(parts, fmt.Sprintf("%d^%d", k+1, m))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
