package perm

import (
	"iter"
	"math/rand/v2"
)

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// Note that factorials grow extremely fast: 21! already overflows int64.
// Use [CycleType.ClassSize] or math/big for exact large counts.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// All yields every permutation of size n exactly once using Heap's
// algorithm. Consecutive tables differ by a single transposition, so the
// order is not lexicographic. The first table is the identity.
//
// For n = 0, All yields the empty permutation once.
func All(n int) iter.Seq[Table] {
	return func(yield func(Table) bool) {
		b := NewBuilder(n)
		if !yield(b.Build()) {
			return
		}
		state := make([]int, n)
		for i := 0; i < n; {
			if state[i] < i {
				if i&1 == 0 {
					b.Swap(0, i)
				} else {
					b.Swap(state[i], i)
				}
				if !yield(b.Build()) {
					return
				}
				state[i]++
				i = 0
			} else {
				state[i] = 0
				i++
			}
		}
	}
}

// Generate returns permutations of size n in the order of [All].
//
// If limit > 0, Generate returns at most limit permutations.
// If limit <= 0, Generate returns all n! permutations.
//
// For n >= 13, the number of permutations exceeds billions. Always use a limit
// when n is large, or your program will exhaust memory.
func Generate(n, limit int) []Table {
	capacity := Factorial(min(n, 12))
	if limit > 0 {
		capacity = min(capacity, limit)
	}
	result := make([]Table, 0, capacity)
	for t := range All(n) {
		result = append(result, t)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result
}

// Random returns a permutation of size n drawn uniformly from all n!
// permutations, using the Fisher–Yates shuffle driven by rng.
func Random(rng *rand.Rand, n int) Table {
	b := NewBuilder(n)
	for i := n - 1; i > 0; i-- {
		b.Swap(i, rng.IntN(i+1))
	}
	return b.Build()
}

// RandomSeeded is Random with a PCG generator seeded by seed, so the same
// seed always yields the same permutation.
func RandomSeeded(seed uint64, n int) Table {
	return Random(rand.New(rand.NewPCG(seed, seed^0xdeadbeef)), n)
}

// ConjugacyClasses returns one cycle type per conjugacy class of the
// symmetric group on n elements. Classes are listed by their partitions in
// decreasing lexicographic order, so the n-cycle comes first and the
// identity last.
//
// The number of classes is the partition number p(n), which grows quickly
// but stays manageable (p(60) ≈ 10⁶).
func ConjugacyClasses(n int) []CycleType {
	checkSize(n)
	var classes []CycleType
	for parts := range partitions(n) {
		classes = append(classes, typeFromPartition(n, parts))
	}
	return classes
}

// partitions yields the integer partitions of n with non-increasing parts,
// in decreasing lexicographic order. The yielded slice is reused.
func partitions(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n == 0 {
			yield([]int{})
			return
		}
		parts := []int{n}
		for {
			if !yield(parts) {
				return
			}
			// Find the last part greater than one.
			k := len(parts) - 1
			ones := 0
			for k >= 0 && parts[k] == 1 {
				ones++
				k--
			}
			if k < 0 {
				return
			}
			// Decrease it and redistribute the remainder in parts no
			// larger than the new value.
			parts[k]--
			rest := ones + 1
			parts = parts[:k+1]
			for rest > 0 {
				p := min(parts[k], rest)
				parts = append(parts, p)
				rest -= p
			}
		}
	}
}
