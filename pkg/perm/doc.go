// Package perm represents permutations of {0, …, N−1} as lookup tables and
// as cycle decompositions, and converts between the two.
//
// # Overview
//
// A permutation has two natural encodings:
//
//   - [Table]: the direct map, where t.At(i) is the image of i
//   - [Decomposition]: a partition of the domain into disjoint cycles
//
// Tables make composition, inversion and evaluation cheap. Decompositions
// expose the structure that classifies a permutation: the multiset of cycle
// lengths ([CycleType]) decides the conjugacy class, the order and the sign.
//
// # Tables
//
// Tables are immutable once built. Construct them with [Identity],
// [CyclicGenerator], [Transposition], a [Builder], [Random], or [New] for
// values that come from outside the program:
//
//	t, err := perm.New(4, []int{1, 3, 2, 0})
//	if err != nil {
//	    // length mismatch or not a bijection
//	}
//
// [Compose] follows the right-to-left convention: Compose(a, b) applies b
// first, then a, exactly like function composition a∘b.
//
// # Decompositions
//
// [Decompose] walks each orbit starting from the lowest unvisited element
// and stores every cycle contiguously in one flat buffer:
//
//	d := perm.Decompose(t)    // (0 1 3)(2)
//	for c := range d.Cycles() {
//	    fmt.Println(c.Len(), c)
//	}
//	back := d.Table()         // equal to t
//
// Two decompositions of the same permutation can list a cycle from a
// different starting element or list the cycles in a different order. Call
// [Decomposition.Normalize] on both before comparing them with
// [Decomposition.Equal].
//
// # Concurrency
//
// Tables and cycle types may be shared freely between goroutines. A
// Decomposition may be read concurrently, but Normalize rewrites it in
// place and must not run while any other goroutine reads it or holds a
// [Cycle] taken from it.
//
// # Errors
//
// Programmer errors (an out-of-range transposition, composing tables of
// different sizes) panic. Untrusted input is checked by [New] and
// [FromCycles], which return coded errors from
// github.com/matzehuels/cyclekit/pkg/errors.
package perm
