package perm

import (
	"cmp"
	"slices"
)

// Normalize rewrites d in place into the canonical form of the permutation
// it describes, so that any two decompositions of the same permutation
// become Equal once both are normalized.
//
// The canonical form is:
//  1. every cycle is rotated to start at its largest element;
//  2. cycles are ordered by that leading element, smallest first.
//
// Fixed points follow the same rules as longer cycles. Normalize is
// idempotent and runs in O(N + C log C) for C cycles.
//
// Normalize needs exclusive access to d. Cycle views taken from d before
// the call are invalid afterwards.
func (d *Decomposition) Normalize() {
	type run struct {
		start  int // offset of the cycle in the old enumeration
		length int
		lead   int // position of the maximum within the cycle
	}

	runs := make([]run, len(d.starts))
	for k := range d.starts {
		start, end := d.bounds(k)
		lead := start
		for p := start + 1; p < end; p++ {
			if d.enumeration[p] > d.enumeration[lead] {
				lead = p
			}
		}
		runs[k] = run{start: start, length: end - start, lead: lead - start}
	}

	slices.SortFunc(runs, func(a, b run) int {
		return cmp.Compare(d.enumeration[a.start+a.lead], d.enumeration[b.start+b.lead])
	})

	out := make([]int, len(d.enumeration))
	i := 0
	for k, r := range runs {
		d.starts[k] = i
		for j := 0; j < r.length; j++ {
			out[i] = d.enumeration[r.start+(r.lead+j)%r.length]
			i++
		}
	}
	copy(d.enumeration, out)
}

// Normalized returns a normalized copy of d and leaves d unchanged.
func (d *Decomposition) Normalized() *Decomposition {
	out := d.Clone()
	out.Normalize()
	return out
}

// IsNormalized reports whether d is already in the canonical form produced
// by Normalize.
func (d *Decomposition) IsNormalized() bool {
	prev := -1
	for c := range d.Cycles() {
		lead := c.First()
		if lead <= prev || slices.Max(c.elems) != lead {
			return false
		}
		prev = lead
	}
	return true
}
