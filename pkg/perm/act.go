package perm

// Actable is implemented by values a permutation can act on. ActBy returns
// the image of the receiver under t and must not modify the receiver.
//
// Any slice of Actable elements is acted on element-wise by [ActAll], so
// implementing ActBy for a type is enough to act on sequences of it.
type Actable[T any] interface {
	ActBy(t Table) T
}

// Point is an element of the domain [0, N). A table acts on a point by
// evaluation, reducing the point modulo N as [Table.Apply] does.
type Point int

// ActBy returns t(p).
func (p Point) ActBy(t Table) Point {
	return Point(t.Apply(int(p)))
}

// ActBy returns the conjugate t·u·t⁻¹. Conjugation relabels u: if u sends x
// to y, the result sends t(x) to t(y), so cycle types are preserved.
//
// ActBy panics if t and u have different sizes.
func (u Table) ActBy(t Table) Table {
	return Compose(Compose(t, u), Invert(t))
}

// ActBy relabels every element of d through t. The result is a
// decomposition of t·u·t⁻¹, where u is the permutation d describes, with
// the same cycle boundaries as d. It is generally not normalized.
//
// ActBy panics if t and d have different sizes.
func (d *Decomposition) ActBy(t Table) *Decomposition {
	if t.Len() != d.Len() {
		panic("perm: act size mismatch")
	}
	out := d.Clone()
	for i, x := range out.enumeration {
		out.enumeration[i] = t.table[x]
	}
	return out
}

// Act returns the image of x under t.
func Act[T Actable[T]](t Table, x T) T {
	return x.ActBy(t)
}

// ActAll acts on every element of xs independently and returns the images
// in the same order. xs is not modified.
func ActAll[S ~[]E, E Actable[E]](t Table, xs S) S {
	if xs == nil {
		return nil
	}
	out := make(S, len(xs))
	for i, x := range xs {
		out[i] = x.ActBy(t)
	}
	return out
}

// Action describes how a table acts on values of type T. It covers types
// that cannot carry an ActBy method, such as int or types from other
// packages.
type Action[T any] func(t Table, x T) T

// Apply is the action of a table on plain ints by evaluation.
func Apply(t Table, x int) int {
	return t.Apply(x)
}

// Lift turns an action on T into the element-wise action on []T.
func Lift[T any](act Action[T]) Action[[]T] {
	return func(t Table, xs []T) []T {
		if xs == nil {
			return nil
		}
		out := make([]T, len(xs))
		for i, x := range xs {
			out[i] = act(t, x)
		}
		return out
	}
}

// Permute moves the value at position i of xs to position t(i) and returns
// the rearranged copy. It panics if len(xs) != N.
//
// Permute acts on positions, not on values: Permute(t, labels)[t(i)] is
// labels[i].
func Permute[S ~[]E, E any](t Table, xs S) S {
	if len(xs) != len(t.table) {
		panic("perm: permute length mismatch")
	}
	out := make(S, len(xs))
	for i, x := range xs {
		out[t.table[i]] = x
	}
	return out
}
