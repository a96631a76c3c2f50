package perm_test

import (
	"fmt"

	"github.com/matzehuels/cyclekit/pkg/perm"
)

func ExampleDecompose() {
	t := perm.MustNew(1, 3, 2, 0)
	d := perm.Decompose(t)

	fmt.Println(d)
	fmt.Println(d.CycleType())
	fmt.Println(d.Table())
	// Output:
	// (0 1 3)(2)
	// [1 0 1 0]
	// [1 3 2 0]
}

func ExampleCompose() {
	a := perm.MustNew(1, 2, 0)
	b := perm.MustNew(0, 2, 1)

	// Compose applies the right operand first.
	fmt.Println(perm.Compose(a, b))
	fmt.Println(perm.Compose(b, a))
	// Output:
	// [1 0 2]
	// [2 1 0]
}

func ExampleDecomposition_Normalize() {
	a, _ := perm.FromCycles(4, [][]int{{2}, {1, 3, 0}})
	b := perm.Decompose(a.Table())
	fmt.Println(a, b, a.Equal(b))

	a.Normalize()
	b.Normalize()
	fmt.Println(a, b, a.Equal(b))
	// Output:
	// (2)(1 3 0) (0 1 3)(2) false
	// (2)(3 0 1) (2)(3 0 1) true
}

func ExampleCycleType_Order() {
	ct := perm.TypeOf(perm.MustNew(1, 0, 3, 4, 2))
	fmt.Println(ct.Partition(), ct.Order(), ct.Sign())
	// Output:
	// [3 2] 6 -1
}

func ExampleConjugacyClasses() {
	for _, ct := range perm.ConjugacyClasses(4) {
		fmt.Println(ct.Notation(), ct.ClassSize())
	}
	// Output:
	// 4^1 6
	// 1^1 3^1 8
	// 2^2 3
	// 1^2 2^1 6
	// 1^4 1
}

func ExampleActAll() {
	points := []perm.Point{0, 1, 2, 3}
	fmt.Println(perm.ActAll(perm.CyclicGenerator(3), points))
	// Output:
	// [1 2 0 1]
}

func ExampleTable_Power() {
	t := perm.CyclicGenerator(5)
	fmt.Println(t.Power(2), t.Power(-1))
	// Output:
	// [2 3 4 0 1] [4 0 1 2 3]
}

func ExamplePermute() {
	t := perm.MustNew(2, 0, 1)
	fmt.Println(perm.Permute(t, []string{"a", "b", "c"}))
	// Output:
	// [b c a]
}

func ExampleGenerate() {
	for _, t := range perm.Generate(3, 0) {
		fmt.Println(t)
	}
	// Output:
	// [0 1 2]
	// [1 0 2]
	// [2 0 1]
	// [0 2 1]
	// [1 2 0]
	// [2 1 0]
}

func ExampleFactorial() {
	fmt.Println(perm.Factorial(5))
	// Output:
	// 120
}

func ExampleSeq() {
	fmt.Println(perm.Seq(4))
	// Output:
	// [0 1 2 3]
}
