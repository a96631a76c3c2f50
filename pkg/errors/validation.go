package errors

// MaxSize is the largest permutation size accepted from untrusted input.
// Tables of this size are a few megabytes; anything larger is rejected
// before allocation.
const MaxSize = 1 << 20

// ValidateSize checks that n is a usable permutation size.
func ValidateSize(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "size must not be negative, got %d", n)
	}
	if n > MaxSize {
		return New(ErrCodeInvalidInput, "size %d exceeds maximum of %d", n, MaxSize)
	}
	return nil
}

// ValidateTable checks that values is a bijection on [0, n).
//
// Validation rules:
//   - len(values) must equal n (INVALID_LENGTH)
//   - every value must lie in [0, n) (NOT_BIJECTIVE)
//   - no value may appear twice (NOT_BIJECTIVE)
//
// A length-n sequence with values in range and no repeats hits every
// element of [0, n), so surjectivity needs no separate check.
func ValidateTable(n int, values []int) error {
	if err := ValidateSize(n); err != nil {
		return err
	}
	if len(values) != n {
		return New(ErrCodeInvalidLength, "got %d values, want %d", len(values), n)
	}
	seen := make([]bool, n)
	for i, v := range values {
		if v < 0 || v >= n {
			return New(ErrCodeNotBijective, "value %d at index %d is outside [0, %d)", v, i, n)
		}
		if seen[v] {
			return New(ErrCodeNotBijective, "value %d appears more than once", v)
		}
		seen[v] = true
	}
	return nil
}

// ValidateCycles checks that cycles partitions [0, n) into non-empty,
// disjoint cycles.
//
// When partial is true, elements missing from every cycle are accepted and
// read as fixed points (the usual convention of cycle notation). Otherwise
// the cycles must cover [0, n) exactly.
func ValidateCycles(n int, cycles [][]int, partial bool) error {
	if err := ValidateSize(n); err != nil {
		return err
	}
	seen := make([]bool, n)
	total := 0
	for k, c := range cycles {
		if len(c) == 0 {
			return New(ErrCodeInvalidCycle, "cycle %d is empty", k)
		}
		for _, x := range c {
			if x < 0 || x >= n {
				return New(ErrCodeInvalidCycle, "element %d of cycle %d is outside [0, %d)", x, k, n)
			}
			if seen[x] {
				return New(ErrCodeInvalidCycle, "element %d appears in more than one position", x)
			}
			seen[x] = true
		}
		total += len(c)
	}
	if !partial && total != n {
		return New(ErrCodeInvalidLength, "cycles cover %d elements, want %d", total, n)
	}
	return nil
}
