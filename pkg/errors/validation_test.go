package errors

import (
	"testing"
)

func TestValidateTable(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		values []int
		want   Code
	}{
		{"identity", 3, []int{0, 1, 2}, ""},
		{"three cycle", 3, []int{1, 2, 0}, ""},
		{"empty", 0, []int{}, ""},
		{"nil empty", 0, nil, ""},

		{"too short", 3, []int{0, 1}, ErrCodeInvalidLength},
		{"too long", 2, []int{0, 1, 2}, ErrCodeInvalidLength},
		{"negative value", 3, []int{0, -1, 2}, ErrCodeNotBijective},
		{"value out of range", 3, []int{0, 1, 3}, ErrCodeNotBijective},
		{"duplicate", 3, []int{0, 0, 2}, ErrCodeNotBijective},
		{"negative size", -1, nil, ErrCodeInvalidInput},
		{"oversized", MaxSize + 1, nil, ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTable(tt.n, tt.values)
			if got := GetCode(err); got != tt.want {
				t.Errorf("ValidateTable(%d, %v) code = %q, want %q (err = %v)", tt.n, tt.values, got, tt.want, err)
			}
		})
	}
}

func TestValidateCycles(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		cycles  [][]int
		partial bool
		want    Code
	}{
		{"full cover", 4, [][]int{{0, 1, 3}, {2}}, false, ""},
		{"no cycles empty domain", 0, nil, false, ""},
		{"partial omits fixed point", 4, [][]int{{0, 1, 3}}, true, ""},
		{"partial no cycles", 3, nil, true, ""},

		{"missing element", 4, [][]int{{0, 1, 3}}, false, ErrCodeInvalidLength},
		{"empty cycle", 2, [][]int{{0, 1}, {}}, false, ErrCodeInvalidCycle},
		{"out of range", 2, [][]int{{0, 2}}, true, ErrCodeInvalidCycle},
		{"repeated across cycles", 3, [][]int{{0, 1}, {1, 2}}, true, ErrCodeInvalidCycle},
		{"repeated within cycle", 3, [][]int{{0, 1, 0}}, true, ErrCodeInvalidCycle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCycles(tt.n, tt.cycles, tt.partial)
			if got := GetCode(err); got != tt.want {
				t.Errorf("ValidateCycles(%d, %v, %v) code = %q, want %q (err = %v)", tt.n, tt.cycles, tt.partial, got, tt.want, err)
			}
		})
	}
}
