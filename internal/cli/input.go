package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/cyclekit/pkg/errors"
	pio "github.com/matzehuels/cyclekit/pkg/io"
	"github.com/matzehuels/cyclekit/pkg/perm"
)

// parsePermutation reads a permutation argument:
//
//	"1 3 2 0", "[1,3,2,0]"   one-line notation
//	"(0 1 3)", "(0 1 3)(2)"  cycle notation
//	"@perm.json"             JSON document, table or cycles form
//	"-"                      JSON document on stdin
//
// size fixes n for cycle notation; zero infers it from the largest
// element mentioned.
func parsePermutation(arg string, size int, stdin io.Reader) (perm.Table, error) {
	s := strings.TrimSpace(arg)
	switch {
	case s == "-":
		return pio.ReadPermutation(stdin)
	case strings.HasPrefix(s, "@"):
		return pio.Import(s[1:])
	case strings.HasPrefix(s, "("):
		n := size
		if n <= 0 {
			n = inferSize(s)
		}
		d, err := pio.ParseCycles(n, s)
		if err != nil {
			return perm.Table{}, err
		}
		return d.Table(), nil
	default:
		t, err := pio.ParseOneLine(s)
		if err != nil {
			return perm.Table{}, err
		}
		if size > 0 && t.Len() != size {
			return perm.Table{}, errors.New(errors.ErrCodeInvalidLength, "got %d values, want %d", t.Len(), size)
		}
		return t, nil
	}
}

// parsePermutations parses every argument with parsePermutation.
func parsePermutations(args []string, size int, stdin io.Reader) ([]perm.Table, error) {
	tables := make([]perm.Table, len(args))
	for i, arg := range args {
		t, err := parsePermutation(arg, size, stdin)
		if err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInvalidInput
			}
			return nil, errors.Wrap(code, err, "argument %d", i+1)
		}
		tables[i] = t
	}
	return tables, nil
}

// inferSize returns one more than the largest integer in s, or 0 if s
// contains none.
func inferSize(s string) int {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	n := 0
	for _, f := range fields {
		if v, err := strconv.Atoi(f); err == nil && v+1 > n {
			n = v + 1
		}
	}
	return n
}

// parseSize parses a permutation size argument.
func parseSize(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "size must be an integer, got %q", arg)
	}
	if err := errors.ValidateSize(n); err != nil {
		return 0, err
	}
	return n, nil
}
