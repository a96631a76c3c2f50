package io

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/cyclekit/pkg/errors"
	"github.com/matzehuels/cyclekit/pkg/perm"
)

// ParseOneLine parses one-line notation: the images of 0, 1, ..., n-1
// separated by whitespace or commas, optionally enclosed in brackets.
// "1 3 2 0", "1,3,2,0" and "[1 3 2 0]" all describe the same table.
func ParseOneLine(s string) (perm.Table, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return perm.Table{}, errors.New(errors.ErrCodeInvalidFormat, "unterminated bracket in %q", s)
		}
		s = s[1 : len(s)-1]
	}
	values, err := parseInts(s)
	if err != nil {
		return perm.Table{}, err
	}
	return perm.New(len(values), values)
}

// ParseCycles parses cycle notation for a permutation of size n, e.g.
// "(0 1 3)(2)". Elements inside a cycle are separated by whitespace or
// commas. Elements that appear in no cycle are fixed points and are
// appended as cycles of length one, so "(0 1 3)" parses to the same
// permutation as "(0 1 3)(2)" when n is 4. An empty string or "()"
// denotes the identity.
//
// The result keeps the cycles in the order written; normalize it for a
// canonical form.
func ParseCycles(n int, s string) (*perm.Decomposition, error) {
	var cycles [][]int
	rest := strings.TrimSpace(s)
	for rest != "" {
		if rest[0] != '(' {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "expected '(' at %q", rest)
		}
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unterminated cycle %q", rest)
		}
		body := rest[1:end]
		if strings.ContainsRune(body, '(') {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "nested cycle in %q", rest[:end+1])
		}
		c, err := parseInts(body)
		if err != nil {
			return nil, err
		}
		if len(c) > 0 {
			cycles = append(cycles, c)
		}
		rest = strings.TrimSpace(rest[end+1:])
	}
	return completeCycles(n, cycles)
}

// FormatCycles writes d in short cycle notation: fixed points are left out
// and the identity is written "()". ParseCycles reads the result back.
func FormatCycles(d *perm.Decomposition) string {
	var sb strings.Builder
	for c := range d.Cycles() {
		if c.Len() > 1 {
			sb.WriteString(c.String())
		}
	}
	if sb.Len() == 0 {
		return "()"
	}
	return sb.String()
}

// completeCycles validates cycles that may omit fixed points and builds the
// decomposition with the missing elements appended as singletons.
func completeCycles(n int, cycles [][]int) (*perm.Decomposition, error) {
	if err := errors.ValidateCycles(n, cycles, true); err != nil {
		return nil, err
	}
	full := slices.Clip(cycles)
	covered := make([]bool, n)
	for _, c := range cycles {
		for _, x := range c {
			covered[x] = true
		}
	}
	for x, ok := range covered {
		if !ok {
			full = append(full, []int{x})
		}
	}
	return perm.FromCycles(n, full)
}

func parseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid element %q", f)
		}
		values[i] = v
	}
	return values, nil
}
