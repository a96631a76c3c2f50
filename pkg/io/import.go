package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/cyclekit/pkg/errors"
	"github.com/matzehuels/cyclekit/pkg/perm"
)

// document is the union of the table and cycle JSON forms.
type document struct {
	N      *int    `json:"n,omitempty"`
	Table  []int   `json:"table,omitempty"`
	Cycles [][]int `json:"cycles,omitempty"`
}

// ReadTable decodes a table document from r.
//
// ReadTable returns an INVALID_FORMAT error if the JSON is malformed or has
// no "table" field, INVALID_LENGTH if the table length differs from "n",
// and NOT_BIJECTIVE if the values are not a permutation of [0, n). It does
// not close r.
func ReadTable(r io.Reader) (perm.Table, error) {
	doc, err := decode(r)
	if err != nil {
		return perm.Table{}, err
	}
	if doc.Table == nil {
		return perm.Table{}, errors.New(errors.ErrCodeInvalidFormat, "missing \"table\" field")
	}
	return doc.table()
}

// ReadDecomposition decodes a cycle document from r. The cycles are stored
// as given; normalize the result for a canonical form.
//
// Every element of [0, n) must appear in exactly one cycle. ReadDecomposition
// returns INVALID_FORMAT for malformed JSON or a missing "n" or "cycles"
// field, and the errors of [perm.FromCycles] otherwise.
func ReadDecomposition(r io.Reader) (*perm.Decomposition, error) {
	doc, err := decode(r)
	if err != nil {
		return nil, err
	}
	if doc.Cycles == nil || doc.N == nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "cycle document needs \"n\" and \"cycles\" fields")
	}
	return perm.FromCycles(*doc.N, doc.Cycles)
}

// ReadPermutation decodes either JSON form from r and returns the
// permutation it describes. A document with both fields is rejected.
func ReadPermutation(r io.Reader) (perm.Table, error) {
	doc, err := decode(r)
	if err != nil {
		return perm.Table{}, err
	}
	switch {
	case doc.Table != nil && doc.Cycles != nil:
		return perm.Table{}, errors.New(errors.ErrCodeInvalidFormat, "document has both \"table\" and \"cycles\"")
	case doc.Table != nil:
		return doc.table()
	case doc.Cycles != nil && doc.N != nil:
		d, err := perm.FromCycles(*doc.N, doc.Cycles)
		if err != nil {
			return perm.Table{}, err
		}
		return d.Table(), nil
	}
	return perm.Table{}, errors.New(errors.ErrCodeInvalidFormat, "document needs a \"table\" field, or \"n\" and \"cycles\"")
}

// Import reads a permutation in either JSON form from the file at path.
func Import(path string) (perm.Table, error) {
	f, err := openFile(path)
	if err != nil {
		return perm.Table{}, err
	}
	defer f.Close()

	t, err := ReadPermutation(f)
	if err != nil {
		return perm.Table{}, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return t, nil
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

func decode(r io.Reader) (document, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return doc, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}
	return doc, nil
}

func (doc document) table() (perm.Table, error) {
	n := len(doc.Table)
	if doc.N != nil {
		n = *doc.N
	}
	return perm.New(n, doc.Table)
}
