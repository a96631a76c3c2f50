package io

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cyclekit/pkg/errors"
	"github.com/matzehuels/cyclekit/pkg/perm"
)

// Entry is one named permutation of a batch file.
type Entry struct {
	Name  string
	Table perm.Table
}

type batchFile struct {
	Permutation []batchEntry `toml:"permutation"`
}

type batchEntry struct {
	Name   string  `toml:"name"`
	N      *int    `toml:"n,omitempty"`
	Table  []int   `toml:"table,omitempty"`
	Cycles [][]int `toml:"cycles,omitempty"`
}

// ReadBatch decodes a TOML batch file from r.
//
// Each [[permutation]] entry gives either a "table" or "n" plus "cycles";
// cycles may leave out fixed points. Unknown keys are rejected so that a
// misspelled field is not silently ignored. Errors name the offending
// entry and keep the code of the underlying validation error.
func ReadBatch(r io.Reader) ([]Entry, error) {
	var f batchFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode batch")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(keys, ", "))
	}

	entries := make([]Entry, 0, len(f.Permutation))
	seen := make(map[string]bool, len(f.Permutation))
	for i, be := range f.Permutation {
		name := be.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		if seen[name] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "permutation %q defined twice", name)
		}
		seen[name] = true

		t, err := be.table()
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "permutation %q", name)
		}
		entries = append(entries, Entry{Name: name, Table: t})
	}
	return entries, nil
}

// ImportBatch reads a TOML batch file from path.
func ImportBatch(path string) ([]Entry, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := ReadBatch(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return entries, nil
}

// WriteBatch encodes entries as a TOML batch file in table form.
func WriteBatch(w io.Writer, entries []Entry) error {
	f := batchFile{Permutation: make([]batchEntry, len(entries))}
	for i, e := range entries {
		n := e.Table.Len()
		f.Permutation[i] = batchEntry{Name: e.Name, N: &n, Table: e.Table.Slice()}
	}
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}
	return nil
}

func (be batchEntry) table() (perm.Table, error) {
	switch {
	case be.Table != nil && be.Cycles != nil:
		return perm.Table{}, errors.New(errors.ErrCodeInvalidFormat, "both \"table\" and \"cycles\" given")
	case be.Table != nil:
		n := len(be.Table)
		if be.N != nil {
			n = *be.N
		}
		return perm.New(n, be.Table)
	case be.Cycles != nil:
		if be.N == nil {
			return perm.Table{}, errors.New(errors.ErrCodeInvalidFormat, "\"cycles\" needs \"n\"")
		}
		d, err := completeCycles(*be.N, be.Cycles)
		if err != nil {
			return perm.Table{}, err
		}
		return d.Table(), nil
	case be.N != nil && *be.N == 0:
		return perm.Identity(0), nil
	}
	return perm.Table{}, errors.New(errors.ErrCodeInvalidFormat, "needs \"table\" or \"cycles\"")
}
