package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/cyclekit/pkg/perm"
)

type tableDocument struct {
	N     int   `json:"n"`
	Table []int `json:"table"`
}

type cycleDocument struct {
	N      int     `json:"n"`
	Cycles [][]int `json:"cycles"`
}

// WriteTable encodes t as a table document and writes it to w.
// The output can be re-read with [ReadTable] or [ReadPermutation].
func WriteTable(w io.Writer, t perm.Table) error {
	return encode(w, tableDocument{N: t.Len(), Table: t.Slice()})
}

// WriteDecomposition encodes d as a cycle document and writes it to w.
// Cycles are written in storage order, fixed points included.
func WriteDecomposition(w io.Writer, d *perm.Decomposition) error {
	return encode(w, cycleDocument{N: d.Len(), Cycles: d.Lists()})
}

// Export writes t as a table document to the file at path.
// This is a convenience wrapper around [WriteTable] for file-based output.
func Export(path string, t perm.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteTable(f, t)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
