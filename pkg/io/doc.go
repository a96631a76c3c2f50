// Package io reads and writes permutations in the formats cyclekit accepts
// at its boundaries.
//
// # JSON Format
//
// A table document lists the image of every element:
//
//	{"n": 4, "table": [1, 3, 2, 0]}
//
// A cycle document lists the disjoint cycles, fixed points included:
//
//	{"n": 4, "cycles": [[0, 1, 3], [2]]}
//
// "n" may be omitted from a table document, in which case it is the length
// of the table. Use [ReadTable] and [ReadDecomposition] for the two forms,
// or [ReadPermutation] to accept either.
//
// # TOML Batch Files
//
// Several named permutations can be kept in one TOML file:
//
//	[[permutation]]
//	name = "rotation"
//	table = [1, 2, 0]
//
//	[[permutation]]
//	name = "swap"
//	n = 4
//	cycles = [[0, 3]]
//
// Batch cycles may omit fixed points, so "n" is required with "cycles".
// See [ReadBatch] and [WriteBatch].
//
// # Text
//
// [ParseOneLine] reads one-line notation ("1 3 2 0", "[1, 3, 2, 0]") and
// [ParseCycles] reads cycle notation ("(0 1 3)(2)", or "(0 1 3)" with the
// fixed point left out). [FormatCycles] writes the short cycle notation.
//
// # Validation
//
// Every reader validates that its input is a bijection before returning,
// so callers never see an invalid [perm.Table]. Errors carry a code from
// [github.com/matzehuels/cyclekit/pkg/errors]: INVALID_FORMAT for input
// that does not parse, INVALID_LENGTH, NOT_BIJECTIVE or INVALID_CYCLE for
// input that parses but does not describe a permutation.
package io
