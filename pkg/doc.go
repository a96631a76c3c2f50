// Package pkg provides the core libraries for cyclekit.
//
// # Overview
//
// cyclekit represents permutations of a finite set [0, N), splits them into
// disjoint cycles, rewrites the cycles in a canonical form and classifies
// them by cycle type. The pkg directory is organized into these areas:
//
//  1. [perm] - Domain logic (tables, decompositions, cycle types)
//  2. [io] - Serialization (JSON documents, TOML batch files, text notation)
//  3. [cache] - Caching backends (file, Redis, MongoDB)
//  4. [pipeline] - Orchestration (decompose → normalize → render)
//  5. [api] - HTTP JSON API
//
// # Architecture
//
// The typical data flow through cyclekit:
//
//	one-line text / cycle notation / JSON / TOML
//	         ↓
//	    [io] package (parse and validate)
//	         ↓
//	    [perm] package (decompose, normalize, cycle type)
//	         ↓
//	    [pipeline] package (invariants, cache, DOT/SVG diagrams)
//	         ↓
//	    CLI output or JSON response
//
// # Quick Start
//
// Decompose a permutation and classify it:
//
//	import (
//	    "fmt"
//	    "github.com/matzehuels/cyclekit/pkg/perm"
//	)
//
//	t, err := perm.New(4, []int{1, 3, 2, 0})
//	if err != nil {
//	    return err
//	}
//	d := perm.Decompose(t)
//	fmt.Println(d)                        // (0 1 3)(2)
//	fmt.Println(d.CycleType().Notation()) // 1^1 3^1
//
//	d.Normalize()
//	fmt.Println(d) // (2)(3 0 1)
//
// # Main Packages
//
// [perm] - The permutation engine: [perm.Table] image arrays with composition
// and inversion, [perm.Decomposition] as a flat cycle buffer with borrowed
// [perm.Cycle] views, canonical normalization, [perm.CycleType] with order,
// sign and class size, enumeration of S_n and uniform sampling.
//
// [errors] - Coded errors shared by every layer. Malformed input is reported
// with INVALID_* and NOT_BIJECTIVE codes; violated preconditions inside
// [perm] panic instead.
//
// [io] - Readers and writers for the external formats. Every reader validates
// bijectivity before a table reaches [perm].
//
// [cache] - Cache interface with FileCache (CLI), RedisCache and MongoCache
// (shared deployments) and NullCache (disabled).
//
// [pipeline] - Analysis runner used by CLI and API. Ensures consistent
// caching and logging across entry points.
//
// [api] - chi router exposing analysis and group operations over HTTP.
//
// [observability] - Hook interfaces for metrics and tracing.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/perm/...     # Specific package
//	go test -run Example       # Examples only
//	go test -short ./pkg/...   # Skip graphviz rendering
//
// [perm]: https://pkg.go.dev/github.com/matzehuels/cyclekit/pkg/perm
// [errors]: https://pkg.go.dev/github.com/matzehuels/cyclekit/pkg/errors
// [io]: https://pkg.go.dev/github.com/matzehuels/cyclekit/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/cyclekit/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/cyclekit/pkg/pipeline
// [api]: https://pkg.go.dev/github.com/matzehuels/cyclekit/pkg/api
// [observability]: https://pkg.go.dev/github.com/matzehuels/cyclekit/pkg/observability
package pkg
