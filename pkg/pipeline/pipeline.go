// Package pipeline provides the analysis pipeline shared by the CLI and the
// HTTP API.
//
// An analysis takes a permutation table through three stages:
//
//  1. Decompose: split the table into disjoint cycles
//  2. Normalize: rewrite the cycles in canonical form (optional)
//  3. Render: draw the cycle diagram as DOT or SVG (optional)
//
// and reports the cycle type with the invariants derived from it: order,
// sign, number of cycles and fixed points, and the inverse table.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Analyze(ctx, pipeline.Options{
//	    Table:     perm.MustNew(1, 3, 2, 0),
//	    Normalize: true,
//	    Formats:   []string{pipeline.FormatSVG},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Results are cached by table and options. Cache failures are logged and
// never fail an analysis.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cyclekit/pkg/cache"
	"github.com/matzehuels/cyclekit/pkg/errors"
	"github.com/matzehuels/cyclekit/pkg/perm"
)

// Format constants for rendered outputs.
const (
	FormatSVG = "svg"
	FormatDOT = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatDOT: true,
}

const (
	// MaxRenderSize is the largest permutation whose cycle diagram is
	// rendered. Graphviz layout time grows quickly with the node count.
	MaxRenderSize = 512

	// MaxClassesSize is the largest n for which conjugacy classes are
	// listed. The listing is built and cached in one piece; S_40 has
	// 37,338 classes (about 8 MB of JSON), S_50 already 204,226.
	MaxClassesSize = 40
)

// Options configures one analysis.
type Options struct {
	// Table is the permutation to analyze.
	Table perm.Table

	// Normalize rewrites the cycles in canonical form before reporting
	// and rendering them.
	Normalize bool

	// Formats lists the diagram formats to render. Empty renders nothing.
	Formats []string

	// Labels optionally names the elements in rendered diagrams.
	Labels []string

	// Refresh bypasses the cache lookup but still stores the result.
	Refresh bool

	// Logger overrides the runner's logger for this analysis.
	Logger *log.Logger
}

// Validate checks the options.
func (o *Options) Validate() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if len(o.Formats) > 0 && o.Table.Len() > MaxRenderSize {
		return errors.New(errors.ErrCodeInvalidInput,
			"cannot render a permutation of size %d (maximum %d)", o.Table.Len(), MaxRenderSize)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// KeyOpts returns the cache key options of the analysis.
func (o *Options) KeyOpts() cache.AnalysisKeyOpts {
	return cache.AnalysisKeyOpts{
		Normalize: o.Normalize,
		Render:    len(o.Formats) > 0,
		Labels:    o.Labels,
	}
}

// Result is the outcome of an analysis. Everything except Stats and
// CacheHit is cached and served by the HTTP API.
type Result struct {
	Table      []int   `json:"table"`
	Cycles     [][]int `json:"cycles"`
	Notation   string  `json:"notation"`
	Normalized bool    `json:"normalized"`

	CycleType    []int  `json:"cycle_type"`
	Partition    []int  `json:"partition"`
	TypeNotation string `json:"type_notation"`
	NumCycles    int    `json:"num_cycles"`
	FixedPoints  int    `json:"fixed_points"`
	Order        string `json:"order"`
	Sign         int    `json:"sign"`
	Inverse      []int  `json:"inverse"`

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte `json:"artifacts,omitempty"`

	Stats    Stats `json:"-"`
	CacheHit bool  `json:"-"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	DecomposeTime time.Duration
	RenderTime    time.Duration
}

// Class describes one conjugacy class of a symmetric group.
type Class struct {
	Notation  string `json:"notation"`
	Partition []int  `json:"partition"`
	CycleType []int  `json:"cycle_type"`
	Size      string `json:"size"`
	Order     string `json:"order"`
	Sign      int    `json:"sign"`
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: svg, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}
