package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/cyclekit/pkg/observability"
	"github.com/matzehuels/cyclekit/pkg/perm"
)

// Render draws the cycle diagram of d in the requested formats.
func Render(ctx context.Context, d *perm.Decomposition, formats []string, labels []string) (_ map[string][]byte, err error) {
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, formats, time.Since(start), err) }()

	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(d.ToDOT(labels))
		case FormatSVG:
			data, err = d.RenderSVG(ctx, labels)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
