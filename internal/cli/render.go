package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cyclekit/pkg/errors"
	"github.com/matzehuels/cyclekit/pkg/perm"
	"github.com/matzehuels/cyclekit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file path (or base path for multiple outputs)
	formats   []string // output formats: "svg", "dot"
	labels    []string // element labels; config render.labels when unset
	size      int      // n for cycle-notation input (0 infers it)
	normalize bool     // draw the cycles in canonical order
	refresh   bool     // bypass the cache lookup
}

// renderCommand creates the render command for drawing cycle diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr, labelsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <permutation>",
		Short: "Draw the cycle diagram of a permutation",
		Long: `Render draws every cycle as a ring of arrows x → t(x). Fixed points appear
as self-loops. Without --output the diagram is written to cycles.<format>.`,
		Example: `  cyclekit render "1 3 2 0" -o cycles.svg
  cyclekit render "(0 1 2)(3 4)" -f svg,dot -o diagram --labels a,b,c,d,e`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			opts.labels = parseLabels(labelsStr)
			if opts.labels == nil {
				opts.labels = c.Config.Render.Labels
			}
			t, err := parsePermutation(args[0], opts.size, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), t, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot (comma-separated)")
	cmd.Flags().StringVar(&labelsStr, "labels", "", "comma-separated element labels")
	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "permutation size for cycle notation (default: largest element + 1)")
	cmd.Flags().BoolVar(&opts.normalize, "normalize", false, "draw cycles in canonical order")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, t perm.Table, opts *renderOpts) error {
	if opts.labels != nil && len(opts.labels) < t.Len() {
		return errors.New(errors.ErrCodeInvalidInput, "got %d labels for %d elements", len(opts.labels), t.Len())
	}

	runner, err := c.newRunner(ctx, nil)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := startSpinner(ctx, status, "Rendering cycle diagram...")
	result, err := runner.Analyze(ctx, pipeline.Options{
		Table:     t,
		Normalize: opts.normalize,
		Formats:   opts.formats,
		Labels:    opts.labels,
		Refresh:   opts.refresh,
		Logger:    c.Logger,
	})
	if err != nil {
		spinner.Fail("Rendering failed")
		return err
	}
	spinner.Stop()

	paths := outputPaths(opts.output, opts.formats)
	for _, format := range opts.formats {
		if err := os.WriteFile(paths[format], result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", paths[format], err)
		}
	}

	printSuccess("Rendered %s", result.Notation)
	printStats(t.Len(), result.NumCycles, result.FixedPoints, result.CacheHit)
	for _, format := range opts.formats {
		printFile(paths[format])
	}
	return nil
}

// outputPaths maps each format to its output file. A single format writes
// to output as given; several formats share output as a base path with the
// extension replaced.
func outputPaths(output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output == "" {
		output = "cycles"
	}
	if len(formats) == 1 && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}
