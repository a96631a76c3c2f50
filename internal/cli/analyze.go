package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cyclekit/pkg/errors"
	pio "github.com/matzehuels/cyclekit/pkg/io"
	"github.com/matzehuels/cyclekit/pkg/perm"
	"github.com/matzehuels/cyclekit/pkg/pipeline"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	size      int    // n for cycle-notation input (0 infers it)
	normalize bool   // report cycles in canonical form
	refresh   bool   // bypass the cache lookup
	json      bool   // print the result as JSON
	batch     string // TOML batch file to analyze instead of an argument
}

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze [permutation]",
		Short: "Report cycle type, order, sign and inverse of a permutation",
		Long: `Analyze decomposes a permutation and reports its cycle type together with the
invariants that follow from it. Results are cached; use --refresh to
recompute.

With --batch, every [[permutation]] entry of a TOML batch file is analyzed
and summarized on one line.`,
		Example: `  cyclekit analyze "1 3 2 0"
  cyclekit analyze --normalize --json "(0 4)(5 3 2)" -n 6
  cyclekit analyze --batch perms.toml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.batch != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer runner.Close()

			if opts.batch != "" {
				return c.runAnalyzeBatch(cmd.Context(), runner, opts)
			}
			t, err := parsePermutation(args[0], opts.size, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return c.runAnalyze(cmd.Context(), runner, t, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "permutation size for cycle notation (default: largest element + 1)")
	cmd.Flags().BoolVar(&opts.normalize, "normalize", false, "report cycles in canonical form")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.Flags().StringVar(&opts.batch, "batch", "", "analyze every entry of a TOML batch file")

	return cmd
}

func (c *CLI) runAnalyze(ctx context.Context, runner *pipeline.Runner, t perm.Table, opts analyzeOpts) error {
	result, err := runner.Analyze(ctx, pipeline.Options{
		Table:     t,
		Normalize: opts.normalize,
		Refresh:   opts.refresh,
		Logger:    c.Logger,
	})
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	sign := "even (+1)"
	if result.Sign < 0 {
		sign = "odd (-1)"
	}
	printKeyValue("Table", fmt.Sprint(result.Table))
	printKeyValue("Cycles", result.Notation)
	printKeyValue("Type", result.TypeNotation)
	printKeyValue("Order", StyleNumber.Render(result.Order))
	printKeyValue("Sign", sign)
	printKeyValue("Inverse", fmt.Sprint(result.Inverse))
	printStats(len(result.Table), result.NumCycles, result.FixedPoints, result.CacheHit)
	if t.Len() <= pipeline.MaxRenderSize {
		printNextStep("Draw the cycle diagram", fmt.Sprintf("%s render %q -o cycles.svg", appName, fmt.Sprint(result.Table)))
	}
	return nil
}

func (c *CLI) runAnalyzeBatch(ctx context.Context, runner *pipeline.Runner, opts analyzeOpts) error {
	prog := newProgress(c.Logger)
	entries, err := pio.ImportBatch(opts.batch)
	if err != nil {
		return err
	}

	results := make(map[string]*pipeline.Result, len(entries))
	for _, e := range entries {
		result, err := runner.Analyze(ctx, pipeline.Options{
			Table:     e.Table,
			Normalize: opts.normalize,
			Refresh:   opts.refresh,
			Logger:    c.Logger.With("entry", e.Name),
		})
		if err != nil {
			return errors.Wrap(errors.GetCode(err), err, "permutation %q", e.Name)
		}
		results[e.Name] = result
		if !opts.json {
			printSuccess("%s  %s", StyleTitle.Render(e.Name), result.Summary())
			printDetail("%s", result.Notation)
		}
	}
	prog.done(fmt.Sprintf("Analyzed %d permutations", len(entries)))

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	return nil
}
