package cli

import (
	"github.com/spf13/cobra"

	pio "github.com/matzehuels/cyclekit/pkg/io"
	"github.com/matzehuels/cyclekit/pkg/perm"
)

// decomposeOpts holds the command-line flags for the decompose command.
type decomposeOpts struct {
	size      int  // n for cycle-notation input (0 infers it)
	normalize bool // rewrite the cycles in canonical form
	json      bool // print a JSON cycles document
}

// decomposeCommand creates the decompose command.
func (c *CLI) decomposeCommand() *cobra.Command {
	var opts decomposeOpts

	cmd := &cobra.Command{
		Use:   "decompose <permutation>",
		Short: "Print the disjoint cycle decomposition of a permutation",
		Example: `  cyclekit decompose "1 3 2 0"
  cyclekit decompose --normalize "(0 4)(5 3 2)" -n 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parsePermutation(args[0], opts.size, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runDecompose(t, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "permutation size for cycle notation (default: largest element + 1)")
	cmd.Flags().BoolVar(&opts.normalize, "normalize", false, "rewrite cycles in canonical form")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print a JSON cycles document")

	return cmd
}

func runDecompose(t perm.Table, opts decomposeOpts) error {
	d := perm.Decompose(t)
	if opts.normalize {
		d.Normalize()
	}
	if opts.json {
		return pio.WriteDecomposition(out, d)
	}

	ct := d.CycleType()
	printKeyValue("Cycles", d.String())
	printKeyValue("Short", pio.FormatCycles(d))
	printKeyValue("Type", ct.Notation())
	printStats(t.Len(), ct.NumCycles(), ct.FixedPoints(), false)
	return nil
}
