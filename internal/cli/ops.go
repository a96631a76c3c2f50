package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/cyclekit/pkg/errors"
	pio "github.com/matzehuels/cyclekit/pkg/io"
	"github.com/matzehuels/cyclekit/pkg/perm"
)

// composeCommand creates the compose command.
func (c *CLI) composeCommand() *cobra.Command {
	var (
		size   int
		asJSON bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "compose <a> <b> [more...]",
		Short: "Compose permutations (the rightmost is applied first)",
		Long: `Compose permutations as functions: "compose a b" is a∘b, which applies b
first and then a. All permutations must have the same size.`,
		Example: `  cyclekit compose "1 2 0" "1 0 2"
  cyclekit compose "(0 1)" "(1 2)" "(0 2)" -n 3`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := parsePermutations(args, size, cmd.InOrStdin())
			if err != nil {
				return err
			}
			result, err := composeAll(tables)
			if err != nil {
				return err
			}
			return printTable(result, asJSON, output)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 0, "permutation size for cycle notation (default: largest element + 1)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON table document")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the result as a JSON table document to this file")

	return cmd
}

// invertCommand creates the invert command.
func (c *CLI) invertCommand() *cobra.Command {
	var (
		size   int
		asJSON bool
		output string
	)

	cmd := &cobra.Command{
		Use:     "invert <permutation>",
		Short:   "Print the inverse of a permutation",
		Example: `  cyclekit invert "1 3 2 0"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parsePermutation(args[0], size, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return printTable(perm.Invert(t), asJSON, output)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 0, "permutation size for cycle notation (default: largest element + 1)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON table document")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the result as a JSON table document to this file")

	return cmd
}

// composeAll returns tables[0]∘tables[1]∘...∘tables[k-1].
func composeAll(tables []perm.Table) (perm.Table, error) {
	result := tables[len(tables)-1]
	for i := len(tables) - 2; i >= 0; i-- {
		if tables[i].Len() != result.Len() {
			return perm.Table{}, errors.New(errors.ErrCodeInvalidLength,
				"cannot compose permutations of sizes %d and %d", tables[i].Len(), result.Len())
		}
		result = perm.Compose(tables[i], result)
	}
	return result, nil
}

// printTable prints t in one-line notation followed by its cycles, or as a
// JSON table document. A non-empty path also saves the document there.
func printTable(t perm.Table, asJSON bool, path string) error {
	if path != "" {
		if err := pio.Export(path, t); err != nil {
			return err
		}
	}
	if asJSON {
		return pio.WriteTable(out, t)
	}
	printPlain("%s", t)
	printDetail("%s", pio.FormatCycles(perm.Decompose(t)))
	if path != "" {
		printFile(path)
	}
	return nil
}
