package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cyclekit/pkg/pipeline"
)

// classesCommand creates the classes command.
func (c *CLI) classesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classes <n>",
		Short: "List the conjugacy classes of the symmetric group S_n",
		Long: fmt.Sprintf(`List the conjugacy classes of S_n, one per cycle type, with the class size,
the order and the sign of its elements. n may be at most %d.`, pipeline.MaxClassesSize),
		Example: `  cyclekit classes 5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseSize(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer runner.Close()

			spinner := startSpinner(cmd.Context(), status, fmt.Sprintf("Listing classes of S_%d...", n))
			classes, cached, err := runner.Classes(cmd.Context(), n)
			spinner.Stop()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(classes)
			}

			fmt.Fprintln(out, StyleTitle.Render(fmt.Sprintf("S_%d", n))+" "+
				StyleDim.Render(fmt.Sprintf("%d classes", len(classes))))
			fmt.Fprintln(out, classTable(classes))
			if cached {
				printDetail("%s", iconCached)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the classes as JSON")

	return cmd
}
