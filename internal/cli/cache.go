package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cyclekit/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the analysis cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached analyses from the file cache",
		Long: `Remove all entries from the file cache. Redis and MongoDB entries expire on
their own and are not touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.Config.cacheOptions()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			if opts.Backend != "" && opts.Backend != cache.BackendFile {
				printWarning("Backend %q is not a file cache; nothing to clear", opts.Backend)
				return nil
			}

			if _, err := os.Stat(opts.Dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			fc, err := cache.NewFileCache(opts.Dir)
			if err != nil {
				return err
			}
			defer fc.Close()

			count, err := fc.Clear(cmd.Context())
			if err != nil {
				return err
			}

			printSuccess("Cleared %d cached entries", count)
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.Config.cacheOptions()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			printPlain("%s", opts.Dir)
			return nil
		},
	}
}
