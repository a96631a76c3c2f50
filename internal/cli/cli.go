package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cyclekit/pkg/buildinfo"
	"github.com/matzehuels/cyclekit/pkg/cache"
	"github.com/matzehuels/cyclekit/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "cyclekit"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configFile   string
	cacheBackend string
	noCache      bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "cyclekit decomposes and analyzes permutations",
		Long: `cyclekit is a CLI tool for working with permutations of a finite set: cycle
decomposition, canonical cycle notation, cycle types and conjugacy classes.

Permutations are given in one-line notation ("1 3 2 0" or "[1,3,2,0]"), in
cycle notation ("(0 1 3)(2)", fixed points may be omitted), as @file.json,
or as "-" to read a JSON document from stdin.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.applyConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/cyclekit/config.toml)")
	flags.StringVar(&c.cacheBackend, "cache", "", "cache backend: file (default), redis, mongo, none")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable caching")

	// Register all subcommands
	root.AddCommand(c.decomposeCommand())
	root.AddCommand(c.composeCommand())
	root.AddCommand(c.invertCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.classesCommand())
	root.AddCommand(c.randomCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// applyConfig reads the config file and applies it beneath the command-line
// flags.
func (c *CLI) applyConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(c.configFile)
	if err != nil {
		return err
	}
	if c.cacheBackend != "" {
		cfg.Cache.Backend = c.cacheBackend
	}
	if c.noCache {
		cfg.Cache.Backend = cache.BackendNone
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	if cfg.LogLevel != "" {
		level, _ := log.ParseLevel(cfg.LogLevel)
		c.SetLogLevel(level)
	}
	c.Config = cfg
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, keyer cache.Keyer) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(cc, keyer, c.Logger)
	runner.TTL, _ = c.Config.cacheTTL()
	return runner, nil
}

// newCache opens the configured cache. An unusable file cache directory
// falls back to no caching; remote backends must be reachable.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	opts, err := c.Config.cacheOptions()
	if err != nil {
		c.Logger.Warn("caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	c.Logger.Debug("opening cache", "backend", opts.Backend)
	cc, err := cache.Open(ctx, opts)
	if err != nil {
		if opts.Backend != "" && opts.Backend != cache.BackendFile {
			return nil, err
		}
		c.Logger.Warn("caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/cyclekit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// parseLabels parses a comma-separated label list. Empty yields nil.
func parseLabels(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
