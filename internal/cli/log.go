// Package cli implements the cyclekit command-line interface.
//
// This package provides commands for decomposing, composing and analyzing
// permutations, listing conjugacy classes, rendering cycle diagrams and
// serving the HTTP API. The CLI is built using cobra and logs through the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - decompose: Print the cycle decomposition of a permutation
//   - compose, invert: Group operations on one-line tables
//   - analyze: Cycle type, order, sign and optional diagrams, cached
//   - classes: Conjugacy classes of S_n
//   - random: Uniformly random permutations
//   - render: Cycle diagrams as SVG or DOT
//   - serve: The HTTP JSON API
//   - cache: Manage the analysis cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The level
// can also be set with log_level in the config file.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Listed 5 classes (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
