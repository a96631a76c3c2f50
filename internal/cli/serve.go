package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/cyclekit/pkg/api"
	"github.com/matzehuels/cyclekit/pkg/cache"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP JSON API",
		Long: `Serve runs the cyclekit HTTP API until interrupted. The listen address comes
from --addr, then server.addr in the config file, then ` + defaultServerAddr + `.

Endpoints: GET /healthz, POST /v1/analyze, POST /v1/compose, POST /v1/invert,
POST /v1/conjugate, GET /v1/classes/{n}.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.serverAddr()
			}

			runner, err := c.newRunner(cmd.Context(), cache.NewScopedKeyer(nil, "api:"))
			if err != nil {
				return err
			}
			defer runner.Close()

			printInfo("Serving on %s", StyleLink.Render("http://"+addr))
			return api.New(runner, c.Logger).Serve(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+defaultServerAddr+")")

	return cmd
}
