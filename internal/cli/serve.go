package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeline/internal/server"
)

// serveCommand creates the serve command for running the render API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render API",
		Long: `Run the HTTP render API.

The server exposes POST /api/v1/render plus /healthz and /version, and
shares the pipeline and cache with the render command. The listen address
comes from configuration and can be overridden with --addr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				c.Config.Server.Addr = addr
			}
			runner := c.newRunner(cmd.Context(), false)
			defer runner.Close()

			return server.New(c.Config, runner, c.Logger).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: from config)")

	return cmd
}
