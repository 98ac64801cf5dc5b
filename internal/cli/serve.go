package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/randpix/internal/server"
)

// serveCommand creates the serve command that exposes tiles over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tiles over HTTP",
		Long: `Serve tiles over HTTP. The [generate] section of the config file sets the
defaults; query parameters override them per request.

  GET /tiles/{seed}.{format}   e.g. /tiles/alice.png?size=9&symmetry=quad
  GET /tiles/random.{format}   redirects to a tile with a fresh seed
  GET /palettes                built-in palettes
  GET /healthz                 liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg := c.config.Server
			if cmd.Flags().Changed("addr") || cfg.Addr == "" {
				cfg.Addr = addr
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			defaults := c.baseOptions()
			defaults.Logger = nil
			srv := server.New(runner, server.Config{
				Addr:     cfg.Addr,
				Defaults: defaults,
				Timeout:  cfg.Timeout.Duration,
				Logger:   c.Logger,
			})

			printInfo(cmd.OutOrStdout(), "Serving tiles on %s", styleLink.Render(srv.Addr()))
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
