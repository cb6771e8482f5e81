package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		flags cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the radar HTTP API",
		Long: `Serve the radar HTTP API until interrupted.

  GET  /healthz
  GET  /v1/radii?policy=&radius=&rings=&segments=
  POST /v1/render?format=svg|json|dot|png|pdf   (JSON definition body)

Rendered artifacts are cached in the file cache, or in Redis with --redis.`,
		Example: `  techradar serve --addr :8080
  techradar serve --redis redis://localhost:6379/0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, flags)
			if err != nil {
				return err
			}
			defer runner.Close()
			return server.New(runner, c.Logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	flags.register(cmd)
	return cmd
}
