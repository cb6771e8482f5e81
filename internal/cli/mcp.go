package cli

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/mcptool"
)

func (c *CLI) mcpCommand() *cobra.Command {
	var flags cacheFlags

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve radar tools over MCP on stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout exposing the
radar_radii and radar_render tools. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, flags)
			if err != nil {
				return err
			}
			defer runner.Close()

			c.Logger.Info("serving MCP on stdio", "server", mcptool.ServerName)
			return mcptool.NewServer(runner).Run(ctx, &mcp.StdioTransport{})
		},
	}
	flags.register(cmd)
	return cmd
}
