package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands
// registered. The --verbose and --quiet flags adjust the CLI logger before
// any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose, quiet bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Techradar lays out and renders technology radars",
		Long: `Techradar turns a radar definition (segments, rings and blips) into a
collision-free drawing. Blips are scattered inside their segment and ring
with a seeded random placer, so the same definition always produces the
same picture.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.SetLogLevel(levelFor(verbose, quiet))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.radiiCommand())
	root.AddCommand(c.sceneCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.mcpCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
