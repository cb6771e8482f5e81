package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/techradar/pkg/layout"
	"github.com/matzehuels/techradar/pkg/render/nodelink"
)

type sceneOpts struct {
	output   string
	format   string
	detailed bool
	scale    float64
}

func (c *CLI) sceneCommand() *cobra.Command {
	opts := sceneOpts{format: "svg", scale: 2}

	cmd := &cobra.Command{
		Use:   "scene <radar.toml>",
		Short: "Draw the region tree of a radar",
		Long: `Draw the scene graph of a radar definition: one node per segment, per
sub-segment and per ring band, linked to the region that contains it.
The diagram is laid out by Graphviz.`,
		Example: `  techradar scene radar.toml
  techradar scene radar.toml -f dot -o -
  techradar scene radar.toml --detailed -f png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScene(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file or - for stdout (default: <input>_scene.<format>)")
	f.StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, dot, png, pdf")
	f.BoolVar(&opts.detailed, "detailed", false, "show angles and radii on nodes")
	f.Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

func (c *CLI) runScene(cmd *cobra.Command, input string, opts sceneOpts) error {
	ctx := cmd.Context()
	def, err := loadDefinition(input, "")
	if err != nil {
		return err
	}
	l, err := layout.Build(def)
	if err != nil {
		return err
	}
	c.Logger.Debug("built scene", "regions", len(l.Scene.Regions()))

	dot := nodelink.ToDOT(l.Scene, nodelink.Options{Title: def.Title, Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = nodelink.RenderSVG(ctx, dot)
	case "png":
		data, err = nodelink.RenderPNG(ctx, dot, opts.scale)
	case "pdf":
		data, err = nodelink.RenderPDF(ctx, dot)
	default:
		return fmt.Errorf("unsupported scene format %q (svg, dot, png, pdf)", opts.format)
	}
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	path := opts.output
	if path == "" {
		path = basePath("", input) + "_scene." + opts.format
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	out := printer{w: cmd.OutOrStdout()}
	out.success("Scene graph with %d regions", len(l.Scene.Regions()))
	out.file(path)
	return nil
}
