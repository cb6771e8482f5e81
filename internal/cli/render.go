package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/techradar/pkg/io"
	"github.com/matzehuels/techradar/pkg/pipeline"
	"github.com/matzehuels/techradar/pkg/radar"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output      string // output file, base path for several formats, or "-" for stdout
	formats     string // comma-separated output formats
	blips       string // extra JSON/YAML blip list appended to the definition
	seed        uint64
	style       string
	shape       string
	title       string
	noLabels    bool
	ringLabels  bool
	interactive bool
	responsive  bool
	scale       float64
	refresh     bool
	cache       cacheFlags
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <radar.toml>",
		Short: "Lay out a radar and render it",
		Long: `Lay out a radar definition and render it to one or more formats.

The definition may be TOML, JSON or YAML. Blips can live in the definition
or in a separate list passed with --blips. Blips whose segment, sub-segment
or ring does not exist, or that cannot be fitted without overlapping, are
reported and left out of the drawing.`,
		Example: `  techradar render radar.toml
  techradar render radar.toml --blips blips.yaml -f svg,json -o out/radar
  techradar render radar.toml --seed 7 --shape square --ring-labels -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file, base path for several formats, or - for stdout")
	f.StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), json, png, pdf, dot (comma-separated)")
	f.StringVar(&opts.blips, "blips", "", "JSON or YAML file with additional blips")
	f.Uint64Var(&opts.seed, "seed", 0, "placement seed (default: definition seed or 42)")
	f.StringVar(&opts.style, "style", pipeline.DefaultStyle, "visual style: simple, mono")
	f.StringVar(&opts.shape, "shape", "", "blip shape: circle, square, equi-triangle, iso-triangle")
	f.StringVar(&opts.title, "title", "", "document title (default: definition title)")
	f.BoolVar(&opts.noLabels, "no-labels", false, "omit segment labels")
	f.BoolVar(&opts.ringLabels, "ring-labels", false, "draw ring names along the first segment")
	f.BoolVar(&opts.interactive, "interactive", false, "embed hover highlighting script in SVG")
	f.BoolVar(&opts.responsive, "responsive", false, "scale SVG to its container")
	f.Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	f.BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")
	opts.cache.register(cmd)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	out := printer{w: cmd.OutOrStdout()}
	formats := parseFormats(opts.formats)
	toStdout := opts.output == "-"
	if toStdout && len(formats) != 1 {
		return fmt.Errorf("--output - needs exactly one format, got %d", len(formats))
	}

	def, err := loadDefinition(input, opts.blips)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded definition",
		"segments", len(def.Segments),
		"sub_segments", len(def.SubSegments),
		"rings", len(def.Rings),
		"blips", len(def.Blips))

	runner, err := c.newRunner(ctx, opts.cache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinner(ctx, cmd.ErrOrStderr(), "Placing blips").start()
	result, err := runner.Execute(ctx, pipeline.Options{
		Definition:  def,
		Seed:        opts.seed,
		Shape:       opts.shape,
		Formats:     formats,
		Style:       opts.style,
		Title:       opts.title,
		NoLabels:    opts.noLabels,
		RingLabels:  opts.ringLabels,
		Interactive: opts.interactive,
		Responsive:  opts.responsive,
		Scale:       opts.scale,
		Refresh:     opts.refresh,
	})
	spin.stop()
	if err != nil {
		return err
	}

	if toStdout {
		_, err := cmd.OutOrStdout().Write(result.Artifacts[formats[0]])
		return err
	}

	paths, err := writeArtifacts(result, formats, opts.output, input)
	if err != nil {
		return err
	}

	out.success("Rendered %s", displayTitle(def, input))
	for _, p := range paths {
		out.file(p)
	}
	out.stats(result.Stats, result.CacheInfo.RenderHit)
	for _, o := range result.Layout.Skipped() {
		out.warning("%s not placed: %s", o.Blip.Label(), o.Reason)
	}
	if result.Stats.Skipped > 0 {
		out.nextStep("Inspect placements", "techradar inspect "+input)
	}
	return nil
}

// loadDefinition reads the definition at path and appends the blips listed
// in blipsPath, if any.
func loadDefinition(path, blipsPath string) (radar.Definition, error) {
	def, err := pkgio.ImportDefinition(path)
	if err != nil {
		return radar.Definition{}, err
	}
	if blipsPath == "" {
		return def, nil
	}
	blips, err := pkgio.ImportBlips(blipsPath)
	if err != nil {
		return radar.Definition{}, err
	}
	def.Blips = append(def.Blips, blips...)
	if err := radar.ValidateBlips(def.Blips); err != nil {
		return radar.Definition{}, err
	}
	return def, nil
}

// writeArtifacts writes each format to its own file and returns the paths.
// A single format with an explicit output is written to that exact path.
func writeArtifacts(result *pipeline.Result, formats []string, output, input string) ([]string, error) {
	base := basePath(output, input)
	var paths []string
	for _, format := range formats {
		path := base + "." + format
		if len(formats) == 1 && output != "" {
			path = output
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func displayTitle(def radar.Definition, input string) string {
	if def.Title != "" {
		return def.Title
	}
	return input
}
