package pipeline

import (
	"context"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/layout"
	"github.com/matzehuels/techradar/pkg/render/nodelink"
	"github.com/matzehuels/techradar/pkg/render/sink"
	"github.com/matzehuels/techradar/pkg/render/styles"
)

// RenderLayout generates output artifacts in the requested formats.
// opts must have passed [Options.ValidateAndSetDefaults].
func RenderLayout(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	svgOpts, err := buildSVGOptions(opts)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error
		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONStyle(opts.Style))
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
		case FormatDOT:
			data = []byte(nodelink.ToDOT(l.Scene, nodelink.Options{Title: l.Title, Detailed: true}))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(opts Options) ([]sink.SVGOption, error) {
	shape := opts.ShapeFunc
	if shape == nil {
		shape = opts.shape.Func()
	}
	style, err := styles.Parse(opts.Style, shape)
	if err != nil {
		return nil, err
	}

	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.NoLabels {
		svgOpts = append(svgOpts, sink.WithoutLabels())
	}
	if opts.RingLabels {
		svgOpts = append(svgOpts, sink.WithRingLabels())
	}
	if opts.Interactive {
		svgOpts = append(svgOpts, sink.WithInteraction())
	}
	if opts.Responsive {
		svgOpts = append(svgOpts, sink.WithResponsive())
	}
	return svgOpts, nil
}
