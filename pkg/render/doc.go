// Package render turns radar layouts into files.
//
// # Overview
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Radar drawing and data export (in [sink] subpackage)
//   - Blip shapes and color styles (in [styles] subpackage)
//   - Region tree diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg). Both the radar and the node-link renderers use them.
//
//	svg := sink.RenderSVG(l)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage draws the scene's region tree (segments,
// sub-segments, rings) with Graphviz, which is handy when debugging how
// labels resolve to regions.
//
//	dot := nodelink.ToDOT(l.Scene, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [sink]: github.com/matzehuels/techradar/pkg/render/sink
// [styles]: github.com/matzehuels/techradar/pkg/render/styles
// [nodelink]: github.com/matzehuels/techradar/pkg/render/nodelink
package render
