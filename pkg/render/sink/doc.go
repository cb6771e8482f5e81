// Package sink provides output format renderers for radar layouts.
//
// # Overview
//
// A "sink" transforms a computed [layout.Layout] into a final output format:
//
//   - SVG: the radar drawing, optionally with hover interaction
//   - JSON: the exported [layout.Document]
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] draws the radar centered on the origin with a viewBox of
// (-d/2, -d/2, d, d). Every segment is a group holding one path per ring
// band, its dividing lines and a label laid along the outer arc. Placed
// blips follow in a separate group, each carrying data attributes (id,
// segment, ring, payload) for scripting.
//
//	svg := sink.RenderSVG(l,
//	    sink.WithStyle(styles.Monochrome{Shape: styles.Square}),
//	    sink.WithRingLabels(),
//	)
//
// # SVG Options
//
//   - [WithStyle]: visual style ([styles.Simple] or [styles.Monochrome])
//   - [WithoutLabels]: omit segment labels
//   - [WithRingLabels]: write ring names along the first segment
//   - [WithResponsive]: size to the container instead of the diameter
//   - [WithInteraction]: highlight a blip's segment on hover
//   - [WithCSS]: append a custom stylesheet
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] generate SVG first, then convert via
// [render.ToPDF] and [render.ToPNG]. These require librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [layout.Layout]: github.com/matzehuels/techradar/pkg/layout.Layout
// [layout.Document]: github.com/matzehuels/techradar/pkg/layout.Document
// [styles.Simple]: github.com/matzehuels/techradar/pkg/render/styles.Simple
// [styles.Monochrome]: github.com/matzehuels/techradar/pkg/render/styles.Monochrome
// [render.ToPDF]: github.com/matzehuels/techradar/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/techradar/pkg/render.ToPNG
package sink
