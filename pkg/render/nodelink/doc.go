// Package nodelink renders a radar's region tree as a node-link diagram.
//
// # Overview
//
// A scene is an arena of regions: segments at the top, optional
// sub-segments below them and ring bands at the leaves. This package draws
// that tree with Graphviz, which makes label resolution easy to inspect.
//
// # Usage
//
//	dot := nodelink.ToDOT(l.Scene, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)
//
// # Options
//
//   - Title: label of the root node
//   - Detailed: add kind, ordinal, angles and radii to each label
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
