package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/geometry"
	"github.com/matzehuels/techradar/pkg/render"
	"github.com/matzehuels/techradar/pkg/scene"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Title labels the root node. Defaults to "radar".
	Title string
	// Detailed adds angles (degrees) and radii to node labels.
	Detailed bool
}

// ToDOT converts the region tree of a scene to Graphviz DOT format.
// Segments hang off a single root node; ring regions are drawn as ellipses
// and the containers as boxes.
func ToDOT(sc *scene.Scene, opts Options) string {
	title := opts.Title
	if title == "" {
		title = "radar"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  root [label=%q, shape=doublecircle];\n", title)
	for _, r := range sc.Regions() {
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(r.Index), strings.Join(fmtAttrs(r, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, r := range sc.Regions() {
		from := "root"
		if r.Parent >= 0 {
			from = nodeID(r.Parent)
		}
		fmt.Fprintf(&buf, "  %s -> %s;\n", from, nodeID(r.Index))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "r" + strconv.Itoa(i) }

func fmtLabel(r scene.Region, detailed bool) string {
	if !detailed {
		return r.Label
	}
	return fmt.Sprintf("%s\n%s #%d\n%.1f - %.1f deg\nr %.1f - %.1f",
		r.Label, r.Kind, r.Ordinal,
		geometry.ToDegree(r.AngleStart), geometry.ToDegree(r.AngleEnd),
		r.RadiusInner, r.RadiusOuter)
}

func fmtAttrs(r scene.Region, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(r, detailed))}
	switch r.Kind {
	case scene.KindRing:
		attrs = append(attrs, "shape=ellipse", "style=filled", "fillcolor=whitesmoke")
	case scene.KindSubSegment:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element to a zero-origin viewBox at
// the drawing's natural size; Graphviz emits point units otherwise.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
