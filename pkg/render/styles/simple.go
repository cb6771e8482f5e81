package styles

import (
	"fmt"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
)

const simpleCSS = `
    .segment .ring path { fill: #f4f4f4; stroke: #bbbbbb; }
    .segment:nth-child(even) .ring path { fill: #ececec; }
    .segment line.main { stroke: #888888; }
    .segment line.sub { stroke: #bbbbbb; stroke-dasharray: 6 4; }
    .ring-label { fill: #999999; }
    .blip { cursor: pointer; }
    .blip:hover > :first-child { stroke-width: 4; }`

// Simple colors blips with a [ColorFunc] on a light grey radar.
type Simple struct {
	Shape  ShapeFunc // nil draws circles
	Colors ColorFunc // nil uses RingColors
}

func (s Simple) RenderDefs(canvas *svg.SVG) {
	canvas.Style("text/css", simpleCSS)
}

func (s Simple) RenderBlip(canvas *svg.SVG, b Blip) {
	colors := RingColors
	if s.Colors != nil {
		colors = s.Colors
	}
	c := colors(b)
	drawBlip(canvas, s.Shape, b,
		fmt.Sprintf(`fill="%s"`, c.Fill),
		fmt.Sprintf(`stroke="%s"`, c.Stroke),
	)
}

func drawBlip(canvas *svg.SVG, shape ShapeFunc, b Blip, attrs ...string) {
	if shape == nil {
		shape = Circle
	}
	attrs = append(attrs, fmt.Sprintf(`stroke-width="%s"`, num(b.Stroke)))
	shape(canvas, b, attrs...)

	text := []string{`text-anchor="middle"`, `dominant-baseline="central"`}
	if b.FontSize > 0 {
		text = append(text, fmt.Sprintf(`font-size="%s"`, num(b.FontSize)))
	}
	if b.Font != "" {
		text = append(text, fmt.Sprintf(`font-family="%s"`, b.Font))
	}
	if b.Weight != "" {
		text = append(text, fmt.Sprintf(`font-weight="%s"`, b.Weight))
	}
	canvas.Text(b.CX, b.CY, strconv.Itoa(b.ID), text...)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
