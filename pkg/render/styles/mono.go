package styles

import (
	svg "github.com/ajstarks/svgo/float"
)

const monoCSS = `
    .segment .ring path { fill: none; stroke: #000000; }
    .segment line { stroke: #000000; }
    .segment line.sub { stroke-dasharray: 2 3; }
    .ring-label { fill: #000000; }`

// Monochrome draws the radar and all blips in black on white.
type Monochrome struct {
	Shape ShapeFunc
}

func (m Monochrome) RenderDefs(canvas *svg.SVG) {
	canvas.Style("text/css", monoCSS)
}

func (m Monochrome) RenderBlip(canvas *svg.SVG, b Blip) {
	drawBlip(canvas, m.Shape, b, `fill="white"`, `stroke="black"`)
}
