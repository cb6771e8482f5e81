package styles

import (
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/matzehuels/techradar/pkg/errors"
)

// ShapeFunc draws the outline of b centered on (b.CX, b.CY). attrs are
// complete attribute strings such as `fill="white"`.
type ShapeFunc func(canvas *svg.SVG, b Blip, attrs ...string)

// Shape names a built-in blip outline.
type Shape string

const (
	ShapeCircle       Shape = "circle"
	ShapeSquare       Shape = "square"
	ShapeEquiTriangle Shape = "equi-triangle"
	ShapeIsoTriangle  Shape = "iso-triangle"
	ShapeCustom       Shape = "custom"
)

// Shapes lists the built-in shapes.
var Shapes = []Shape{ShapeCircle, ShapeSquare, ShapeEquiTriangle, ShapeIsoTriangle}

// ParseShape resolves a shape name. Matching ignores case and accepts
// underscores in place of dashes.
func ParseShape(name string) (Shape, error) {
	s := Shape(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-"))
	switch s {
	case "":
		return ShapeCircle, nil
	case ShapeCircle, ShapeSquare, ShapeEquiTriangle, ShapeIsoTriangle, ShapeCustom:
		return s, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidShape, "unknown blip shape %q (available: %v)", name, Shapes)
	}
}

// Func returns the drawing function of a built-in shape. ShapeCustom has no
// built-in function and yields nil.
func (s Shape) Func() ShapeFunc {
	switch s {
	case ShapeSquare:
		return Square
	case ShapeEquiTriangle:
		return EquiTriangle
	case ShapeIsoTriangle:
		return IsoTriangle
	case ShapeCustom:
		return nil
	default:
		return Circle
	}
}

// Circle draws a circle of the blip's diameter.
func Circle(canvas *svg.SVG, b Blip, attrs ...string) {
	canvas.Circle(b.CX, b.CY, b.Diameter/2, attrs...)
}

// Square draws an axis-aligned square with sides of the blip's diameter.
func Square(canvas *svg.SVG, b Blip, attrs ...string) {
	canvas.CenterRect(b.CX, b.CY, b.Diameter, b.Diameter, attrs...)
}

// equiHeight is the height of an equilateral triangle relative to its base,
// rounded the way the reference artwork draws it.
const equiHeight = 520.0 / 600.0

// EquiTriangle draws an upward equilateral triangle. It is raised slightly
// so the id text sits in its visual center.
func EquiTriangle(canvas *svg.SVG, b Blip, attrs ...string) {
	d := b.Diameter
	h := equiHeight * d
	top := b.CY - h/2 - 5*d/22
	canvas.Polygon(
		[]float64{b.CX, b.CX + d/2, b.CX - d/2},
		[]float64{top, top + h, top + h},
		attrs...,
	)
}

// IsoTriangle draws an upward isosceles triangle as tall as it is wide,
// raised like [EquiTriangle].
func IsoTriangle(canvas *svg.SVG, b Blip, attrs ...string) {
	d := b.Diameter
	top := b.CY - d/2 - 7*d/22
	canvas.Polygon(
		[]float64{b.CX, b.CX + d/2, b.CX - d/2},
		[]float64{top, top + d, top + d},
		attrs...,
	)
}
