// Package styles draws blips and supplies the stylesheet of a radar SVG.
//
// A [Style] is given an svgo canvas and the data of one blip at a time.
// [Simple] colors blips by ring; [Monochrome] draws everything in black
// on white for print. Both delegate the outline to a [ShapeFunc], chosen
// from the built-in [Shape] names or supplied by the caller.
package styles

import (
	svg "github.com/ajstarks/svgo/float"

	"github.com/matzehuels/techradar/pkg/errors"
)

// Style defines the visual appearance of a radar.
type Style interface {
	// RenderDefs writes stylesheet and <defs> content.
	RenderDefs(canvas *svg.SVG)
	// RenderBlip writes the shape and id text of one blip.
	RenderBlip(canvas *svg.SVG, b Blip)
}

// Blip contains all data needed to draw a single placed blip.
type Blip struct {
	ID        int
	Name      string
	Ring      int     // ring ordinal, 0 is the innermost
	RingLabel string  // ring label
	CX, CY    float64 // center
	Diameter  float64 // diameter after any shrinking during placement
	Stroke    float64 // outline width
	Font      string
	FontSize  float64
	Weight    string
}

// Colors is the fill and outline color of a blip.
type Colors struct {
	Fill   string
	Stroke string
}

// ColorFunc picks the colors of a blip.
type ColorFunc func(b Blip) Colors

var ringStrokes = []string{"red", "orange", "yellow", "limegreen"}

// RingColors fills blips white and outlines them by ring, from red at the
// center through orange, yellow and limegreen, then green for any further
// rings.
func RingColors(b Blip) Colors {
	c := Colors{Fill: "white", Stroke: "green"}
	if b.Ring >= 0 && b.Ring < len(ringStrokes) {
		c.Stroke = ringStrokes[b.Ring]
	}
	return c
}

// Names lists the style names accepted by [Parse].
var Names = []string{"simple", "mono"}

// Parse returns the named style drawing blips with shape.
func Parse(name string, shape ShapeFunc) (Style, error) {
	switch name {
	case "", "simple":
		return Simple{Shape: shape}, nil
	case "mono", "monochrome":
		return Monochrome{Shape: shape}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown style %q (available: %v)", name, Names)
	}
}
