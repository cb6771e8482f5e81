package scene

import (
	"fmt"

	"github.com/matzehuels/techradar/pkg/geometry"
)

// Kind classifies a region.
type Kind int

const (
	KindSegment Kind = iota
	KindSubSegment
	KindRing
)

func (k Kind) String() string {
	switch k {
	case KindSegment:
		return "segment"
	case KindSubSegment:
		return "sub-segment"
	case KindRing:
		return "ring"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Region is a node of the scene arena.
//
// Angles are radians measured clockwise from the top. Segment and
// sub-segment regions span radius 0 to the scene radius.
type Region struct {
	Index   int
	Kind    Kind
	Label   string
	Ordinal int // position among regions of the same kind under the same parent
	Parent  int // -1 for segments

	AngleStart, AngleEnd     float64
	RadiusInner, RadiusOuter float64

	Children []int
}

// SectorWidth returns the angular width of the region.
func (r Region) SectorWidth() float64 { return r.AngleEnd - r.AngleStart }

// MidAngle returns the angle halfway through the region.
func (r Region) MidAngle() float64 { return (r.AngleStart + r.AngleEnd) / 2 }

// Contains reports whether c lies inside the region's annular sector,
// boundaries included.
func (r Region) Contains(c geometry.Coordinate) bool {
	radius, angle := geometry.ToPolar(c)
	if radius < r.RadiusInner || radius > r.RadiusOuter {
		return false
	}
	if radius == 0 {
		return r.RadiusInner == 0
	}
	return angle >= r.AngleStart && angle <= r.AngleEnd
}

// Path locates a ring region by label.
type Path struct {
	Segment    string
	SubSegment string
	Ring       string
}

func (p Path) String() string {
	if p.SubSegment == "" {
		return p.Segment + "/" + p.Ring
	}
	return p.Segment + "/" + p.SubSegment + "/" + p.Ring
}
