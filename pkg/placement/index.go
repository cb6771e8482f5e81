package placement

import (
	"math"

	"github.com/matzehuels/techradar/pkg/geometry"
)

// Index records accepted coordinates per region for one placement run.
type Index struct {
	points map[int][]geometry.Coordinate
	n      int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{points: make(map[int][]geometry.Coordinate)}
}

// Add records c as accepted in region.
func (ix *Index) Add(region int, c geometry.Coordinate) {
	ix.points[region] = append(ix.points[region], c)
	ix.n++
}

// Points returns the coordinates accepted in region, in acceptance order.
func (ix *Index) Points(region int) []geometry.Coordinate {
	return ix.points[region]
}

// Len returns the number of accepted coordinates across all regions.
func (ix *Index) Len() int { return ix.n }

// Collides reports whether c is closer than threshold to an accepted point
// of region on both axes. This is an axis-aligned box test, not a circle
// test.
func (ix *Index) Collides(region int, c geometry.Coordinate, threshold float64) bool {
	for _, p := range ix.points[region] {
		if math.Abs(c.X-p.X) < threshold && math.Abs(c.Y-p.Y) < threshold {
			return true
		}
	}
	return false
}
