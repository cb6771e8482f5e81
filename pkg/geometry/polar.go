package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Coordinate is a point in the diagram's cartesian plane. The origin is the
// radar center and y grows downward.
type Coordinate = geom.Coord

// ToCartesian converts a polar position to a Coordinate.
//
// Angle 0 maps to the top of the diagram:
//
//	x = r·cos(angle − π/2)
//	y = r·sin(angle − π/2)
func ToCartesian(radius, angle float64) Coordinate {
	a := angle - math.Pi/2
	return Coordinate{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
}

// ToCartesianRounded is [ToCartesian] with both components rounded to the
// given number of decimals. A rounded negative zero is returned as zero so
// that serialized output stays stable.
func ToCartesianRounded(radius, angle float64, decimals int) Coordinate {
	c := ToCartesian(radius, angle)
	return Coordinate{X: RoundDec(c.X, decimals), Y: RoundDec(c.Y, decimals)}
}

// RoundDec rounds v to the given number of decimal places, half away from
// zero. Negative zero is normalized to zero.
func RoundDec(v float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// ToPolar returns the radius and angle of c under the same orientation as
// [ToCartesian]. The angle is normalized to [0, 2π).
func ToPolar(c Coordinate) (radius, angle float64) {
	radius = math.Hypot(c.X, c.Y)
	angle = math.Atan2(c.Y, c.X) + math.Pi/2
	if angle < 0 {
		angle += FullTurn
	}
	if angle >= FullTurn {
		angle -= FullTurn
	}
	return radius, angle
}
