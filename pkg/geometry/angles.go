package geometry

import "math"

// FullTurn is one complete revolution in radians.
const FullTurn = 2 * math.Pi

// Angles returns the boundary angles of n equal sectors: 0, Δ, 2Δ, …, 2π
// with Δ = 2π/n. The slice has n+1 entries and is strictly increasing.
// For n < 1 it returns nil.
func Angles(n int) []float64 {
	if n < 1 {
		return nil
	}
	step := FullTurn / float64(n)
	out := make([]float64, n+1)
	for i := range n {
		out[i] = float64(i) * step
	}
	out[n] = FullTurn
	return out
}

// SectorWidth returns the angular width of one of n equal sectors.
func SectorWidth(n int) float64 {
	if n < 1 {
		return 0
	}
	return FullTurn / float64(n)
}

// ToRadian converts degrees to radians.
func ToRadian(deg float64) float64 { return deg * math.Pi / 180 }

// ToDegree converts radians to degrees.
func ToDegree(rad float64) float64 { return rad * 180 / math.Pi }
