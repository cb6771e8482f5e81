package geometry

import (
	"math"
	"testing"
)

func TestToCartesianRounded(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		angle  float64
		want   Coordinate
	}{
		{"top", 100, 0, Coordinate{X: 0, Y: -100}},
		{"right", 100, math.Pi / 2, Coordinate{X: 100, Y: 0}},
		{"bottom", 100, math.Pi, Coordinate{X: 0, Y: 100}},
		{"left", 100, 3 * math.Pi / 2, Coordinate{X: -100, Y: 0}},
		{"full turn", 100, 2 * math.Pi, Coordinate{X: 0, Y: -100}},
		{"origin", 0, 1, Coordinate{X: 0, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToCartesianRounded(tt.radius, tt.angle, 2)
			if got != tt.want {
				t.Errorf("ToCartesianRounded(%v, %v) = %+v, want %+v", tt.radius, tt.angle, got, tt.want)
			}
			if (got.X == 0 && math.Signbit(got.X)) || (got.Y == 0 && math.Signbit(got.Y)) {
				t.Errorf("negative zero not normalized: %+v", got)
			}
		})
	}
}

func TestToCartesianFullTurnNoNegativeZero(t *testing.T) {
	got := ToCartesianRounded(100, 2*math.Pi, 2)
	if math.Signbit(got.X) {
		t.Errorf("X = %v, want +0", got.X)
	}
}

func TestToCartesianUnrounded(t *testing.T) {
	got := ToCartesian(100, math.Pi/4)
	want := 100 * math.Sqrt2 / 2
	if math.Abs(got.X-want) > 1e-9 || math.Abs(got.Y+want) > 1e-9 {
		t.Errorf("ToCartesian(100, π/4) = %+v, want (%v, %v)", got, want, -want)
	}
}

func TestRoundDec(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     float64
	}{
		{1.2345, 2, 1.23},
		{1.235, 1, 1.2},
		{-0.001, 2, 0},
		{12.5, 0, 13},
		{7.77, -1, 8},
	}
	for _, tt := range tests {
		got := RoundDec(tt.v, tt.decimals)
		if got != tt.want {
			t.Errorf("RoundDec(%v, %d) = %v, want %v", tt.v, tt.decimals, got, tt.want)
		}
		if got == 0 && math.Signbit(got) {
			t.Errorf("RoundDec(%v, %d) returned negative zero", tt.v, tt.decimals)
		}
	}
}

func TestToPolarRoundTrip(t *testing.T) {
	for _, angle := range []float64{0.3, math.Pi / 2, 2.5, math.Pi, 4, 1.75 * math.Pi} {
		r, a := ToPolar(ToCartesian(50, angle))
		if math.Abs(r-50) > 1e-9 {
			t.Errorf("radius = %v, want 50", r)
		}
		if math.Abs(a-angle) > 1e-9 {
			t.Errorf("angle = %v, want %v", a, angle)
		}
	}
}
