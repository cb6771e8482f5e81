// Package geometry computes the angular and radial structure of a radar
// diagram and converts polar positions into diagram coordinates.
//
// # Angles
//
// [Angles] divides a full turn into N equal sectors and returns the N+1
// boundary angles in radians, starting at 0 and ending at exactly 2π.
// Zero segments yield an empty profile rather than an error.
//
// # Radii
//
// Ring boundaries are computed by a [RadiusProfile], which selects one of
// the built-in policies or a caller-supplied [RadiusFunc]:
//
//   - [PolicyEqualThickness]: every ring has the same width.
//   - [PolicyEqualArea]: every ring covers the same area within a single
//     segment, so outer rings are thinner. Boundaries are rounded to whole
//     units.
//   - [PolicyGoldenRatio]: boundaries shrink by the golden ratio from the
//     outside in.
//   - [PolicyCustom]: any function with the [RadiusFunc] signature.
//
// All built-in policies are pure functions. Invalid parameters (radius
// below 1, fewer than one ring, or fewer than one segment for equal-area)
// fail with a coded error from pkg/errors and never produce a partial
// profile.
//
// # Orientation
//
// Angle 0 points up. [ToCartesian] rotates by −π/2 so the first segment
// starts at twelve o'clock and proceeds clockwise in screen coordinates,
// where y grows downward.
//
//	c := geometry.ToCartesianRounded(100, math.Pi/2, 2) // {X: 100, Y: 0}
package geometry
