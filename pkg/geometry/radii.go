package geometry

import (
	"math"
	"strings"

	"github.com/matzehuels/techradar/pkg/errors"
)

// GoldenRatio is the spacing ratio used by [PolicyGoldenRatio].
const GoldenRatio = math.Phi

// RadiusFunc computes ring boundary radii for a radar of the given radius.
// It returns numRings+1 ascending values starting at 0.
type RadiusFunc func(radius float64, numRings, numSegs int) ([]float64, error)

// Policy names a ring spacing strategy.
type Policy string

const (
	PolicyEqualThickness Policy = "equal-thickness"
	PolicyEqualArea      Policy = "equal-area"
	PolicyGoldenRatio    Policy = "golden-ratio"
	PolicyCustom         Policy = "custom"
)

// Policies lists the built-in policies in display order.
var Policies = []Policy{PolicyEqualThickness, PolicyEqualArea, PolicyGoldenRatio}

var policyAliases = map[string]Policy{
	"equal-thickness": PolicyEqualThickness,
	"same-radii":      PolicyEqualThickness,
	"equal-area":      PolicyEqualArea,
	"same-area":       PolicyEqualArea,
	"golden-ratio":    PolicyGoldenRatio,
	"golden":          PolicyGoldenRatio,
	"custom":          PolicyCustom,
}

// ParsePolicy resolves a policy name. Matching is case-insensitive and
// accepts underscores in place of dashes.
func ParsePolicy(name string) (Policy, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if p, ok := policyAliases[key]; ok {
		return p, nil
	}
	return "", errors.New(errors.ErrCodeInvalidPolicy, "unknown radius policy %q", name)
}

// RadiusProfile selects how ring boundaries are computed. The zero value
// uses equal-area spacing.
type RadiusProfile struct {
	Policy Policy
	// Custom is required when Policy is PolicyCustom and ignored otherwise.
	Custom RadiusFunc
}

// Compute returns the ring boundaries for the configured policy.
func (p RadiusProfile) Compute(radius float64, numRings, numSegs int) ([]float64, error) {
	switch p.Policy {
	case PolicyEqualThickness:
		return EqualThickness(radius, numRings, numSegs)
	case PolicyEqualArea, "":
		return EqualArea(radius, numRings, numSegs)
	case PolicyGoldenRatio:
		return GoldenRatioRadii(radius, numRings, numSegs)
	case PolicyCustom:
		if p.Custom == nil {
			return nil, errors.New(errors.ErrCodeInvalidPolicy, "custom radius policy requires a function")
		}
		radii, err := p.Custom(radius, numRings, numSegs)
		if err != nil {
			return nil, err
		}
		if err := checkProfile(radii, numRings); err != nil {
			return nil, err
		}
		return radii, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidPolicy, "unknown radius policy %q", p.Policy)
	}
}

// EqualThickness places boundary i at i·radius/numRings. numSegs is unused.
func EqualThickness(radius float64, numRings, _ int) ([]float64, error) {
	if err := validate(radius, numRings); err != nil {
		return nil, err
	}
	step := radius / float64(numRings)
	out := make([]float64, numRings+1)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out, nil
}

// EqualArea places boundaries so that every ring covers the same area
// within one segment of angle 2π/numSegs. Each boundary is rounded to the
// nearest whole unit before the next one is derived from it.
func EqualArea(radius float64, numRings, numSegs int) ([]float64, error) {
	if err := validate(radius, numRings); err != nil {
		return nil, err
	}
	if numSegs < 1 {
		return nil, errors.New(errors.ErrCodeInvalidSegmentCount, "equal-area spacing needs at least one segment, got %d", numSegs)
	}
	angle := FullTurn / float64(numSegs)
	ringArea := 0.5 * angle * radius * radius / float64(numRings)
	out := make([]float64, numRings+1)
	for i := range numRings {
		out[i+1] = math.Round(math.Sqrt((2/angle)*ringArea + out[i]*out[i]))
	}
	return out, nil
}

// GoldenRatioRadii places boundary i, counted from the outside in, at
// radius/φ^i. The innermost boundary is 0. numSegs is unused.
func GoldenRatioRadii(radius float64, numRings, _ int) ([]float64, error) {
	if err := validate(radius, numRings); err != nil {
		return nil, err
	}
	out := make([]float64, numRings+1)
	for i := range numRings {
		out[numRings-i] = radius / math.Pow(GoldenRatio, float64(i))
	}
	return out, nil
}

func validate(radius float64, numRings int) error {
	if !(radius >= 1) {
		return errors.New(errors.ErrCodeInvalidRadius, "radius must be >= 1, got %g", radius)
	}
	if numRings < 1 {
		return errors.New(errors.ErrCodeInvalidRingCount, "ring count must be >= 1, got %d", numRings)
	}
	return nil
}

func checkProfile(radii []float64, numRings int) error {
	if len(radii) != numRings+1 {
		return errors.New(errors.ErrCodeInvalidPolicy, "custom radius policy returned %d boundaries, want %d", len(radii), numRings+1)
	}
	if radii[0] != 0 {
		return errors.New(errors.ErrCodeInvalidPolicy, "custom radius policy must start at 0, got %g", radii[0])
	}
	for i := 1; i < len(radii); i++ {
		if radii[i] < radii[i-1] {
			return errors.New(errors.ErrCodeInvalidPolicy, "custom radius policy is not ascending at boundary %d", i)
		}
	}
	return nil
}
