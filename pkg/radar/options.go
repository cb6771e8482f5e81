package radar

import (
	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/geometry"
)

// Default values applied by [DefaultOptions].
const (
	DefaultDiameter      = 2000
	DefaultRingStroke    = 2
	DefaultSegmentStroke = 2
	DefaultLabelOffset   = 20
	DefaultLabelSize     = 40
	DefaultBlipDiameter  = 22
	DefaultBlipStroke    = 2
	DefaultBlipFontSize  = 11
	DefaultBlipWeight    = "bold"
	DefaultFont          = "Helvetica, Arial, sans-serif"
	DefaultLabelColor    = "#333333"
	DefaultDecimals      = 2
	DefaultPolicy        = "equal-area"
	DefaultShape         = "circle"
	DefaultSeed          = uint64(42)
	DefaultMaxIterations = 200
	DefaultShrinkStep    = 2
	DefaultMaxShrinks    = 10
)

// LabelOptions controls ring and segment labels.
type LabelOptions struct {
	Offset float64 `json:"offset,omitempty" yaml:"offset,omitempty" toml:"offset"`
	Size   float64 `json:"size,omitempty" yaml:"size,omitempty" toml:"size"`
	Font   string  `json:"font,omitempty" yaml:"font,omitempty" toml:"font"`
	Color  string  `json:"color,omitempty" yaml:"color,omitempty" toml:"color"`
}

// BlipOptions controls blip size and appearance.
type BlipOptions struct {
	Diameter float64 `json:"diameter,omitempty" yaml:"diameter,omitempty" toml:"diameter"`
	Stroke   float64 `json:"stroke,omitempty" yaml:"stroke,omitempty" toml:"stroke"`
	FontSize float64 `json:"font_size,omitempty" yaml:"font_size,omitempty" toml:"font_size"`
	Font     string  `json:"font,omitempty" yaml:"font,omitempty" toml:"font"`
	Weight   string  `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight"`
	Shape    string  `json:"shape,omitempty" yaml:"shape,omitempty" toml:"shape"`
}

// PlacementOptions bounds the collision-avoidance search.
type PlacementOptions struct {
	MaxIterations int     `json:"max_iterations,omitempty" yaml:"max_iterations,omitempty" toml:"max_iterations"`
	ShrinkStep    float64 `json:"shrink_step,omitempty" yaml:"shrink_step,omitempty" toml:"shrink_step"`
	MaxShrinks    int     `json:"max_shrinks,omitempty" yaml:"max_shrinks,omitempty" toml:"max_shrinks"`
}

// Options parameterizes region construction, placement and rendering.
// Zero fields mean "use the default" when merged onto [DefaultOptions].
type Options struct {
	Diameter      float64          `json:"diameter,omitempty" yaml:"diameter,omitempty" toml:"diameter"`
	RingStroke    float64          `json:"ring_stroke,omitempty" yaml:"ring_stroke,omitempty" toml:"ring_stroke"`
	SegmentStroke float64          `json:"segment_stroke,omitempty" yaml:"segment_stroke,omitempty" toml:"segment_stroke"`
	Radii         string           `json:"radii,omitempty" yaml:"radii,omitempty" toml:"radii"`
	Decimals      int              `json:"decimals,omitempty" yaml:"decimals,omitempty" toml:"decimals"`
	Seed          uint64           `json:"seed,omitempty" yaml:"seed,omitempty" toml:"seed"`
	Label         LabelOptions     `json:"label" yaml:"label" toml:"label"`
	Blip          BlipOptions      `json:"blip" yaml:"blip" toml:"blip"`
	Placement     PlacementOptions `json:"placement" yaml:"placement" toml:"placement"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Diameter:      DefaultDiameter,
		RingStroke:    DefaultRingStroke,
		SegmentStroke: DefaultSegmentStroke,
		Radii:         DefaultPolicy,
		Decimals:      DefaultDecimals,
		Seed:          DefaultSeed,
		Label: LabelOptions{
			Offset: DefaultLabelOffset,
			Size:   DefaultLabelSize,
			Font:   DefaultFont,
			Color:  DefaultLabelColor,
		},
		Blip: BlipOptions{
			Diameter: DefaultBlipDiameter,
			Stroke:   DefaultBlipStroke,
			FontSize: DefaultBlipFontSize,
			Font:     DefaultFont,
			Weight:   DefaultBlipWeight,
			Shape:    DefaultShape,
		},
		Placement: PlacementOptions{
			MaxIterations: DefaultMaxIterations,
			ShrinkStep:    DefaultShrinkStep,
			MaxShrinks:    DefaultMaxShrinks,
		},
	}
}

// Merge returns o with every non-zero field of override applied on top,
// descending into the nested option groups.
func (o Options) Merge(override Options) Options {
	set(&o.Diameter, override.Diameter)
	set(&o.RingStroke, override.RingStroke)
	set(&o.SegmentStroke, override.SegmentStroke)
	set(&o.Radii, override.Radii)
	set(&o.Decimals, override.Decimals)
	set(&o.Seed, override.Seed)

	set(&o.Label.Offset, override.Label.Offset)
	set(&o.Label.Size, override.Label.Size)
	set(&o.Label.Font, override.Label.Font)
	set(&o.Label.Color, override.Label.Color)

	set(&o.Blip.Diameter, override.Blip.Diameter)
	set(&o.Blip.Stroke, override.Blip.Stroke)
	set(&o.Blip.FontSize, override.Blip.FontSize)
	set(&o.Blip.Font, override.Blip.Font)
	set(&o.Blip.Weight, override.Blip.Weight)
	set(&o.Blip.Shape, override.Blip.Shape)

	set(&o.Placement.MaxIterations, override.Placement.MaxIterations)
	set(&o.Placement.ShrinkStep, override.Placement.ShrinkStep)
	set(&o.Placement.MaxShrinks, override.Placement.MaxShrinks)
	return o
}

func set[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}

// Radius returns the radius available to rings once strokes and labels
// around the outer edge are accounted for.
func (o Options) Radius() float64 {
	return (o.Diameter - 2*o.RingStroke - 2*o.Label.Offset - 2*o.Label.Size) / 2
}

// Validate checks option values that would make rendering meaningless.
func (o Options) Validate() error {
	if o.Diameter <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "diameter must be positive, got %g", o.Diameter)
	}
	if o.RingStroke < 0 || o.SegmentStroke < 0 || o.Blip.Stroke < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "stroke widths cannot be negative")
	}
	if o.Label.Offset < 0 || o.Label.Size < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "label offset and size cannot be negative")
	}
	if o.Blip.Diameter <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "blip diameter must be positive, got %g", o.Blip.Diameter)
	}
	if o.Decimals < 0 || o.Decimals > 10 {
		return errors.New(errors.ErrCodeInvalidConfig, "decimals must be in [0, 10], got %d", o.Decimals)
	}
	if o.Placement.MaxIterations < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_iterations must be >= 1, got %d", o.Placement.MaxIterations)
	}
	if o.Placement.ShrinkStep <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "shrink_step must be positive, got %g", o.Placement.ShrinkStep)
	}
	if o.Placement.MaxShrinks < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_shrinks cannot be negative")
	}
	if _, err := geometry.ParsePolicy(o.Radii); err != nil {
		return err
	}
	if r := o.Radius(); r < 1 {
		return errors.New(errors.ErrCodeInvalidRadius, "diameter %g leaves no room for rings after labels (radius %g)", o.Diameter, r)
	}
	return nil
}
