package radar

import (
	"github.com/matzehuels/techradar/pkg/errors"
)

// Definition is a complete radar: its structure, options and blips.
// It is the unit read from configuration files and accepted by the API.
type Definition struct {
	Title       string   `json:"title,omitempty" yaml:"title,omitempty" toml:"title"`
	Segments    []string `json:"segments" yaml:"segments" toml:"segments"`
	SubSegments []string `json:"sub_segments,omitempty" yaml:"sub_segments,omitempty" toml:"sub_segments"`
	Rings       []string `json:"rings" yaml:"rings" toml:"rings"`
	Options     Options  `json:"options" yaml:"options" toml:"options"`
	Blips       []Blip   `json:"blips,omitempty" yaml:"blips,omitempty" toml:"blips"`
}

// ResolvedOptions returns the definition's options merged onto the defaults.
func (d Definition) ResolvedOptions() Options {
	return DefaultOptions().Merge(d.Options)
}

// Validate checks labels, options and blip ids.
func (d Definition) Validate() error {
	if err := errors.ValidateLabels("segment", d.Segments); err != nil {
		return err
	}
	if err := errors.ValidateLabels("sub-segment", d.SubSegments); err != nil {
		return err
	}
	if len(d.Rings) == 0 {
		return errors.New(errors.ErrCodeInvalidRingCount, "radar needs at least one ring")
	}
	if err := errors.ValidateLabels("ring", d.Rings); err != nil {
		return err
	}
	if err := d.ResolvedOptions().Validate(); err != nil {
		return err
	}
	return ValidateBlips(d.Blips)
}
