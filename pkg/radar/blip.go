package radar

import (
	"fmt"

	"github.com/matzehuels/techradar/pkg/errors"
)

// Blip is a single data point requested for placement. It targets a ring
// within a segment, optionally narrowed to a sub-segment.
type Blip struct {
	ID         int            `json:"id" yaml:"id" toml:"id"`
	Name       string         `json:"name" yaml:"name" toml:"name"`
	Segment    string         `json:"segment" yaml:"segment" toml:"segment"`
	SubSegment string         `json:"sub_segment,omitempty" yaml:"sub_segment,omitempty" toml:"sub_segment,omitempty"`
	Ring       string         `json:"ring" yaml:"ring" toml:"ring"`
	Payload    map[string]any `json:"payload,omitempty" yaml:"payload,omitempty" toml:"payload,omitempty"`
}

// Label returns the "id - name" form used in tooltips and log output.
func (b Blip) Label() string {
	return fmt.Sprintf("%d - %s", b.ID, b.Name)
}

// ValidateBlips checks that every blip has a positive, unique id.
// Region labels are not checked here; unknown labels are reported per blip
// during placement.
func ValidateBlips(blips []Blip) error {
	seen := make(map[int]struct{}, len(blips))
	for i, b := range blips {
		if b.ID < 1 {
			return errors.New(errors.ErrCodeInvalidInput, "blip %d (%q): id must be >= 1", i, b.Name)
		}
		if _, dup := seen[b.ID]; dup {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate blip id %d", b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}
