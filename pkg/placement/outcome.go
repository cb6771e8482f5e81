package placement

import (
	"github.com/matzehuels/techradar/pkg/geometry"
	"github.com/matzehuels/techradar/pkg/radar"
)

// Outcome is the result of placing one blip.
type Outcome struct {
	Blip       radar.Blip
	Placed     bool
	Coordinate geometry.Coordinate
	Region     int        // scene region index, -1 when unresolved
	Diameter   float64    // final diameter, smaller than requested after shrinking
	Attempts   int        // candidates sampled across all diameters
	Shrinks    int        // diameter reductions performed
	Reason     SkipReason // set when Placed is false
}

// Summary aggregates a set of outcomes.
type Summary struct {
	Placed   int
	Skipped  int
	Shrunk   int
	Attempts int
	ByReason map[SkipReason]int
}

// Summarize counts placed, skipped and shrunk blips.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{ByReason: make(map[SkipReason]int)}
	for _, o := range outcomes {
		s.Attempts += o.Attempts
		if o.Shrinks > 0 {
			s.Shrunk++
		}
		if o.Placed {
			s.Placed++
			continue
		}
		s.Skipped++
		s.ByReason[o.Reason]++
	}
	return s
}
