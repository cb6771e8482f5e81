package placement

import (
	"errors"

	"github.com/matzehuels/techradar/pkg/scene"
)

// SkipReason explains why a blip was not placed.
type SkipReason int

const (
	ReasonNone SkipReason = iota
	ReasonSegmentNotFound
	ReasonSubSegmentNotFound
	ReasonRingNotFound
	ReasonNoCoordinate
)

func (r SkipReason) String() string {
	switch r {
	case ReasonNone:
		return "placed"
	case ReasonSegmentNotFound:
		return "segment not found"
	case ReasonSubSegmentNotFound:
		return "sub-segment not found"
	case ReasonRingNotFound:
		return "ring not found"
	case ReasonNoCoordinate:
		return "no suitable coordinates found"
	default:
		return "unknown"
	}
}

// MarshalText encodes the reason by its description.
func (r SkipReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func reasonFor(err error) SkipReason {
	switch {
	case errors.Is(err, scene.ErrSegmentNotFound):
		return ReasonSegmentNotFound
	case errors.Is(err, scene.ErrSubSegmentNotFound):
		return ReasonSubSegmentNotFound
	default:
		return ReasonRingNotFound
	}
}
