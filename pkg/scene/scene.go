package scene

import (
	"errors"
	"fmt"

	"github.com/jbeda/geom"

	apperr "github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/geometry"
)

// Lookup failures returned by [Scene.Find].
var (
	ErrSegmentNotFound    = errors.New("segment not found")
	ErrSubSegmentNotFound = errors.New("sub-segment not found")
	ErrRingNotFound       = errors.New("ring not found")
)

// Config describes the scene to build.
type Config struct {
	Segments    []string
	SubSegments []string // applied to every segment; may be empty
	Rings       []string
	Radius      float64
	Profile     geometry.RadiusProfile
}

// Scene is the immutable region arena of one radar.
type Scene struct {
	radius      float64
	angles      []float64
	radii       []float64
	segments    []string
	subSegments []string
	rings       []string

	regions   []Region
	segIndex  map[string]int
	subIndex  map[[2]string]int
	ringIndex map[Path]int
	ringCount int
}

// Build validates cfg, computes the angle and radius profiles and lays out
// every region. A config without segments yields an empty scene.
func Build(cfg Config) (*Scene, error) {
	if err := apperr.ValidateLabels("segment", cfg.Segments); err != nil {
		return nil, err
	}
	if err := apperr.ValidateLabels("sub-segment", cfg.SubSegments); err != nil {
		return nil, err
	}
	if err := apperr.ValidateLabels("ring", cfg.Rings); err != nil {
		return nil, err
	}

	s := &Scene{
		radius:      cfg.Radius,
		segments:    cfg.Segments,
		subSegments: cfg.SubSegments,
		rings:       cfg.Rings,
		segIndex:    make(map[string]int, len(cfg.Segments)),
		subIndex:    make(map[[2]string]int),
		ringIndex:   make(map[Path]int),
	}

	s.angles = geometry.Angles(len(cfg.Segments))
	if len(s.angles) == 0 {
		return s, nil
	}

	radii, err := cfg.Profile.Compute(cfg.Radius, len(cfg.Rings), len(cfg.Segments))
	if err != nil {
		return nil, err
	}
	s.radii = radii

	for i, label := range cfg.Segments {
		seg := s.add(Region{
			Kind:        KindSegment,
			Label:       label,
			Ordinal:     i,
			Parent:      -1,
			AngleStart:  s.angles[i],
			AngleEnd:    s.angles[i+1],
			RadiusOuter: cfg.Radius,
		})
		s.segIndex[label] = seg

		if len(cfg.SubSegments) == 0 {
			s.addRings(seg, Path{Segment: label})
			continue
		}

		start, end := s.angles[i], s.angles[i+1]
		width := (end - start) / float64(len(cfg.SubSegments))
		for j, subLabel := range cfg.SubSegments {
			subEnd := start + float64(j+1)*width
			if j == len(cfg.SubSegments)-1 {
				subEnd = end
			}
			sub := s.add(Region{
				Kind:        KindSubSegment,
				Label:       subLabel,
				Ordinal:     j,
				Parent:      seg,
				AngleStart:  start + float64(j)*width,
				AngleEnd:    subEnd,
				RadiusOuter: cfg.Radius,
			})
			s.subIndex[[2]string{label, subLabel}] = sub
			s.addRings(sub, Path{Segment: label, SubSegment: subLabel})
		}
	}
	return s, nil
}

func (s *Scene) add(r Region) int {
	r.Index = len(s.regions)
	s.regions = append(s.regions, r)
	if r.Parent >= 0 {
		s.regions[r.Parent].Children = append(s.regions[r.Parent].Children, r.Index)
	}
	return r.Index
}

func (s *Scene) addRings(parent int, base Path) {
	p := s.regions[parent]
	for k, label := range s.rings {
		idx := s.add(Region{
			Kind:        KindRing,
			Label:       label,
			Ordinal:     k,
			Parent:      parent,
			AngleStart:  p.AngleStart,
			AngleEnd:    p.AngleEnd,
			RadiusInner: s.radii[k],
			RadiusOuter: s.radii[k+1],
		})
		s.ringCount++

		path := base
		path.Ring = label
		s.ringIndex[path] = idx
		if base.SubSegment != "" {
			short := Path{Segment: base.Segment, Ring: label}
			if _, ok := s.ringIndex[short]; !ok {
				s.ringIndex[short] = idx
			}
		}
	}
}

// Find resolves a label path to its ring region. Segment, sub-segment and
// ring are checked in that order and the first missing level is reported.
func (s *Scene) Find(p Path) (Region, error) {
	if _, ok := s.segIndex[p.Segment]; !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrSegmentNotFound, p.Segment)
	}
	if p.SubSegment != "" {
		if _, ok := s.subIndex[[2]string{p.Segment, p.SubSegment}]; !ok {
			return Region{}, fmt.Errorf("%w: %q in segment %q", ErrSubSegmentNotFound, p.SubSegment, p.Segment)
		}
	}
	idx, ok := s.ringIndex[p]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrRingNotFound, p.Ring)
	}
	return s.regions[idx], nil
}

// Region returns the region at index i.
func (s *Scene) Region(i int) Region { return s.regions[i] }

// Regions returns all regions in arena order: each segment followed by its
// descendants. The slice must not be modified.
func (s *Scene) Regions() []Region { return s.regions }

// OfKind returns the regions of kind k in arena order.
func (s *Scene) OfKind(k Kind) []Region {
	var out []Region
	for _, r := range s.regions {
		if r.Kind == k {
			out = append(out, r)
		}
	}
	return out
}

// RingRegionCount returns the number of leaf ring regions.
func (s *Scene) RingRegionCount() int { return s.ringCount }

// Radius returns the outer radius of the ring area.
func (s *Scene) Radius() float64 { return s.radius }

// Angles returns the segment boundary angles.
func (s *Scene) Angles() []float64 { return s.angles }

// Radii returns the ring boundary radii. It is nil for an empty scene.
func (s *Scene) Radii() []float64 { return s.radii }

// Segments returns the segment labels in order.
func (s *Scene) Segments() []string { return s.segments }

// SubSegments returns the sub-segment labels applied to every segment.
func (s *Scene) SubSegments() []string { return s.subSegments }

// Rings returns the ring labels from the center outward.
func (s *Scene) Rings() []string { return s.rings }

// Bounds returns the square enclosing the ring area, centered on the origin.
func (s *Scene) Bounds() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: -s.radius, Y: -s.radius},
		Max: geom.Coord{X: s.radius, Y: s.radius},
	}
}
