package layout

import (
	"github.com/matzehuels/techradar/pkg/placement"
)

// Document is the serializable form of a [Layout].
type Document struct {
	Title    string          `json:"title,omitempty"`
	Diameter float64         `json:"diameter"`
	Radius   float64         `json:"radius"`
	Seed     uint64          `json:"seed"`
	Policy   string          `json:"policy"`
	Angles   []float64       `json:"angles"`
	Radii    []float64       `json:"radii"`
	Regions  []RegionRecord  `json:"regions"`
	Blips    []BlipRecord    `json:"blips"`
	Skipped  []SkippedRecord `json:"skipped,omitempty"`
}

// RegionRecord describes one scene region.
type RegionRecord struct {
	Index       int     `json:"index"`
	Kind        string  `json:"kind"`
	Label       string  `json:"label"`
	Parent      int     `json:"parent"`
	AngleStart  float64 `json:"angle_start"`
	AngleEnd    float64 `json:"angle_end"`
	RadiusInner float64 `json:"radius_inner"`
	RadiusOuter float64 `json:"radius_outer"`
}

// BlipRecord describes a placed blip.
type BlipRecord struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	Segment    string         `json:"segment"`
	SubSegment string         `json:"sub_segment,omitempty"`
	Ring       string         `json:"ring"`
	Region     int            `json:"region"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Diameter   float64        `json:"diameter"`
	Attempts   int            `json:"attempts"`
	Shrinks    int            `json:"shrinks,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// SkippedRecord describes a blip that could not be placed.
type SkippedRecord struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Segment    string `json:"segment"`
	SubSegment string `json:"sub_segment,omitempty"`
	Ring       string `json:"ring"`
	Reason     string `json:"reason"`
}

// Export converts the layout into its serializable form.
func (l Layout) Export() Document {
	doc := Document{
		Title:    l.Title,
		Diameter: l.Diameter(),
		Radius:   l.Radius(),
		Seed:     l.Options.Seed,
		Policy:   string(l.Policy),
		Angles:   l.Scene.Angles(),
		Radii:    l.Scene.Radii(),
		Regions:  make([]RegionRecord, 0, len(l.Scene.Regions())),
		Blips:    make([]BlipRecord, 0, len(l.Outcomes)),
	}
	for _, r := range l.Scene.Regions() {
		doc.Regions = append(doc.Regions, RegionRecord{
			Index:       r.Index,
			Kind:        r.Kind.String(),
			Label:       r.Label,
			Parent:      r.Parent,
			AngleStart:  r.AngleStart,
			AngleEnd:    r.AngleEnd,
			RadiusInner: r.RadiusInner,
			RadiusOuter: r.RadiusOuter,
		})
	}
	for _, o := range l.Outcomes {
		if !o.Placed {
			doc.Skipped = append(doc.Skipped, skippedRecord(o))
			continue
		}
		doc.Blips = append(doc.Blips, BlipRecord{
			ID:         o.Blip.ID,
			Name:       o.Blip.Name,
			Segment:    o.Blip.Segment,
			SubSegment: o.Blip.SubSegment,
			Ring:       o.Blip.Ring,
			Region:     o.Region,
			X:          o.Coordinate.X,
			Y:          o.Coordinate.Y,
			Diameter:   o.Diameter,
			Attempts:   o.Attempts,
			Shrinks:    o.Shrinks,
			Payload:    o.Blip.Payload,
		})
	}
	return doc
}

func skippedRecord(o placement.Outcome) SkippedRecord {
	return SkippedRecord{
		ID:         o.Blip.ID,
		Name:       o.Blip.Name,
		Segment:    o.Blip.Segment,
		SubSegment: o.Blip.SubSegment,
		Ring:       o.Blip.Ring,
		Reason:     o.Reason.String(),
	}
}
