package placement

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/techradar/pkg/geometry"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/scene"
)

// Params sizes blips and bounds the search.
type Params struct {
	Diameter      float64 // initial blip diameter
	Stroke        float64 // blip stroke width
	LineStroke    float64 // segment line stroke width
	MaxIterations int     // candidates tried per diameter
	ShrinkStep    float64 // diameter reduction after a failed search
	MaxShrinks    int     // reductions before giving up; negative disables shrinking
}

// DefaultParams returns the parameters matching [radar.DefaultOptions].
func DefaultParams() Params {
	return ParamsFromOptions(radar.DefaultOptions())
}

// ParamsFromOptions extracts placement parameters from radar options.
func ParamsFromOptions(o radar.Options) Params {
	return Params{
		Diameter:      o.Blip.Diameter,
		Stroke:        o.Blip.Stroke,
		LineStroke:    o.SegmentStroke,
		MaxIterations: o.Placement.MaxIterations,
		ShrinkStep:    o.Placement.ShrinkStep,
		MaxShrinks:    o.Placement.MaxShrinks,
	}
}

// NewRand returns the seeded random source used for placement.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Option configures a [Placer].
type Option func(*Placer)

// WithObserver sets the observer notified of each outcome.
func WithObserver(o Observer) Option {
	return func(p *Placer) {
		if o != nil {
			p.observer = o
		}
	}
}

// WithDecimals rounds accepted coordinates to the given number of decimals.
// Collision checks use the rounded values.
func WithDecimals(d int) Option {
	return func(p *Placer) { p.decimals = d }
}

// Placer runs collision-avoiding placement over one scene.
type Placer struct {
	scene    *scene.Scene
	rng      *rand.Rand
	params   Params
	observer Observer
	decimals int
	index    *Index
}

// New returns a Placer drawing candidates from rng. A nil rng is replaced
// by one seeded with [radar.DefaultSeed]. Zero MaxIterations, ShrinkStep and
// MaxShrinks take the [radar.DefaultOptions] values.
func New(sc *scene.Scene, rng *rand.Rand, params Params, opts ...Option) *Placer {
	if rng == nil {
		rng = NewRand(radar.DefaultSeed)
	}
	if params.MaxIterations < 1 {
		params.MaxIterations = radar.DefaultMaxIterations
	}
	if params.ShrinkStep <= 0 {
		params.ShrinkStep = radar.DefaultShrinkStep
	}
	if params.MaxShrinks == 0 {
		params.MaxShrinks = radar.DefaultMaxShrinks
	}
	p := &Placer{
		scene:    sc,
		rng:      rng,
		params:   params,
		observer: NoopObserver{},
		decimals: -1,
		index:    NewIndex(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Index returns the collision index filled by the last [Placer.Place] call.
func (p *Placer) Index() *Index { return p.index }

// Place places blips in order and returns one outcome per blip. Each call
// starts from an empty collision index.
func (p *Placer) Place(blips []radar.Blip) []Outcome {
	p.index = NewIndex()
	out := make([]Outcome, len(blips))
	for i, b := range blips {
		out[i] = p.place(b)
	}
	return out
}

func (p *Placer) place(b radar.Blip) Outcome {
	o := Outcome{Blip: b, Region: -1, Diameter: p.params.Diameter}

	region, err := p.scene.Find(scene.Path{Segment: b.Segment, SubSegment: b.SubSegment, Ring: b.Ring})
	if err != nil {
		o.Reason = reasonFor(err)
		p.observer.OnBlipSkipped(b, o.Reason)
		return o
	}
	o.Region = region.Index

	dia := p.params.Diameter
	for {
		c, attempts, ok := p.search(region, dia)
		o.Attempts += attempts
		o.Diameter = dia
		if ok {
			p.index.Add(region.Index, c)
			o.Placed = true
			o.Coordinate = c
			p.observer.OnBlipPlaced(b, c)
			return o
		}

		next := dia - p.params.ShrinkStep
		if o.Shrinks >= p.params.MaxShrinks || next <= 0 {
			o.Reason = ReasonNoCoordinate
			p.observer.OnBlipSkipped(b, o.Reason)
			return o
		}
		dia = next
		o.Shrinks++
	}
}

func (p *Placer) search(region scene.Region, dia float64) (geometry.Coordinate, int, bool) {
	threshold := dia + p.params.Stroke
	for i := range p.params.MaxIterations {
		c, ok := p.sample(region, dia)
		if !ok {
			return geometry.Coordinate{}, i, false
		}
		if !p.index.Collides(region.Index, c, threshold) {
			return c, i + 1, true
		}
	}
	return geometry.Coordinate{}, p.params.MaxIterations, false
}

// sample draws one candidate inside region for a blip of diameter dia.
// It reports false when the inset ring cannot hold a blip of that diameter,
// which sends the caller into the shrink loop.
func (p *Placer) sample(region scene.Region, dia float64) (geometry.Coordinate, bool) {
	half := dia / 2
	stroke := p.params.Stroke

	maxR := region.RadiusOuter - stroke - half
	if maxR <= 0 {
		return geometry.Coordinate{}, false
	}
	minR := region.RadiusInner + stroke + half
	if region.RadiusInner == 0 {
		minR = max(minR, p.apexRadius(region, dia))
	}
	if minR > maxR {
		return geometry.Coordinate{}, false
	}
	radius := p.uniform(minR, maxR)

	width := region.SectorWidth()
	delta := math.Asin(min(1, dia/radius))
	delta = min(delta, width/2)
	minA := region.AngleStart + delta
	maxA := region.AngleEnd - delta
	if minA > maxA {
		minA = region.MidAngle()
		maxA = minA
	}
	angle := p.uniform(minA, maxA)

	if p.decimals >= 0 {
		return geometry.ToCartesianRounded(radius, angle, p.decimals), true
	}
	return geometry.ToCartesian(radius, angle), true
}

// apexRadius is the smallest radius at which a blip clears both segment
// lines of a wedge-shaped innermost ring.
func (p *Placer) apexRadius(region scene.Region, dia float64) float64 {
	theta := (180 - geometry.ToDegree(region.SectorWidth())) / 2
	return region.RadiusInner + p.params.Stroke +
		((dia+2.5*p.params.LineStroke)/2)*math.Tan(geometry.ToRadian(theta))
}

func (p *Placer) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.Float64()*(hi-lo)
}
