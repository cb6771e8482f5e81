package layout

import (
	"math/rand/v2"

	"github.com/matzehuels/techradar/pkg/geometry"
	"github.com/matzehuels/techradar/pkg/placement"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/scene"
)

// Layout is a radar with every blip resolved to an outcome.
type Layout struct {
	Title    string
	Options  radar.Options
	Policy   geometry.Policy
	Scene    *scene.Scene
	Outcomes []placement.Outcome
}

// Diameter returns the side length of the square drawing area.
func (l Layout) Diameter() float64 { return l.Options.Diameter }

// Radius returns the outer radius of the ring area.
func (l Layout) Radius() float64 { return l.Scene.Radius() }

// Placed returns the outcomes of placed blips in input order.
func (l Layout) Placed() []placement.Outcome {
	var out []placement.Outcome
	for _, o := range l.Outcomes {
		if o.Placed {
			out = append(out, o)
		}
	}
	return out
}

// Skipped returns the outcomes of skipped blips in input order.
func (l Layout) Skipped() []placement.Outcome {
	var out []placement.Outcome
	for _, o := range l.Outcomes {
		if !o.Placed {
			out = append(out, o)
		}
	}
	return out
}

// Summary aggregates the outcomes.
func (l Layout) Summary() placement.Summary { return placement.Summarize(l.Outcomes) }

// Option configures [Build].
type Option func(*builder)

type builder struct {
	observer   placement.Observer
	rng        *rand.Rand
	radiusFunc geometry.RadiusFunc
}

// WithObserver sets the observer notified during placement.
func WithObserver(o placement.Observer) Option {
	return func(b *builder) { b.observer = o }
}

// WithRand overrides the random source. By default one is seeded from the
// resolved options' Seed.
func WithRand(r *rand.Rand) Option {
	return func(b *builder) { b.rng = r }
}

// WithRadiusFunc supplies the function used when the radius policy is
// "custom".
func WithRadiusFunc(fn geometry.RadiusFunc) Option {
	return func(b *builder) { b.radiusFunc = fn }
}

// Build validates def, lays out its scene and places its blips.
func Build(def radar.Definition, opts ...Option) (Layout, error) {
	var b builder
	for _, opt := range opts {
		opt(&b)
	}

	if err := def.Validate(); err != nil {
		return Layout{}, err
	}
	o := def.ResolvedOptions()
	policy, err := geometry.ParsePolicy(o.Radii)
	if err != nil {
		return Layout{}, err
	}

	sc, err := scene.Build(scene.Config{
		Segments:    def.Segments,
		SubSegments: def.SubSegments,
		Rings:       def.Rings,
		Radius:      o.Radius(),
		Profile:     geometry.RadiusProfile{Policy: policy, Custom: b.radiusFunc},
	})
	if err != nil {
		return Layout{}, err
	}

	rng := b.rng
	if rng == nil {
		rng = placement.NewRand(o.Seed)
	}
	p := placement.New(sc, rng, placement.ParamsFromOptions(o),
		placement.WithObserver(b.observer),
		placement.WithDecimals(o.Decimals),
	)

	return Layout{
		Title:    def.Title,
		Options:  o,
		Policy:   policy,
		Scene:    sc,
		Outcomes: p.Place(def.Blips),
	}, nil
}
