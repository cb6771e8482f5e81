// Package pipeline runs a radar definition through layout and rendering.
//
// This package implements the layout → render pipeline shared by the CLI,
// the HTTP server and the MCP tools, so all three validate, seed, log and
// cache identically.
//
// # Architecture
//
//  1. Layout: build the scene and place every blip ([layout.Build])
//  2. Render: produce each requested format (SVG, JSON, PDF, PNG, DOT)
//
// Placement is deterministic for a given definition and seed, so rendered
// artifacts are cached under a hash of the definition plus the render
// options.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Definition: def,
//	    Formats:    []string{"svg", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// [layout.Build]: github.com/matzehuels/techradar/pkg/layout.Build
package pipeline

import (
	"cmp"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/techradar/pkg/cache"
	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/geometry"
	"github.com/matzehuels/techradar/pkg/layout"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/render/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and MCP
// =============================================================================

// DefaultStyle is the default visual style.
const DefaultStyle = "simple"

// DefaultScale is the PNG scale factor.
const DefaultScale = 1.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatJSON, FormatPNG, FormatPDF, FormatDOT}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Definition radar.Definition `json:"definition"`

	// Seed overrides the definition's seed when non-zero.
	Seed uint64 `json:"seed,omitempty"`
	// Shape overrides the definition's blip shape when set.
	Shape string `json:"shape,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	Title       string   `json:"title,omitempty"`
	NoLabels    bool     `json:"no_labels,omitempty"`
	RingLabels  bool     `json:"ring_labels,omitempty"`
	Interactive bool     `json:"interactive,omitempty"`
	Responsive  bool     `json:"responsive,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	Refresh     bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger     *log.Logger         `json:"-"`
	ShapeFunc  styles.ShapeFunc    `json:"-"`
	RadiusFunc geometry.RadiusFunc `json:"-"`

	shape     styles.Shape
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and API responses.
	RunID uuid.UUID

	// DefinitionHash is the content hash of the effective definition.
	DefinitionHash string

	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Segments   int
	Rings      int
	Blips      int
	Placed     int
	Skipped    int
	Shrunk     int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache use of the render stage.
type CacheInfo struct {
	Hits      int  // formats served from cache
	RenderHit bool // whether every artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, Formats)
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is known.
func ValidateStyle(style string) error {
	_, err := styles.Parse(style, nil)
	return err
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults validates the definition and render options and
// folds the overrides into the definition. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Seed != 0 {
		o.Definition.Options.Seed = o.Seed
	}
	if o.Shape != "" {
		o.Definition.Options.Blip.Shape = o.Shape
	}
	if err := o.Definition.Validate(); err != nil {
		return err
	}
	resolved := o.Definition.ResolvedOptions()
	o.Seed = resolved.Seed

	shape, err := styles.ParseShape(resolved.Blip.Shape)
	if err != nil {
		return err
	}
	if shape == styles.ShapeCustom && o.ShapeFunc == nil {
		return errors.New(errors.ErrCodeInvalidShape, "shape %q requires a shape function", shape)
	}
	o.shape = shape

	policy, err := geometry.ParsePolicy(resolved.Radii)
	if err != nil {
		return err
	}
	if policy == geometry.PolicyCustom && o.RadiusFunc == nil {
		return errors.New(errors.ErrCodeInvalidPolicy, "radius policy %q requires a radius function", policy)
	}

	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %g", o.Scale)
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering. Duplicate formats
// are dropped, keeping the first occurrence.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	var formats []string
	for _, f := range o.Formats {
		if !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	o.Formats = formats
	o.Style = cmp.Or(o.Style, DefaultStyle)
	o.Scale = cmp.Or(o.Scale, DefaultScale)
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Cacheable reports whether artifacts can be cached. Caller-supplied
// functions are not part of the cache key, so they disable caching.
func (o *Options) Cacheable() bool {
	return !o.Refresh && o.ShapeFunc == nil && o.RadiusFunc == nil
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Seed:        o.Seed,
		Style:       o.Style,
		Shape:       string(o.shape),
		Title:       o.Title,
		NoLabels:    o.NoLabels,
		RingLabels:  o.RingLabels,
		Interactive: o.Interactive,
		Responsive:  o.Responsive,
		Scale:       o.Scale,
	}
}
