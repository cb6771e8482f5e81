package pipeline

import (
	"testing"

	svg "github.com/ajstarks/svgo/float"

	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/radar"
	"github.com/matzehuels/techradar/pkg/render/styles"
)

func testDefinition() radar.Definition {
	return radar.Definition{
		Title:    "Platform Radar",
		Segments: []string{"Tools", "Languages", "Platforms"},
		Rings:    []string{"Adopt", "Trial", "Hold"},
		Blips: []radar.Blip{
			{ID: 1, Name: "Go", Segment: "Languages", Ring: "Adopt"},
			{ID: 2, Name: "Nomad", Segment: "Platforms", Ring: "Trial"},
			{ID: 3, Name: "Jenkins", Segment: "Tools", Ring: "Hold"},
			{ID: 4, Name: "Cobol", Segment: "Mainframe", Ring: "Hold"},
		},
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"dot", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"simple", false},
		{"mono", false},
		{"handdrawn", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Definition: testDefinition(), Formats: []string{"svg", "json", "svg"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}

	if len(opts.Formats) != 2 || opts.Formats[0] != "svg" || opts.Formats[1] != "json" {
		t.Errorf("Formats = %v, want [svg json]", opts.Formats)
	}
	if opts.Style != DefaultStyle || opts.Scale != DefaultScale {
		t.Errorf("Style=%q Scale=%v", opts.Style, opts.Scale)
	}
	if opts.Seed != radar.DefaultSeed {
		t.Errorf("Seed = %d, want resolved default %d", opts.Seed, radar.DefaultSeed)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}

	empty := Options{Definition: testDefinition()}
	if err := empty.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if len(empty.Formats) != 1 || empty.Formats[0] != FormatSVG {
		t.Errorf("default Formats = %v, want [svg]", empty.Formats)
	}
}

func TestValidateAndSetDefaultsOverrides(t *testing.T) {
	opts := Options{Definition: testDefinition(), Seed: 7, Shape: "square"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Definition.Options.Seed != 7 || opts.Seed != 7 {
		t.Errorf("seed override not applied: %d", opts.Definition.Options.Seed)
	}
	if opts.shape != styles.ShapeSquare {
		t.Errorf("shape = %q, want square", opts.shape)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	customShape := testDefinition()
	customShape.Options.Blip.Shape = "custom"
	customRadii := testDefinition()
	customRadii.Options.Radii = "custom"
	noRings := testDefinition()
	noRings.Rings = nil

	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"no rings", Options{Definition: noRings}, errors.ErrCodeInvalidRingCount},
		{"unknown shape", Options{Definition: testDefinition(), Shape: "star"}, errors.ErrCodeInvalidShape},
		{"custom shape without function", Options{Definition: customShape}, errors.ErrCodeInvalidShape},
		{"custom radii without function", Options{Definition: customRadii}, errors.ErrCodeInvalidPolicy},
		{"bad format", Options{Definition: testDefinition(), Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad style", Options{Definition: testDefinition(), Style: "neon"}, errors.ErrCodeInvalidInput},
		{"negative scale", Options{Definition: testDefinition(), Scale: -1}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}

	ok := Options{
		Definition: customShape,
		ShapeFunc:  func(c *svg.SVG, b styles.Blip, attrs ...string) { styles.Circle(c, b, attrs...) },
	}
	if err := ok.ValidateAndSetDefaults(); err != nil {
		t.Errorf("custom shape with function: %v", err)
	}
}

func TestCacheable(t *testing.T) {
	if !(&Options{}).Cacheable() {
		t.Error("plain options should be cacheable")
	}
	if (&Options{Refresh: true}).Cacheable() {
		t.Error("refresh should bypass the cache")
	}
	if (&Options{RadiusFunc: func(float64, int, int) ([]float64, error) { return nil, nil }}).Cacheable() {
		t.Error("custom radius function should bypass the cache")
	}
}

func TestArtifactKeyOptsDiffer(t *testing.T) {
	a := Options{Definition: testDefinition()}
	b := Options{Definition: testDefinition(), NoLabels: true}
	_ = a.ValidateAndSetDefaults()
	_ = b.ValidateAndSetDefaults()
	if a.ArtifactKeyOpts("svg") == b.ArtifactKeyOpts("svg") {
		t.Error("label option should change the key options")
	}
}
