package sink

import (
	"encoding/json"

	"github.com/matzehuels/techradar/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style  string
	indent bool
}

// WithJSONStyle records the style name in the output for round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.indent = false } }

type jsonOutput struct {
	layout.Document
	Style string `json:"style,omitempty"`
}

// RenderJSON exports the layout as a [layout.Document].
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{indent: true}
	for _, opt := range opts {
		opt(&r)
	}
	out := jsonOutput{Document: l.Export(), Style: r.style}
	if !r.indent {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}
