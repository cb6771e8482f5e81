// Package mcptool exposes radar tools over the Model Context Protocol.
//
// Two tools are registered:
//
//   - radar_radii computes ring boundaries for a radius policy.
//   - radar_render lays out a radar definition and returns the rendered
//     SVG, JSON or DOT text followed by a placement summary.
//
// Tool failures are reported as tool errors (IsError results) carrying the
// coded error message, never as protocol errors.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matzehuels/techradar/pkg/buildinfo"
	"github.com/matzehuels/techradar/pkg/errors"
	"github.com/matzehuels/techradar/pkg/geometry"
	"github.com/matzehuels/techradar/pkg/pipeline"
	"github.com/matzehuels/techradar/pkg/radar"
)

// ServerName identifies the MCP server implementation.
const ServerName = "techradar"

// NewServer creates an MCP server with every radar tool registered.
func NewServer(runner *pipeline.Runner) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: buildinfo.Version}, nil)
	Register(srv, runner)
	return srv
}

// Register adds the radar tools to srv. A nil runner renders without a
// cache.
func Register(srv *mcp.Server, runner *pipeline.Runner) {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, nil)
	}
	registerRadii(srv)
	registerRender(srv, runner)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// --- radar_radii ---

type radiiReq struct {
	Policy   string  `json:"policy"`
	Radius   float64 `json:"radius"`
	Rings    int     `json:"rings"`
	Segments int     `json:"segments"`
}

type radiiResp struct {
	Policy geometry.Policy `json:"policy"`
	Radii  []float64       `json:"radii"`
}

func registerRadii(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "radar_radii",
		Description: "Compute the ring boundaries of a radar for a spacing policy (equal-thickness, equal-area, golden-ratio).",
		InputSchema: inputSchema(map[string]any{
			"policy":   map[string]any{"type": "string", "description": "Spacing policy, default equal-area"},
			"radius":   map[string]any{"type": "number", "description": "Outer radius, at least 1"},
			"rings":    map[string]any{"type": "integer", "description": "Number of rings"},
			"segments": map[string]any{"type": "integer", "description": "Number of segments, used by equal-area (default 1)"},
		}, []string{"radius", "rings"}),
	}

	srv.AddTool(tool, func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r radiiReq
		if err := decodeArgs(req, &r); err != nil {
			return toolError(err), nil
		}
		if r.Policy == "" {
			r.Policy = string(geometry.PolicyEqualArea)
		}
		if r.Segments == 0 {
			r.Segments = 1
		}
		policy, err := geometry.ParsePolicy(r.Policy)
		if err != nil {
			return toolError(err), nil
		}
		if policy == geometry.PolicyCustom {
			return toolError(errors.New(errors.ErrCodeInvalidPolicy, "custom radius policy needs a radius function")), nil
		}
		radii, err := geometry.RadiusProfile{Policy: policy}.Compute(r.Radius, r.Rings, r.Segments)
		if err != nil {
			return toolError(err), nil
		}
		return jsonResult(radiiResp{Policy: policy, Radii: radii})
	})
}

// --- radar_render ---

type renderReq struct {
	Definition radar.Definition `json:"definition"`
	Format     string           `json:"format"`
	Seed       uint64           `json:"seed"`
	Style      string           `json:"style"`
	Shape      string           `json:"shape"`
	Title      string           `json:"title"`
	NoLabels   bool             `json:"no_labels"`
	RingLabels bool             `json:"ring_labels"`
}

// RenderSummary is the second content block of a radar_render result.
type RenderSummary struct {
	RunID   string        `json:"run_id"`
	Format  string        `json:"format"`
	Placed  int           `json:"placed"`
	Skipped []SkippedBlip `json:"skipped,omitempty"`
	Cached  bool          `json:"cached"`
}

// SkippedBlip names a blip left out of the drawing.
type SkippedBlip struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

var textFormats = []string{pipeline.FormatSVG, pipeline.FormatJSON, pipeline.FormatDOT}

func registerRender(srv *mcp.Server, runner *pipeline.Runner) {
	tool := &mcp.Tool{
		Name: "radar_render",
		Description: "Lay out a technology radar definition and render it. Returns the rendered " +
			"document (svg, json or dot) followed by a JSON placement summary listing skipped blips.",
		InputSchema: inputSchema(map[string]any{
			"definition": map[string]any{
				"type":        "object",
				"description": "Radar definition: title, segments, sub_segments, rings, options, blips",
			},
			"format":      map[string]any{"type": "string", "enum": textFormats, "description": "Output format, default svg"},
			"seed":        map[string]any{"type": "integer", "description": "Placement seed override"},
			"style":       map[string]any{"type": "string", "description": "Visual style (simple, mono)"},
			"shape":       map[string]any{"type": "string", "description": "Blip shape (circle, square, equi-triangle, iso-triangle)"},
			"title":       map[string]any{"type": "string", "description": "Document title override"},
			"no_labels":   map[string]any{"type": "boolean", "description": "Omit segment labels"},
			"ring_labels": map[string]any{"type": "boolean", "description": "Draw ring names"},
		}, []string{"definition"}),
	}

	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r renderReq
		if err := decodeArgs(req, &r); err != nil {
			return toolError(err), nil
		}
		if r.Format == "" {
			r.Format = pipeline.FormatSVG
		}
		if err := errors.ValidateFormat(r.Format, textFormats); err != nil {
			return toolError(err), nil
		}

		result, err := runner.Execute(ctx, pipeline.Options{
			Definition: r.Definition,
			Formats:    []string{r.Format},
			Seed:       r.Seed,
			Style:      r.Style,
			Shape:      r.Shape,
			Title:      r.Title,
			NoLabels:   r.NoLabels,
			RingLabels: r.RingLabels,
		})
		if err != nil {
			return toolError(err), nil
		}

		summary := RenderSummary{
			RunID:  result.RunID.String(),
			Format: r.Format,
			Placed: result.Stats.Placed,
			Cached: result.CacheInfo.RenderHit,
		}
		for _, o := range result.Layout.Skipped() {
			summary.Skipped = append(summary.Skipped, SkippedBlip{ID: o.Blip.ID, Name: o.Blip.Name, Reason: o.Reason.String()})
		}
		data, err := json.Marshal(summary)
		if err != nil {
			return toolError(fmt.Errorf("marshal summary: %w", err)), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: string(result.Artifacts[r.Format])},
				&mcp.TextContent{Text: string(data)},
			},
		}, nil
	})
}

func decodeArgs(req *mcp.CallToolRequest, v any) error {
	if len(req.Params.Arguments) == 0 {
		return nil
	}
	if err := json.Unmarshal(req.Params.Arguments, v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid arguments")
	}
	return nil
}

func toolError(err error) *mcp.CallToolResult {
	var res mcp.CallToolResult
	if code := errors.GetCode(err); code != "" {
		res.SetError(fmt.Errorf("%s: %s", code, errors.UserMessage(err)))
	} else {
		res.SetError(err)
	}
	return &res
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Errorf("marshal: %w", err)), nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}
