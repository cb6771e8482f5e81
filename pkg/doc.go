// Package pkg provides the core libraries for techradar diagram rendering.
//
// # Overview
//
// techradar turns a radar definition (segments, optional sub-segments,
// rings and blips) into a technology radar: concentric rings cut into
// angular segments, with every blip placed inside its region without
// overlapping its neighbours. The pkg directory is organized into four
// areas:
//
//  1. Geometry and layout ([geometry], [scene], [placement], [layout])
//  2. Definitions and serialization ([radar], [io])
//  3. Rendering ([render], [render/sink], [render/styles], [render/nodelink])
//  4. Orchestration and surfaces ([pipeline], [cache], [server], [mcptool])
//
// # Architecture
//
// The typical data flow:
//
//	TOML / JSON / YAML definition
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [geometry] package (angle profile + radius profile)
//	         ↓
//	    [scene] package (region tree of segments, sub-segments, rings)
//	         ↓
//	    [placement] package (collision-avoiding blip placer)
//	         ↓
//	    [render/sink] package (SVG, JSON, PDF, PNG)
//
// # Quick Start
//
//	def, _ := io.ImportDefinition("radar.toml")
//	l, _ := layout.Build(def)
//	svg := sink.RenderSVG(l)
//
// Or run the whole thing, with caching, through the pipeline:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{Definition: def})
//
// # Main Packages
//
// [geometry] - Angle profiles, the radius policies (equal thickness, equal
// area, golden ratio, custom) and the polar to cartesian transform.
//
// [scene] - The region tree. Resolves a blip's segment, sub-segment and
// ring labels to the annular sector it must land in.
//
// [placement] - Seeded rejection sampling with diameter shrinking. Blips
// that cannot be placed are reported with a reason instead of failing the
// run.
//
// [pipeline] - Validation, defaults, layout, render and cache, shared by the
// CLI, the HTTP server and the MCP tools.
//
// [geometry]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/geometry
// [scene]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/scene
// [placement]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/placement
// [layout]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/layout
// [radar]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/radar
// [io]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/render/styles
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/server
// [mcptool]: https://pkg.go.dev/github.com/matzehuels/techradar/pkg/mcptool
package pkg
