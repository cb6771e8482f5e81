// Package server exposes radar layout and rendering over HTTP.
//
// Routes:
//
//	GET  /healthz                                      build info
//	GET  /v1/radii?policy=&radius=&rings=&segments=    ring boundaries
//	POST /v1/render?format=svg|json|dot|png|pdf        render a definition
//
// The render body is a JSON radar definition. Render options travel as
// query parameters (seed, style, shape, title, no_labels, ring_labels,
// interactive, responsive, scale). Every request runs through the shared
// [pipeline.Runner], so the server caches and logs exactly like the CLI.
//
// Errors are JSON objects of the form
//
//	{"error": "ring count must be >= 1, got 0", "code": "INVALID_RING_COUNT"}
//
// with the status derived from the code by [errors.HTTPStatus].
//
// [pipeline.Runner]: github.com/matzehuels/techradar/pkg/pipeline.Runner
// [errors.HTTPStatus]: github.com/matzehuels/techradar/pkg/errors.HTTPStatus
package server
