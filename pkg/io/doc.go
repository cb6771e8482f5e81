// Package io reads radar definitions and blip lists and writes exported
// layouts.
//
// # Definitions
//
// A radar definition is usually a TOML file:
//
//	title    = "Engineering Radar"
//	segments = ["Techniques", "Tools", "Platforms", "Languages"]
//	rings    = ["Adopt", "Trial", "Assess", "Hold"]
//
//	[options]
//	radii = "golden-ratio"
//	seed  = 7
//
//	[options.blip]
//	shape = "square"
//
//	[[blips]]
//	id      = 1
//	name    = "Go"
//	segment = "Languages"
//	ring    = "Adopt"
//
// JSON and YAML definitions use the same field names. [ImportDefinition]
// picks the decoder from the file extension; [ReadDefinition] takes the
// format explicitly.
//
// # Blip Lists
//
// Blips are often maintained separately from the radar structure. A blip
// list is a JSON or YAML array of blips:
//
//	- id: 1
//	  name: Go
//	  segment: Languages
//	  ring: Adopt
//	  payload:
//	    owner: platform-team
//
// Use [ImportBlips] or [ReadBlips]. Blip ids must be positive and unique;
// violations are reported as INVALID_INPUT errors.
//
// # Layout Export
//
// [WriteLayoutJSON] and [ExportLayoutJSON] write a computed layout as a
// [layout.Document]. [ReadDocument] and [ImportDocument] read it back for
// inspection.
//
// [layout.Document]: github.com/matzehuels/techradar/pkg/layout.Document
package io
