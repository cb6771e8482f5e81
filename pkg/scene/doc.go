// Package scene builds the region structure of a radar diagram.
//
// A [Scene] is an arena of [Region] records. Every segment owns a region
// spanning its angular sector from the center to the outer radius. When
// sub-segments are configured, each segment is split into equal angular
// sub-segment regions. Ring regions sit at the leaves: one per ring under
// every segment, or under every sub-segment when those exist.
//
// Regions are addressed by a label [Path]. All paths are indexed once in
// [Build], so [Scene.Find] is a map lookup. Lookups fail independently
// per level with [ErrSegmentNotFound], [ErrSubSegmentNotFound] or
// [ErrRingNotFound], checked in that order.
//
// A path without a sub-segment on a scene that has sub-segments resolves
// to the ring under the first sub-segment of that segment.
//
// Scenes are immutable after Build and safe for concurrent reads.
package scene
