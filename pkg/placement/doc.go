// Package placement positions blips inside their scene regions without
// visual overlap.
//
// # Algorithm
//
// [Placer.Place] handles blips strictly in input order. For each blip it
//
//  1. resolves the ring region through [scene.Scene.Find]; a missing
//     segment, sub-segment or ring skips the blip without retrying;
//  2. samples a uniformly random radius and angle inside the region, inset
//     by half the blip diameter plus the stroke width on every side; a ring
//     too thin for the inset counts as a failed search;
//  3. rejects the candidate when it lies within diameter+stroke of an
//     accepted point of the same region on both axes;
//  4. repeats up to [Params.MaxIterations] times and accepts the first free
//     candidate;
//  5. otherwise shrinks the diameter by [Params.ShrinkStep] and searches
//     again, at most [Params.MaxShrinks] times, before giving up with
//     [ReasonNoCoordinate].
//
// Accepted points are visible to later blips of the same Place call in the
// same region, so the result depends on input order. Each call starts from
// an empty collision index. The random source is injected; the same
// seed and the same blip order reproduce the same layout.
//
// # Innermost rings
//
// A ring whose inner radius is 0 is a wedge rather than an annulus. Near the
// apex the two segment lines converge, so the minimum radius is raised
// using the tangent of the wedge's base angle until a blip of the current
// diameter fits between the lines.
//
// # Observers
//
// An [Observer] is notified of every placement and skip. [LogObserver]
// reports them through a charmbracelet logger; [Observers] fans out to
// several observers.
//
// A Placer is not safe for concurrent use.
package placement
