// Package geometry implements the circle arithmetic behind the flower shape.
//
// All shapes are built from circles of one shared radius. The package
// provides:
//
//   - [Intersect]: the two crossing points of two equal circles
//   - [LensPath]: the two-arc outline of the region common to two circles
//   - [TripleOverlap]: the curved wedge common to three circles
//   - [IsInside]: a tolerant point-in-circle test
//
// Shapes are returned as [Path] values, which serialize to SVG path data
// ([Path.SVG]) and flatten to polylines for rasterization ([Path.Flatten]).
//
// # Degenerate Input
//
// Circles that do not meet, or that share a center, produce an empty
// [Path] rather than an error. Callers check [Path.IsEmpty] and skip the
// shape.
//
// Points are [github.com/jbeda/geom] coordinates, so the usual vector
// helpers (Plus, Minus, Times, Unit, DistanceFrom) are available.
package geometry
