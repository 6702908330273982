// Package curve lays out the cards of a hand along a cubic Bézier arc.
//
// It provides the geometry a card game client needs to fan a hand: evaluating
// points, tangents, normals and curvature of cubic (and quadratic) Béziers,
// approximating arc length, mapping arc length back to curve parameters, and
// turning an item count into one [Pose] per card.
//
// Everything in this package is a pure function of value types. Callers
// recompute poses whenever the hand or the curve changes.
//
// # Curves
//
// [CubicBez] holds the four control points of a curve in 3D space. Curves are
// authored in the XY plane, with Z used for depth and [Forward] as the plane's
// facing axis. The parameter t is nominally in [0, 1], but it is never
// clamped: evaluating outside of that range extrapolates the curve, which is
// what happens when a hand holds more cards than the arc was designed for.
//
// Degenerate curves, such as all four control points coinciding, are valid.
// They have zero length, a zero tangent and undefined curvature, which is
// reported as such rather than as NaN or infinity.
//
// # Arc length
//
// [CubicBez.Length] and [CubicBez.ArcLenToT] work on a uniformly sampled
// polyline. They are cheap, bounded by the number of segments the caller asks
// for, and accurate to O(1/segments). [CubicBez.Arclen] and [SolveForArclen]
// use adaptive Legendre-Gauss quadrature instead and converge to a requested
// accuracy.
//
// # Layout
//
// [Layout] maps a [LayoutConfig] and a curve to poses. [Uniform] spreads the
// cards over the entire arc, [CenteredWithSpacing] keeps a fixed parameter
// distance between neighbours and centers the hand on the arc, and
// [ArcLength] spreads cards at equal distances along the arc.
//
// # Presets
//
// [Preset] names control point arrangements used while authoring the arc:
// straight lines, smooth arcs, S-curves, semicircles, waves and hearts.
// [Handles] models the authoring side, where control points may not exist yet.
package curve
