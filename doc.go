// Package pathoffset computes geometric offsets of 2D paths.
//
// Given a path (possibly several disjoint, possibly self-intersecting
// contours made of lines and Bézier curves) and a signed distance, the
// package produces a new path whose contour lies approximately that distance
// away from the original, with the self-intersections introduced by the
// offset operation removed. A companion utility, [Path.FindOuterShell],
// identifies which of several disjoint contours forms the outermost boundary.
//
// # Pipeline
//
// Offsetting runs a three-stage pipeline, exposed end to end as [OffsetPath]
// and behind the [Offsetter] interface as [CurveOffset]:
//
//   - Offset: every segment of every subpath is converted to a cubic Bézier
//     and shifted along its normal by the signed distance, using the
//     offset-curve construction from [honnef.co/go/curve]. One input curve may
//     produce several output curves; curves below a tiny-length threshold
//     are discarded as numerical noise.
//   - Resample/refit: the offset curves are walked at even arc-length steps,
//     the resulting point cloud is refit with a single smooth curve sequence
//     at a coarser error bound, smoothing out offset-construction noise.
//   - Clean: self-intersection loops and interior points are removed from
//     the refit contour, producing exactly one simplified closed contour.
//
// Every stage failure aborts the whole operation; there are no retries and
// no partial results. The pipeline is purely synchronous and allocates no
// shared mutable state.
//
// Offsetting an already-offset path by the same distance is not guaranteed
// to equal offsetting the original by double the distance: the stage
// tolerances compound.
//
// # Paths
//
// [Path] is an ordered sequence of subpaths, each an ordered sequence of
// line, quadratic and cubic segments with an open/closed flag. Paths are
// built programmatically with [Path.MoveTo] and friends, or parsed from the
// SVG path mini-language subset (M, L, Q, C, Z with absolute coordinates)
// with [ParsePath]; [Path.SVG] serializes back to the same grammar.
package pathoffset
