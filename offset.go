package pathoffset

import (
	"honnef.co/go/curve"
)

const (
	// offsetAccuracy is the fitting accuracy of the per-curve offset
	// construction.
	offsetAccuracy = 0.1

	// offsetDimTune scales offsetAccuracy down to the regularization
	// dimension passed to the offset construction.
	offsetDimTune = 0.25

	// tinyCurveSize bounds the extent below which a curve is treated as
	// numerical noise and discarded.
	tinyCurveSize = 1e-4

	// closeGap is the largest endpoint-to-start gap of an open subpath that
	// doesn't get an explicit closing line when converting to curves.
	closeGap = 1e-6
)

// Offsetter is the interface implemented by path offsetting backends. An
// Offsetter is constructed from a source path and a distance; OffsetPath
// computes the offset contour, or reports the first stage failure.
type Offsetter interface {
	OffsetPath() (Path, error)
}

// CurveOffset offsets a path curve by curve: each segment's offset curves
// are computed independently, resampled at even arc-length steps, refit with
// a single smooth curve sequence, and cleaned of the self-intersections the
// offset introduced.
type CurveOffset struct {
	curves []curve.CubicBez
}

var _ Offsetter = (*CurveOffset)(nil)

// NewCurveOffset creates a CurveOffset that offsets path by distance. The
// offset is symmetric and non-tapering: start and end of every curve are
// displaced by the same signed distance along the local normal.
//
// Construction already computes the per-curve offset curves; the remaining
// pipeline stages run in [CurveOffset.OffsetPath].
func NewCurveOffset(path Path, distance float64) *CurveOffset {
	const dimension = offsetDimTune * offsetAccuracy
	var out []curve.CubicBez
	for sub := range path.Subpaths() {
		for _, c := range subpathCurves(sub) {
			// A tiny curve has no usable normal to offset along.
			if curveIsTiny(c) {
				continue
			}
			co := curve.NewCubicOffset(c, -distance, dimension)
			// The construction subdivides as needed to stay within
			// offsetAccuracy, so one input curve may yield several.
			for seg := range curve.FitToBezPathOpt(&co, offsetAccuracy).Segments() {
				oc := seg.Cubic()
				if curveIsTiny(oc) {
					continue
				}
				out = append(out, oc)
			}
		}
	}
	return &CurveOffset{curves: out}
}

// Curves returns the intermediate offset curves computed at construction
// time, before resampling, refitting and cleaning. It is informational; the
// slice must not be modified.
func (co *CurveOffset) Curves() []curve.CubicBez {
	return co.curves
}

// OffsetPath samples the offset curves, fits a new curve sequence through
// the sampled points, and cleans the result of self-intersections.
//
// It fails with [ErrFitCurve] if no curve can be fit through the samples and
// with [ErrCleanPath] if cleaning yields no contour. A failure in any stage
// aborts the whole operation; no partial result is ever returned.
func (co *CurveOffset) OffsetPath() (Path, error) {
	var points []curve.Point
	for _, c := range co.curves {
		points = sampleCurveEvenly(c, points)
	}

	fitted, err := fitPath(points)
	if err != nil {
		return Path{}, err
	}

	return cleanPath(fitted)
}

// OffsetPath offsets path by the signed distance and returns the cleaned
// offset contour. It is shorthand for NewCurveOffset(path, distance).OffsetPath().
func OffsetPath(path Path, distance float64) (Path, error) {
	return NewCurveOffset(path, distance).OffsetPath()
}

// subpathCurves converts a single-subpath Path into a connected sequence of
// cubic curves. Lines become degenerate cubics whose control points coincide
// with their endpoints, quadratics are raised to cubics. An open subpath is
// closed with a line back to its start, unless the gap is negligible.
func subpathCurves(sub Path) []curve.CubicBez {
	var curves []curve.CubicBez
	for seg := range sub.Segments() {
		curves = append(curves, seg.Cubic())
	}
	if len(curves) == 0 || sub.IsClosed() {
		return curves
	}
	start, _ := sub.FirstPoint()
	if end := curves[len(curves)-1].P3; end.Distance(start) > closeGap {
		curves = append(curves, curve.CubicBez{P0: end, P1: end, P2: start, P3: start})
	}
	return curves
}

// curveIsTiny reports whether c's extent is below tinyCurveSize.
func curveIsTiny(c curve.CubicBez) bool {
	bb := c.BoundingBox()
	return bb.Width()+bb.Height() < tinyCurveSize
}
