package pathoffset

import (
	"math"
	"slices"

	"honnef.co/go/curve"
)

const (
	// sampleStep is the arc-length distance between the sections into which
	// each offset curve is divided for sampling.
	sampleStep = 0.1

	// sampleAccuracy is the error tolerance of arc-length evaluation and
	// inversion while walking a curve.
	sampleAccuracy = 0.01

	// fitAccuracy is the maximum fitting error when refitting the sampled
	// point cloud. Coarser than sampleAccuracy: the fit smooths out
	// offset-construction noise rather than reproducing every sample.
	fitAccuracy = 1.0
)

// sampleCurveEvenly walks c in sections of sampleStep arc length (the last
// section takes the remainder) and appends one sample per section to points,
// taken at the section's parametric midpoint. A curve shorter than one step
// contributes a single sample. Invalid (NaN) samples are dropped, never
// propagated into later stages.
func sampleCurveEvenly(c curve.CubicBez, points []curve.Point) []curve.Point {
	total := c.Arclen(sampleAccuracy)
	if total <= 0 {
		return points
	}
	n := int(math.Ceil(total / sampleStep))
	t0 := 0.0
	for i := 1; i <= n; i++ {
		t1 := 1.0
		if i < n {
			t1 = curve.SolveForArclen(c, float64(i)*sampleStep, sampleAccuracy)
		}
		if pt := c.Eval(t0 + 0.5*(t1-t0)); !pt.IsNaN() {
			points = append(points, pt)
		}
		t0 = t1
	}
	return points
}

// fitPath fits a single smooth curve sequence through the point cloud,
// within fitAccuracy, and assembles it into one connected closed Path,
// discarding tiny curves. It fails with [ErrFitCurve] when the cloud has
// fewer than two usable points or the fit yields no curve.
func fitPath(points []curve.Point) (Path, error) {
	points = slices.Compact(points)
	if len(points) < 2 {
		return Path{}, ErrFitCurve
	}

	var polyline curve.BezPath
	polyline.MoveTo(points[0])
	for _, pt := range points[1:] {
		polyline.LineTo(pt)
	}

	fitted := curve.Simplify(polyline.Elements(), fitAccuracy, curve.DefaultSimplifyOptions)

	var out Path
	started := false
	for seg := range curve.Segments(fitted) {
		if curveIsTiny(seg.Cubic()) {
			continue
		}
		if !started {
			out.MoveTo(seg.Start())
			started = true
		}
		out.elements.Push(seg.PathElement())
	}
	if !started {
		return Path{}, ErrFitCurve
	}
	out.Close()
	return out, nil
}
