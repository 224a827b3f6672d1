package pathoffset

import (
	"math"

	clipper "github.com/ctessum/go.clipper"
	"honnef.co/go/curve"
)

const (
	// cleanAccuracy is the area-based simplification tolerance of the
	// cleaning stage.
	cleanAccuracy = 0.01

	// cleanScale maps coordinates onto the integer grid used for
	// self-intersection removal. The grid pitch is cleanAccuracy.
	cleanScale = 1.0 / cleanAccuracy
)

// cleanPath removes self-intersection loops and interior points from the
// fitted contour, producing exactly one simplified closed contour. It fails
// with [ErrCleanPath] when cleaning yields no contour, rather than returning
// an empty path silently.
//
// The contour is flattened at cleanAccuracy, snapped onto an integer grid of
// the same pitch, resolved into simple polygons with a union under the
// nonzero fill rule, and the surviving contour of largest absolute area is
// refit to smooth curves.
func cleanPath(p Path) (Path, error) {
	poly := flattenToPolygon(p, cleanAccuracy)
	if len(poly) < 3 {
		return Path{}, ErrCleanPath
	}

	contour := largestContour(clipper.NewClipper(clipper.IoNone).SimplifyPolygon(poly, clipper.PftNonZero))
	if len(contour) < 3 {
		return Path{}, ErrCleanPath
	}

	return contourToPath(contour)
}

// flattenToPolygon flattens p at the given tolerance and snaps the resulting
// polyline onto the clipper integer grid, dropping consecutive duplicates
// introduced by the snapping.
func flattenToPolygon(p Path, tolerance float64) clipper.Path {
	poly := clipper.NewPath()
	add := func(pt curve.Point) {
		ip := clipper.NewIntPoint(
			clipper.CInt(math.Round(pt.X*cleanScale)),
			clipper.CInt(math.Round(pt.Y*cleanScale)),
		)
		if len(poly) == 0 || poly[len(poly)-1].NotEqual(ip) {
			poly = append(poly, ip)
		}
	}
	for el := range p.elements.Flatten(tolerance) {
		switch el.Kind {
		case curve.MoveToKind, curve.LineToKind:
			add(el.P0)
		}
	}
	// drop a duplicated closing point; clipper paths are implicitly closed
	if len(poly) > 1 && poly[0].Equals(poly[len(poly)-1]) {
		poly = poly[:len(poly)-1]
	}
	return poly
}

// largestContour returns the contour with the largest absolute area, or nil.
func largestContour(contours clipper.Paths) clipper.Path {
	var best clipper.Path
	bestArea := 0.0
	for _, contour := range contours {
		if area := math.Abs(clipper.Area(contour)); best == nil || area > bestArea {
			best, bestArea = contour, area
		}
	}
	return best
}

// contourToPath scales the integer contour back to path coordinates and
// refits it to smooth curves within cleanAccuracy, closing the result.
func contourToPath(contour clipper.Path) (Path, error) {
	var poly curve.BezPath
	for i, ip := range contour {
		pt := curve.Pt(float64(ip.X)/cleanScale, float64(ip.Y)/cleanScale)
		if i == 0 {
			poly.MoveTo(pt)
		} else {
			poly.LineTo(pt)
		}
	}
	poly.ClosePath()

	var out Path
	for el := range curve.Simplify(poly.Elements(), cleanAccuracy, curve.DefaultSimplifyOptions) {
		out.elements.Push(el)
	}
	if !out.elements.HasSegments() {
		return Path{}, ErrCleanPath
	}
	return out, nil
}
