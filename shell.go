package pathoffset

import (
	"cmp"
	"math"
	"slices"

	"honnef.co/go/curve"
)

// hitTestTolerance is the flattening tolerance of the even-odd containment
// test used by the shell finder.
const hitTestTolerance = 0.1

// FindOuterShell finds the subpath that forms the path's outer boundary, the
// one that encloses all others. The second return value reports whether a
// shell was found.
//
// A path with a single subpath is its own shell, unconditionally. With
// several subpaths, a fast largest-signed-area heuristic over the closed
// subpaths is tried first; only if it yields nothing (all subpaths open)
// does the finder fall back to the O(n²) geometric containment test. If
// every subpath is contained by some other, no shell is reported.
func (p Path) FindOuterShell() (Path, bool) {
	subpaths := slices.Collect(p.Subpaths())

	switch len(subpaths) {
	case 0:
		return Path{}, false
	case 1:
		return subpaths[0], true
	default:
		if shell, ok := findShellByArea(subpaths); ok {
			return shell, true
		}
		return findShellByContainment(subpaths)
	}
}

// findShellByArea selects the closed subpath with the maximum signed area.
// For simple non-overlapping layouts with the usual orientations (an outer
// counter-clockwise ring enclosing clockwise holes) the outer ring has the
// largest signed area.
func findShellByArea(subpaths []Path) (Path, bool) {
	best := -1
	var bestArea float64
	for i, sub := range subpaths {
		// Only closed subpaths define an inside and an outside.
		if !sub.IsClosed() {
			continue
		}
		area := sub.elements.SignedArea()
		if best < 0 || totalOrder(area, bestArea) >= 0 {
			best, bestArea = i, area
		}
	}
	if best < 0 {
		return Path{}, false
	}
	return subpaths[best], true
}

// findShellByContainment returns the first subpath, in iteration order, that
// is contained by no other subpath.
func findShellByContainment(subpaths []Path) (Path, bool) {
	for i, sub := range subpaths {
		contained := false
		for j := range subpaths {
			if i == j {
				continue
			}
			if sub.intersectsBoundsOf(subpaths[j]) && sub.containedBy(subpaths[j]) {
				contained = true
				break
			}
		}
		if !contained {
			return sub, true
		}
	}
	return Path{}, false
}

// totalOrder compares two floats under the IEEE 754 totalOrder predicate, by
// comparing sign-adjusted bit patterns. Unlike comparison operators it
// imposes a total ordering, so degenerate (NaN or infinite) areas can never
// leave the heuristic without a maximum.
func totalOrder(a, b float64) int {
	ia := int64(math.Float64bits(a))
	ib := int64(math.Float64bits(b))
	ia ^= int64(uint64(ia>>63) >> 1)
	ib ^= int64(uint64(ib>>63) >> 1)
	return cmp.Compare(ia, ib)
}

// intersectsBoundsOf reports whether the axis-aligned bounding boxes of the
// two paths overlap.
func (p Path) intersectsBoundsOf(other Path) bool {
	a := p.elements.BoundingBox()
	b := other.elements.BoundingBox()
	return a.MinX() <= b.MaxX() && b.MinX() <= a.MaxX() &&
		a.MinY() <= b.MaxY() && b.MinY() <= a.MaxY()
}

// containedBy reports whether p is geometrically contained within other:
// both must be closed, and p's first endpoint must be inside other under the
// even-odd fill rule.
func (p Path) containedBy(other Path) bool {
	if !p.IsClosed() || !other.IsClosed() {
		return false
	}
	pt, ok := p.FirstPoint()
	if !ok {
		return false
	}
	return hitTestEvenOdd(pt, other, hitTestTolerance)
}

// hitTestEvenOdd reports whether pt is inside path under the even-odd fill
// rule, flattening curves at the given tolerance. Subpaths are treated as
// implicitly closed, as open contours have no well-defined interior.
func hitTestEvenOdd(pt curve.Point, path Path, tolerance float64) bool {
	inside := false
	crossing := func(a, b curve.Point) {
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	var start, last curve.Point
	started := false
	for el := range path.elements.Flatten(tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			if started {
				crossing(last, start)
			}
			start, last = el.P0, el.P0
			started = true
		case curve.LineToKind:
			crossing(last, el.P0)
			last = el.P0
		case curve.ClosePathKind:
			crossing(last, start)
			last = start
		}
	}
	if started {
		crossing(last, start)
	}
	return inside
}
