package pathoffset

import (
	"math"
	"testing"

	"honnef.co/go/curve"
)

// square appends a closed axis-aligned square subpath. ccw chooses the
// winding direction.
func square(p *Path, x, y, size float64, ccw bool) {
	p.MoveTo(curve.Pt(x, y))
	if ccw {
		p.LineTo(curve.Pt(x+size, y))
		p.LineTo(curve.Pt(x+size, y+size))
		p.LineTo(curve.Pt(x, y+size))
	} else {
		p.LineTo(curve.Pt(x, y+size))
		p.LineTo(curve.Pt(x+size, y+size))
		p.LineTo(curve.Pt(x+size, y))
	}
	p.Close()
}

func TestFindOuterShellEmpty(t *testing.T) {
	var p Path
	if _, ok := p.FindOuterShell(); ok {
		t.Error("empty path must have no shell")
	}
}

func TestFindOuterShellSingle(t *testing.T) {
	// A single subpath is the shell by definition, even when open.
	p, err := ParsePath("M0,0 L10,0 L10,10")
	if err != nil {
		t.Fatal(err)
	}
	shell, ok := p.FindOuterShell()
	if !ok {
		t.Fatal("expected a shell")
	}
	diff(t, elems(p), elems(shell))
}

func TestFindOuterShellNested(t *testing.T) {
	// A 10×10 counter-clockwise square (signed area +100) containing a 6×6
	// clockwise hole (signed area -36).
	var p Path
	square(&p, 0, 0, 10, true)
	square(&p, 2, 2, 6, false)

	shell, ok := p.FindOuterShell()
	if !ok {
		t.Fatal("expected a shell")
	}
	start, _ := shell.FirstPoint()
	diff(t, curve.Pt(0, 0), start)
}

func TestFindOuterShellHoleFirst(t *testing.T) {
	// Same layout, but the hole comes first in the element stream; the area
	// heuristic must still pick the outer ring.
	var p Path
	square(&p, 2, 2, 6, false)
	square(&p, 0, 0, 10, true)

	shell, ok := p.FindOuterShell()
	if !ok {
		t.Fatal("expected a shell")
	}
	start, _ := shell.FirstPoint()
	diff(t, curve.Pt(0, 0), start)
}

func TestFindOuterShellAllOpenFallback(t *testing.T) {
	// No closed subpath exists, so the area heuristic yields nothing and the
	// containment fallback runs. Open contours have no interior, so nothing
	// contains anything and the first subpath wins.
	p, err := ParsePath("M0,0 L10,0 L10,10 M2,2 L8,2 L8,8")
	if err != nil {
		t.Fatal(err)
	}
	shell, ok := p.FindOuterShell()
	if !ok {
		t.Fatal("expected a shell")
	}
	start, _ := shell.FirstPoint()
	diff(t, curve.Pt(0, 0), start)
}

func TestFindOuterShellDegenerateAreas(t *testing.T) {
	// Zero-area closed subpaths must not break the heuristic; it has to
	// return some shell rather than none.
	p, err := ParsePath("M0,0 L10,0 Z M20,0 L30,0 Z")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.FindOuterShell(); !ok {
		t.Error("expected a shell for degenerate areas")
	}
}

func TestFindShellByContainmentNested(t *testing.T) {
	// Closed nested squares, hole first: the inner square is contained by
	// the outer one and must be skipped; the outer square is contained by
	// none and wins.
	var outer, inner Path
	square(&outer, 0, 0, 10, true)
	square(&inner, 2, 2, 6, true)

	shell, ok := findShellByContainment([]Path{inner, outer})
	if !ok {
		t.Fatal("expected a shell")
	}
	start, _ := shell.FirstPoint()
	diff(t, curve.Pt(0, 0), start)
}

func TestContainedBy(t *testing.T) {
	var outer, inner, open Path
	square(&outer, 0, 0, 10, true)
	square(&inner, 2, 2, 6, true)
	open.MoveTo(curve.Pt(3, 3))
	open.LineTo(curve.Pt(4, 4))

	if !inner.containedBy(outer) {
		t.Error("inner square should be contained by outer")
	}
	if outer.containedBy(inner) {
		t.Error("outer square should not be contained by inner")
	}
	if open.containedBy(outer) {
		t.Error("open subpaths cannot be contained")
	}
	if inner.containedBy(open) {
		t.Error("open subpaths cannot contain")
	}
}

func TestHitTestEvenOdd(t *testing.T) {
	// A ring: a point between the two squares is inside under even-odd, a
	// point inside both is outside (crossed an even number of boundaries).
	var ring Path
	square(&ring, 0, 0, 10, true)
	square(&ring, 2, 2, 6, true)

	if !hitTestEvenOdd(curve.Pt(1, 1), ring, hitTestTolerance) {
		t.Error("point in the ring band should be inside")
	}
	if hitTestEvenOdd(curve.Pt(5, 5), ring, hitTestTolerance) {
		t.Error("point in the hole should be outside under even-odd")
	}
	if hitTestEvenOdd(curve.Pt(20, 20), ring, hitTestTolerance) {
		t.Error("point outside the ring should be outside")
	}
}

func TestHitTestEvenOddCurved(t *testing.T) {
	// A circle-ish closed contour of two quadratics, to exercise the
	// flattening path of the hit test.
	var blob Path
	blob.MoveTo(curve.Pt(0, 0))
	blob.QuadTo(curve.Pt(5, 10), curve.Pt(10, 0))
	blob.QuadTo(curve.Pt(5, -10), curve.Pt(0, 0))
	blob.Close()

	if !hitTestEvenOdd(curve.Pt(5, 0), blob, hitTestTolerance) {
		t.Error("center should be inside")
	}
	if hitTestEvenOdd(curve.Pt(5, 8), blob, hitTestTolerance) {
		t.Error("point above the blob should be outside")
	}
}

func TestTotalOrder(t *testing.T) {
	// Mirrors the IEEE 754 totalOrder predicate: -NaN < -Inf < -1 < -0 < +0
	// < 1 < +Inf < +NaN. Go's math.NaN is a positive quiet NaN.
	negNaN := math.Float64frombits(math.Float64bits(math.NaN()) | (1 << 63))
	ordered := []float64{
		negNaN,
		math.Inf(-1),
		-1,
		math.Copysign(0, -1),
		0,
		1,
		math.Inf(1),
		math.NaN(),
	}
	for i := range ordered {
		for j := range ordered {
			got := totalOrder(ordered[i], ordered[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("totalOrder(%v, %v) = %d, want %d", ordered[i], ordered[j], got, want)
			}
		}
	}
}
