package pathoffset

import (
	"io"
	"iter"
	"slices"

	"github.com/ahmed-hararaa/pathparsing"
	"honnef.co/go/curve"
)

// Path represents a geometric path, composed of zero or more subpaths. Each
// subpath is an ordered run of line, quadratic and cubic Bézier segments,
// optionally closed back to its start.
//
// The zero value is an empty path, ready to be built with [Path.MoveTo] and
// friends. Paths own their elements; copying a Path with [Path.Clone] yields
// an independent value.
type Path struct {
	elements curve.BezPath
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt curve.Point) { p.elements.MoveTo(pt) }

// LineTo appends a line segment from the current point to pt.
func (p *Path) LineTo(pt curve.Point) { p.elements.LineTo(pt) }

// QuadTo appends a quadratic Bézier segment with control point ctrl, ending
// at pt.
func (p *Path) QuadTo(ctrl, pt curve.Point) { p.elements.QuadTo(ctrl, pt) }

// CubicTo appends a cubic Bézier segment with control points ctrl1 and
// ctrl2, ending at pt.
func (p *Path) CubicTo(ctrl1, ctrl2, pt curve.Point) { p.elements.CubicTo(ctrl1, ctrl2, pt) }

// Close closes the current subpath back to its start point.
func (p *Path) Close() { p.elements.ClosePath() }

// Clone returns a copy of the path that shares no storage with p.
func (p Path) Clone() Path {
	return Path{elements: slices.Clone(p.elements)}
}

// Elements returns the path's element stream.
func (p Path) Elements() iter.Seq[curve.PathElement] {
	return p.elements.Elements()
}

// Segments returns the path's segments, with an implicit closing line for
// closed subpaths whose last segment doesn't already end at the start point.
func (p Path) Segments() iter.Seq[curve.PathSegment] {
	return p.elements.Segments()
}

// FirstPoint returns the start point of the path's first subpath. The second
// return value reports whether the path has one.
func (p Path) FirstPoint() (curve.Point, bool) {
	for _, el := range p.elements {
		if el.Kind == curve.MoveToKind {
			return el.P0, true
		}
	}
	return curve.Point{}, false
}

// pathBuilder adapts Path to the parser's callback interface. The parser
// normalizes relative, smooth and arc commands and lifts quadratics to
// cubics, so only four callbacks exist.
type pathBuilder struct {
	path *Path
}

func (b pathBuilder) MoveTo(x, y float64) { b.path.MoveTo(curve.Pt(x, y)) }
func (b pathBuilder) LineTo(x, y float64) { b.path.LineTo(curve.Pt(x, y)) }
func (b pathBuilder) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	b.path.CubicTo(curve.Pt(x1, y1), curve.Pt(x2, y2), curve.Pt(x3, y3))
}
func (b pathBuilder) Close() { b.path.Close() }

var _ pathparsing.PathProxy = pathBuilder{}

// ParsePath parses a Path from an SVG path data string. This is the only
// construction path from external textual data.
//
// Malformed input returns a [*ParseError] carrying the parser's diagnostic.
func ParsePath(data string) (Path, error) {
	var p Path
	if err := pathparsing.WriteSvgPathDataToPath(data, pathBuilder{&p}); err != nil {
		return Path{}, &ParseError{Err: err}
	}
	return p, nil
}

// ReadPath reads SVG path data from r and parses it.
//
// Stream failures return a [*IOError], distinct from the [*ParseError]
// returned for malformed content.
func ReadPath(r io.Reader) (Path, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Path{}, &IOError{Err: err}
	}
	return ParsePath(string(data))
}

// SVG serializes the path to SVG path data: one M per subpath start, one
// command per segment in original order, and a trailing Z iff the subpath is
// closed.
func (p Path) SVG() string {
	return curve.SVG(p.elements.Elements(), curve.SVGOptions{})
}

func (p Path) String() string {
	return p.SVG()
}
