package pathoffset

import (
	"iter"
	"slices"

	"honnef.co/go/curve"
)

// Subpaths decomposes the path into its individual subpaths, yielding each
// one as a single-subpath Path. The sequence is lazy, finite, and restarts
// from scratch every time it is ranged over.
//
// A run starts at a MoveTo and ends at a ClosePath, at the next MoveTo, or
// at the end of the element stream. Since the element model has no explicit
// terminator for open subpaths, a run interrupted by a MoveTo (and a
// trailing run) is emitted as a complete open subpath rather than discarded.
// Stray elements with no open run are discarded silently; runs with zero
// segments are degenerate and dropped.
func (p Path) Subpaths() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		var run curve.BezPath
		flush := func() bool {
			// a lone MoveTo has no segments
			if len(run) > 1 {
				return yield(Path{elements: slices.Clone(run)})
			}
			return true
		}
		for _, el := range p.elements {
			switch el.Kind {
			case curve.MoveToKind:
				if !flush() {
					return
				}
				run = append(run[:0], el)
			case curve.ClosePathKind:
				if len(run) > 1 {
					run = append(run, el)
					if !yield(Path{elements: slices.Clone(run)}) {
						return
					}
				}
				run = run[:0]
			default:
				if len(run) == 0 {
					continue
				}
				run = append(run, el)
			}
		}
		flush()
	}
}

// IsClosed reports whether the path contains a closed subpath. A
// single-subpath Path, as yielded by [Path.Subpaths], is closed iff it ends
// with a ClosePath.
func (p Path) IsClosed() bool {
	return slices.ContainsFunc(p.elements, func(el curve.PathElement) bool {
		return el.Kind == curve.ClosePathKind
	})
}
