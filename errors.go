package pathoffset

import (
	"errors"
	"fmt"
)

var (
	// ErrFitCurve indicates that the refit stage could not produce any curve
	// from the sampled point cloud, for example because the input degenerated
	// to fewer than two usable points after offsetting.
	ErrFitCurve = errors.New("failed to fit a curve to the points")

	// ErrCleanPath indicates that the cleaning stage produced zero contours,
	// for example because the fitted shape collapsed to nothing.
	ErrCleanPath = errors.New("failed to clean the path")
)

// ParseError wraps the underlying parser diagnostic for path text that does
// not conform to the path grammar.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse SVG path data: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError wraps a byte-stream read failure encountered while acquiring path
// text from an external source. It is distinct from [ParseError] so that
// callers can tell transport failures from content failures.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("i/o error: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
