// Package engine implements Newton central-difference interpolation over
// tabulated, equally-spaced samples at orders 3 and 5.
//
// An Engine owns a validated table (x1, xN, y) with a derived uniform step.
// Every evaluation slices an order-length window out of the table, derives
// the window's finite-difference coefficients, and evaluates the
// interpolation polynomial at a dimensionless factor n measured from the
// window center. The extremum and zero-crossing searches iterate that
// pipeline over every contiguous window of the table.
package engine

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for table construction and evaluation failures.
var (
	// ErrInvalidArgument indicates a non-finite input value or a malformed
	// coefficient vector.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIncorrectCount indicates a sample count that does not match the
	// interpolation order.
	ErrIncorrectCount = errors.New("incorrect sample count")

	// ErrNoRange indicates a degenerate table with x1 == xN.
	ErrNoRange = errors.New("no range between x values")

	// ErrOutOfRange indicates an x target or n factor outside the
	// admissible domain.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNoConvergence indicates a factor search that did not settle
	// within the iteration bound.
	ErrNoConvergence = errors.New("iteration did not converge")
)

// Result holds one interpolation evaluation: the x position, the
// interpolated y value, and the last (highest-order) finite difference of
// the window used, kept as a curvature diagnostic.
type Result struct {
	X        float64
	Y        float64
	LastDiff float64
}

// SearchResult is the outcome of an extremum or zero-crossing search.
// Found is false when no window yielded an admissible factor; that is a
// not-found outcome, not an error.
type SearchResult struct {
	Found bool
	Result
}

// Engine interpolates a tabulated dataset at a fixed order (3 or 5).
//
// The table is immutable after construction. The strict flag is the only
// mutable state; mutating it concurrently with in-flight calls on the same
// Engine requires external synchronization.
type Engine struct {
	order  int
	x1, xN float64
	y      []float64
	step   float64
	strict bool
}

// New validates and stores a tabulated dataset for interpolation at the
// given order. Validation order: finite y values, finite x endpoints,
// sample count, non-degenerate range. Tables given in descending x order
// are normalized by reversing y and swapping the endpoints, so x1 < xN
// always holds after construction.
func New(order int, x1, xN float64, y []float64) (*Engine, error) {
	if order != Order3 && order != Order5 {
		return nil, fmt.Errorf("%w: order must be %d or %d", ErrInvalidArgument, Order3, Order5)
	}
	if floats.HasNaN(y) || hasInf(y) {
		return nil, fmt.Errorf("%w: y values must be finite", ErrInvalidArgument)
	}
	if !isFinite(x1) || !isFinite(xN) {
		return nil, fmt.Errorf("%w: x values must be finite", ErrInvalidArgument)
	}
	if len(y) < order {
		return nil, fmt.Errorf("%w: must have at least %d y values, got %d", ErrIncorrectCount, order, len(y))
	}
	if x1 == xN {
		return nil, fmt.Errorf("%w: x1 == xN == %v", ErrNoRange, x1)
	}

	stored := make([]float64, len(y))
	copy(stored, y)
	if xN < x1 {
		floats.Reverse(stored)
		x1, xN = xN, x1
	}

	return &Engine{
		order: order,
		x1:    x1,
		xN:    xN,
		y:     stored,
		step:  (xN - x1) / float64(len(y)-1),
	}, nil
}

// Order returns the interpolation order (3 or 5).
func (e *Engine) Order() int { return e.order }

// X1 returns the first tabulated x.
func (e *Engine) X1() float64 { return e.x1 }

// XN returns the last tabulated x.
func (e *Engine) XN() float64 { return e.xN }

// Len returns the number of tabulated samples.
func (e *Engine) Len() int { return len(e.y) }

// Step returns the uniform x spacing between consecutive samples.
func (e *Engine) Step() float64 { return e.step }

// Strict reports whether strict range checking is enabled.
func (e *Engine) Strict() bool { return e.strict }

// SetStrict toggles strict range checking. Strict mode restricts the
// admissible factor to [-0.5, 0.5]; otherwise [-1, 1] is admitted. The
// setting affects every subsequent range check on this Engine.
func (e *Engine) SetStrict(strict bool) { e.strict = strict }

// checkN rejects interpolation factors outside the admissible domain for
// the current strictness mode.
func (e *Engine) checkN(n float64) error {
	bound := looseNBound
	if e.strict {
		bound = strictNBound
	}
	if math.Abs(n) > bound {
		return fmt.Errorf("%w: factor n=%v outside [%v, %v]", ErrOutOfRange, n, -bound, bound)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func hasInf(s []float64) bool {
	for _, v := range s {
		if math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
