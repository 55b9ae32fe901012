package interp

import (
	"fmt"

	"github.com/marando/Interp/internal/engine"
)

// Sentinel errors. Wrap-aware: test with errors.Is.
var (
	// ErrInvalidArgument indicates a non-finite input value or a
	// malformed coefficient vector.
	ErrInvalidArgument = engine.ErrInvalidArgument

	// ErrIncorrectCount indicates a sample count that does not match the
	// interpolation order.
	ErrIncorrectCount = engine.ErrIncorrectCount

	// ErrNoRange indicates a degenerate table (x1 == xN, or duplicate x
	// values for Lagrange).
	ErrNoRange = engine.ErrNoRange

	// ErrOutOfRange indicates an x target or interpolation factor outside
	// the admissible domain.
	ErrOutOfRange = engine.ErrOutOfRange

	// ErrNoConvergence indicates an extremum factor search that did not
	// settle within its iteration bound.
	ErrNoConvergence = engine.ErrNoConvergence
)

// Result holds one interpolation evaluation. LastDiff is the highest-order
// finite difference of the window that produced Y (the second difference
// for order 3, the fourth for order 5), useful as a curvature diagnostic:
// a large value means the window is poorly approximated by the fit.
type Result struct {
	X        float64
	Y        float64
	LastDiff float64
}

// SearchResult is the outcome of an Extremum or Zero search. Found is
// false when no window of the table yielded an admissible solution; that
// is a normal outcome, not an error.
type SearchResult struct {
	Found bool
	Result
}

// Interpolator evaluates a tabulated, equally-spaced dataset by Newton's
// central-difference method at a fixed order. Construct with New3 or New5.
//
// The table is immutable after construction; the strict flag is the only
// mutable state.
type Interpolator struct {
	eng *engine.Engine
}

// New3 builds an order-3 interpolator over y values sampled uniformly from
// x1 to xN. At least 3 y values are required, all finite, with x1 != xN.
// A descending table (x1 > xN) is normalized by reversing y and swapping
// the endpoints.
func New3(x1, xN float64, y []float64) (*Interpolator, error) {
	return newInterpolator(Order3, x1, xN, y)
}

// New5 builds an order-5 interpolator over y values sampled uniformly from
// x1 to xN. At least 5 y values are required; otherwise as New3.
func New5(x1, xN float64, y []float64) (*Interpolator, error) {
	return newInterpolator(Order5, x1, xN, y)
}

func newInterpolator(order int, x1, xN float64, y []float64) (*Interpolator, error) {
	eng, err := engine.New(order, x1, xN, y)
	if err != nil {
		return nil, err
	}
	return &Interpolator{eng: eng}, nil
}

// Order returns the interpolation order (3 or 5).
func (p *Interpolator) Order() int { return p.eng.Order() }

// X1 returns the first tabulated x (always the smaller endpoint).
func (p *Interpolator) X1() float64 { return p.eng.X1() }

// XN returns the last tabulated x.
func (p *Interpolator) XN() float64 { return p.eng.XN() }

// Len returns the number of tabulated samples.
func (p *Interpolator) Len() int { return p.eng.Len() }

// Step returns the uniform x spacing between consecutive samples.
func (p *Interpolator) Step() float64 { return p.eng.Step() }

// Strict reports whether strict factor checking is enabled.
func (p *Interpolator) Strict() bool { return p.eng.Strict() }

// SetStrict toggles strict factor checking. Strict mode restricts the
// admissible interpolation factor to [-NMaxStrict, NMaxStrict] instead of
// [-NMax, NMax], and affects every subsequent call on this Interpolator.
func (p *Interpolator) SetStrict(strict bool) { p.eng.SetStrict(strict) }

// X interpolates y at the given x, which must lie within [X1, XN]
// (inclusive); ErrOutOfRange otherwise. A window is sliced around x, the
// factor computed analytically from the window edges, and the polynomial
// evaluated there. The Result carries x back unchanged.
//
// The factor derived from x must itself be admissible. Order 3 covers the
// whole table; order 5 measures its factor in step units from the window
// center, so coverage stops one step short of each table endpoint (closer
// still under strict mode).
func (p *Interpolator) X(x float64) (Result, error) {
	r, err := p.eng.AtX(x)
	return Result(r), err
}

// N evaluates the whole stored table at interpolation factor n. The table
// must hold exactly Order samples (ErrIncorrectCount otherwise; use NAt
// for larger tables), and n must be admissible for the current strictness
// mode.
func (p *Interpolator) N(n float64) (Result, error) {
	r, err := p.eng.AtN(n)
	return Result(r), err
}

// NAt slices a window around targetX and evaluates it at factor n. The
// factor is measured from the center of the sliced window, so the same n
// yields different x positions for different targets.
func (p *Interpolator) NAt(n, targetX float64) (Result, error) {
	r, err := p.eng.AtNNear(n, targetX)
	return Result(r), err
}

// XAll evaluates X over a grid of x values and returns the interpolated y
// values. An optional output slice can be supplied to avoid an
// allocation; it must have the same length as xs. Evaluation stops at the
// first out-of-range x.
func (p *Interpolator) XAll(xs []float64, out ...[]float64) ([]float64, error) {
	var ys []float64
	if len(out) == 0 {
		ys = make([]float64, len(xs))
	} else {
		ys = out[0]
		if len(ys) != len(xs) {
			return nil, fmt.Errorf("%w: output length %d does not match input length %d",
				ErrInvalidArgument, len(ys), len(xs))
		}
	}
	for i, x := range xs {
		r, err := p.eng.AtX(x)
		if err != nil {
			return nil, err
		}
		ys[i] = r.Y
	}
	return ys, nil
}

// Extremum scans every contiguous window of the table for a local
// extremum of the fitted polynomial and returns the smallest y found,
// with its x position and the window's last difference. Windows whose
// factor falls outside the admissible range are skipped; Found is false
// when every window was skipped.
//
// The search tracks the minimum y only. To locate a maximum, interpolate
// the negated y values.
//
// ErrNoConvergence is returned when an order-5 factor iteration fails to
// settle within its bound; order 3 uses a closed form and never iterates.
func (p *Interpolator) Extremum() (SearchResult, error) {
	r, err := p.eng.Extremum()
	return SearchResult{Found: r.Found, Result: Result(r.Result)}, err
}

// Zero scans every contiguous window of the table for a zero crossing of
// the fitted polynomial. Each window is probed by two fixed-point
// iterations (a Newton form, then a plain rearrangement); among all
// converged, admissible candidates the one with the smallest signed
// factor wins. Found is false when no candidate converged in range;
// unconverged iterations are discarded silently, never an error.
func (p *Interpolator) Zero() (SearchResult, error) {
	r, err := p.eng.Zero()
	return SearchResult{Found: r.Found, Result: Result(r.Result)}, err
}
