package engine

import (
	"fmt"

	"github.com/marando/Interp/internal/mathutil"
)

// iterate runs a bounded fixed-point iteration of f seeded at 0, declaring
// convergence when two successive iterates are bitwise equal. It reports
// failure after maxIterations steps without settling; NaN iterates never
// compare equal and therefore run to the bound.
func iterate(f func(float64) float64) (float64, bool) {
	var n float64
	for i := 0; i < maxIterations; i++ {
		next := f(n)
		if next == n {
			return next, true
		}
		n = next
	}
	return 0, false
}

// extremumFactor computes the factor at which the window's interpolation
// polynomial has zero derivative. The second return is false for windows
// with no usable solution (flat curvature, or an inadmissible fixed point).
//
// Order 3 has the closed form n = (a+b)/(-2c). Order 5 solves the scaled
// derivative cubic
//
//	n = (6(B+C) - H - J + 3(H+J)n² + 2Kn³) / (K - 12F)
//
// by fixed-point iteration; exhausting the iteration bound is an
// ErrNoConvergence failure for the whole search.
func (e *Engine) extremumFactor(w window) (float64, bool, error) {
	switch e.order {
	case Order3:
		d := newDiff3(w.y)
		if d.c == 0 {
			return 0, false, nil
		}
		return (d.a + d.b) / (-2 * d.c), true, nil
	case Order5:
		d := newDiff5(w.y)
		denom := d.K - 12*d.F
		if denom == 0 {
			return 0, false, nil
		}
		coeffs := []float64{6*(d.B+d.C) - d.H - d.J, 0, 3 * (d.H + d.J), 2 * d.K}
		n, ok := iterate(func(n float64) float64 {
			return mathutil.HornerKnown(coeffs, n) / denom
		})
		if !ok {
			return 0, false, fmt.Errorf("%w: extremum factor search exceeded %d iterations", ErrNoConvergence, maxIterations)
		}
		return n, true, nil
	}
	panic("engine: unsupported order")
}

// Extremum scans every contiguous window for a local extremum of the
// interpolation polynomial and returns the smallest y found. Windows whose
// factor is out of range for the current strictness mode are skipped; a
// search where every window is skipped reports Found == false.
//
// Note this tracks the minimum y only: a dataset whose only extremum is a
// maximum reports that window's fitted peak as its minimum candidate, and
// callers wanting a maximum should negate their y values.
func (e *Engine) Extremum() (SearchResult, error) {
	var best SearchResult
	for _, w := range e.windows() {
		n, ok, err := e.extremumFactor(w)
		if err != nil {
			return SearchResult{}, err
		}
		if !ok || e.checkN(n) != nil {
			continue
		}
		r, err := e.evalN(w, n)
		if err != nil {
			continue
		}
		if !best.Found || r.Y < best.Y {
			best = SearchResult{Found: true, Result: r}
		}
	}
	return best, nil
}

// zeroIterators returns the two fixed-point iterations that locate a zero
// of the window's interpolation polynomial: first the Newton form, which
// converges fast near a simple root, then the plainer rearranged form of
// the polynomial, which tolerates flatter derivatives. Either may fail to
// settle; callers discard unconverged candidates.
func (e *Engine) zeroIterators(w window) [2]func(float64) float64 {
	switch e.order {
	case Order3:
		d := newDiff3(w.y)
		mid := w.y[1]
		return [2]func(float64) float64{
			func(n float64) float64 {
				return n - (2*mid+n*(d.a+d.b+d.c*n))/(d.a+d.b+2*d.c*n)
			},
			func(n float64) float64 {
				return -2 * mid / (d.a + d.b + d.c*n)
			},
		}
	case Order5:
		d := newDiff5(w.y)
		coeffs := d.coeffs(w.y[2])
		deriv := []float64{coeffs[1], 2 * coeffs[2], 3 * coeffs[3], 4 * coeffs[4]}
		num := []float64{-24 * w.y[2], 0, d.K - 12*d.F, -2 * (d.H + d.J), -d.K}
		denom := 12*(d.B+d.C) - 2*(d.H+d.J)
		return [2]func(float64) float64{
			func(n float64) float64 {
				return n - mathutil.HornerKnown(coeffs, n)/mathutil.HornerKnown(deriv, n)
			},
			func(n float64) float64 {
				return mathutil.HornerKnown(num, n) / denom
			},
		}
	}
	panic("engine: unsupported order")
}

// Zero scans every contiguous window for a zero crossing of the
// interpolation polynomial. Among all converged, in-range candidates
// across every window and both iteration methods, the one with the
// smallest signed factor wins; its window is then evaluated at that
// factor. Found == false when no candidate converged in range.
func (e *Engine) Zero() (SearchResult, error) {
	type candidate struct {
		w window
		n float64
	}
	var best candidate
	found := false
	for _, w := range e.windows() {
		for _, f := range e.zeroIterators(w) {
			n, ok := iterate(f)
			if !ok || e.checkN(n) != nil {
				continue
			}
			if !found || n < best.n {
				best = candidate{w: w, n: n}
				found = true
			}
		}
	}
	if !found {
		return SearchResult{}, nil
	}
	r, err := e.evalN(best.w, best.n)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Found: true, Result: r}, nil
}
