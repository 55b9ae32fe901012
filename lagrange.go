package interp

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
)

// Point is one (x, y) sample for Lagrange interpolation.
type Point struct {
	X, Y float64
}

// Lagrange interpolates over arbitrarily spaced points using the classical
// Lagrange formula
//
//	y(x) = Σᵢ yᵢ · Πⱼ≠ᵢ (x − xⱼ)/(xᵢ − xⱼ)
//
// There is no windowing and no iteration: every evaluation is an O(n²)
// weighted sum over the whole dataset, exact at every tabulated point.
// Unlike the central-difference Interpolator it accepts unequal spacing
// and points in any order, but offers no extremum or zero search.
type Lagrange struct {
	xs, ys []float64
}

// NewLagrange builds a Lagrange interpolator over the given points. At
// least two points are required, all coordinates finite, with distinct x
// values (a duplicated x makes a basis denominator vanish).
func NewLagrange(points []Point) (*Lagrange, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrIncorrectCount, len(points))
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, pt := range points {
		if !isFinite(pt.X) || !isFinite(pt.Y) {
			return nil, fmt.Errorf("%w: point %d is not finite", ErrInvalidArgument, i)
		}
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if xs[i] == xs[j] {
				return nil, fmt.Errorf("%w: duplicate x value %v", ErrNoRange, xs[i])
			}
		}
	}

	return &Lagrange{xs: xs, ys: ys}, nil
}

// Len returns the number of tabulated points.
func (l *Lagrange) Len() int { return len(l.xs) }

// X interpolates y at the given x. Any finite x is admissible; outside the
// tabulated span this extrapolates the fitted polynomial.
func (l *Lagrange) X(x float64) float64 {
	weights := make([]float64, len(l.xs))
	for i, xi := range l.xs {
		w := 1.0
		for j, xj := range l.xs {
			if j == i {
				continue
			}
			w *= (x - xj) / (xi - xj)
		}
		weights[i] = w
	}
	// weights and ys are the same length by construction.
	return f64.DotProductUnsafe(weights, l.ys)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
