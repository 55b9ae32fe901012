package interp

import (
	"gonum.org/v1/gonum/floats"
)

// At3 is a one-shot order-3 interpolation: it builds a throwaway
// interpolator over the table and evaluates y at x. Prefer constructing an
// Interpolator once when evaluating many points from the same table.
func At3(x1, xN float64, y []float64, x float64) (float64, error) {
	return at(Order3, x1, xN, y, x)
}

// At5 is a one-shot order-5 interpolation; see At3.
func At5(x1, xN float64, y []float64, x float64) (float64, error) {
	return at(Order5, x1, xN, y, x)
}

func at(order int, x1, xN float64, y []float64, x float64) (float64, error) {
	p, err := newInterpolator(order, x1, xN, y)
	if err != nil {
		return 0, err
	}
	r, err := p.X(x)
	if err != nil {
		return 0, err
	}
	return r.Y, nil
}

// Grid returns n evenly spaced x values spanning [x1, xN] inclusive,
// suitable as input to XAll. n must be at least 2.
func Grid(x1, xN float64, n int) []float64 {
	return floats.Span(make([]float64, n), x1, xN)
}
