package interp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	interp "github.com/marando/Interp"
)

// TestLagrangeSine verifies the classic ephemeris example: six unordered,
// unequally spaced samples of sin(x°) interpolated at x = 30 must give
// very nearly sin(30°) = 0.5.
func TestLagrangeSine(t *testing.T) {
	l, err := interp.NewLagrange([]interp.Point{
		{X: 29.43, Y: 0.4913598528},
		{X: 30.97, Y: 0.5145891926},
		{X: 27.69, Y: 0.4646875083},
		{X: 28.11, Y: 0.4711658342},
		{X: 31.58, Y: 0.5236885653},
		{X: 33.05, Y: 0.5453707057},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, l.X(30), 1e-6)
}

// TestLagrangeExactAtPoints verifies that the interpolating polynomial
// passes through every tabulated point.
func TestLagrangeExactAtPoints(t *testing.T) {
	points := []interp.Point{
		{X: -1, Y: 2}, {X: 0.5, Y: -3}, {X: 2, Y: 7}, {X: 4.25, Y: 0.1},
	}
	l, err := interp.NewLagrange(points)
	require.NoError(t, err)

	for _, pt := range points {
		assert.InDelta(t, pt.Y, l.X(pt.X), 1e-9, "at x=%v", pt.X)
	}
}

// TestLagrangePolynomialExactness verifies that data from a quadratic is
// reproduced exactly between and beyond the samples: three points
// determine the polynomial uniquely.
func TestLagrangePolynomialExactness(t *testing.T) {
	// y = x^2 - 2x + 3
	f := func(x float64) float64 { return x*x - 2*x + 3 }
	l, err := interp.NewLagrange([]interp.Point{
		{X: 0, Y: f(0)}, {X: 1, Y: f(1)}, {X: 5, Y: f(5)},
	})
	require.NoError(t, err)

	for _, x := range []float64{-2, 0.5, 2.5, 10} {
		assert.InDelta(t, f(x), l.X(x), 1e-9, "at x=%v", x)
	}
}

// TestLagrangeValidation verifies the constructor failure modes.
func TestLagrangeValidation(t *testing.T) {
	tests := []struct {
		name    string
		points  []interp.Point
		wantErr error
	}{
		{"Empty", nil, interp.ErrIncorrectCount},
		{"OnePoint", []interp.Point{{X: 1, Y: 1}}, interp.ErrIncorrectCount},
		{"DuplicateX", []interp.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}, interp.ErrNoRange},
		{"NaN", []interp.Point{{X: 1, Y: math.NaN()}, {X: 2, Y: 1}}, interp.ErrInvalidArgument},
		{"Inf", []interp.Point{{X: math.Inf(1), Y: 1}, {X: 2, Y: 1}}, interp.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := interp.NewLagrange(tt.points)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
