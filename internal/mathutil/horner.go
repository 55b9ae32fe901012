// Package mathutil provides scalar numerical kernels for the interpolation
// engine.
package mathutil

import (
	"errors"
)

// ErrNoCoefficients is returned when a polynomial evaluation is requested
// with an empty coefficient vector.
var ErrNoCoefficients = errors.New("polynomial has no coefficients")

// Horner evaluates a polynomial at x using Horner's nested-multiplication
// scheme. Coefficients are ordered lowest to highest degree, so
//
//	coeffs = [c0, c1, c2]  represents  c0 + c1*x + c2*x²
//
// and is evaluated as (c2*x + c1)*x + c0. This form needs len(coeffs)-1
// multiplications and is numerically preferable to summing powers of x.
func Horner(coeffs []float64, x float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, ErrNoCoefficients
	}

	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = result*x + coeffs[i]
	}
	return result, nil
}

// HornerKnown is Horner for coefficient vectors that are known to be
// non-empty at the call site, such as the fixed difference-coefficient
// vectors built by the engine. It panics on an empty vector rather than
// returning an error.
func HornerKnown(coeffs []float64, x float64) float64 {
	y, err := Horner(coeffs, x)
	if err != nil {
		panic("mathutil: " + err.Error())
	}
	return y
}
