package mathutil

import (
	"errors"
	"math"
	"testing"
)

// TestHorner verifies polynomial evaluation for known polynomials.
func TestHorner(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		x      float64
		want   float64
	}{
		{"Constant", []float64{3.5}, 100, 3.5},
		{"Linear", []float64{1, 2}, 3, 7},              // 1 + 2*3
		{"Quadratic", []float64{1, 0, 1}, 2, 5},        // 1 + 2²
		{"Cubic", []float64{-1, 3, -3, 1}, 2, 1},       // (x-1)³ at x=2
		{"AtZero", []float64{4, 5, 6}, 0, 4},           // constant term only
		{"NegativeX", []float64{0, 1, 1}, -0.5, -0.25}, // x + x²
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Horner(tt.coeffs, tt.x)
			if err != nil {
				t.Fatalf("Horner failed: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Horner(%v, %v) = %v, want %v", tt.coeffs, tt.x, got, tt.want)
			}
		})
	}
}

// TestHornerEmpty verifies that an empty coefficient vector is rejected.
func TestHornerEmpty(t *testing.T) {
	if _, err := Horner(nil, 1); !errors.Is(err, ErrNoCoefficients) {
		t.Errorf("Horner(nil, 1) error = %v, want ErrNoCoefficients", err)
	}
	if _, err := Horner([]float64{}, 1); !errors.Is(err, ErrNoCoefficients) {
		t.Errorf("Horner([], 1) error = %v, want ErrNoCoefficients", err)
	}
}

// TestHornerKnownPanics verifies the panic path for statically-sized vectors.
func TestHornerKnownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("HornerKnown(nil, 1) did not panic")
		}
	}()
	HornerKnown(nil, 1)
}
