// Package testutil provides reusable test helper functions for the
// interpolation tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// DefaultTolerance suits exact-formula checks where only rounding
	// noise is expected.
	DefaultTolerance = 1e-12

	// SolverTolerance suits iterative solver results.
	SolverTolerance = 1e-9
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAscending verifies that a slice is strictly increasing.
func AssertAscending(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "slice not ascending",
				"s[%d]=%v <= s[%d]=%v", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, min, max float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < min || v > max {
			return assert.Fail(t, "value out of range",
				"s[%d]=%v outside [%v, %v]", i, v, min, max)
		}
	}
	return true
}
