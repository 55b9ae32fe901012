package interp

import (
	"github.com/marando/Interp/internal/engine"
)

// Interpolation orders.
const (
	// Order3 fits a quadratic through 3 consecutive samples.
	Order3 = engine.Order3

	// Order5 fits a quartic through 5 consecutive samples.
	Order5 = engine.Order5
)

// Admissible interpolation-factor bounds.
const (
	// NMax is the admissible |n| bound in the default mode.
	NMax = 1.0

	// NMaxStrict is the admissible |n| bound in strict mode.
	NMaxStrict = 0.5
)
