package engine

// Interpolation orders supported by the engine.
const (
	// Order3 fits a quadratic through 3 consecutive samples.
	Order3 = 3

	// Order5 fits a quartic through 5 consecutive samples.
	Order5 = 5
)

// n-factor domain bounds
const (
	// strictNBound restricts the interpolation factor to the inner half of
	// the window, where the central-difference formula is most accurate.
	strictNBound = 0.5

	// looseNBound admits any factor inside the window.
	looseNBound = 1.0
)

// Fixed-point solver constants
const (
	// maxIterations bounds the extremum and zero-crossing factor searches.
	// Convergence is bit-exact equality of successive iterates, so the
	// bound only triggers for oscillating or diverging iterations.
	maxIterations = 512
)
