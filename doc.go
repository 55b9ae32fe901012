// Package interp interpolates tabulated (x, y) data.
//
// The core is Newton's central-difference method over equally-spaced
// samples, at order 3 (quadratic local fit through 3 points) and order 5
// (quartic fit through 5 points). It serves numerical callers that need to
// estimate y at an arbitrary x, locate a local minimum, or locate a zero
// crossing of tabulated data; the classical use case is astronomical
// ephemeris interpolation. A general Lagrange interpolator handles
// unequally spaced points.
//
// # Quick Start
//
// Interpolate a value from a table sampled at x = 1..7:
//
//	p, err := interp.New3(1, 7, []float64{1, 2, 3, 4, 5, 6, 7})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, err := p.X(2.3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(r.Y) // 2.3
//
// Locate a local minimum or a zero crossing:
//
//	min, err := p.Extremum()
//	zero, err := p.Zero()
//
// Both searches report not-found as Found == false rather than an error.
//
// # Interpolation factor
//
// Evaluations are parameterized by a dimensionless factor n measured from
// the center of a window of 3 or 5 consecutive samples: n = 0 is the
// window center and n = ±1 the window edges. Strict mode (SetStrict)
// restricts admissible factors to [-0.5, 0.5], trading reach for accuracy;
// the default admits [-1, 1].
//
// # Concurrency
//
// Interpolators share no state with each other; one instance per goroutine
// is safe without synchronization. A single instance's strict flag must
// not be toggled concurrently with in-flight calls.
package interp
