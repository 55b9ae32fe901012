package engine

import (
	"fmt"

	"github.com/marando/Interp/internal/mathutil"
)

// evalN evaluates the interpolation polynomial over window w at factor n.
// The window must hold exactly order samples and n must pass the range
// check for the current strictness mode.
//
// Order 3 uses the closed central-difference form
//
//	y = y1 + n/2*((a+b) + n*c)
//
// and order 5 evaluates the ascending-degree quartic from diff5.coeffs via
// Horner's scheme. The factor n is measured from the window center, so in
// both cases x = center + n*step.
func (e *Engine) evalN(w window, n float64) (Result, error) {
	if len(w.y) != e.order {
		return Result{}, fmt.Errorf("%w: window has %d samples, need %d", ErrIncorrectCount, len(w.y), e.order)
	}
	if err := e.checkN(n); err != nil {
		return Result{}, err
	}

	switch e.order {
	case Order3:
		d := newDiff3(w.y)
		step := (w.xN - w.x1) / (Order3 - 1)
		return Result{
			X:        w.x1 + step + n*step,
			Y:        w.y[1] + n/2*((d.a+d.b)+n*d.c),
			LastDiff: d.c,
		}, nil
	case Order5:
		d := newDiff5(w.y)
		return Result{
			X:        (w.x1+w.xN)/2 + (w.xN-w.x1)/4*n,
			Y:        mathutil.HornerKnown(d.coeffs(w.y[2]), n),
			LastDiff: d.K,
		}, nil
	}
	panic("engine: unsupported order")
}

// factorOf computes the interpolation factor that maps to x within w,
// inverting the x = center + n*step relation.
func (e *Engine) factorOf(w window, x float64) float64 {
	switch e.order {
	case Order3:
		return (2*x - (w.x1 + w.xN)) / (w.xN - w.x1)
	case Order5:
		return (4*x - 2*(w.x1+w.xN)) / (w.xN - w.x1)
	}
	panic("engine: unsupported order")
}

// AtX interpolates y at a tabulated-range x value. The x must lie within
// [X1, XN]. The returned Result carries the input x back unchanged.
func (e *Engine) AtX(x float64) (Result, error) {
	if x < e.x1 || x > e.xN {
		return Result{}, fmt.Errorf("%w: x=%v outside table [%v, %v]", ErrOutOfRange, x, e.x1, e.xN)
	}
	w, err := e.slice(x)
	if err != nil {
		return Result{}, err
	}
	r, err := e.evalN(w, e.factorOf(w, x))
	if err != nil {
		return Result{}, err
	}
	r.X = x
	return r, nil
}

// AtN evaluates the stored table at factor n. The table length must equal
// the order exactly; larger tables need a target to slice around, see
// AtNNear.
func (e *Engine) AtN(n float64) (Result, error) {
	if len(e.y) != e.order {
		return Result{}, fmt.Errorf("%w: table has %d samples, need exactly %d (or evaluate near a target x)", ErrIncorrectCount, len(e.y), e.order)
	}
	return e.evalN(window{x1: e.x1, xN: e.xN, y: e.y}, n)
}

// AtNNear slices a window around target and evaluates it at factor n.
func (e *Engine) AtNNear(n, target float64) (Result, error) {
	w, err := e.slice(target)
	if err != nil {
		return Result{}, err
	}
	return e.evalN(w, n)
}
