package engine

import (
	"fmt"
	"math"
)

// window is an order-length view of the table centered as closely as
// possible on a requested target x. Windows are ephemeral: one is built per
// evaluation and discarded, never cached.
type window struct {
	x1, xN float64
	y      []float64
}

// slice produces the order-length window around target. A table that
// already has exactly order samples is returned whole without validating
// the target. Otherwise the target must lie within [x1, xN], the nearest
// tabulated index becomes the window center (ties keep the earlier index),
// and the center is clamped so the window stays inside the table. Near the
// table edges this clamping recenters toward the boundary rather than
// failing, so the target may sit off-center in the returned window.
func (e *Engine) slice(target float64) (window, error) {
	if len(e.y) == e.order {
		return window{x1: e.x1, xN: e.xN, y: e.y}, nil
	}
	if target < e.x1 || target > e.xN {
		return window{}, fmt.Errorf("%w: x=%v outside table [%v, %v]", ErrOutOfRange, target, e.x1, e.xN)
	}

	center := 0
	best := math.Abs(e.x1 - target)
	for i := 1; i < len(e.y); i++ {
		d := math.Abs(e.x1 + float64(i)*e.step - target)
		if d < best {
			center, best = i, d
		}
	}

	half := (e.order - 1) / 2
	last := len(e.y) - 1
	if center < half {
		center = half
	} else if center+half > last {
		center = last - half
	}

	lo := center - half
	return window{
		x1: e.x1 + float64(lo)*e.step,
		xN: e.x1 + float64(center+half)*e.step,
		y:  e.y[lo : center+half+1],
	}, nil
}

// windows enumerates every contiguous order-length window of the table at
// stride 1, in ascending x order. Used by the extremum and zero searches.
func (e *Engine) windows() []window {
	count := len(e.y) - e.order + 1
	ws := make([]window, 0, count)
	for lo := 0; lo < count; lo++ {
		ws = append(ws, window{
			x1: e.x1 + float64(lo)*e.step,
			xN: e.x1 + float64(lo+e.order-1)*e.step,
			y:  e.y[lo : lo+e.order],
		})
	}
	return ws
}
