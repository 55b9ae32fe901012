package engine

// Export internal functions for testing.
// This file uses the _test.go suffix so it's only included in test builds.

// ExportedWindow is an exported view of window for testing.
type ExportedWindow struct {
	X1, XN float64
	Y      []float64
}

// ExportedSlice wraps slice for testing.
func (e *Engine) ExportedSlice(target float64) (ExportedWindow, error) {
	w, err := e.slice(target)
	if err != nil {
		return ExportedWindow{}, err
	}
	return ExportedWindow{X1: w.x1, XN: w.xN, Y: w.y}, nil
}

// ExportedCheckN wraps checkN for testing.
func (e *Engine) ExportedCheckN(n float64) error {
	return e.checkN(n)
}

// ExportedIterate wraps iterate for testing.
func ExportedIterate(f func(float64) float64) (float64, bool) {
	return iterate(f)
}

// ExportedFactorOf wraps factorOf over the whole stored table for testing.
func (e *Engine) ExportedFactorOf(x float64) float64 {
	return e.factorOf(window{x1: e.x1, xN: e.xN, y: e.y}, x)
}
