package engine

// diff3 holds the central differences of a 3-sample window:
// first differences a, b and the second difference c.
type diff3 struct {
	a, b, c float64
}

func newDiff3(y []float64) diff3 {
	a := y[1] - y[0]
	b := y[2] - y[1]
	return diff3{a: a, b: b, c: b - a}
}

// diff5 holds the central differences of a 5-sample window: first
// differences A..D, second differences E..G, third differences H and J,
// and the fourth difference K. The letter I is skipped, following the
// usual tabular notation.
type diff5 struct {
	A, B, C, D float64
	E, F, G    float64
	H, J       float64
	K          float64
}

func newDiff5(y []float64) diff5 {
	d := diff5{
		A: y[1] - y[0],
		B: y[2] - y[1],
		C: y[3] - y[2],
		D: y[4] - y[3],
	}
	d.E = d.B - d.A
	d.F = d.C - d.B
	d.G = d.D - d.C
	d.H = d.F - d.E
	d.J = d.G - d.F
	d.K = d.J - d.H
	return d
}

// coeffs returns the interpolation polynomial in ascending-degree form for
// a 5-sample window with center value mid, ready for Horner evaluation at
// the factor n.
func (d diff5) coeffs(mid float64) []float64 {
	return []float64{
		mid,
		(d.B+d.C)/2 - (d.H+d.J)/12,
		d.F/2 - d.K/24,
		(d.H + d.J) / 12,
		d.K / 24,
	}
}
