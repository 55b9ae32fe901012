// Command interp interpolates tabulated y values from the command line.
//
// Usage:
//
//	interp -x1 1 -xn 7 -y 1,2,3,4,5,6,7 -x 2.3
//	interp -x1 1 -xn 3 -y 0.71,0.68,0.79 -extremum
//	interp -order 5 -x1 1 -xn 6 -y -2,-1,0,1,2,3 -zero
//	interp -demo
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	interp "github.com/marando/Interp"
)

func main() {
	var (
		order    = flag.Int("order", defaultOrder, "Interpolation order: 3 or 5")
		x1       = flag.Float64("x1", defaultX1, "x of the first tabulated sample")
		xn       = flag.Float64("xn", defaultXN, "x of the last tabulated sample")
		yList    = flag.String("y", "", "Comma-separated y values, equally spaced from x1 to xn")
		x        = flag.Float64("x", math.NaN(), "Interpolate y at this x")
		n        = flag.Float64("n", math.NaN(), "Evaluate at this interpolation factor")
		target   = flag.Float64("target", math.NaN(), "Slice the window around this x (with -n)")
		extremum = flag.Bool("extremum", false, "Search for the tabulated minimum")
		zero     = flag.Bool("zero", false, "Search for a zero crossing")
		strict   = flag.Bool("strict", false, "Restrict factors to [-0.5, 0.5]")
		demo     = flag.Bool("demo", false, "Run a demonstration")
	)
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	y, err := parseYList(*yList)
	if err != nil {
		log.Fatalf("Invalid -y list: %v", err)
	}

	p, err := newInterpolator(*order, *x1, *xn, y)
	if err != nil {
		log.Fatalf("Failed to create interpolator: %v", err)
	}
	p.SetStrict(*strict)

	switch {
	case !math.IsNaN(*x):
		r, err := p.X(*x)
		if err != nil {
			log.Fatalf("Interpolation failed: %v", err)
		}
		printResult(r)
	case !math.IsNaN(*n) && !math.IsNaN(*target):
		r, err := p.NAt(*n, *target)
		if err != nil {
			log.Fatalf("Interpolation failed: %v", err)
		}
		printResult(r)
	case !math.IsNaN(*n):
		r, err := p.N(*n)
		if err != nil {
			log.Fatalf("Interpolation failed: %v", err)
		}
		printResult(r)
	case *extremum:
		r, err := p.Extremum()
		if err != nil {
			log.Fatalf("Extremum search failed: %v", err)
		}
		printSearch("extremum", r)
	case *zero:
		r, err := p.Zero()
		if err != nil {
			log.Fatalf("Zero search failed: %v", err)
		}
		printSearch("zero", r)
	default:
		log.Fatal("Nothing to do: supply -x, -n, -extremum, -zero or -demo")
	}
}

func newInterpolator(order int, x1, xn float64, y []float64) (*interp.Interpolator, error) {
	switch order {
	case interp.Order3:
		return interp.New3(x1, xn, y)
	case interp.Order5:
		return interp.New5(x1, xn, y)
	default:
		return nil, fmt.Errorf("unsupported order %d (use 3 or 5)", order)
	}
}

func parseYList(s string) ([]float64, error) {
	if s == "" {
		return nil, fmt.Errorf("no y values given")
	}
	parts := strings.Split(s, ",")
	y := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		y[i] = v
	}
	return y, nil
}

func printResult(r interp.Result) {
	fmt.Printf("x = %.12g\ny = %.12g\nlast difference = %.12g\n", r.X, r.Y, r.LastDiff)
}

func printSearch(kind string, r interp.SearchResult) {
	if !r.Found {
		fmt.Printf("No %s found in the tabulated range.\n", kind)
		return
	}
	printResult(r.Result)
}

func runDemo() {
	fmt.Println("=== Tabulated Interpolation Demo ===")

	// A sine table: 9 equally spaced samples over [0, 4] radians, which
	// contains one maximum (at pi/2) and one zero crossing (at pi).
	y := make([]float64, demoSamples)
	step := (demoXN - demoX1) / float64(demoSamples-1)
	for i := range y {
		y[i] = math.Sin(demoX1 + float64(i)*step)
	}

	fmt.Println("\n1. Interpolation error against true sin(x)")
	fmt.Println("-------------------------------------------")
	p3, err := interp.New3(demoX1, demoXN, y)
	if err != nil {
		log.Fatalf("Failed to create order-3 interpolator: %v", err)
	}
	p5, err := interp.New5(demoX1, demoXN, y)
	if err != nil {
		log.Fatalf("Failed to create order-5 interpolator: %v", err)
	}

	// Keep the sweep inside the order-5 reachable domain.
	xs := interp.Grid(demoX1+step, demoXN-step, demoGridCount)
	var worst3, worst5 float64
	for _, x := range xs {
		r3, err := p3.X(x)
		if err != nil {
			log.Fatalf("Order-3 interpolation at x=%v failed: %v", x, err)
		}
		r5, err := p5.X(x)
		if err != nil {
			log.Fatalf("Order-5 interpolation at x=%v failed: %v", x, err)
		}
		worst3 = math.Max(worst3, math.Abs(r3.Y-math.Sin(x)))
		worst5 = math.Max(worst5, math.Abs(r5.Y-math.Sin(x)))
	}
	fmt.Printf("Order 3 worst error: %.3e\n", worst3)
	fmt.Printf("Order 5 worst error: %.3e\n", worst5)

	fmt.Println("\n2. Zero crossing of sin(x)")
	fmt.Println("---------------------------")
	zero, err := p5.Zero()
	if err != nil {
		log.Fatalf("Zero search failed: %v", err)
	}
	if zero.Found {
		fmt.Printf("Found x = %.9f (true: pi = %.9f)\n", zero.X, math.Pi)
	} else {
		fmt.Println("No zero crossing found.")
	}

	fmt.Println("\n3. Minimum of -sin(x) (locates the sine peak)")
	fmt.Println("----------------------------------------------")
	neg := make([]float64, len(y))
	for i, v := range y {
		neg[i] = -v
	}
	pNeg, err := interp.New3(demoX1, demoXN, neg)
	if err != nil {
		log.Fatalf("Failed to create interpolator: %v", err)
	}
	peak, err := pNeg.Extremum()
	if err != nil {
		log.Fatalf("Extremum search failed: %v", err)
	}
	if peak.Found {
		fmt.Printf("Found x = %.9f (true: pi/2 = %.9f), peak value %.9f\n",
			peak.X, demoSinePeakX, -peak.Y)
	} else {
		fmt.Println("No extremum found.")
	}
}
