package optimize

import (
	"math"
	"testing"
)

func TestMinimize_Quadratic(t *testing.T) {
	fn := func(x []float64) float64 {
		return (x[0]-3)*(x[0]-3) + (x[1]+2)*(x[1]+2)
	}

	res, err := Minimize(fn, []float64{0, 0}, Options{})
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if !res.Converged {
		t.Errorf("Expected convergence on a smooth quadratic")
	}
	if math.Abs(res.Point[0]-3) > 1e-2 || math.Abs(res.Point[1]+2) > 1e-2 {
		t.Errorf("Expected minimum near (3,-2), got %v", res.Point)
	}
}

func TestMinimize_ZeroStartNotDegenerate(t *testing.T) {
	// A zero coordinate must still produce a non-degenerate initial simplex
	// via the 0.1 absolute minimum perturbation.
	fn := func(x []float64) float64 {
		return (x[0]-1)*(x[0]-1) + x[1]*x[1]
	}

	res, err := Minimize(fn, []float64{0, 0}, Options{})
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if math.Abs(res.Point[0]-1) > 1e-2 {
		t.Errorf("Expected x0 near 1, got %v", res.Point[0])
	}
}

func TestMinimize_IterationCap(t *testing.T) {
	// Rosenbrock's valley needs far more than 5 iterations.
	fn := func(x []float64) float64 {
		a := 1 - x[0]
		b := x[1] - x[0]*x[0]
		return a*a + 100*b*b
	}

	res, err := Minimize(fn, []float64{-1.5, 2}, Options{MaxIter: 5})
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if res.Converged {
		t.Errorf("Expected iteration cap to fire, but Converged is true")
	}
	if res.Iterations != 5 {
		t.Errorf("Expected 5 iterations, got %d", res.Iterations)
	}
}

func TestMinimize_SentinelObjective(t *testing.T) {
	// Mirrors the likelihood contract: infeasible half-plane masked with a
	// large finite sentinel. The search must still find the feasible minimum.
	fn := func(x []float64) float64 {
		if x[0] <= 0 {
			return 1e12
		}
		return (x[0]-2)*(x[0]-2) + x[1]*x[1]
	}

	res, err := Minimize(fn, []float64{0.5, 1}, Options{})
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	if math.Abs(res.Point[0]-2) > 1e-2 || math.Abs(res.Point[1]) > 1e-2 {
		t.Errorf("Expected minimum near (2,0), got %v", res.Point)
	}
}

func TestMinimize_EmptyStart(t *testing.T) {
	if _, err := Minimize(func(x []float64) float64 { return 0 }, nil, Options{}); err == nil {
		t.Errorf("Expected an error for an empty starting point")
	}
}

func TestMinimize_HigherDimensions(t *testing.T) {
	// The simplex is not hardwired to two dimensions.
	fn := func(x []float64) float64 {
		sum := 0.0
		for i, v := range x {
			d := v - float64(i)
			sum += d * d
		}
		return sum
	}

	res, err := Minimize(fn, []float64{5, 5, 5, 5}, Options{MaxIter: 5000})
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}
	for i, v := range res.Point {
		if math.Abs(v-float64(i)) > 5e-2 {
			t.Errorf("Dimension %d: expected %d, got %v", i, i, v)
		}
	}
}
