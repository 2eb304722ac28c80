package optimize

import (
	"fmt"
	"math"
	"sort"
)

// Objective is a scalar function over an n-dimensional point. Implementations
// must tolerate arbitrary candidate points; infeasible regions should return
// a large finite value rather than NaN so the search can rank them.
type Objective func(x []float64) float64

// Options control the simplex search.
type Options struct {
	MaxIter int     // iteration cap (default 2000)
	Tol     float64 // convergence tolerance on the vertex-value spread (default 1e-6)
}

// Result is the outcome of a minimization run.
type Result struct {
	Point      []float64
	Value      float64
	Iterations int
	Converged  bool // false when the iteration cap fired before the spread tightened
}

// Nelder-Mead coefficients.
const (
	alpha = 1.0 // reflection
	gamma = 2.0 // expansion
	rho   = 0.5 // contraction
	sigma = 0.5 // shrink
)

type vertex struct {
	point []float64
	value float64
}

// Minimize runs a derivative-free Nelder-Mead simplex search from the given
// starting point. It is a local method: the result is the best vertex found,
// with no global-optimality guarantee.
func Minimize(fn Objective, start []float64, opts Options) (Result, error) {
	n := len(start)
	if n == 0 {
		return Result{}, fmt.Errorf("empty starting point")
	}
	if opts.MaxIter <= 0 {
		opts.MaxIter = 2000
	}
	if opts.Tol <= 0 {
		opts.Tol = 1e-6
	}

	simplex := initialSimplex(fn, start)

	result := Result{}
	for result.Iterations = 0; result.Iterations < opts.MaxIter; result.Iterations++ {
		sort.Slice(simplex, func(i, j int) bool {
			return simplex[i].value < simplex[j].value
		})

		if valueSpread(simplex) < opts.Tol {
			result.Converged = true
			break
		}

		best := simplex[0]
		worst := simplex[n]
		secondWorst := simplex[n-1]

		center := centroid(simplex)

		// Reflection
		reflected := combine(center, worst.point, 1+alpha, -alpha)
		fr := fn(reflected)

		switch {
		case fr < best.value:
			// Expansion: keep the better of reflection and expansion.
			expanded := combine(center, worst.point, 1+gamma, -gamma)
			fe := fn(expanded)
			if fe < fr {
				simplex[n] = vertex{expanded, fe}
			} else {
				simplex[n] = vertex{reflected, fr}
			}
		case fr < secondWorst.value:
			simplex[n] = vertex{reflected, fr}
		default:
			// Contraction toward the centroid
			contracted := combine(center, worst.point, 1-rho, rho)
			fc := fn(contracted)
			if fc < worst.value {
				simplex[n] = vertex{contracted, fc}
			} else {
				// Shrink everything toward the best vertex
				for i := 1; i <= n; i++ {
					shrunk := combine(best.point, simplex[i].point, 1-sigma, sigma)
					simplex[i] = vertex{shrunk, fn(shrunk)}
				}
			}
		}
	}

	sort.Slice(simplex, func(i, j int) bool {
		return simplex[i].value < simplex[j].value
	})

	result.Point = simplex[0].point
	result.Value = simplex[0].value
	return result, nil
}

// initialSimplex builds n+1 vertices by perturbing each axis by 10% of its
// magnitude, with a 0.1 absolute minimum so a zero coordinate still yields a
// non-degenerate simplex.
func initialSimplex(fn Objective, start []float64) []vertex {
	n := len(start)
	simplex := make([]vertex, n+1)

	base := append([]float64(nil), start...)
	simplex[0] = vertex{base, fn(base)}

	for i := 0; i < n; i++ {
		p := append([]float64(nil), start...)
		step := 0.1 * math.Abs(p[i])
		if step < 0.1 {
			step = 0.1
		}
		p[i] += step
		simplex[i+1] = vertex{p, fn(p)}
	}
	return simplex
}

// valueSpread is the population standard deviation of the vertex values.
func valueSpread(simplex []vertex) float64 {
	mean := 0.0
	for _, v := range simplex {
		mean += v.value
	}
	mean /= float64(len(simplex))

	variance := 0.0
	for _, v := range simplex {
		d := v.value - mean
		variance += d * d
	}
	variance /= float64(len(simplex))
	return math.Sqrt(variance)
}

// centroid averages all vertices except the worst (the simplex must be sorted).
func centroid(simplex []vertex) []float64 {
	n := len(simplex) - 1
	center := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			center[j] += simplex[i].point[j]
		}
	}
	for j := 0; j < n; j++ {
		center[j] /= float64(n)
	}
	return center
}

// combine returns a*p + b*q elementwise.
func combine(p, q []float64, a, b float64) []float64 {
	out := make([]float64, len(p))
	for i := range p {
		out[i] = a*p[i] + b*q[i]
	}
	return out
}
