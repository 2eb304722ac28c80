package weibull

import (
	"fmt"
	"math"

	"relia-mcp/internal/optimize"
)

// Params is a fitted two-parameter Weibull model.
type Params struct {
	Beta float64 `json:"beta"` // shape
	Eta  float64 `json:"eta"`  // scale (characteristic life)
}

// Valid reports whether both parameters are finite and above the floor.
func (p Params) Valid() bool {
	return !math.IsNaN(p.Beta) && !math.IsInf(p.Beta, 0) &&
		!math.IsNaN(p.Eta) && !math.IsInf(p.Eta, 0) &&
		p.Beta > paramFloor && p.Eta > paramFloor
}

// FitResult is a maximum-likelihood point estimate. The objective is the
// negative log-likelihood at the optimum; lower is a better fit. Converged
// distinguishes a settled simplex from one that hit the iteration cap.
type FitResult struct {
	Params     Params  `json:"params"`
	NegLogLik  float64 `json:"neg_log_lik"`
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
}

const (
	initialShape  = 1.5
	fallbackScale = 1000.0

	fitTol     = 1e-8
	fitMaxIter = 1500
)

// Fit estimates Weibull parameters from exact failure times and right-censored
// suspension times via Nelder-Mead over the censored likelihood. The result is
// a local optimum; quality depends on the data-informed starting point.
func Fit(failures, suspensions []float64) (FitResult, error) {
	if len(failures)+len(suspensions) == 0 {
		return FitResult{}, fmt.Errorf("cannot fit an empty dataset")
	}

	// Scale guess: failures are roughly on the order of the characteristic
	// life. With suspensions only there is nothing to anchor on, so use a
	// fixed uninformed default.
	eta0 := fallbackScale
	if len(failures) > 0 {
		sum := 0.0
		for _, t := range failures {
			sum += t
		}
		eta0 = sum / float64(len(failures))
	}

	objective := func(x []float64) float64 {
		return NegLogLik(x[0], x[1], failures, suspensions)
	}

	res, err := optimize.Minimize(objective, []float64{initialShape, eta0}, optimize.Options{
		MaxIter: fitMaxIter,
		Tol:     fitTol,
	})
	if err != nil {
		return FitResult{}, err
	}

	return FitResult{
		Params: Params{
			Beta: clampFloor(res.Point[0]),
			Eta:  clampFloor(res.Point[1]),
		},
		NegLogLik:  res.Value,
		Iterations: res.Iterations,
		Converged:  res.Converged,
	}, nil
}

// clampFloor keeps boundary-hugging optimizer output away from the degenerate
// region so downstream formulas never divide by zero or a negative.
func clampFloor(v float64) float64 {
	if v < paramFloor {
		return paramFloor
	}
	return v
}
