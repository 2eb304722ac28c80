package weibull

import "math"

const (
	// paramFloor is the validity floor for both parameters. Values at or
	// below it make the likelihood undefined or degenerate.
	paramFloor = 1e-6

	// infeasible is the large finite sentinel returned for out-of-domain
	// parameters. Finite so the simplex search can rank and move away from
	// the region instead of blowing up on Inf arithmetic.
	infeasible = 1e12
)

// NegLogLik computes the negative log-likelihood of (beta, eta) against a
// censored dataset. Failures contribute the log-density; suspensions
// contribute the log-survival term only.
func NegLogLik(beta, eta float64, failures, suspensions []float64) float64 {
	if beta <= paramFloor || eta <= paramFloor {
		return infeasible
	}

	ll := 0.0
	for _, t := range failures {
		z := t / eta
		ll += math.Log(beta/eta) + (beta-1)*math.Log(z) - math.Pow(z, beta)
	}
	for _, t := range suspensions {
		ll -= math.Pow(t/eta, beta)
	}

	if math.IsNaN(ll) || math.IsInf(ll, 0) {
		return infeasible
	}
	return -ll
}
