package weibull

import "math"

// Survival returns R(t) = exp(-(t/eta)^beta), the probability a unit survives
// past age t. R(0) = 1 and R is non-increasing in t.
func Survival(t, beta, eta float64) float64 {
	return math.Exp(-math.Pow(t/eta, beta))
}

// Density returns the probability density f(t).
// Unstable at t=0 for beta<1; callers guard t>0 or accept Inf/NaN propagation.
func Density(t, beta, eta float64) float64 {
	return (beta / eta) * math.Pow(t/eta, beta-1) * math.Exp(-math.Pow(t/eta, beta))
}

// Hazard returns the instantaneous failure rate h(t). Increasing in t for
// beta>1, constant for beta=1, decreasing for beta<1.
func Hazard(t, beta, eta float64) float64 {
	return (beta / eta) * math.Pow(t/eta, beta-1)
}

// BLife returns the age by which a fraction p of units is expected to have
// failed (e.g. p=0.10 for B10 life).
func BLife(p, beta, eta float64) float64 {
	if p <= 0 || p >= 1 {
		return math.NaN()
	}
	return eta * math.Pow(-math.Log(1-p), 1/beta)
}

// MTBF returns the mean time between failures, eta * Gamma(1 + 1/beta).
func MTBF(beta, eta float64) float64 {
	return eta * math.Gamma(1+1/beta)
}
