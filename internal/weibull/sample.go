package weibull

import (
	"math"
	"math/rand"
)

// Sample draws one lifetime from Weibull(beta, eta) via inverse-CDF:
// X = eta * (-ln(1-u))^(1/beta).
func Sample(rng *rand.Rand, beta, eta float64) float64 {
	u := rng.Float64()
	if u == 0 {
		u = 0.0001
	}
	return eta * math.Pow(-math.Log(1.0-u), 1.0/beta)
}
