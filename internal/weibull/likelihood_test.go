package weibull

import (
	"math"
	"testing"
)

func TestNegLogLik_InfeasibleSentinel(t *testing.T) {
	failures := []float64{100, 150, 80}
	suspensions := []float64{200}

	tests := []struct {
		name string
		beta float64
		eta  float64
	}{
		{"ZeroShape", 0, 500},
		{"NegativeScale", 2.0, -1},
		{"BothDegenerate", -1, 0},
		{"AtFloor", 1e-6, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NegLogLik(tt.beta, tt.eta, failures, suspensions)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("Sentinel must be finite, got %v", got)
			}
			if got < 1e11 {
				t.Errorf("Expected sentinel >= 1e11, got %v", got)
			}
		})
	}
}

func TestNegLogLik_FiniteForValidParams(t *testing.T) {
	got := NegLogLik(2.0, 120, []float64{100, 150, 80}, []float64{200})
	if math.IsNaN(got) || math.IsInf(got, 0) || got >= infeasible {
		t.Errorf("Expected a finite likelihood for valid params, got %v", got)
	}
}

func TestNegLogLik_PrefersTrueParams(t *testing.T) {
	// Data clustered near 100: the likelihood should prefer a scale near the
	// data over one far away.
	failures := []float64{90, 100, 110, 95, 105}

	near := NegLogLik(2.0, 105, failures, nil)
	far := NegLogLik(2.0, 5000, failures, nil)
	if near >= far {
		t.Errorf("Expected lower objective near the data (near=%v, far=%v)", near, far)
	}
}
