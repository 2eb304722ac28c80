package weibull

import (
	"math"
	"math/rand"
	"testing"
)

func TestFit_RoundTripRecovery(t *testing.T) {
	const (
		trueBeta = 2.0
		trueEta  = 1000.0
	)

	rng := rand.New(rand.NewSource(42))
	failures := make([]float64, 200)
	for i := range failures {
		failures[i] = Sample(rng, trueBeta, trueEta)
	}

	res, err := Fit(failures, nil)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if !res.Converged {
		t.Errorf("Expected convergence on a clean synthetic dataset")
	}

	if rel := math.Abs(res.Params.Beta-trueBeta) / trueBeta; rel > 0.15 {
		t.Errorf("Beta %.4f off by %.1f%%, want within 15%% of %.1f", res.Params.Beta, rel*100, trueBeta)
	}
	if rel := math.Abs(res.Params.Eta-trueEta) / trueEta; rel > 0.10 {
		t.Errorf("Eta %.2f off by %.1f%%, want within 10%% of %.0f", res.Params.Eta, rel*100, trueEta)
	}
}

func TestFit_ImprovesOnInitialGuess(t *testing.T) {
	failures := []float64{100, 150, 80}
	suspensions := []float64{200}

	res, err := Fit(failures, suspensions)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if !res.Params.Valid() {
		t.Fatalf("Expected valid positive params, got %+v", res.Params)
	}

	// mean(failures) = 110 is the documented starting scale.
	atGuess := NegLogLik(1.5, 110, failures, suspensions)
	if res.NegLogLik >= atGuess {
		t.Errorf("Fit objective %v should beat initial guess %v", res.NegLogLik, atGuess)
	}
}

func TestFit_EmptyDataset(t *testing.T) {
	if _, err := Fit(nil, nil); err == nil {
		t.Errorf("Expected an error for an empty dataset")
	}
}

func TestFit_SuspensionsOnly(t *testing.T) {
	res, err := Fit(nil, []float64{100, 200, 300})
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if !res.Params.Valid() {
		t.Errorf("Expected clamped valid params even for suspensions-only data, got %+v", res.Params)
	}
}

func TestSample_MedianMatchesModel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 5000
	samples := make([]float64, n)
	for i := range samples {
		s := Sample(rng, 2.0, 1000)
		if s <= 0 {
			t.Fatalf("Sample produced non-positive lifetime %v", s)
		}
		samples[i] = s
	}

	// Count how many land below the model median B50.
	b50 := BLife(0.50, 2.0, 1000)
	below := 0
	for _, s := range samples {
		if s < b50 {
			below++
		}
	}
	frac := float64(below) / float64(n)
	if frac < 0.47 || frac > 0.53 {
		t.Errorf("Expected ~50%% of samples below B50, got %.1f%%", frac*100)
	}
}
