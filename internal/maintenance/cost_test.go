package maintenance

import (
	"math"
	"testing"

	"relia-mcp/internal/weibull"
)

func wearOutModel() *Model {
	return NewModel(weibull.Params{Beta: 2.0, Eta: 1000}, Costs{PM: 100, CM: 1000})
}

func TestAt_ZeroIntervalIsUndefined(t *testing.T) {
	m := wearOutModel()

	for _, interval := range []float64{0, -1, -1000} {
		p := m.At(interval)
		if !math.IsInf(p.PM, 1) || !math.IsInf(p.CM, 1) || !math.IsInf(p.Total, 1) {
			t.Errorf("Expected +Inf rates at t=%v, got %+v", interval, p)
		}
	}
}

func TestAt_TotalIsSumOfComponents(t *testing.T) {
	m := wearOutModel()

	for _, interval := range []float64{100, 500, 1500} {
		p := m.At(interval)
		if math.Abs(p.Total-(p.PM+p.CM)) > 1e-9 {
			t.Errorf("CPUT(%v) = %v, want CPM+CCM = %v", interval, p.Total, p.PM+p.CM)
		}
		if p.PM < 0 || p.CM < 0 {
			t.Errorf("Negative rate at t=%v: %+v", interval, p)
		}
	}
}

func TestIntegrationConvergence(t *testing.T) {
	// Trapezoidal integral of R over [0,1000] must agree between n=100 and
	// n=1000 to within 1e-4 relative error.
	coarse := &Model{Params: weibull.Params{Beta: 2.0, Eta: 1000}, Steps: 100}
	fine := &Model{Params: weibull.Params{Beta: 2.0, Eta: 1000}, Steps: 1000}

	a := coarse.integrateSurvival(1000)
	b := fine.integrateSurvival(1000)

	if rel := math.Abs(a-b) / b; rel > 1e-4 {
		t.Errorf("Relative integration error %.2e exceeds 1e-4 (n=100: %v, n=1000: %v)", rel, a, b)
	}
}

func TestOptimal_InteriorMinimumForWearOut(t *testing.T) {
	// With beta=2 and failures 10x the cost of planned swaps, the optimal
	// interval sits well inside the search horizon.
	m := wearOutModel()
	best, grid := m.Optimal(300)

	if len(grid) != 300 {
		t.Fatalf("Expected 300 grid points, got %d", len(grid))
	}

	horizon := weibull.DefaultHorizon(m.Params)
	if best.T <= 0 || best.T >= horizon*0.9 {
		t.Errorf("Expected an interior optimum, got t=%v (horizon %v)", best.T, horizon)
	}

	for _, p := range grid {
		if p.Total < best.Total {
			t.Fatalf("Grid point %v beats reported optimum %v", p, best)
		}
	}
}

func TestOptimal_NoInteriorMinimumForRandomFailures(t *testing.T) {
	// For beta=1 the hazard is constant and CPUT decreases monotonically:
	// the scan ends at the horizon, meaning PM buys nothing.
	m := NewModel(weibull.Params{Beta: 1.0, Eta: 1000}, Costs{PM: 100, CM: 1000})
	best, grid := m.Optimal(300)

	if best.T != grid[len(grid)-1].T {
		t.Errorf("Expected the minimum at the horizon for beta=1, got t=%v", best.T)
	}
}

func TestGrid_InvalidInput(t *testing.T) {
	m := wearOutModel()
	if got := m.Grid(0, 100); got != nil {
		t.Errorf("Expected nil grid for zero horizon")
	}
	if got := m.Grid(1000, 0); got != nil {
		t.Errorf("Expected nil grid for zero size")
	}
}
