package maintenance

import (
	"math"

	"relia-mcp/internal/weibull"
)

// Costs are the caller-supplied unit costs for a replacement policy.
type Costs struct {
	PM float64 `json:"pm"` // planned replacement
	CM float64 `json:"cm"` // failure-driven replacement
}

// CostPoint is the evaluated cost rates at one candidate PM interval.
type CostPoint struct {
	T     float64 `json:"t"`
	PM    float64 `json:"pm_rate"`
	CM    float64 `json:"cm_rate"`
	Total float64 `json:"total_rate"`
}

// Model evaluates age-replacement cost rates for a fitted Weibull.
type Model struct {
	Params weibull.Params
	Costs  Costs
	Steps  int // trapezoid subintervals per integral
}

// defaultSteps balances integration accuracy against grid-scan cost.
const defaultSteps = 360

// NewModel builds a cost model with the default integration resolution.
func NewModel(p weibull.Params, c Costs) *Model {
	return &Model{Params: p, Costs: c, Steps: defaultSteps}
}

// At evaluates all three cost rates at candidate interval t. A zero or
// negative interval is an economically undefined policy: every rate is +Inf,
// never zero-cost.
func (m *Model) At(t float64) CostPoint {
	if t <= 0 {
		inf := math.Inf(1)
		return CostPoint{T: t, PM: inf, CM: inf, Total: inf}
	}

	r := weibull.Survival(t, m.Params.Beta, m.Params.Eta)
	meanLife := m.integrateSurvival(t)
	if meanLife <= 0 {
		inf := math.Inf(1)
		return CostPoint{T: t, PM: inf, CM: inf, Total: inf}
	}

	return CostPoint{
		T:     t,
		PM:    m.Costs.PM * r / meanLife,
		CM:    m.Costs.CM * (1 - r) / meanLife,
		Total: (m.Costs.PM*r + m.Costs.CM*(1-r)) / meanLife,
	}
}

// integrateSurvival approximates the expected cycle length ∫0..t R(x)dx by
// the trapezoidal rule over m.Steps equal subintervals.
func (m *Model) integrateSurvival(t float64) float64 {
	n := m.Steps
	if n <= 0 {
		n = defaultSteps
	}
	h := t / float64(n)

	// R(0) = 1 regardless of shape, so the left endpoint needs no guard.
	sum := (1 + weibull.Survival(t, m.Params.Beta, m.Params.Eta)) / 2
	for i := 1; i < n; i++ {
		sum += weibull.Survival(h*float64(i), m.Params.Beta, m.Params.Eta)
	}
	return sum * h
}

// Grid evaluates the total cost rate over n equally spaced candidate
// intervals from one step above zero to the horizon.
func (m *Model) Grid(horizon float64, n int) []CostPoint {
	if horizon <= 0 || n <= 0 {
		return nil
	}
	step := horizon / float64(n)
	points := make([]CostPoint, 0, n)
	for i := 1; i <= n; i++ {
		points = append(points, m.At(step*float64(i)))
	}
	return points
}

// Optimal grid-searches the cost-minimizing PM interval over the effective
// support of the fitted distribution. A linear scan keeps the first minimum
// on ties; resolution is bounded by the grid density.
func (m *Model) Optimal(gridSize int) (CostPoint, []CostPoint) {
	if gridSize <= 0 {
		gridSize = 300
	}
	grid := m.Grid(weibull.DefaultHorizon(m.Params), gridSize)

	best := grid[0]
	for _, p := range grid[1:] {
		if p.Total < best.Total {
			best = p
		}
	}
	return best, grid
}
