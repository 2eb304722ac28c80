package weibull

// CurvePoint is one sampled point of the fitted reliability model, consumed
// by the external presentation layer for plotting.
type CurvePoint struct {
	T        float64 `json:"t"`
	Survival float64 `json:"survival"`
	Density  float64 `json:"density"`
	Hazard   float64 `json:"hazard"`
}

// Curve samples R, f and h over n equal steps on (0, horizon]. The grid
// starts one step above zero: at t=0 the density and hazard are singular
// for beta<1, and the singularity belongs to the model, not the export.
func Curve(p Params, horizon float64, n int) []CurvePoint {
	if n <= 0 || horizon <= 0 {
		return nil
	}
	step := horizon / float64(n)
	points := make([]CurvePoint, 0, n)
	for i := 1; i <= n; i++ {
		t := step * float64(i)
		points = append(points, CurvePoint{
			T:        t,
			Survival: Survival(t, p.Beta, p.Eta),
			Density:  Density(t, p.Beta, p.Eta),
			Hazard:   Hazard(t, p.Beta, p.Eta),
		})
	}
	return points
}

// DefaultHorizon derives a plotting/search horizon from the fitted scale,
// wide enough to cover the distribution's effective support.
func DefaultHorizon(p Params) float64 {
	return 3 * p.Eta
}
