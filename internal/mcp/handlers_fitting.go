package mcp

import (
	"context"
	"fmt"

	"relia-mcp/internal/bootstrap"
	"relia-mcp/internal/weibull"
)

// fitResponse is the tool-facing view of a fit: the estimate plus the derived
// life metrics an analyst reads off a Weibull model.
type fitResponse struct {
	Dataset     interface{}       `json:"dataset,omitempty"`
	Fit         weibull.FitResult `json:"fit"`
	B10Life     float64           `json:"b10_life"`
	MedianLife  float64           `json:"b50_life"`
	MTBF        float64           `json:"mtbf"`
	HazardTrend string            `json:"hazard_trend"`
	Warnings    []string          `json:"warnings,omitempty"`
}

func (s *Server) handleFitWeibull(args map[string]interface{}) (interface{}, error) {
	ds, err := s.resolveDataset(args)
	if err != nil {
		return nil, err
	}

	res, err := weibull.Fit(ds.Failures(), ds.Suspensions())
	if err != nil {
		return nil, err
	}

	resp := fitResponse{
		Fit:         res,
		B10Life:     weibull.BLife(0.10, res.Params.Beta, res.Params.Eta),
		MedianLife:  weibull.BLife(0.50, res.Params.Beta, res.Params.Eta),
		MTBF:        weibull.MTBF(res.Params.Beta, res.Params.Eta),
		HazardTrend: hazardTrend(res.Params.Beta),
	}
	if ds.ID != "" {
		resp.Dataset = ds.Summarize()
	}
	if !res.Converged {
		resp.Warnings = append(resp.Warnings, "Optimizer hit its iteration cap before the simplex settled; treat this estimate as unreliable.")
	}
	if len(ds.Failures()) == 0 {
		resp.Warnings = append(resp.Warnings, "Dataset contains suspensions only; the scale estimate rests on an uninformed default starting point.")
	}
	return resp, nil
}

func (s *Server) handleBootstrapConfidence(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	ds, err := s.resolveDataset(args)
	if err != nil {
		return nil, err
	}

	nboot := asInt(args["replicates"], s.cfg.DefaultReplicates)
	conf := asFloat(args["confidence"], s.cfg.DefaultConfidence)
	if conf <= 0 || conf >= 1 {
		return nil, fmt.Errorf("confidence must be in (0,1), got %g", conf)
	}

	engine := s.estimator
	if seed, ok := args["seed"]; ok {
		engine = bootstrap.NewEngine()
		engine.SetSeed(int64(asInt(seed, 0)))
	}

	res, err := engine.Run(ctx, ds, nboot, conf)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return map[string]interface{}{
			"sufficient_data": false,
			"message":         "At least 3 observations are required for a bootstrap interval; none was computed.",
		}, nil
	}

	return map[string]interface{}{
		"sufficient_data": true,
		"result":          res,
	}, nil
}

func (s *Server) handleReliabilityCurve(args map[string]interface{}) (interface{}, error) {
	p, err := resolveParams(args)
	if err != nil {
		return nil, err
	}

	horizon := asFloat(args["horizon"], weibull.DefaultHorizon(p))
	points := asInt(args["points"], 100)
	if horizon <= 0 || points <= 0 {
		return nil, fmt.Errorf("horizon and points must be positive")
	}

	return map[string]interface{}{
		"params":       p,
		"hazard_trend": hazardTrend(p.Beta),
		"curve":        weibull.Curve(p, horizon, points),
	}, nil
}

func hazardTrend(beta float64) string {
	switch {
	case beta > 1:
		return "increasing (wear-out)"
	case beta < 1:
		return "decreasing (infant mortality)"
	default:
		return "constant (random failures)"
	}
}
