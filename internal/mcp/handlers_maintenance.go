package mcp

import (
	"math"

	"relia-mcp/internal/maintenance"
)

func (s *Server) resolveCostModel(args map[string]interface{}) (*maintenance.Model, error) {
	p, err := resolveParams(args)
	if err != nil {
		return nil, err
	}
	costs := maintenance.Costs{
		PM: asFloat(args["pm_cost"], s.cfg.DefaultPMCost),
		CM: asFloat(args["cm_cost"], s.cfg.DefaultCMCost),
	}
	return maintenance.NewModel(p, costs), nil
}

func (s *Server) handleOptimalPMInterval(args map[string]interface{}) (interface{}, error) {
	model, err := s.resolveCostModel(args)
	if err != nil {
		return nil, err
	}

	best, grid := model.Optimal(asInt(args["grid_size"], 300))

	resp := map[string]interface{}{
		"params":   model.Params,
		"costs":    model.Costs,
		"optimal":  best,
		"grid":     grid,
		"worth_it": model.Params.Beta > 1 && !math.IsInf(best.Total, 1),
	}
	if model.Params.Beta <= 1 {
		resp["warning"] = "Shape parameter is at or below 1: the hazard never increases, so no preventive interval beats run-to-failure."
	}
	return resp, nil
}

func (s *Server) handleExportCostGrid(args map[string]interface{}) (interface{}, error) {
	model, err := s.resolveCostModel(args)
	if err != nil {
		return nil, err
	}

	_, grid := model.Optimal(asInt(args["grid_size"], 300))
	path, err := maintenance.ExportGrid(s.cfg.DataPath, grid)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"path": path,
		"rows": len(grid),
	}, nil
}
