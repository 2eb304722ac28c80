package mcp

import (
	"fmt"

	"relia-mcp/internal/dataset"
	"relia-mcp/internal/weibull"
)

func asString(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func asFloat(v interface{}, fallback float64) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		var res float64
		if _, err := fmt.Sscanf(val, "%g", &res); err == nil {
			return res
		}
	}
	return fallback
}

func asInt(v interface{}, fallback int) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case string:
		var res int
		if _, err := fmt.Sscanf(val, "%d", &res); err == nil {
			return res
		}
	}
	return fallback
}

// resolveDataset fetches a stored dataset by ID, or parses inline records
// when no ID is given.
func (s *Server) resolveDataset(args map[string]interface{}) (*dataset.Dataset, error) {
	if id := asString(args["dataset_id"]); id != "" {
		ds, ok := s.datasets.Get(id)
		if !ok {
			return nil, fmt.Errorf("unknown dataset: %s", id)
		}
		return ds, nil
	}

	raw := asString(args["records"])
	if raw == "" {
		return nil, fmt.Errorf("either dataset_id or records is required")
	}

	ds := dataset.Parse(raw)
	if ds.Size() == 0 {
		return nil, fmt.Errorf("no valid records parsed (%d lines dropped)", ds.Dropped)
	}
	return ds, nil
}

// resolveParams extracts and validates the shape/scale arguments shared by
// the curve and maintenance tools.
func resolveParams(args map[string]interface{}) (weibull.Params, error) {
	p := weibull.Params{
		Beta: asFloat(args["beta"], 0),
		Eta:  asFloat(args["eta"], 0),
	}
	if !p.Valid() {
		return weibull.Params{}, fmt.Errorf("beta and eta must be positive finite numbers")
	}
	return p, nil
}
