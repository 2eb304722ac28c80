package mcp

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// toolSpec pairs a tool declaration with its input schema.
type toolSpec struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []toolSpec{
			{
				Name: "import_dataset",
				Description: "Parse and store a lifetime dataset from line-oriented text records ('time,code' per line; code F = failure, S = suspension/right-censored). " +
					"Malformed lines are skipped and counted. Returns a dataset ID plus a data-shape summary (failure/suspension split, censoring ratio, dropped lines). " +
					"Guidance: Review the summary before fitting; a high censoring ratio or many dropped lines weakens every downstream estimate.",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"records": {Type: "string", Description: "Raw record text, one 'time,code' pair per line"},
						"name":    {Type: "string", Description: "Optional display name for the dataset"},
					},
					Required: []string{"records"},
				},
			},
			{
				Name:        "list_datasets",
				Description: "List summaries of all imported datasets, newest first.",
				InputSchema: &jsonschema.Schema{
					Type:       "object",
					Properties: map[string]*jsonschema.Schema{},
				},
			},
			{
				Name: "fit_weibull",
				Description: "Fit a two-parameter Weibull lifetime model to a dataset via censored maximum likelihood (Nelder-Mead simplex search). " +
					"Returns shape (beta), scale (eta), the negative log-likelihood at the optimum, a convergence flag, and derived life metrics (B10, B50, MTBF). \n\n" +
					"STRICT GUARDRAIL: The fit is a LOCAL optimum. If 'converged' is false, the iteration budget ran out before the simplex settled; " +
					"you MUST treat the estimate as unreliable and say so rather than presenting it as a trustworthy fit.",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"dataset_id": {Type: "string", Description: "ID of a previously imported dataset"},
						"records":    {Type: "string", Description: "Inline record text, used when no dataset_id is given"},
					},
				},
			},
			{
				Name: "bootstrap_confidence",
				Description: "Quantify fit uncertainty by bootstrap resampling: refit on datasets drawn with replacement and report marginal percentile confidence intervals for beta and eta. \n\n" +
					"The two intervals are computed independently and MUST NOT be presented as a joint confidence region. " +
					"Datasets with fewer than 3 observations return an explicit insufficient-data response, which is NOT a zero-width interval. \n" +
					"STRICT GUARDRAIL: DO NOT estimate confidence intervals yourself if this tool declines; report the data shortage to the user.",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"dataset_id": {Type: "string", Description: "ID of a previously imported dataset"},
						"records":    {Type: "string", Description: "Inline record text, used when no dataset_id is given"},
						"replicates": {Type: "integer", Description: "Number of bootstrap replicates (default from server config, typically 1000)"},
						"confidence": {Type: "number", Description: "Confidence level in (0,1), e.g. 0.90"},
						"seed":       {Type: "integer", Description: "Optional RNG seed for reproducible intervals"},
					},
				},
			},
			{
				Name: "reliability_curve",
				Description: "Sample the fitted model's survival R(t), density f(t) and hazard h(t) over a time grid for the presentation layer to plot. " +
					"Hazard direction follows the shape parameter: increasing for beta>1, constant at beta=1, decreasing for beta<1.",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"beta":    {Type: "number", Description: "Weibull shape parameter (> 0)"},
						"eta":     {Type: "number", Description: "Weibull scale parameter (> 0)"},
						"horizon": {Type: "number", Description: "Upper end of the time grid (default: 3 * eta)"},
						"points":  {Type: "integer", Description: "Number of grid points (default: 100)"},
					},
					Required: []string{"beta", "eta"},
				},
			},
			{
				Name: "optimal_pm_interval",
				Description: "Grid-search the preventive-maintenance interval that minimizes the total expected cost rate CPUT(t) for a fitted model and unit costs. " +
					"Returns the optimal interval with its PM/CM/total rates plus the evaluated grid neighborhood. \n\n" +
					"A cost-optimal PM policy only exists for wear-out behavior (beta > 1); for beta <= 1 the minimum sits at the horizon and preventive replacement buys nothing - " +
					"you MUST point that out instead of recommending the returned interval.",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"beta":      {Type: "number", Description: "Weibull shape parameter (> 0)"},
						"eta":       {Type: "number", Description: "Weibull scale parameter (> 0)"},
						"pm_cost":   {Type: "number", Description: "Unit cost of a planned replacement (default from server config)"},
						"cm_cost":   {Type: "number", Description: "Unit cost of a failure-driven replacement (default from server config)"},
						"grid_size": {Type: "integer", Description: "Number of candidate intervals to evaluate (default: 300)"},
					},
					Required: []string{"beta", "eta"},
				},
			},
			{
				Name: "export_cost_grid",
				Description: "Evaluate the maintenance cost grid and write it to the server's data directory in the 't,CPUT,CPM,CCM' exchange format. Returns the file path.",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"beta":      {Type: "number", Description: "Weibull shape parameter (> 0)"},
						"eta":       {Type: "number", Description: "Weibull scale parameter (> 0)"},
						"pm_cost":   {Type: "number", Description: "Unit cost of a planned replacement (default from server config)"},
						"cm_cost":   {Type: "number", Description: "Unit cost of a failure-driven replacement (default from server config)"},
						"grid_size": {Type: "integer", Description: "Number of grid rows (default: 300)"},
					},
					Required: []string{"beta", "eta"},
				},
			},
		},
	}
}
