package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"relia-mcp/internal/bootstrap"
	"relia-mcp/internal/dataset"
	"relia-mcp/internal/maintenance"
	"relia-mcp/internal/weibull"
)

var (
	analyzeReplicates int
	analyzeConf       float64
	analyzeSeed       int64
	analyzePMCost     float64
	analyzeCMCost     float64
	analyzeOpen       bool
)

// analyzeCmd runs the full one-shot pipeline on a records file: parse, fit,
// bootstrap, cost-optimize, export the grid.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <records-file>",
	Short: "Fit a Weibull model to a records file and derive the optimal PM interval",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read records file: %w", err)
		}

		ds := dataset.Parse(string(raw))
		if ds.Size() == 0 {
			return fmt.Errorf("no valid records in %s (%d lines dropped)", args[0], ds.Dropped)
		}
		log.Info().Int("records", ds.Size()).Int("dropped", ds.Dropped).Msg("Dataset parsed")

		fit, err := weibull.Fit(ds.Failures(), ds.Suspensions())
		if err != nil {
			return err
		}
		if !fit.Converged {
			log.Warn().Int("iterations", fit.Iterations).Msg("Fit hit the iteration cap before converging")
		}

		engine := bootstrap.NewEngine()
		if analyzeSeed != 0 {
			engine.SetSeed(analyzeSeed)
		}
		ci, err := engine.Run(context.Background(), ds, analyzeReplicates, analyzeConf)
		if err != nil {
			return err
		}
		if ci == nil {
			log.Warn().Msg("Too few observations for a bootstrap interval; skipping")
		}

		pmCost := analyzePMCost
		cmCost := analyzeCMCost
		if pmCost == 0 {
			pmCost = cfg.DefaultPMCost
		}
		if cmCost == 0 {
			cmCost = cfg.DefaultCMCost
		}

		model := maintenance.NewModel(fit.Params, maintenance.Costs{PM: pmCost, CM: cmCost})
		best, grid := model.Optimal(300)

		gridPath, err := maintenance.ExportGrid(cfg.DataPath, grid)
		if err != nil {
			return err
		}
		log.Info().Str("path", gridPath).Msg("Cost grid exported")

		report := map[string]interface{}{
			"dataset":   ds.Summarize(),
			"fit":       fit,
			"bootstrap": ci,
			"mtbf":      weibull.MTBF(fit.Params.Beta, fit.Params.Eta),
			"b10_life":  weibull.BLife(0.10, fit.Params.Beta, fit.Params.Eta),
			"optimal":   best,
			"grid_file": gridPath,
		}
		out, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(out))

		if analyzeOpen {
			if err := browser.OpenFile(gridPath); err != nil {
				log.Warn().Err(err).Msg("Could not open exported grid")
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeReplicates, "replicates", 1000, "bootstrap replicate count")
	analyzeCmd.Flags().Float64Var(&analyzeConf, "confidence", 0.90, "confidence level in (0,1)")
	analyzeCmd.Flags().Int64Var(&analyzeSeed, "seed", 0, "RNG seed for reproducible bootstrap runs (0 = time-based)")
	analyzeCmd.Flags().Float64Var(&analyzePMCost, "pm-cost", 0, "planned replacement unit cost (0 = config default)")
	analyzeCmd.Flags().Float64Var(&analyzeCMCost, "cm-cost", 0, "failure replacement unit cost (0 = config default)")
	analyzeCmd.Flags().BoolVar(&analyzeOpen, "open", false, "open the exported cost grid after writing it")
}
