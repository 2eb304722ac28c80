package bootstrap

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"relia-mcp/internal/dataset"
	"relia-mcp/internal/weibull"
)

// minObservations is the smallest dataset worth resampling. Below this the
// percentile interval is statistically meaningless and usually degenerate.
const minObservations = 3

// Interval is a two-sided percentile confidence interval.
type Interval struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Result aggregates the replicate fits into marginal confidence intervals.
// BetaCI and EtaCI are sorted independently, so they are per-parameter
// intervals, never a joint confidence region.
type Result struct {
	BetaCI     Interval         `json:"beta_ci"`
	EtaCI      Interval         `json:"eta_ci"`
	Confidence float64          `json:"confidence"`
	Requested  int              `json:"requested_replicates"`
	Kept       int              `json:"kept_replicates"`
	Samples    []weibull.Params `json:"-"`
}

// Engine resamples a dataset with replacement and refits each replicate.
// Replicates are independent, so they run as a parallel map on a bounded
// worker pool; each replicate derives its own RNG from the master seed so
// results are reproducible regardless of scheduling.
type Engine struct {
	seed    int64
	workers int
}

// NewEngine creates an engine with a time-based seed.
func NewEngine() *Engine {
	return &Engine{
		seed:    time.Now().UnixNano(),
		workers: runtime.NumCPU(),
	}
}

// SetSeed fixes the master seed for deterministic runs.
func (e *Engine) SetSeed(seed int64) {
	e.seed = seed
}

// Run draws nboot bootstrap replicates and returns percentile intervals at
// the given confidence level. Returns nil (no error) when the dataset is too
// small to resample; callers must not read nil as a zero-width interval.
// Cancellation is honored between replicates, the only safe suspension point.
func (e *Engine) Run(ctx context.Context, ds *dataset.Dataset, nboot int, conf float64) (*Result, error) {
	if ds.Size() < minObservations {
		log.Debug().Int("observations", ds.Size()).Msg("Dataset too small for bootstrap")
		return nil, nil
	}
	if nboot <= 0 || conf <= 0 || conf >= 1 {
		return nil, nil
	}

	pool := ds.Records
	fits := make([]weibull.Params, nboot)
	valid := make([]bool, nboot)

	var mu sync.Mutex
	discarded := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := 0; i < nboot; i++ {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			rng := rand.New(rand.NewSource(e.seed + int64(i)))

			failures, suspensions := resample(rng, pool)
			res, err := weibull.Fit(failures, suspensions)
			if err != nil || !res.Params.Valid() {
				// Pathological resample (all-censored, all-identical).
				mu.Lock()
				discarded++
				mu.Unlock()
				return nil
			}
			fits[i] = res.Params
			valid[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	samples := make([]weibull.Params, 0, nboot)
	for i, ok := range valid {
		if ok {
			samples = append(samples, fits[i])
		}
	}
	if len(samples) == 0 {
		log.Warn().Int("requested", nboot).Msg("All bootstrap replicates discarded as non-finite")
		return nil, nil
	}
	if discarded > 0 {
		log.Debug().Int("discarded", discarded).Int("kept", len(samples)).Msg("Bootstrap discarded non-finite replicates")
	}

	betas := make([]float64, len(samples))
	etas := make([]float64, len(samples))
	for i, p := range samples {
		betas[i] = p.Beta
		etas[i] = p.Eta
	}
	sort.Float64s(betas)
	sort.Float64s(etas)

	return &Result{
		BetaCI:     percentileInterval(betas, conf),
		EtaCI:      percentileInterval(etas, conf),
		Confidence: conf,
		Requested:  nboot,
		Kept:       len(samples),
		Samples:    samples,
	}, nil
}

// resample draws len(pool) observations uniformly with replacement and
// partitions the replicate by censoring flag.
func resample(rng *rand.Rand, pool []dataset.Observation) (failures, suspensions []float64) {
	for range pool {
		obs := pool[rng.Intn(len(pool))]
		if obs.Censored {
			suspensions = append(suspensions, obs.Time)
		} else {
			failures = append(failures, obs.Time)
		}
	}
	return failures, suspensions
}

// percentileInterval extracts the [(1-conf)/2, 1-(1-conf)/2] percentile pair
// from a sorted slice, flooring the low index and ceiling the high one,
// clamped to valid bounds.
func percentileInterval(sorted []float64, conf float64) Interval {
	n := len(sorted)
	tail := (1 - conf) / 2

	lo := int(math.Floor(tail * float64(n)))
	hi := int(math.Ceil((1 - tail) * float64(n)))
	if hi >= n {
		hi = n - 1
	}
	if lo < 0 {
		lo = 0
	}
	if lo > hi {
		lo = hi
	}
	return Interval{Low: sorted[lo], High: sorted[hi]}
}
