package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"relia-mcp/internal/weibull"
)

// mockgen writes a synthetic lifetime dataset in the 'time,code' record
// format: failures drawn from a known Weibull(beta, eta), with a configurable
// fraction right-censored at a random inspection age.
func main() {
	beta := flag.Float64("beta", 2.0, "true shape parameter")
	eta := flag.Float64("eta", 1000.0, "true scale parameter")
	count := flag.Int("count", 200, "number of units to simulate")
	censorFrac := flag.Float64("censor", 0.2, "fraction of units censored before failure (0-1)")
	seed := flag.Int64("seed", 42, "RNG seed")
	out := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	if *beta <= 0 || *eta <= 0 || *count <= 0 || *censorFrac < 0 || *censorFrac >= 1 {
		fmt.Fprintln(os.Stderr, "invalid parameters: need beta > 0, eta > 0, count > 0, censor in [0,1)")
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", *out, err)
			os.Exit(1)
		}
		defer f.Close()
		w = bufio.NewWriter(f)
	}
	defer w.Flush()

	rng := rand.New(rand.NewSource(*seed))

	for i := 0; i < *count; i++ {
		life := weibull.Sample(rng, *beta, *eta)

		if rng.Float64() < *censorFrac {
			// Unit was pulled from service at a random age before failing.
			inspection := life * rng.Float64()
			fmt.Fprintf(w, "%.2f,S\n", inspection)
			continue
		}
		fmt.Fprintf(w, "%.2f,F\n", life)
	}
}
