package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Parse reads line-oriented lifetime records of the form "time,code[,...]".
// The code is a case-insensitive F (failure) or S (suspension). Lines that
// do not parse are dropped, never fatal; the drop count is kept on the
// dataset so callers can judge data quality.
func Parse(raw string) *Dataset {
	ds := &Dataset{ImportedAt: time.Now().UTC()}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			ds.Dropped++
			continue
		}

		t, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil || t < 0 {
			ds.Dropped++
			continue
		}

		switch strings.ToUpper(strings.TrimSpace(fields[1])) {
		case "F":
			ds.Records = append(ds.Records, Observation{Time: t})
		case "S":
			ds.Records = append(ds.Records, Observation{Time: t, Censored: true})
		default:
			ds.Dropped++
		}
	}

	if ds.Dropped > 0 {
		log.Debug().Int("dropped", ds.Dropped).Int("parsed", len(ds.Records)).Msg("Parser skipped malformed record lines")
	}
	return ds
}
