package dataset

import (
	"math"
	"time"
)

// Observation is a single lifetime record: an exact failure time, or a
// right-censored time when the unit was still alive at last inspection.
type Observation struct {
	Time     float64 `json:"time"`
	Censored bool    `json:"censored"`
}

// Dataset is an unordered collection of observations for one analysis run.
type Dataset struct {
	ID         string        `json:"id"`
	Name       string        `json:"name,omitempty"`
	Records    []Observation `json:"records"`
	Dropped    int           `json:"dropped_lines"`
	ImportedAt time.Time     `json:"imported_at"`
}

// Failures returns the exact failure times.
func (d *Dataset) Failures() []float64 {
	out := make([]float64, 0, len(d.Records))
	for _, r := range d.Records {
		if !r.Censored {
			out = append(out, r.Time)
		}
	}
	return out
}

// Suspensions returns the right-censored times.
func (d *Dataset) Suspensions() []float64 {
	out := make([]float64, 0, len(d.Records))
	for _, r := range d.Records {
		if r.Censored {
			out = append(out, r.Time)
		}
	}
	return out
}

// Size returns the total observation count.
func (d *Dataset) Size() int {
	return len(d.Records)
}

// Summary characterizes the shape of a dataset before any fitting happens.
type Summary struct {
	ID             string  `json:"id,omitempty"`
	Name           string  `json:"name,omitempty"`
	Total          int     `json:"total"`
	Failures       int     `json:"failures"`
	Suspensions    int     `json:"suspensions"`
	DroppedLines   int     `json:"dropped_lines"`
	CensoringRatio float64 `json:"censoring_ratio"`
	MinTime        float64 `json:"min_time"`
	MaxTime        float64 `json:"max_time"`
	MeanFailure    float64 `json:"mean_failure_time"`
}

// Summarize computes the data-shape summary for a dataset.
func (d *Dataset) Summarize() Summary {
	s := Summary{
		ID:           d.ID,
		Name:         d.Name,
		Total:        len(d.Records),
		DroppedLines: d.Dropped,
	}
	if len(d.Records) == 0 {
		return s
	}

	s.MinTime = math.Inf(1)
	failureSum := 0.0
	for _, r := range d.Records {
		if r.Censored {
			s.Suspensions++
		} else {
			s.Failures++
			failureSum += r.Time
		}
		if r.Time < s.MinTime {
			s.MinTime = r.Time
		}
		if r.Time > s.MaxTime {
			s.MaxTime = r.Time
		}
	}
	s.CensoringRatio = float64(s.Suspensions) / float64(s.Total)
	if s.Failures > 0 {
		s.MeanFailure = failureSum / float64(s.Failures)
	}
	return s
}

// FromSlices builds a dataset from separate failure and suspension times.
func FromSlices(failures, suspensions []float64) *Dataset {
	records := make([]Observation, 0, len(failures)+len(suspensions))
	for _, t := range failures {
		records = append(records, Observation{Time: t})
	}
	for _, t := range suspensions {
		records = append(records, Observation{Time: t, Censored: true})
	}
	return &Dataset{Records: records}
}
