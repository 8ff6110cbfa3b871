package types

import (
	"time"
)

// CurveSet is the result of an ensemble RV computation: one curve per
// parameter sample over a shared time grid, plus per-epoch summary
// statistics.
type CurveSet struct {
	ID        string            `json:"id"`
	Grid      []float64         `json:"grid"`    // internal day scale
	RV        [][]float64       `json:"rv"`      // n_samples x len(Grid), m/s
	MeanRV    []float64         `json:"mean_rv"` // per-epoch ensemble mean, m/s
	StdRV     []float64         `json:"std_rv"`  // per-epoch ensemble stddev, m/s
	Metadata  map[string]string `json:"metadata"`
	Timestamp time.Time         `json:"timestamp"`
	Duration  time.Duration     `json:"duration"`
}

// Samples returns the number of ensemble members in the set.
func (cs *CurveSet) Samples() int {
	return len(cs.RV)
}
