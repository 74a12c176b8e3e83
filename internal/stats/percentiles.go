package stats

import "github.com/influxdata/tdigest"

// Percentiles holds duration percentiles across measured runs.
// With the default run count these mostly restate min/max; they become
// informative for large -runs values.
type Percentiles struct {
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

// ComputePercentiles estimates p50/p95/p99 of values via T-Digest.
func ComputePercentiles(values []float64) (Percentiles, bool) {
	if len(values) == 0 {
		return Percentiles{}, false
	}
	td := tdigest.NewWithCompression(100)
	for _, v := range values {
		td.Add(v, 1)
	}
	return Percentiles{
		P50: td.Quantile(0.50),
		P95: td.Quantile(0.95),
		P99: td.Quantile(0.99),
	}, true
}
