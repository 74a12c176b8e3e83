// Package metrics provides an optional Prometheus endpoint for clash.
//
// A comparison with large -runs counts or slow commands can take hours;
// the endpoint lets an operator watch progress from the outside. It is
// off by default and has no effect on measurements.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	clashInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "clash_info",
			Help: "Information about the comparison (value always 1)",
		},
		[]string{"version"},
	)

	clashCommands = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "clash_commands",
			Help: "Number of commands being compared",
		},
	)

	clashRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clash_runs_total",
			Help: "Completed runs per command, including warmup",
		},
		[]string{"command", "phase"},
	)

	clashRunFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clash_run_failures_total",
			Help: "Runs that exited with nonzero status, per command",
		},
		[]string{"command"},
	)

	clashRunDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clash_run_duration_seconds",
			Help:    "Wall-clock duration of measured runs",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 12),
		},
		[]string{"command"},
	)

	clashRunPeakMemoryBytes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "clash_run_peak_memory_bytes",
			Help: "Peak RSS of the most recent measured run",
		},
		[]string{"command"},
	)
)

// Collector records per-run observations into the Prometheus registry.
type Collector struct{}

// NewCollector registers all clash metrics and returns a Collector.
func NewCollector(version string, commands int) *Collector {
	prometheus.MustRegister(
		clashInfo,
		clashCommands,
		clashRunsTotal,
		clashRunFailuresTotal,
		clashRunDurationSeconds,
		clashRunPeakMemoryBytes,
	)

	clashInfo.WithLabelValues(version).Set(1)
	clashCommands.Set(float64(commands))

	return &Collector{}
}

// RecordRun records one completed run for the labeled command.
func (c *Collector) RecordRun(label string, warmup bool, d time.Duration, peakBytes uint64, succeeded bool) {
	phase := "measured"
	if warmup {
		phase = "warmup"
	}
	clashRunsTotal.WithLabelValues(label, phase).Inc()
	if !succeeded {
		clashRunFailuresTotal.WithLabelValues(label).Inc()
	}
	if !warmup {
		clashRunDurationSeconds.WithLabelValues(label).Observe(d.Seconds())
		clashRunPeakMemoryBytes.WithLabelValues(label).Set(float64(peakBytes))
	}
}
