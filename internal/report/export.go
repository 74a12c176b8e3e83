package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/clash-bench/clash/internal/compare"
	"github.com/clash-bench/clash/internal/stats"
)

// RunExport is one run in the serialized export.
type RunExport struct {
	DurationSeconds     float64 `json:"duration_seconds"`
	PeakMemoryBytes     uint64  `json:"peak_memory_bytes"`
	ExitCode            int     `json:"exit_code"`
	Succeeded           bool    `json:"succeeded"`
	MemoryLowConfidence bool    `json:"memory_low_confidence,omitempty"`
}

// CommandExport is one command's full record: every per-run value plus
// the summary statistics per metric. It carries enough for external
// tooling to rebuild any table or chart without recomputation.
type CommandExport struct {
	Command       string             `json:"command"`
	Label         string             `json:"label"`
	Runs          int                `json:"runs"`
	FailedRuns    int                `json:"failed_runs"`
	FailureReason string             `json:"failure_reason,omitempty"`
	AllRuns       []RunExport        `json:"all_runs"`
	TimeSeconds   *stats.Summary     `json:"time_seconds,omitempty"`
	TimePcts      *stats.Percentiles `json:"time_percentiles,omitempty"`
	MemoryBytes   *stats.Summary     `json:"memory_bytes,omitempty"`
}

// Build converts results into their export form, in input order.
func Build(results []*compare.CommandResult) []CommandExport {
	out := make([]CommandExport, 0, len(results))
	for _, r := range results {
		ce := CommandExport{
			Command:       r.Spec.Raw,
			Label:         r.Spec.Label(),
			Runs:          len(r.Samples),
			FailedRuns:    r.FailedRuns(),
			FailureReason: r.FailureReason,
			AllRuns:       make([]RunExport, 0, len(r.Samples)),
		}
		for _, s := range r.Samples {
			ce.AllRuns = append(ce.AllRuns, RunExport{
				DurationSeconds:     s.Duration.Seconds(),
				PeakMemoryBytes:     s.PeakMemoryBytes,
				ExitCode:            s.ExitCode,
				Succeeded:           s.Succeeded,
				MemoryLowConfidence: s.MemoryLowConfidence,
			})
		}

		durations := r.SuccessfulDurations()
		if s, ok := stats.Compute(durations); ok {
			ce.TimeSeconds = &s
		}
		if p, ok := stats.ComputePercentiles(durations); ok {
			ce.TimePcts = &p
		}
		if s, ok := stats.Compute(r.SuccessfulMemories()); ok {
			ce.MemoryBytes = &s
		}

		out = append(out, ce)
	}
	return out
}

// Export writes the pretty-printed JSON export to path.
func Export(path string, results []*compare.CommandResult) error {
	data, err := json.MarshalIndent(Build(results), "", "  ")
	if err != nil {
		return fmt.Errorf("serialize results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
