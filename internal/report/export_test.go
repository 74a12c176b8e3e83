package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/clash-bench/clash/internal/command"
	"github.com/clash-bench/clash/internal/compare"
	"github.com/clash-bench/clash/internal/runner"
)

func exportResults() []*compare.CommandResult {
	fast := &compare.CommandResult{Spec: command.Spec{Raw: "fast"}}
	for i := 0; i < 3; i++ {
		fast.Samples = append(fast.Samples, runner.Sample{
			Duration:        time.Duration(i+1) * time.Second,
			PeakMemoryBytes: uint64(i+1) * 1024 * 1024,
			Succeeded:       true,
		})
	}
	broken := &compare.CommandResult{
		Spec:          command.Spec{Raw: "broken"},
		FailureReason: "failed to start",
	}
	return []*compare.CommandResult{fast, broken}
}

func TestBuild(t *testing.T) {
	exports := Build(exportResults())

	if len(exports) != 2 {
		t.Fatalf("len(exports) = %d, want 2", len(exports))
	}

	fast := exports[0]
	if fast.Command != "fast" {
		t.Errorf("Command = %q, want %q", fast.Command, "fast")
	}
	if len(fast.AllRuns) != 3 {
		t.Fatalf("AllRuns = %d, want 3 (every per-run value carried)", len(fast.AllRuns))
	}
	if fast.AllRuns[1].DurationSeconds != 2.0 {
		t.Errorf("run 2 duration = %v, want 2.0", fast.AllRuns[1].DurationSeconds)
	}
	if fast.TimeSeconds == nil {
		t.Fatal("TimeSeconds statistics missing")
	}
	if got := fast.TimeSeconds.Mean; got != 2.0 {
		t.Errorf("time mean = %v, want 2.0", got)
	}
	if fast.MemoryBytes == nil {
		t.Fatal("MemoryBytes statistics missing")
	}
	if got := fast.MemoryBytes.Max; got != 3*1024*1024 {
		t.Errorf("memory max = %v, want 3 MiB", got)
	}

	broken := exports[1]
	if broken.FailureReason == "" {
		t.Error("failure reason dropped from export")
	}
	if broken.TimeSeconds != nil {
		t.Errorf("TimeSeconds = %+v for a command with no runs, want nil", broken.TimeSeconds)
	}
}

func TestExport_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	if err := Export(path, exportResults()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var decoded []CommandExport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported file is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded commands = %d, want 2", len(decoded))
	}
	if decoded[0].TimeSeconds == nil || decoded[0].TimeSeconds.StdDev == 0 {
		t.Error("summary statistics did not survive the round trip")
	}
	if len(decoded[0].AllRuns) != 3 {
		t.Errorf("per-run values = %d, want 3", len(decoded[0].AllRuns))
	}
}
