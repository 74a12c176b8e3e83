package report

import (
	"strings"
	"testing"
	"time"

	"github.com/clash-bench/clash/internal/command"
	"github.com/clash-bench/clash/internal/compare"
	"github.com/clash-bench/clash/internal/runner"
)

func renderResult(raw string, count int, duration time.Duration, peak uint64) *compare.CommandResult {
	r := &compare.CommandResult{Spec: command.Spec{Raw: raw}}
	for i := 0; i < count; i++ {
		r.Samples = append(r.Samples, runner.Sample{
			Duration:        duration,
			PeakMemoryBytes: peak,
			Succeeded:       true,
		})
	}
	return r
}

func TestRender_WinnersAndRatios(t *testing.T) {
	results := []*compare.CommandResult{
		renderResult("quick", 5, 1*time.Second, 10*1024*1024),
		renderResult("slow", 5, 2*time.Second, 5*1024*1024),
	}
	rep, err := compare.Compare(results)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	out := Render(rep)

	for _, want := range []string{
		"quick",
		"slow",
		"is 2.00x faster",
		"uses 2.00x less memory",
		"Mean",
		"Std Dev",
		"wins on speed (2.00x)",
		"wins on memory (2.00x)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

// A command that failed to spawn is rendered with its reason, never
// silently dropped.
func TestRender_FailedCommandShown(t *testing.T) {
	failed := &compare.CommandResult{
		Spec:          command.Spec{Raw: "nope"},
		FailureReason: `failed to start "nope": not found`,
	}
	results := []*compare.CommandResult{
		failed,
		renderResult("ok", 5, time.Second, 1024*1024),
	}
	rep, err := compare.Compare(results)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	out := Render(rep)
	if !strings.Contains(out, "failed to start") {
		t.Errorf("failure reason not rendered:\n%s", out)
	}
	if !strings.Contains(out, "ok") {
		t.Errorf("surviving command missing:\n%s", out)
	}
}

func TestRender_UnmeasurableMemory(t *testing.T) {
	results := []*compare.CommandResult{
		renderResult("a", 5, 1*time.Second, 0),
		renderResult("b", 5, 2*time.Second, 0),
	}
	rep, err := compare.Compare(results)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	out := Render(rep)
	if !strings.Contains(out, "Memory data unavailable") {
		t.Errorf("missing unavailable-memory note:\n%s", out)
	}
}

func TestRender_TieReadsAsSimilar(t *testing.T) {
	results := []*compare.CommandResult{
		renderResult("a", 5, time.Second, 1024*1024),
		renderResult("b", 5, time.Second, 1024*1024),
	}
	rep, err := compare.Compare(results)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	out := Render(rep)
	if !strings.Contains(out, "Roughly the same speed") {
		t.Errorf("tie not rendered as similar:\n%s", out)
	}
	if !strings.Contains(out, "All commands perform similarly") {
		t.Errorf("summary missing for tie:\n%s", out)
	}
}
