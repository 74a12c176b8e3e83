package compare

import (
	"errors"
	"testing"
	"time"

	"github.com/clash-bench/clash/internal/command"
	"github.com/clash-bench/clash/internal/runner"
)

const mb = 1024 * 1024

// resultWith builds a frozen CommandResult with count identical samples.
func resultWith(raw string, count int, duration time.Duration, peak uint64) *CommandResult {
	r := &CommandResult{Spec: command.Spec{Raw: raw}}
	for i := 0; i < count; i++ {
		r.Samples = append(r.Samples, runner.Sample{
			Duration:        duration,
			PeakMemoryBytes: peak,
			Succeeded:       true,
		})
	}
	return r
}

func TestCompare_FasterVsLighter(t *testing.T) {
	// A is twice as fast; B uses half the memory.
	a := resultWith("a", 5, 1*time.Second, 10*mb)
	b := resultWith("b", 5, 2*time.Second, 5*mb)

	rep, err := Compare([]*CommandResult{a, b})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if rep.Time == nil {
		t.Fatal("Time ranking is nil")
	}
	if rep.Time.WinnerIndex != 0 {
		t.Errorf("time winner = %d, want 0", rep.Time.WinnerIndex)
	}
	if got := rep.Time.Ratios[0]; got != 1.0 {
		t.Errorf("time winner ratio = %v, want 1.0", got)
	}
	if got := rep.Time.Ratios[1]; got != 2.0 {
		t.Errorf("time ratio for b = %v, want 2.0", got)
	}

	if rep.Memory == nil {
		t.Fatal("Memory ranking is nil")
	}
	if rep.Memory.WinnerIndex != 1 {
		t.Errorf("memory winner = %d, want 1", rep.Memory.WinnerIndex)
	}
	if got := rep.Memory.Ratios[0]; got != 2.0 {
		t.Errorf("memory ratio for a = %v, want 2.0", got)
	}
	if got := rep.Memory.Ratios[1]; got != 1.0 {
		t.Errorf("memory winner ratio = %v, want 1.0", got)
	}
}

func TestCompare_RatiosAtLeastOne(t *testing.T) {
	a := resultWith("a", 3, 300*time.Millisecond, 7*mb)
	b := resultWith("b", 3, 450*time.Millisecond, 3*mb)
	c := resultWith("c", 3, 320*time.Millisecond, 9*mb)

	rep, err := Compare([]*CommandResult{a, b, c})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	for _, rk := range []*Ranking{rep.Time, rep.Memory} {
		if rk == nil {
			t.Fatal("ranking is nil")
		}
		if rk.Ratios[rk.WinnerIndex] != 1.0 {
			t.Errorf("winner ratio = %v, want 1.0", rk.Ratios[rk.WinnerIndex])
		}
		for i, ratio := range rk.Ratios {
			if ratio < 1.0 {
				t.Errorf("ratio[%d] = %v, want >= 1", i, ratio)
			}
		}
	}
}

// One command fails to spawn entirely; the other must win both axes
// without error, and the failed command is kept in the results with its
// reason, never dropped.
func TestCompare_SpawnFailureExcluded(t *testing.T) {
	failed := &CommandResult{
		Spec:          command.Spec{Raw: "nope"},
		FailureReason: `failed to start "nope": executable not found`,
	}
	ok := resultWith("ok", 5, 100*time.Millisecond, 2*mb)

	rep, err := Compare([]*CommandResult{failed, ok})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if rep.Time.WinnerIndex != 1 {
		t.Errorf("time winner = %d, want 1", rep.Time.WinnerIndex)
	}
	if rep.Memory.WinnerIndex != 1 {
		t.Errorf("memory winner = %d, want 1", rep.Memory.WinnerIndex)
	}
	if got := rep.Time.Ratios[0]; got != 0 {
		t.Errorf("excluded command time ratio = %v, want 0", got)
	}
	if rep.Results[0].FailureReason == "" {
		t.Error("failure reason lost from results")
	}
}

func TestCompare_TieGoesToEarliest(t *testing.T) {
	a := resultWith("a", 5, 1*time.Second, 4*mb)
	b := resultWith("b", 5, 1*time.Second, 4*mb)

	rep, err := Compare([]*CommandResult{a, b})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if rep.Time.WinnerIndex != 0 {
		t.Errorf("time winner on tie = %d, want 0 (earliest)", rep.Time.WinnerIndex)
	}
	if rep.Memory.WinnerIndex != 0 {
		t.Errorf("memory winner on tie = %d, want 0 (earliest)", rep.Memory.WinnerIndex)
	}
}

func TestCompare_FailedRunsExcludedFromMeans(t *testing.T) {
	a := resultWith("a", 3, 1*time.Second, 4*mb)
	// One extra failed run with a wild duration must not shift a's mean.
	a.Samples = append(a.Samples, runner.Sample{
		Duration:  30 * time.Second,
		Succeeded: false,
		ExitCode:  1,
	})
	b := resultWith("b", 3, 2*time.Second, 4*mb)

	rep, err := Compare([]*CommandResult{a, b})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if rep.Time.WinnerIndex != 0 {
		t.Errorf("time winner = %d, want 0", rep.Time.WinnerIndex)
	}
	if got := rep.Time.Ratios[1]; got != 2.0 {
		t.Errorf("time ratio for b = %v, want 2.0", got)
	}
}

func TestCompare_NoData(t *testing.T) {
	a := &CommandResult{Spec: command.Spec{Raw: "a"}, FailureReason: "spawn failed"}
	b := &CommandResult{Spec: command.Spec{Raw: "b"}, FailureReason: "spawn failed"}

	_, err := Compare([]*CommandResult{a, b})
	if !errors.Is(err, ErrNoData) {
		t.Errorf("Compare() error = %v, want ErrNoData", err)
	}
}

func TestCompare_TooFewCommands(t *testing.T) {
	a := resultWith("a", 5, time.Second, mb)
	_, err := Compare([]*CommandResult{a})
	if !errors.Is(err, ErrTooFewCommands) {
		t.Errorf("Compare() error = %v, want ErrTooFewCommands", err)
	}
}

// Processes too short-lived for any memory poll report peak 0; they must
// not win the memory axis, and an all-zero field means no memory ranking
// at all rather than a division by zero.
func TestCompare_UnmeasurableMemory(t *testing.T) {
	a := resultWith("a", 5, 1*time.Second, 0)
	b := resultWith("b", 5, 2*time.Second, 5*mb)

	rep, err := Compare([]*CommandResult{a, b})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if rep.Memory == nil {
		t.Fatal("Memory ranking is nil with one measurable command")
	}
	if rep.Memory.WinnerIndex != 1 {
		t.Errorf("memory winner = %d, want 1 (only measurable command)", rep.Memory.WinnerIndex)
	}

	c := resultWith("c", 5, 1*time.Second, 0)
	d := resultWith("d", 5, 2*time.Second, 0)
	rep, err = Compare([]*CommandResult{c, d})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if rep.Memory != nil {
		t.Errorf("Memory ranking = %+v, want nil when nothing is measurable", rep.Memory)
	}
}
