package compare

import (
	"errors"

	"github.com/clash-bench/clash/internal/stats"
)

// ErrNoData is returned when no command has a single successful run, so
// there is nothing to rank.
var ErrNoData = errors.New("no command produced a successful run")

// ErrTooFewCommands is returned when fewer than two results are compared.
var ErrTooFewCommands = errors.New("comparison requires at least two commands")

// Ranking ranks commands on one metric.
type Ranking struct {
	// WinnerIndex is the index (in input order) of the command with the
	// lowest mean. Ties resolve to the earliest command in input order.
	WinnerIndex int

	// Ratios holds other.mean / winner.mean per command, always >= 1
	// for ranked commands and exactly 1 for the winner. Commands
	// excluded from the ranking (no successful runs, or no measurable
	// memory on the memory axis) carry 0.
	Ratios []float64
}

// Report is the comparison consumed by rendering and export.
type Report struct {
	// Results in input order, one per command.
	Results []*CommandResult

	// Time ranks commands by mean duration of successful runs.
	Time *Ranking

	// Memory ranks commands by mean peak RSS of successful runs.
	// Nil when no command has a measurable (nonzero) memory mean, e.g.
	// when every process was too short-lived to sample.
	Memory *Ranking
}

// Compare ranks results by time and memory.
//
// Commands with zero successful runs are excluded from winner
// computation; they can never cause a division by zero. If no command at
// all has a successful run, Compare fails with ErrNoData.
func Compare(results []*CommandResult) (*Report, error) {
	if len(results) < 2 {
		return nil, ErrTooFewCommands
	}

	timeMeans := make([]float64, len(results))
	memMeans := make([]float64, len(results))
	hasData := make([]bool, len(results))
	anyData := false

	for i, r := range results {
		if s, ok := stats.Compute(r.SuccessfulDurations()); ok {
			timeMeans[i] = s.Mean
			hasData[i] = true
			anyData = true
		}
		if s, ok := stats.Compute(r.SuccessfulMemories()); ok {
			memMeans[i] = s.Mean
		}
	}
	if !anyData {
		return nil, ErrNoData
	}

	report := &Report{Results: results}
	report.Time = rank(timeMeans, func(i int) bool { return hasData[i] })
	// Mean peak 0 means "unmeasurable", not "uses no memory"; such
	// commands cannot win or be ranked on the memory axis.
	report.Memory = rank(memMeans, func(i int) bool { return hasData[i] && memMeans[i] > 0 })

	return report, nil
}

// rank picks the lowest mean among eligible commands and derives ratios.
// Returns nil when no command is eligible.
func rank(means []float64, eligible func(int) bool) *Ranking {
	winner := -1
	for i := range means {
		if !eligible(i) {
			continue
		}
		// Strict less-than keeps the earliest command on ties.
		if winner == -1 || means[i] < means[winner] {
			winner = i
		}
	}
	if winner == -1 {
		return nil
	}

	ratios := make([]float64, len(means))
	for i := range means {
		if eligible(i) {
			ratios[i] = means[i] / means[winner]
		}
	}
	return &Ranking{WinnerIndex: winner, Ratios: ratios}
}
