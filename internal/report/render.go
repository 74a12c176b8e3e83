package report

import (
	"fmt"
	"strings"

	"github.com/clash-bench/clash/internal/compare"
	"github.com/clash-bench/clash/internal/stats"
)

const barWidth = 30

// percentileThreshold is the successful-run count from which T-Digest
// percentiles say more than min/max already do.
const percentileThreshold = 10

// Render formats the full comparison report for the terminal.
func Render(rep *compare.Report) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n\n", titleStyle.Render("⚔  clash — benchmark comparator"))

	renderStatusLines(&b, rep.Results)
	b.WriteString("\n")

	renderTimeSection(&b, rep)
	b.WriteString("\n")

	renderMemorySection(&b, rep)
	b.WriteString("\n")

	renderSummary(&b, rep)

	return b.String()
}

// renderStatusLines prints one line per command: clean, partially
// failed, or aborted with its reason. A failed command is always shown,
// never silently dropped.
func renderStatusLines(b *strings.Builder, results []*compare.CommandResult) {
	for _, r := range results {
		switch {
		case r.FailureReason != "":
			fmt.Fprintf(b, "  %s %s — %s\n",
				failStyle.Render("✗"),
				titleStyle.Render(r.Spec.Label()),
				failStyle.Render(r.FailureReason),
			)
		case r.FailedRuns() > 0:
			fmt.Fprintf(b, "  %s %s (%d runs)\n",
				warnStyle.Render(fmt.Sprintf("⚠ %d failed", r.FailedRuns())),
				titleStyle.Render(r.Spec.Label()),
				len(r.Samples),
			)
		default:
			fmt.Fprintf(b, "  %s %s (%d runs)\n",
				okStyle.Render("✓"),
				titleStyle.Render(r.Spec.Label()),
				len(r.Samples),
			)
		}
	}
}

func renderTimeSection(b *strings.Builder, rep *compare.Report) {
	winner := -1
	if rep.Time != nil {
		winner = rep.Time.WinnerIndex
	}

	summaries := make([]*stats.Summary, len(rep.Results))
	pcts := make([]*stats.Percentiles, len(rep.Results))
	showPcts := false
	for i, r := range rep.Results {
		durations := r.SuccessfulDurations()
		if s, ok := stats.Compute(durations); ok {
			summaries[i] = &s
		}
		if len(durations) >= percentileThreshold {
			if p, ok := stats.ComputePercentiles(durations); ok {
				pcts[i] = &p
				showPcts = true
			}
		}
	}

	fmt.Fprintf(b, "  %s\n", timeHeaderStyle.Render("⏱  Time"))
	renderMetricTable(b, rep.Results, summaries, winner, stats.FormatSeconds)
	if showPcts {
		renderPercentileRows(b, rep.Results, pcts)
	}

	renderBarChart(b, rep.Results, winner, func(i int) float64 {
		if summaries[i] == nil {
			return 0
		}
		return summaries[i].Mean
	}, stats.FormatSeconds)

	if rep.Time != nil {
		if ratio := maxRatio(rep.Time); ratio > 1.01 {
			fmt.Fprintf(b, "  %s %s is %.2fx faster\n",
				dimStyle.Render("→"),
				winnerStyle.Render(rep.Results[rep.Time.WinnerIndex].Spec.Label()),
				ratio,
			)
		} else {
			fmt.Fprintf(b, "  %s Roughly the same speed\n", dimStyle.Render("→"))
		}
	}
}

func renderMemorySection(b *strings.Builder, rep *compare.Report) {
	if rep.Memory == nil {
		fmt.Fprintf(b, "  %s\n",
			dimStyle.Render("💾 Memory data unavailable (processes too short-lived to measure)"))
		return
	}
	winner := rep.Memory.WinnerIndex

	summaries := make([]*stats.Summary, len(rep.Results))
	for i, r := range rep.Results {
		if s, ok := stats.Compute(r.SuccessfulMemories()); ok {
			summaries[i] = &s
		}
	}

	formatMem := func(v float64) string { return stats.FormatBytes(uint64(v)) }

	fmt.Fprintf(b, "  %s\n", memHeaderStyle.Render("💾 Memory"))
	renderMetricTable(b, rep.Results, summaries, winner, formatMem)

	renderBarChart(b, rep.Results, winner, func(i int) float64 {
		if summaries[i] == nil {
			return 0
		}
		return summaries[i].Mean
	}, formatMem)

	if ratio := maxRatio(rep.Memory); ratio > 1.01 {
		fmt.Fprintf(b, "  %s %s uses %.2fx less memory\n",
			dimStyle.Render("→"),
			winnerStyle.Render(rep.Results[rep.Memory.WinnerIndex].Spec.Label()),
			ratio,
		)
	} else {
		fmt.Fprintf(b, "  %s Roughly the same memory usage\n", dimStyle.Render("→"))
	}
}

// renderMetricTable prints Mean/Min/Max/StdDev rows, one column per
// command, highlighting the winner's column.
func renderMetricTable(b *strings.Builder, results []*compare.CommandResult, summaries []*stats.Summary, winner int, format func(float64) string) {
	labels := make([]string, len(results))
	for i, r := range results {
		labels[i] = r.Spec.Label()
	}
	colWidth := columnWidth(labels)

	fmt.Fprintf(b, "  %-8s", "")
	for i, label := range labels {
		cell := fmt.Sprintf("%-*s", colWidth, label)
		if i == winner {
			cell = winnerStyle.Render(cell)
		} else {
			cell = titleStyle.Render(cell)
		}
		b.WriteString(cell)
	}
	b.WriteString("\n")

	rows := []struct {
		name  string
		value func(s *stats.Summary) string
	}{
		{"Mean", func(s *stats.Summary) string { return format(s.Mean) }},
		{"Min", func(s *stats.Summary) string { return format(s.Min) }},
		{"Max", func(s *stats.Summary) string { return format(s.Max) }},
		{"Std Dev", func(s *stats.Summary) string { return "±" + format(s.StdDev) }},
	}
	for _, row := range rows {
		fmt.Fprintf(b, "  %-8s", row.name)
		for i, s := range summaries {
			text := "-"
			if s != nil {
				text = row.value(s)
			}
			cell := fmt.Sprintf("%-*s", colWidth, text)
			if i == winner && s != nil {
				cell = winnerStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
}

func renderPercentileRows(b *strings.Builder, results []*compare.CommandResult, pcts []*stats.Percentiles) {
	labels := make([]string, len(results))
	for i, r := range results {
		labels[i] = r.Spec.Label()
	}
	colWidth := columnWidth(labels)

	rows := []struct {
		name  string
		value func(p *stats.Percentiles) float64
	}{
		{"P50", func(p *stats.Percentiles) float64 { return p.P50 }},
		{"P95", func(p *stats.Percentiles) float64 { return p.P95 }},
		{"P99", func(p *stats.Percentiles) float64 { return p.P99 }},
	}
	for _, row := range rows {
		fmt.Fprintf(b, "  %-8s", row.name)
		for _, p := range pcts {
			text := "-"
			if p != nil {
				text = stats.FormatSeconds(row.value(p))
			}
			fmt.Fprintf(b, "%-*s", colWidth, text)
		}
		b.WriteString("\n")
	}
}

// renderBarChart prints one horizontal bar per command, scaled so the
// largest mean fills the full width.
func renderBarChart(b *strings.Builder, results []*compare.CommandResult, winner int, value func(int) float64, format func(float64) string) {
	maxVal := 0.0
	maxLabel := 0
	for i, r := range results {
		if v := value(i); v > maxVal {
			maxVal = v
		}
		if n := len(r.Spec.Label()); n > maxLabel {
			maxLabel = n
		}
	}
	if maxVal <= 0 {
		return
	}

	for i, r := range results {
		v := value(i)
		filled := int(v/maxVal*float64(barWidth) + 0.5)
		if filled > barWidth {
			filled = barWidth
		}

		label := fmt.Sprintf("%*s", maxLabel, r.Spec.Label())
		bar := strings.Repeat("━", filled)
		rest := dimStyle.Render(strings.Repeat("─", barWidth-filled))
		val := format(v)
		if v == 0 {
			val = "-"
		}

		if i == winner {
			fmt.Fprintf(b, "  %s %s%s  %s\n",
				winnerStyle.Render(label), barWinnerStyle.Render(bar), rest, winnerStyle.Render(val))
		} else {
			fmt.Fprintf(b, "  %s %s%s  %s\n", label, barStyle.Render(bar), rest, val)
		}
	}
}

func renderSummary(b *strings.Builder, rep *compare.Report) {
	var parts []string

	if rep.Time != nil {
		if ratio := maxRatio(rep.Time); ratio > 1.01 {
			parts = append(parts, fmt.Sprintf("%s wins on speed (%.2fx)",
				rep.Results[rep.Time.WinnerIndex].Spec.Label(), ratio))
		}
	}
	if rep.Memory != nil {
		if ratio := maxRatio(rep.Memory); ratio > 1.01 {
			parts = append(parts, fmt.Sprintf("%s wins on memory (%.2fx)",
				rep.Results[rep.Memory.WinnerIndex].Spec.Label(), ratio))
		}
	}

	if len(parts) == 0 {
		fmt.Fprintf(b, "  %s All commands perform similarly.\n", titleStyle.Render("Summary:"))
	} else {
		fmt.Fprintf(b, "  %s %s\n", titleStyle.Render("Summary:"), strings.Join(parts, ", "))
	}
}

// maxRatio returns the largest winner-relative ratio in a ranking.
func maxRatio(rk *compare.Ranking) float64 {
	max := 1.0
	for _, ratio := range rk.Ratios {
		if ratio > max {
			max = ratio
		}
	}
	return max
}

func columnWidth(labels []string) int {
	w := 12
	for _, label := range labels {
		if len(label)+2 > w {
			w = len(label) + 2
		}
	}
	return w
}
