package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// Messages
// =============================================================================

// CommandStartMsg marks a command entering its warmup/measured runs.
type CommandStartMsg struct {
	Index int
}

// RunMsg reports one completed run.
type RunMsg struct {
	Index     int
	Warmup    bool
	Succeeded bool
}

// CommandDoneMsg marks a command's result as frozen.
type CommandDoneMsg struct {
	Index         int
	FailedRuns    int
	FailureReason string
}

// DoneMsg signals the whole comparison has finished.
type DoneMsg struct{}

// =============================================================================
// Model
// =============================================================================

type commandState int

const (
	statePending commandState = iota
	stateWarmup
	stateRunning
	stateDone
	stateFailed
)

type commandProgress struct {
	label         string
	state         commandState
	warmupDone    int
	runsDone      int
	failedRuns    int
	failureReason string
}

// Model is the Bubble Tea model for the progress display.
type Model struct {
	commands    []commandProgress
	runsTotal   int
	warmupTotal int

	// cancel aborts the running comparison when the user quits early.
	cancel context.CancelFunc

	width    int
	quitting bool
}

// New creates a progress Model for the given command labels.
func New(labels []string, runs, warmup int, cancel context.CancelFunc) Model {
	commands := make([]commandProgress, len(labels))
	for i, label := range labels {
		commands[i] = commandProgress{label: label}
	}
	return Model{
		commands:    commands,
		runsTotal:   runs,
		warmupTotal: warmup,
		cancel:      cancel,
		width:       80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case CommandStartMsg:
		if c := m.command(msg.Index); c != nil {
			if m.warmupTotal > 0 {
				c.state = stateWarmup
			} else {
				c.state = stateRunning
			}
		}

	case RunMsg:
		if c := m.command(msg.Index); c != nil {
			if msg.Warmup {
				c.warmupDone++
				if c.warmupDone >= m.warmupTotal {
					c.state = stateRunning
				}
			} else {
				c.runsDone++
				if !msg.Succeeded {
					c.failedRuns++
				}
			}
		}

	case CommandDoneMsg:
		if c := m.command(msg.Index); c != nil {
			c.failedRuns = msg.FailedRuns
			c.failureReason = msg.FailureReason
			if msg.FailureReason != "" {
				c.state = stateFailed
			} else {
				c.state = stateDone
			}
		}

	case DoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) command(index int) *commandProgress {
	if index < 0 || index >= len(m.commands) {
		return nil
	}
	return &m.commands[index]
}

// =============================================================================
// View
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n\n", titleStyle.Render("⚔  clash — benchmark comparator"))

	for i := range m.commands {
		b.WriteString(m.renderCommand(&m.commands[i]))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  q to abort"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderCommand(c *commandProgress) string {
	status := dimStyle.Render("·")
	detail := dimStyle.Render("waiting")

	switch c.state {
	case stateWarmup:
		status = statusWarning.Render("▸")
		detail = fmt.Sprintf("warmup %d/%d", c.warmupDone, m.warmupTotal)
	case stateRunning:
		status = statusWarning.Render("▸")
		detail = fmt.Sprintf("%s %d/%d runs",
			RenderProgressBar(float64(c.runsDone)/float64(m.runsTotal), 20),
			c.runsDone, m.runsTotal)
	case stateDone:
		status = statusOK.Render("✓")
		detail = fmt.Sprintf("%d runs", c.runsDone)
		if c.failedRuns > 0 {
			detail += statusWarning.Render(fmt.Sprintf("  (%d failed)", c.failedRuns))
		}
	case stateFailed:
		status = statusError.Render("✗")
		detail = statusError.Render(c.failureReason)
	}

	return fmt.Sprintf("  %s %s  %s\n", status, labelStyle.Render(c.label), detail)
}
