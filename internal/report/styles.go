// Package report renders the comparison for the terminal and exports it
// as JSON. It only consumes the engine's output structures.
package report

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan    = lipgloss.Color("#06B6D4")
	colorMagenta = lipgloss.Color("#D946EF")
	colorGreen   = lipgloss.Color("#10B981")
	colorYellow  = lipgloss.Color("#F59E0B")
	colorRed     = lipgloss.Color("#EF4444")
	colorDim     = lipgloss.Color("#6B7280")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	timeHeaderStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	memHeaderStyle = lipgloss.NewStyle().
			Foreground(colorMagenta).
			Bold(true)

	winnerStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	failStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	barStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	barWinnerStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
