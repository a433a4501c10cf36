package presentation

import "github.com/charmbracelet/lipgloss"

// Output styles. lipgloss degrades these to plain text when the writer is
// not a terminal, so piped output stays clean.
var (
	// KindStyle for token kind tags.
	KindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	// PositionStyle for line:start-end position columns.
	PositionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	// ErrorStyle for diagnostic headers.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	// CaretStyle for the marker pointing into the offending line.
	CaretStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)
