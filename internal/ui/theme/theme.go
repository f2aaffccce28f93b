package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary = lipgloss.Color("#6366F1") // Indigo
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Accent  = lipgloss.Color("#F59E0B") // Amber
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Correct = lipgloss.NewStyle().
		Bold(true).
		Foreground(Success)

	Wrong = lipgloss.NewStyle().
		Bold(true).
		Foreground(Error)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
