package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Output styles shared by the decode, encode, and calendars commands.
var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B5CF6")).
			Bold(true)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	datetimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)
