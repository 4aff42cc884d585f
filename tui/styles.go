package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#7C3AED")
	accentColor  = lipgloss.Color("#F59E0B")
	textColor    = lipgloss.Color("#CDD6F4")
	dimTextColor = lipgloss.Color("#6C7086")
	errorColor   = lipgloss.Color("#F38BA8")

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(textColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	volumeStyle = lipgloss.NewStyle().
			Foreground(accentColor)
)
