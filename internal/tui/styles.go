package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent      = lipgloss.Color("#8BC34A")
	destructive = lipgloss.Color("#e53935")
	muted       = lipgloss.Color("#7f8c8d")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1)

	labelStyle        = lipgloss.NewStyle().Width(labelWidth).Foreground(muted)
	focusedLabelStyle = lipgloss.NewStyle().Width(labelWidth).Bold(true).Foreground(accent)

	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	exceededStyle = lipgloss.NewStyle().Foreground(destructive)
	errorStyle    = lipgloss.NewStyle().Foreground(destructive).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(muted).MarginTop(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)
)

const labelWidth = 26
