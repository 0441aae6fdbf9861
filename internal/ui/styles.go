// Package ui provides the live event viewer for the glazier CLI
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary = lipgloss.Color("39")  // Bright blue
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorError   = lipgloss.Color("196") // Red
	ColorText    = lipgloss.Color("252") // Light gray
	ColorSubtle  = lipgloss.Color("241") // Medium gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SourceStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Width(14)

	KindStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Width(26)

	DetailStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)
