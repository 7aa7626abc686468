package app

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, readable on dark terminals.
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Vivid Purple
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorAccent  = lipgloss.Color("#F97316") // Orange
	colorDim     = lipgloss.Color("#94A3B8") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	styleGood = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleBad = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	styleHint = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	stylePrompt = lipgloss.NewStyle().
			Foreground(colorPrimary)
)
