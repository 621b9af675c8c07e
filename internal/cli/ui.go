package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("35")
	colorRed    = lipgloss.Color("167")
	colorCyan   = lipgloss.Color("36")
	colorYellow = lipgloss.Color("220")
)

var (
	// stylePass and styleFail render verification verdicts.
	stylePass = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleFail = lipgloss.NewStyle().Bold(true).Foreground(colorRed)

	// styleValue renders computed numbers, styleWarn advisory notes.
	styleValue = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarn  = lipgloss.NewStyle().Foreground(colorYellow)
)
