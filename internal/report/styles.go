package report

import "github.com/charmbracelet/lipgloss"

// Lipgloss degrades these to the terminal's color profile.
var (
	styleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleError    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	styleWarning  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleSuccess  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleMuted    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// paint renders text in style, or returns it unchanged when colors are off.
func paint(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
