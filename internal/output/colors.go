package output

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4dca7d"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c800"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f46251"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// render applies a style when color output is enabled
func (s *Splog) render(style lipgloss.Style, text string) string {
	if !s.color {
		return text
	}
	return style.Render(text)
}
