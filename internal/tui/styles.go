package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// categoryBadge renders name in the category color. Colors that lipgloss
// cannot parse fall back to the terminal default.
func categoryBadge(name, color string) string {
	if name == "" {
		return ""
	}
	style := lipgloss.NewStyle().Bold(true)
	if len(color) >= 7 {
		style = style.Foreground(lipgloss.Color(color[:7]))
	}
	return style.Render("■ " + name)
}
