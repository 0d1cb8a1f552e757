package tui

import "strings"

// errorOverlay holds the message of a failed action until the user
// dismisses it with enter or esc.
type errorOverlay struct {
	message string
}

func (o errorOverlay) View() string {
	return renderOverlay(errorStyle.Render("Ошибка"), o.message, "enter / esc закрыть")
}

// renderConfirm asks a yes/no question answered with "y" or "n".
func renderConfirm(question string) string {
	return renderOverlay("", question, "y да    n нет")
}

func renderOverlay(title, body, hints string) string {
	parts := make([]string, 0, 3)
	if title != "" {
		parts = append(parts, title)
	}
	parts = append(parts, body, helpStyle.Render(hints))
	return overlayBoxStyle.Render(strings.Join(parts, "\n\n"))
}
