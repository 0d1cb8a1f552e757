package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

type detailModel struct {
	note models.Note
}

func (m detailModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.note.Title))
	b.WriteString("\n")
	b.WriteString(categoryBadge(m.note.Category.Name, m.note.Category.Color))
	b.WriteString("\n\n")
	b.WriteString(m.note.Body)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("Создана: %s   Изменена: %s",
		formatTime(m.note.CreatedAt), formatTime(m.note.UpdatedAt))))

	return b.String()
}
