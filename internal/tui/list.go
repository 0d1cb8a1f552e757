package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type listModel struct {
	notes      []models.Note
	categories []models.Category
	idx        int

	// categoryIdx indexes categories; -1 means all categories.
	categoryIdx int
	search      string

	loading bool
	spinner spinner.Model
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true, categoryIdx: -1}
}

func (m listModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m listModel) filter() models.NoteFilter {
	filter := models.NoteFilter{Search: m.search}
	if m.categoryIdx >= 0 && m.categoryIdx < len(m.categories) {
		filter.Category = m.categories[m.categoryIdx].Name
	}
	return filter
}

// nextCategory cycles the category filter: all, then each category in turn.
func (m *listModel) nextCategory() {
	m.categoryIdx++
	if m.categoryIdx >= len(m.categories) {
		m.categoryIdx = -1
	}
}

func (m *listModel) setNotes(notes []models.Note) {
	var selected int64
	if note, ok := m.current(); ok {
		selected = note.ID
	}

	m.notes = notes
	m.loading = false
	m.idx = 0
	for i, note := range notes {
		if note.ID == selected {
			m.idx = i
			break
		}
	}
}

func (m *listModel) move(delta int) {
	m.idx += delta
	if m.idx < 0 {
		m.idx = 0
	}
	if m.idx > len(m.notes)-1 {
		m.idx = max(len(m.notes)-1, 0)
	}
}

func (m listModel) View() string {
	var b strings.Builder

	filter := m.filter()
	category := "все"
	if filter.Category != "" {
		category = filter.Category
	}
	b.WriteString(fmt.Sprintf("Категория: %s", category))
	if m.search != "" {
		b.WriteString(fmt.Sprintf("   Поиск: %q", m.search))
	}
	if m.loading {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.notes) == 0:
		b.WriteString("Загрузка...")
	case len(m.notes) == 0:
		b.WriteString("Нет заметок")
	default:
		for i, note := range m.notes {
			cursor := "  "
			line := fmt.Sprintf("%-32s %-24s %s",
				fitText(note.Title, 32),
				categoryBadge(note.Category.Name, note.Category.Color),
				formatTime(note.UpdatedAt),
			)
			if i == m.idx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
