package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	noteFieldTitle = iota
	noteFieldBody
	noteFieldCategory
	noteFieldsCount
)

// noteFormModel edits a new or an existing note. The category is picked from
// the user's categories with left/right.
type noteFormModel struct {
	editing  bool
	original models.Note

	title       textinput.Model
	body        textarea.Model
	categories  []models.Category
	categoryIdx int

	focus      int
	submitting bool
	errMsg     string
}

func newNoteFormModel(categories []models.Category) noteFormModel {
	title := textinput.New()
	title.Placeholder = "заголовок"
	title.CharLimit = 200
	title.Width = 60
	title.Focus()

	body := textarea.New()
	body.Placeholder = "текст заметки"
	body.SetWidth(60)
	body.SetHeight(8)
	body.ShowLineNumbers = false

	return noteFormModel{
		title:      title,
		body:       body,
		categories: categories,
	}
}

func newEditNoteFormModel(note models.Note, categories []models.Category) noteFormModel {
	m := newNoteFormModel(categories)
	m.editing = true
	m.original = note
	m.title.SetValue(note.Title)
	m.body.SetValue(note.Body)
	for i, c := range categories {
		if c.ID == note.Category.ID {
			m.categoryIdx = i
			break
		}
	}
	return m
}

func (m noteFormModel) Update(msg tea.Msg) (noteFormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			m.setFocus((m.focus + 1) % noteFieldsCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus - 1 + noteFieldsCount) % noteFieldsCount)
			return m, nil
		}

		if m.focus == noteFieldCategory {
			switch keyMsg.String() {
			case "left", "h":
				m.shiftCategory(-1)
			case "right", "l", " ":
				m.shiftCategory(1)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case noteFieldTitle:
		m.title, cmd = m.title.Update(msg)
	case noteFieldBody:
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m *noteFormModel) setFocus(field int) {
	m.title.Blur()
	m.body.Blur()
	m.focus = field

	switch field {
	case noteFieldTitle:
		m.title.Focus()
	case noteFieldBody:
		m.body.Focus()
	}
}

func (m *noteFormModel) shiftCategory(delta int) {
	if len(m.categories) == 0 {
		return
	}
	m.categoryIdx = (m.categoryIdx + delta + len(m.categories)) % len(m.categories)
}

func (m noteFormModel) selectedCategory() (models.Category, bool) {
	if m.categoryIdx < 0 || m.categoryIdx >= len(m.categories) {
		return models.Category{}, false
	}
	return m.categories[m.categoryIdx], true
}

// request builds the full note body from the form.
func (m noteFormModel) request() models.NoteRequest {
	req := models.NoteRequest{
		Title: strings.TrimSpace(m.title.Value()),
		Body:  strings.TrimSpace(m.body.Value()),
	}
	if category, ok := m.selectedCategory(); ok {
		req.CategoryID = category.ID
	}
	return req
}

// patch holds only the fields that differ from the edited note.
func (m noteFormModel) patch() models.NotePatch {
	req := m.request()

	var patch models.NotePatch
	if req.Title != m.original.Title {
		patch.Title = &req.Title
	}
	if req.Body != m.original.Body {
		patch.Body = &req.Body
	}
	if req.CategoryID != 0 && req.CategoryID != m.original.Category.ID {
		patch.CategoryID = &req.CategoryID
	}
	return patch
}

// validate mirrors the server rules so that obvious mistakes skip a round trip.
func (m noteFormModel) validate() string {
	req := m.request()
	switch {
	case req.Title == "":
		return "Заголовок обязателен"
	case req.Body == "":
		return "Текст обязателен"
	case req.CategoryID == 0:
		return "Выберите категорию (C: создать)"
	}
	return ""
}

func (m noteFormModel) View() string {
	var b strings.Builder

	b.WriteString(formLine("Заголовок", m.title.View()))
	b.WriteString("\n")
	b.WriteString(m.body.View())
	b.WriteString("\n\n")

	category := "-"
	if c, ok := m.selectedCategory(); ok {
		category = categoryBadge(c.Name, c.Color)
	}
	if m.focus == noteFieldCategory {
		category = "< " + category + " >"
	}
	b.WriteString(formLine("Категория", category))

	if m.submitting {
		b.WriteString("\n[Сохранение...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

type categoryFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newCategoryFormModel() categoryFormModel {
	name := textinput.New()
	name.Placeholder = "название"
	name.CharLimit = 100
	name.Width = 40
	name.Focus()

	color := textinput.New()
	color.Placeholder = "#RRGGBB (необязательно)"
	color.CharLimit = 9
	color.Width = 40

	return categoryFormModel{inputs: []textinput.Model{name, color}}
}

func (m categoryFormModel) Update(msg tea.Msg) (categoryFormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			m.focus = moveFocus(m.inputs, m.focus, 1)
			return m, nil
		case "shift+tab":
			m.focus = moveFocus(m.inputs, m.focus, -1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m categoryFormModel) values() (name, color string) {
	return strings.TrimSpace(m.inputs[0].Value()), strings.TrimSpace(m.inputs[1].Value())
}

func (m categoryFormModel) View() string {
	var b strings.Builder
	b.WriteString(formLine("Название", m.inputs[0].View()))
	b.WriteString(formLine("Цвет", m.inputs[1].View()))

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	}
	return strings.TrimRight(b.String(), "\n")
}
