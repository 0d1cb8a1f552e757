package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	label string
	page  string
}

// MenuModel is the first page of the auth flow.
type MenuModel struct {
	items []menuItem
	idx   int

	// status is a one-off notice such as "session expired".
	status string
	// server describes reachability as reported by the version probe.
	server string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{label: "Войти", page: pageLogin},
			{label: "Зарегистрироваться", page: pageRegister},
		},
		server: "Сервер: проверка соединения...",
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionNotice:
		m.status = string(msg)
		return m, nil

	case serverVersionMsg:
		if msg.err != nil {
			m.server = "Сервер: " + humanizeError(msg.err)
		} else {
			m.server = "Сервер: версия " + msg.version
		}
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "up", "k":
			m.idx = max(m.idx-1, 0)
		case "down", "j":
			m.idx = min(m.idx+1, len(m.items)-1)
		case "1", "2":
			m.idx = int(key[0]-'1') % len(m.items)
			return m, m.open()
		case "enter":
			return m, m.open()
		}
	}

	return m, nil
}

func (m *MenuModel) open() tea.Cmd {
	m.status = ""
	page := m.items[m.idx].page
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		line := fmt.Sprintf("%d. %s", i+1, item.label)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.server))

	return renderPage("ЗАМЕТКИ", b.String(), "enter/1-2: выбрать │ ↑/↓: навигация │ v: версия │ ctrl+c: выход")
}
