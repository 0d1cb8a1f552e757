package tui

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel routes between the menu, login and sign-up pages and ends the
// program once a [LoginResult] without error arrives. ctrl+c quits from any
// page; "v" on the menu toggles the build info window.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	// probe asks the server for its version so the menu can tell whether
	// the server is reachable before the user types credentials.
	probe tea.Cmd

	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool

	quitByUser bool
	resultUser models.User
}

// NewRootModel opens startPage. probe may be nil.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, probe tea.Cmd) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		probe:     probe,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	var initPage tea.Cmd
	if r.current != nil {
		initPage = r.current.Init()
	}
	return tea.Batch(initPage, r.probe)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if model, cmd, handled := r.handleKey(msg); handled {
			return model, cmd
		}

	case NavigateTo:
		next, ok := r.pages[msg.Page]
		if !ok {
			return r, nil
		}
		r.showBuildInfo = false
		r.current = next
		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()

	case LoginResult:
		if msg.Err == nil {
			r.resultUser = msg.User
			return r, tea.Quit
		}

	case serverVersionMsg:
		if msg.err == nil {
			r.serverVersion = msg.version
		}
		// the menu renders the server status as well
		if menu, ok := r.pages[pageMenu]; ok {
			updated, cmd := menu.Update(msg)
			r.pages[pageMenu] = updated
			if r.isMenuPage() {
				r.current = updated
			}
			return r, cmd
		}
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// handleKey deals with the keys RootModel owns. handled is false when the
// key belongs to the current page.
func (r RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		r.quitByUser = true
		return r, tea.Quit, true
	case "v":
		if r.isMenuPage() {
			r.showBuildInfo = !r.showBuildInfo
			return r, nil, true
		}
	case "esc":
		if r.showBuildInfo {
			r.showBuildInfo = false
			return r, nil, true
		}
	}

	// the build info window swallows everything else
	return r, nil, r.showBuildInfo
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	case r.current == nil:
		return renderPage("ЗАМЕТКИ", "", "")
	default:
		return r.current.View()
	}
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func cmdServerVersion(ctx context.Context, a adapter.ServerAdapter) tea.Cmd {
	return func() tea.Msg {
		version, err := a.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
