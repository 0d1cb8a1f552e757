package tui

import (
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to switch to Page. A non-nil Payload is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the auth flow. Sign-up produces it as well because the
// server signs new users in right away.
type LoginResult struct {
	User models.User
	Err  error
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

type categoriesLoadedMsg struct {
	categories []models.Category
	err        error
}

type noteLoadedMsg struct {
	note models.Note
	err  error
}

type noteSavedMsg struct {
	note    models.Note
	created bool
	err     error
}

type noteDeletedMsg struct {
	noteID int64
	err    error
}

type categoryCreatedMsg struct {
	category models.Category
	err      error
}

type accountDeletedMsg struct {
	err error
}

type loggedOutMsg struct{}

type serverVersionMsg struct {
	version string
	err     error
}

// refreshMsg carries a background reload of the note list.
type refreshMsg service.NotesRefresh

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
