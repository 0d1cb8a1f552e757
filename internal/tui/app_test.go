package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T) (RootModel, *mock.MockServerAdapter) {
	t.Helper()
	ctx := context.Background()
	mockAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	services := service.NewClientServices(mockAdapter, logger.Nop())

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, services.AuthService),
		pageRegister: NewRegisterModel(ctx, services.AuthService),
	}
	info := models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123")
	return NewRootModel(pages, pageMenu, info, cmdServerVersion(ctx, mockAdapter)), mockAdapter
}

func update(t *testing.T, r RootModel, msgs ...tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = r.Update(msg)
		r = next.(RootModel)
	}
	return r, cmd
}

func TestRootModel_ProbeShowsServerVersion(t *testing.T) {
	r, mockAdapter := newTestRoot(t)
	mockAdapter.EXPECT().ServerVersion(gomock.Any()).Return("2.0.0", nil)

	r, _ = update(t, r, r.probe())

	assert.Equal(t, "2.0.0", r.serverVersion)
	assert.Contains(t, r.View(), "версия 2.0.0")

	r, _ = update(t, r, runes("v"))
	require.True(t, r.showBuildInfo)
	view := r.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "Версия сервера: 2.0.0")

	r, _ = update(t, r, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, r.showBuildInfo)
}

func TestRootModel_ProbeFailureIsShownOnMenu(t *testing.T) {
	r, mockAdapter := newTestRoot(t)
	mockAdapter.EXPECT().ServerVersion(gomock.Any()).Return("", errors.New("dial tcp 127.0.0.1:8080: connection refused"))

	r, _ = update(t, r, r.probe())

	assert.Empty(t, r.serverVersion)
	assert.Contains(t, r.View(), "Сервер недоступен")
}

func TestRootModel_MenuNavigation(t *testing.T) {
	r, _ := newTestRoot(t)

	r, cmd := update(t, r, runes("2"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageRegister}, cmd())

	r, _ = update(t, r, cmd())
	_, onRegister := r.current.(*RegisterModel)
	assert.True(t, onRegister)

	// "v" is plain input outside the menu
	r, _ = update(t, r, runes("v"))
	assert.False(t, r.showBuildInfo)
}

func TestRootModel_UnknownPageIgnored(t *testing.T) {
	r, _ := newTestRoot(t)

	r, cmd := update(t, r, NavigateTo{Page: "nowhere"})

	assert.Nil(t, cmd)
	assert.True(t, r.isMenuPage())
}

func TestRootModel_LoginResultFinishesFlow(t *testing.T) {
	r, _ := newTestRoot(t)
	user := models.User{UserID: 7, Email: "me@example.com"}

	r, _ = update(t, r, LoginResult{Err: errors.New("boom")})
	assert.Zero(t, r.resultUser)

	r, cmd := update(t, r, LoginResult{User: user})
	assert.Equal(t, user, r.resultUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	r, _ := newTestRoot(t)

	r, cmd := update(t, r, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, r.quitByUser)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestMenuModel_SessionNotice(t *testing.T) {
	m := NewMenuModel()

	next, _ := m.Update(sessionNotice("Сессия истекла"))
	assert.Contains(t, next.View(), "Сессия истекла")

	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageLogin}, cmd())
	assert.NotContains(t, next.View(), "Сессия истекла")
}
