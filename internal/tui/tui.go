package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// sessionNotice is shown on the menu when the auth flow is reopened.
type sessionNotice string

type TUI struct {
	services        *service.ClientServices
	buildInfo       models.AppBuildInfo
	refreshInterval time.Duration
	logger          *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, refreshInterval time.Duration, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:        services,
		buildInfo:       buildInfo,
		refreshInterval: refreshInterval,
		logger:          logger,
	}, nil
}

// AuthFlow runs the menu with the login and sign-up pages until the user is
// signed in. notice, when set, is shown on the menu.
func (t *TUI) AuthFlow(ctx context.Context, notice string) (models.User, error) {
	menu := NewMenuModel()
	menu.status = notice

	pages := map[string]tea.Model{
		pageMenu:     menu,
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo, cmdServerVersion(ctx, t.services.ServerAdapter))
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoopResult tells the caller why the main screen was closed.
type MainLoopResult struct {
	// Logout is set when the user signed out or deleted the account.
	Logout bool
	// SessionLost is set when the server stopped accepting the token.
	SessionLost bool
}

// MainLoop runs the notes screen for user with the background refresh job.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (MainLoopResult, error) {
	t.services.RefreshJob.SetFilter(models.NoteFilter{})
	t.services.RefreshJob.Start(ctx, t.refreshInterval)
	defer t.services.RefreshJob.Stop()

	model := newMainLoopModel(ctx, t.services, user, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return MainLoopResult{}, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return MainLoopResult{}, tea.ErrProgramKilled
	}

	t.logger.Debug().Bool("logout", result.logout).Bool("session_lost", result.sessionLost).Msg("main loop finished")
	return MainLoopResult{Logout: result.logout, SessionLost: result.sessionLost}, nil
}
