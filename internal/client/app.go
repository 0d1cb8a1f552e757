package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
)

const (
	noticeLoggedOut   = "Вы вышли из аккаунта"
	noticeSessionLost = "Сессия истекла, войдите снова"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run implements [Client]. It returns nil when the user quits.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	notice := ""
	for {
		user, err := a.ui.AuthFlow(ctx, notice)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("auth flow: %w", err)
		}

		log := a.logger.WithUserID(user.UserID)
		log.Info().Msg("session started")

		result, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}

		switch {
		case result.SessionLost:
			a.services.ServerAdapter.SetToken("")
			notice = noticeSessionLost
			log.Warn().Msg("session lost")
		case result.Logout:
			notice = noticeLoggedOut
			log.Info().Msg("signed out")
		default:
			if err = a.services.AuthService.Logout(ctx); err != nil {
				log.Warn().Err(err).Msg("logout on exit failed")
			}
			return nil
		}
	}
}
