package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) SignUp(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	auth, err := a.adapter.SignUp(ctx, models.SignUpRequest{Email: email, Password: password})
	if err != nil {
		return models.User{}, fmt.Errorf("sign up: %w", mapAdapterError(err))
	}

	a.logger.Info().Int64("user_id", auth.User.UserID).Msg("signed up")
	return auth.User, nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	auth, err := a.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", mapAdapterError(err))
	}

	a.logger.Info().Int64("user_id", auth.User.UserID).Msg("logged in")
	return auth.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if !a.SignedIn() {
		return nil
	}

	if err := a.adapter.Logout(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server rejected logout, local session dropped")
		return fmt.Errorf("logout: %w", mapAdapterError(err))
	}
	return nil
}

func (a *clientAuthService) CurrentUser(ctx context.Context) (models.User, error) {
	if !a.SignedIn() {
		return models.User{}, ErrNotSignedIn
	}

	user, err := a.adapter.Me(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("current user: %w", mapAdapterError(err))
	}
	return user, nil
}

func (a *clientAuthService) DeleteAccount(ctx context.Context) error {
	if !a.SignedIn() {
		return ErrNotSignedIn
	}

	if err := a.adapter.DeleteAccount(ctx); err != nil {
		return fmt.Errorf("delete account: %w", mapAdapterError(err))
	}

	a.logger.Info().Msg("account deleted")
	return nil
}

func (a *clientAuthService) SignedIn() bool {
	return a.adapter.Token() != ""
}
