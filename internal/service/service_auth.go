package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// dummyPassword is hashed once at construction; login attempts for unknown
// emails are compared against that hash so they take as long as real ones.
const dummyPassword = "go-note-keeper-dummy-password"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and session token
// lifecycle using a UserRepository for persistence, bcrypt for password
// hashing and a TokenProvider for the tokens themselves.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokens issues, resolves and revokes session tokens.
	tokens TokenProvider

	// bcryptCost is the work factor for new password hashes.
	bcryptCost int

	// dummyHash is the bcrypt hash of dummyPassword.
	dummyHash string

	// hooks run in order after a user is created.
	hooks []UserCreatedHook

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and TokenProvider. The hooks run synchronously after every successful
// registration; the first failing hook removes the new user again.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	tokens TokenProvider,
	cfg config.App,
	logger *logger.Logger,
	hooks ...UserCreatedHook,
) (AuthService, error) {
	dummyHash, err := utils.HashPassword(dummyPassword, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error preparing dummy password hash: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		tokens:         tokens,
		bcryptCost:     cfg.BcryptCost,
		dummyHash:      dummyHash,
		hooks:          hooks,
		now:            time.Now,
		logger:         logger,
	}, nil
}

// Register creates a new user account and issues its first token.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
//   - ErrPostRegistrationHookFailed (wrapped) if a hook failed; the user is
//     deleted in that case.
func (a *authService) Register(ctx context.Context, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid user data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    timestamp(a.now),
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	for _, hook := range a.hooks {
		if err = hook(ctx, user); err != nil {
			log.Err(err).Int64("user_id", user.UserID).Msg("post-registration hook failed, removing user")
			a.removeUser(ctx, user.UserID)
			return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrPostRegistrationHookFailed, err)
		}
	}

	token, err := a.tokens.Issue(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("creation of token failed, removing user")
		a.removeUser(ctx, user.UserID)
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// removeUser rolls back a half-finished registration. Categories go with the
// user through the cascade.
func (a *authService) removeUser(ctx context.Context, userID int64) {
	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("failed to remove user after failed registration")
	}
}

// Login authenticates an existing user and issues a new token. Previously
// issued tokens stay valid.
//
// An unknown email and a wrong password both return ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		// keep the timing of unknown emails equal to wrong passwords
		_, _ = utils.CheckPassword(a.dummyHash, password)
		log.Debug().Msg("login for unknown email")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.CheckPassword(user.PasswordHash, password)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("password check failed")
		return models.User{}, models.Token{}, fmt.Errorf("password check failed: %w", err)
	}
	if !ok {
		log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("creation of token failed")
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// ResolveToken maps a token to its user. Every rejection is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ResolveToken(ctx context.Context, token string) (int64, error) {
	userID, err := a.tokens.Resolve(ctx, token)
	if err != nil {
		return 0, err
	}
	if userID <= 0 {
		return 0, ErrTokenIsExpiredOrInvalid
	}

	return userID, nil
}

func (a *authService) Logout(ctx context.Context, token string) error {
	if err := a.tokens.Revoke(ctx, token); err != nil {
		return fmt.Errorf("error revoking token: %w", err)
	}
	return nil
}

func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user %d: %w", userID, err)
	}
	return user, nil
}

// DeleteAccount removes the user. Sessions, categories and notes are
// removed with it.
func (a *authService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := a.userRepository.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}
	return nil
}
