// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// NewTokenProvider returns the [TokenProvider] selected by cfg.TokenMode.
func NewTokenProvider(cfg config.App, storages *store.Storages, logger *logger.Logger) (TokenProvider, error) {
	switch cfg.TokenMode {
	case config.TokenModeOpaque, "":
		return NewOpaqueTokenProvider(storages.SessionRepository, cfg.TokenHashKey, cfg.TokenDuration, logger), nil
	case config.TokenModeJWT:
		return NewJWTTokenProvider(storages.UserRepository, cfg.TokenSignKey, cfg.TokenIssuer, cfg.TokenDuration, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTokenMode, cfg.TokenMode)
	}
}

// opaqueTokenProvider hands out random tokens and keeps their HMAC-SHA256
// hash in the sessions table. A zero duration issues tokens that live until
// logout.
type opaqueTokenProvider struct {
	sessions store.SessionRepository
	hashKey  string
	duration time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewOpaqueTokenProvider(sessions store.SessionRepository, hashKey string, duration time.Duration, logger *logger.Logger) TokenProvider {
	return &opaqueTokenProvider{
		sessions: sessions,
		hashKey:  hashKey,
		duration: duration,
		now:      time.Now,
		logger:   logger,
	}
}

func (p *opaqueTokenProvider) Issue(ctx context.Context, userID int64) (models.Token, error) {
	token, err := utils.GenerateOpaqueToken()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	now := timestamp(p.now)
	session := models.Session{
		TokenHash: utils.HashOpaqueToken(token, p.hashKey),
		UserID:    userID,
		CreatedAt: now,
	}
	if p.duration > 0 {
		expiresAt := now.Add(p.duration)
		session.ExpiresAt = &expiresAt
	}

	if err = p.sessions.CreateSession(ctx, session); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Token{SignedString: token, UserID: userID, ExpiresAt: session.ExpiresAt}, nil
}

func (p *opaqueTokenProvider) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrTokenIsExpiredOrInvalid
	}

	session, err := p.sessions.GetSession(ctx, utils.HashOpaqueToken(token, p.hashKey))
	if errors.Is(err, store.ErrSessionNotFound) {
		return 0, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return 0, fmt.Errorf("error resolving session: %w", err)
	}

	if session.IsExpired(p.now()) {
		logger.FromContext(ctx).Debug().Int64("user_id", session.UserID).Msg("session is expired")
		return 0, ErrTokenIsExpiredOrInvalid
	}

	return session.UserID, nil
}

func (p *opaqueTokenProvider) Revoke(ctx context.Context, token string) error {
	return p.sessions.DeleteSession(ctx, utils.HashOpaqueToken(token, p.hashKey))
}

// jwtTokenProvider issues stateless HS256 tokens. Revoking is a no-op; a
// token of a deleted account is rejected on resolve.
type jwtTokenProvider struct {
	users    store.UserRepository
	signKey  string
	issuer   string
	duration time.Duration
	logger   *logger.Logger
}

func NewJWTTokenProvider(users store.UserRepository, signKey, issuer string, duration time.Duration, logger *logger.Logger) TokenProvider {
	return &jwtTokenProvider{
		users:    users,
		signKey:  signKey,
		issuer:   issuer,
		duration: duration,
		logger:   logger,
	}
}

func (p *jwtTokenProvider) Issue(_ context.Context, userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(p.issuer, userID, p.duration, p.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (p *jwtTokenProvider) Resolve(ctx context.Context, token string) (int64, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, p.signKey, p.issuer)
	if err != nil {
		return 0, ErrTokenIsExpiredOrInvalid
	}

	if _, err = p.users.GetUserByID(ctx, parsed.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return 0, ErrTokenIsExpiredOrInvalid
		}
		return 0, fmt.Errorf("error resolving token owner: %w", err)
	}

	return parsed.UserID, nil
}

func (p *jwtTokenProvider) Revoke(context.Context, string) error {
	return nil
}

// timestamp returns now in UTC at the precision both databases store.
func timestamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Microsecond)
}
