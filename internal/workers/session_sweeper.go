// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// SessionSweeper periodically deletes expired opaque-token sessions.
// Expired sessions are already rejected on use; sweeping only keeps the
// sessions table from growing.
type SessionSweeper struct {
	sessions store.SessionRepository
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

func NewSessionSweeper(sessions store.SessionRepository, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	deleted, err := s.sessions.DeleteExpiredSessions(ctx, s.now().UTC())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Msg("error deleting expired sessions")
		}
		return
	}

	if deleted > 0 {
		s.logger.Debug().Int64("deleted", deleted).Msg("expired sessions deleted")
	}
}
