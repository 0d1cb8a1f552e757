// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App]. *tui.TUI implements it.
type UI interface {
	// AuthFlow blocks until the user signs in or quits with [tui.ErrUserQuit].
	AuthFlow(ctx context.Context, notice string) (models.User, error)

	// MainLoop blocks until the user leaves the notes screen.
	MainLoop(ctx context.Context, user models.User) (tui.MainLoopResult, error)
}
