// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the notes server.
//
// [ServerAdapter] hides the REST routes behind typed methods so that the
// client services never build URLs or decode error bodies themselves. Every
// failed request is returned as an [*APIError] that unwraps to a status
// sentinel such as [ErrUnauthorized] or [ErrNotFound].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the notes server on behalf of a
// single signed-in user.
type ServerAdapter interface {
	// SetToken stores the token attached to every authenticated request.
	SetToken(token string)

	// Token returns the stored token, or "" when signed out.
	Token() string

	// SignUp creates an account and stores the issued token.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error)

	// Login signs in and stores the issued token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Logout revokes the stored token on the server and forgets it locally.
	Logout(ctx context.Context) error

	// Me returns the signed-in user.
	Me(ctx context.Context) (models.User, error)

	// DeleteAccount removes the signed-in user with all of their data.
	DeleteAccount(ctx context.Context) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error)

	// ListNotes returns the user's notes matching filter. filter.UserID is
	// ignored: the server scopes the query by the token.
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)

	GetNote(ctx context.Context, noteID int64) (models.Note, error)
	CreateNote(ctx context.Context, req models.NoteRequest) (models.Note, error)
	UpdateNote(ctx context.Context, noteID int64, req models.NoteRequest) (models.Note, error)
	PatchNote(ctx context.Context, noteID int64, patch models.NotePatch) (models.Note, error)
	DeleteNote(ctx context.Context, noteID int64) error

	// ServerVersion returns the plain-text build version of the server.
	ServerVersion(ctx context.Context) (string, error)
}
