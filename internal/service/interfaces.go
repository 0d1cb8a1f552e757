package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// AuthService covers account registration, credential checks and the
// lifecycle of session tokens.
type AuthService interface {
	Register(ctx context.Context, email, password string) (models.User, models.Token, error)
	Login(ctx context.Context, email, password string) (models.User, models.Token, error)
	ResolveToken(ctx context.Context, token string) (int64, error)
	Logout(ctx context.Context, token string) error
	GetUser(ctx context.Context, userID int64) (models.User, error)
	DeleteAccount(ctx context.Context, userID int64) error
}

// TokenProvider issues and resolves session tokens. Implementations decide
// whether a token is backed by server-side state.
type TokenProvider interface {
	Issue(ctx context.Context, userID int64) (models.Token, error)
	Resolve(ctx context.Context, token string) (int64, error)
	Revoke(ctx context.Context, token string) error
}

// UserCreatedHook runs right after a user row is stored. A failing hook
// aborts the registration.
type UserCreatedHook func(ctx context.Context, user models.User) error

type CategoryService interface {
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	CreateDefaultCategories(ctx context.Context, user models.User) error
}

// NoteService manages notes of a single requesting user. Every method takes
// the requester explicitly, either as userID or as note.UserID.
type NoteService interface {
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	PatchNote(ctx context.Context, userID, noteID int64, patch models.NotePatch) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
