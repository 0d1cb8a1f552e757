package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// ErrorClassificator classifies driver errors so repositories can decide
// between retrying, mapping to a domain error and giving up.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// SessionRepository persists opaque tokens. Only the keyed hash of a token
// is ever stored.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, tokenHash string) (models.Session, error)
	DeleteSession(ctx context.Context, tokenHash string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// CategoryRepository stores user categories.
//
// GetCategoryByID is not scoped to a user: ownership is decided by the
// caller so a foreign category can be told apart from a missing one.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	CreateCategories(ctx context.Context, categories []models.Category) ([]models.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, categoryID int64) (models.Category, error)
}

// NoteRepository stores notes. Every method is keyed by the owner, so a
// note of another user behaves exactly like a missing note.
type NoteRepository interface {
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	GetNote(ctx context.Context, userID, noteID int64) (models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID int64) error
}
