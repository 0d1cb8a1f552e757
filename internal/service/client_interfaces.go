package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// ClientAuthService defines the client-side account operations. A successful
// SignUp or Login leaves the session token inside the server adapter so the
// other client services can use it.
type ClientAuthService interface {
	SignUp(ctx context.Context, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)

	// Logout revokes the current token. The local session is dropped even
	// when the server call fails.
	Logout(ctx context.Context) error

	// CurrentUser asks the server who the current token belongs to.
	CurrentUser(ctx context.Context) (models.User, error)

	DeleteAccount(ctx context.Context) error

	// SignedIn reports whether a token is held.
	SignedIn() bool
}

type ClientCategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name, color string) (models.Category, error)
}

// ClientNoteService defines the client-side note operations of the signed-in
// user.
type ClientNoteService interface {
	List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error)
	Get(ctx context.Context, noteID int64) (models.Note, error)
	Create(ctx context.Context, req models.NoteRequest) (models.Note, error)
	Update(ctx context.Context, noteID int64, req models.NoteRequest) (models.Note, error)

	// Patch changes only the set fields of patch. An empty patch is rejected
	// locally without a server round trip.
	Patch(ctx context.Context, noteID int64, patch models.NotePatch) (models.Note, error)

	Delete(ctx context.Context, noteID int64) error
}

// NotesRefresh is one result of a background note list refresh.
type NotesRefresh struct {
	Notes []models.Note
	Err   error
}

// ClientRefreshJob defines the contract for a background worker that
// periodically reloads the note list for the current filter.
type ClientRefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// SetFilter replaces the filter used by the following refreshes.
	SetFilter(filter models.NoteFilter)

	// Updates delivers refresh results. Results are dropped while nobody reads.
	Updates() <-chan NotesRefresh
}
