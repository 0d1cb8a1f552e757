package models

import "time"

// Note is a titled text record owned by a user and bound to exactly one
// category of the same user.
type Note struct {
	// ID is the server-assigned identifier of the note.
	ID int64 `json:"id"`

	// UserID is the owner of the note. It is never exposed to clients.
	UserID int64 `json:"-"`

	Title string `json:"title"`
	Body  string `json:"body"`

	// CategoryID references the category the note belongs to.
	// Clients see the embedded Category instead.
	CategoryID int64 `json:"-"`

	// Category is the embedded short form of the referenced category.
	Category CategoryRef `json:"category"`

	// CreatedAt is set once, when the note is created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteFilter describes a scoped list query over notes.
//
// UserID is mandatory: every query built from a filter is restricted to
// notes of that user before any other predicate is applied. The remaining
// fields are optional and combined with logical AND.
type NoteFilter struct {
	// UserID is the requesting user.
	UserID int64

	// Category matches the category name exactly, ignoring case.
	Category string

	// Search matches a case-insensitive substring of the title or body.
	Search string

	// DateFrom and DateTo bound UpdatedAt; both ends are inclusive days.
	DateFrom *time.Time
	DateTo   *time.Time
}

// NotePatch is a partial note update: only non-nil fields are changed.
type NotePatch struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Body       *string `json:"body,omitempty" validate:"omitempty,min=1"`
	CategoryID *int64  `json:"category_id,omitempty" validate:"omitempty,gt=0"`
}

// IsEmpty reports whether the patch changes nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Body == nil && p.CategoryID == nil
}

// Apply copies the non-nil fields of p onto note.
func (p NotePatch) Apply(note *Note) {
	if p.Title != nil {
		note.Title = *p.Title
	}
	if p.Body != nil {
		note.Body = *p.Body
	}
	if p.CategoryID != nil {
		note.CategoryID = *p.CategoryID
	}
}
