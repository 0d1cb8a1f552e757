package models

// SignUpRequest is the body of POST /auth/signup.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /auth/login.
//
// The email is deliberately not format-checked: any mismatch is reported as
// invalid credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateCategoryRequest is the body of POST /categories.
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"omitempty,notecolor"`
}

// NoteRequest is the body of POST /notes and PUT /notes/{id}.
// PUT replaces every field.
type NoteRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	Body       string `json:"body" validate:"required"`
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
}

// ToNote converts the request into a note owned by userID.
func (r NoteRequest) ToNote(userID int64) Note {
	return Note{
		UserID:     userID,
		Title:      r.Title,
		Body:       r.Body,
		CategoryID: r.CategoryID,
	}
}
