package models

// AuthResponse is returned by sign-up and login.
type AuthResponse struct {
	// Token is the credential to send as "Authorization: Bearer <token>".
	Token string `json:"token"`

	// User holds the public part of the account.
	User User `json:"user"`
}

// ErrorKind is a machine-distinguishable class of failure.
type ErrorKind string

const (
	ErrorKindValidation      ErrorKind = "validation_error"
	ErrorKindUnauthenticated ErrorKind = "unauthenticated"
	ErrorKindNotFound        ErrorKind = "not_found"
	ErrorKindInternal        ErrorKind = "internal_error"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	// Kind classifies the failure.
	Kind ErrorKind `json:"kind"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Errors holds field-level messages for validation failures.
	Errors map[string][]string `json:"errors,omitempty"`
}
