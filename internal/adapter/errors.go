package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
	ErrEmptyServerURL      = errors.New("empty server url")
	ErrInvalidServerURL    = errors.New("invalid server url")
)

// APIError is a failed response decoded from the server's JSON error body.
//
// It unwraps to one of the status sentinels above so callers can branch with
// [errors.Is] and still reach the field-level details through [errors.As].
type APIError struct {
	StatusCode int
	Kind       models.ErrorKind
	Message    string
	Errors     map[string][]string

	sentinel error
}

// NewAPIError builds the error for a response with status and decoded body.
func NewAPIError(status int, body models.ErrorResponse) *APIError {
	return &APIError{
		StatusCode: status,
		Kind:       body.Kind,
		Message:    body.Message,
		Errors:     body.Errors,
		sentinel:   sentinelForStatus(status),
	}
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %v", e.StatusCode, e.sentinel)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}
