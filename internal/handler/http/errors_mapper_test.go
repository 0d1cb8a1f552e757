package http

import (
	"github.com/MKhiriev/go-note-keeper/internal/app"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"field errors", validators.NewFieldError("title", "This field is required.", nil), http.StatusBadRequest},
		{"category not owned", validators.NewFieldError(validators.FieldCategoryID, validators.MsgCategoryNotOwned, validators.ErrCategoryNotOwned), http.StatusBadRequest},
		{"malformed body", malformed(errors.New("unexpected EOF")), http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest},
		{"duplicate email", fmt.Errorf("create: %w", store.ErrEmailAlreadyExists), http.StatusBadRequest},
		{"missing header", ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{"bad header", utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
		{"expired token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"deleted user", fmt.Errorf("get: %w", store.ErrUserNotFound), http.StatusUnauthorized},
		{"note not found", fmt.Errorf("get: %w", store.ErrNoteNotFound), http.StatusNotFound},
		{"bad note id", ErrInvalidNoteID, http.StatusNotFound},
		{"query failure", fmt.Errorf("list: %w", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestErrorResponse(t *testing.T) {
	t.Run("field errors are copied", func(t *testing.T) {
		err := validators.NewFieldError("name", "Category with this name already exists.", store.ErrCategoryAlreadyExists)

		resp := errorResponse(http.StatusBadRequest, err)

		assert.Equal(t, models.ErrorKindValidation, resp.Kind)
		assert.Equal(t, map[string][]string{"name": {"Category with this name already exists."}}, resp.Errors)
	})

	t.Run("duplicate email is reported on the email field", func(t *testing.T) {
		resp := errorResponse(http.StatusBadRequest, store.ErrEmailAlreadyExists)

		assert.Equal(t, []string{app.MsgEmailAlreadyExists}, resp.Errors["email"])
	})

	t.Run("internal errors do not leak details", func(t *testing.T) {
		resp := errorResponse(http.StatusInternalServerError, errors.New("pq: password authentication failed"))

		assert.Equal(t, models.ErrorResponse{Kind: models.ErrorKindInternal, Message: app.MsgInternalServerError}, resp)
	})

	t.Run("not found", func(t *testing.T) {
		resp := errorResponse(http.StatusNotFound, store.ErrNoteNotFound)

		assert.Equal(t, models.ErrorKindNotFound, resp.Kind)
		assert.Empty(t, resp.Errors)
	})
}
