package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// errorStatusMap maps sentinel errors to HTTP statuses. An error matching
// several entries always matches entries with the same status.
var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrMalformedBody:                    http.StatusBadRequest,
	ErrInvalidNoteID:                    http.StatusNotFound,
	ErrRouteNotFound:                    http.StatusNotFound,

	validators.ErrValidation:    http.StatusBadRequest,
	validators.ErrInvalidUserID: http.StatusUnauthorized,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:    http.StatusBadRequest,
	store.ErrCategoryAlreadyExists: http.StatusBadRequest,
	store.ErrNoteNotFound:          http.StatusNotFound,
	store.ErrUserNotFound:          http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse renders err as the body sent for status.
func errorResponse(status int, err error) models.ErrorResponse {
	switch status {
	case http.StatusUnauthorized:
		resp := models.ErrorResponse{Kind: models.ErrorKindUnauthenticated, Message: app.MsgInvalidToken}
		if errors.Is(err, ErrEmptyAuthorizationHeader) {
			resp.Message = app.MsgNotAuthenticated
		}
		return resp

	case http.StatusNotFound:
		return models.ErrorResponse{Kind: models.ErrorKindNotFound, Message: app.MsgNotFound}

	case http.StatusBadRequest:
		resp := models.ErrorResponse{Kind: models.ErrorKindValidation, Message: app.MsgInvalidInput}

		var fieldErrs *validators.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			resp.Errors = fieldErrs.Fields
		case errors.Is(err, service.ErrInvalidCredentials):
			resp.Message = app.MsgInvalidCredentials
			resp.Errors = map[string][]string{validators.NonFieldErrorsKey: {app.MsgUnableToLogIn}}
		case errors.Is(err, store.ErrEmailAlreadyExists):
			resp.Errors = map[string][]string{"email": {app.MsgEmailAlreadyExists}}
		case errors.Is(err, ErrMalformedBody):
			resp.Message = app.MsgMalformedBody
		}
		return resp

	default:
		return models.ErrorResponse{Kind: models.ErrorKindInternal, Message: app.MsgInternalServerError}
	}
}

// writeError logs err and sends it as a JSON [models.ErrorResponse].
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, errorResponse(status, err), status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}
