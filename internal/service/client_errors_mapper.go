// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"slices"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Field-level details survive as [*validators.FieldErrors].
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if apiErr.Message == app.MsgInvalidCredentials {
			return ErrInvalidCredentials
		}
		if len(apiErr.Errors) == 0 {
			return validators.NewFieldError(validators.NonFieldErrorsKey, apiErr.Message, ErrInvalidDataProvided)
		}

		fieldErrs := &validators.FieldErrors{Fields: apiErr.Errors}
		switch {
		case slices.Contains(apiErr.Errors["email"], app.MsgEmailAlreadyExists):
			fieldErrs.Cause = store.ErrEmailAlreadyExists
		case slices.Contains(apiErr.Errors[validators.FieldCategoryID], validators.MsgCategoryNotOwned):
			fieldErrs.Cause = validators.ErrCategoryNotOwned
		case len(apiErr.Errors[validators.FieldCategoryID]) > 0:
			fieldErrs.Cause = validators.ErrCategoryNotFound
		}
		return fieldErrs

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrNoteNotFound

	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerFailure
	}

	return err
}
