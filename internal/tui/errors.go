// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

var ErrUserQuit = errors.New("вышел из программы")

// humanizeError turns a client service error into a line for the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var fieldErrs *validators.FieldErrors
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Неверный email или пароль"
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return "Пользователь с таким email уже существует"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid), errors.Is(err, service.ErrNotSignedIn):
		return "Сессия истекла, войдите снова"
	case errors.Is(err, store.ErrNoteNotFound):
		return "Заметка не найдена"
	case errors.Is(err, validators.ErrNoFieldsToUpdate):
		return "Нет изменений для сохранения"
	case errors.Is(err, service.ErrServerFailure):
		return "Ошибка на сервере, попробуйте позже"
	case errors.As(err, &fieldErrs) && len(fieldErrs.Fields) > 0:
		return formatFieldErrors(fieldErrs)
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Заполните обязательные поля"
	}

	return humanizeServerUnavailableError(err)
}

func formatFieldErrors(fieldErrs *validators.FieldErrors) string {
	parts := make([]string, 0, len(fieldErrs.Fields))
	for _, field := range slices.Sorted(maps.Keys(fieldErrs.Fields)) {
		msg := strings.Join(fieldErrs.Fields[field], " ")
		if field == validators.NonFieldErrorsKey {
			parts = append(parts, msg)
			continue
		}
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}

// isSessionLost reports whether err means the token is no longer accepted.
func isSessionLost(err error) bool {
	return errors.Is(err, service.ErrTokenIsExpiredOrInvalid) || errors.Is(err, service.ErrNotSignedIn)
}
