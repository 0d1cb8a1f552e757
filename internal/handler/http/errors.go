// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP layer. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMalformedBody is returned when a request body is missing or is not
	// a single JSON value of the expected shape.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrInvalidNoteID is returned when the {id} path segment is not a
	// positive integer. It renders as not found.
	ErrInvalidNoteID = errors.New("invalid note id")

	// ErrRouteNotFound is returned for unknown routes.
	ErrRouteNotFound = errors.New("route not found")
)
