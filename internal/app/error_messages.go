// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the notes server and
// its terminal client.
//
// All Msg* constants are written into the "message" or "errors" parts of
// JSON error bodies. The server renders them and the client matches on them,
// so both sides must agree on the exact wording.
package app

const (
	// MsgInvalidInput is the message of every validation_error that carries
	// field-level details.
	MsgInvalidInput = "Invalid input."

	// MsgMalformedBody is returned when the request body is not a single
	// JSON value of the expected shape.
	MsgMalformedBody = "Malformed JSON request body."

	// MsgInvalidCredentials is returned by login for an unknown email and for
	// a wrong password alike.
	MsgInvalidCredentials = "invalid credentials"

	// MsgUnableToLogIn is the non-field detail of [MsgInvalidCredentials].
	MsgUnableToLogIn = "Unable to log in with provided credentials."

	// MsgEmailAlreadyExists is reported on the email field when sign-up uses
	// an email that is already registered.
	MsgEmailAlreadyExists = "user with this email already exists."

	// MsgNotAuthenticated is returned when a protected route is called
	// without an "Authorization" header.
	MsgNotAuthenticated = "Authentication credentials were not provided."

	// MsgInvalidToken is returned for malformed, unknown, revoked or expired
	// tokens.
	MsgInvalidToken = "Invalid token."

	// MsgNotFound is returned for unknown routes and for notes that do not
	// exist or belong to another user.
	MsgNotFound = "Not found."

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "A server error occurred."
)
