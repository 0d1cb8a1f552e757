package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so callers cannot tell which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrUnknownTokenMode        = errors.New("unknown token mode")

	ErrPostRegistrationHookFailed = errors.New("post-registration hook failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrServerFailure = errors.New("server failed to process the request")
	ErrNotSignedIn   = errors.New("not signed in")
)
