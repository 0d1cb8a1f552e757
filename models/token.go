package models

import "time"

// Token is an issued session credential.
//
// SignedString is the opaque value handed to the client; it is the only form
// in which the credential leaves the server. Depending on the configured
// token mode it is either a random hex string whose keyed hash is persisted
// in the sessions table, or a signed JWT.
type Token struct {
	// SignedString is the value the client sends back in the
	// "Authorization" header.
	SignedString string `json:"-"`

	// UserID is the owner of the token.
	UserID int64 `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	// nil means the token never expires.
	ExpiresAt *time.Time `json:"-"`
}

// String returns the value sent to clients.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Session is the persisted form of an opaque token.
type Session struct {
	// TokenHash is the hex-encoded HMAC-SHA256 of the opaque token.
	TokenHash string

	// UserID is the owner of the session.
	UserID int64

	CreatedAt time.Time

	// ExpiresAt is nil for sessions without a lifetime.
	ExpiresAt *time.Time
}

// IsExpired reports whether the session is no longer valid at now.
func (s Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}
