package utils

import "github.com/google/uuid"

const maxTraceIDLen = 64

// NewTraceID returns a UUIDv7 string, or a random UUIDv4 when the clock-based
// generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TraceIDFromHeader reuses a client-supplied trace id when it is at most 64
// characters of [A-Za-z0-9._-], and generates a new one otherwise.
func TraceIDFromHeader(v string) string {
	if v == "" || len(v) > maxTraceIDLen {
		return NewTraceID()
	}

	for _, c := range v {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return NewTraceID()
		}
	}

	return v
}
