package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// OpaqueTokenBytes is the amount of randomness in an opaque token.
// The hex form is twice as long.
const OpaqueTokenBytes = 20

// Authorization schemes accepted by ParseAuthorizationHeader.
const (
	SchemeBearer = "Bearer"
	SchemeToken  = "Token"
)

// ErrInvalidAuthorizationHeader is returned for a missing or malformed
// "Authorization" header.
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateOpaqueToken returns a random hex string of 2*OpaqueTokenBytes
// characters read from crypto/rand.
func GenerateOpaqueToken() (string, error) {
	buf := make([]byte, OpaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating opaque token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashOpaqueToken returns the hex HMAC-SHA256 of token under key. Only this
// digest is persisted; the plain token never reaches the database.
func HashOpaqueToken(token, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// ParseAuthorizationHeader extracts the credential from an
// "Authorization: <scheme> <token>" header. Both the "Bearer" and the
// "Token" schemes are accepted; the scheme is matched case-insensitively.
func ParseAuthorizationHeader(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	if !strings.EqualFold(parts[0], SchemeBearer) && !strings.EqualFold(parts[0], SchemeToken) {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
