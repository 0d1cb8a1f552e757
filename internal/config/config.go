// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Token modes accepted by [App.TokenMode].
const (
	// TokenModeOpaque issues random tokens whose keyed hash is stored in the
	// sessions table. Logout revokes them.
	TokenModeOpaque = "opaque"
	// TokenModeJWT issues stateless HS256 tokens.
	TokenModeJWT = "jwt"
)

// Defaults applied to zero-valued fields after all sources are merged.
const (
	DefaultServerAddress  = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenIssuer    = "go-note-keeper"
	DefaultServerURL      = "http://localhost:8080"

	DefaultNoteRefreshInterval = 30 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// go-note-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// password hashing cost and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the terminal client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control
// authentication and versioning.
type App struct {
	// TokenMode selects the session token implementation:
	// "opaque" (default) or "jwt".
	// Env: APP_TOKEN_MODE
	TokenMode string `env:"TOKEN_MODE"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Required in jwt mode.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after
	// issuance (e.g. "24h"). Zero means opaque tokens never expire;
	// jwt mode requires a positive value.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TokenHashKey is the HMAC key used to hash opaque tokens before they
	// are persisted. Required in opaque mode.
	// Env: APP_TOKEN_HASH_KEY
	TokenHashKey string `env:"TOKEN_HASH_KEY"`

	// BcryptCost is the bcrypt work factor for password hashes.
	// Zero selects bcrypt.DefaultCost.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the database:
	//   - "postgres://..." or "postgresql://..." opens PostgreSQL via pgx;
	//   - "file:...", "*.db" or ":memory:" opens SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client-side settings for talking to the server.
type Adapter struct {
	// ServerURL is the base URL of the notes server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionSweepInterval is how often expired opaque sessions are
	// deleted. Zero disables the sweeper.
	// Env: WORKERS_SESSION_SWEEP_INTERVAL
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL"`

	// NoteRefreshInterval is how often the terminal client reloads the note
	// list in the background. Zero falls back to the client default.
	// Env: WORKERS_NOTE_REFRESH_INTERVAL
	NoteRefreshInterval time.Duration `env:"NOTE_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}

	return cfg, nil
}
