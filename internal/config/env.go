// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// databaseURLEnv is the conventional DSN variable. It is read only when
// STORAGE_DB_DATABASE_URI is unset.
const databaseURLEnv = "DATABASE_URL"

// parseEnv reads a [StructuredConfig] from the environment through the `env`
// and `envPrefix` tags.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = sqliteURLToDSN(os.Getenv(databaseURLEnv))
	}

	return &cfg, nil
}

// sqliteURLToDSN rewrites "sqlite://<path>" URLs into the form the sqlite3
// driver accepts. Other values are returned unchanged.
func sqliteURLToDSN(url string) string {
	path, ok := strings.CutPrefix(url, "sqlite://")
	if !ok {
		return url
	}
	if path == "" || path == ":memory:" {
		return ":memory:"
	}
	return "file:" + path
}
