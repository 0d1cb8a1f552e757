// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// applyDefaults fills zero-valued fields that have a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenMode == "" {
		cfg.App.TokenMode = TokenModeOpaque
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultServerAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Workers.SessionSweepInterval < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}

	switch cfg.App.TokenMode {
	case TokenModeOpaque:
		if cfg.App.TokenHashKey == "" {
			return fmt.Errorf("%w: token hash key is required in %s mode", ErrInvalidAppConfigs, TokenModeOpaque)
		}
	case TokenModeJWT:
		if cfg.App.TokenSignKey == "" {
			return fmt.Errorf("%w: token sign key is required in %s mode", ErrInvalidAppConfigs, TokenModeJWT)
		}
		if cfg.App.TokenDuration == 0 {
			return fmt.Errorf("%w: token duration is required in %s mode", ErrInvalidAppConfigs, TokenModeJWT)
		}
	default:
		return fmt.Errorf("%w: unknown token mode %q", ErrInvalidAppConfigs, cfg.App.TokenMode)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.NoteRefreshInterval < 0 {
		return ErrInvalidWorkersConfigs
	}

	return nil
}
