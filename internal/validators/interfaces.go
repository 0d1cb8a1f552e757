// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - RequestValidator: struct-tag validation of request bodies
//     (go-playground/validator) reporting messages per JSON field.
//   - OwnershipValidator: cross-checks that a note references a category
//     owned by the same user.
//
// Every failure is a [*FieldErrors] matching [ErrValidation], so transport
// layers can render field-level messages uniformly.
package validators

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// CategoryGetter loads a category by id regardless of its owner.
type CategoryGetter interface {
	GetCategoryByID(ctx context.Context, categoryID int64) (models.Category, error)
}
