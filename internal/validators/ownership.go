package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// FieldCategoryID is the JSON field reported for category reference errors.
const FieldCategoryID = "category_id"

// Messages reported on FieldCategoryID.
const (
	MsgCategoryNotOwned = "You cannot create a note in a category that does not belong to you."
	MsgCategoryNotFound = "Invalid pk \"%d\" - object does not exist."
)

// OwnershipValidator checks that the category a note references exists and
// belongs to the note's owner. A violation is a validation failure on
// category_id; the category is never reassigned.
type OwnershipValidator struct {
	categories CategoryGetter
}

// NewOwnershipValidator constructs an OwnershipValidator reading categories
// from the given getter.
func NewOwnershipValidator(categories CategoryGetter) *OwnershipValidator {
	return &OwnershipValidator{categories: categories}
}

// Validate accepts models.Note or *models.Note. The note's UserID is the
// requester and must be set.
func (v *OwnershipValidator) Validate(ctx context.Context, obj any, _ ...string) error {
	switch note := obj.(type) {
	case models.Note:
		return v.validateCategoryOwner(ctx, note.UserID, note.CategoryID)
	case *models.Note:
		return v.validateCategoryOwner(ctx, note.UserID, note.CategoryID)
	default:
		return ErrUnsupportedType
	}
}

func (v *OwnershipValidator) validateCategoryOwner(ctx context.Context, userID, categoryID int64) error {
	if userID <= 0 {
		return ErrInvalidUserID
	}

	category, err := v.categories.GetCategoryByID(ctx, categoryID)
	if errors.Is(err, store.ErrCategoryNotFound) {
		return NewFieldError(FieldCategoryID, fmt.Sprintf(MsgCategoryNotFound, categoryID), ErrCategoryNotFound)
	}
	if err != nil {
		return fmt.Errorf("error loading category %d: %w", categoryID, err)
	}

	if category.UserID != userID {
		return NewFieldError(FieldCategoryID, MsgCategoryNotOwned, ErrCategoryNotOwned)
	}

	return nil
}
