package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteValidationService checks every note write before it reaches the
// wrapped NoteService: the requester must be set and the referenced category
// must exist and belong to the requester.
//
// Updates look the note up first, so a note of another user is reported as
// not found before the body is judged.
type NoteValidationService struct {
	inner     NoteService
	ownership validators.Validator
}

func NewNoteValidationService(ownership validators.Validator) NoteServiceWrapper {
	return &NoteValidationService{
		ownership: ownership,
	}
}

func (v *NoteValidationService) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	if filter.UserID <= 0 {
		return nil, validators.ErrInvalidUserID
	}
	return v.inner.ListNotes(ctx, filter)
}

func (v *NoteValidationService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	if userID <= 0 {
		return models.Note{}, validators.ErrInvalidUserID
	}
	return v.inner.GetNote(ctx, userID, noteID)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := v.ownership.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("error during note validation before saving: %w", err)
	}

	return v.inner.CreateNote(ctx, note)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if _, err := v.GetNote(ctx, note.UserID, note.ID); err != nil {
		return models.Note{}, err
	}

	if err := v.ownership.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("error during note validation before update: %w", err)
	}

	return v.inner.UpdateNote(ctx, note)
}

// PatchNote looks the note up first, so an empty patch of a foreign note is
// still not found. An empty patch is rejected and the category is
// re-validated only when the patch changes it.
func (v *NoteValidationService) PatchNote(ctx context.Context, userID, noteID int64, patch models.NotePatch) (models.Note, error) {
	if _, err := v.GetNote(ctx, userID, noteID); err != nil {
		return models.Note{}, err
	}

	if patch.IsEmpty() {
		return models.Note{}, validators.NewFieldError(
			validators.NonFieldErrorsKey,
			"At least one of title, body or category_id must be provided.",
			validators.ErrNoFieldsToUpdate,
		)
	}

	if patch.CategoryID != nil {
		probe := models.Note{ID: noteID, UserID: userID, CategoryID: *patch.CategoryID}
		if err := v.ownership.Validate(ctx, probe); err != nil {
			return models.Note{}, fmt.Errorf("error during note validation before patch: %w", err)
		}
	}

	return v.inner.PatchNote(ctx, userID, noteID, patch)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	if userID <= 0 {
		return validators.ErrInvalidUserID
	}
	return v.inner.DeleteNote(ctx, userID, noteID)
}

func (v *NoteValidationService) Wrap(wrapper NoteService) NoteService {
	v.inner = wrapper
	return v
}
