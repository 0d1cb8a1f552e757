// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ─────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────

// categories: 10 belongs to user 1, 20 belongs to user 2, anything else is missing.
func newTestCategoryGetter() *mockCategoryRepository {
	return &mockCategoryRepository{
		getByIDFn: func(_ context.Context, categoryID int64) (models.Category, error) {
			switch categoryID {
			case 10:
				return models.Category{ID: 10, UserID: 1, Name: "Mine"}, nil
			case 20:
				return models.Category{ID: 20, UserID: 2, Name: "Theirs"}, nil
			default:
				return models.Category{}, store.ErrCategoryNotFound
			}
		},
	}
}

// notes: 100 belongs to user 1, everything else is not found.
func newTestNoteRepo() *mockNoteRepository {
	return &mockNoteRepository{
		getFn: func(_ context.Context, userID, noteID int64) (models.Note, error) {
			if userID == 1 && noteID == 100 {
				return models.Note{ID: 100, UserID: 1, CategoryID: 10, Title: "t", Body: "b"}, nil
			}
			return models.Note{}, store.ErrNoteNotFound
		},
	}
}

type recordingNoteService struct {
	NoteService
	calls []string
}

func (r *recordingNoteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	r.calls = append(r.calls, "create")
	return r.NoteService.CreateNote(ctx, note)
}

func (r *recordingNoteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	r.calls = append(r.calls, "update")
	return r.NoteService.UpdateNote(ctx, note)
}

func (r *recordingNoteService) PatchNote(ctx context.Context, userID, noteID int64, patch models.NotePatch) (models.Note, error) {
	r.calls = append(r.calls, "patch")
	return r.NoteService.PatchNote(ctx, userID, noteID, patch)
}

func newTestValidatedNoteService() (NoteService, *recordingNoteService) {
	inner := &recordingNoteService{NoteService: NewNoteService(newTestNoteRepo(), logger.Nop())}
	svc := NewNoteValidationService(validators.NewOwnershipValidator(newTestCategoryGetter())).Wrap(inner)
	return svc, inner
}

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	var fe *validators.FieldErrors
	require.True(t, errors.As(err, &fe), "expected *validators.FieldErrors, got %v", err)
	return fe.Fields
}

// ─────────────────────────────────────────────
// CreateNote
// ─────────────────────────────────────────────

func TestNoteValidation_Create(t *testing.T) {
	tests := []struct {
		name       string
		categoryID int64
		wantCause  error
	}{
		{name: "own category", categoryID: 10},
		{name: "foreign category", categoryID: 20, wantCause: validators.ErrCategoryNotOwned},
		{name: "missing category", categoryID: 999, wantCause: validators.ErrCategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, inner := newTestValidatedNoteService()

			_, err := svc.CreateNote(context.Background(), models.Note{UserID: 1, CategoryID: tt.categoryID, Title: "t", Body: "b"})
			if tt.wantCause == nil {
				require.NoError(t, err)
				assert.Equal(t, []string{"create"}, inner.calls)
				return
			}

			require.ErrorIs(t, err, validators.ErrValidation)
			assert.ErrorIs(t, err, tt.wantCause)
			assert.Contains(t, fieldErrors(t, err), validators.FieldCategoryID)
			assert.Empty(t, inner.calls, "invalid notes must not reach the store")
		})
	}
}

func TestNoteValidation_CreateWithoutUser(t *testing.T) {
	svc, _ := newTestValidatedNoteService()

	_, err := svc.CreateNote(context.Background(), models.Note{CategoryID: 10})
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)
}

// ─────────────────────────────────────────────
// UpdateNote / PatchNote
// ─────────────────────────────────────────────

func TestNoteValidation_UpdateForeignNoteIsNotFound(t *testing.T) {
	svc, inner := newTestValidatedNoteService()

	// user 2 targets user 1's note with their own category
	_, err := svc.UpdateNote(context.Background(), models.Note{ID: 100, UserID: 2, CategoryID: 20, Title: "t", Body: "b"})
	require.ErrorIs(t, err, store.ErrNoteNotFound)
	assert.NotErrorIs(t, err, validators.ErrValidation)
	assert.Empty(t, inner.calls)
}

func TestNoteValidation_UpdateOwnNoteForeignCategory(t *testing.T) {
	svc, inner := newTestValidatedNoteService()

	_, err := svc.UpdateNote(context.Background(), models.Note{ID: 100, UserID: 1, CategoryID: 20, Title: "t", Body: "b"})
	require.ErrorIs(t, err, validators.ErrCategoryNotOwned)
	assert.Empty(t, inner.calls)
}

func TestNoteValidation_Patch(t *testing.T) {
	foreign := int64(20)
	own := int64(10)
	title := "renamed"

	svc, inner := newTestValidatedNoteService()

	_, err := svc.PatchNote(context.Background(), 1, 100, models.NotePatch{})
	require.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
	assert.Contains(t, fieldErrors(t, err), validators.NonFieldErrorsKey)

	_, err = svc.PatchNote(context.Background(), 1, 100, models.NotePatch{CategoryID: &foreign})
	assert.ErrorIs(t, err, validators.ErrCategoryNotOwned)

	_, err = svc.PatchNote(context.Background(), 2, 100, models.NotePatch{Title: &title})
	assert.ErrorIs(t, err, store.ErrNoteNotFound)

	_, err = svc.PatchNote(context.Background(), 2, 100, models.NotePatch{})
	assert.ErrorIs(t, err, store.ErrNoteNotFound)

	assert.Empty(t, inner.calls)

	_, err = svc.PatchNote(context.Background(), 1, 100, models.NotePatch{CategoryID: &own, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, []string{"patch"}, inner.calls)
}

// ─────────────────────────────────────────────
// Reads and deletes
// ─────────────────────────────────────────────

func TestNoteValidation_RequiresUser(t *testing.T) {
	svc, _ := newTestValidatedNoteService()

	_, err := svc.ListNotes(context.Background(), models.NoteFilter{})
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)

	_, err = svc.GetNote(context.Background(), 0, 100)
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)

	err = svc.DeleteNote(context.Background(), 0, 100)
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)
}
