package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService is the core NoteService. It owns timestamps and leaves
// ownership checks of referenced categories to noteValidationService.
type noteService struct {
	notes  store.NoteRepository
	now    func() time.Time
	logger *logger.Logger
}

func NewNoteService(notes store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		notes:  notes,
		now:    time.Now,
		logger: logger,
	}
}

func (s *noteService) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	notes, err := s.notes.ListNotes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return notes, nil
}

func (s *noteService) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	note, err := s.notes.GetNote(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("error getting note %d: %w", noteID, err)
	}
	return note, nil
}

func (s *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	now := timestamp(s.now)
	note.CreatedAt = now
	note.UpdatedAt = now

	created, err := s.notes.CreateNote(ctx, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", note.UserID).Msg("note creation failed")
		return models.Note{}, categoryRaceError(note.CategoryID, err)
	}
	return created, nil
}

// UpdateNote replaces title, body and category of an existing note.
// CreatedAt is kept and UpdatedAt moves forward.
func (s *noteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	existing, err := s.GetNote(ctx, note.UserID, note.ID)
	if err != nil {
		return models.Note{}, err
	}

	existing.Title = note.Title
	existing.Body = note.Body
	existing.CategoryID = note.CategoryID

	return s.save(ctx, existing)
}

func (s *noteService) PatchNote(ctx context.Context, userID, noteID int64, patch models.NotePatch) (models.Note, error) {
	existing, err := s.GetNote(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, err
	}

	patch.Apply(&existing)

	return s.save(ctx, existing)
}

func (s *noteService) DeleteNote(ctx context.Context, userID, noteID int64) error {
	if err := s.notes.DeleteNote(ctx, userID, noteID); err != nil {
		return fmt.Errorf("error deleting note %d: %w", noteID, err)
	}
	return nil
}

func (s *noteService) save(ctx context.Context, note models.Note) (models.Note, error) {
	note.UpdatedAt = s.nextUpdatedAt(note.UpdatedAt)

	updated, err := s.notes.UpdateNote(ctx, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("note_id", note.ID).Msg("note update failed")
		return models.Note{}, categoryRaceError(note.CategoryID, err)
	}
	return updated, nil
}

// nextUpdatedAt returns the current time, or one microsecond after previous
// when the clock has not moved past it.
func (s *noteService) nextUpdatedAt(previous time.Time) time.Time {
	now := timestamp(s.now)
	if !now.After(previous) {
		return previous.Add(time.Microsecond)
	}
	return now
}

// categoryRaceError reports a category removed after validation the same
// way the ownership check reports a missing one.
func categoryRaceError(categoryID int64, err error) error {
	if errors.Is(err, store.ErrCategoryNotFound) {
		return validators.NewFieldError(
			validators.FieldCategoryID,
			fmt.Sprintf(validators.MsgCategoryNotFound, categoryID),
			validators.ErrCategoryNotFound,
		)
	}
	return fmt.Errorf("error saving note: %w", err)
}
