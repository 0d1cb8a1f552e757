package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the SQL implementation of [NoteRepository]. Reads join
// the "categories" table so every note carries its category reference.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// ListNotes returns the notes matching filter, most recently updated first.
// A filter without a user is rejected with [ErrMissingUserScope].
func (r *noteRepository) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(r.db.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var notes []models.Note
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		notes = make([]models.Note, 0)
		for rows.Next() {
			note, err := scanNote(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			notes = append(notes, note)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Int64("user_id", filter.UserID).Msg("error listing notes")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// GetNote returns the note (userID, noteID) or [ErrNoteNotFound].
func (r *noteRepository) GetNote(ctx context.Context, userID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoteQuery(r.db.builder(), userID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		note, scanErr = scanNote(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		log.Err(err).Str("func", "*noteRepository.GetNote").Int64("user_id", userID).Int64("note_id", noteID).Msg("error selecting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// CreateNote inserts the note and reads it back with its category.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(r.db.builder(), note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&note.ID); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Int64("user_id", note.UserID).Msg("error inserting note")
		return models.Note{}, r.mapWriteError(err)
	}

	return r.GetNote(ctx, note.UserID, note.ID)
}

// UpdateNote overwrites title, body, category and updated_at of the note
// identified by (UserID, ID) and reads it back.
func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(r.db.builder(), note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Int64("note_id", note.ID).Msg("error updating note")
		return models.Note{}, r.mapWriteError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Note{}, ErrNoteNotFound
	}

	return r.GetNote(ctx, note.UserID, note.ID)
}

func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(r.db.builder(), userID, noteID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Int64("note_id", noteID).Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// a foreign key failure on write means the category disappeared between
// validation and the statement.
func (r *noteRepository) mapWriteError(err error) error {
	if r.db.classify(err) == ForeignKeyViolation {
		return ErrCategoryNotFound
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.CategoryID,
		&note.Title,
		&note.Body,
		&note.CreatedAt,
		&note.UpdatedAt,
		&note.Category.ID,
		&note.Category.Name,
		&note.Category.Color,
	)
	return note, err
}
