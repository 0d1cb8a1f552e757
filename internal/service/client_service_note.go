// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientNoteService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientNoteService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientNoteService {
	return &clientNoteService{adapter: serverAdapter, logger: logger}
}

func (n *clientNoteService) List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	notes, err := n.adapter.ListNotes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", mapAdapterError(err))
	}
	return notes, nil
}

func (n *clientNoteService) Get(ctx context.Context, noteID int64) (models.Note, error) {
	note, err := n.adapter.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note %d: %w", noteID, mapAdapterError(err))
	}
	return note, nil
}

func (n *clientNoteService) Create(ctx context.Context, req models.NoteRequest) (models.Note, error) {
	note, err := n.adapter.CreateNote(ctx, req)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", mapAdapterError(err))
	}

	n.logger.Debug().Int64("note_id", note.ID).Msg("note created")
	return note, nil
}

func (n *clientNoteService) Update(ctx context.Context, noteID int64, req models.NoteRequest) (models.Note, error) {
	note, err := n.adapter.UpdateNote(ctx, noteID, req)
	if err != nil {
		return models.Note{}, fmt.Errorf("update note %d: %w", noteID, mapAdapterError(err))
	}
	return note, nil
}

func (n *clientNoteService) Patch(ctx context.Context, noteID int64, patch models.NotePatch) (models.Note, error) {
	if patch.IsEmpty() {
		return models.Note{}, validators.NewFieldError(validators.NonFieldErrorsKey, "Nothing to update.", validators.ErrNoFieldsToUpdate)
	}

	note, err := n.adapter.PatchNote(ctx, noteID, patch)
	if err != nil {
		return models.Note{}, fmt.Errorf("patch note %d: %w", noteID, mapAdapterError(err))
	}
	return note, nil
}

func (n *clientNoteService) Delete(ctx context.Context, noteID int64) error {
	if err := n.adapter.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("delete note %d: %w", noteID, mapAdapterError(err))
	}

	n.logger.Debug().Int64("note_id", noteID).Msg("note deleted")
	return nil
}
