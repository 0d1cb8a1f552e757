// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// listNotes returns the notes of the current user, most recently updated
// first. Supported query parameters: category, search, date_from, date_to.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, validators.ErrInvalidUserID)
		return
	}

	query := r.URL.Query()
	filter := models.NoteFilter{
		UserID:   userID,
		Category: strings.TrimSpace(query.Get("category")),
		Search:   strings.TrimSpace(query.Get("search")),
	}

	dateErrs := &validators.FieldErrors{}
	addDateParam(r, "date_from", &filter.DateFrom, dateErrs)
	addDateParam(r, "date_to", &filter.DateTo, dateErrs)
	if len(dateErrs.Fields) > 0 {
		h.writeError(w, r, dateErrs)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, validators.ErrInvalidUserID)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), userID, noteID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, validators.ErrInvalidUserID)
		return
	}

	req, err := h.readNoteRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), req.ToNote(userID))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

// updateNote replaces every field of a note. A note of another user is
// reported as not found before the body is looked at.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, validators.ErrInvalidUserID)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	req, err := h.readNoteRequest(r)
	if err != nil {
		if _, getErr := h.services.NoteService.GetNote(r.Context(), userID, noteID); getErr != nil {
			err = getErr
		}
		h.writeError(w, r, err)
		return
	}

	note := req.ToNote(userID)
	note.ID = noteID

	updated, err := h.services.NoteService.UpdateNote(r.Context(), note)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// patchNote changes only the fields present in the body.
func (h *Handler) patchNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, validators.ErrInvalidUserID)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var patch models.NotePatch
	if err = utils.ReadJSON(r, &patch); err == nil {
		trimPtr(patch.Title)
		trimPtr(patch.Body)
		err = h.validator.Validate(r.Context(), patch)
	} else {
		err = malformed(err)
	}
	if err != nil {
		if _, getErr := h.services.NoteService.GetNote(r.Context(), userID, noteID); getErr != nil {
			err = getErr
		}
		h.writeError(w, r, err)
		return
	}

	updated, err := h.services.NoteService.PatchNote(r.Context(), userID, noteID, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, validators.ErrInvalidUserID)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.NoteService.DeleteNote(r.Context(), userID, noteID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// readNoteRequest decodes a full note body, trimming title and body before
// validation.
func (h *Handler) readNoteRequest(r *http.Request) (models.NoteRequest, error) {
	var req models.NoteRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		return req, malformed(err)
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Body = strings.TrimSpace(req.Body)

	return req, h.validator.Validate(r.Context(), req)
}
