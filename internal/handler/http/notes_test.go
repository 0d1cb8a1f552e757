package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func sampleNote(id int64) models.Note {
	return models.Note{
		ID:         id,
		UserID:     testUserID,
		Title:      "Groceries",
		Body:       "milk, eggs",
		CategoryID: 2,
		Category:   models.CategoryRef{ID: 2, Name: "Personal", Color: "#B8E0D2"},
		CreatedAt:  fixedTime,
		UpdatedAt:  fixedTime,
	}
}

func TestListNotes_Filters(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		query string
		want  models.NoteFilter
	}{
		{
			name:  "no filters",
			query: "",
			want:  models.NoteFilter{UserID: testUserID},
		},
		{
			name:  "category and search",
			query: "?category=school&search=%20exam%20",
			want:  models.NoteFilter{UserID: testUserID, Category: "school", Search: "exam"},
		},
		{
			name:  "date range",
			query: "?date_from=2026-03-01&date_to=2026-03-31",
			want:  models.NoteFilter{UserID: testUserID, DateFrom: &from, DateTo: &to},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.NoteFilter
			notes := &mockNoteService{
				listFn: func(_ context.Context, filter models.NoteFilter) ([]models.Note, error) {
					got = filter
					return []models.Note{sampleNote(1)}, nil
				},
			}
			router := newTestHandler(&service.Services{NoteService: notes}).Init()

			rec := doRequest(t, router, http.MethodGet, "/notes"+tt.query, "", true)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListNotes_ResponseShape(t *testing.T) {
	notes := &mockNoteService{
		listFn: func(context.Context, models.NoteFilter) ([]models.Note, error) {
			return []models.Note{sampleNote(5)}, nil
		},
	}
	router := newTestHandler(&service.Services{NoteService: notes}).Init()

	rec := doRequest(t, router, http.MethodGet, "/notes", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": 5,
		"title": "Groceries",
		"body": "milk, eggs",
		"category": {"id": 2, "name": "Personal", "color": "#B8E0D2"},
		"created_at": "2026-03-14T09:26:53Z",
		"updated_at": "2026-03-14T09:26:53Z"
	}]`, rec.Body.String())
}

func TestListNotes_InvalidDate(t *testing.T) {
	router := newTestHandler(nil).Init()

	rec := doRequest(t, router, http.MethodGet, "/notes?date_from=yesterday&date_to=2026-13-01", "", true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeErrorResponse(t, rec)
	assert.Contains(t, resp.Errors, "date_from")
	assert.Contains(t, resp.Errors, "date_to")
}

func TestGetNote(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "own note", path: "/notes/5", wantStatus: http.StatusOK},
		{name: "missing or foreign note", path: "/notes/6", wantStatus: http.StatusNotFound},
		{name: "non-numeric id", path: "/notes/abc", wantStatus: http.StatusNotFound},
		{name: "zero id", path: "/notes/0", wantStatus: http.StatusNotFound},
	}

	notes := &mockNoteService{
		getFn: func(_ context.Context, userID, noteID int64) (models.Note, error) {
			if userID == testUserID && noteID == 5 {
				return sampleNote(5), nil
			}
			return models.Note{}, store.ErrNoteNotFound
		},
	}
	router := newTestHandler(&service.Services{NoteService: notes}).Init()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, tt.path, "", true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNotFound {
				assert.Equal(t, models.ErrorKindNotFound, decodeErrorResponse(t, rec).Kind)
			}
		})
	}
}

func TestCreateNote(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
		wantField  string
	}{
		{
			name:       "created",
			body:       `{"title":"  Groceries ","body":"milk, eggs","category_id":2}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing title",
			body:       `{"body":"milk","category_id":2}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "title",
		},
		{
			name:       "blank body",
			body:       `{"title":"t","body":"  ","category_id":2}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "body",
		},
		{
			name:       "missing category",
			body:       `{"title":"t","body":"b"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "category_id",
		},
		{
			name:       "foreign category",
			body:       `{"title":"t","body":"b","category_id":99}`,
			createErr:  validators.NewFieldError(validators.FieldCategoryID, validators.MsgCategoryNotOwned, validators.ErrCategoryNotOwned),
			wantStatus: http.StatusBadRequest,
			wantField:  "category_id",
		},
		{
			name:       "body is not JSON",
			body:       `title=t`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &mockNoteService{
				createFn: func(_ context.Context, note models.Note) (models.Note, error) {
					if tt.createErr != nil {
						return models.Note{}, tt.createErr
					}
					assert.Equal(t, testUserID, note.UserID)
					assert.Equal(t, "Groceries", note.Title)
					assert.Equal(t, int64(2), note.CategoryID)
					return sampleNote(9), nil
				},
			}
			router := newTestHandler(&service.Services{NoteService: notes}).Init()

			rec := doRequest(t, router, http.MethodPost, "/notes", tt.body, true)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantField != "" {
				assert.Contains(t, decodeErrorResponse(t, rec).Errors, tt.wantField)
			}
		})
	}
}

func TestUpdateNote(t *testing.T) {
	owned := func(_ context.Context, userID, noteID int64) (models.Note, error) {
		if noteID == 5 {
			return sampleNote(5), nil
		}
		return models.Note{}, store.ErrNoteNotFound
	}

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{name: "replaced", path: "/notes/5", body: `{"title":"New","body":"text","category_id":3}`, wantStatus: http.StatusOK},
		{name: "foreign note with valid body", path: "/notes/6", body: `{"title":"New","body":"text","category_id":3}`, wantStatus: http.StatusNotFound},
		{name: "foreign note with invalid body", path: "/notes/6", body: `{"title":""}`, wantStatus: http.StatusNotFound},
		{name: "own note with invalid body", path: "/notes/5", body: `{"title":""}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &mockNoteService{
				getFn: owned,
				updateFn: func(_ context.Context, note models.Note) (models.Note, error) {
					if note.ID != 5 {
						return models.Note{}, store.ErrNoteNotFound
					}
					assert.Equal(t, "New", note.Title)
					assert.Equal(t, int64(3), note.CategoryID)
					assert.Equal(t, testUserID, note.UserID)
					return note, nil
				},
			}
			router := newTestHandler(&service.Services{NoteService: notes}).Init()

			rec := doRequest(t, router, http.MethodPut, tt.path, tt.body, true)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestPatchNote(t *testing.T) {
	var gotPatch models.NotePatch
	notes := &mockNoteService{
		getFn: func(context.Context, int64, int64) (models.Note, error) { return sampleNote(5), nil },
		patchFn: func(_ context.Context, userID, noteID int64, patch models.NotePatch) (models.Note, error) {
			gotPatch = patch
			if patch.IsEmpty() {
				return models.Note{}, validators.NewFieldError(validators.NonFieldErrorsKey, "At least one field must be provided.", validators.ErrNoFieldsToUpdate)
			}
			note := sampleNote(noteID)
			patch.Apply(&note)
			return note, nil
		},
	}
	router := newTestHandler(&service.Services{NoteService: notes}).Init()

	rec := doRequest(t, router, http.MethodPatch, "/notes/5", `{"title":" Renamed "}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, gotPatch.Title)
	assert.Equal(t, "Renamed", *gotPatch.Title)
	assert.Nil(t, gotPatch.Body)
	assert.Nil(t, gotPatch.CategoryID)

	rec = doRequest(t, router, http.MethodPatch, "/notes/5", `{}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeErrorResponse(t, rec).Errors, validators.NonFieldErrorsKey)

	rec = doRequest(t, router, http.MethodPatch, "/notes/5", `{"body":""}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeErrorResponse(t, rec).Errors, "body")
}

func TestDeleteNote(t *testing.T) {
	notes := &mockNoteService{
		deleteFn: func(_ context.Context, userID, noteID int64) error {
			if userID == testUserID && noteID == 5 {
				return nil
			}
			return store.ErrNoteNotFound
		},
	}
	router := newTestHandler(&service.Services{NoteService: notes}).Init()

	assert.Equal(t, http.StatusNoContent, doRequest(t, router, http.MethodDelete, "/notes/5", "", true).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodDelete, "/notes/6", "", true).Code)
}
