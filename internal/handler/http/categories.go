package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, validators.ErrInvalidUserID)
		return
	}

	categories, err := h.services.CategoryService.ListCategories(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, validators.ErrInvalidUserID)
		return
	}

	var req models.CreateCategoryRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		h.writeError(w, r, malformed(err))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Color = strings.TrimSpace(req.Color)
	if err := h.validator.Validate(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.CreateCategory(r.Context(), models.Category{
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, category, http.StatusCreated)
}
