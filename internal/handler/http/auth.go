package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := h.readBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Register(ctx, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user signed up")

	h.writeAuthResponse(w, user, token, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := h.readBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user successfully logged in")

	h.writeAuthResponse(w, user, token, http.StatusOK)
}

// writeAuthResponse sends the token in the body and in the "Authorization"
// response header.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, user models.User, token models.Token, status int) {
	w.Header().Set("Authorization", fmt.Sprintf("%s %s", utils.SchemeBearer, token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user}, status)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), token); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, validators.ErrInvalidUserID)
		return
	}

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		h.writeError(w, r, validators.ErrInvalidUserID)
		return
	}

	if err := h.services.AuthService.DeleteAccount(r.Context(), userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Msg("account deleted")
	w.WriteHeader(http.StatusNoContent)
}
