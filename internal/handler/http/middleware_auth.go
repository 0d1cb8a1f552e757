package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces token authentication.
//
// It extracts the credential from the "Authorization" header (both the
// "Bearer" and the "Token" schemes are accepted), resolves it to a user via
// [service.AuthService.ResolveToken] and stores the user ID and the raw token
// in the request context under [utils.UserIDCtxKey] and [utils.TokenCtxKey].
//
// A missing header, a malformed header, and an unknown, revoked or expired
// token are all rejected with 401 unauthenticated.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		token, err := utils.ParseAuthorizationHeader(authHeader)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.ResolveToken(ctx, token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)
		ctx = logger.FromContext(ctx).WithUserID(userID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromRequest returns the user stored by [Handler.auth].
func userIDFromRequest(r *http.Request) (int64, bool) {
	return utils.GetUserIDFromContext(r.Context())
}
