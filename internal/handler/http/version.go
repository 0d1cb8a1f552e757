package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// getServerVersion answers in text/plain unless the client accepts only
// JSON, in which case the body is {"version": "..."}.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	accept := r.Header.Get("Accept")
	if strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/plain") {
		utils.WriteJSON(w, map[string]string{"version": version}, http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(version))
}
