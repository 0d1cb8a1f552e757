package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

// dateLayout is the format of the date_from and date_to query parameters.
const dateLayout = "2006-01-02"

// readBody decodes the JSON body of r into dst and validates it.
func (h *Handler) readBody(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		return malformed(err)
	}
	return h.validator.Validate(r.Context(), dst)
}

func malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedBody, err)
}

// noteIDFromRequest parses the {id} path segment.
func noteIDFromRequest(r *http.Request) (int64, error) {
	noteID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || noteID <= 0 {
		return 0, ErrInvalidNoteID
	}
	return noteID, nil
}

// trimPtr trims the string s points to, if any.
func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// addDateParam parses the optional date query parameter name into dst,
// recording a field error in errs when it is malformed.
func addDateParam(r *http.Request, name string, dst **time.Time, errs *validators.FieldErrors) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		errs.Add(name, "Enter a valid date (YYYY-MM-DD).")
		return
	}
	*dst = &date
}
