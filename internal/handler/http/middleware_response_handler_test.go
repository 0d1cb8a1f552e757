package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		headers    []int
		writes     []string
		wantStatus int
		wantSize   int
	}{
		{
			name:       "no calls",
			wantStatus: 0,
		},
		{
			name:       "write without header is implicit 200",
			writes:     []string{"OK"},
			wantStatus: http.StatusOK,
			wantSize:   2,
		},
		{
			name:       "explicit 201 then write",
			headers:    []int{http.StatusCreated},
			writes:     []string{`{"id":1}`},
			wantStatus: http.StatusCreated,
			wantSize:   8,
		},
		{
			name:       "first header wins",
			headers:    []int{http.StatusNoContent, http.StatusInternalServerError},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "sizes accumulate",
			writes:     []string{"foo", "bar", ""},
			wantStatus: http.StatusOK,
			wantSize:   6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.headers {
				w.WriteHeader(code)
			}
			for _, data := range tt.writes {
				_, err := w.Write([]byte(data))
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, rr.Code)
			}
		})
	}
}

func TestResponseWriter_ProxiesHeadersToUnderlying(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Header().Set("X-Custom", "value")
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, "value", rr.Header().Get("X-Custom"))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
