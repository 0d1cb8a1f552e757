// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This handler responds with a JSON 404 not_found body
// instead, hiding the existence of the route from callers that use an
// unsupported method.
//
// Paths are matched with [chi.Mux.Match], so parameterised routes such as
// "/notes/{id}" are recognised. If the method does resolve (which chi only
// reports here for routes registered after the lookup), the request is
// forwarded to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			utils.WriteJSON(w, errorResponse(http.StatusNotFound, ErrRouteNotFound), http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
