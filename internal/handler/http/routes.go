package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every route except sign-up, login and version
// requires a token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signUp)
		r.Post("/auth/login", h.login)
		r.Get("/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/logout", h.logout)
		r.Get("/auth/me", h.me)
		r.Delete("/auth/me", h.deleteMe)

		r.Get("/categories", h.listCategories)
		r.Post("/categories", h.createCategory)

		r.Get("/notes", h.listNotes)
		r.Post("/notes", h.createNote)
		r.Get("/notes/{id}", h.getNote)
		r.Put("/notes/{id}", h.updateNote)
		r.Patch("/notes/{id}", h.patchNote)
		r.Delete("/notes/{id}", h.deleteNote)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
