package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/security/token", h.token)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes requiring a resolved user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/me", h.me)

		r.Route("/api/datasets", func(r chi.Router) {
			r.Get("/", h.listDatasets)
			r.Get("/{name}", h.getDataset)
			r.Patch("/{name}", h.updateDataset)
			r.Delete("/{name}", h.deleteDataset)

			// Lifecycle transitions use an action suffix on the resource
			// name, so "reviews:close" never collides with a dataset
			// called "reviews".
			r.Put("/{name}:close", h.closeDataset)
			r.Put("/{name}:open", h.openDataset)
		})
	})

	return router
}
