package web

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, h *SearchHandler) {
	r.Group(func(r chi.Router) {
		r.Use(RequestIDMiddleware)
		r.Use(LoggerMiddleware(h.logger))
		r.Post("/search", h.Search)
	})
	r.Get("/healthz", h.Health)
}
