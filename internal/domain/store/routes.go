package store

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns store router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/me", h.GetMine)
		r.Put("/me", h.UpdateMine)
	})

	r.Get("/{id}", h.GetByID)

	return r
}
