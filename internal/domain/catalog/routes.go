package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns catalog router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/{id}", h.GetByID)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Get("/my", h.ListMy)
		r.Delete("/{id}", h.Archive)
	})

	return r
}
