package coupon

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns coupon router. All routes require auth.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Get("/my", h.ListMy)
		r.Delete("/{id}", h.Deactivate)
	})

	return r
}
