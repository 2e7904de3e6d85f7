package campaign

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns campaign router
func (h *Handler) Routes(authMiddleware, optionalAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Public routes
	r.Get("/", h.List)
	r.Get("/types", h.ListTypes)

	// Draft visibility is enforced in the handler, so GetByID stays
	// public but picks up auth context when a token is present.
	r.With(optionalAuth).Get("/{id}", h.GetByID)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
		r.Get("/my", h.ListMy)
		r.Put("/{id}", h.Update)
		r.Post("/{id}/publish", h.Publish)
		r.Patch("/{id}/status", h.UpdateStatus)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
