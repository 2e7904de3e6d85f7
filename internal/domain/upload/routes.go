package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns upload router. All routes require auth.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/video", h.StageVideo)
		r.Post("/image", h.StageImage)
		r.Post("/{id}/commit", h.Commit)
		r.Delete("/{id}", h.Delete)
		r.Get("/my", h.ListMy)
	})

	return r
}
