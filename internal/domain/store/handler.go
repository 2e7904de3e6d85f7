package store

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/brandlink/brandlink-api/internal/middleware"
	"github.com/brandlink/brandlink-api/internal/pkg/response"
	"github.com/brandlink/brandlink-api/internal/pkg/validator"
)

// Handler handles store HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates store handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetByID handles GET /stores/{id}
// @Summary Get store by ID
// @Tags Store
// @Produce json
// @Param id path string true "Store ID"
// @Success 200 {object} response.Response{data=StoreResponse}
// @Failure 400,404,500 {object} response.Response
// @Router /stores/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid store ID")
		return
	}

	store, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			response.NotFound(w, "Store not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, StoreResponseFromEntity(store))
}

// GetMine handles GET /stores/me
// @Summary My store
// @Tags Store
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=StoreResponse}
// @Failure 401,404,500 {object} response.Response
// @Router /stores/me [get]
func (h *Handler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	store, err := h.service.GetMine(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			response.NotFound(w, "Store not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, StoreResponseFromEntity(store))
}

// UpdateMine handles PUT /stores/me
// @Summary Update my store
// @Tags Store
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateStoreRequest true "Fields to update"
// @Success 200 {object} response.Response{data=StoreResponse}
// @Failure 400,401,404,422,500 {object} response.Response
// @Router /stores/me [put]
func (h *Handler) UpdateMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var req UpdateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	store, err := h.service.UpdateMine(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			response.NotFound(w, "Store not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, StoreResponseFromEntity(store))
}
