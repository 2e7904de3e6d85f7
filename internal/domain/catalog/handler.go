package catalog

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

// Handler handles catalog HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates catalog handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /catalog
// @Summary Create catalog entry
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEntryRequest true "Entry data"
// @Success 201 {object} response.Response{data=EntryResponse}
// @Failure 400,401,422,500 {object} response.Response
// @Router /catalog [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	storeID := middleware.GetStoreID(r.Context())
	if storeID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	entry, err := h.service.Create(r.Context(), storeID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrProductWithDuration),
			errors.Is(err, ErrServiceNeedsDuration),
			errors.Is(err, ErrServiceWithStock),
			errors.Is(err, ErrUnknownKind):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, EntryResponseFromEntity(entry))
}

// GetByID handles GET /catalog/{id}
// @Summary Get catalog entry
// @Tags Catalog
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Response{data=EntryResponse}
// @Failure 400,404,500 {object} response.Response
// @Router /catalog/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid entry ID")
		return
	}

	entry, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			response.NotFound(w, "Catalog entry not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, EntryResponseFromEntity(entry))
}

// ListMy handles GET /catalog/my
// @Summary My catalog entries
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param kind query string false "Entry kind"
// @Success 200 {object} response.Response{data=[]EntryResponse}
// @Failure 401,500 {object} response.Response
// @Router /catalog/my [get]
func (h *Handler) ListMy(w http.ResponseWriter, r *http.Request) {
	storeID := middleware.GetStoreID(r.Context())
	if storeID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	kind := Kind(r.URL.Query().Get("kind"))
	entries, err := h.service.ListByStore(r.Context(), storeID, kind)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		items[i] = EntryResponseFromEntity(e)
	}
	response.OK(w, items)
}

// Archive handles DELETE /catalog/{id}
// @Summary Archive catalog entry
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 204 {string} string "No Content"
// @Failure 400,403,404,500 {object} response.Response
// @Router /catalog/{id} [delete]
func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid entry ID")
		return
	}

	storeID := middleware.GetStoreID(r.Context())
	if err := h.service.Archive(r.Context(), id, storeID); err != nil {
		switch {
		case errors.Is(err, ErrEntryNotFound):
			response.NotFound(w, "Catalog entry not found")
		case errors.Is(err, ErrNotEntryOwner):
			response.Forbidden(w, "You can only manage your own catalog")
		default:
			response.InternalError(w)
		}
		return
	}

	response.NoContent(w)
}
