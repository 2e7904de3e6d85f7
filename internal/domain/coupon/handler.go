package coupon

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

// Handler handles coupon HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates coupon handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /coupons
// @Summary Create coupon
// @Tags Coupon
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCouponRequest true "Coupon data"
// @Success 201 {object} response.Response{data=CouponResponse}
// @Failure 400,401,409,422,500 {object} response.Response
// @Router /coupons [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCouponRequest
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

	coupon, err := h.service.Create(r.Context(), storeID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoDiscountValue):
			response.BadRequest(w, "Coupon needs either percent_off or amount_off")
		case errors.Is(err, ErrDuplicateCode):
			response.Conflict(w, "Coupon code already exists")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, CouponResponseFromEntity(coupon))
}

// ListMy handles GET /coupons/my
// @Summary My coupons
// @Tags Coupon
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]CouponResponse}
// @Failure 401,500 {object} response.Response
// @Router /coupons/my [get]
func (h *Handler) ListMy(w http.ResponseWriter, r *http.Request) {
	storeID := middleware.GetStoreID(r.Context())
	if storeID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	coupons, err := h.service.ListByStore(r.Context(), storeID)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*CouponResponse, len(coupons))
	for i, c := range coupons {
		items[i] = CouponResponseFromEntity(c)
	}
	response.OK(w, items)
}

// Deactivate handles DELETE /coupons/{id}
// @Summary Deactivate coupon
// @Tags Coupon
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 {string} string "No Content"
// @Failure 400,403,404,500 {object} response.Response
// @Router /coupons/{id} [delete]
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid coupon ID")
		return
	}

	storeID := middleware.GetStoreID(r.Context())
	if err := h.service.Deactivate(r.Context(), id, storeID); err != nil {
		switch {
		case errors.Is(err, ErrCouponNotFound):
			response.NotFound(w, "Coupon not found")
		case errors.Is(err, ErrNotCouponOwner):
			response.Forbidden(w, "You can only manage your own coupons")
		default:
			response.InternalError(w)
		}
		return
	}

	response.NoContent(w)
}
