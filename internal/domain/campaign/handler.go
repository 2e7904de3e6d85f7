package campaign

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/brandlink/brandlink-api/internal/middleware"
	"github.com/brandlink/brandlink-api/internal/pkg/response"
	"github.com/brandlink/brandlink-api/internal/pkg/validator"
)

// Handler handles campaign HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates campaign handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// respondError maps any campaign error through the taxonomy and writes
// the envelope. Every handler funnels failures here so codes and
// statuses stay consistent across endpoints.
func respondError(w http.ResponseWriter, r *http.Request, err error, context map[string]interface{}) {
	if context == nil {
		context = map[string]interface{}{}
	}
	context["request_id"] = middleware.GetRequestID(r.Context())
	LogError(err, context)

	resp, status := FormatErrorResponse(err)
	response.Write(w, status, resp)
}

// ListTypes handles GET /campaigns/types
// @Summary List supported campaign types
// @Tags Campaign
// @Produce json
// @Success 200 {object} response.Response{data=[]TypeInfoResponse}
// @Router /campaigns/types [get]
func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types := SupportedTypes()
	items := make([]TypeInfoResponse, len(types))
	for i, t := range types {
		items[i] = TypeInfoResponse{
			Type:        string(t),
			Label:       TypeLabel(t),
			Icon:        TypeIcon(t),
			Description: TypeDescription(t),
		}
	}
	response.OK(w, items)
}

// Create handles POST /campaigns
// @Summary Create campaign
// @Tags Campaign
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCampaignRequest true "Campaign data"
// @Success 201 {object} response.Response{data=CampaignResponse}
// @Failure 400,401,404,422,500 {object} response.Response
// @Router /campaigns [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, NewJSONParseError(err), nil)
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

	campaign, err := h.service.Create(r.Context(), storeID, &req)
	if err != nil {
		respondError(w, r, err, map[string]interface{}{
			"store_id": storeID.String(),
			"type":     req.Type,
		})
		return
	}

	response.Created(w, CampaignResponseFromEntity(campaign))
}

// GetByID handles GET /campaigns/{id}
// @Summary Get campaign by ID
// @Tags Campaign
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} response.Response{data=CampaignResponse}
// @Failure 400,404,500 {object} response.Response
// @Router /campaigns/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	campaign, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err, map[string]interface{}{"campaign_id": id.String()})
		return
	}

	// Drafts are only visible to their owner
	if campaign.IsDraft() && campaign.StoreID != middleware.GetStoreID(r.Context()) {
		respondError(w, r, NewCampaignNotFound(id), nil)
		return
	}

	response.OK(w, CampaignResponseFromEntity(campaign))
}

// Update handles PUT /campaigns/{id}
// @Summary Update campaign
// @Tags Campaign
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Param request body UpdateCampaignRequest true "Fields to update"
// @Success 200 {object} response.Response{data=CampaignResponse}
// @Failure 400,403,404,422,500 {object} response.Response
// @Router /campaigns/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	var req UpdateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, NewJSONParseError(err), nil)
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	storeID := middleware.GetStoreID(r.Context())
	campaign, err := h.service.Update(r.Context(), id, storeID, &req)
	if err != nil {
		respondError(w, r, err, map[string]interface{}{
			"campaign_id": id.String(),
			"store_id":    storeID.String(),
		})
		return
	}

	response.OK(w, CampaignResponseFromEntity(campaign))
}

// Publish handles POST /campaigns/{id}/publish
// @Summary Publish campaign
// @Tags Campaign
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} response.Response{data=CampaignResponse}
// @Failure 400,403,404,500 {object} response.Response
// @Router /campaigns/{id}/publish [post]
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	storeID := middleware.GetStoreID(r.Context())
	campaign, err := h.service.Publish(r.Context(), id, storeID)
	if err != nil {
		respondError(w, r, err, map[string]interface{}{
			"campaign_id": id.String(),
			"store_id":    storeID.String(),
		})
		return
	}

	response.OK(w, CampaignResponseFromEntity(campaign))
}

// UpdateStatus handles PATCH /campaigns/{id}/status
// @Summary Update campaign status
// @Tags Campaign
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.Response{data=CampaignResponse}
// @Failure 400,403,404,422,500 {object} response.Response
// @Router /campaigns/{id}/status [patch]
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, NewJSONParseError(err), nil)
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	storeID := middleware.GetStoreID(r.Context())
	campaign, err := h.service.UpdateStatus(r.Context(), id, storeID, Status(req.Status))
	if err != nil {
		respondError(w, r, err, map[string]interface{}{
			"campaign_id": id.String(),
			"store_id":    storeID.String(),
			"next_status": req.Status,
		})
		return
	}

	response.OK(w, CampaignResponseFromEntity(campaign))
}

// Delete handles DELETE /campaigns/{id}
// @Summary Delete campaign
// @Tags Campaign
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 204 {string} string "No Content"
// @Failure 400,403,404,500 {object} response.Response
// @Router /campaigns/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid campaign ID")
		return
	}

	storeID := middleware.GetStoreID(r.Context())
	if err := h.service.Delete(r.Context(), id, storeID); err != nil {
		respondError(w, r, err, map[string]interface{}{
			"campaign_id": id.String(),
			"store_id":    storeID.String(),
		})
		return
	}

	response.NoContent(w)
}

// List handles GET /campaigns
// @Summary List campaigns
// @Tags Campaign
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param type query string false "Campaign type"
// @Param status query string false "Status"
// @Success 200 {object} response.Response{data=[]CampaignResponse}
// @Failure 500 {object} response.Response
// @Router /campaigns [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filter := &Filter{}
	query := r.URL.Query()

	if q := query.Get("q"); q != "" {
		filter.Query = &q
	}
	if t := query.Get("type"); t != "" {
		campaignType := Type(t)
		if _, err := SchemaFor(campaignType); err != nil {
			respondError(w, r, err, nil)
			return
		}
		filter.Type = &campaignType
	}
	if s := query.Get("status"); s != "" {
		status := Status(s)
		filter.Status = &status
	}
	if country := query.Get("country"); country != "" {
		filter.Country = &country
	}
	if city := query.Get("city"); city != "" {
		filter.City = &city
	}

	sortBy := SortByNewest
	if s := query.Get("sort"); s == "budget_desc" {
		sortBy = SortByBudgetDesc
	}

	page, limit := parsePagination(query.Get("page"), query.Get("limit"))
	pagination := &Pagination{Page: page, Limit: limit}

	campaigns, total, err := h.service.List(r.Context(), filter, sortBy, pagination)
	if err != nil {
		respondError(w, r, err, nil)
		return
	}

	items := make([]*CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		items[i] = CampaignResponseFromEntity(c)
	}

	response.WithMeta(w, items, response.Meta{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   (total + limit - 1) / limit,
		HasNext: page*limit < total,
		HasPrev: page > 1,
	})
}

// ListMy handles GET /campaigns/my
// @Summary My campaigns
// @Tags Campaign
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response{data=[]CampaignResponse}
// @Failure 401,500 {object} response.Response
// @Router /campaigns/my [get]
func (h *Handler) ListMy(w http.ResponseWriter, r *http.Request) {
	storeID := middleware.GetStoreID(r.Context())
	if storeID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	page, limit := parsePagination(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	pagination := &Pagination{Page: page, Limit: limit}

	campaigns, total, err := h.service.ListByStore(r.Context(), storeID, pagination)
	if err != nil {
		respondError(w, r, err, map[string]interface{}{"store_id": storeID.String()})
		return
	}

	items := make([]*CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		items[i] = CampaignResponseFromEntity(c)
	}

	response.WithMeta(w, items, response.Meta{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   (total + limit - 1) / limit,
		HasNext: page*limit < total,
		HasPrev: page > 1,
	})
}

func parsePagination(pageParam, limitParam string) (int, int) {
	page := 1
	limit := 20
	if pageParam != "" {
		if v, err := strconv.Atoi(pageParam); err == nil && v > 0 {
			page = v
		}
	}
	if limitParam != "" {
		if v, err := strconv.Atoi(limitParam); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	return page, limit
}
