package upload

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/brandlink/brandlink-api/internal/domain/campaign"
	"github.com/brandlink/brandlink-api/internal/middleware"
	"github.com/brandlink/brandlink-api/internal/pkg/response"
)

// maxMultipartMemory bounds the in-memory part of multipart parsing;
// larger bodies spill to temp files.
const maxMultipartMemory = 32 << 20

// Handler handles asset upload HTTP requests
type Handler struct {
	service        *Service
	stagingBaseURL string
}

// NewHandler creates upload handler
func NewHandler(service *Service, stagingBaseURL string) *Handler {
	return &Handler{
		service:        service,
		stagingBaseURL: stagingBaseURL,
	}
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrAssetNotFound):
		response.NotFound(w, "Asset not found")
	case errors.Is(err, ErrNotAssetOwner):
		response.Forbidden(w, "You can only manage your own assets")
	case errors.Is(err, ErrAlreadyCommitted):
		response.Conflict(w, "Asset is already committed")
	case errors.Is(err, ErrAssetExpired):
		response.BadRequest(w, "Staged asset has expired, upload it again")
	default:
		var domainErr *campaign.Error
		if errors.As(err, &domainErr) {
			resp, status := campaign.FormatErrorResponse(err)
			response.Write(w, status, resp)
			return
		}
		response.InternalError(w)
	}
}

// StageVideo handles POST /uploads/video
// @Summary Upload campaign video
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Video file"
// @Success 201 {object} response.Response{data=AssetResponse}
// @Failure 400,401,500 {object} response.Response
// @Router /uploads/video [post]
func (h *Handler) StageVideo(w http.ResponseWriter, r *http.Request) {
	storeID := middleware.GetStoreID(r.Context())
	if storeID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file field")
		return
	}
	defer file.Close()

	asset, err := h.service.StageVideo(r.Context(), storeID, header.Filename, file)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response.Created(w, AssetResponseFromEntity(asset, h.stagingBaseURL))
}

// StageImage handles POST /uploads/image
// @Summary Upload campaign cover image
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} response.Response{data=AssetResponse}
// @Failure 400,401,500 {object} response.Response
// @Router /uploads/image [post]
func (h *Handler) StageImage(w http.ResponseWriter, r *http.Request) {
	storeID := middleware.GetStoreID(r.Context())
	if storeID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file field")
		return
	}
	defer file.Close()

	asset, err := h.service.StageImage(r.Context(), storeID, header.Filename, file)
	if err != nil {
		response.BadRequest(w, "Invalid image file")
		return
	}

	response.Created(w, AssetResponseFromEntity(asset, h.stagingBaseURL))
}

// Commit handles POST /uploads/{id}/commit
// @Summary Commit a staged asset
// @Tags Upload
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Success 200 {object} response.Response{data=AssetResponse}
// @Failure 400,403,404,409,500 {object} response.Response
// @Router /uploads/{id}/commit [post]
func (h *Handler) Commit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid asset ID")
		return
	}

	storeID := middleware.GetStoreID(r.Context())
	asset, err := h.service.Commit(r.Context(), id, storeID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response.OK(w, AssetResponseFromEntity(asset, h.stagingBaseURL))
}

// Delete handles DELETE /uploads/{id}
// @Summary Delete an asset
// @Tags Upload
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Success 204 {string} string "No Content"
// @Failure 400,403,404,500 {object} response.Response
// @Router /uploads/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid asset ID")
		return
	}

	storeID := middleware.GetStoreID(r.Context())
	if err := h.service.Delete(r.Context(), id, storeID); err != nil {
		h.respondError(w, err)
		return
	}

	response.NoContent(w)
}

// ListMy handles GET /uploads/my
// @Summary My assets
// @Tags Upload
// @Produce json
// @Security BearerAuth
// @Param category query string false "Asset category"
// @Success 200 {object} response.Response{data=[]AssetResponse}
// @Failure 401,500 {object} response.Response
// @Router /uploads/my [get]
func (h *Handler) ListMy(w http.ResponseWriter, r *http.Request) {
	storeID := middleware.GetStoreID(r.Context())
	if storeID == uuid.Nil {
		response.Unauthorized(w, "unauthorized")
		return
	}

	category := Category(r.URL.Query().Get("category"))
	assets, err := h.service.ListByStore(r.Context(), storeID, category)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*AssetResponse, len(assets))
	for i, a := range assets {
		items[i] = AssetResponseFromEntity(a, h.stagingBaseURL)
	}

	response.OK(w, items)
}
