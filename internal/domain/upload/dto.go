package upload

import (
	"time"

	"github.com/google/uuid"
)

// AssetResponse represents an asset in API responses
type AssetResponse struct {
	ID           uuid.UUID `json:"id"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	CreatedAt    string    `json:"created_at"`
	ExpiresAt    string    `json:"expires_at,omitempty"`
}

// AssetResponseFromEntity converts entity to response DTO
func AssetResponseFromEntity(a *Asset, stagingBaseURL string) *AssetResponse {
	resp := &AssetResponse{
		ID:           a.ID,
		Category:     string(a.Category),
		Status:       string(a.Status),
		OriginalName: a.OriginalName,
		MimeType:     a.MimeType,
		Size:         a.SizeValue(),
		URL:          a.URL(stagingBaseURL),
		ThumbnailURL: a.ThumbnailURL,
		Width:        a.Width,
		Height:       a.Height,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
	if a.IsStaged() {
		resp.ExpiresAt = a.ExpiresAt.Format(time.RFC3339)
	}
	return resp
}
