package campaign

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CreateCampaignRequest for POST /campaigns
type CreateCampaignRequest struct {
	Title         string   `json:"title" validate:"required,min=5,max=200"`
	Description   string   `json:"description" validate:"required,min=20,max=5000"`
	Budget        float64  `json:"budget" validate:"required,gt=0"`
	Currency      string   `json:"currency" validate:"required,currency_code"`
	DurationDays  *int     `json:"duration_days" validate:"omitempty,gt=0"`
	TargetCountry string   `json:"target_country" validate:"omitempty,max=100"`
	TargetCity    string   `json:"target_city" validate:"omitempty,max=100"`
	Platforms     []string `json:"platforms" validate:"omitempty,max=10,dive,max=50"`

	// Audience goals: awareness / advocacy / conversion tags
	GoalTags        []string `json:"goal_tags" validate:"omitempty,dive,oneof=awareness advocacy conversion"`
	ContentTypeTags []string `json:"content_type_tags" validate:"omitempty,dive,max=50"`

	// Checked against the supported-type registry in the service so
	// unknown tags surface with the full supported list
	Type string `json:"type" validate:"required"`

	// Payload matching the declared type; camelCase keys inside the blob.
	// Optional at creation: drafts may be created empty and filled later.
	TypeSpecificData json.RawMessage `json:"type_specific_data,omitempty"`
}

// UpdateCampaignRequest for PUT /campaigns/{id}
type UpdateCampaignRequest struct {
	Title         string   `json:"title" validate:"omitempty,min=5,max=200"`
	Description   string   `json:"description" validate:"omitempty,min=20,max=5000"`
	Budget        *float64 `json:"budget" validate:"omitempty,gt=0"`
	Currency      string   `json:"currency" validate:"omitempty,currency_code"`
	DurationDays  *int     `json:"duration_days" validate:"omitempty,gt=0"`
	TargetCountry string   `json:"target_country" validate:"omitempty,max=100"`
	TargetCity    string   `json:"target_city" validate:"omitempty,max=100"`
	Platforms     []string `json:"platforms" validate:"omitempty,max=10,dive,max=50"`

	GoalTags        []string `json:"goal_tags" validate:"omitempty,dive,oneof=awareness advocacy conversion"`
	ContentTypeTags []string `json:"content_type_tags" validate:"omitempty,dive,max=50"`

	// Changing the type is only allowed while the campaign is a draft
	Type string `json:"type"`

	TypeSpecificData json.RawMessage `json:"type_specific_data,omitempty"`
}

// UpdateStatusRequest for PATCH /campaigns/{id}/status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published active completed archived"`
}

// TypeInfoResponse describes one campaign type for pickers
type TypeInfoResponse struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// CampaignResponse represents a campaign in API responses
type CampaignResponse struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"store_id"`
	StoreName string    `json:"store_name,omitempty"`

	Title       string  `json:"title"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	Currency    string  `json:"currency"`

	DurationDays  *int32  `json:"duration_days,omitempty"`
	TargetCountry *string `json:"target_country,omitempty"`
	TargetCity    *string `json:"target_city,omitempty"`

	Platforms       []string `json:"platforms,omitempty"`
	GoalTags        []string `json:"goal_tags,omitempty"`
	ContentTypeTags []string `json:"content_type_tags,omitempty"`

	Type      string `json:"type"`
	TypeLabel string `json:"type_label"`
	TypeIcon  string `json:"type_icon"`

	// TypeSpecificData is the re-validated payload; null when the stored
	// blob is absent or no longer passes its type's schema.
	TypeSpecificData TypeSpecificData `json:"type_specific_data"`
	HasValidData     bool             `json:"has_valid_type_specific_data"`

	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CampaignResponseFromEntity converts entity to response DTO. The stored
// payload goes through the defensive extractor so callers never see data
// that fails its own type's schema.
func CampaignResponseFromEntity(c *Campaign) *CampaignResponse {
	resp := &CampaignResponse{
		ID:              c.ID,
		StoreID:         c.StoreID,
		StoreName:       c.StoreName,
		Title:           c.Title,
		Description:     c.Description,
		Budget:          c.Budget,
		Currency:        c.Currency,
		Platforms:       []string(c.Platforms),
		GoalTags:        []string(c.GoalTags),
		ContentTypeTags: []string(c.ContentTypeTags),
		Type:            string(c.Type),
		TypeLabel:       TypeLabel(c.Type),
		TypeIcon:        TypeIcon(c.Type),
		Status:          string(c.Status),
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt.Format(time.RFC3339),
	}

	if c.DurationDays.Valid {
		v := c.DurationDays.Int32
		resp.DurationDays = &v
	}
	if c.TargetCountry.Valid {
		resp.TargetCountry = &c.TargetCountry.String
	}
	if c.TargetCity.Valid {
		resp.TargetCity = &c.TargetCity.String
	}

	resp.TypeSpecificData = ExtractTypeSpecificData(c)
	resp.HasValidData = resp.TypeSpecificData != nil

	return resp
}
