package catalog

import (
	"time"

	"github.com/google/uuid"
)

// CreateEntryRequest for POST /catalog
type CreateEntryRequest struct {
	Kind        string  `json:"kind" validate:"required,oneof=product service"`
	Title       string  `json:"title" validate:"required,min=2,max=200"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	PriceAmount float64 `json:"price_amount" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"required,currency_code"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`

	// Product only
	SKU           string `json:"sku" validate:"omitempty,max=100"`
	StockQuantity *int   `json:"stock_quantity" validate:"omitempty,gte=0"`

	// Service only
	DurationMinutes *int `json:"duration_minutes" validate:"omitempty,gt=0"`
}

// EntryResponse represents a catalog entry in API responses
type EntryResponse struct {
	ID          uuid.UUID `json:"id"`
	StoreID     uuid.UUID `json:"store_id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PriceAmount float64   `json:"price_amount"`
	Currency    string    `json:"currency"`
	ImageURL    string    `json:"image_url,omitempty"`

	SKU             string `json:"sku,omitempty"`
	StockQuantity   *int32 `json:"stock_quantity,omitempty"`
	DurationMinutes *int32 `json:"duration_minutes,omitempty"`

	CreatedAt string `json:"created_at"`
}

// EntryResponseFromEntity converts entity to response DTO
func EntryResponseFromEntity(e *Entry) *EntryResponse {
	resp := &EntryResponse{
		ID:          e.ID,
		StoreID:     e.StoreID,
		Kind:        string(e.Kind),
		Title:       e.Title,
		Description: e.Description,
		PriceAmount: e.PriceAmount,
		Currency:    e.Currency,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
	if e.ImageURL.Valid {
		resp.ImageURL = e.ImageURL.String
	}
	if e.SKU.Valid {
		resp.SKU = e.SKU.String
	}
	if e.StockQuantity.Valid {
		resp.StockQuantity = &e.StockQuantity.Int32
	}
	if e.DurationMinutes.Valid {
		resp.DurationMinutes = &e.DurationMinutes.Int32
	}
	return resp
}
