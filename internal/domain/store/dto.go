package store

import (
	"time"

	"github.com/google/uuid"
)

// UpdateStoreRequest for PUT /stores/me
type UpdateStoreRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
	WebsiteURL  string `json:"website_url" validate:"omitempty,url"`
	Country     string `json:"country" validate:"omitempty,max=100"`
	City        string `json:"city" validate:"omitempty,max=100"`
}

// StoreResponse represents a store in API responses
type StoreResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty"`
	WebsiteURL  string    `json:"website_url,omitempty"`
	Country     string    `json:"country,omitempty"`
	City        string    `json:"city,omitempty"`
	CreatedAt   string    `json:"created_at"`
}

// StoreResponseFromEntity converts entity to response DTO
func StoreResponseFromEntity(s *Store) *StoreResponse {
	resp := &StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Slug:      s.Slug,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
	if s.Description.Valid {
		resp.Description = s.Description.String
	}
	if s.LogoURL.Valid {
		resp.LogoURL = s.LogoURL.String
	}
	if s.WebsiteURL.Valid {
		resp.WebsiteURL = s.WebsiteURL.String
	}
	if s.Country.Valid {
		resp.Country = s.Country.String
	}
	if s.City.Valid {
		resp.City = s.City.String
	}
	return resp
}
