package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Store represents a brand storefront (matches stores table). Campaigns,
// coupons and catalog entries all hang off a store.
type Store struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Name        string         `db:"name"`
	Slug        string         `db:"slug"`
	Description sql.NullString `db:"description"`
	LogoURL     sql.NullString `db:"logo_url"`
	WebsiteURL  sql.NullString `db:"website_url"`

	Country sql.NullString `db:"country"`
	City    sql.NullString `db:"city"`

	IsActive bool `db:"is_active"`
}

// IsOwnedBy checks if the given user owns this store
func (s *Store) IsOwnedBy(userID uuid.UUID) bool {
	return s.UserID == userID
}
