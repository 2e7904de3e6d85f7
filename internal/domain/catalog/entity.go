package catalog

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates catalog entries: physical products versus booked
// services. Kind-specific columns are nullable and validated per kind.
type Kind string

const (
	KindProduct Kind = "product"
	KindService Kind = "service"
)

// SupportedKinds returns the closed set of entry kinds
func SupportedKinds() []Kind {
	return []Kind{KindProduct, KindService}
}

// Entry represents a store catalog entry (matches catalog_entries table).
// PRODUCT campaigns reference entries of kind product.
type Entry struct {
	ID        uuid.UUID `db:"id"`
	StoreID   uuid.UUID `db:"store_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Kind        Kind    `db:"kind"`
	Title       string  `db:"title"`
	Description string  `db:"description"`
	PriceAmount float64 `db:"price_amount"`
	Currency    string  `db:"currency"`
	ImageURL    sql.NullString `db:"image_url"`

	// Product only
	SKU           sql.NullString `db:"sku"`
	StockQuantity sql.NullInt32  `db:"stock_quantity"`

	// Service only
	DurationMinutes sql.NullInt32 `db:"duration_minutes"`

	IsActive bool `db:"is_active"`
}

// IsProduct reports whether the entry is a physical product
func (e *Entry) IsProduct() bool {
	return e.Kind == KindProduct
}

// IsService reports whether the entry is a bookable service
func (e *Entry) IsService() bool {
	return e.Kind == KindService
}

// IsOwnedBy checks if the given store owns this entry
func (e *Entry) IsOwnedBy(storeID uuid.UUID) bool {
	return e.StoreID == storeID
}

// ValidateKindFields checks the kind-specific constraints: services need
// a positive duration, products must not carry one.
func (e *Entry) ValidateKindFields() error {
	switch e.Kind {
	case KindProduct:
		if e.DurationMinutes.Valid {
			return ErrProductWithDuration
		}
	case KindService:
		if !e.DurationMinutes.Valid || e.DurationMinutes.Int32 <= 0 {
			return ErrServiceNeedsDuration
		}
		if e.SKU.Valid || e.StockQuantity.Valid {
			return ErrServiceWithStock
		}
	default:
		return ErrUnknownKind
	}
	return nil
}
