package coupon

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Coupon represents a store discount code (matches coupons table).
// DISCOUNT campaigns reference coupons by ID.
type Coupon struct {
	ID        uuid.UUID `db:"id"`
	StoreID   uuid.UUID `db:"store_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Code        string         `db:"code"`
	Description sql.NullString `db:"description"`

	// Exactly one of percent / amount is set
	PercentOff sql.NullFloat64 `db:"percent_off"`
	AmountOff  sql.NullFloat64 `db:"amount_off"`
	Currency   sql.NullString  `db:"currency"`

	ValidFrom  time.Time    `db:"valid_from"`
	ValidUntil sql.NullTime `db:"valid_until"`

	MaxRedemptions sql.NullInt32 `db:"max_redemptions"`
	Redemptions    int           `db:"redemptions"`

	IsActive bool `db:"is_active"`
}

// IsUsable reports whether the coupon can currently be redeemed
func (c *Coupon) IsUsable(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if now.Before(c.ValidFrom) {
		return false
	}
	if c.ValidUntil.Valid && now.After(c.ValidUntil.Time) {
		return false
	}
	if c.MaxRedemptions.Valid && c.Redemptions >= int(c.MaxRedemptions.Int32) {
		return false
	}
	return true
}

// IsOwnedBy checks if the given store owns this coupon
func (c *Coupon) IsOwnedBy(storeID uuid.UUID) bool {
	return c.StoreID == storeID
}
