package coupon

import (
	"time"

	"github.com/google/uuid"
)

// CreateCouponRequest for POST /coupons
type CreateCouponRequest struct {
	Code        string `json:"code" validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"omitempty,max=500"`

	PercentOff *float64 `json:"percent_off" validate:"omitempty,gt=0,lte=100"`
	AmountOff  *float64 `json:"amount_off" validate:"omitempty,gt=0"`
	Currency   string   `json:"currency" validate:"omitempty,currency_code"`

	ValidFrom  *time.Time `json:"valid_from"`
	ValidUntil *time.Time `json:"valid_until"`

	MaxRedemptions *int `json:"max_redemptions" validate:"omitempty,gt=0"`
}

// CouponResponse represents a coupon in API responses
type CouponResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`

	PercentOff *float64 `json:"percent_off,omitempty"`
	AmountOff  *float64 `json:"amount_off,omitempty"`
	Currency   string   `json:"currency,omitempty"`

	ValidFrom  string `json:"valid_from"`
	ValidUntil string `json:"valid_until,omitempty"`

	MaxRedemptions *int32 `json:"max_redemptions,omitempty"`
	Redemptions    int    `json:"redemptions"`

	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// CouponResponseFromEntity converts entity to response DTO
func CouponResponseFromEntity(c *Coupon) *CouponResponse {
	resp := &CouponResponse{
		ID:          c.ID,
		Code:        c.Code,
		Redemptions: c.Redemptions,
		IsActive:    c.IsActive,
		ValidFrom:   c.ValidFrom.Format(time.RFC3339),
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
	if c.Description.Valid {
		resp.Description = c.Description.String
	}
	if c.PercentOff.Valid {
		resp.PercentOff = &c.PercentOff.Float64
	}
	if c.AmountOff.Valid {
		resp.AmountOff = &c.AmountOff.Float64
	}
	if c.Currency.Valid {
		resp.Currency = c.Currency.String
	}
	if c.ValidUntil.Valid {
		resp.ValidUntil = c.ValidUntil.Time.Format(time.RFC3339)
	}
	if c.MaxRedemptions.Valid {
		resp.MaxRedemptions = &c.MaxRedemptions.Int32
	}
	return resp
}
