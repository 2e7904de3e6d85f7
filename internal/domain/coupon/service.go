package coupon

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Service handles coupon business logic. It doubles as the coupon
// directory backing campaign discount reference checks.
type Service struct {
	repo Repository
}

// NewService creates coupon service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new coupon for the store
func (s *Service) Create(ctx context.Context, storeID uuid.UUID, req *CreateCouponRequest) (*Coupon, error) {
	if req.PercentOff == nil && req.AmountOff == nil {
		return nil, ErrNoDiscountValue
	}

	now := time.Now()
	coupon := &Coupon{
		ID:        uuid.New(),
		StoreID:   storeID,
		Code:      req.Code,
		ValidFrom: now,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.Description != "" {
		coupon.Description = sql.NullString{String: req.Description, Valid: true}
	}
	if req.PercentOff != nil {
		coupon.PercentOff = sql.NullFloat64{Float64: *req.PercentOff, Valid: true}
	}
	if req.AmountOff != nil {
		coupon.AmountOff = sql.NullFloat64{Float64: *req.AmountOff, Valid: true}
		if req.Currency != "" {
			coupon.Currency = sql.NullString{String: req.Currency, Valid: true}
		}
	}
	if req.ValidFrom != nil {
		coupon.ValidFrom = *req.ValidFrom
	}
	if req.ValidUntil != nil {
		coupon.ValidUntil = sql.NullTime{Time: *req.ValidUntil, Valid: true}
	}
	if req.MaxRedemptions != nil {
		coupon.MaxRedemptions = sql.NullInt32{Int32: int32(*req.MaxRedemptions), Valid: true}
	}

	if err := s.repo.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// GetByID returns coupon by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Coupon, error) {
	coupon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

// ListByStore returns a store's active coupons
func (s *Service) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*Coupon, error) {
	return s.repo.ListByStore(ctx, storeID)
}

// OwnedByStore reports whether the coupon is usable by the store.
// Satisfies the campaign service's coupon directory dependency.
func (s *Service) OwnedByStore(ctx context.Context, couponID, storeID uuid.UUID) (bool, error) {
	return s.repo.OwnedByStore(ctx, couponID, storeID)
}

// Deactivate retires a coupon owned by the store
func (s *Service) Deactivate(ctx context.Context, couponID, storeID uuid.UUID) error {
	coupon, err := s.repo.GetByID(ctx, couponID)
	if err != nil {
		return err
	}
	if coupon == nil {
		return ErrCouponNotFound
	}
	if !coupon.IsOwnedBy(storeID) {
		return ErrNotCouponOwner
	}
	return s.repo.Deactivate(ctx, couponID)
}
