package coupon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines coupon data access interface
type Repository interface {
	Create(ctx context.Context, coupon *Coupon) error
	GetByID(ctx context.Context, id uuid.UUID) (*Coupon, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*Coupon, error)
	OwnedByStore(ctx context.Context, couponID, storeID uuid.UUID) (bool, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates coupon repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, coupon *Coupon) error {
	query := `
		INSERT INTO coupons (
			id, store_id, code, description,
			percent_off, amount_off, currency,
			valid_from, valid_until, max_redemptions,
			redemptions, is_active
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10,
			$11, $12
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		coupon.ID, coupon.StoreID, coupon.Code, coupon.Description,
		coupon.PercentOff, coupon.AmountOff, coupon.Currency,
		coupon.ValidFrom, coupon.ValidUntil, coupon.MaxRedemptions,
		coupon.Redemptions, coupon.IsActive,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%w: %w", ErrDuplicateCode, err)
		}
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Coupon, error) {
	query := `SELECT * FROM coupons WHERE id = $1`
	var coupon Coupon
	err := r.db.GetContext(ctx, &coupon, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *repository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*Coupon, error) {
	query := `
		SELECT * FROM coupons
		WHERE store_id = $1 AND is_active = true
		ORDER BY created_at DESC
	`
	var coupons []*Coupon
	err := r.db.SelectContext(ctx, &coupons, query, storeID)
	return coupons, err
}

// OwnedByStore reports whether the coupon exists, is usable and belongs
// to the store. Backs the campaign discount reference check.
func (r *repository) OwnedByStore(ctx context.Context, couponID, storeID uuid.UUID) (bool, error) {
	query := `
		SELECT COUNT(*) FROM coupons
		WHERE id = $1 AND store_id = $2 AND is_active = true
	`
	var count int
	if err := r.db.GetContext(ctx, &count, query, couponID, storeID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE coupons SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
