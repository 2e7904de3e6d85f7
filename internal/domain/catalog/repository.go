package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines catalog data access interface
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	GetByID(ctx context.Context, id uuid.UUID) (*Entry, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, kind Kind) ([]*Entry, error)
	OwnedByStore(ctx context.Context, entryID, storeID uuid.UUID) (bool, error)
	Archive(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates catalog repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *Entry) error {
	query := `
		INSERT INTO catalog_entries (
			id, store_id, kind, title, description,
			price_amount, currency, image_url,
			sku, stock_quantity, duration_minutes,
			is_active
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10, $11,
			$12
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.StoreID, entry.Kind, entry.Title, entry.Description,
		entry.PriceAmount, entry.Currency, entry.ImageURL,
		entry.SKU, entry.StockQuantity, entry.DurationMinutes,
		entry.IsActive,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Entry, error) {
	query := `SELECT * FROM catalog_entries WHERE id = $1 AND is_active = true`
	var entry Entry
	err := r.db.GetContext(ctx, &entry, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *repository) ListByStore(ctx context.Context, storeID uuid.UUID, kind Kind) ([]*Entry, error) {
	query := `
		SELECT * FROM catalog_entries
		WHERE store_id = $1
		AND ($2 = '' OR kind = $2)
		AND is_active = true
		ORDER BY created_at DESC
	`
	var entries []*Entry
	err := r.db.SelectContext(ctx, &entries, query, storeID, kind)
	return entries, err
}

// OwnedByStore reports whether the entry exists, is active and belongs
// to the store. Backs the campaign product reference check.
func (r *repository) OwnedByStore(ctx context.Context, entryID, storeID uuid.UUID) (bool, error) {
	query := `
		SELECT COUNT(*) FROM catalog_entries
		WHERE id = $1 AND store_id = $2 AND is_active = true
	`
	var count int
	if err := r.db.GetContext(ctx, &count, query, entryID, storeID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Archive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE catalog_entries SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
