package upload

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines asset data access interface
type Repository interface {
	Create(ctx context.Context, asset *Asset) error
	GetByID(ctx context.Context, id uuid.UUID) (*Asset, error)
	Update(ctx context.Context, asset *Asset) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByStore(ctx context.Context, storeID uuid.UUID, category Category) ([]*Asset, error)
	ListExpired(ctx context.Context, before time.Time) ([]*Asset, error)
	DeleteExpired(ctx context.Context, before time.Time) (int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates asset repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, asset *Asset) error {
	query := `
		INSERT INTO campaign_assets (
			id, store_id, category, status,
			original_name, mime_type, size,
			staging_key, permanent_key, permanent_url,
			thumbnail_key, thumbnail_url,
			width, height, error_message,
			created_at, committed_at, expires_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7,
			$8, $9, $10,
			$11, $12,
			$13, $14, $15,
			$16, $17, $18
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.StoreID, asset.Category, asset.Status,
		asset.OriginalName, asset.MimeType, asset.Size,
		asset.StagingKey, asset.PermanentKey, asset.PermanentURL,
		asset.ThumbnailKey, asset.ThumbnailURL,
		asset.Width, asset.Height, asset.ErrorMessage,
		asset.CreatedAt, asset.CommittedAt, asset.ExpiresAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Asset, error) {
	query := `SELECT * FROM campaign_assets WHERE id = $1 AND status != 'deleted'`
	var asset Asset
	err := r.db.GetContext(ctx, &asset, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &asset, nil
}

func (r *repository) Update(ctx context.Context, asset *Asset) error {
	query := `
		UPDATE campaign_assets SET
			status = $2,
			permanent_key = $3,
			permanent_url = $4,
			thumbnail_key = $5,
			thumbnail_url = $6,
			width = $7,
			height = $8,
			error_message = $9,
			committed_at = $10
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.Status,
		asset.PermanentKey,
		asset.PermanentURL,
		asset.ThumbnailKey,
		asset.ThumbnailURL,
		asset.Width,
		asset.Height,
		asset.ErrorMessage,
		asset.CommittedAt,
	)
	return err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE campaign_assets SET status = 'deleted' WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *repository) ListByStore(ctx context.Context, storeID uuid.UUID, category Category) ([]*Asset, error) {
	query := `
		SELECT * FROM campaign_assets
		WHERE store_id = $1
		AND ($2 = '' OR category = $2)
		AND status = 'committed'
		ORDER BY created_at DESC
	`
	var assets []*Asset
	err := r.db.SelectContext(ctx, &assets, query, storeID, category)
	return assets, err
}

func (r *repository) ListExpired(ctx context.Context, before time.Time) ([]*Asset, error) {
	query := `
		SELECT * FROM campaign_assets
		WHERE status = 'staged'
		AND expires_at < $1
	`
	var assets []*Asset
	err := r.db.SelectContext(ctx, &assets, query, before)
	return assets, err
}

func (r *repository) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	query := `
		DELETE FROM campaign_assets
		WHERE status = 'staged'
		AND expires_at < $1
		RETURNING id
	`
	result, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, err
	}
	count, _ := result.RowsAffected()
	return int(count), nil
}
