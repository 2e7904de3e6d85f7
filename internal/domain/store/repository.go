package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines store data access interface
type Repository interface {
	Create(ctx context.Context, store *Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*Store, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Store, error)
	GetBySlug(ctx context.Context, slug string) (*Store, error)
	Update(ctx context.Context, store *Store) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates store repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, store *Store) error {
	query := `
		INSERT INTO stores (
			id, user_id, name, slug, description,
			logo_url, website_url, country, city, is_active
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		store.ID, store.UserID, store.Name, store.Slug, store.Description,
		store.LogoURL, store.WebsiteURL, store.Country, store.City, store.IsActive,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%w: %w", ErrDuplicateSlug, err)
		}
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Store, error) {
	query := `SELECT * FROM stores WHERE id = $1 AND is_active = true`
	var store Store
	err := r.db.GetContext(ctx, &store, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Store, error) {
	query := `SELECT * FROM stores WHERE user_id = $1 AND is_active = true`
	var store Store
	err := r.db.GetContext(ctx, &store, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Store, error) {
	query := `SELECT * FROM stores WHERE slug = $1 AND is_active = true`
	var store Store
	err := r.db.GetContext(ctx, &store, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *repository) Update(ctx context.Context, store *Store) error {
	query := `
		UPDATE stores SET
			name = $2, description = $3,
			logo_url = $4, website_url = $5,
			country = $6, city = $7,
			updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		store.ID,
		store.Name, store.Description,
		store.LogoURL, store.WebsiteURL,
		store.Country, store.City,
	)
	return err
}
