package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Service handles catalog business logic. It doubles as the product
// directory backing campaign product reference checks.
type Service struct {
	repo Repository
}

// NewService creates catalog service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new catalog entry for the store
func (s *Service) Create(ctx context.Context, storeID uuid.UUID, req *CreateEntryRequest) (*Entry, error) {
	now := time.Now()
	entry := &Entry{
		ID:          uuid.New(),
		StoreID:     storeID,
		Kind:        Kind(req.Kind),
		Title:       req.Title,
		Description: req.Description,
		PriceAmount: req.PriceAmount,
		Currency:    req.Currency,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.ImageURL != "" {
		entry.ImageURL = sql.NullString{String: req.ImageURL, Valid: true}
	}
	if req.SKU != "" {
		entry.SKU = sql.NullString{String: req.SKU, Valid: true}
	}
	if req.StockQuantity != nil {
		entry.StockQuantity = sql.NullInt32{Int32: int32(*req.StockQuantity), Valid: true}
	}
	if req.DurationMinutes != nil {
		entry.DurationMinutes = sql.NullInt32{Int32: int32(*req.DurationMinutes), Valid: true}
	}

	if err := entry.ValidateKindFields(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetByID returns entry by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Entry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

// ListByStore returns a store's active entries, optionally by kind
func (s *Service) ListByStore(ctx context.Context, storeID uuid.UUID, kind Kind) ([]*Entry, error) {
	return s.repo.ListByStore(ctx, storeID, kind)
}

// OwnedByStore reports whether the product entry belongs to the store.
// Satisfies the campaign service's product directory dependency. Only
// product-kind entries count: a campaign cannot promote a service as a
// product.
func (s *Service) OwnedByStore(ctx context.Context, entryID, storeID uuid.UUID) (bool, error) {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return false, err
	}
	if entry == nil || !entry.IsProduct() {
		return false, nil
	}
	return entry.IsOwnedBy(storeID), nil
}

// Archive retires an entry owned by the store
func (s *Service) Archive(ctx context.Context, entryID, storeID uuid.UUID) error {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrEntryNotFound
	}
	if !entry.IsOwnedBy(storeID) {
		return ErrNotEntryOwner
	}
	return s.repo.Archive(ctx, entryID)
}
