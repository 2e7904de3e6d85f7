package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Service handles store business logic
type Service struct {
	repo Repository
}

// NewService creates store service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByID returns store by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Store, error) {
	store, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	return store, nil
}

// GetBySlug returns store by slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Store, error) {
	store, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	return store, nil
}

// GetMine returns the store owned by the given user
func (s *Service) GetMine(ctx context.Context, userID uuid.UUID) (*Store, error) {
	store, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}
	return store, nil
}

// UpdateMine updates the caller's store profile
func (s *Service) UpdateMine(ctx context.Context, userID uuid.UUID, req *UpdateStoreRequest) (*Store, error) {
	store, err := s.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		store.Name = req.Name
	}
	if req.Description != "" {
		store.Description = sql.NullString{String: req.Description, Valid: true}
	}
	if req.LogoURL != "" {
		store.LogoURL = sql.NullString{String: req.LogoURL, Valid: true}
	}
	if req.WebsiteURL != "" {
		store.WebsiteURL = sql.NullString{String: req.WebsiteURL, Valid: true}
	}
	if req.Country != "" {
		store.Country = sql.NullString{String: req.Country, Valid: true}
	}
	if req.City != "" {
		store.City = sql.NullString{String: req.City, Valid: true}
	}

	if err := s.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}
