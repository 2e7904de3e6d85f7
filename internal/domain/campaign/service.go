package campaign

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// CouponDirectory is the narrow view of the coupon domain the campaign
// service needs for reference checks.
type CouponDirectory interface {
	OwnedByStore(ctx context.Context, couponID, storeID uuid.UUID) (bool, error)
}

// ProductDirectory is the narrow view of the catalog domain the campaign
// service needs for reference checks.
type ProductDirectory interface {
	OwnedByStore(ctx context.Context, productID, storeID uuid.UUID) (bool, error)
}

// Service handles campaign business logic
type Service struct {
	repo     Repository
	coupons  CouponDirectory
	products ProductDirectory
}

// NewService creates campaign service
func NewService(repo Repository, coupons CouponDirectory, products ProductDirectory) *Service {
	return &Service{
		repo:     repo,
		coupons:  coupons,
		products: products,
	}
}

// validateAndSerializePayload runs the declared type's schema over the
// raw payload and returns the storage blob. Schema violations surface as
// InvalidTypeSpecificData; unknown tags and unparsable JSON keep their
// own taxonomy kinds.
func (s *Service) validateAndSerializePayload(ctx context.Context, storeID uuid.UUID, t Type, raw []byte) ([]byte, error) {
	result, err := ValidateTypeData(t, raw)
	if err != nil {
		return nil, err
	}
	if !result.OK {
		return nil, NewInvalidTypeSpecificData(result.Violations)
	}

	if err := s.checkReferences(ctx, storeID, result.Data); err != nil {
		return nil, err
	}

	blob, err := SerializeTypeSpecificData(result.Data)
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// checkReferences verifies that payload-embedded identifiers resolve to
// records owned by the caller's store.
func (s *Service) checkReferences(ctx context.Context, storeID uuid.UUID, data TypeSpecificData) error {
	switch payload := data.(type) {
	case *DiscountData:
		if payload.DiscountID == "" {
			return nil
		}
		couponID, err := uuid.Parse(payload.DiscountID)
		if err != nil {
			return NewInvalidCouponReference(payload.DiscountID)
		}
		owned, err := s.coupons.OwnedByStore(ctx, couponID, storeID)
		if err != nil {
			return err
		}
		if !owned {
			return NewInvalidCouponReference(payload.DiscountID)
		}
	case *ProductData:
		if payload.ProductID == "" {
			return nil
		}
		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			return NewInvalidProductReference(payload.ProductID)
		}
		owned, err := s.products.OwnedByStore(ctx, productID, storeID)
		if err != nil {
			return err
		}
		if !owned {
			return NewInvalidProductReference(payload.ProductID)
		}
	}
	return nil
}

// Create creates a new campaign in draft status. The type-specific
// payload is optional at creation; when present it must validate against
// the declared type.
func (s *Service) Create(ctx context.Context, storeID uuid.UUID, req *CreateCampaignRequest) (*Campaign, error) {
	campaignType := Type(req.Type)
	if _, err := SchemaFor(campaignType); err != nil {
		return nil, err
	}

	now := time.Now()
	c := &Campaign{
		ID:          uuid.New(),
		StoreID:     storeID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Currency:    req.Currency,
		Platforms:   req.Platforms,
		GoalTags:    req.GoalTags,
		Type:        campaignType,
		Status:      StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	c.ContentTypeTags = req.ContentTypeTags

	if req.DurationDays != nil {
		c.DurationDays = sql.NullInt32{Int32: int32(*req.DurationDays), Valid: true}
	}
	if req.TargetCountry != "" {
		c.TargetCountry = sql.NullString{String: req.TargetCountry, Valid: true}
	}
	if req.TargetCity != "" {
		c.TargetCity = sql.NullString{String: req.TargetCity, Valid: true}
	}

	if !isEmptyJSON(req.TypeSpecificData) {
		blob, err := s.validateAndSerializePayload(ctx, storeID, campaignType, req.TypeSpecificData)
		if err != nil {
			return nil, err
		}
		c.TypeSpecificData = blob
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// GetByID returns campaign by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Campaign, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NewCampaignNotFound(id)
	}
	return c, nil
}

// Update updates a campaign. The payload is replaced atomically with the
// campaign record; changing the type discriminant is rejected once the
// campaign has left draft.
func (s *Service) Update(ctx context.Context, id, storeID uuid.UUID, req *UpdateCampaignRequest) (*Campaign, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NewCampaignNotFound(id)
	}

	if !c.CanBeEditedBy(storeID) {
		return nil, NewPermissionDenied()
	}

	if req.Type != "" && Type(req.Type) != c.Type {
		if !c.CanChangeType() {
			return nil, NewTypeChangeNotAllowed(c.Status)
		}
		newType := Type(req.Type)
		if _, err := SchemaFor(newType); err != nil {
			return nil, err
		}
		c.Type = newType
		// The old payload no longer matches the new discriminant.
		c.TypeSpecificData = nil
	}

	if req.Title != "" {
		c.Title = req.Title
	}
	if req.Description != "" {
		c.Description = req.Description
	}
	if req.Budget != nil {
		c.Budget = *req.Budget
	}
	if req.Currency != "" {
		c.Currency = req.Currency
	}
	if req.DurationDays != nil {
		c.DurationDays = sql.NullInt32{Int32: int32(*req.DurationDays), Valid: true}
	}
	if req.TargetCountry != "" {
		c.TargetCountry = sql.NullString{String: req.TargetCountry, Valid: true}
	}
	if req.TargetCity != "" {
		c.TargetCity = sql.NullString{String: req.TargetCity, Valid: true}
	}
	if req.Platforms != nil {
		c.Platforms = req.Platforms
	}
	if req.GoalTags != nil {
		c.GoalTags = req.GoalTags
	}
	if req.ContentTypeTags != nil {
		c.ContentTypeTags = req.ContentTypeTags
	}

	if !isEmptyJSON(req.TypeSpecificData) {
		blob, err := s.validateAndSerializePayload(ctx, storeID, c.Type, req.TypeSpecificData)
		if err != nil {
			return nil, err
		}
		c.TypeSpecificData = blob
	}

	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Publish moves a draft campaign to published. Gated on the stored
// payload validating against the campaign's declared type.
func (s *Service) Publish(ctx context.Context, id, storeID uuid.UUID) (*Campaign, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NewCampaignNotFound(id)
	}

	if !c.CanBeEditedBy(storeID) {
		return nil, NewPermissionDenied()
	}

	if err := validateStatusTransition(c.Status, StatusPublished); err != nil {
		return nil, err
	}

	if err := s.publishGate(c); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusPublished); err != nil {
		return nil, err
	}

	c.Status = StatusPublished
	return c, nil
}

// publishGate re-validates the stored blob and reports why a campaign is
// not publishable.
func (s *Service) publishGate(c *Campaign) error {
	if isEmptyJSON(c.TypeSpecificData) {
		return NewMissingTypeSpecificData(c.Type)
	}
	result, err := ValidateTypeData(c.Type, c.TypeSpecificData)
	if err != nil {
		return err
	}
	if !result.OK {
		return NewInvalidTypeSpecificData(result.Violations)
	}
	return nil
}

// UpdateStatus updates campaign status. Publishing routes through the
// same payload gate as Publish.
func (s *Service) UpdateStatus(ctx context.Context, id, storeID uuid.UUID, status Status) (*Campaign, error) {
	if status == StatusPublished {
		return s.Publish(ctx, id, storeID)
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, NewCampaignNotFound(id)
	}

	if !c.CanBeEditedBy(storeID) {
		return nil, NewPermissionDenied()
	}

	if err := validateStatusTransition(c.Status, status); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	c.Status = status
	return c, nil
}

// Delete soft-deletes a campaign
func (s *Service) Delete(ctx context.Context, id, storeID uuid.UUID) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return NewCampaignNotFound(id)
	}

	if !c.CanBeEditedBy(storeID) {
		return NewPermissionDenied()
	}

	return s.repo.Delete(ctx, id)
}

// List returns campaigns with filters
func (s *Service) List(ctx context.Context, filter *Filter, sortBy SortBy, pagination *Pagination) ([]*Campaign, int, error) {
	return s.repo.List(ctx, filter, sortBy, pagination)
}

// ListByStore returns campaigns owned by a store
func (s *Service) ListByStore(ctx context.Context, storeID uuid.UUID, pagination *Pagination) ([]*Campaign, int, error) {
	filter := &Filter{StoreID: &storeID}
	return s.repo.List(ctx, filter, SortByNewest, pagination)
}
