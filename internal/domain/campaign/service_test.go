package campaign

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeRepo struct {
	byID          map[uuid.UUID]*Campaign
	created       []*Campaign
	updated       []*Campaign
	statusUpdates map[uuid.UUID]Status
	deleted       []uuid.UUID
	createErr     error
}

func newFakeRepo(campaigns ...*Campaign) *fakeRepo {
	r := &fakeRepo{
		byID:          map[uuid.UUID]*Campaign{},
		statusUpdates: map[uuid.UUID]Status{},
	}
	for _, c := range campaigns {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeRepo) Create(ctx context.Context, c *Campaign) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, c)
	r.byID[c.ID] = c
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Campaign, error) {
	return r.byID[id], nil
}

func (r *fakeRepo) Update(ctx context.Context, c *Campaign) error {
	r.updated = append(r.updated, c)
	r.byID[c.ID] = c
	return nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	r.statusUpdates[id] = status
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter *Filter, sortBy SortBy, pagination *Pagination) ([]*Campaign, int, error) {
	out := make([]*Campaign, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, len(out), nil
}

type fakeDirectory struct {
	owned bool
	err   error
	calls int
}

func (d *fakeDirectory) OwnedByStore(ctx context.Context, id, storeID uuid.UUID) (bool, error) {
	d.calls++
	return d.owned, d.err
}

func newTestService(repo *fakeRepo, coupons, products *fakeDirectory) *Service {
	if coupons == nil {
		coupons = &fakeDirectory{owned: true}
	}
	if products == nil {
		products = &fakeDirectory{owned: true}
	}
	return NewService(repo, coupons, products)
}

func mustJSON(t *testing.T, payload TypeSpecificData) json.RawMessage {
	t.Helper()
	blob, err := SerializeTypeSpecificData(payload)
	if err != nil {
		t.Fatal(err)
	}
	return blob
}

func validCreateRequest(typ Type, payload json.RawMessage) *CreateCampaignRequest {
	return &CreateCampaignRequest{
		Title:            "Summer launch push",
		Description:      "Promote the summer collection across creator stories",
		Budget:           1500,
		Currency:         "USD",
		Type:             string(typ),
		TypeSpecificData: payload,
	}
}

func TestServiceCreate_DraftWithoutPayload(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil, nil)
	storeID := uuid.New()

	c, err := svc.Create(context.Background(), storeID, validCreateRequest(TypeVideo, nil))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if c.Status != StatusDraft {
		t.Fatalf("new campaign status %s, want draft", c.Status)
	}
	if c.StoreID != storeID {
		t.Fatal("store id not assigned")
	}
	if c.TypeSpecificData != nil {
		t.Fatal("no payload was supplied, none should be stored")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
}

func TestServiceCreate_UnknownTypeFailsClosedBeforeRepo(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil, nil)

	_, err := svc.Create(context.Background(), uuid.New(), validCreateRequest("BANNER", nil))
	if !IsCode(err, CodeInvalidCampaignType) {
		t.Fatalf("expected INVALID_CAMPAIGN_TYPE, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("repo must not be touched for an unsupported type")
	}
}

func TestServiceCreate_InvalidPayload(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil, nil)

	req := validCreateRequest(TypeVideo, json.RawMessage(`{"videoUrl":""}`))
	_, err := svc.Create(context.Background(), uuid.New(), req)
	if !IsCode(err, CodeInvalidTypeSpecificData) {
		t.Fatalf("expected INVALID_TYPE_SPECIFIC_DATA, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("invalid payload must not reach the repo")
	}
}

func TestServiceCreate_ValidPayloadIsStoredSerialized(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil, nil)

	req := validCreateRequest(TypeProfile, mustJSON(t, validProfileData()))
	c, err := svc.Create(context.Background(), uuid.New(), req)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !HasValidTypeSpecificData(c) {
		t.Fatal("stored payload should round-trip as valid")
	}
}

func TestServiceCreate_CouponReferenceChecks(t *testing.T) {
	payloadWithID := func(id string) json.RawMessage {
		d := validDiscountData()
		d.DiscountID = id
		return mustJSON(t, d)
	}

	tests := []struct {
		name     string
		coupons  *fakeDirectory
		id       string
		wantCode string
	}{
		{"not a uuid", &fakeDirectory{owned: true}, "not-a-uuid", CodeInvalidCouponReference},
		{"not owned", &fakeDirectory{owned: false}, uuid.NewString(), CodeInvalidCouponReference},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := newTestService(repo, tc.coupons, nil)

			req := validCreateRequest(TypeDiscount, payloadWithID(tc.id))
			_, err := svc.Create(context.Background(), uuid.New(), req)
			if !IsCode(err, tc.wantCode) {
				t.Fatalf("expected %s, got %v", tc.wantCode, err)
			}
			if len(repo.created) != 0 {
				t.Fatal("bad reference must not reach the repo")
			}
		})
	}

	// An empty DiscountID skips the lookup entirely
	coupons := &fakeDirectory{owned: false}
	svc := newTestService(newFakeRepo(), coupons, nil)
	if _, err := svc.Create(context.Background(), uuid.New(), validCreateRequest(TypeDiscount, mustJSON(t, validDiscountData()))); err != nil {
		t.Fatalf("code-only discount should not hit the directory, got %v", err)
	}
	if coupons.calls != 0 {
		t.Fatal("directory must not be called without an id")
	}
}

func TestServiceCreate_ProductReferenceChecks(t *testing.T) {
	products := &fakeDirectory{owned: false}
	svc := newTestService(newFakeRepo(), nil, products)

	p := validProductData()
	p.ProductID = uuid.NewString()
	req := validCreateRequest(TypeProduct, mustJSON(t, p))

	_, err := svc.Create(context.Background(), uuid.New(), req)
	if !IsCode(err, CodeInvalidProductReference) {
		t.Fatalf("expected INVALID_PRODUCT_REFERENCE, got %v", err)
	}

	// Directory failures propagate untranslated
	products = &fakeDirectory{err: errors.New("catalog unavailable")}
	svc = newTestService(newFakeRepo(), nil, products)
	_, err = svc.Create(context.Background(), uuid.New(), req)
	if err == nil || IsCode(err, CodeInvalidProductReference) {
		t.Fatalf("infrastructure error must not masquerade as a reference failure, got %v", err)
	}
}

func TestServiceUpdate_TypeChangeInDraftClearsPayload(t *testing.T) {
	storeID := uuid.New()
	existing := campaignWith(TypeDiscount, validDiscountData())
	existing.StoreID = storeID
	repo := newFakeRepo(existing)
	svc := newTestService(repo, nil, nil)

	c, err := svc.Update(context.Background(), existing.ID, storeID, &UpdateCampaignRequest{Type: string(TypeVideo)})
	if err != nil {
		t.Fatalf("draft type change should succeed, got %v", err)
	}
	if c.Type != TypeVideo {
		t.Fatalf("type %s, want VIDEO", c.Type)
	}
	if c.TypeSpecificData != nil {
		t.Fatal("stale payload must be cleared on type change")
	}
}

func TestServiceUpdate_TypeChangeFrozenAfterDraft(t *testing.T) {
	storeID := uuid.New()
	existing := campaignWith(TypeDiscount, validDiscountData())
	existing.StoreID = storeID
	existing.Status = StatusPublished
	repo := newFakeRepo(existing)
	svc := newTestService(repo, nil, nil)

	_, err := svc.Update(context.Background(), existing.ID, storeID, &UpdateCampaignRequest{Type: string(TypeVideo)})
	if !IsCode(err, CodeTypeChangeNotAllowed) {
		t.Fatalf("expected TYPE_CHANGE_NOT_ALLOWED, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatal("rejected update must not persist")
	}

	// Restating the current type is not a change
	if _, err := svc.Update(context.Background(), existing.ID, storeID, &UpdateCampaignRequest{Type: string(TypeDiscount)}); err != nil {
		t.Fatalf("same-type update should pass, got %v", err)
	}
}

func TestServiceUpdate_OwnershipEnforced(t *testing.T) {
	existing := campaignWith(TypeDiscount, validDiscountData())
	repo := newFakeRepo(existing)
	svc := newTestService(repo, nil, nil)

	_, err := svc.Update(context.Background(), existing.ID, uuid.New(), &UpdateCampaignRequest{Title: "Hijacked title"})
	if !IsCode(err, CodePermissionDenied) {
		t.Fatalf("expected PERMISSION_DENIED, got %v", err)
	}
}

func TestServiceUpdate_ReplacesPayloadAgainstCurrentType(t *testing.T) {
	storeID := uuid.New()
	existing := campaignWith(TypeVideo, validVideoData())
	existing.StoreID = storeID
	repo := newFakeRepo(existing)
	svc := newTestService(repo, nil, nil)

	// A discount-shaped payload cannot replace a video campaign's data
	_, err := svc.Update(context.Background(), existing.ID, storeID, &UpdateCampaignRequest{
		TypeSpecificData: mustJSON(t, validDiscountData()),
	})
	if !IsCode(err, CodeInvalidTypeSpecificData) {
		t.Fatalf("expected INVALID_TYPE_SPECIFIC_DATA, got %v", err)
	}
}

func TestServiceUpdate_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil, nil)
	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), &UpdateCampaignRequest{})
	if !IsCode(err, CodeCampaignNotFound) {
		t.Fatalf("expected CAMPAIGN_NOT_FOUND, got %v", err)
	}
}

func TestServicePublish_GatesOnStoredPayload(t *testing.T) {
	storeID := uuid.New()

	t.Run("missing payload", func(t *testing.T) {
		draft := campaignWith(TypeVideo, nil)
		draft.StoreID = storeID
		repo := newFakeRepo(draft)
		svc := newTestService(repo, nil, nil)

		_, err := svc.Publish(context.Background(), draft.ID, storeID)
		if !IsCode(err, CodeMissingTypeSpecificData) {
			t.Fatalf("expected MISSING_TYPE_SPECIFIC_DATA, got %v", err)
		}
		if len(repo.statusUpdates) != 0 {
			t.Fatal("gated campaign must stay draft")
		}
	})

	t.Run("stale invalid payload", func(t *testing.T) {
		draft := campaignWith(TypeVideo, nil)
		draft.StoreID = storeID
		draft.TypeSpecificData = []byte(`{"videoUrl":"https://x.example/v.mp4"}`)
		repo := newFakeRepo(draft)
		svc := newTestService(repo, nil, nil)

		_, err := svc.Publish(context.Background(), draft.ID, storeID)
		if !IsCode(err, CodeInvalidTypeSpecificData) {
			t.Fatalf("expected INVALID_TYPE_SPECIFIC_DATA, got %v", err)
		}
	})

	t.Run("valid payload publishes", func(t *testing.T) {
		draft := campaignWith(TypeVideo, validVideoData())
		draft.StoreID = storeID
		repo := newFakeRepo(draft)
		svc := newTestService(repo, nil, nil)

		c, err := svc.Publish(context.Background(), draft.ID, storeID)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if c.Status != StatusPublished {
			t.Fatalf("status %s, want published", c.Status)
		}
		if repo.statusUpdates[draft.ID] != StatusPublished {
			t.Fatal("status change must be persisted")
		}
	})
}

func TestServiceUpdateStatus_Transitions(t *testing.T) {
	storeID := uuid.New()

	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr bool
	}{
		{"draft to archived", StatusDraft, StatusArchived, false},
		{"published to active", StatusPublished, StatusActive, false},
		{"active to completed", StatusActive, StatusCompleted, false},
		{"completed to archived", StatusCompleted, StatusArchived, false},
		{"draft to active skips publish", StatusDraft, StatusActive, true},
		{"published back to draft", StatusPublished, StatusDraft, true},
		{"archived is terminal", StatusArchived, StatusDraft, true},
		{"completed cannot reopen", StatusCompleted, StatusActive, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := campaignWith(TypeVideo, validVideoData())
			c.StoreID = storeID
			c.Status = tc.from
			repo := newFakeRepo(c)
			svc := newTestService(repo, nil, nil)

			_, err := svc.UpdateStatus(context.Background(), c.ID, storeID, tc.to)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidStatusTransition) {
					t.Fatalf("expected invalid transition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if repo.statusUpdates[c.ID] != tc.to {
				t.Fatalf("persisted status %s, want %s", repo.statusUpdates[c.ID], tc.to)
			}
		})
	}
}

func TestServiceUpdateStatus_PublishRoutesThroughGate(t *testing.T) {
	storeID := uuid.New()
	draft := campaignWith(TypeVideo, nil)
	draft.StoreID = storeID
	repo := newFakeRepo(draft)
	svc := newTestService(repo, nil, nil)

	_, err := svc.UpdateStatus(context.Background(), draft.ID, storeID, StatusPublished)
	if !IsCode(err, CodeMissingTypeSpecificData) {
		t.Fatalf("status route must apply the publish gate, got %v", err)
	}
}

func TestServiceDelete(t *testing.T) {
	storeID := uuid.New()
	c := campaignWith(TypeDiscount, validDiscountData())
	c.StoreID = storeID
	repo := newFakeRepo(c)
	svc := newTestService(repo, nil, nil)

	if err := svc.Delete(context.Background(), c.ID, uuid.New()); !IsCode(err, CodePermissionDenied) {
		t.Fatalf("expected PERMISSION_DENIED, got %v", err)
	}
	if err := svc.Delete(context.Background(), c.ID, storeID); err != nil {
		t.Fatalf("owner delete should pass, got %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != c.ID {
		t.Fatal("delete must reach the repo")
	}
}

func TestServiceGetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil, nil)
	_, err := svc.GetByID(context.Background(), uuid.New())
	if !IsCode(err, CodeCampaignNotFound) {
		t.Fatalf("expected CAMPAIGN_NOT_FOUND, got %v", err)
	}
}
