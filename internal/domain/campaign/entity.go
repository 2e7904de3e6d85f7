package campaign

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Status represents campaign lifecycle status (matches campaign_status enum)
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// Type is the campaign type discriminant. It selects which schema governs
// the campaign's type-specific payload.
type Type string

const (
	TypeDiscount Type = "DISCOUNT"
	TypeProduct  Type = "PRODUCT"
	TypeVideo    Type = "VIDEO"
	TypeProfile  Type = "PROFILE"
)

// SupportedTypes returns the closed set of campaign type tags
func SupportedTypes() []Type {
	return []Type{TypeDiscount, TypeProduct, TypeVideo, TypeProfile}
}

// Campaign represents a brand-initiated marketing engagement (matches
// campaigns table). TypeSpecificData is stored as an opaque JSONB blob;
// readers must re-validate it through the extractors before trusting it.
type Campaign struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Owner (FK to stores)
	StoreID uuid.UUID `db:"store_id"`

	// Basic info
	Title       string  `db:"title"`
	Description string  `db:"description"`
	Budget      float64 `db:"budget"`
	Currency    string  `db:"currency"`

	// Duration in days, optional
	DurationDays sql.NullInt32 `db:"duration_days"`

	// Target location
	TargetCountry sql.NullString `db:"target_country"`
	TargetCity    sql.NullString `db:"target_city"`

	// Targeting
	Platforms       pq.StringArray `db:"platforms"`
	GoalTags        pq.StringArray `db:"goal_tags"`
	ContentTypeTags pq.StringArray `db:"content_type_tags"`

	// Type discrimination
	Type             Type   `db:"type"`
	TypeSpecificData []byte `db:"type_specific_data"`

	Status Status `db:"status"`

	// Joined data (not in DB, populated by queries)
	StoreName string `db:"-"`
}

// IsDraft returns true if the campaign is still in draft
func (c *Campaign) IsDraft() bool {
	return c.Status == StatusDraft
}

// IsPublished returns true if the campaign has left draft
func (c *Campaign) IsPublished() bool {
	return c.Status != StatusDraft
}

// CanBeEditedBy checks if the given store owns this campaign
func (c *Campaign) CanBeEditedBy(storeID uuid.UUID) bool {
	return c.StoreID == storeID
}

// CanChangeType reports whether the type discriminant may still be
// mutated. The type is frozen once the campaign leaves draft.
func (c *Campaign) CanChangeType() bool {
	return c.Status == StatusDraft
}

func validateStatusTransition(current, next Status) error {
	if current == next {
		return nil
	}

	switch current {
	case StatusDraft:
		if next == StatusPublished || next == StatusArchived {
			return nil
		}
	case StatusPublished:
		if next == StatusActive || next == StatusArchived {
			return nil
		}
	case StatusActive:
		if next == StatusCompleted || next == StatusArchived {
			return nil
		}
	case StatusCompleted:
		if next == StatusArchived {
			return nil
		}
	case StatusArchived:
		// Archived is terminal.
	}

	return ErrInvalidStatusTransition
}
