package upload

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status represents the asset lifecycle status
type Status string

const (
	StatusStaged    Status = "staged"    // Uploaded, waiting to be attached to a campaign
	StatusCommitted Status = "committed" // Attached to a campaign, permanently stored
	StatusFailed    Status = "failed"    // Validation or processing failed
	StatusDeleted   Status = "deleted"   // Soft deleted
)

// Category represents the kind of campaign asset
type Category string

const (
	CategoryVideo Category = "video"
	CategoryImage Category = "image"
)

// Asset represents an uploaded campaign media file. Video assets back
// VIDEO campaigns; image assets back product and profile imagery.
type Asset struct {
	ID       uuid.UUID `db:"id"`
	StoreID  uuid.UUID `db:"store_id"`
	Category Category  `db:"category"`
	Status   Status    `db:"status"`

	// File metadata
	OriginalName string        `db:"original_name"`
	MimeType     string        `db:"mime_type"`
	Size         sql.NullInt64 `db:"size"`

	// Storage keys
	StagingKey   string `db:"staging_key"`
	PermanentKey string `db:"permanent_key"`
	PermanentURL string `db:"permanent_url"`

	// Thumbnail, images only
	ThumbnailKey string `db:"thumbnail_key"`
	ThumbnailURL string `db:"thumbnail_url"`

	// Image dimensions
	Width  int `db:"width"`
	Height int `db:"height"`

	ErrorMessage string `db:"error_message"`

	CreatedAt   time.Time  `db:"created_at"`
	CommittedAt *time.Time `db:"committed_at"`
	ExpiresAt   time.Time  `db:"expires_at"`
}

// IsStaged returns true if the asset is still in staging
func (a *Asset) IsStaged() bool {
	return a.Status == StatusStaged
}

// IsCommitted returns true if the asset is permanently stored
func (a *Asset) IsCommitted() bool {
	return a.Status == StatusCommitted
}

// IsExpired returns true if a staged asset has passed its cleanup deadline
func (a *Asset) IsExpired() bool {
	return a.Status == StatusStaged && time.Now().After(a.ExpiresAt)
}

// URL returns the public URL appropriate for the asset's status
func (a *Asset) URL(stagingBaseURL string) string {
	if a.IsCommitted() && a.PermanentURL != "" {
		return a.PermanentURL
	}
	if a.IsStaged() && a.StagingKey != "" {
		return stagingBaseURL + "/" + a.StagingKey
	}
	return ""
}

// SizeValue returns the stored size or zero when unknown
func (a *Asset) SizeValue() int64 {
	if !a.Size.Valid {
		return 0
	}
	return a.Size.Int64
}
