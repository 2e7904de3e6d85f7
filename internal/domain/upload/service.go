package upload

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/brandlink/brandlink-api/internal/domain/campaign"
	"github.com/brandlink/brandlink-api/internal/pkg/imaging"
	"github.com/brandlink/brandlink-api/internal/pkg/storage"
)

// StagingTTL is how long a staged asset survives before cleanup
const StagingTTL = 1 * time.Hour

// Service handles campaign asset uploads
type Service struct {
	repo           Repository
	stagingStorage storage.Storage
	cloudStorage   storage.Storage // nil if cloud not configured
	imageProcessor *imaging.Processor
	stagingBaseURL string
}

// NewService creates upload service
func NewService(repo Repository, stagingStorage, cloudStorage storage.Storage, imageProcessor *imaging.Processor, stagingBaseURL string) *Service {
	return &Service{
		repo:           repo,
		stagingStorage: stagingStorage,
		cloudStorage:   cloudStorage,
		imageProcessor: imageProcessor,
		stagingBaseURL: stagingBaseURL,
	}
}

// StageVideo validates and stages a video file for a VIDEO campaign.
// Precondition failures map onto the campaign error taxonomy so the API
// reports them with the same codes the campaign endpoints use.
func (s *Service) StageVideo(ctx context.Context, storeID uuid.UUID, filename string, reader io.Reader) (*Asset, error) {
	buffer, mimeType, err := storage.ValidateAndBuffer(reader, storage.CategoryVideo)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return nil, campaign.NewInvalidVideoFile("file exceeds the 500MB limit")
		case errors.Is(err, storage.ErrEmptyFile):
			return nil, campaign.NewInvalidVideoFile("file is empty")
		case errors.Is(err, storage.ErrInvalidMimeType):
			return nil, campaign.NewInvalidVideoFile("format must be one of mp4, mov, avi, webm")
		default:
			return nil, campaign.NewVideoUploadFailed(err)
		}
	}

	asset, err := s.stage(ctx, storeID, CategoryVideo, filename, buffer, mimeType, 0, 0)
	if err != nil {
		return nil, campaign.NewVideoUploadFailed(err)
	}
	return asset, nil
}

// StageImage validates, resizes and stages a cover image. A listing
// thumbnail is rendered alongside the original.
func (s *Service) StageImage(ctx context.Context, storeID uuid.UUID, filename string, reader io.Reader) (*Asset, error) {
	buffer, _, err := storage.ValidateAndBuffer(reader, storage.CategoryImage)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	processed, err := s.imageProcessor.Process(buffer)
	if err != nil {
		return nil, fmt.Errorf("image processing failed: %w", err)
	}

	asset, err := s.stage(ctx, storeID, CategoryImage, filename,
		bytes.NewBuffer(processed.Original), processed.ContentType,
		processed.Width, processed.Height)
	if err != nil {
		return nil, err
	}

	// Thumbnail lives next to the original under a -thumb suffix
	thumbKey := thumbnailKey(asset.StagingKey)
	if err := s.stagingStorage.Save(ctx, thumbKey, bytes.NewReader(processed.Thumbnail), processed.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store thumbnail: %w", err)
	}
	asset.ThumbnailKey = thumbKey
	asset.ThumbnailURL = s.stagingBaseURL + "/" + thumbKey
	if err := s.repo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to update asset record: %w", err)
	}

	return asset, nil
}

func (s *Service) stage(ctx context.Context, storeID uuid.UUID, category Category, filename string, buffer *bytes.Buffer, mimeType string, width, height int) (*Asset, error) {
	assetID := uuid.New()
	ext := storage.GetExtensionForMime(mimeType)
	stagingKey := fmt.Sprintf("staging/%s/%s%s", storeID.String(), assetID.String(), ext)

	size := int64(buffer.Len())
	if err := s.stagingStorage.Save(ctx, stagingKey, buffer, mimeType); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	now := time.Now()
	asset := &Asset{
		ID:           assetID,
		StoreID:      storeID,
		Category:     category,
		Status:       StatusStaged,
		OriginalName: filepath.Base(filename),
		MimeType:     mimeType,
		Size:         sql.NullInt64{Int64: size, Valid: true},
		StagingKey:   stagingKey,
		Width:        width,
		Height:       height,
		CreatedAt:    now,
		ExpiresAt:    now.Add(StagingTTL),
	}

	if err := s.repo.Create(ctx, asset); err != nil {
		_ = s.stagingStorage.Delete(ctx, stagingKey)
		return nil, fmt.Errorf("failed to create asset record: %w", err)
	}

	return asset, nil
}

// Commit moves a staged asset to permanent storage
func (s *Service) Commit(ctx context.Context, assetID, storeID uuid.UUID) (*Asset, error) {
	asset, err := s.repo.GetByID(ctx, assetID)
	if err != nil || asset == nil {
		return nil, ErrAssetNotFound
	}

	if asset.StoreID != storeID {
		return nil, ErrNotAssetOwner
	}
	if !asset.IsStaged() {
		return nil, ErrAlreadyCommitted
	}
	if asset.IsExpired() {
		return nil, ErrAssetExpired
	}

	target := s.cloudStorage
	if target == nil {
		target = s.stagingStorage
	}

	ext := storage.GetExtensionForMime(asset.MimeType)
	permanentKey := fmt.Sprintf("%s/%s/%s%s", asset.Category, storeID.String(), assetID.String(), ext)

	if err := s.copyObject(ctx, asset.StagingKey, permanentKey, asset.MimeType, target); err != nil {
		asset.Status = StatusFailed
		asset.ErrorMessage = err.Error()
		_ = s.repo.Update(ctx, asset)
		if asset.Category == CategoryVideo {
			return nil, campaign.NewVideoUploadFailed(err)
		}
		return nil, err
	}

	if asset.ThumbnailKey != "" {
		permanentThumb := thumbnailKey(permanentKey)
		if err := s.copyObject(ctx, asset.ThumbnailKey, permanentThumb, asset.MimeType, target); err == nil {
			asset.ThumbnailKey = permanentThumb
			asset.ThumbnailURL = target.GetURL(permanentThumb)
		}
	}

	now := time.Now()
	asset.Status = StatusCommitted
	asset.PermanentKey = permanentKey
	asset.PermanentURL = target.GetURL(permanentKey)
	asset.CommittedAt = &now

	if err := s.repo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to update asset record: %w", err)
	}

	// Staging cleanup is best effort
	go func(key string) {
		_ = s.stagingStorage.Delete(context.Background(), key)
	}(asset.StagingKey)

	return asset, nil
}

func (s *Service) copyObject(ctx context.Context, fromKey, toKey, mimeType string, target storage.Storage) error {
	reader, err := s.stagingStorage.Open(ctx, fromKey)
	if err != nil {
		return fmt.Errorf("staging file not found: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read staging file: %w", err)
	}

	if err := target.Save(ctx, toKey, bytes.NewReader(data), mimeType); err != nil {
		return fmt.Errorf("failed to store in permanent storage: %w", err)
	}
	return nil
}

// GetByID returns asset by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Asset, error) {
	asset, err := s.repo.GetByID(ctx, id)
	if err != nil || asset == nil {
		return nil, ErrAssetNotFound
	}
	return asset, nil
}

// Delete removes an asset and its stored files
func (s *Service) Delete(ctx context.Context, assetID, storeID uuid.UUID) error {
	asset, err := s.repo.GetByID(ctx, assetID)
	if err != nil || asset == nil {
		return ErrAssetNotFound
	}

	if asset.StoreID != storeID {
		return ErrNotAssetOwner
	}

	if asset.IsStaged() && asset.StagingKey != "" {
		_ = s.stagingStorage.Delete(ctx, asset.StagingKey)
	}
	if asset.IsCommitted() && asset.PermanentKey != "" {
		target := s.cloudStorage
		if target == nil {
			target = s.stagingStorage
		}
		_ = target.Delete(ctx, asset.PermanentKey)
		if asset.ThumbnailKey != "" {
			_ = target.Delete(ctx, asset.ThumbnailKey)
		}
	}

	return s.repo.Delete(ctx, assetID)
}

// ListByStore returns a store's committed assets
func (s *Service) ListByStore(ctx context.Context, storeID uuid.UUID, category Category) ([]*Asset, error) {
	return s.repo.ListByStore(ctx, storeID, category)
}

// CleanupExpired removes staged assets past their TTL
func (s *Service) CleanupExpired(ctx context.Context) (int, error) {
	expired, err := s.repo.ListExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	for _, asset := range expired {
		if asset.StagingKey != "" {
			_ = s.stagingStorage.Delete(ctx, asset.StagingKey)
		}
		if asset.ThumbnailKey != "" {
			_ = s.stagingStorage.Delete(ctx, asset.ThumbnailKey)
		}
	}

	return s.repo.DeleteExpired(ctx, time.Now())
}

// StagingURL returns the staging URL for an asset
func (s *Service) StagingURL(asset *Asset) string {
	return asset.URL(s.stagingBaseURL)
}

func thumbnailKey(key string) string {
	ext := filepath.Ext(key)
	return key[:len(key)-len(ext)] + "-thumb" + ext
}
