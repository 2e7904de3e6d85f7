package storage

import (
	"context"
	"io"
)

// Storage defines the minimal interface for asset storage backends.
// Intentionally simple: save a file, delete a file, get its URL.
type Storage interface {
	// Save stores a file at the given key and returns an error on failure.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Open returns a reader over a stored file. The caller must close it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file by its key. Returns nil if the file doesn't exist.
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for a file given its logical key.
	GetURL(key string) string
}

// Asset categories and their ceilings. Video campaigns cap at 500 MiB,
// matching the campaign video schema.
const (
	CategoryVideo = "video"
	CategoryImage = "image"
)

// MaxFileSizes maps asset category to maximum size in bytes
var MaxFileSizes = map[string]int64{
	CategoryVideo: 500 * 1024 * 1024,
	CategoryImage: 10 * 1024 * 1024,
}

// AllowedMimeTypes maps asset category to permitted MIME types
var AllowedMimeTypes = map[string][]string{
	CategoryVideo: {
		"video/mp4",
		"video/quicktime", // .mov
		"video/x-msvideo", // .avi
		"video/webm",
	},
	CategoryImage: {
		"image/jpeg",
		"image/png",
		"image/webp",
		"image/gif",
	},
}
