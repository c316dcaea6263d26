// Package storage abstracts the public blob bucket used for raster
// avatars. Implementations are selected at construction time; pipeline
// code never checks configuration itself.
package storage

import (
	"context"
	"io"

	"github.com/avastudio/avatar-api/internal/domain"
)

// BlobStore defines the blob bucket operations the persistence gateway needs
type BlobStore interface {
	// Upload stores an object under key and returns its public URL
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)

	// Remove deletes an object
	Remove(ctx context.Context, key string) error

	// KeyFromURL extracts the object key from a public URL previously
	// returned by Upload; empty when the URL is not ours
	KeyFromURL(url string) string
}

// NullStore is the not-configured variant: every operation fails with
// ErrStoreNotConfigured so callers degrade instead of crashing
type NullStore struct{}

func (NullStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	return "", domain.ErrStoreNotConfigured
}

func (NullStore) Remove(ctx context.Context, key string) error {
	return domain.ErrStoreNotConfigured
}

func (NullStore) KeyFromURL(url string) string {
	return ""
}
