package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/avastudio/avatar-api/internal/repository/redis"
	"github.com/avastudio/avatar-api/internal/storage"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// GalleryService serves the stored avatar collection
type GalleryService struct {
	avatarRepo domain.AvatarRepository
	blobs      storage.BlobStore
	cache      *redis.GalleryCache
}

// NewGalleryService creates a new gallery service. cache may be nil.
func NewGalleryService(avatarRepo domain.AvatarRepository, blobs storage.BlobStore, cache *redis.GalleryCache) *GalleryService {
	return &GalleryService{
		avatarRepo: avatarRepo,
		blobs:      blobs,
		cache:      cache,
	}
}

// ClampPage normalizes paging values: out-of-range values are clamped
// rather than rejected
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// List returns a page of avatars newest first plus the total count
func (s *GalleryService) List(ctx context.Context, limit, offset int) ([]domain.Avatar, int64, error) {
	limit, offset = ClampPage(limit, offset)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, limit, offset)
		if err == nil && cached != nil {
			return cached.Avatars, cached.Total, nil
		}
	}

	avatars, total, err := s.avatarRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if s.cache != nil {
		page := &redis.GalleryPage{Avatars: avatars, Total: total}
		if err := s.cache.Set(ctx, limit, offset, page); err != nil {
			log.Warn().Err(err).Msg("failed to cache gallery page")
		}
	}

	return avatars, total, nil
}

// Get returns a single avatar
func (s *GalleryService) Get(ctx context.Context, id int64) (*domain.Avatar, error) {
	return s.avatarRepo.Get(ctx, id)
}

// Delete removes an avatar record and its hosted raster if present.
// Blob removal is best-effort; the record delete is authoritative.
func (s *GalleryService) Delete(ctx context.Context, id int64) error {
	avatar, err := s.avatarRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if avatar.ImageURL != "" {
		if key := s.blobs.KeyFromURL(avatar.ImageURL); key != "" {
			if err := s.blobs.Remove(ctx, key); err != nil {
				log.Warn().Err(err).Int64("avatar_id", id).Msg("failed to remove avatar blob")
			}
		}
	}

	if err := s.avatarRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete avatar: %w", err)
	}

	if s.cache != nil {
		if _, err := s.cache.FlushAll(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to flush gallery cache")
		}
	}

	return nil
}
