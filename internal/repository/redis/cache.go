package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avastudio/avatar-api/internal/domain"
)

const (
	galleryCachePrefix = "gallery:"
	galleryCacheTTL    = 1 * time.Minute
)

// GalleryPage is the cached shape of one listing page
type GalleryPage struct {
	Avatars []domain.Avatar `json:"avatars"`
	Total   int64           `json:"total"`
}

// GalleryCache caches listing pages in Redis. Pages are short-lived and
// flushed wholesale whenever an avatar is created or deleted.
type GalleryCache struct {
	client *Client
}

// NewGalleryCache creates a new gallery cache
func NewGalleryCache(client *Client) *GalleryCache {
	return &GalleryCache{client: client}
}

// Get retrieves a cached listing page
func (c *GalleryCache) Get(ctx context.Context, limit, offset int) (*GalleryPage, error) {
	key := pageKey(limit, offset)

	data, err := c.client.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, nil // Cache miss
	}

	var page GalleryPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gallery page: %w", err)
	}

	return &page, nil
}

// Set caches a listing page
func (c *GalleryCache) Set(ctx context.Context, limit, offset int, page *GalleryPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to marshal gallery page: %w", err)
	}

	return c.client.rdb.Set(ctx, pageKey(limit, offset), data, galleryCacheTTL).Err()
}

// FlushAll removes every cached page
func (c *GalleryCache) FlushAll(ctx context.Context) (int64, error) {
	pattern := galleryCachePrefix + "*"
	var cursor uint64
	var deleted int64

	for {
		keys, nextCursor, err := c.client.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return deleted, fmt.Errorf("failed to scan keys: %w", err)
		}

		if len(keys) > 0 {
			count, err := c.client.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("failed to delete keys: %w", err)
			}
			deleted += count
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return deleted, nil
}

func pageKey(limit, offset int) string {
	return fmt.Sprintf("%s%d:%d", galleryCachePrefix, limit, offset)
}
