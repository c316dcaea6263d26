package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avastudio/avatar-api/internal/domain"
)

func TestGalleryService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults applied", func(t *testing.T) {
		avatarRepo := new(MockAvatarRepository)
		avatarRepo.On("List", ctx, 50, 0).Return([]domain.Avatar{{ID: 1}}, int64(1), nil)

		svc := NewGalleryService(avatarRepo, new(MockBlobStore), nil)

		avatars, total, err := svc.List(ctx, 0, -3)
		assert.NoError(t, err)
		assert.Len(t, avatars, 1)
		assert.Equal(t, int64(1), total)
		avatarRepo.AssertExpectations(t)
	})

	t.Run("limit clamped", func(t *testing.T) {
		avatarRepo := new(MockAvatarRepository)
		avatarRepo.On("List", ctx, 100, 20).Return([]domain.Avatar{}, int64(0), nil)

		svc := NewGalleryService(avatarRepo, new(MockBlobStore), nil)

		_, _, err := svc.List(ctx, 9999, 20)
		assert.NoError(t, err)
		avatarRepo.AssertExpectations(t)
	})
}

func TestGalleryService_Delete(t *testing.T) {
	ctx := context.Background()
	avatarID := int64(9)

	t.Run("removes hosted blob then record", func(t *testing.T) {
		avatarRepo := new(MockAvatarRepository)
		blobs := new(MockBlobStore)
		avatarRepo.On("Get", ctx, avatarID).
			Return(&domain.Avatar{ID: avatarID, ImageURL: "https://cdn.example.com/avatars/a.png"}, nil)
		blobs.On("KeyFromURL", "https://cdn.example.com/avatars/a.png").Return("avatars/a.png")
		blobs.On("Remove", ctx, "avatars/a.png").Return(nil)
		avatarRepo.On("Delete", ctx, avatarID).Return(nil)

		svc := NewGalleryService(avatarRepo, blobs, nil)

		err := svc.Delete(ctx, avatarID)
		assert.NoError(t, err)
		blobs.AssertExpectations(t)
		avatarRepo.AssertExpectations(t)
	})

	t.Run("blob failure does not block record delete", func(t *testing.T) {
		avatarRepo := new(MockAvatarRepository)
		blobs := new(MockBlobStore)
		avatarRepo.On("Get", ctx, avatarID).
			Return(&domain.Avatar{ID: avatarID, ImageURL: "https://cdn.example.com/avatars/a.png"}, nil)
		blobs.On("KeyFromURL", "https://cdn.example.com/avatars/a.png").Return("avatars/a.png")
		blobs.On("Remove", ctx, "avatars/a.png").Return(errors.New("bucket unreachable"))
		avatarRepo.On("Delete", ctx, avatarID).Return(nil)

		svc := NewGalleryService(avatarRepo, blobs, nil)

		err := svc.Delete(ctx, avatarID)
		assert.NoError(t, err)
		avatarRepo.AssertExpectations(t)
	})

	t.Run("missing record", func(t *testing.T) {
		avatarRepo := new(MockAvatarRepository)
		avatarRepo.On("Get", ctx, avatarID).Return(nil, domain.ErrNotFound)

		svc := NewGalleryService(avatarRepo, new(MockBlobStore), nil)

		err := svc.Delete(ctx, avatarID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
