// Package null provides the not-configured persistence variant. Every
// read and write fails with ErrStoreNotConfigured; the pipeline treats
// persistence as best-effort, so generation keeps working without a
// database.
package null

import (
	"context"

	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/google/uuid"
)

// AvatarStore implements domain.AvatarRepository against no backend
type AvatarStore struct{}

func (AvatarStore) Insert(ctx context.Context, avatar *domain.Avatar) (int64, error) {
	return 0, domain.ErrStoreNotConfigured
}

func (AvatarStore) Get(ctx context.Context, id int64) (*domain.Avatar, error) {
	return nil, domain.ErrStoreNotConfigured
}

func (AvatarStore) List(ctx context.Context, limit, offset int) ([]domain.Avatar, int64, error) {
	return nil, 0, domain.ErrStoreNotConfigured
}

func (AvatarStore) Delete(ctx context.Context, id int64) error {
	return domain.ErrStoreNotConfigured
}

// LikeStore implements domain.LikeRepository against no backend
type LikeStore struct{}

func (LikeStore) Exists(ctx context.Context, avatarID int64, userID uuid.UUID) (bool, error) {
	return false, domain.ErrStoreNotConfigured
}

func (LikeStore) Add(ctx context.Context, avatarID int64, userID uuid.UUID) error {
	return domain.ErrStoreNotConfigured
}

func (LikeStore) Remove(ctx context.Context, avatarID int64, userID uuid.UUID) error {
	return domain.ErrStoreNotConfigured
}

func (LikeStore) Count(ctx context.Context, avatarID int64) (int, error) {
	return 0, domain.ErrStoreNotConfigured
}

// VoteStore implements domain.VoteRepository against no backend
type VoteStore struct{}

func (VoteStore) Get(ctx context.Context, avatarID int64, userID uuid.UUID) (domain.VoteType, error) {
	return domain.VoteNone, domain.ErrStoreNotConfigured
}

func (VoteStore) Set(ctx context.Context, avatarID int64, userID uuid.UUID, vote domain.VoteType) error {
	return domain.ErrStoreNotConfigured
}

func (VoteStore) Clear(ctx context.Context, avatarID int64, userID uuid.UUID) error {
	return domain.ErrStoreNotConfigured
}

func (VoteStore) Score(ctx context.Context, avatarID int64) (int, error) {
	return 0, domain.ErrStoreNotConfigured
}

var (
	_ domain.AvatarRepository = AvatarStore{}
	_ domain.LikeRepository   = LikeStore{}
	_ domain.VoteRepository   = VoteStore{}
)
