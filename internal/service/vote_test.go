package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avastudio/avatar-api/internal/domain"
)

func TestVoteService_ToggleLike(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	avatarID := int64(3)
	avatar := &domain.Avatar{ID: avatarID}

	t.Run("first toggle likes", func(t *testing.T) {
		avatarRepo := new(MockAvatarRepository)
		likeRepo := new(MockLikeRepository)
		avatarRepo.On("Get", ctx, avatarID).Return(avatar, nil)
		likeRepo.On("Exists", ctx, avatarID, userID).Return(false, nil)
		likeRepo.On("Add", ctx, avatarID, userID).Return(nil)
		likeRepo.On("Count", ctx, avatarID).Return(5, nil)

		svc := NewVoteService(avatarRepo, likeRepo, nil)

		status, err := svc.ToggleLike(ctx, avatarID, userID)
		assert.NoError(t, err)
		assert.True(t, status.Liked)
		assert.Equal(t, 5, status.Likes)
		likeRepo.AssertExpectations(t)
	})

	t.Run("second toggle unlikes", func(t *testing.T) {
		avatarRepo := new(MockAvatarRepository)
		likeRepo := new(MockLikeRepository)
		avatarRepo.On("Get", ctx, avatarID).Return(avatar, nil)
		likeRepo.On("Exists", ctx, avatarID, userID).Return(true, nil)
		likeRepo.On("Remove", ctx, avatarID, userID).Return(nil)
		likeRepo.On("Count", ctx, avatarID).Return(4, nil)

		svc := NewVoteService(avatarRepo, likeRepo, nil)

		status, err := svc.ToggleLike(ctx, avatarID, userID)
		assert.NoError(t, err)
		assert.False(t, status.Liked)
		assert.Equal(t, 4, status.Likes)
		likeRepo.AssertExpectations(t)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		svc := NewVoteService(new(MockAvatarRepository), new(MockLikeRepository), nil)

		status, err := svc.ToggleLike(ctx, avatarID, uuid.Nil)
		assert.Nil(t, status)
		assert.ErrorIs(t, err, domain.ErrAuthRequired)
	})

	t.Run("missing avatar", func(t *testing.T) {
		avatarRepo := new(MockAvatarRepository)
		avatarRepo.On("Get", ctx, avatarID).Return(nil, domain.ErrNotFound)

		svc := NewVoteService(avatarRepo, new(MockLikeRepository), nil)

		status, err := svc.ToggleLike(ctx, avatarID, userID)
		assert.Nil(t, status)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestVoteService_CastVote(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	avatarID := int64(3)
	avatar := &domain.Avatar{ID: avatarID}

	t.Run("fresh like", func(t *testing.T) {
		avatarRepo := new(MockAvatarRepository)
		voteRepo := new(MockVoteRepository)
		avatarRepo.On("Get", ctx, avatarID).Return(avatar, nil)
		voteRepo.On("Get", ctx, avatarID, userID).Return(domain.VoteNone, nil)
		voteRepo.On("Set", ctx, avatarID, userID, domain.VoteLike).Return(nil)
		voteRepo.On("Score", ctx, avatarID).Return(1, nil)

		svc := NewVoteService(avatarRepo, nil, voteRepo)

		status, err := svc.CastVote(ctx, avatarID, userID, domain.VoteLike)
		assert.NoError(t, err)
		assert.Equal(t, domain.VoteLike, status.Vote)
		assert.Equal(t, 1, status.Score)
		voteRepo.AssertExpectations(t)
	})

	t.Run("switching sides moves score by two", func(t *testing.T) {
		avatarRepo := new(MockAvatarRepository)
		voteRepo := new(MockVoteRepository)
		avatarRepo.On("Get", ctx, avatarID).Return(avatar, nil)
		voteRepo.On("Get", ctx, avatarID, userID).Return(domain.VoteLike, nil)
		voteRepo.On("Set", ctx, avatarID, userID, domain.VoteDislike).Return(nil)
		voteRepo.On("Score", ctx, avatarID).Return(-1, nil)

		svc := NewVoteService(avatarRepo, nil, voteRepo)

		status, err := svc.CastVote(ctx, avatarID, userID, domain.VoteDislike)
		assert.NoError(t, err)
		assert.Equal(t, domain.VoteDislike, status.Vote)
		assert.Equal(t, -1, status.Score)
		voteRepo.AssertExpectations(t)
	})

	t.Run("repeating the held vote clears it", func(t *testing.T) {
		avatarRepo := new(MockAvatarRepository)
		voteRepo := new(MockVoteRepository)
		avatarRepo.On("Get", ctx, avatarID).Return(avatar, nil)
		voteRepo.On("Get", ctx, avatarID, userID).Return(domain.VoteDislike, nil)
		voteRepo.On("Clear", ctx, avatarID, userID).Return(nil)
		voteRepo.On("Score", ctx, avatarID).Return(0, nil)

		svc := NewVoteService(avatarRepo, nil, voteRepo)

		status, err := svc.CastVote(ctx, avatarID, userID, domain.VoteDislike)
		assert.NoError(t, err)
		assert.Equal(t, domain.VoteNone, status.Vote)
		assert.Equal(t, 0, status.Score)
		voteRepo.AssertExpectations(t)
	})

	t.Run("invalid vote type", func(t *testing.T) {
		svc := NewVoteService(new(MockAvatarRepository), nil, new(MockVoteRepository))

		status, err := svc.CastVote(ctx, avatarID, userID, domain.VoteType("meh"))
		assert.Nil(t, status)
		assert.Error(t, err)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		svc := NewVoteService(new(MockAvatarRepository), nil, new(MockVoteRepository))

		status, err := svc.CastVote(ctx, avatarID, uuid.Nil, domain.VoteLike)
		assert.Nil(t, status)
		assert.ErrorIs(t, err, domain.ErrAuthRequired)
	})
}
