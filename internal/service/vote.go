package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avastudio/avatar-api/internal/domain"
)

// VoteService handles like toggles and like/dislike votes
type VoteService struct {
	avatarRepo domain.AvatarRepository
	likeRepo   domain.LikeRepository
	voteRepo   domain.VoteRepository
}

// NewVoteService creates a new vote service
func NewVoteService(avatarRepo domain.AvatarRepository, likeRepo domain.LikeRepository, voteRepo domain.VoteRepository) *VoteService {
	return &VoteService{
		avatarRepo: avatarRepo,
		likeRepo:   likeRepo,
		voteRepo:   voteRepo,
	}
}

// ToggleLike flips the caller's like on an avatar and returns the new state
func (s *VoteService) ToggleLike(ctx context.Context, avatarID int64, userID uuid.UUID) (*domain.LikeStatus, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrAuthRequired
	}

	if _, err := s.avatarRepo.Get(ctx, avatarID); err != nil {
		return nil, err
	}

	liked, err := s.likeRepo.Exists(ctx, avatarID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check like: %w", err)
	}

	if liked {
		err = s.likeRepo.Remove(ctx, avatarID, userID)
	} else {
		err = s.likeRepo.Add(ctx, avatarID, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	likes, err := s.likeRepo.Count(ctx, avatarID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	return &domain.LikeStatus{Liked: !liked, Likes: likes}, nil
}

// CastVote records the caller's like/dislike on an avatar and returns
// the resulting state. Casting the vote already held clears it;
// switching sides moves the score by two. Vote "none" always clears.
func (s *VoteService) CastVote(ctx context.Context, avatarID int64, userID uuid.UUID, vote domain.VoteType) (*domain.VoteStatus, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrAuthRequired
	}
	if !vote.Valid() {
		return nil, fmt.Errorf("invalid vote type: %s", vote)
	}

	if _, err := s.avatarRepo.Get(ctx, avatarID); err != nil {
		return nil, err
	}

	current, err := s.voteRepo.Get(ctx, avatarID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current vote: %w", err)
	}

	next := vote
	if vote == current {
		next = domain.VoteNone
	}

	if next == domain.VoteNone {
		err = s.voteRepo.Clear(ctx, avatarID, userID)
	} else {
		err = s.voteRepo.Set(ctx, avatarID, userID, next)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	score, err := s.voteRepo.Score(ctx, avatarID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute score: %w", err)
	}

	return &domain.VoteStatus{Vote: next, Score: score}, nil
}
