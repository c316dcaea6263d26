package domain

import (
	"context"

	"github.com/google/uuid"
)

// VoteType is a user's vote on an avatar
type VoteType string

const (
	VoteLike    VoteType = "like"
	VoteDislike VoteType = "dislike"
	VoteNone    VoteType = "none"
)

// Valid reports whether v is a castable vote value
func (v VoteType) Valid() bool {
	return v == VoteLike || v == VoteDislike || v == VoteNone
}

// LikeStatus is the caller-visible result of a like toggle
type LikeStatus struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

// VoteStatus is the caller-visible result of a vote cast
type VoteStatus struct {
	Vote  VoteType `json:"vote"`
	Score int      `json:"score"`
}

// LikeRepository manages the unique (avatar, user) like pairs
type LikeRepository interface {
	Exists(ctx context.Context, avatarID int64, userID uuid.UUID) (bool, error)
	Add(ctx context.Context, avatarID int64, userID uuid.UUID) error
	Remove(ctx context.Context, avatarID int64, userID uuid.UUID) error
	Count(ctx context.Context, avatarID int64) (int, error)
}

// VoteRepository manages the unique (avatar, user) vote rows and the
// aggregate score (likes minus dislikes)
type VoteRepository interface {
	Get(ctx context.Context, avatarID int64, userID uuid.UUID) (VoteType, error)
	Set(ctx context.Context, avatarID int64, userID uuid.UUID, vote VoteType) error
	Clear(ctx context.Context, avatarID int64, userID uuid.UUID) error
	Score(ctx context.Context, avatarID int64) (int, error)
}
