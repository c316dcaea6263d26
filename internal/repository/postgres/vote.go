package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// VoteRepository implements domain.VoteRepository
type VoteRepository struct {
	pool *pgxpool.Pool
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *DB) *VoteRepository {
	return &VoteRepository{pool: db.Pool}
}

func (r *VoteRepository) Get(ctx context.Context, avatarID int64, userID uuid.UUID) (domain.VoteType, error) {
	var vote string
	err := r.pool.QueryRow(ctx,
		`SELECT vote_type FROM avatar_votes WHERE avatar_id = $1 AND user_id = $2`,
		avatarID, userID,
	).Scan(&vote)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.VoteNone, nil
		}
		return domain.VoteNone, fmt.Errorf("failed to get vote: %w", err)
	}
	return domain.VoteType(vote), nil
}

// Set upserts the unique (avatar, user) vote row. Concurrent writers for
// the same pair resolve last-write-wins at the store.
func (r *VoteRepository) Set(ctx context.Context, avatarID int64, userID uuid.UUID, vote domain.VoteType) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO avatar_votes (avatar_id, user_id, vote_type) VALUES ($1, $2, $3)
		 ON CONFLICT (avatar_id, user_id) DO UPDATE SET vote_type = EXCLUDED.vote_type, updated_at = now()`,
		avatarID, userID, string(vote),
	)
	if err != nil {
		return fmt.Errorf("failed to set vote: %w", err)
	}
	return nil
}

func (r *VoteRepository) Clear(ctx context.Context, avatarID int64, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM avatar_votes WHERE avatar_id = $1 AND user_id = $2`,
		avatarID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear vote: %w", err)
	}
	return nil
}

func (r *VoteRepository) Score(ctx context.Context, avatarID int64) (int, error) {
	var score int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(CASE vote_type WHEN 'like' THEN 1 WHEN 'dislike' THEN -1 ELSE 0 END), 0)
		 FROM avatar_votes WHERE avatar_id = $1`,
		avatarID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("failed to compute score: %w", err)
	}
	return score, nil
}

var _ domain.VoteRepository = (*VoteRepository)(nil)
