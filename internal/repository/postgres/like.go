package postgres

import (
	"context"
	"fmt"

	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LikeRepository implements domain.LikeRepository
type LikeRepository struct {
	pool *pgxpool.Pool
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *DB) *LikeRepository {
	return &LikeRepository{pool: db.Pool}
}

func (r *LikeRepository) Exists(ctx context.Context, avatarID int64, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM avatar_likes WHERE avatar_id = $1 AND user_id = $2)`,
		avatarID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}

func (r *LikeRepository) Add(ctx context.Context, avatarID int64, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO avatar_likes (avatar_id, user_id) VALUES ($1, $2)
		 ON CONFLICT (avatar_id, user_id) DO NOTHING`,
		avatarID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Remove(ctx context.Context, avatarID int64, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM avatar_likes WHERE avatar_id = $1 AND user_id = $2`,
		avatarID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Count(ctx context.Context, avatarID int64) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM avatar_likes WHERE avatar_id = $1`,
		avatarID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

var _ domain.LikeRepository = (*LikeRepository)(nil)
