package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AvatarRepository implements domain.AvatarRepository
type AvatarRepository struct {
	pool *pgxpool.Pool
}

// NewAvatarRepository creates a new avatar repository
func NewAvatarRepository(db *DB) *AvatarRepository {
	return &AvatarRepository{pool: db.Pool}
}

func (r *AvatarRepository) Insert(ctx context.Context, avatar *domain.Avatar) (int64, error) {
	tags, err := json.Marshal(avatar.StyleTags)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal style tags: %w", err)
	}

	query := `
		INSERT INTO avatars (svg_content, image_url, prompt, style_tags, color_palette)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	var id int64
	err = r.pool.QueryRow(ctx, query,
		avatar.SVGContent,
		avatar.ImageURL,
		avatar.Prompt,
		tags,
		avatar.ColorPalette,
	).Scan(&id, &avatar.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert avatar: %w", err)
	}

	avatar.ID = id
	return id, nil
}

func (r *AvatarRepository) Get(ctx context.Context, id int64) (*domain.Avatar, error) {
	query := `
		SELECT a.id, a.svg_content, a.image_url, a.prompt, a.style_tags, a.color_palette, a.created_at,
		       (SELECT COUNT(*) FROM avatar_likes l WHERE l.avatar_id = a.id) AS likes,
		       COALESCE((SELECT SUM(CASE v.vote_type WHEN 'like' THEN 1 WHEN 'dislike' THEN -1 ELSE 0 END)
		                 FROM avatar_votes v WHERE v.avatar_id = a.id), 0) AS score
		FROM avatars a
		WHERE a.id = $1
	`
	avatar, err := scanAvatar(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get avatar: %w", err)
	}
	return avatar, nil
}

func (r *AvatarRepository) List(ctx context.Context, limit, offset int) ([]domain.Avatar, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM avatars`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count avatars: %w", err)
	}

	query := `
		SELECT a.id, a.svg_content, a.image_url, a.prompt, a.style_tags, a.color_palette, a.created_at,
		       (SELECT COUNT(*) FROM avatar_likes l WHERE l.avatar_id = a.id) AS likes,
		       COALESCE((SELECT SUM(CASE v.vote_type WHEN 'like' THEN 1 WHEN 'dislike' THEN -1 ELSE 0 END)
		                 FROM avatar_votes v WHERE v.avatar_id = a.id), 0) AS score
		FROM avatars a
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list avatars: %w", err)
	}
	defer rows.Close()

	var avatars []domain.Avatar
	for rows.Next() {
		avatar, err := scanAvatar(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan avatar: %w", err)
		}
		avatars = append(avatars, *avatar)
	}
	return avatars, total, nil
}

func (r *AvatarRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM avatars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAvatar(row pgx.Row) (*domain.Avatar, error) {
	var a domain.Avatar
	var tags []byte
	err := row.Scan(
		&a.ID,
		&a.SVGContent,
		&a.ImageURL,
		&a.Prompt,
		&tags,
		&a.ColorPalette,
		&a.CreatedAt,
		&a.Likes,
		&a.Score,
	)
	if err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &a.StyleTags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal style tags: %w", err)
		}
	}
	return &a, nil
}
