package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/koinonia-app/koinonia/internal/domain"
)

type videoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new PostgreSQL video repository
func NewVideoRepository(db *sql.DB) domain.VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) CreateVideo(ctx context.Context, video *domain.Video) error {
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now

	query := `
		INSERT INTO videos (id, title, youtube_url, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		video.ID,
		video.Title,
		video.YoutubeURL,
		video.Position,
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

func (r *videoRepository) GetVideoByID(ctx context.Context, id string) (*domain.Video, error) {
	query := `
		SELECT id, title, youtube_url, position, created_at, updated_at
		FROM videos
		WHERE id = $1
	`

	video := &domain.Video{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&video.ID,
		&video.Title,
		&video.YoutubeURL,
		&video.Position,
		&video.CreatedAt,
		&video.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrVideoNotFound{Message: "video not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	return video, nil
}

func (r *videoRepository) ListVideos(ctx context.Context, limit int) ([]*domain.Video, error) {
	builder := sq.Select("id", "title", "youtube_url", "position", "created_at", "updated_at").
		From("videos").
		OrderBy("position ASC").
		PlaceholderFormat(sq.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build videos query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	var videos []*domain.Video
	for rows.Next() {
		video := &domain.Video{}
		err := rows.Scan(
			&video.ID,
			&video.Title,
			&video.YoutubeURL,
			&video.Position,
			&video.CreatedAt,
			&video.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating video rows: %w", err)
	}

	return videos, nil
}

func (r *videoRepository) UpdateVideo(ctx context.Context, video *domain.Video) error {
	video.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE videos
		SET title = $1, youtube_url = $2, position = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		video.Title,
		video.YoutubeURL,
		video.Position,
		video.UpdatedAt,
		video.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrVideoNotFound{Message: "video not found"}
	}

	return nil
}

func (r *videoRepository) DeleteVideo(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrVideoNotFound{Message: "video not found"}
	}

	return nil
}
