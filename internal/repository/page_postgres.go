package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/koinonia-app/koinonia/internal/domain"
)

type pageRepository struct {
	db *sql.DB
}

// NewPageRepository creates a new PostgreSQL page repository
func NewPageRepository(db *sql.DB) domain.PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) GetPage(ctx context.Context, id string) (*domain.Page, error) {
	query := `
		SELECT id, title, subtitle, image_url, updated_at
		FROM pages
		WHERE id = $1
	`

	page := &domain.Page{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&page.ID,
		&page.Title,
		&page.Subtitle,
		&page.ImageURL,
		&page.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrPageNotFound{Message: "page not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	return page, nil
}

func (r *pageRepository) UpsertPage(ctx context.Context, page *domain.Page) error {
	page.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO pages (id, title, subtitle, image_url, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, subtitle = EXCLUDED.subtitle,
			image_url = EXCLUDED.image_url, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		page.ID,
		page.Title,
		page.Subtitle,
		page.ImageURL,
		page.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert page: %w", err)
	}

	return nil
}
