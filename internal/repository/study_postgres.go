package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/koinonia-app/koinonia/internal/domain"
)

type studyRepository struct {
	db *sql.DB
}

// NewStudyRepository creates a new PostgreSQL study repository
func NewStudyRepository(db *sql.DB) domain.StudyRepository {
	return &studyRepository{db: db}
}

func (r *studyRepository) CreateStudy(ctx context.Context, study *domain.Study) error {
	now := time.Now().UTC()
	study.CreatedAt = now
	study.UpdatedAt = now

	query := `
		INSERT INTO studies (id, title, description, link, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		study.ID,
		study.Title,
		study.Description,
		study.Link,
		study.ImageURL,
		study.CreatedAt,
		study.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create study: %w", err)
	}
	return nil
}

func (r *studyRepository) GetStudyByID(ctx context.Context, id string) (*domain.Study, error) {
	query := `
		SELECT id, title, description, link, image_url, created_at, updated_at
		FROM studies
		WHERE id = $1
	`

	study := &domain.Study{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&study.ID,
		&study.Title,
		&study.Description,
		&study.Link,
		&study.ImageURL,
		&study.CreatedAt,
		&study.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrStudyNotFound{Message: "study not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get study: %w", err)
	}

	return study, nil
}

func (r *studyRepository) ListStudies(ctx context.Context) ([]*domain.Study, error) {
	query := `
		SELECT id, title, description, link, image_url, created_at, updated_at
		FROM studies
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list studies: %w", err)
	}
	defer rows.Close()

	var studies []*domain.Study
	for rows.Next() {
		study := &domain.Study{}
		err := rows.Scan(
			&study.ID,
			&study.Title,
			&study.Description,
			&study.Link,
			&study.ImageURL,
			&study.CreatedAt,
			&study.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan study: %w", err)
		}
		studies = append(studies, study)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating study rows: %w", err)
	}

	return studies, nil
}

func (r *studyRepository) UpdateStudy(ctx context.Context, study *domain.Study) error {
	study.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE studies
		SET title = $1, description = $2, link = $3, image_url = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		study.Title,
		study.Description,
		study.Link,
		study.ImageURL,
		study.UpdatedAt,
		study.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update study: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrStudyNotFound{Message: "study not found"}
	}

	return nil
}

func (r *studyRepository) DeleteStudy(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM studies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete study: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrStudyNotFound{Message: "study not found"}
	}

	return nil
}
