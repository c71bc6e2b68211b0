package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/koinonia-app/koinonia/internal/domain"
)

type pastorRepository struct {
	db *sql.DB
}

// NewPastorRepository creates a new PostgreSQL pastor repository
func NewPastorRepository(db *sql.DB) domain.PastorRepository {
	return &pastorRepository{db: db}
}

func (r *pastorRepository) CreatePastor(ctx context.Context, pastor *domain.Pastor) error {
	now := time.Now().UTC()
	pastor.CreatedAt = now
	pastor.UpdatedAt = now

	query := `
		INSERT INTO pastors (id, name, role, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		pastor.ID,
		pastor.Name,
		pastor.Role,
		pastor.PhotoURL,
		pastor.CreatedAt,
		pastor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create pastor: %w", err)
	}
	return nil
}

func (r *pastorRepository) GetPastorByID(ctx context.Context, id string) (*domain.Pastor, error) {
	query := `
		SELECT id, name, role, photo_url, created_at, updated_at
		FROM pastors
		WHERE id = $1
	`

	pastor := &domain.Pastor{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pastor.ID,
		&pastor.Name,
		&pastor.Role,
		&pastor.PhotoURL,
		&pastor.CreatedAt,
		&pastor.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrPastorNotFound{Message: "pastor not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pastor: %w", err)
	}

	return pastor, nil
}

func (r *pastorRepository) ListPastors(ctx context.Context) ([]*domain.Pastor, error) {
	query := `
		SELECT id, name, role, photo_url, created_at, updated_at
		FROM pastors
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pastors: %w", err)
	}
	defer rows.Close()

	var pastors []*domain.Pastor
	for rows.Next() {
		pastor := &domain.Pastor{}
		err := rows.Scan(
			&pastor.ID,
			&pastor.Name,
			&pastor.Role,
			&pastor.PhotoURL,
			&pastor.CreatedAt,
			&pastor.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pastor: %w", err)
		}
		pastors = append(pastors, pastor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pastor rows: %w", err)
	}

	return pastors, nil
}

func (r *pastorRepository) UpdatePastor(ctx context.Context, pastor *domain.Pastor) error {
	pastor.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE pastors
		SET name = $1, role = $2, photo_url = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		pastor.Name,
		pastor.Role,
		pastor.PhotoURL,
		pastor.UpdatedAt,
		pastor.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pastor: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrPastorNotFound{Message: "pastor not found"}
	}

	return nil
}

func (r *pastorRepository) DeletePastor(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pastors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pastor: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrPastorNotFound{Message: "pastor not found"}
	}

	return nil
}
