package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/koinonia-app/koinonia/internal/domain"
)

type publicProfileRepository struct {
	db *sql.DB
}

// NewPublicProfileRepository creates a new PostgreSQL public profile repository
func NewPublicProfileRepository(db *sql.DB) domain.PublicProfileRepository {
	return &publicProfileRepository{db: db}
}

func (r *publicProfileRepository) UpsertProfile(ctx context.Context, profile *domain.PublicProfile) error {
	profile.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO public_profiles (user_id, name, photo_url, endereco, post_cod, telefone, lat, lng, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name, photo_url = EXCLUDED.photo_url,
			endereco = EXCLUDED.endereco, post_cod = EXCLUDED.post_cod,
			telefone = EXCLUDED.telefone, lat = EXCLUDED.lat,
			lng = EXCLUDED.lng, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		profile.UserID,
		profile.Name,
		profile.PhotoURL,
		profile.Endereco,
		profile.PostCod,
		profile.Telefone,
		profile.Lat,
		profile.Lng,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert public profile: %w", err)
	}

	return nil
}

func (r *publicProfileRepository) GetProfileByUserID(ctx context.Context, userID string) (*domain.PublicProfile, error) {
	query := `
		SELECT user_id, name, photo_url, endereco, post_cod, telefone, lat, lng, updated_at
		FROM public_profiles
		WHERE user_id = $1
	`

	profile := &domain.PublicProfile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.PhotoURL,
		&profile.Endereco,
		&profile.PostCod,
		&profile.Telefone,
		&profile.Lat,
		&profile.Lng,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrProfileNotFound{Message: "public profile not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get public profile: %w", err)
	}

	return profile, nil
}

func (r *publicProfileRepository) ListProfiles(ctx context.Context) ([]*domain.PublicProfile, error) {
	query := `
		SELECT user_id, name, photo_url, endereco, post_cod, telefone, lat, lng, updated_at
		FROM public_profiles
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list public profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.PublicProfile
	for rows.Next() {
		profile := &domain.PublicProfile{}
		err := rows.Scan(
			&profile.UserID,
			&profile.Name,
			&profile.PhotoURL,
			&profile.Endereco,
			&profile.PostCod,
			&profile.Telefone,
			&profile.Lat,
			&profile.Lng,
			&profile.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan public profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating public profile rows: %w", err)
	}

	return profiles, nil
}

func (r *publicProfileRepository) DeleteProfile(ctx context.Context, userID string) error {
	// Deleting an absent profile is a no-op so role demotions stay retryable
	_, err := r.db.ExecContext(ctx, `DELETE FROM public_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete public profile: %w", err)
	}
	return nil
}
