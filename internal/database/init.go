package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/koinonia-app/koinonia/internal/database/schema"
	"github.com/koinonia-app/koinonia/internal/domain"
)

// InitializeDatabase creates all necessary database tables if they don't exist
func InitializeDatabase(db *sql.DB, rootEmail, rootPassword string) error {
	// Run all table creation queries
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// Create root admin if it doesn't exist
	if rootEmail != "" && rootPassword != "" {
		var exists bool
		err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)", rootEmail).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check root user existence: %w", err)
		}

		if !exists {
			hash, err := bcrypt.GenerateFromPassword([]byte(rootPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash root password: %w", err)
			}

			rootUser := &domain.User{
				ID:           uuid.New().String(),
				Email:        rootEmail,
				PasswordHash: string(hash),
				Name:         "Root Admin",
				Role:         domain.RoleAdmin,
				CreatedAt:    time.Now().UTC(),
				UpdatedAt:    time.Now().UTC(),
			}

			query := `
				INSERT INTO users (id, email, password_hash, name, role, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`
			_, err = db.Exec(query,
				rootUser.ID,
				rootUser.Email,
				rootUser.PasswordHash,
				rootUser.Name,
				rootUser.Role,
				rootUser.CreatedAt,
				rootUser.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to create root user: %w", err)
			}
		}
	}

	// Seed the home page so public rendering always has content
	_, err := db.Exec(`
		INSERT INTO pages (id, title, subtitle, image_url, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`, domain.PageIDHome, "Bem-vindo", "", "", time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to seed home page: %w", err)
	}

	return nil
}

// CleanDatabase drops all tables in reverse order
func CleanDatabase(db *sql.DB) error {
	for i := len(schema.TableNames) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", schema.TableNames[i])
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", schema.TableNames[i], err)
		}
	}
	return nil
}
