package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_pastor_repository.go -package mocks github.com/koinonia-app/koinonia/internal/domain PastorRepository

// Pastor is a leadership entry shown on the public site.
type Pastor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the pastor before persistence
func (p *Pastor) Validate() error {
	if p.Name == "" {
		return NewValidationError("pastor name is required")
	}
	return nil
}

// PastorService provides operations for managing pastors
type PastorService interface {
	// SavePastor creates the pastor when it has no ID, otherwise updates it
	SavePastor(ctx context.Context, pastor *Pastor) error

	// GetPastorByID retrieves a pastor by its ID
	GetPastorByID(ctx context.Context, id string) (*Pastor, error)

	// ListPastors retrieves all pastors
	ListPastors(ctx context.Context) ([]*Pastor, error)

	// DeletePastor deletes a pastor
	DeletePastor(ctx context.Context, id string) error
}

type PastorRepository interface {
	// CreatePastor creates a new pastor in the database
	CreatePastor(ctx context.Context, pastor *Pastor) error

	// GetPastorByID retrieves a pastor by its ID
	GetPastorByID(ctx context.Context, id string) (*Pastor, error)

	// ListPastors retrieves pastors ordered by created_at ASC
	ListPastors(ctx context.Context) ([]*Pastor, error)

	// UpdatePastor updates an existing pastor
	UpdatePastor(ctx context.Context, pastor *Pastor) error

	// DeletePastor deletes a pastor
	DeletePastor(ctx context.Context, id string) error
}

// ErrPastorNotFound is returned when a pastor is not found
type ErrPastorNotFound struct {
	Message string
}

func (e *ErrPastorNotFound) Error() string {
	return e.Message
}
