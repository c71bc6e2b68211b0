package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_study_repository.go -package mocks github.com/koinonia-app/koinonia/internal/domain StudyRepository

// Study is a published study or devotional resource.
type Study struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the study before persistence
func (s *Study) Validate() error {
	if s.Title == "" {
		return NewValidationError("study title is required")
	}
	return nil
}

// StudyService provides operations for managing studies
type StudyService interface {
	// CreateStudy creates a new study
	CreateStudy(ctx context.Context, study *Study) error

	// GetStudyByID retrieves a study by its ID
	GetStudyByID(ctx context.Context, id string) (*Study, error)

	// ListStudies retrieves all studies, newest first
	ListStudies(ctx context.Context) ([]*Study, error)

	// UpdateStudy updates an existing study
	UpdateStudy(ctx context.Context, study *Study) error

	// DeleteStudy deletes a study
	DeleteStudy(ctx context.Context, id string) error
}

type StudyRepository interface {
	// CreateStudy creates a new study in the database
	CreateStudy(ctx context.Context, study *Study) error

	// GetStudyByID retrieves a study by its ID
	GetStudyByID(ctx context.Context, id string) (*Study, error)

	// ListStudies retrieves all studies ordered by created_at DESC
	ListStudies(ctx context.Context) ([]*Study, error)

	// UpdateStudy updates an existing study
	UpdateStudy(ctx context.Context, study *Study) error

	// DeleteStudy deletes a study
	DeleteStudy(ctx context.Context, id string) error
}

// ErrStudyNotFound is returned when a study is not found
type ErrStudyNotFound struct {
	Message string
}

func (e *ErrStudyNotFound) Error() string {
	return e.Message
}
