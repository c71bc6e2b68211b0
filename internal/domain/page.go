package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_page_repository.go -package mocks github.com/koinonia-app/koinonia/internal/domain PageRepository

// PageIDHome is the only page managed today.
const PageIDHome = "home"

// Page holds editable content of a public site page, currently the home
// page hero.
type Page struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the page before persistence
func (p *Page) Validate() error {
	if p.ID == "" {
		return NewValidationError("page id is required")
	}
	if p.Title == "" {
		return NewValidationError("page title is required")
	}
	return nil
}

// PageService provides operations for managing page content
type PageService interface {
	// GetPage retrieves a page's content
	GetPage(ctx context.Context, id string) (*Page, error)

	// UpdatePage replaces a page's content
	UpdatePage(ctx context.Context, page *Page) error
}

type PageRepository interface {
	// GetPage retrieves a page by its ID
	GetPage(ctx context.Context, id string) (*Page, error)

	// UpsertPage creates or replaces a page
	UpsertPage(ctx context.Context, page *Page) error
}

// ErrPageNotFound is returned when a page is not found
type ErrPageNotFound struct {
	Message string
}

func (e *ErrPageNotFound) Error() string {
	return e.Message
}
