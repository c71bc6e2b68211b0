package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_event_repository.go -package mocks github.com/koinonia-app/koinonia/internal/domain EventRepository

// Event is a scheduled church event shown on the public site.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Time      string    `json:"time,omitempty"`
	Location  string    `json:"location,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the event before persistence. Date is the calendar day in
// ISO form (2006-01-02) so lexical ordering matches chronological ordering.
func (e *Event) Validate() error {
	if e.Title == "" {
		return NewValidationError("event title is required")
	}
	if e.Date == "" {
		return NewValidationError("event date is required")
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return NewValidationError("event date must be formatted as 2006-01-02")
	}
	return nil
}

// PublicEventLimit caps the upcoming-events strip on the public site.
const PublicEventLimit = 3

// EventService provides operations for managing events
type EventService interface {
	// CreateEvent creates a new event
	CreateEvent(ctx context.Context, event *Event) error

	// GetEventByID retrieves an event by its ID
	GetEventByID(ctx context.Context, id string) (*Event, error)

	// ListEvents retrieves all events, newest date first
	ListEvents(ctx context.Context) ([]*Event, error)

	// ListUpcomingEvents retrieves the next events on or after today,
	// soonest first, capped at PublicEventLimit
	ListUpcomingEvents(ctx context.Context) ([]*Event, error)

	// UpdateEvent updates an existing event
	UpdateEvent(ctx context.Context, event *Event) error

	// DeleteEvent deletes an event
	DeleteEvent(ctx context.Context, id string) error
}

type EventRepository interface {
	// CreateEvent creates a new event in the database
	CreateEvent(ctx context.Context, event *Event) error

	// GetEventByID retrieves an event by its ID
	GetEventByID(ctx context.Context, id string) (*Event, error)

	// ListEvents retrieves all events ordered by date DESC
	ListEvents(ctx context.Context) ([]*Event, error)

	// ListUpcomingEvents retrieves events with date >= from, date ASC,
	// capped at limit
	ListUpcomingEvents(ctx context.Context, from string, limit int) ([]*Event, error)

	// UpdateEvent updates an existing event
	UpdateEvent(ctx context.Context, event *Event) error

	// DeleteEvent deletes an event
	DeleteEvent(ctx context.Context, id string) error
}

// ErrEventNotFound is returned when an event is not found
type ErrEventNotFound struct {
	Message string
}

func (e *ErrEventNotFound) Error() string {
	return e.Message
}
