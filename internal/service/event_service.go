package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type EventService struct {
	repo        domain.EventRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewEventService(repo domain.EventRepository, authService domain.AuthService, logger logger.Logger) *EventService {
	return &EventService{
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	event.ID = uuid.New().String()

	if err := event.Validate(); err != nil {
		return err
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		s.logger.WithField("event_id", event.ID).Error(fmt.Sprintf("Failed to create event: %v", err))
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (s *EventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrEventNotFound); ok {
			return nil, err
		}
		s.logger.WithField("event_id", id).Error(fmt.Sprintf("Failed to get event: %v", err))
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list events: %v", err))
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// ListUpcomingEvents is the public strip on the home page.
func (s *EventService) ListUpcomingEvents(ctx context.Context) ([]*domain.Event, error) {
	today := time.Now().UTC().Format("2006-01-02")

	events, err := s.repo.ListUpcomingEvents(ctx, today, domain.PublicEventLimit)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list upcoming events: %v", err))
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	return events, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if event.ID == "" {
		return domain.NewValidationError("event id is required")
	}

	if err := event.Validate(); err != nil {
		return err
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		if _, ok := err.(*domain.ErrEventNotFound); ok {
			return err
		}
		s.logger.WithField("event_id", event.ID).Error(fmt.Sprintf("Failed to update event: %v", err))
		return fmt.Errorf("failed to update event: %w", err)
	}

	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrEventNotFound); ok {
			return err
		}
		s.logger.WithField("event_id", id).Error(fmt.Sprintf("Failed to delete event: %v", err))
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}
