package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type PastorService struct {
	repo        domain.PastorRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewPastorService(repo domain.PastorRepository, authService domain.AuthService, logger logger.Logger) *PastorService {
	return &PastorService{
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

// SavePastor creates the pastor when it has no ID, otherwise updates it.
func (s *PastorService) SavePastor(ctx context.Context, pastor *domain.Pastor) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := pastor.Validate(); err != nil {
		return err
	}

	if pastor.ID == "" {
		pastor.ID = uuid.New().String()
		if err := s.repo.CreatePastor(ctx, pastor); err != nil {
			s.logger.WithField("pastor_id", pastor.ID).Error(fmt.Sprintf("Failed to create pastor: %v", err))
			return fmt.Errorf("failed to create pastor: %w", err)
		}
		return nil
	}

	if err := s.repo.UpdatePastor(ctx, pastor); err != nil {
		if _, ok := err.(*domain.ErrPastorNotFound); ok {
			return err
		}
		s.logger.WithField("pastor_id", pastor.ID).Error(fmt.Sprintf("Failed to update pastor: %v", err))
		return fmt.Errorf("failed to update pastor: %w", err)
	}

	return nil
}

func (s *PastorService) GetPastorByID(ctx context.Context, id string) (*domain.Pastor, error) {
	pastor, err := s.repo.GetPastorByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrPastorNotFound); ok {
			return nil, err
		}
		s.logger.WithField("pastor_id", id).Error(fmt.Sprintf("Failed to get pastor: %v", err))
		return nil, fmt.Errorf("failed to get pastor: %w", err)
	}
	return pastor, nil
}

func (s *PastorService) ListPastors(ctx context.Context) ([]*domain.Pastor, error) {
	pastors, err := s.repo.ListPastors(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list pastors: %v", err))
		return nil, fmt.Errorf("failed to list pastors: %w", err)
	}
	return pastors, nil
}

func (s *PastorService) DeletePastor(ctx context.Context, id string) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.repo.DeletePastor(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrPastorNotFound); ok {
			return err
		}
		s.logger.WithField("pastor_id", id).Error(fmt.Sprintf("Failed to delete pastor: %v", err))
		return fmt.Errorf("failed to delete pastor: %w", err)
	}

	return nil
}
