package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type StudyService struct {
	repo        domain.StudyRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewStudyService(repo domain.StudyRepository, authService domain.AuthService, logger logger.Logger) *StudyService {
	return &StudyService{
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

func (s *StudyService) CreateStudy(ctx context.Context, study *domain.Study) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	study.ID = uuid.New().String()

	if err := study.Validate(); err != nil {
		return err
	}

	if err := s.repo.CreateStudy(ctx, study); err != nil {
		s.logger.WithField("study_id", study.ID).Error(fmt.Sprintf("Failed to create study: %v", err))
		return fmt.Errorf("failed to create study: %w", err)
	}

	return nil
}

func (s *StudyService) GetStudyByID(ctx context.Context, id string) (*domain.Study, error) {
	study, err := s.repo.GetStudyByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrStudyNotFound); ok {
			return nil, err
		}
		s.logger.WithField("study_id", id).Error(fmt.Sprintf("Failed to get study: %v", err))
		return nil, fmt.Errorf("failed to get study: %w", err)
	}
	return study, nil
}

func (s *StudyService) ListStudies(ctx context.Context) ([]*domain.Study, error) {
	studies, err := s.repo.ListStudies(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list studies: %v", err))
		return nil, fmt.Errorf("failed to list studies: %w", err)
	}
	return studies, nil
}

func (s *StudyService) UpdateStudy(ctx context.Context, study *domain.Study) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if study.ID == "" {
		return domain.NewValidationError("study id is required")
	}

	if err := study.Validate(); err != nil {
		return err
	}

	if err := s.repo.UpdateStudy(ctx, study); err != nil {
		if _, ok := err.(*domain.ErrStudyNotFound); ok {
			return err
		}
		s.logger.WithField("study_id", study.ID).Error(fmt.Sprintf("Failed to update study: %v", err))
		return fmt.Errorf("failed to update study: %w", err)
	}

	return nil
}

func (s *StudyService) DeleteStudy(ctx context.Context, id string) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.repo.DeleteStudy(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrStudyNotFound); ok {
			return err
		}
		s.logger.WithField("study_id", id).Error(fmt.Sprintf("Failed to delete study: %v", err))
		return fmt.Errorf("failed to delete study: %w", err)
	}

	return nil
}
