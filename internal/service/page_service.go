package service

import (
	"context"
	"fmt"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type PageService struct {
	repo        domain.PageRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewPageService(repo domain.PageRepository, authService domain.AuthService, logger logger.Logger) *PageService {
	return &PageService{
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

func (s *PageService) GetPage(ctx context.Context, id string) (*domain.Page, error) {
	page, err := s.repo.GetPage(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrPageNotFound); ok {
			return nil, err
		}
		s.logger.WithField("page_id", id).Error(fmt.Sprintf("Failed to get page: %v", err))
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return page, nil
}

func (s *PageService) UpdatePage(ctx context.Context, page *domain.Page) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := page.Validate(); err != nil {
		return err
	}

	if err := s.repo.UpsertPage(ctx, page); err != nil {
		s.logger.WithField("page_id", page.ID).Error(fmt.Sprintf("Failed to update page: %v", err))
		return fmt.Errorf("failed to update page: %w", err)
	}

	return nil
}
