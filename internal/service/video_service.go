package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type VideoService struct {
	repo        domain.VideoRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewVideoService(repo domain.VideoRepository, authService domain.AuthService, logger logger.Logger) *VideoService {
	return &VideoService{
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

func (s *VideoService) CreateVideo(ctx context.Context, video *domain.Video) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	video.ID = uuid.New().String()

	if err := video.Validate(); err != nil {
		return err
	}

	if err := s.repo.CreateVideo(ctx, video); err != nil {
		s.logger.WithField("video_id", video.ID).Error(fmt.Sprintf("Failed to create video: %v", err))
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

func (s *VideoService) GetVideoByID(ctx context.Context, id string) (*domain.Video, error) {
	video, err := s.repo.GetVideoByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrVideoNotFound); ok {
			return nil, err
		}
		s.logger.WithField("video_id", id).Error(fmt.Sprintf("Failed to get video: %v", err))
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return video, nil
}

func (s *VideoService) ListVideos(ctx context.Context) ([]*domain.Video, error) {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	videos, err := s.repo.ListVideos(ctx, 0)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list videos: %v", err))
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, nil
}

// ListFeaturedVideos is the public strip on the home page.
func (s *VideoService) ListFeaturedVideos(ctx context.Context) ([]*domain.Video, error) {
	videos, err := s.repo.ListVideos(ctx, domain.PublicVideoLimit)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list featured videos: %v", err))
		return nil, fmt.Errorf("failed to list featured videos: %w", err)
	}
	return videos, nil
}

func (s *VideoService) UpdateVideo(ctx context.Context, video *domain.Video) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if video.ID == "" {
		return domain.NewValidationError("video id is required")
	}

	if err := video.Validate(); err != nil {
		return err
	}

	if err := s.repo.UpdateVideo(ctx, video); err != nil {
		if _, ok := err.(*domain.ErrVideoNotFound); ok {
			return err
		}
		s.logger.WithField("video_id", video.ID).Error(fmt.Sprintf("Failed to update video: %v", err))
		return fmt.Errorf("failed to update video: %w", err)
	}

	return nil
}

func (s *VideoService) DeleteVideo(ctx context.Context, id string) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.repo.DeleteVideo(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrVideoNotFound); ok {
			return err
		}
		s.logger.WithField("video_id", id).Error(fmt.Sprintf("Failed to delete video: %v", err))
		return fmt.Errorf("failed to delete video: %w", err)
	}

	return nil
}
