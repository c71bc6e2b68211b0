package domain

import (
	"context"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_video_repository.go -package mocks github.com/koinonia-app/koinonia/internal/domain VideoRepository

// Video is a featured YouTube video on the public site.
type Video struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	YoutubeURL string    `json:"youtube_url"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Validate checks the video before persistence
func (v *Video) Validate() error {
	if v.Title == "" {
		return NewValidationError("video title is required")
	}
	if v.YoutubeURL == "" {
		return NewValidationError("video youtube_url is required")
	}
	if !govalidator.IsURL(v.YoutubeURL) {
		return NewValidationError("video youtube_url is invalid")
	}
	if v.Position < 0 {
		return NewValidationError("video position must not be negative")
	}
	return nil
}

// PublicVideoLimit caps the featured-videos strip on the public site.
const PublicVideoLimit = 4

// VideoService provides operations for managing featured videos
type VideoService interface {
	// CreateVideo creates a new video
	CreateVideo(ctx context.Context, video *Video) error

	// GetVideoByID retrieves a video by its ID
	GetVideoByID(ctx context.Context, id string) (*Video, error)

	// ListVideos retrieves all videos ordered by position
	ListVideos(ctx context.Context) ([]*Video, error)

	// ListFeaturedVideos retrieves the first PublicVideoLimit videos by
	// position
	ListFeaturedVideos(ctx context.Context) ([]*Video, error)

	// UpdateVideo updates an existing video
	UpdateVideo(ctx context.Context, video *Video) error

	// DeleteVideo deletes a video
	DeleteVideo(ctx context.Context, id string) error
}

type VideoRepository interface {
	// CreateVideo creates a new video in the database
	CreateVideo(ctx context.Context, video *Video) error

	// GetVideoByID retrieves a video by its ID
	GetVideoByID(ctx context.Context, id string) (*Video, error)

	// ListVideos retrieves videos ordered by position ASC, capped at limit
	// when limit > 0
	ListVideos(ctx context.Context, limit int) ([]*Video, error)

	// UpdateVideo updates an existing video
	UpdateVideo(ctx context.Context, video *Video) error

	// DeleteVideo deletes a video
	DeleteVideo(ctx context.Context, id string) error
}

// ErrVideoNotFound is returned when a video is not found
type ErrVideoNotFound struct {
	Message string
}

func (e *ErrVideoNotFound) Error() string {
	return e.Message
}
