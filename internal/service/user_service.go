package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/pkg/geocode"
	"github.com/koinonia-app/koinonia/pkg/logger"
	"github.com/koinonia-app/koinonia/pkg/mailer"
)

type UserService struct {
	repo        domain.UserRepository
	profileRepo domain.PublicProfileRepository
	authService domain.AuthService
	geocoder    geocode.Geocoder
	mailer      mailer.Mailer
	logger      logger.Logger
}

func NewUserService(
	repo domain.UserRepository,
	profileRepo domain.PublicProfileRepository,
	authService domain.AuthService,
	geocoder geocode.Geocoder,
	mailer mailer.Mailer,
	logger logger.Logger,
) *UserService {
	return &UserService{
		repo:        repo,
		profileRepo: profileRepo,
		authService: authService,
		geocoder:    geocoder,
		mailer:      mailer,
		logger:      logger,
	}
}

// SignUp registers a pending account. New accounts stay pendente until an
// admin activates them.
func (s *UserService) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, domain.NewValidationError("an account with this email already exists")
	} else if _, ok := err.(*domain.ErrUserNotFound); !ok {
		s.logger.WithField("email", req.Email).Error(fmt.Sprintf("Failed to check existing account: %v", err))
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         domain.RolePending,
		Telefone:     req.Telefone,
		Endereco:     req.Endereco,
		PostCod:      req.PostCod,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		s.logger.WithField("email", req.Email).Error(fmt.Sprintf("Failed to create user: %v", err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, expiresAt := s.authService.GenerateAuthToken(user)
	return &domain.AuthResponse{Token: token, User: *user, ExpiresAt: expiresAt}, nil
}

func (s *UserService) SignIn(ctx context.Context, req domain.SignInRequest) (*domain.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if _, ok := err.(*domain.ErrUserNotFound); ok {
			return nil, &domain.ErrInvalidCredentials{}
		}
		s.logger.WithField("email", req.Email).Error(fmt.Sprintf("Failed to get user: %v", err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &domain.ErrInvalidCredentials{}
	}

	token, expiresAt := s.authService.GenerateAuthToken(user)
	return &domain.AuthResponse{Token: token, User: *user, ExpiresAt: expiresAt}, nil
}

func (s *UserService) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	return s.authService.AuthenticateUser(ctx)
}

func (s *UserService) ListUsers(ctx context.Context, roles []domain.UserRole) ([]*domain.User, error) {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	users, err := s.repo.ListUsersByRole(ctx, roles)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list users: %v", err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// UpdateUser renames an account and/or changes its role, keeping the public
// profile, GC identifier, coordinates and activation notice in sync with the
// role transition.
func (s *UserService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest) (*domain.User, error) {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, req.ID)
	if err != nil {
		if _, ok := err.(*domain.ErrUserNotFound); ok {
			return nil, err
		}
		s.logger.WithField("user_id", req.ID).Error(fmt.Sprintf("Failed to get user: %v", err))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	previousRole := user.Role
	user.Name = req.Name
	user.Role = req.Role

	if user.Role.HasPublicProfile() && user.GCID == "" {
		user.GCID = "gc_" + shortID(user.ID)
	}

	if user.Role.HasPublicProfile() && user.Lat == nil && user.Endereco != "" {
		coords, err := s.geocoder.Geocode(ctx, user.Endereco, user.PostCod)
		if err != nil {
			// a leader without map coordinates is still a leader
			s.logger.WithField("user_id", user.ID).Warn(fmt.Sprintf("Failed to geocode leader address: %v", err))
		} else {
			user.Lat = &coords.Lat
			user.Lng = &coords.Lng
		}
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		if _, ok := err.(*domain.ErrUserNotFound); ok {
			return nil, err
		}
		s.logger.WithField("user_id", user.ID).Error(fmt.Sprintf("Failed to update user: %v", err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if err := s.syncPublicProfile(ctx, user); err != nil {
		return nil, err
	}

	if previousRole == domain.RolePending && user.Role != domain.RolePending {
		if err := s.mailer.SendAccountActivated(user.Email, user.Name); err != nil {
			s.logger.WithField("user_id", user.ID).Warn(fmt.Sprintf("Failed to send activation notice: %v", err))
		}
	}

	if previousRole != domain.RoleLeader && user.Role == domain.RoleLeader {
		if err := s.mailer.SendLeaderWelcome(user.Email, user.Name, user.GCID); err != nil {
			s.logger.WithField("user_id", user.ID).Warn(fmt.Sprintf("Failed to send leader welcome: %v", err))
		}
	}

	return user, nil
}

// syncPublicProfile upserts or deletes the public profile to match the
// user's current role.
func (s *UserService) syncPublicProfile(ctx context.Context, user *domain.User) error {
	if user.Role.HasPublicProfile() {
		profile := &domain.PublicProfile{
			UserID:   user.ID,
			Name:     user.Name,
			PhotoURL: user.PhotoURL,
			Endereco: user.Endereco,
			PostCod:  user.PostCod,
			Telefone: user.Telefone,
			Lat:      user.Lat,
			Lng:      user.Lng,
		}
		if err := s.profileRepo.UpsertProfile(ctx, profile); err != nil {
			s.logger.WithField("user_id", user.ID).Error(fmt.Sprintf("Failed to upsert public profile: %v", err))
			return fmt.Errorf("failed to upsert public profile: %w", err)
		}
		return nil
	}

	if err := s.profileRepo.DeleteProfile(ctx, user.ID); err != nil {
		s.logger.WithField("user_id", user.ID).Error(fmt.Sprintf("Failed to delete public profile: %v", err))
		return fmt.Errorf("failed to delete public profile: %w", err)
	}
	return nil
}

// DeleteUser removes an account. The public profile goes first so a failure
// part-way never leaves an orphaned profile on the public map.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.profileRepo.DeleteProfile(ctx, id); err != nil {
		s.logger.WithField("user_id", id).Error(fmt.Sprintf("Failed to delete public profile: %v", err))
		return fmt.Errorf("failed to delete public profile: %w", err)
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrUserNotFound); ok {
			return err
		}
		s.logger.WithField("user_id", id).Error(fmt.Sprintf("Failed to delete user: %v", err))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (s *UserService) ListPublicProfiles(ctx context.Context) ([]*domain.PublicProfile, error) {
	profiles, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list public profiles: %v", err))
		return nil, fmt.Errorf("failed to list public profiles: %w", err)
	}
	return profiles, nil
}

func shortID(id string) string {
	if len(id) > 6 {
		return id[:6]
	}
	return id
}
