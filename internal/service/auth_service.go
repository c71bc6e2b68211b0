package service

import (
	"context"
	"errors"
	"time"

	"aidanwoods.dev/go-paseto"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAuthorized    = errors.New("not authorized")
)

const authTokenTTL = 7 * 24 * time.Hour

type AuthService struct {
	userRepo   domain.UserRepository
	logger     logger.Logger
	privateKey paseto.V4AsymmetricSecretKey
	publicKey  paseto.V4AsymmetricPublicKey
}

type AuthServiceConfig struct {
	UserRepository domain.UserRepository
	PrivateKey     []byte
	PublicKey      []byte
	Logger         logger.Logger
}

func NewAuthService(cfg AuthServiceConfig) (*AuthService, error) {
	privateKey, err := paseto.NewV4AsymmetricSecretKeyFromBytes(cfg.PrivateKey)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.WithField("error", err.Error()).Error("Error creating PASETO private key")
		}
		return nil, err
	}

	publicKey, err := paseto.NewV4AsymmetricPublicKeyFromBytes(cfg.PublicKey)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.WithField("error", err.Error()).Error("Error creating PASETO public key")
		}
		return nil, err
	}

	return &AuthService{
		userRepo:   cfg.UserRepository,
		logger:     cfg.Logger,
		privateKey: privateKey,
		publicKey:  publicKey,
	}, nil
}

// AuthenticateUser returns the account identified by the request context
func (s *AuthService) AuthenticateUser(ctx context.Context) (*domain.User, error) {
	userID, ok := ctx.Value(domain.UserIDKey).(string)
	if !ok || userID == "" {
		return nil, ErrNotAuthenticated
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if _, ok := err.(*domain.ErrUserNotFound); ok {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	return user, nil
}

// AuthenticateAdmin returns the account identified by the request context
// when it has the admin role
func (s *AuthService) AuthenticateAdmin(ctx context.Context) (*domain.User, error) {
	user, err := s.AuthenticateUser(ctx)
	if err != nil {
		return nil, err
	}

	if user.Role != domain.RoleAdmin {
		return nil, ErrNotAuthorized
	}

	return user, nil
}

// GenerateAuthToken issues a signed token for the account
func (s *AuthService) GenerateAuthToken(user *domain.User) (string, time.Time) {
	now := time.Now().UTC()
	expiresAt := now.Add(authTokenTTL)

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(expiresAt)
	token.SetString("user_id", user.ID)
	token.SetString("role", string(user.Role))

	return token.V4Sign(s.privateKey, nil), expiresAt
}

// VerifyToken parses a signed token and returns the user ID and role it
// carries.
func (s *AuthService) VerifyToken(signed string) (userID string, role string, err error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())

	token, err := parser.ParseV4Public(s.publicKey, signed, nil)
	if err != nil {
		return "", "", err
	}

	userID, err = token.GetString("user_id")
	if err != nil {
		return "", "", err
	}

	role, err = token.GetString("role")
	if err != nil {
		return "", "", err
	}

	return userID, role, nil
}
