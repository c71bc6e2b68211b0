package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_user_repository.go -package mocks github.com/koinonia-app/koinonia/internal/domain UserRepository
//go:generate mockgen -destination mocks/mock_public_profile_repository.go -package mocks github.com/koinonia-app/koinonia/internal/domain PublicProfileRepository
//go:generate mockgen -destination mocks/mock_auth_service.go -package mocks github.com/koinonia-app/koinonia/internal/domain AuthService

// Key for storing user ID and role in context
type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserRoleKey contextKey = "user_role"
)

// UserRole is the closed set of account roles.
type UserRole string

const (
	RolePending UserRole = "pendente"
	RoleMember  UserRole = "membro"
	RoleLeader  UserRole = "lider"
	RoleAdmin   UserRole = "admin"
)

// Validate checks that the role belongs to the closed set
func (r UserRole) Validate() error {
	switch r {
	case RolePending, RoleMember, RoleLeader, RoleAdmin:
		return nil
	}
	return NewValidationError(fmt.Sprintf("unknown role: %s", r))
}

// HasPublicProfile reports whether accounts with this role are shown on the
// public leaders map.
func (r UserRole) HasPublicProfile() bool {
	return r == RoleLeader || r == RoleAdmin
}

// User represents an account in the system
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	Telefone     string    `json:"telefone,omitempty"`
	Endereco     string    `json:"endereco,omitempty"`
	PostCod      string    `json:"post_cod,omitempty"`
	GCID         string    `json:"gc_id,omitempty"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Lat          *float64  `json:"lat,omitempty"`
	Lng          *float64  `json:"lng,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile is the publicly visible subset of a leader's account,
// maintained in lockstep with role changes.
type PublicProfile struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Endereco  string    `json:"endereco,omitempty"`
	PostCod   string    `json:"post_cod,omitempty"`
	Telefone  string    `json:"telefone,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Request/Response types

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Telefone string `json:"telefone,omitempty"`
	Endereco string `json:"endereco,omitempty"`
	PostCod  string `json:"post_cod,omitempty"`
}

func (r *SignUpRequest) Validate() error {
	if r.Email == "" {
		return NewValidationError("email is required")
	}
	if !govalidator.IsEmail(r.Email) {
		return NewValidationError("email is invalid")
	}
	if len(r.Password) < 8 {
		return NewValidationError("password must be at least 8 characters")
	}
	if r.Name == "" {
		return NewValidationError("name is required")
	}
	return nil
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignInRequest) Validate() error {
	if r.Email == "" {
		return NewValidationError("email is required")
	}
	if r.Password == "" {
		return NewValidationError("password is required")
	}
	return nil
}

type AuthResponse struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UpdateUserRequest struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}

func (r *UpdateUserRequest) Validate() error {
	if r.ID == "" {
		return NewValidationError("user id is required")
	}
	if r.Name == "" {
		return NewValidationError("name is required")
	}
	return r.Role.Validate()
}

type DeleteUserRequest struct {
	ID string `json:"id"`
}

func (r *DeleteUserRequest) Validate() error {
	if r.ID == "" {
		return NewValidationError("user id is required")
	}
	return nil
}

// UserService provides operations for managing accounts and their public
// profiles
type UserService interface {
	// SignUp registers a pending account
	SignUp(ctx context.Context, req SignUpRequest) (*AuthResponse, error)

	// SignIn authenticates an account by email and password
	SignIn(ctx context.Context, req SignInRequest) (*AuthResponse, error)

	// GetCurrentUser returns the account of the authenticated caller
	GetCurrentUser(ctx context.Context) (*User, error)

	// ListUsers retrieves accounts with any of the given roles
	ListUsers(ctx context.Context, roles []UserRole) ([]*User, error)

	// UpdateUser renames an account and/or changes its role, keeping the
	// public profile in sync
	UpdateUser(ctx context.Context, req UpdateUserRequest) (*User, error)

	// DeleteUser removes an account and, for leaders/admins, its public
	// profile first
	DeleteUser(ctx context.Context, id string) error

	// ListPublicProfiles retrieves the public leader profiles
	ListPublicProfiles(ctx context.Context) ([]*PublicProfile, error)
}

type UserRepository interface {
	// CreateUser creates a new account in the database
	CreateUser(ctx context.Context, user *User) error

	// GetUserByID retrieves an account by its ID
	GetUserByID(ctx context.Context, id string) (*User, error)

	// GetUserByEmail retrieves an account by email
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// ListUsersByRole retrieves accounts with any of the given roles
	ListUsersByRole(ctx context.Context, roles []UserRole) ([]*User, error)

	// UpdateUser updates an existing account
	UpdateUser(ctx context.Context, user *User) error

	// DeleteUser deletes an account
	DeleteUser(ctx context.Context, id string) error
}

type PublicProfileRepository interface {
	// UpsertProfile creates or replaces a public profile
	UpsertProfile(ctx context.Context, profile *PublicProfile) error

	// GetProfileByUserID retrieves a public profile
	GetProfileByUserID(ctx context.Context, userID string) (*PublicProfile, error)

	// ListProfiles retrieves all public profiles
	ListProfiles(ctx context.Context) ([]*PublicProfile, error)

	// DeleteProfile deletes a public profile
	DeleteProfile(ctx context.Context, userID string) error
}

// AuthService authenticates callers from request context and issues tokens
type AuthService interface {
	// AuthenticateUser returns the account identified by the request context
	AuthenticateUser(ctx context.Context) (*User, error)

	// AuthenticateAdmin returns the account identified by the request
	// context when it has the admin role
	AuthenticateAdmin(ctx context.Context) (*User, error)

	// GenerateAuthToken issues a signed token for the account
	GenerateAuthToken(user *User) (string, time.Time)
}

// ErrUserNotFound is returned when an account is not found
type ErrUserNotFound struct {
	Message string
}

func (e *ErrUserNotFound) Error() string {
	return e.Message
}

// ErrProfileNotFound is returned when a public profile is not found
type ErrProfileNotFound struct {
	Message string
}

func (e *ErrProfileNotFound) Error() string {
	return e.Message
}

// ErrInvalidCredentials is returned on a failed sign-in
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}
