package domain

import (
	"context"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_member_repository.go -package mocks github.com/koinonia-app/koinonia/internal/domain MemberRepository
//go:generate mockgen -destination mocks/mock_member_service.go -package mocks github.com/koinonia-app/koinonia/internal/domain MemberService

// Member is a self-registered person record (cadastro).
type Member struct {
	ID             string    `json:"id"`
	Nome           string    `json:"nome"`
	DataNascimento string    `json:"data_nascimento,omitempty"`
	Email          string    `json:"email,omitempty"`
	CountryCode    string    `json:"country_code,omitempty"`
	Telefone       string    `json:"telefone,omitempty"`
	Endereco       string    `json:"endereco,omitempty"`
	PostCod        string    `json:"post_cod,omitempty"`
	GCID           string    `json:"gc_id,omitempty"`
	QuerGC         bool      `json:"quer_gc"`
	Contacted      bool      `json:"contacted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate checks the member record before persistence
func (m *Member) Validate() error {
	if m.Nome == "" {
		return NewValidationError("nome is required")
	}
	if m.Email != "" && !govalidator.IsEmail(m.Email) {
		return NewValidationError("email is invalid")
	}
	return nil
}

// SetContacted marks whether a member who asked for a GC has been reached.
// Marking contacted requires the member to already be assigned to a GC.
func (m *Member) SetContacted(contacted bool) error {
	if contacted && m.GCID == "" {
		return NewValidationError("member must be assigned to a GC before being marked contacted")
	}
	m.Contacted = contacted
	return nil
}

// MemberFilter narrows report listings.
type MemberFilter struct {
	QuerGC *bool  `json:"quer_gc,omitempty"`
	GCID   string `json:"gc_id,omitempty"`
	Search string `json:"search,omitempty"`
}

type CreateMemberRequest struct {
	Nome           string `json:"nome"`
	DataNascimento string `json:"data_nascimento,omitempty"`
	Email          string `json:"email,omitempty"`
	CountryCode    string `json:"country_code,omitempty"`
	Telefone       string `json:"telefone,omitempty"`
	Endereco       string `json:"endereco,omitempty"`
	PostCod        string `json:"post_cod,omitempty"`
	QuerGC         bool   `json:"quer_gc"`
}

type UpdateMemberRequest struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	DataNascimento string `json:"data_nascimento,omitempty"`
	Email          string `json:"email,omitempty"`
	CountryCode    string `json:"country_code,omitempty"`
	Telefone       string `json:"telefone,omitempty"`
	Endereco       string `json:"endereco,omitempty"`
	PostCod        string `json:"post_cod,omitempty"`
	GCID           string `json:"gc_id,omitempty"`
	QuerGC         bool   `json:"quer_gc"`
	Contacted      bool   `json:"contacted"`
}

func (r *UpdateMemberRequest) Validate() error {
	if r.ID == "" {
		return NewValidationError("member id is required")
	}
	if r.Nome == "" {
		return NewValidationError("nome is required")
	}
	return nil
}

// MemberService provides operations for managing member registrations
type MemberService interface {
	// RegisterMember records a public self-registration
	RegisterMember(ctx context.Context, req CreateMemberRequest) (*Member, error)

	// GetMemberByID retrieves a member by its ID
	GetMemberByID(ctx context.Context, id string) (*Member, error)

	// ListMembers retrieves members matching the filter, newest first
	ListMembers(ctx context.Context, filter MemberFilter) ([]*Member, error)

	// UpdateMember updates an existing member
	UpdateMember(ctx context.Context, req UpdateMemberRequest) (*Member, error)

	// DeleteMember deletes a member
	DeleteMember(ctx context.Context, id string) error
}

type MemberRepository interface {
	// CreateMember creates a new member in the database
	CreateMember(ctx context.Context, member *Member) error

	// GetMemberByID retrieves a member by its ID
	GetMemberByID(ctx context.Context, id string) (*Member, error)

	// ListMembers retrieves members matching the filter, created_at DESC
	ListMembers(ctx context.Context, filter MemberFilter) ([]*Member, error)

	// UpdateMember updates an existing member
	UpdateMember(ctx context.Context, member *Member) error

	// DeleteMember deletes a member
	DeleteMember(ctx context.Context, id string) error
}

// ErrMemberNotFound is returned when a member is not found
type ErrMemberNotFound struct {
	Message string
}

func (e *ErrMemberNotFound) Error() string {
	return e.Message
}
