package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/pkg/logger"
	"github.com/koinonia-app/koinonia/pkg/strutil"
)

type MemberService struct {
	repo        domain.MemberRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewMemberService(repo domain.MemberRepository, authService domain.AuthService, logger logger.Logger) *MemberService {
	return &MemberService{
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

// RegisterMember records a public self-registration, no authentication.
func (s *MemberService) RegisterMember(ctx context.Context, req domain.CreateMemberRequest) (*domain.Member, error) {
	member := &domain.Member{
		ID:             uuid.New().String(),
		Nome:           req.Nome,
		DataNascimento: req.DataNascimento,
		Email:          req.Email,
		CountryCode:    req.CountryCode,
		Telefone:       req.Telefone,
		Endereco:       req.Endereco,
		PostCod:        strings.ToUpper(req.PostCod),
		QuerGC:         req.QuerGC,
	}

	if err := member.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateMember(ctx, member); err != nil {
		s.logger.WithField("member_id", member.ID).Error(fmt.Sprintf("Failed to create member: %v", err))
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return member, nil
}

func (s *MemberService) GetMemberByID(ctx context.Context, id string) (*domain.Member, error) {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	member, err := s.repo.GetMemberByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrMemberNotFound); ok {
			return nil, err
		}
		s.logger.WithField("member_id", id).Error(fmt.Sprintf("Failed to get member: %v", err))
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

// ListMembers retrieves members matching the filter. The free-text search is
// accent-insensitive and applied after the database filters.
func (s *MemberService) ListMembers(ctx context.Context, filter domain.MemberFilter) ([]*domain.Member, error) {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	members, err := s.repo.ListMembers(ctx, filter)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list members: %v", err))
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	if filter.Search == "" {
		return members, nil
	}

	var matched []*domain.Member
	for _, member := range members {
		if strutil.ContainsFold(member.Nome, filter.Search) ||
			strutil.ContainsFold(member.Email, filter.Search) {
			matched = append(matched, member)
		}
	}

	return matched, nil
}

func (s *MemberService) UpdateMember(ctx context.Context, req domain.UpdateMemberRequest) (*domain.Member, error) {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	member, err := s.repo.GetMemberByID(ctx, req.ID)
	if err != nil {
		if _, ok := err.(*domain.ErrMemberNotFound); ok {
			return nil, err
		}
		s.logger.WithField("member_id", req.ID).Error(fmt.Sprintf("Failed to get member: %v", err))
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	member.Nome = req.Nome
	member.DataNascimento = req.DataNascimento
	member.Email = req.Email
	member.CountryCode = req.CountryCode
	member.Telefone = req.Telefone
	member.Endereco = req.Endereco
	member.PostCod = strings.ToUpper(req.PostCod)
	member.GCID = req.GCID
	member.QuerGC = req.QuerGC

	if err := member.Validate(); err != nil {
		return nil, err
	}

	if err := member.SetContacted(req.Contacted); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateMember(ctx, member); err != nil {
		if _, ok := err.(*domain.ErrMemberNotFound); ok {
			return nil, err
		}
		s.logger.WithField("member_id", member.ID).Error(fmt.Sprintf("Failed to update member: %v", err))
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return member, nil
}

func (s *MemberService) DeleteMember(ctx context.Context, id string) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.repo.DeleteMember(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrMemberNotFound); ok {
			return err
		}
		s.logger.WithField("member_id", id).Error(fmt.Sprintf("Failed to delete member: %v", err))
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}
