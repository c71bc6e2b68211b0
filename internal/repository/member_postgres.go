package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/koinonia-app/koinonia/internal/domain"
)

type memberRepository struct {
	db *sql.DB
}

// NewMemberRepository creates a new PostgreSQL member repository
func NewMemberRepository(db *sql.DB) domain.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) CreateMember(ctx context.Context, member *domain.Member) error {
	now := time.Now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now

	query := `
		INSERT INTO members (id, nome, data_nascimento, email, country_code, telefone,
			endereco, post_cod, gc_id, quer_gc, contacted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		member.ID,
		member.Nome,
		member.DataNascimento,
		member.Email,
		member.CountryCode,
		member.Telefone,
		member.Endereco,
		member.PostCod,
		member.GCID,
		member.QuerGC,
		member.Contacted,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

func (r *memberRepository) GetMemberByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `
		SELECT id, nome, data_nascimento, email, country_code, telefone,
			endereco, post_cod, gc_id, quer_gc, contacted, created_at, updated_at
		FROM members
		WHERE id = $1
	`

	member, err := scanMember(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrMemberNotFound{Message: "member not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

func (r *memberRepository) ListMembers(ctx context.Context, filter domain.MemberFilter) ([]*domain.Member, error) {
	builder := sq.Select(
		"id", "nome", "data_nascimento", "email", "country_code", "telefone",
		"endereco", "post_cod", "gc_id", "quer_gc", "contacted", "created_at", "updated_at",
	).
		From("members").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.QuerGC != nil {
		builder = builder.Where(sq.Eq{"quer_gc": *filter.QuerGC})
	}
	if filter.GCID != "" {
		builder = builder.Where(sq.Eq{"gc_id": filter.GCID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build members query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}

func (r *memberRepository) UpdateMember(ctx context.Context, member *domain.Member) error {
	member.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE members
		SET nome = $1, data_nascimento = $2, email = $3, country_code = $4,
			telefone = $5, endereco = $6, post_cod = $7, gc_id = $8,
			quer_gc = $9, contacted = $10, updated_at = $11
		WHERE id = $12
	`

	result, err := r.db.ExecContext(ctx, query,
		member.Nome,
		member.DataNascimento,
		member.Email,
		member.CountryCode,
		member.Telefone,
		member.Endereco,
		member.PostCod,
		member.GCID,
		member.QuerGC,
		member.Contacted,
		member.UpdatedAt,
		member.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrMemberNotFound{Message: "member not found"}
	}

	return nil
}

func (r *memberRepository) DeleteMember(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrMemberNotFound{Message: "member not found"}
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMember(s scanner) (*domain.Member, error) {
	member := &domain.Member{}
	err := s.Scan(
		&member.ID,
		&member.Nome,
		&member.DataNascimento,
		&member.Email,
		&member.CountryCode,
		&member.Telefone,
		&member.Endereco,
		&member.PostCod,
		&member.GCID,
		&member.QuerGC,
		&member.Contacted,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return member, nil
}
