package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koinonia-app/koinonia/internal/domain"
)

func memberRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "nome", "data_nascimento", "email", "country_code", "telefone",
		"endereco", "post_cod", "gc_id", "quer_gc", "contacted", "created_at", "updated_at",
	})
}

func TestMemberRepository(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewMemberRepository(db)
	ctx := context.Background()

	testMember := &domain.Member{
		ID:          "member123",
		Nome:        "João Pereira",
		Email:       "joao@example.com",
		CountryCode: "+44",
		Telefone:    "7700123456",
		PostCod:     "SW1A 1AA",
		QuerGC:      true,
	}

	t.Run("CreateMember", func(t *testing.T) {
		sqlMock.ExpectExec(regexp.QuoteMeta(`INSERT INTO members`)).
			WithArgs(
				testMember.ID,
				testMember.Nome,
				testMember.DataNascimento,
				testMember.Email,
				testMember.CountryCode,
				testMember.Telefone,
				testMember.Endereco,
				testMember.PostCod,
				testMember.GCID,
				testMember.QuerGC,
				testMember.Contacted,
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
			).WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.CreateMember(ctx, testMember)
		require.NoError(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("GetMemberByID not found", func(t *testing.T) {
		sqlMock.ExpectQuery(regexp.QuoteMeta(`FROM members`)).
			WithArgs("missing").
			WillReturnRows(memberRows())

		member, err := repo.GetMemberByID(ctx, "missing")
		require.Error(t, err)
		assert.Nil(t, member)
		assert.IsType(t, &domain.ErrMemberNotFound{}, err)
	})

	t.Run("ListMembers without filter", func(t *testing.T) {
		rows := memberRows().
			AddRow("m1", "Ana", "", "", "", "", "", "", "", false, false, time.Now(), time.Now())

		sqlMock.ExpectQuery(`SELECT .* FROM members ORDER BY created_at DESC`).
			WillReturnRows(rows)

		members, err := repo.ListMembers(ctx, domain.MemberFilter{})
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "Ana", members[0].Nome)
	})

	t.Run("ListMembers filters by quer_gc and gc", func(t *testing.T) {
		querGC := true
		rows := memberRows().
			AddRow("m2", "Bia", "", "", "", "", "", "", "gc_abc123", true, false, time.Now(), time.Now())

		sqlMock.ExpectQuery(`WHERE quer_gc = \$1 AND gc_id = \$2`).
			WithArgs(true, "gc_abc123").
			WillReturnRows(rows)

		members, err := repo.ListMembers(ctx, domain.MemberFilter{QuerGC: &querGC, GCID: "gc_abc123"})
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.True(t, members[0].QuerGC)
	})

	t.Run("UpdateMember not found", func(t *testing.T) {
		sqlMock.ExpectExec(regexp.QuoteMeta(`UPDATE members`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateMember(ctx, testMember)
		require.Error(t, err)
		assert.IsType(t, &domain.ErrMemberNotFound{}, err)
	})

	t.Run("DeleteMember", func(t *testing.T) {
		sqlMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM members WHERE id = $1`)).
			WithArgs(testMember.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteMember(ctx, testMember.ID)
		require.NoError(t, err)
	})
}
