package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koinonia-app/koinonia/internal/domain"
)

func TestFormRepository(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewFormRepository(db)
	ctx := context.Background()

	testForm := &domain.FormSchema{
		ID:    "form123",
		Title: "Inscrição Conferência",
		Fields: domain.FieldList{
			{Label: "Nome", Type: domain.FieldTypeText, Name: "nome_1"},
		},
	}

	t.Run("CreateForm", func(t *testing.T) {
		t.Run("successful creation", func(t *testing.T) {
			sqlMock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO registration_forms (id, title, fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`)).WithArgs(
				testForm.ID,
				testForm.Title,
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
			).WillReturnResult(sqlmock.NewResult(1, 1))

			err := repo.CreateForm(ctx, testForm)
			require.NoError(t, err)
			assert.NoError(t, sqlMock.ExpectationsWereMet())
		})

		t.Run("database error", func(t *testing.T) {
			sqlMock.ExpectExec(regexp.QuoteMeta(`INSERT INTO registration_forms`)).
				WillReturnError(errors.New("database error"))

			err := repo.CreateForm(ctx, testForm)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to create form")
		})
	})

	t.Run("GetFormByID", func(t *testing.T) {
		t.Run("form found", func(t *testing.T) {
			fieldsJSON, err := testForm.Fields.Value()
			require.NoError(t, err)

			rows := sqlmock.NewRows([]string{"id", "title", "fields", "created_at", "updated_at"}).
				AddRow(testForm.ID, testForm.Title, fieldsJSON, time.Now(), time.Now())

			sqlMock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, fields, created_at, updated_at`)).
				WithArgs(testForm.ID).
				WillReturnRows(rows)

			form, err := repo.GetFormByID(ctx, testForm.ID)
			require.NoError(t, err)
			assert.Equal(t, testForm.Title, form.Title)
			require.Len(t, form.Fields, 1)
			assert.Equal(t, "Nome", form.Fields[0].Label)
		})

		t.Run("form not found", func(t *testing.T) {
			sqlMock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, fields, created_at, updated_at`)).
				WithArgs("missing").
				WillReturnRows(sqlmock.NewRows([]string{"id", "title", "fields", "created_at", "updated_at"}))

			form, err := repo.GetFormByID(ctx, "missing")
			require.Error(t, err)
			assert.Nil(t, form)
			assert.IsType(t, &domain.ErrFormNotFound{}, err)
		})
	})

	t.Run("ListForms", func(t *testing.T) {
		t.Run("returns forms with counts newest first", func(t *testing.T) {
			rows := sqlmock.NewRows([]string{"id", "title", "fields", "created_at", "updated_at", "submission_count"}).
				AddRow("form2", "Nova", "[]", time.Now(), time.Now(), 0).
				AddRow("form1", "Antiga", "[]", time.Now().Add(-time.Hour), time.Now(), 3)

			sqlMock.ExpectQuery(`ORDER BY f.created_at DESC`).
				WillReturnRows(rows)

			forms, err := repo.ListForms(ctx)
			require.NoError(t, err)
			require.Len(t, forms, 2)
			assert.Equal(t, "form2", forms[0].ID)
			assert.Equal(t, 3, forms[1].SubmissionCount)
		})
	})

	t.Run("UpdateForm", func(t *testing.T) {
		t.Run("successful update", func(t *testing.T) {
			sqlMock.ExpectExec(regexp.QuoteMeta(`UPDATE registration_forms`)).
				WithArgs(testForm.Title, sqlmock.AnyArg(), sqlmock.AnyArg(), testForm.ID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.UpdateForm(ctx, testForm)
			require.NoError(t, err)
		})

		t.Run("form not found", func(t *testing.T) {
			sqlMock.ExpectExec(regexp.QuoteMeta(`UPDATE registration_forms`)).
				WillReturnResult(sqlmock.NewResult(0, 0))

			err := repo.UpdateForm(ctx, testForm)
			require.Error(t, err)
			assert.IsType(t, &domain.ErrFormNotFound{}, err)
		})
	})

	t.Run("DeleteForm", func(t *testing.T) {
		t.Run("deletes submissions before the form", func(t *testing.T) {
			sqlMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM submissions WHERE form_id = $1`)).
				WithArgs(testForm.ID).
				WillReturnResult(sqlmock.NewResult(0, 5))
			sqlMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM registration_forms WHERE id = $1`)).
				WithArgs(testForm.ID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.DeleteForm(ctx, testForm.ID)
			require.NoError(t, err)
			assert.NoError(t, sqlMock.ExpectationsWereMet())
		})

		t.Run("submission delete failure leaves the form untouched", func(t *testing.T) {
			sqlMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM submissions WHERE form_id = $1`)).
				WithArgs(testForm.ID).
				WillReturnError(errors.New("connection reset"))

			err := repo.DeleteForm(ctx, testForm.ID)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to delete form submissions")
			// no form delete was attempted
			assert.NoError(t, sqlMock.ExpectationsWereMet())
		})

		t.Run("retry after partial failure still removes the form", func(t *testing.T) {
			// submissions already gone on the retry
			sqlMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM submissions WHERE form_id = $1`)).
				WithArgs(testForm.ID).
				WillReturnResult(sqlmock.NewResult(0, 0))
			sqlMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM registration_forms WHERE id = $1`)).
				WithArgs(testForm.ID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.DeleteForm(ctx, testForm.ID)
			require.NoError(t, err)
		})

		t.Run("form not found", func(t *testing.T) {
			sqlMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM submissions WHERE form_id = $1`)).
				WillReturnResult(sqlmock.NewResult(0, 0))
			sqlMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM registration_forms WHERE id = $1`)).
				WillReturnResult(sqlmock.NewResult(0, 0))

			err := repo.DeleteForm(ctx, testForm.ID)
			require.Error(t, err)
			assert.IsType(t, &domain.ErrFormNotFound{}, err)
		})
	})
}

func TestFormRepositorySubmissions(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewFormRepository(db)
	ctx := context.Background()

	testSubmission := &domain.Submission{
		ID:        "sub123",
		FormID:    "form123",
		FormTitle: "Inscrição Conferência",
		FormData:  domain.FormData{"Nome": "Maria Silva"},
		Nome:      "Maria Silva",
	}

	t.Run("CreateSubmission", func(t *testing.T) {
		sqlMock.ExpectExec(regexp.QuoteMeta(`INSERT INTO submissions`)).
			WithArgs(
				testSubmission.ID,
				testSubmission.FormID,
				testSubmission.FormTitle,
				sqlmock.AnyArg(),
				testSubmission.Nome,
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
			).WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.CreateSubmission(ctx, testSubmission)
		require.NoError(t, err)
	})

	t.Run("ListSubmissions oldest first", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "form_id", "form_title", "form_data", "nome", "created_at", "updated_at"}).
			AddRow("sub1", "form123", "Inscrição", `{"Nome":"Ana"}`, "Ana", time.Now().Add(-time.Hour), time.Now()).
			AddRow("sub2", "form123", "Inscrição", `{"Nome":"Bia"}`, "Bia", time.Now(), time.Now())

		sqlMock.ExpectQuery(`ORDER BY created_at ASC`).
			WithArgs("form123").
			WillReturnRows(rows)

		submissions, err := repo.ListSubmissions(ctx, "form123")
		require.NoError(t, err)
		require.Len(t, submissions, 2)
		assert.Equal(t, "Ana", submissions[0].Nome)
		assert.Equal(t, "Ana", submissions[0].FormData["Nome"])
	})

	t.Run("UpdateSubmission not found", func(t *testing.T) {
		sqlMock.ExpectExec(regexp.QuoteMeta(`UPDATE submissions`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateSubmission(ctx, testSubmission)
		require.Error(t, err)
		assert.IsType(t, &domain.ErrSubmissionNotFound{}, err)
	})

	t.Run("DeleteSubmission", func(t *testing.T) {
		sqlMock.ExpectExec(regexp.QuoteMeta(`DELETE FROM submissions WHERE id = $1`)).
			WithArgs(testSubmission.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteSubmission(ctx, testSubmission.ID)
		require.NoError(t, err)
	})
}
