package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/koinonia-app/koinonia/internal/domain"
)

type formRepository struct {
	db *sql.DB
}

// NewFormRepository creates a new PostgreSQL form repository
func NewFormRepository(db *sql.DB) domain.FormRepository {
	return &formRepository{db: db}
}

func (r *formRepository) CreateForm(ctx context.Context, form *domain.FormSchema) error {
	now := time.Now().UTC()
	form.CreatedAt = now
	form.UpdatedAt = now

	query := `
		INSERT INTO registration_forms (id, title, fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		form.ID,
		form.Title,
		form.Fields,
		form.CreatedAt,
		form.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create form: %w", err)
	}
	return nil
}

func (r *formRepository) GetFormByID(ctx context.Context, id string) (*domain.FormSchema, error) {
	query := `
		SELECT id, title, fields, created_at, updated_at
		FROM registration_forms
		WHERE id = $1
	`

	form := &domain.FormSchema{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&form.ID,
		&form.Title,
		&form.Fields,
		&form.CreatedAt,
		&form.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrFormNotFound{Message: "form not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	return form, nil
}

func (r *formRepository) ListForms(ctx context.Context) ([]*domain.FormSummary, error) {
	query := `
		SELECT f.id, f.title, f.fields, f.created_at, f.updated_at,
			COUNT(s.id) AS submission_count
		FROM registration_forms f
		LEFT JOIN submissions s ON s.form_id = f.id
		GROUP BY f.id
		ORDER BY f.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	defer rows.Close()

	var forms []*domain.FormSummary
	for rows.Next() {
		form := &domain.FormSummary{}
		err := rows.Scan(
			&form.ID,
			&form.Title,
			&form.Fields,
			&form.CreatedAt,
			&form.UpdatedAt,
			&form.SubmissionCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan form: %w", err)
		}
		forms = append(forms, form)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating form rows: %w", err)
	}

	return forms, nil
}

func (r *formRepository) UpdateForm(ctx context.Context, form *domain.FormSchema) error {
	form.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE registration_forms
		SET title = $1, fields = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		form.Title,
		form.Fields,
		form.UpdatedAt,
		form.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update form: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrFormNotFound{Message: "form not found"}
	}

	return nil
}

// DeleteForm removes a form and everything submitted to it. Submissions go
// first so that a failure part-way leaves the form intact and the whole
// operation safe to retry.
func (r *formRepository) DeleteForm(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM submissions WHERE form_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete form submissions: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM registration_forms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete form: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrFormNotFound{Message: "form not found"}
	}

	return nil
}

func (r *formRepository) CreateSubmission(ctx context.Context, submission *domain.Submission) error {
	now := time.Now().UTC()
	submission.CreatedAt = now
	submission.UpdatedAt = now

	query := `
		INSERT INTO submissions (id, form_id, form_title, form_data, nome, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		submission.ID,
		submission.FormID,
		submission.FormTitle,
		submission.FormData,
		submission.Nome,
		submission.CreatedAt,
		submission.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (r *formRepository) GetSubmissionByID(ctx context.Context, id string) (*domain.Submission, error) {
	query := `
		SELECT id, form_id, form_title, form_data, nome, created_at, updated_at
		FROM submissions
		WHERE id = $1
	`

	submission := &domain.Submission{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&submission.ID,
		&submission.FormID,
		&submission.FormTitle,
		&submission.FormData,
		&submission.Nome,
		&submission.CreatedAt,
		&submission.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrSubmissionNotFound{Message: "submission not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return submission, nil
}

func (r *formRepository) ListSubmissions(ctx context.Context, formID string) ([]*domain.Submission, error) {
	query := `
		SELECT id, form_id, form_title, form_data, nome, created_at, updated_at
		FROM submissions
		WHERE form_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*domain.Submission
	for rows.Next() {
		submission := &domain.Submission{}
		err := rows.Scan(
			&submission.ID,
			&submission.FormID,
			&submission.FormTitle,
			&submission.FormData,
			&submission.Nome,
			&submission.CreatedAt,
			&submission.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, submission)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submission rows: %w", err)
	}

	return submissions, nil
}

func (r *formRepository) UpdateSubmission(ctx context.Context, submission *domain.Submission) error {
	submission.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE submissions
		SET form_data = $1, nome = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query,
		submission.FormData,
		submission.Nome,
		submission.UpdatedAt,
		submission.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrSubmissionNotFound{Message: "submission not found"}
	}

	return nil
}

func (r *formRepository) DeleteSubmission(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return &domain.ErrSubmissionNotFound{Message: "submission not found"}
	}

	return nil
}
