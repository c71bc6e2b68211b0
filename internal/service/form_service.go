package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/pkg/logger"
	"github.com/koinonia-app/koinonia/pkg/strutil"
)

type FormService struct {
	repo        domain.FormRepository
	authService domain.AuthService
	logger      logger.Logger
}

func NewFormService(repo domain.FormRepository, authService domain.AuthService, logger logger.Logger) *FormService {
	return &FormService{
		repo:        repo,
		authService: authService,
		logger:      logger,
	}
}

func (s *FormService) CreateForm(ctx context.Context, title string, fields []domain.FieldDescriptor) (*domain.FormSchema, error) {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	now := time.Now().UTC()
	form := &domain.FormSchema{
		ID:     uuid.New().String(),
		Title:  title,
		Fields: normalizeFields(fields, now),
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}

	if dups := form.DuplicateLabels(); len(dups) > 0 {
		s.logger.WithField("form_id", form.ID).
			WithField("labels", fmt.Sprintf("%v", dups)).
			Warn("Form has duplicate field labels, later values will overwrite earlier ones")
	}

	if err := s.repo.CreateForm(ctx, form); err != nil {
		s.logger.WithField("form_id", form.ID).Error(fmt.Sprintf("Failed to create form: %v", err))
		return nil, fmt.Errorf("failed to create form: %w", err)
	}

	return form, nil
}

func (s *FormService) GetFormByID(ctx context.Context, id string) (*domain.FormSchema, error) {
	form, err := s.repo.GetFormByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrFormNotFound); ok {
			return nil, err
		}
		s.logger.WithField("form_id", id).Error(fmt.Sprintf("Failed to get form: %v", err))
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	return form, nil
}

func (s *FormService) ListForms(ctx context.Context) ([]*domain.FormSummary, error) {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	forms, err := s.repo.ListForms(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list forms: %v", err))
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}

	return forms, nil
}

func (s *FormService) UpdateForm(ctx context.Context, id, title string, fields []domain.FieldDescriptor) (*domain.FormSchema, error) {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	form, err := s.repo.GetFormByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrFormNotFound); ok {
			return nil, err
		}
		s.logger.WithField("form_id", id).Error(fmt.Sprintf("Failed to get form: %v", err))
		return nil, fmt.Errorf("failed to get form: %w", err)
	}

	form.Title = title
	form.Fields = normalizeFields(fields, time.Now().UTC())

	if err := form.Validate(); err != nil {
		return nil, err
	}

	if dups := form.DuplicateLabels(); len(dups) > 0 {
		s.logger.WithField("form_id", form.ID).
			WithField("labels", fmt.Sprintf("%v", dups)).
			Warn("Form has duplicate field labels, later values will overwrite earlier ones")
	}

	if err := s.repo.UpdateForm(ctx, form); err != nil {
		if _, ok := err.(*domain.ErrFormNotFound); ok {
			return nil, err
		}
		s.logger.WithField("form_id", id).Error(fmt.Sprintf("Failed to update form: %v", err))
		return nil, fmt.Errorf("failed to update form: %w", err)
	}

	return form, nil
}

func (s *FormService) DeleteForm(ctx context.Context, id string) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.repo.DeleteForm(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrFormNotFound); ok {
			return err
		}
		s.logger.WithField("form_id", id).Error(fmt.Sprintf("Failed to delete form: %v", err))
		return fmt.Errorf("failed to delete form: %w", err)
	}

	return nil
}

// RenderForm builds the public input surface for a form. No authentication,
// this is the visitor-facing entry point.
func (s *FormService) RenderForm(ctx context.Context, id string) (*domain.FormView, error) {
	form, err := s.GetFormByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.FormView{
		Form:   form,
		Inputs: domain.RenderFields(form),
	}, nil
}

// SubmitForm assembles raw input values against the form's current schema
// and stores the resulting record.
func (s *FormService) SubmitForm(ctx context.Context, formID string, values domain.RawValues) (*domain.Submission, error) {
	form, err := s.GetFormByID(ctx, formID)
	if err != nil {
		return nil, err
	}

	data, nome, err := domain.AssembleSubmission(form.Fields, values)
	if err != nil {
		return nil, err
	}

	submission := &domain.Submission{
		ID:        uuid.New().String(),
		FormID:    form.ID,
		FormTitle: form.Title,
		FormData:  data,
		Nome:      nome,
	}

	if err := s.repo.CreateSubmission(ctx, submission); err != nil {
		s.logger.WithField("form_id", formID).Error(fmt.Sprintf("Failed to create submission: %v", err))
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	return submission, nil
}

func (s *FormService) ListSubmissions(ctx context.Context, formID string) ([]*domain.Submission, error) {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	// the form must still exist, listing against a deleted form is a 404
	if _, err := s.GetFormByID(ctx, formID); err != nil {
		return nil, err
	}

	submissions, err := s.repo.ListSubmissions(ctx, formID)
	if err != nil {
		s.logger.WithField("form_id", formID).Error(fmt.Sprintf("Failed to list submissions: %v", err))
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return submissions, nil
}

// SearchSubmissions filters a form's submissions by an accent-insensitive
// match against the display name or any stored value.
func (s *FormService) SearchSubmissions(ctx context.Context, formID, term string) ([]*domain.Submission, error) {
	submissions, err := s.ListSubmissions(ctx, formID)
	if err != nil {
		return nil, err
	}

	if term == "" {
		return submissions, nil
	}

	var matched []*domain.Submission
	for _, submission := range submissions {
		if submissionMatches(submission, term) {
			matched = append(matched, submission)
		}
	}

	return matched, nil
}

func submissionMatches(submission *domain.Submission, term string) bool {
	if strutil.ContainsFold(submission.Nome, term) {
		return true
	}
	for _, value := range submission.FormData {
		if strutil.ContainsFold(value, term) {
			return true
		}
	}
	return false
}

// RenderSubmissionForEdit builds the input surface pre-populated with an
// existing submission's values, using the form's current schema.
func (s *FormService) RenderSubmissionForEdit(ctx context.Context, submissionID string) (*domain.FormView, error) {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	submission, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	form, err := s.GetFormByID(ctx, submission.FormID)
	if err != nil {
		return nil, err
	}

	return &domain.FormView{
		Form:   form,
		Inputs: domain.RenderForEdit(form, submission),
	}, nil
}

// UpdateSubmission re-assembles a submission from raw values against the
// form's current schema and replaces the stored record.
func (s *FormService) UpdateSubmission(ctx context.Context, submissionID string, values domain.RawValues) (*domain.Submission, error) {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	submission, err := s.getSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	form, err := s.GetFormByID(ctx, submission.FormID)
	if err != nil {
		return nil, err
	}

	data, nome, err := domain.AssembleSubmission(form.Fields, values)
	if err != nil {
		return nil, err
	}

	submission.FormData = data
	submission.Nome = nome

	if err := s.repo.UpdateSubmission(ctx, submission); err != nil {
		if _, ok := err.(*domain.ErrSubmissionNotFound); ok {
			return nil, err
		}
		s.logger.WithField("submission_id", submissionID).Error(fmt.Sprintf("Failed to update submission: %v", err))
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}

	return submission, nil
}

func (s *FormService) DeleteSubmission(ctx context.Context, id string) error {
	_, err := s.authService.AuthenticateAdmin(ctx)
	if err != nil {
		return fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.repo.DeleteSubmission(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrSubmissionNotFound); ok {
			return err
		}
		s.logger.WithField("submission_id", id).Error(fmt.Sprintf("Failed to delete submission: %v", err))
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	return nil
}

func (s *FormService) getSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	submission, err := s.repo.GetSubmissionByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrSubmissionNotFound); ok {
			return nil, err
		}
		s.logger.WithField("submission_id", id).Error(fmt.Sprintf("Failed to get submission: %v", err))
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return submission, nil
}

// normalizeFields assigns generated identifiers to fields that arrive
// without one, keeping identifiers stable for fields that already have them.
func normalizeFields(fields []domain.FieldDescriptor, now time.Time) domain.FieldList {
	normalized := make(domain.FieldList, 0, len(fields))
	for _, field := range fields {
		if field.Name == "" {
			field = domain.NewFieldDescriptor(field.Type, field.Label, now)
		}
		normalized = append(normalized, field)
	}
	return normalized
}
