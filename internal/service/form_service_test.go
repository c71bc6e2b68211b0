package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/internal/domain/mocks"
	pkgmocks "github.com/koinonia-app/koinonia/pkg/mocks"
)

func newFormServiceTest(t *testing.T) (*FormService, *mocks.MockFormRepository, *mocks.MockAuthService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockFormRepository(ctrl)
	mockAuthService := mocks.NewMockAuthService(ctrl)
	mockLogger := pkgmocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(mockLogger).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	return NewFormService(mockRepo, mockAuthService, mockLogger), mockRepo, mockAuthService
}

func adminUser() *domain.User {
	return &domain.User{ID: "admin1", Role: domain.RoleAdmin}
}

func TestFormService_CreateForm(t *testing.T) {
	ctx := context.Background()

	t.Run("successful create generates field identifiers", func(t *testing.T) {
		service, mockRepo, mockAuth := newFormServiceTest(t)
		mockAuth.EXPECT().AuthenticateAdmin(ctx).Return(adminUser(), nil)
		mockRepo.EXPECT().CreateForm(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, form *domain.FormSchema) error {
				assert.NotEmpty(t, form.ID)
				require.Len(t, form.Fields, 1)
				assert.NotEmpty(t, form.Fields[0].Name)
				return nil
			})

		form, err := service.CreateForm(ctx, "Inscrição", []domain.FieldDescriptor{
			{Label: "Nome", Type: domain.FieldTypeText},
		})
		require.NoError(t, err)
		assert.Equal(t, "Inscrição", form.Title)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		service, _, mockAuth := newFormServiceTest(t)
		mockAuth.EXPECT().AuthenticateAdmin(ctx).Return(nil, ErrNotAuthenticated)

		form, err := service.CreateForm(ctx, "Inscrição", nil)
		require.Error(t, err)
		assert.Nil(t, form)
	})

	t.Run("empty title rejected before repo", func(t *testing.T) {
		service, _, mockAuth := newFormServiceTest(t)
		mockAuth.EXPECT().AuthenticateAdmin(ctx).Return(adminUser(), nil)

		form, err := service.CreateForm(ctx, "", nil)
		require.Error(t, err)
		assert.IsType(t, domain.ValidationError{}, err)
		assert.Nil(t, form)
	})
}

func TestFormService_DeleteForm(t *testing.T) {
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		service, mockRepo, mockAuth := newFormServiceTest(t)
		mockAuth.EXPECT().AuthenticateAdmin(ctx).Return(adminUser(), nil)
		mockRepo.EXPECT().DeleteForm(ctx, "form1").Return(nil)

		require.NoError(t, service.DeleteForm(ctx, "form1"))
	})

	t.Run("not found propagates", func(t *testing.T) {
		service, mockRepo, mockAuth := newFormServiceTest(t)
		mockAuth.EXPECT().AuthenticateAdmin(ctx).Return(adminUser(), nil)
		mockRepo.EXPECT().DeleteForm(ctx, "missing").
			Return(&domain.ErrFormNotFound{Message: "form not found"})

		err := service.DeleteForm(ctx, "missing")
		assert.IsType(t, &domain.ErrFormNotFound{}, err)
	})
}

func TestFormService_RenderForm(t *testing.T) {
	ctx := context.Background()

	t.Run("renders inputs for existing form", func(t *testing.T) {
		service, mockRepo, _ := newFormServiceTest(t)
		mockRepo.EXPECT().GetFormByID(ctx, "form1").Return(&domain.FormSchema{
			ID:    "form1",
			Title: "Inscrição",
			Fields: domain.FieldList{
				{Label: "Nome", Type: domain.FieldTypeText, Name: "nome_1"},
				{Label: "Telefone", Type: domain.FieldTypeFullPhone, Name: "telefone_2"},
			},
		}, nil)

		view, err := service.RenderForm(ctx, "form1")
		require.NoError(t, err)
		assert.Len(t, view.Inputs, 4)
	})

	t.Run("missing form is a terminal not found", func(t *testing.T) {
		service, mockRepo, _ := newFormServiceTest(t)
		mockRepo.EXPECT().GetFormByID(ctx, "missing").
			Return(nil, &domain.ErrFormNotFound{Message: "form not found"})

		view, err := service.RenderForm(ctx, "missing")
		require.Error(t, err)
		assert.Nil(t, view)
		assert.IsType(t, &domain.ErrFormNotFound{}, err)
	})
}

func TestFormService_SubmitForm(t *testing.T) {
	ctx := context.Background()

	schema := &domain.FormSchema{
		ID:    "form1",
		Title: "Inscrição",
		Fields: domain.FieldList{
			{Label: "Nome", Type: domain.FieldTypeText, Name: "nome_1"},
			{Label: "Vai de carro?", Type: domain.FieldTypeCheckbox, Name: "carro_2"},
		},
	}

	t.Run("assembles and stores", func(t *testing.T) {
		service, mockRepo, _ := newFormServiceTest(t)
		mockRepo.EXPECT().GetFormByID(ctx, "form1").Return(schema, nil)
		mockRepo.EXPECT().CreateSubmission(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, sub *domain.Submission) error {
				assert.Equal(t, "form1", sub.FormID)
				assert.Equal(t, "Inscrição", sub.FormTitle)
				assert.Equal(t, domain.AnswerNo, sub.FormData["Vai de carro?"])
				return nil
			})

		submission, err := service.SubmitForm(ctx, "form1", domain.RawValues{"Nome": "Maria"})
		require.NoError(t, err)
		assert.Equal(t, "Maria", submission.Nome)
	})

	t.Run("validation failure stores nothing", func(t *testing.T) {
		service, mockRepo, _ := newFormServiceTest(t)
		mockRepo.EXPECT().GetFormByID(ctx, "form1").Return(schema, nil)

		submission, err := service.SubmitForm(ctx, "form1", domain.RawValues{})
		require.Error(t, err)
		assert.Nil(t, submission)
		assert.IsType(t, domain.ValidationError{}, err)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		service, mockRepo, _ := newFormServiceTest(t)
		mockRepo.EXPECT().GetFormByID(ctx, "form1").Return(schema, nil)
		mockRepo.EXPECT().CreateSubmission(ctx, gomock.Any()).Return(errors.New("connection lost"))

		_, err := service.SubmitForm(ctx, "form1", domain.RawValues{"Nome": "Maria"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create submission")
	})
}

func TestFormService_SearchSubmissions(t *testing.T) {
	ctx := context.Background()

	submissions := []*domain.Submission{
		{ID: "s1", Nome: "João Pereira", FormData: domain.FormData{"Nome": "João Pereira"}},
		{ID: "s2", Nome: "Maria Silva", FormData: domain.FormData{"Nome": "Maria Silva", "Email": "maria@example.com"}},
	}

	setup := func(t *testing.T) *FormService {
		service, mockRepo, mockAuth := newFormServiceTest(t)
		mockAuth.EXPECT().AuthenticateAdmin(ctx).Return(adminUser(), nil)
		mockRepo.EXPECT().GetFormByID(ctx, "form1").Return(&domain.FormSchema{ID: "form1", Title: "Inscrição"}, nil)
		mockRepo.EXPECT().ListSubmissions(ctx, "form1").Return(submissions, nil)
		return service
	}

	t.Run("accent insensitive name match", func(t *testing.T) {
		service := setup(t)
		matched, err := service.SearchSubmissions(ctx, "form1", "joao")
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, "s1", matched[0].ID)
	})

	t.Run("matches any stored value", func(t *testing.T) {
		service := setup(t)
		matched, err := service.SearchSubmissions(ctx, "form1", "example.com")
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, "s2", matched[0].ID)
	})

	t.Run("empty term returns everything", func(t *testing.T) {
		service := setup(t)
		matched, err := service.SearchSubmissions(ctx, "form1", "")
		require.NoError(t, err)
		assert.Len(t, matched, 2)
	})
}

func TestFormService_UpdateSubmission(t *testing.T) {
	ctx := context.Background()

	schema := &domain.FormSchema{
		ID:    "form1",
		Title: "Inscrição",
		Fields: domain.FieldList{
			{Label: "Nome", Type: domain.FieldTypeText, Name: "nome_1"},
		},
	}

	t.Run("re-assembles against current schema", func(t *testing.T) {
		service, mockRepo, mockAuth := newFormServiceTest(t)
		mockAuth.EXPECT().AuthenticateAdmin(ctx).Return(adminUser(), nil)
		mockRepo.EXPECT().GetSubmissionByID(ctx, "sub1").Return(&domain.Submission{
			ID:       "sub1",
			FormID:   "form1",
			FormData: domain.FormData{"Nome": "Maria"},
			Nome:     "Maria",
		}, nil)
		mockRepo.EXPECT().GetFormByID(ctx, "form1").Return(schema, nil)
		mockRepo.EXPECT().UpdateSubmission(ctx, gomock.Any()).Return(nil)

		submission, err := service.UpdateSubmission(ctx, "sub1", domain.RawValues{"Nome": "Maria Silva"})
		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", submission.Nome)
		assert.Equal(t, "Maria Silva", submission.FormData["Nome"])
	})

	t.Run("missing submission", func(t *testing.T) {
		service, mockRepo, mockAuth := newFormServiceTest(t)
		mockAuth.EXPECT().AuthenticateAdmin(ctx).Return(adminUser(), nil)
		mockRepo.EXPECT().GetSubmissionByID(ctx, "missing").
			Return(nil, &domain.ErrSubmissionNotFound{Message: "submission not found"})

		_, err := service.UpdateSubmission(ctx, "missing", domain.RawValues{})
		assert.IsType(t, &domain.ErrSubmissionNotFound{}, err)
	})
}
