package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/internal/domain/mocks"
	pkgmocks "github.com/koinonia-app/koinonia/pkg/mocks"
)

type publicHandlerMocks struct {
	formService   *mocks.MockFormService
	memberService *mocks.MockMemberService
}

func setupPublicHandlerTest(t *testing.T) (*PublicHandler, publicHandlerMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := publicHandlerMocks{
		formService:   mocks.NewMockFormService(ctrl),
		memberService: mocks.NewMockMemberService(ctrl),
	}

	mockLogger := pkgmocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(mockLogger).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	handler := NewPublicHandler(PublicHandlerConfig{
		FormService:   m.formService,
		MemberService: m.memberService,
		Logger:        mockLogger,
	})
	return handler, m
}

func TestPublicHandler_HandleForm(t *testing.T) {
	t.Run("renders form", func(t *testing.T) {
		handler, m := setupPublicHandlerTest(t)
		m.formService.EXPECT().RenderForm(gomock.Any(), "form1").Return(&domain.FormView{
			Form: &domain.FormSchema{ID: "form1", Title: "Inscrição"},
			Inputs: []domain.BoundInput{
				{Name: "Nome", Label: "Nome", Control: domain.ControlText, Required: true},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/public.form?id=form1", nil)
		rr := httptest.NewRecorder()
		handler.handleForm(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var view domain.FormView
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&view))
		require.Len(t, view.Inputs, 1)
		assert.True(t, view.Inputs[0].Required)
	})

	t.Run("unknown form is a terminal 404", func(t *testing.T) {
		handler, m := setupPublicHandlerTest(t)
		m.formService.EXPECT().RenderForm(gomock.Any(), "missing").
			Return(nil, &domain.ErrFormNotFound{Message: "form not found"})

		req := httptest.NewRequest(http.MethodGet, "/api/public.form?id=missing", nil)
		rr := httptest.NewRecorder()
		handler.handleForm(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		handler, _ := setupPublicHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/api/public.form", nil)
		rr := httptest.NewRecorder()
		handler.handleForm(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPublicHandler_HandleSubmit(t *testing.T) {
	t.Run("accepts a submission", func(t *testing.T) {
		handler, m := setupPublicHandlerTest(t)
		m.formService.EXPECT().SubmitForm(gomock.Any(), "form1", gomock.Any()).
			Return(&domain.Submission{ID: "s1", FormID: "form1", Nome: "Maria"}, nil)

		body, err := json.Marshal(domain.SubmitFormRequest{
			FormID: "form1",
			Values: domain.RawValues{"nome_1": "Maria"},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/public.submit", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleSubmit(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("validation failure returns 400", func(t *testing.T) {
		handler, m := setupPublicHandlerTest(t)
		m.formService.EXPECT().SubmitForm(gomock.Any(), "form1", gomock.Any()).
			Return(nil, domain.NewValidationError("O campo Nome é obrigatório"))

		body, err := json.Marshal(domain.SubmitFormRequest{FormID: "form1"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/public.submit", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleSubmit(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown form returns 404", func(t *testing.T) {
		handler, m := setupPublicHandlerTest(t)
		m.formService.EXPECT().SubmitForm(gomock.Any(), "missing", gomock.Any()).
			Return(nil, &domain.ErrFormNotFound{Message: "form not found"})

		body, err := json.Marshal(domain.SubmitFormRequest{FormID: "missing"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/public.submit", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleSubmit(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing form_id rejected before service", func(t *testing.T) {
		handler, _ := setupPublicHandlerTest(t)

		body, err := json.Marshal(domain.SubmitFormRequest{})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/public.submit", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleSubmit(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPublicHandler_HandleRegister(t *testing.T) {
	t.Run("registers a member", func(t *testing.T) {
		handler, m := setupPublicHandlerTest(t)
		m.memberService.EXPECT().RegisterMember(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req domain.CreateMemberRequest) (*domain.Member, error) {
				assert.Equal(t, "Maria Silva", req.Nome)
				return &domain.Member{ID: "m1", Nome: req.Nome}, nil
			})

		body, err := json.Marshal(domain.CreateMemberRequest{Nome: "Maria Silva", QuerGC: true})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/public.register", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleRegister(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("validation failure returns 400", func(t *testing.T) {
		handler, m := setupPublicHandlerTest(t)
		m.memberService.EXPECT().RegisterMember(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewValidationError("nome is required"))

		body, err := json.Marshal(domain.CreateMemberRequest{})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/public.register", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleRegister(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
