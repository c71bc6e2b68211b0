package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"aidanwoods.dev/go-paseto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/internal/domain/mocks"
	"github.com/koinonia-app/koinonia/internal/service"
	pkgmocks "github.com/koinonia-app/koinonia/pkg/mocks"
)

func setupFormHandlerTest(t *testing.T) (*FormHandler, *mocks.MockFormService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mocks.NewMockFormService(ctrl)
	mockLogger := pkgmocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(mockLogger).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	publicKey := paseto.NewV4AsymmetricSecretKey().Public()
	return NewFormHandler(mockService, publicKey, mockLogger), mockService
}

func TestFormHandler_RegisterRoutes(t *testing.T) {
	handler, _ := setupFormHandlerTest(t)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	endpoints := []string{
		"/api/forms.list",
		"/api/forms.get",
		"/api/forms.create",
		"/api/forms.update",
		"/api/forms.delete",
		"/api/submissions.list",
		"/api/submissions.get",
		"/api/submissions.update",
		"/api/submissions.delete",
	}

	for _, endpoint := range endpoints {
		h, _ := mux.Handler(&http.Request{URL: &url.URL{Path: endpoint}})
		assert.NotNil(t, h, "expected handler registered for %s", endpoint)
	}
}

func TestFormHandler_HandleList(t *testing.T) {
	t.Run("returns forms", func(t *testing.T) {
		handler, mockService := setupFormHandlerTest(t)
		mockService.EXPECT().ListForms(gomock.Any()).Return([]*domain.FormSummary{
			{FormSchema: domain.FormSchema{ID: "form1", Title: "Inscrição"}, SubmissionCount: 2},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/forms.list", nil)
		rr := httptest.NewRecorder()
		handler.handleList(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string][]*domain.FormSummary
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp["forms"], 1)
		assert.Equal(t, 2, resp["forms"][0].SubmissionCount)
	})

	t.Run("method not allowed", func(t *testing.T) {
		handler, _ := setupFormHandlerTest(t)

		req := httptest.NewRequest(http.MethodPost, "/api/forms.list", nil)
		rr := httptest.NewRecorder()
		handler.handleList(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("forbidden for non-admins", func(t *testing.T) {
		handler, mockService := setupFormHandlerTest(t)
		mockService.EXPECT().ListForms(gomock.Any()).Return(nil, service.ErrNotAuthorized)

		req := httptest.NewRequest(http.MethodGet, "/api/forms.list", nil)
		rr := httptest.NewRecorder()
		handler.handleList(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestFormHandler_HandleGet(t *testing.T) {
	t.Run("returns form", func(t *testing.T) {
		handler, mockService := setupFormHandlerTest(t)
		mockService.EXPECT().GetFormByID(gomock.Any(), "form1").
			Return(&domain.FormSchema{ID: "form1", Title: "Inscrição"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/forms.get?id=form1", nil)
		rr := httptest.NewRecorder()
		handler.handleGet(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		handler, _ := setupFormHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/api/forms.get", nil)
		rr := httptest.NewRecorder()
		handler.handleGet(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		handler, mockService := setupFormHandlerTest(t)
		mockService.EXPECT().GetFormByID(gomock.Any(), "missing").
			Return(nil, &domain.ErrFormNotFound{Message: "form not found"})

		req := httptest.NewRequest(http.MethodGet, "/api/forms.get?id=missing", nil)
		rr := httptest.NewRecorder()
		handler.handleGet(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestFormHandler_HandleCreate(t *testing.T) {
	t.Run("creates form", func(t *testing.T) {
		handler, mockService := setupFormHandlerTest(t)
		mockService.EXPECT().CreateForm(gomock.Any(), "Inscrição", gomock.Any()).
			Return(&domain.FormSchema{ID: "form1", Title: "Inscrição"}, nil)

		body, err := json.Marshal(domain.CreateFormRequest{
			Title:  "Inscrição",
			Fields: []domain.FieldDescriptor{{Label: "Nome", Type: domain.FieldTypeText}},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/forms.create", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleCreate(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		handler, _ := setupFormHandlerTest(t)

		req := httptest.NewRequest(http.MethodPost, "/api/forms.create", bytes.NewReader([]byte("{invalid")))
		rr := httptest.NewRecorder()
		handler.handleCreate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		handler, mockService := setupFormHandlerTest(t)
		mockService.EXPECT().CreateForm(gomock.Any(), "", gomock.Any()).
			Return(nil, domain.NewValidationError("form title is required"))

		body, err := json.Marshal(domain.CreateFormRequest{Title: ""})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/forms.create", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleCreate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

// Wires the real form service behind the handler instead of a mock, so the
// status mapping is checked against the errors the service actually returns.
func TestFormHandler_ValidationStatusThroughService(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockFormRepository(ctrl)
	mockAuth := mocks.NewMockAuthService(ctrl)
	mockLogger := pkgmocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(mockLogger).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	formService := service.NewFormService(mockRepo, mockAuth, mockLogger)
	publicKey := paseto.NewV4AsymmetricSecretKey().Public()
	handler := NewFormHandler(formService, publicKey, mockLogger)

	admin := &domain.User{ID: "admin1", Role: domain.RoleAdmin}

	t.Run("create with empty title", func(t *testing.T) {
		mockAuth.EXPECT().AuthenticateAdmin(gomock.Any()).Return(admin, nil)

		body, err := json.Marshal(domain.CreateFormRequest{Title: ""})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/forms.create", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleCreate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.NotEmpty(t, resp["error"])
	})

	t.Run("update with empty title", func(t *testing.T) {
		mockAuth.EXPECT().AuthenticateAdmin(gomock.Any()).Return(admin, nil)
		mockRepo.EXPECT().GetFormByID(gomock.Any(), "form1").
			Return(&domain.FormSchema{ID: "form1", Title: "Inscrição"}, nil)

		body, err := json.Marshal(domain.UpdateFormRequest{ID: "form1", Title: ""})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/forms.update", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleUpdate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestFormHandler_HandleDelete(t *testing.T) {
	t.Run("deletes form", func(t *testing.T) {
		handler, mockService := setupFormHandlerTest(t)
		mockService.EXPECT().DeleteForm(gomock.Any(), "form1").Return(nil)

		body, err := json.Marshal(domain.DeleteFormRequest{ID: "form1"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/forms.delete", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleDelete(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		handler, mockService := setupFormHandlerTest(t)
		mockService.EXPECT().DeleteForm(gomock.Any(), "missing").
			Return(&domain.ErrFormNotFound{Message: "form not found"})

		body, err := json.Marshal(domain.DeleteFormRequest{ID: "missing"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/forms.delete", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleDelete(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestFormHandler_HandleListSubmissions(t *testing.T) {
	t.Run("lists submissions", func(t *testing.T) {
		handler, mockService := setupFormHandlerTest(t)
		mockService.EXPECT().ListSubmissions(gomock.Any(), "form1").
			Return([]*domain.Submission{{ID: "s1", Nome: "Maria"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/submissions.list?form_id=form1", nil)
		rr := httptest.NewRecorder()
		handler.handleListSubmissions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("search term routes to search", func(t *testing.T) {
		handler, mockService := setupFormHandlerTest(t)
		mockService.EXPECT().SearchSubmissions(gomock.Any(), "form1", "maria").
			Return([]*domain.Submission{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/submissions.list?form_id=form1&search=maria", nil)
		rr := httptest.NewRecorder()
		handler.handleListSubmissions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing form_id", func(t *testing.T) {
		handler, _ := setupFormHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/api/submissions.list", nil)
		rr := httptest.NewRecorder()
		handler.handleListSubmissions(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestFormHandler_HandleUpdateSubmission(t *testing.T) {
	t.Run("updates submission", func(t *testing.T) {
		handler, mockService := setupFormHandlerTest(t)
		mockService.EXPECT().UpdateSubmission(gomock.Any(), "sub1", gomock.Any()).
			Return(&domain.Submission{ID: "sub1", Nome: "Maria Silva"}, nil)

		body, err := json.Marshal(domain.UpdateSubmissionRequest{
			ID:     "sub1",
			Values: domain.RawValues{"nome_1": "Maria Silva"},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/submissions.update", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleUpdateSubmission(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		handler, mockService := setupFormHandlerTest(t)
		mockService.EXPECT().UpdateSubmission(gomock.Any(), "sub1", gomock.Any()).
			Return(nil, domain.NewValidationError("O campo Nome é obrigatório"))

		body, err := json.Marshal(domain.UpdateSubmissionRequest{ID: "sub1"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/submissions.update", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.handleUpdateSubmission(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
