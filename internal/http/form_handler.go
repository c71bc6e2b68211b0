package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"aidanwoods.dev/go-paseto"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/internal/http/middleware"
	"github.com/koinonia-app/koinonia/internal/service"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type FormHandler struct {
	service   domain.FormService
	publicKey paseto.V4AsymmetricPublicKey
	logger    logger.Logger
}

func NewFormHandler(service domain.FormService, publicKey paseto.V4AsymmetricPublicKey, logger logger.Logger) *FormHandler {
	return &FormHandler{
		service:   service,
		publicKey: publicKey,
		logger:    logger,
	}
}

func (h *FormHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware(h.publicKey)
	requireAuth := authMiddleware.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/forms.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/forms.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/forms.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/forms.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/forms.delete", requireAuth(http.HandlerFunc(h.handleDelete)))

	mux.Handle("/api/submissions.list", requireAuth(http.HandlerFunc(h.handleListSubmissions)))
	mux.Handle("/api/submissions.get", requireAuth(http.HandlerFunc(h.handleGetSubmission)))
	mux.Handle("/api/submissions.update", requireAuth(http.HandlerFunc(h.handleUpdateSubmission)))
	mux.Handle("/api/submissions.delete", requireAuth(http.HandlerFunc(h.handleDeleteSubmission)))
}

func (h *FormHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	forms, err := h.service.ListForms(r.Context())
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to list forms")
		WriteJSONError(w, "Failed to list forms", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "forms", forms)
}

func (h *FormHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.GetFormRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	form, err := h.service.GetFormByID(r.Context(), req.ID)
	if err != nil {
		if _, ok := err.(*domain.ErrFormNotFound); ok {
			WriteJSONError(w, "Form not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get form")
		WriteJSONError(w, "Failed to get form", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "form", form)
}

func (h *FormHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	form, err := h.service.CreateForm(r.Context(), req.Title, req.Fields)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create form")
		WriteJSONError(w, "Failed to create form", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusCreated, "form", form)
}

func (h *FormHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	form, err := h.service.UpdateForm(r.Context(), req.ID, req.Title, req.Fields)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrFormNotFound); ok {
			WriteJSONError(w, "Form not found", http.StatusNotFound)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update form")
		WriteJSONError(w, "Failed to update form", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "form", form)
}

func (h *FormHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.DeleteFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteForm(r.Context(), req.ID); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrFormNotFound); ok {
			WriteJSONError(w, "Form not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete form")
		WriteJSONError(w, "Failed to delete form", http.StatusInternalServerError)
		return
	}

	writeSuccess(w)
}

func (h *FormHandler) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.ListSubmissionsRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var submissions []*domain.Submission
	var err error
	if req.Search != "" {
		submissions, err = h.service.SearchSubmissions(r.Context(), req.FormID, req.Search)
	} else {
		submissions, err = h.service.ListSubmissions(r.Context(), req.FormID)
	}
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrFormNotFound); ok {
			WriteJSONError(w, "Form not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to list submissions")
		WriteJSONError(w, "Failed to list submissions", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "submissions", submissions)
}

func (h *FormHandler) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	submissionID := r.URL.Query().Get("id")
	if submissionID == "" {
		WriteJSONError(w, "Missing submission ID", http.StatusBadRequest)
		return
	}

	view, err := h.service.RenderSubmissionForEdit(r.Context(), submissionID)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		switch err.(type) {
		case *domain.ErrSubmissionNotFound:
			WriteJSONError(w, "Submission not found", http.StatusNotFound)
			return
		case *domain.ErrFormNotFound:
			WriteJSONError(w, "Form not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get submission")
		WriteJSONError(w, "Failed to get submission", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *FormHandler) handleUpdateSubmission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	submission, err := h.service.UpdateSubmission(r.Context(), req.ID, req.Values)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		switch err.(type) {
		case *domain.ErrSubmissionNotFound:
			WriteJSONError(w, "Submission not found", http.StatusNotFound)
			return
		case *domain.ErrFormNotFound:
			WriteJSONError(w, "Form not found", http.StatusNotFound)
			return
		case domain.ValidationError:
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update submission")
		WriteJSONError(w, "Failed to update submission", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "submission", submission)
}

func (h *FormHandler) handleDeleteSubmission(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.DeleteSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteSubmission(r.Context(), req.ID); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrSubmissionNotFound); ok {
			WriteJSONError(w, "Submission not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete submission")
		WriteJSONError(w, "Failed to delete submission", http.StatusInternalServerError)
		return
	}

	writeSuccess(w)
}

// handleAuthError writes the proper status for authentication failures
// surfaced by the service layer and reports whether it handled the error.
func handleAuthError(w http.ResponseWriter, err error) bool {
	if errors.Is(err, service.ErrNotAuthenticated) {
		WriteJSONError(w, "Not authenticated", http.StatusUnauthorized)
		return true
	}
	if errors.Is(err, service.ErrNotAuthorized) {
		WriteJSONError(w, "Not authorized", http.StatusForbidden)
		return true
	}
	return false
}
