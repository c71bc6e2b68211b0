package http

import (
	"encoding/json"
	"net/http"

	"aidanwoods.dev/go-paseto"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/internal/http/middleware"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type StudyHandler struct {
	service   domain.StudyService
	publicKey paseto.V4AsymmetricPublicKey
	logger    logger.Logger
}

func NewStudyHandler(service domain.StudyService, publicKey paseto.V4AsymmetricPublicKey, logger logger.Logger) *StudyHandler {
	return &StudyHandler{
		service:   service,
		publicKey: publicKey,
		logger:    logger,
	}
}

// Request/Response types
type upsertStudyRequest struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type deleteStudyRequest struct {
	ID string `json:"id"`
}

func (h *StudyHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware(h.publicKey)
	requireAuth := authMiddleware.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/studies.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/studies.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/studies.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/studies.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/studies.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *StudyHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	studies, err := h.service.ListStudies(r.Context())
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to list studies")
		WriteJSONError(w, "Failed to list studies", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "studies", studies)
}

func (h *StudyHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	studyID := r.URL.Query().Get("id")
	if studyID == "" {
		WriteJSONError(w, "Missing study ID", http.StatusBadRequest)
		return
	}

	study, err := h.service.GetStudyByID(r.Context(), studyID)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrStudyNotFound); ok {
			WriteJSONError(w, "Study not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get study")
		WriteJSONError(w, "Failed to get study", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "study", study)
}

func (h *StudyHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req upsertStudyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	study := &domain.Study{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		ImageURL:    req.ImageURL,
	}

	if err := h.service.CreateStudy(r.Context(), study); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create study")
		WriteJSONError(w, "Failed to create study", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusCreated, "study", study)
}

func (h *StudyHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req upsertStudyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	study := &domain.Study{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		ImageURL:    req.ImageURL,
	}

	if err := h.service.UpdateStudy(r.Context(), study); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrStudyNotFound); ok {
			WriteJSONError(w, "Study not found", http.StatusNotFound)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update study")
		WriteJSONError(w, "Failed to update study", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "study", study)
}

func (h *StudyHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req deleteStudyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteStudy(r.Context(), req.ID); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrStudyNotFound); ok {
			WriteJSONError(w, "Study not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete study")
		WriteJSONError(w, "Failed to delete study", http.StatusInternalServerError)
		return
	}

	writeSuccess(w)
}
