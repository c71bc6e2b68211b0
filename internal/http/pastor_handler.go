package http

import (
	"encoding/json"
	"net/http"

	"aidanwoods.dev/go-paseto"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/internal/http/middleware"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type PastorHandler struct {
	service   domain.PastorService
	publicKey paseto.V4AsymmetricPublicKey
	logger    logger.Logger
}

func NewPastorHandler(service domain.PastorService, publicKey paseto.V4AsymmetricPublicKey, logger logger.Logger) *PastorHandler {
	return &PastorHandler{
		service:   service,
		publicKey: publicKey,
		logger:    logger,
	}
}

// Request/Response types
type savePastorRequest struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type deletePastorRequest struct {
	ID string `json:"id"`
}

func (h *PastorHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware(h.publicKey)
	requireAuth := authMiddleware.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/pastors.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/pastors.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/pastors.save", requireAuth(http.HandlerFunc(h.handleSave)))
	mux.Handle("/api/pastors.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *PastorHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pastors, err := h.service.ListPastors(r.Context())
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to list pastors")
		WriteJSONError(w, "Failed to list pastors", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "pastors", pastors)
}

func (h *PastorHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pastorID := r.URL.Query().Get("id")
	if pastorID == "" {
		WriteJSONError(w, "Missing pastor ID", http.StatusBadRequest)
		return
	}

	pastor, err := h.service.GetPastorByID(r.Context(), pastorID)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrPastorNotFound); ok {
			WriteJSONError(w, "Pastor not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get pastor")
		WriteJSONError(w, "Failed to get pastor", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "pastor", pastor)
}

func (h *PastorHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req savePastorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pastor := &domain.Pastor{
		ID:       req.ID,
		Name:     req.Name,
		Role:     req.Role,
		PhotoURL: req.PhotoURL,
	}

	if err := h.service.SavePastor(r.Context(), pastor); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrPastorNotFound); ok {
			WriteJSONError(w, "Pastor not found", http.StatusNotFound)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to save pastor")
		WriteJSONError(w, "Failed to save pastor", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "pastor", pastor)
}

func (h *PastorHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req deletePastorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeletePastor(r.Context(), req.ID); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrPastorNotFound); ok {
			WriteJSONError(w, "Pastor not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete pastor")
		WriteJSONError(w, "Failed to delete pastor", http.StatusInternalServerError)
		return
	}

	writeSuccess(w)
}
