package http

import (
	"encoding/json"
	"net/http"

	"aidanwoods.dev/go-paseto"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/internal/http/middleware"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type PageHandler struct {
	service   domain.PageService
	publicKey paseto.V4AsymmetricPublicKey
	logger    logger.Logger
}

func NewPageHandler(service domain.PageService, publicKey paseto.V4AsymmetricPublicKey, logger logger.Logger) *PageHandler {
	return &PageHandler{
		service:   service,
		publicKey: publicKey,
		logger:    logger,
	}
}

// Request/Response types
type updatePageRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

func (h *PageHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware(h.publicKey)
	requireAuth := authMiddleware.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/pages.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/pages.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
}

func (h *PageHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pageID := r.URL.Query().Get("id")
	if pageID == "" {
		WriteJSONError(w, "Missing page ID", http.StatusBadRequest)
		return
	}

	page, err := h.service.GetPage(r.Context(), pageID)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrPageNotFound); ok {
			WriteJSONError(w, "Page not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get page")
		WriteJSONError(w, "Failed to get page", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "page", page)
}

func (h *PageHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req updatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	page := &domain.Page{
		ID:       req.ID,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
	}

	if err := h.service.UpdatePage(r.Context(), page); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update page")
		WriteJSONError(w, "Failed to update page", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "page", page)
}
