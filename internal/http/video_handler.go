package http

import (
	"encoding/json"
	"net/http"

	"aidanwoods.dev/go-paseto"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/internal/http/middleware"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type VideoHandler struct {
	service   domain.VideoService
	publicKey paseto.V4AsymmetricPublicKey
	logger    logger.Logger
}

func NewVideoHandler(service domain.VideoService, publicKey paseto.V4AsymmetricPublicKey, logger logger.Logger) *VideoHandler {
	return &VideoHandler{
		service:   service,
		publicKey: publicKey,
		logger:    logger,
	}
}

// Request/Response types
type upsertVideoRequest struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	YoutubeURL string `json:"youtube_url"`
	Position   int    `json:"position"`
}

type deleteVideoRequest struct {
	ID string `json:"id"`
}

func (h *VideoHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware(h.publicKey)
	requireAuth := authMiddleware.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/videos.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/videos.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/videos.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/videos.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/videos.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *VideoHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	videos, err := h.service.ListVideos(r.Context())
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to list videos")
		WriteJSONError(w, "Failed to list videos", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "videos", videos)
}

func (h *VideoHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	videoID := r.URL.Query().Get("id")
	if videoID == "" {
		WriteJSONError(w, "Missing video ID", http.StatusBadRequest)
		return
	}

	video, err := h.service.GetVideoByID(r.Context(), videoID)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrVideoNotFound); ok {
			WriteJSONError(w, "Video not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get video")
		WriteJSONError(w, "Failed to get video", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "video", video)
}

func (h *VideoHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req upsertVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	video := &domain.Video{
		Title:      req.Title,
		YoutubeURL: req.YoutubeURL,
		Position:   req.Position,
	}

	if err := h.service.CreateVideo(r.Context(), video); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create video")
		WriteJSONError(w, "Failed to create video", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusCreated, "video", video)
}

func (h *VideoHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req upsertVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	video := &domain.Video{
		ID:         req.ID,
		Title:      req.Title,
		YoutubeURL: req.YoutubeURL,
		Position:   req.Position,
	}

	if err := h.service.UpdateVideo(r.Context(), video); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrVideoNotFound); ok {
			WriteJSONError(w, "Video not found", http.StatusNotFound)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update video")
		WriteJSONError(w, "Failed to update video", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "video", video)
}

func (h *VideoHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req deleteVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteVideo(r.Context(), req.ID); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrVideoNotFound); ok {
			WriteJSONError(w, "Video not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete video")
		WriteJSONError(w, "Failed to delete video", http.StatusInternalServerError)
		return
	}

	writeSuccess(w)
}
