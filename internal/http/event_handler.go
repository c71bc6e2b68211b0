package http

import (
	"encoding/json"
	"net/http"

	"aidanwoods.dev/go-paseto"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/internal/http/middleware"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type EventHandler struct {
	service   domain.EventService
	publicKey paseto.V4AsymmetricPublicKey
	logger    logger.Logger
}

func NewEventHandler(service domain.EventService, publicKey paseto.V4AsymmetricPublicKey, logger logger.Logger) *EventHandler {
	return &EventHandler{
		service:   service,
		publicKey: publicKey,
		logger:    logger,
	}
}

// Request/Response types
type upsertEventRequest struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type deleteEventRequest struct {
	ID string `json:"id"`
}

func (h *EventHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware(h.publicKey)
	requireAuth := authMiddleware.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/events.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/events.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/events.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/events.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/events.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *EventHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	events, err := h.service.ListEvents(r.Context())
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to list events")
		WriteJSONError(w, "Failed to list events", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "events", events)
}

func (h *EventHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	eventID := r.URL.Query().Get("id")
	if eventID == "" {
		WriteJSONError(w, "Missing event ID", http.StatusBadRequest)
		return
	}

	event, err := h.service.GetEventByID(r.Context(), eventID)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrEventNotFound); ok {
			WriteJSONError(w, "Event not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get event")
		WriteJSONError(w, "Failed to get event", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "event", event)
}

func (h *EventHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req upsertEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	event := &domain.Event{
		Title:    req.Title,
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		ImageURL: req.ImageURL,
	}

	if err := h.service.CreateEvent(r.Context(), event); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create event")
		WriteJSONError(w, "Failed to create event", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusCreated, "event", event)
}

func (h *EventHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req upsertEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	event := &domain.Event{
		ID:       req.ID,
		Title:    req.Title,
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		ImageURL: req.ImageURL,
	}

	if err := h.service.UpdateEvent(r.Context(), event); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrEventNotFound); ok {
			WriteJSONError(w, "Event not found", http.StatusNotFound)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update event")
		WriteJSONError(w, "Failed to update event", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "event", event)
}

func (h *EventHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req deleteEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteEvent(r.Context(), req.ID); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrEventNotFound); ok {
			WriteJSONError(w, "Event not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete event")
		WriteJSONError(w, "Failed to delete event", http.StatusInternalServerError)
		return
	}

	writeSuccess(w)
}
