package http

import (
	"encoding/json"
	"net/http"

	"aidanwoods.dev/go-paseto"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/internal/http/middleware"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type UserHandler struct {
	service   domain.UserService
	publicKey paseto.V4AsymmetricPublicKey
	logger    logger.Logger
}

func NewUserHandler(service domain.UserService, publicKey paseto.V4AsymmetricPublicKey, logger logger.Logger) *UserHandler {
	return &UserHandler{
		service:   service,
		publicKey: publicKey,
		logger:    logger,
	}
}

func (h *UserHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware(h.publicKey)
	requireAuth := authMiddleware.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/users.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/users.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/users.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var roles []domain.UserRole
	for _, raw := range r.URL.Query()["role"] {
		role := domain.UserRole(raw)
		if err := role.Validate(); err != nil {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		roles = append(roles, role)
	}

	users, err := h.service.ListUsers(r.Context(), roles)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to list users")
		WriteJSONError(w, "Failed to list users", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "users", users)
}

func (h *UserHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), req)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrUserNotFound); ok {
			WriteJSONError(w, "User not found", http.StatusNotFound)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update user")
		WriteJSONError(w, "Failed to update user", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "user", user)
}

func (h *UserHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.DeleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteUser(r.Context(), req.ID); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrUserNotFound); ok {
			WriteJSONError(w, "User not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete user")
		WriteJSONError(w, "Failed to delete user", http.StatusInternalServerError)
		return
	}

	writeSuccess(w)
}
