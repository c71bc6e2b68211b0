package http

import (
	"encoding/json"
	"net/http"

	"aidanwoods.dev/go-paseto"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/internal/http/middleware"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type AuthHandler struct {
	service   domain.UserService
	publicKey paseto.V4AsymmetricPublicKey
	logger    logger.Logger
}

func NewAuthHandler(service domain.UserService, publicKey paseto.V4AsymmetricPublicKey, logger logger.Logger) *AuthHandler {
	return &AuthHandler{
		service:   service,
		publicKey: publicKey,
		logger:    logger,
	}
}

func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware(h.publicKey)
	requireAuth := authMiddleware.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.HandleFunc("/api/auth.signup", h.handleSignUp)
	mux.HandleFunc("/api/auth.signin", h.handleSignIn)
	mux.Handle("/api/auth.me", requireAuth(http.HandlerFunc(h.handleMe)))
}

func (h *AuthHandler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SignUp(r.Context(), req)
	if err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to sign up")
		WriteJSONError(w, "Failed to sign up", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SignIn(r.Context(), req)
	if err != nil {
		if _, ok := err.(*domain.ErrInvalidCredentials); ok {
			WriteJSONError(w, err.Error(), http.StatusUnauthorized)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to sign in")
		WriteJSONError(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := h.service.GetCurrentUser(r.Context())
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get current user")
		WriteJSONError(w, "Failed to get current user", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "user", user)
}
