package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"aidanwoods.dev/go-paseto"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/internal/http/middleware"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

type MemberHandler struct {
	service   domain.MemberService
	publicKey paseto.V4AsymmetricPublicKey
	logger    logger.Logger
}

func NewMemberHandler(service domain.MemberService, publicKey paseto.V4AsymmetricPublicKey, logger logger.Logger) *MemberHandler {
	return &MemberHandler{
		service:   service,
		publicKey: publicKey,
		logger:    logger,
	}
}

type deleteMemberRequest struct {
	ID string `json:"id"`
}

func (h *MemberHandler) RegisterRoutes(mux *http.ServeMux) {
	authMiddleware := middleware.NewAuthMiddleware(h.publicKey)
	requireAuth := authMiddleware.RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/members.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/members.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/members.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/members.delete", requireAuth(http.HandlerFunc(h.handleDelete)))
}

func (h *MemberHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := domain.MemberFilter{
		GCID:   r.URL.Query().Get("gc_id"),
		Search: r.URL.Query().Get("search"),
	}
	if raw := r.URL.Query().Get("quer_gc"); raw != "" {
		querGC, err := strconv.ParseBool(raw)
		if err != nil {
			WriteJSONError(w, "Invalid quer_gc value", http.StatusBadRequest)
			return
		}
		filter.QuerGC = &querGC
	}

	members, err := h.service.ListMembers(r.Context(), filter)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to list members")
		WriteJSONError(w, "Failed to list members", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "members", members)
}

func (h *MemberHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	memberID := r.URL.Query().Get("id")
	if memberID == "" {
		WriteJSONError(w, "Missing member ID", http.StatusBadRequest)
		return
	}

	member, err := h.service.GetMemberByID(r.Context(), memberID)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrMemberNotFound); ok {
			WriteJSONError(w, "Member not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get member")
		WriteJSONError(w, "Failed to get member", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "member", member)
}

func (h *MemberHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	member, err := h.service.UpdateMember(r.Context(), req)
	if err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrMemberNotFound); ok {
			WriteJSONError(w, "Member not found", http.StatusNotFound)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update member")
		WriteJSONError(w, "Failed to update member", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "member", member)
}

func (h *MemberHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req deleteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteMember(r.Context(), req.ID); err != nil {
		if handleAuthError(w, err) {
			return
		}
		if _, ok := err.(*domain.ErrMemberNotFound); ok {
			WriteJSONError(w, "Member not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete member")
		WriteJSONError(w, "Failed to delete member", http.StatusInternalServerError)
		return
	}

	writeSuccess(w)
}
