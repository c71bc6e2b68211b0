package http

import (
	"encoding/json"
	"net/http"

	"github.com/koinonia-app/koinonia/internal/domain"
	"github.com/koinonia-app/koinonia/pkg/logger"
)

// PublicHandler serves the endpoints of the public site. None of its routes
// require authentication.
type PublicHandler struct {
	formService   domain.FormService
	memberService domain.MemberService
	pageService   domain.PageService
	eventService  domain.EventService
	studyService  domain.StudyService
	videoService  domain.VideoService
	pastorService domain.PastorService
	userService   domain.UserService
	logger        logger.Logger
}

type PublicHandlerConfig struct {
	FormService   domain.FormService
	MemberService domain.MemberService
	PageService   domain.PageService
	EventService  domain.EventService
	StudyService  domain.StudyService
	VideoService  domain.VideoService
	PastorService domain.PastorService
	UserService   domain.UserService
	Logger        logger.Logger
}

func NewPublicHandler(cfg PublicHandlerConfig) *PublicHandler {
	return &PublicHandler{
		formService:   cfg.FormService,
		memberService: cfg.MemberService,
		pageService:   cfg.PageService,
		eventService:  cfg.EventService,
		studyService:  cfg.StudyService,
		videoService:  cfg.VideoService,
		pastorService: cfg.PastorService,
		userService:   cfg.UserService,
		logger:        cfg.Logger,
	}
}

// homeResponse bundles everything the public home page renders in one call.
type homeResponse struct {
	Page    *domain.Page     `json:"page"`
	Events  []*domain.Event  `json:"events"`
	Videos  []*domain.Video  `json:"videos"`
	Pastors []*domain.Pastor `json:"pastors"`
}

func (h *PublicHandler) RegisterRoutes(mux *http.ServeMux) {
	// Register RPC-style endpoints with dot notation
	mux.HandleFunc("/api/public.form", h.handleForm)
	mux.HandleFunc("/api/public.submit", h.handleSubmit)
	mux.HandleFunc("/api/public.register", h.handleRegister)
	mux.HandleFunc("/api/public.home", h.handleHome)
	mux.HandleFunc("/api/public.events", h.handleEvents)
	mux.HandleFunc("/api/public.studies", h.handleStudies)
	mux.HandleFunc("/api/public.videos", h.handleVideos)
	mux.HandleFunc("/api/public.pastors", h.handlePastors)
	mux.HandleFunc("/api/public.profiles", h.handleProfiles)
}

func (h *PublicHandler) handleForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.GetFormRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.formService.RenderForm(r.Context(), req.ID)
	if err != nil {
		if _, ok := err.(*domain.ErrFormNotFound); ok {
			WriteJSONError(w, "Form not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to render form")
		WriteJSONError(w, "Failed to render form", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *PublicHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.SubmitFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	submission, err := h.formService.SubmitForm(r.Context(), req.FormID, req.Values)
	if err != nil {
		if _, ok := err.(*domain.ErrFormNotFound); ok {
			WriteJSONError(w, "Form not found", http.StatusNotFound)
			return
		}
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to submit form")
		WriteJSONError(w, "Failed to submit form", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusCreated, "submission", submission)
}

func (h *PublicHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to decode request body")
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	member, err := h.memberService.RegisterMember(r.Context(), req)
	if err != nil {
		if _, ok := err.(domain.ValidationError); ok {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to register member")
		WriteJSONError(w, "Failed to register member", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusCreated, "member", member)
}

func (h *PublicHandler) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	page, err := h.pageService.GetPage(ctx, domain.PageIDHome)
	if err != nil {
		if _, ok := err.(*domain.ErrPageNotFound); !ok {
			h.logger.WithField("error", err.Error()).Error("Failed to get home page")
			WriteJSONError(w, "Failed to get home page", http.StatusInternalServerError)
			return
		}
		// A missing hero still leaves the rest of the page renderable.
		page = nil
	}

	events, err := h.eventService.ListUpcomingEvents(ctx)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list upcoming events")
		WriteJSONError(w, "Failed to get home page", http.StatusInternalServerError)
		return
	}

	videos, err := h.videoService.ListFeaturedVideos(ctx)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list featured videos")
		WriteJSONError(w, "Failed to get home page", http.StatusInternalServerError)
		return
	}

	pastors, err := h.pastorService.ListPastors(ctx)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list pastors")
		WriteJSONError(w, "Failed to get home page", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, homeResponse{
		Page:    page,
		Events:  events,
		Videos:  videos,
		Pastors: pastors,
	})
}

func (h *PublicHandler) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	events, err := h.eventService.ListUpcomingEvents(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list upcoming events")
		WriteJSONError(w, "Failed to list events", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "events", events)
}

func (h *PublicHandler) handleStudies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	studies, err := h.studyService.ListStudies(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list studies")
		WriteJSONError(w, "Failed to list studies", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "studies", studies)
}

func (h *PublicHandler) handleVideos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	videos, err := h.videoService.ListFeaturedVideos(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list featured videos")
		WriteJSONError(w, "Failed to list videos", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "videos", videos)
}

func (h *PublicHandler) handlePastors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pastors, err := h.pastorService.ListPastors(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list pastors")
		WriteJSONError(w, "Failed to list pastors", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "pastors", pastors)
}

func (h *PublicHandler) handleProfiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	profiles, err := h.userService.ListPublicProfiles(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list public profiles")
		WriteJSONError(w, "Failed to list profiles", http.StatusInternalServerError)
		return
	}

	writeEnvelope(w, http.StatusOK, "profiles", profiles)
}
