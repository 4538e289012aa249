package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"lifted/internal/adapter/http/middleware"
	"lifted/internal/config/configs"
	"lifted/internal/core/domain"
	"lifted/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// it decodes requests, delegates to the usecases and maps port errors to
// response statuses.
type Handler struct {
	auth      port.AuthUseCase
	campaigns port.CampaignUseCase
	donations port.DonationUseCase
	authCfg   configs.Auth
	logger    zerolog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	auth port.AuthUseCase,
	campaigns port.CampaignUseCase,
	donations port.DonationUseCase,
	authCfg configs.Auth,
	httpCfg configs.HTTP,
	logger zerolog.Logger,
) *Handler {
	h := &Handler{
		auth:      auth,
		campaigns: campaigns,
		donations: donations,
		authCfg:   authCfg,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(httpCfg.AllowedOrigins))

	r.Get("/health", h.handleHealth)

	authed := middleware.Auth(authCfg.JWTSecret)
	adminOnly := middleware.RequireRole(string(domain.RoleAdmin))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.handleRegister)
			r.Post("/login", h.handleLogin)
			r.Group(func(r chi.Router) {
				r.Use(authed)
				r.Get("/me", h.handleMe)
				r.Put("/profile", h.handleUpdateProfile)
				r.Put("/password", h.handleChangePassword)
			})
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleCampaignList)
			r.Get("/search", h.handleCampaignSearch)
			r.Get("/{id}", h.handleCampaignGet)
			r.Get("/{id}/updates", h.handleCampaignUpdates)
			r.Get("/{id}/donations", h.handleCampaignDonations)
			r.Put("/{id}/share", h.handleCampaignShare)

			r.Group(func(r chi.Router) {
				r.Use(authed)
				r.With(middleware.RequireRole(string(domain.RoleStudent), string(domain.RoleAdmin))).
					Post("/", h.handleCampaignCreate)
				r.Put("/{id}", h.handleCampaignUpdate)
				r.Delete("/{id}", h.handleCampaignDelete)
				r.Post("/{id}/updates", h.handleCampaignAddUpdate)
				r.With(adminOnly).Put("/{id}/approve", h.handleCampaignApprove)
				r.With(adminOnly).Put("/{id}/reject", h.handleCampaignReject)
			})
		})

		r.Route("/donations", func(r chi.Router) {
			r.Use(authed)
			r.Post("/", h.handleDonationCreate)
			r.Get("/", h.handleDonationList)
			r.With(adminOnly).Get("/stats/summary", h.handleDonationStats)
			r.Get("/{id}", h.handleDonationGet)
			r.Put("/{id}/refund", h.handleDonationRefund)
		})

		r.With(authed).Get("/users/{id}/campaign", h.handleUserCampaign)
		r.With(authed).Get("/users/{id}/donations", h.handleDonorHistory)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// currentUser loads the authenticated user's profile. Returns nil after
// writing the error response when the account no longer exists.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) *domain.User {
	user, err := h.auth.GetUser(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, "invalid token subject", http.StatusUnauthorized)
		return nil
	}
	return user
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error().Err(err).Msg("encode response error")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps port errors to HTTP statuses. Anything unmatched is an
// internal error and the detail stays in the logs.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var code int
	switch {
	case errors.Is(err, port.ErrInvalidInput),
		errors.Is(err, port.ErrEmailTaken),
		errors.Is(err, port.ErrProfileExists),
		errors.Is(err, port.ErrCampaignNotEligible),
		errors.Is(err, port.ErrAlreadyRefunded),
		errors.Is(err, port.ErrRefundWindowExpired):
		code = http.StatusBadRequest
	case errors.Is(err, port.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, port.ErrForbidden),
		errors.Is(err, port.ErrRefundUnauthorized),
		errors.Is(err, port.ErrAccountDisabled):
		code = http.StatusForbidden
	case errors.Is(err, port.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, port.ErrConcurrencyConflict):
		code = http.StatusConflict
	default:
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("internal error")
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	h.writeJSON(w, code, errorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return port.ErrInvalidInput
	}
	return nil
}
