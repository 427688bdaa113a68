package it

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aprksy/jsonsvc/internal/platform/middleware"
	"github.com/aprksy/jsonsvc/pkg/platform/httputil"
)

// APIKeyHeader is the auth header for the IT endpoints.
const APIKeyHeader = "X-API-Key"

// Handler exposes the IT endpoints behind API-key auth.
type Handler struct {
	service *Service
	logger  *slog.Logger
	apiKeys []string
}

func NewHandler(service *Service, logger *slog.Logger, apiKeys []string) *Handler {
	return &Handler{service: service, logger: logger, apiKeys: apiKeys}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/it", func(r chi.Router) {
		r.Use(middleware.RequireAPIKey(APIKeyHeader, h.apiKeys, h.logger))
		r.Get("/status", h.handleStatus)
		r.Get("/status/overview", h.handleOverview)
		r.Post("/support/ticket", h.handleCreateTicket)
		r.Get("/support/tickets", h.handleTickets)
		r.Post("/auth/password/reset", h.handleCreateReset)
		r.Get("/auth/password/resets", h.handleResets)
		r.Get("/dashboard", h.handleDashboard)
	})
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Status(r.Context(), r.URL.Query().Get("service_name"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, overview)
}

func (h *Handler) handleCreateTicket(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[CreateTicketRequest](w, r, h.logger)
	if !ok {
		return
	}
	receipt, err := h.service.CreateTicket(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, receipt)
}

func (h *Handler) handleTickets(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.Tickets(r.Context(), r.URL.Query().Get("status"), r.URL.Query().Get("priority"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleCreateReset(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[PasswordResetRequest](w, r, h.logger)
	if !ok {
		return
	}
	receipt, err := h.service.CreatePasswordReset(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, receipt)
}

func (h *Handler) handleResets(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.PasswordResets(r.Context(), r.URL.Query().Get("username"), r.URL.Query().Get("status"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, dashboard)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	httputil.WriteFailure(w, r, h.logger, "it", err)
}
