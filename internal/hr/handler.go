package hr

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aprksy/jsonsvc/internal/platform/middleware"
	"github.com/aprksy/jsonsvc/pkg/platform/httputil"
)

// APIKeyHeader is the auth header for the HR endpoints.
const APIKeyHeader = "X-API-Key"

// Handler exposes the HR endpoints behind API-key auth.
type Handler struct {
	service *Service
	logger  *slog.Logger
	apiKeys []string
}

func NewHandler(service *Service, logger *slog.Logger, apiKeys []string) *Handler {
	return &Handler{service: service, logger: logger, apiKeys: apiKeys}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/hr", func(r chi.Router) {
		r.Use(middleware.RequireAPIKey(APIKeyHeader, h.apiKeys, h.logger))
		r.Get("/employees", h.handleEmployees)
		r.Get("/employees/{employee_id}", h.handleEmployeeByID)
		r.Get("/policies", h.handlePolicies)
		r.Get("/payroll", h.handlePayroll)
		r.Get("/summary", h.handleSummary)
	})
}

func (h *Handler) handleEmployees(w http.ResponseWriter, r *http.Request) {
	filter := EmployeeFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Name:       r.URL.Query().Get("name"),
		Department: r.URL.Query().Get("department"),
		Status:     r.URL.Query().Get("status"),
	}
	list, err := h.service.Employees(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleEmployeeByID(w http.ResponseWriter, r *http.Request) {
	employee, err := h.service.EmployeeByID(r.Context(), chi.URLParam(r, "employee_id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, employee)
}

func (h *Handler) handlePolicies(w http.ResponseWriter, r *http.Request) {
	filter := PolicyFilter{
		PolicyType: r.URL.Query().Get("policy_type"),
		Category:   r.URL.Query().Get("category"),
	}
	list, err := h.service.Policies(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handlePayroll(w http.ResponseWriter, r *http.Request) {
	filter := PayrollFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Period:     r.URL.Query().Get("period"),
		Department: r.URL.Query().Get("department"),
	}
	report, err := h.service.Payroll(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	httputil.WriteFailure(w, r, h.logger, "hr", err)
}
