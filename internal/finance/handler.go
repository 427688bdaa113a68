package finance

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aprksy/jsonsvc/internal/platform/middleware"
	dErrors "github.com/aprksy/jsonsvc/pkg/domain-errors"
	"github.com/aprksy/jsonsvc/pkg/platform/httputil"
)

// APIKeyHeader is the finance auth header. The other protected domains use
// X-API-Key; finance reads the bare Api-Key header instead, and callers
// depend on that.
const APIKeyHeader = "Api-Key"

// Handler exposes the finance endpoints behind API-key auth.
type Handler struct {
	service *Service
	logger  *slog.Logger
	apiKeys []string
}

func NewHandler(service *Service, logger *slog.Logger, apiKeys []string) *Handler {
	return &Handler{service: service, logger: logger, apiKeys: apiKeys}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/finance", func(r chi.Router) {
		r.Use(middleware.RequireAPIKey(APIKeyHeader, h.apiKeys, h.logger))
		r.Get("/budgets", h.handleBudgets)
		r.Get("/expenses", h.handleExpenses)
		r.Get("/revenues", h.handleRevenues)
		r.Get("/summary", h.handleSummary)
	})
}

func (h *Handler) handleBudgets(w http.ResponseWriter, r *http.Request) {
	filter := BudgetFilter{
		Department: r.URL.Query().Get("department"),
		ProjectID:  r.URL.Query().Get("project_id"),
	}
	if raw := r.URL.Query().Get("fiscal_year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(w, r, dErrors.New(dErrors.CodeBadRequest, "fiscal_year must be an integer"))
			return
		}
		filter.FiscalYear = &year
	}
	list, err := h.service.Budgets(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleExpenses(w http.ResponseWriter, r *http.Request) {
	filter := ExpenseFilter{
		Department: r.URL.Query().Get("department"),
		DateFrom:   r.URL.Query().Get("date_from"),
		DateTo:     r.URL.Query().Get("date_to"),
	}
	report, err := h.service.Expenses(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) handleRevenues(w http.ResponseWriter, r *http.Request) {
	filter := RevenueFilter{
		Department: r.URL.Query().Get("department"),
		ProjectID:  r.URL.Query().Get("project_id"),
		Period:     r.URL.Query().Get("period"),
	}
	report, err := h.service.Revenues(r.Context(), filter)
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
	httputil.WriteFailure(w, r, h.logger, "finance", err)
}
