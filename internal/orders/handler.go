package orders

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	dErrors "github.com/aprksy/jsonsvc/pkg/domain-errors"
	"github.com/aprksy/jsonsvc/pkg/platform/httputil"
)

// Handler exposes the orders endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/orders/random", h.handleRandom)
	r.Get("/orders/all", h.handleAll)
	r.Get("/orders/user/{user_id}", h.handleByUser)
}

func (h *Handler) handleRandom(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Random(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.All(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) handleByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "user_id"))
	if err != nil {
		h.fail(w, r, dErrors.New(dErrors.CodeBadRequest, "user_id must be an integer"))
		return
	}
	matches, err := h.service.ByUser(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, matches)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	httputil.WriteFailure(w, r, h.logger, "orders", err)
}
