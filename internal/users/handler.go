package users

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	dErrors "github.com/aprksy/jsonsvc/pkg/domain-errors"
	"github.com/aprksy/jsonsvc/pkg/platform/httputil"
)

// Handler exposes the users endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the users routes. The static routes win over the id
// parameter, so /users/random never parses as a lookup.
func (h *Handler) Register(r chi.Router) {
	r.Get("/users/random", h.handleRandom)
	r.Get("/users/all", h.handleAll)
	r.Get("/users/{user_id}", h.handleByID)
}

func (h *Handler) handleRandom(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Random(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.All(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) handleByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "user_id"))
	if err != nil {
		h.fail(w, r, dErrors.New(dErrors.CodeBadRequest, "user_id must be an integer"))
		return
	}
	user, err := h.service.ByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	httputil.WriteFailure(w, r, h.logger, "users", err)
}
