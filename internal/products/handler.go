package products

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aprksy/jsonsvc/pkg/platform/httputil"
)

// Handler exposes the products endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/products/random", h.handleRandom)
	r.Get("/products/all", h.handleAll)
	r.Get("/products/category/{category}", h.handleByCategory)
}

func (h *Handler) handleRandom(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Random(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, product)
}

func (h *Handler) handleAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.All(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) handleByCategory(w http.ResponseWriter, r *http.Request) {
	matches, err := h.service.ByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, matches)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	httputil.WriteFailure(w, r, h.logger, "products", err)
}
