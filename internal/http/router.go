// Package httpapi assembles the full HTTP surface. It stays thin: middleware
// chain, the root index, metrics, and whatever each domain handler registers.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aprksy/jsonsvc/internal/platform/metrics"
	"github.com/aprksy/jsonsvc/internal/platform/middleware"
	"github.com/aprksy/jsonsvc/pkg/platform/httputil"
)

// Registrar is implemented by every domain handler.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter builds the chi router with the standard middleware chain and
// mounts each handler. gatherer serves /metrics; pass the same registry the
// metrics were built with.
func NewRouter(logger *slog.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Latency(m))

	r.Get("/", handleIndex)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	for _, h := range handlers {
		h.Register(r)
	}
	return r
}

type indexResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, indexResponse{
		Message: "Dummy JSON Server is running!",
		Endpoints: []string{
			"/users/random",
			"/products/random",
			"/orders/random",
		},
	})
}
