package httpapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"github.com/aprksy/jsonsvc/internal/platform/metrics"
	"github.com/aprksy/jsonsvc/internal/storage"
	"github.com/aprksy/jsonsvc/internal/users"
)

type RouterSuite struct {
	suite.Suite
	router http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	svc := users.NewService(storage.NewMemoryStore(), users.WithRand(rand.New(rand.NewSource(1))))
	s.router = NewRouter(logger, m, registry, users.NewHandler(svc, logger))
}

func (s *RouterSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) TestIndex() {
	rec := s.get("/")
	s.Require().Equal(http.StatusOK, rec.Code)
	var got indexResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
	s.Equal("Dummy JSON Server is running!", got.Message)
	s.Contains(got.Endpoints, "/users/random")
}

func (s *RouterSuite) TestMountedHandlersServeThroughTheChain() {
	rec := s.get("/users/all")
	s.Require().Equal(http.StatusOK, rec.Code)

	// The latency middleware saw the request, so the histogram is populated.
	metricsRec := s.get("/metrics")
	s.Require().Equal(http.StatusOK, metricsRec.Code)
	s.Contains(metricsRec.Body.String(), "jsonsvc_request_duration_seconds")
	s.Contains(metricsRec.Body.String(), "jsonsvc_collections_generated_total")
}

func (s *RouterSuite) TestUnknownRouteIs404() {
	s.Equal(http.StatusNotFound, s.get("/nope").Code)
}
