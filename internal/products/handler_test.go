package products

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"github.com/aprksy/jsonsvc/internal/storage"
)

type ProductsHandlerSuite struct {
	suite.Suite
	router http.Handler
}

func TestProductsHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductsHandlerSuite))
}

func (s *ProductsHandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := NewService(storage.NewMemoryStore(), WithRand(rand.New(rand.NewSource(1))))
	r := chi.NewRouter()
	NewHandler(svc, logger).Register(r)
	s.router = r
}

func (s *ProductsHandlerSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ProductsHandlerSuite) TestAll() {
	rec := s.get("/products/all")
	s.Require().Equal(http.StatusOK, rec.Code)
	var got []Product
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
	s.Len(got, 5)
}

func (s *ProductsHandlerSuite) TestByCategory() {
	s.Run("matches case-insensitively", func() {
		rec := s.get("/products/category/ELECTRONICS")
		s.Require().Equal(http.StatusOK, rec.Code)
		var got []Product
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
		s.Require().Len(got, 3)
		for _, p := range got {
			s.Equal("electronics", p.Category)
		}
	})

	s.Run("unknown category is 404", func() {
		rec := s.get("/products/category/furniture")
		s.Require().Equal(http.StatusNotFound, rec.Code)
		var body map[string]string
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
		s.Equal("not_found", body["error"])
		s.Equal("no products found in category 'furniture'", body["message"])
	})
}

func (s *ProductsHandlerSuite) TestRandomReturnsSeededRecord() {
	rec := s.get("/products/random")
	s.Require().Equal(http.StatusOK, rec.Code)
	var got Product
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
	s.Contains(seedProducts(), got)
}
