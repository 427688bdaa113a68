package finance

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

const testAPIKey = "fin_test_key"

type FinanceHandlerSuite struct {
	suite.Suite
	router http.Handler
}

func TestFinanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(FinanceHandlerSuite))
}

func (s *FinanceHandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc := NewService(storage.NewMemoryStore(), WithRand(rand.New(rand.NewSource(1))))
	r := chi.NewRouter()
	NewHandler(svc, logger, []string{testAPIKey}).Register(r)
	s.router = r
}

func (s *FinanceHandlerSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(APIKeyHeader, testAPIKey)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *FinanceHandlerSuite) TestRequiresAPIKey() {
	req := httptest.NewRequest(http.MethodGet, "/finance/budgets", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusUnauthorized, rec.Code)
	var body map[string]string
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
	s.Equal("unauthorized", body["error"])

	s.Run("wrong header name is rejected too", func() {
		req := httptest.NewRequest(http.MethodGet, "/finance/budgets", nil)
		req.Header.Set("X-API-Key", testAPIKey)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *FinanceHandlerSuite) TestBudgets() {
	s.Run("unfiltered returns every line", func() {
		rec := s.get("/finance/budgets")
		s.Require().Equal(http.StatusOK, rec.Code)
		var got BudgetList
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
		s.Equal(72, got.Count)
		s.Len(got.Results, 72)
	})

	s.Run("department filter is case-insensitive", func() {
		rec := s.get("/finance/budgets?department=engineering")
		s.Require().Equal(http.StatusOK, rec.Code)
		var got BudgetList
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
		s.Equal(12, got.Count)
		for _, b := range got.Results {
			s.Equal("Engineering", b.Department)
		}
	})

	s.Run("fiscal year filter", func() {
		rec := s.get("/finance/budgets?fiscal_year=2024")
		s.Require().Equal(http.StatusOK, rec.Code)
		var got BudgetList
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
		s.Equal(24, got.Count)
	})

	s.Run("project id filter is exact", func() {
		rec := s.get("/finance/budgets?project_id=PROJ-001")
		s.Require().Equal(http.StatusOK, rec.Code)
		var got BudgetList
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
		s.Equal(1, got.Count)

		s.Equal(http.StatusNotFound, s.get("/finance/budgets?project_id=proj-001").Code)
	})

	s.Run("no match is 404", func() {
		rec := s.get("/finance/budgets?department=Astronomy")
		s.Require().Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("non-integer fiscal year is 400", func() {
		rec := s.get("/finance/budgets?fiscal_year=soon")
		s.Require().Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *FinanceHandlerSuite) TestExpenses() {
	s.Run("summaries agree with the record list", func() {
		rec := s.get("/finance/expenses")
		s.Require().Equal(http.StatusOK, rec.Code)
		var got ExpenseReport
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
		s.Equal(1000, got.Count)
		s.Len(got.Expenses, 1000)

		var byDept float64
		for _, v := range got.SummaryByDepartment {
			byDept += v
		}
		s.InDelta(got.TotalAmount, byDept, 0.01)

		var byCat float64
		for _, v := range got.SummaryByCategory {
			byCat += v
		}
		s.InDelta(got.TotalAmount, byCat, 0.01)
	})

	s.Run("date window narrows the report", func() {
		rec := s.get("/finance/expenses?date_from=2023-01-01&date_to=2023-12-31")
		s.Require().Equal(http.StatusOK, rec.Code)
		var got ExpenseReport
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
		s.Greater(got.Count, 0)
		s.Less(got.Count, 1000)
		for _, e := range got.Expenses {
			s.LessOrEqual(e.Date, "2023-12-31")
		}
	})

	s.Run("empty match is a valid report", func() {
		rec := s.get("/finance/expenses?department=Astronomy")
		s.Require().Equal(http.StatusOK, rec.Code)
		var got ExpenseReport
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
		s.Equal(0, got.Count)
		s.Zero(got.TotalAmount)
		s.Empty(got.SummaryByCategory)
		s.Empty(got.Expenses)
	})

	s.Run("malformed bound is 400", func() {
		rec := s.get("/finance/expenses?date_from=last-tuesday")
		s.Require().Equal(http.StatusBadRequest, rec.Code)
		var body map[string]string
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&body))
		s.Equal("invalid date_from format, use YYYY-MM-DD", body["message"])
	})
}

func (s *FinanceHandlerSuite) TestRevenues() {
	s.Run("unfiltered returns every record", func() {
		rec := s.get("/finance/revenues")
		s.Require().Equal(http.StatusOK, rec.Code)
		var got RevenueReport
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
		s.Equal(120, got.Count)

		var byPeriod float64
		for _, v := range got.SummaryByPeriod {
			byPeriod += v
		}
		s.InDelta(got.TotalRevenue, byPeriod, 0.01)
	})

	s.Run("period filter is case-insensitive", func() {
		rec := s.get("/finance/revenues?period=q1%202024")
		s.Require().Equal(http.StatusOK, rec.Code)
		var got RevenueReport
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
		s.Equal(20, got.Count)
	})

	s.Run("department filter", func() {
		rec := s.get("/finance/revenues?department=Sales")
		s.Require().Equal(http.StatusOK, rec.Code)
		var got RevenueReport
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
		s.Equal(30, got.Count)
	})

	s.Run("no match is 404", func() {
		rec := s.get("/finance/revenues?period=Q9%202099")
		s.Require().Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *FinanceHandlerSuite) TestSummary() {
	rec := s.get("/finance/summary")
	s.Require().Equal(http.StatusOK, rec.Code)
	var got Summary
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&got))
	s.Greater(got.TotalBudget, 0.0)
	s.InDelta(got.TotalRevenue-got.TotalExpenses, got.NetIncome, 0.01)
	s.InDelta(got.TotalExpenses/got.TotalBudget*100, got.BudgetUtilization, 0.01)
}
