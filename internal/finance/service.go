package finance

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/aprksy/jsonsvc/internal/platform/metrics"
	"github.com/aprksy/jsonsvc/internal/query"
	"github.com/aprksy/jsonsvc/internal/storage"
	dErrors "github.com/aprksy/jsonsvc/pkg/domain-errors"
)

const collectionName = "financial"

// Service serves the financial collections. Budgets, expenses and revenues
// live in one document so they are generated and stored together.
type Service struct {
	store   storage.Store
	metrics *metrics.Metrics

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Service)

func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) load(ctx context.Context) (Data, error) {
	var data Data
	found, err := s.store.Load(ctx, collectionName, &data)
	if err != nil {
		return Data{}, err
	}
	if !found {
		s.mu.Lock()
		data = generateData(s.rng)
		s.mu.Unlock()
		if err := s.store.Save(ctx, collectionName, data); err != nil {
			return Data{}, err
		}
		s.metrics.IncrementCollectionsGenerated(collectionName)
	}
	return data, nil
}

// Budgets returns the budget lines matching filter. Department matches
// case-insensitively, project_id exactly. Zero matches is a NotFound for this
// endpoint.
func (s *Service) Budgets(ctx context.Context, filter BudgetFilter) (*BudgetList, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	spec := &query.Spec{}
	if filter.Department != "" {
		spec.Equal("department", filter.Department)
	}
	if filter.ProjectID != "" {
		spec.EqualExact("project_id", filter.ProjectID)
	}
	if filter.FiscalYear != nil {
		spec.EqualInt("fiscal_year", *filter.FiscalYear)
	}
	matches := query.Apply(data.Budgets, spec)
	if len(matches) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no budget data found matching criteria")
	}
	return &BudgetList{Count: len(matches), Results: matches}, nil
}

// Expenses returns the matching expenses together with their grouped totals.
// An empty match set is a valid report with count 0, never an error.
func (s *Service) Expenses(ctx context.Context, filter ExpenseFilter) (*ExpenseReport, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	spec := &query.Spec{}
	if filter.Department != "" {
		spec.Equal("department", filter.Department)
	}
	if filter.DateFrom != "" {
		if err := spec.DateFrom("date", filter.DateFrom); err != nil {
			return nil, err
		}
	}
	if filter.DateTo != "" {
		if err := spec.DateTo("date", filter.DateTo); err != nil {
			return nil, err
		}
	}
	matches := query.Apply(data.Expenses, spec)
	byCategory := query.Summarize(matches, []string{"category"}, []string{"amount"})
	byDepartment := query.Summarize(matches, []string{"department"}, []string{"amount"})
	return &ExpenseReport{
		Count:               len(matches),
		TotalAmount:         query.Sum(matches, "amount"),
		SummaryByCategory:   byCategory.GroupTotals("amount"),
		SummaryByDepartment: byDepartment.GroupTotals("amount"),
		Expenses:            matches,
	}, nil
}

// Revenues returns the matching revenue records with period and department
// totals. Zero matches is a NotFound for this endpoint.
func (s *Service) Revenues(ctx context.Context, filter RevenueFilter) (*RevenueReport, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	spec := &query.Spec{}
	if filter.Department != "" {
		spec.Equal("department", filter.Department)
	}
	if filter.ProjectID != "" {
		spec.EqualExact("project_id", filter.ProjectID)
	}
	if filter.Period != "" {
		spec.Equal("period", filter.Period)
	}
	matches := query.Apply(data.Revenues, spec)
	if len(matches) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no revenue data found matching criteria")
	}
	byPeriod := query.Summarize(matches, []string{"period"}, []string{"revenue_amount"})
	byDepartment := query.Summarize(matches, []string{"department"}, []string{"revenue_amount"})
	return &RevenueReport{
		Count:               len(matches),
		TotalRevenue:        query.Sum(matches, "revenue_amount"),
		SummaryByPeriod:     byPeriod.GroupTotals("revenue_amount"),
		SummaryByDepartment: byDepartment.GroupTotals("revenue_amount"),
		Revenues:            matches,
	}, nil
}

// Summary totals every collection. Budget utilization is expenses over
// allocated budget as a percentage, 0 when no budget exists.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	totalBudget := query.Sum(data.Budgets, "allocated_budget")
	totalExpenses := query.Sum(data.Expenses, "amount")
	totalRevenue := query.Sum(data.Revenues, "revenue_amount")
	utilization := 0.0
	if totalBudget > 0 {
		utilization = totalExpenses / totalBudget * 100
	}
	return &Summary{
		TotalBudget:       totalBudget,
		TotalExpenses:     totalExpenses,
		TotalRevenue:      totalRevenue,
		NetIncome:         totalRevenue - totalExpenses,
		BudgetUtilization: utilization,
	}, nil
}
