package hr

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/aprksy/jsonsvc/internal/platform/metrics"
	"github.com/aprksy/jsonsvc/internal/query"
	"github.com/aprksy/jsonsvc/internal/storage"
	dErrors "github.com/aprksy/jsonsvc/pkg/domain-errors"
)

const collectionName = "hr"

// Service serves the HR collections: employees, policies and payroll share
// one document.
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

// Employees returns the directory records matching filter. The name filter
// matches a substring of the full, first or last name. Zero matches is a
// NotFound for this endpoint.
func (s *Service) Employees(ctx context.Context, filter EmployeeFilter) (*EmployeeList, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	spec := &query.Spec{}
	if filter.EmployeeID != "" {
		spec.EqualExact("employee_id", filter.EmployeeID)
	}
	if filter.Name != "" {
		spec.Contains(filter.Name, "full_name", "first_name", "last_name")
	}
	if filter.Department != "" {
		spec.Equal("department", filter.Department)
	}
	if filter.Status != "" {
		spec.Equal("status", filter.Status)
	}
	matches := query.Apply(data.Employees, spec)
	if len(matches) == 0 {
		return nil, dErrors.New(dErrors.CodeNotFound, "no employees found matching criteria")
	}
	return &EmployeeList{Count: len(matches), Employees: matches}, nil
}

// EmployeeByID returns a single employee record.
func (s *Service) EmployeeByID(ctx context.Context, employeeID string) (Employee, error) {
	data, err := s.load(ctx)
	if err != nil {
		return Employee{}, err
	}
	for _, employee := range data.Employees {
		if employee.EmployeeID == employeeID {
			return employee, nil
		}
	}
	return Employee{}, dErrors.Newf(dErrors.CodeNotFound, "employee with ID %s not found", employeeID)
}

// Policies returns the matching policies grouped by type alongside the flat
// list. An empty match set is a valid response with count 0.
func (s *Service) Policies(ctx context.Context, filter PolicyFilter) (*PolicyList, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	spec := &query.Spec{}
	if filter.PolicyType != "" {
		spec.Equal("policy_type", filter.PolicyType)
	}
	if filter.Category != "" {
		spec.Equal("category", filter.Category)
	}
	matches := query.Apply(data.Policies, spec)
	byType := make(map[string][]Policy)
	for _, policy := range matches {
		byType[policy.PolicyType] = append(byType[policy.PolicyType], policy)
	}
	return &PolicyList{Count: len(matches), PoliciesByType: byType, AllPolicies: matches}, nil
}

// Payroll returns the matching payroll entries with net-pay totals grouped by
// department and period. An empty match set is a valid report with count 0.
func (s *Service) Payroll(ctx context.Context, filter PayrollFilter) (*PayrollReport, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	spec := &query.Spec{}
	if filter.EmployeeID != "" {
		spec.EqualExact("employee_id", filter.EmployeeID)
	}
	if filter.Period != "" {
		spec.EqualExact("period", filter.Period)
	}
	if filter.Department != "" {
		spec.Equal("department", filter.Department)
	}
	matches := query.Apply(data.Payroll, spec)
	byDepartment := query.Summarize(matches, []string{"department"}, []string{"net_pay"})
	byPeriod := query.Summarize(matches, []string{"period"}, []string{"net_pay"})
	return &PayrollReport{
		Count:               len(matches),
		TotalNetPay:         query.Sum(matches, "net_pay"),
		TotalBaseSalary:     query.Sum(matches, "base_salary"),
		TotalBonus:          query.Sum(matches, "bonus"),
		SummaryByDepartment: byDepartment.GroupTotals("net_pay"),
		SummaryByPeriod:     byPeriod.GroupTotals("net_pay"),
		PayrollEntries:      matches,
	}, nil
}

// Summary reports headcount breakdowns and payroll totals over the whole
// collection. Average salary is 0 when no payroll exists.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	byDepartment := query.Summarize(data.Employees, []string{"department"}, nil)
	byStatus := query.Summarize(data.Employees, []string{"status"}, nil)
	byLocation := query.Summarize(data.Employees, []string{"location"}, nil)
	totalPayroll := query.Sum(data.Payroll, "net_pay")
	avgSalary := query.Avg(data.Payroll, "net_pay")
	return &Summary{
		TotalEmployees:        len(data.Employees),
		DepartmentsSummary:    byDepartment.GroupCounts(),
		EmploymentStatus:      byStatus.GroupCounts(),
		LocationsSummary:      byLocation.GroupCounts(),
		TotalPayrollProcessed: totalPayroll,
		AverageSalary:         math.Round(avgSalary*100) / 100,
		TotalPayrollRecords:   len(data.Payroll),
	}, nil
}
