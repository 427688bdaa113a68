package query

import (
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "github.com/aprksy/jsonsvc/pkg/domain-errors"
)

// testRecord keeps filter tests independent of any one domain's structs.
// Nil values read as absent, matching how domain models expose nullable
// fields.
type testRecord map[string]any

func (r testRecord) Field(name string) (any, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

type FilterSuite struct {
	suite.Suite
}

func TestFilterSuite(t *testing.T) {
	suite.Run(t, new(FilterSuite))
}

func (s *FilterSuite) orders() []testRecord {
	return []testRecord{
		{"id": 1, "user_id": 1, "total": 150.99, "status": "completed"},
		{"id": 2, "user_id": 1, "total": 45.50, "status": "shipped"},
		{"id": 3, "user_id": 2, "total": 299.99, "status": "processing"},
	}
}

func (s *FilterSuite) TestEmptySpecReturnsCollectionUnchanged() {
	orders := s.orders()

	out := Apply(orders, &Spec{})
	s.Equal(orders, out)

	out = Apply(orders, (*Spec)(nil))
	s.Equal(orders, out)
}

func (s *FilterSuite) TestEqualIntPreservesOrder() {
	spec := &Spec{}
	spec.EqualInt("user_id", 1)

	out := Apply(s.orders(), spec)
	s.Require().Len(out, 2)
	s.Equal(1, out[0]["id"])
	s.Equal(2, out[1]["id"])
}

func (s *FilterSuite) TestEqualIsCaseInsensitive() {
	spec := &Spec{}
	spec.Equal("status", "COMPLETED")

	out := Apply(s.orders(), spec)
	s.Require().Len(out, 1)
	s.Equal(1, out[0]["id"])
}

func (s *FilterSuite) TestEqualExactIsCaseSensitive() {
	records := []testRecord{
		{"project_id": "PROJ-001"},
		{"project_id": "proj-001"},
	}

	spec := &Spec{}
	spec.EqualExact("project_id", "PROJ-001")

	out := Apply(records, spec)
	s.Require().Len(out, 1)
	s.Equal("PROJ-001", out[0]["project_id"])
}

func (s *FilterSuite) TestContainsMatchesAnyDesignatedField() {
	employees := []testRecord{
		{"full_name": "John Doe", "first_name": "John", "last_name": "Doe"},
		{"full_name": "Jane Smith", "first_name": "Jane", "last_name": "Smith"},
		{"full_name": "Bob Johnson", "first_name": "Bob", "last_name": "Johnson"},
	}

	spec := &Spec{}
	spec.Contains("john", "full_name", "first_name", "last_name")

	out := Apply(employees, spec)
	s.Require().Len(out, 2)
	s.Equal("John Doe", out[0]["full_name"])
	s.Equal("Bob Johnson", out[1]["full_name"])
}

func (s *FilterSuite) TestDateRangeInclusiveBounds() {
	expenses := []testRecord{
		{"id": 1, "date": "2023-06-01"},
		{"id": 2, "date": "2023-07-01"},
		{"id": 3, "date": "2024-01-01"},
	}

	spec := &Spec{}
	s.Require().NoError(spec.DateFrom("date", "2023-06-15"))
	s.Require().NoError(spec.DateTo("date", "2023-12-31"))

	out := Apply(expenses, spec)
	s.Require().Len(out, 1)
	s.Equal(2, out[0]["id"])
}

func (s *FilterSuite) TestDateRangeBoundaryDatesMatch() {
	expenses := []testRecord{
		{"id": 1, "date": "2023-06-15"},
		{"id": 2, "date": "2023-12-31"},
	}

	spec := &Spec{}
	s.Require().NoError(spec.DateFrom("date", "2023-06-15"))
	s.Require().NoError(spec.DateTo("date", "2023-12-31"))

	s.Len(Apply(expenses, spec), 2)
}

func (s *FilterSuite) TestMalformedDateBoundFails() {
	spec := &Spec{}

	err := spec.DateFrom("date", "not-a-date")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))

	err = spec.DateTo("date", "2023-13-45")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *FilterSuite) TestNullSafeFieldAccess() {
	records := []testRecord{
		{"id": 1, "project_id": "REV-001", "date": "2024-01-10"},
		{"id": 2, "project_id": nil, "date": nil},
		{"id": 3},
	}

	s.Run("equality treats missing as non-matching", func() {
		spec := &Spec{}
		spec.EqualExact("project_id", "REV-001")
		out := Apply(records, spec)
		s.Require().Len(out, 1)
		s.Equal(1, out[0]["id"])
	})

	s.Run("containment treats missing as non-matching", func() {
		spec := &Spec{}
		spec.Contains("rev", "project_id")
		out := Apply(records, spec)
		s.Require().Len(out, 1)
	})

	s.Run("range drops records without a parseable date", func() {
		spec := &Spec{}
		s.Require().NoError(spec.DateFrom("date", "2024-01-01"))
		out := Apply(records, spec)
		s.Require().Len(out, 1)
		s.Equal(1, out[0]["id"])
	})
}

func (s *FilterSuite) TestFilterCompositionOnDisjointFields() {
	records := []testRecord{
		{"department": "Engineering", "status": "Approved", "id": 1},
		{"department": "Engineering", "status": "Pending", "id": 2},
		{"department": "Sales", "status": "Approved", "id": 3},
	}

	dept := &Spec{}
	dept.Equal("department", "engineering")
	status := &Spec{}
	status.Equal("status", "approved")

	both := &Spec{}
	both.Equal("department", "engineering")
	both.Equal("status", "approved")

	chained := Apply(Apply(records, dept), status)
	combined := Apply(records, both)
	s.Equal(combined, chained)
	s.Require().Len(combined, 1)
	s.Equal(1, combined[0]["id"])
}

func (s *FilterSuite) TestResultIsSubsequence() {
	records := s.orders()
	spec := &Spec{}
	spec.EqualInt("user_id", 1)
	out := Apply(records, spec)

	// every output record appears in the input, in the same relative order
	i := 0
	for _, rec := range records {
		if i < len(out) && rec["id"] == out[i]["id"] {
			i++
		}
	}
	s.Equal(len(out), i)
}
