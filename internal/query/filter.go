package query

import (
	"strings"
	"time"

	dErrors "github.com/aprksy/jsonsvc/pkg/domain-errors"
)

// dateLayout is the wire format for record dates and range bounds.
const dateLayout = "2006-01-02"

// Spec is an ordered set of conjunctive predicates. A record is retained only
// if every predicate matches. The zero value matches everything.
type Spec struct {
	preds []func(Record) bool
}

// IsEmpty reports whether the spec constrains anything.
func (s *Spec) IsEmpty() bool {
	return s == nil || len(s.preds) == 0
}

func (s *Spec) matches(rec Record) bool {
	for _, pred := range s.preds {
		if !pred(rec) {
			return false
		}
	}
	return true
}

// Equal adds a case-insensitive string equality predicate on field.
func (s *Spec) Equal(field, want string) {
	s.preds = append(s.preds, func(rec Record) bool {
		v, ok := rec.Field(field)
		if !ok {
			return false
		}
		sv, ok := stringValue(v)
		return ok && strings.EqualFold(sv, want)
	})
}

// EqualExact adds a case-sensitive string equality predicate on field.
// Project IDs and employee IDs match this way.
func (s *Spec) EqualExact(field, want string) {
	s.preds = append(s.preds, func(rec Record) bool {
		v, ok := rec.Field(field)
		if !ok {
			return false
		}
		sv, ok := stringValue(v)
		return ok && sv == want
	})
}

// EqualInt adds an integer equality predicate on field.
func (s *Spec) EqualInt(field string, want int) {
	s.preds = append(s.preds, func(rec Record) bool {
		v, ok := rec.Field(field)
		if !ok {
			return false
		}
		n, ok := numberValue(v)
		return ok && n == float64(want)
	})
}

// Contains adds a case-insensitive substring predicate. A record matches if
// any of the named fields contains term; the fields are OR'd within this one
// constraint.
func (s *Spec) Contains(term string, fields ...string) {
	lowered := strings.ToLower(term)
	s.preds = append(s.preds, func(rec Record) bool {
		for _, field := range fields {
			v, ok := rec.Field(field)
			if !ok {
				continue
			}
			if sv, ok := stringValue(v); ok && strings.Contains(strings.ToLower(sv), lowered) {
				return true
			}
		}
		return false
	})
}

// DateFrom adds an inclusive lower date bound on field. A malformed bound is
// the caller's fault and fails immediately; a record whose date is missing or
// unparseable simply does not match.
func (s *Spec) DateFrom(field, bound string) error {
	t, err := time.Parse(dateLayout, bound)
	if err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "invalid date_from format, use YYYY-MM-DD")
	}
	s.preds = append(s.preds, dateBound(field, func(d time.Time) bool { return !d.Before(t) }))
	return nil
}

// DateTo adds an inclusive upper date bound on field.
func (s *Spec) DateTo(field, bound string) error {
	t, err := time.Parse(dateLayout, bound)
	if err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "invalid date_to format, use YYYY-MM-DD")
	}
	s.preds = append(s.preds, dateBound(field, func(d time.Time) bool { return !d.After(t) }))
	return nil
}

func dateBound(field string, within func(time.Time) bool) func(Record) bool {
	return func(rec Record) bool {
		v, ok := rec.Field(field)
		if !ok {
			return false
		}
		sv, ok := stringValue(v)
		if !ok {
			return false
		}
		d, err := time.Parse(dateLayout, sv)
		if err != nil {
			return false
		}
		return within(d)
	}
}

// Apply returns the subsequence of records matching every predicate in spec,
// preserving the original relative order. Zero matches is a valid empty
// result, never an error; the endpoint adapters decide whether empty means
// 404 for their domain.
func Apply[T Record](records []T, spec *Spec) []T {
	if spec.IsEmpty() {
		return records
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if spec.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}
