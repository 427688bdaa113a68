// Package query is the shared filter and aggregation layer the domain
// endpoints run over their record collections. Filters are conjunctive
// predicate chains applied in a single order-preserving pass; aggregation is
// grouped summation with derived counts and averages.
package query

// Record gives the filter and aggregation passes uniform access to domain
// struct fields by name. Implementations return ok=false for fields that are
// absent or null; the engine treats those as non-matching rather than
// erroring.
type Record interface {
	Field(name string) (any, bool)
}

// stringValue coerces a field value to a string for equality and containment
// checks.
func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// numberValue coerces a field value to a float64 for summation. JSON decoding
// and the generators produce int and float64; everything else contributes
// nothing.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
