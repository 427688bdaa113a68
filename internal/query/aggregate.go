package query

import "strings"

// UnknownGroup is the bucket for records missing a group-by field. Such
// records are still counted, never dropped.
const UnknownGroup = "unknown"

// keySeparator joins multi-field group keys. Every real endpoint groups by a
// single field, so keys are usually the raw field value.
const keySeparator = "|"

// Summary holds grouped totals in first-seen group order.
type Summary struct {
	order  []string
	counts map[string]int
	totals map[string]map[string]float64
}

// Summarize groups records by the tuple of groupFields values and keeps a
// running total of each sumFields value per group. Non-numeric or missing sum
// values contribute zero; the record still counts toward its group.
func Summarize[T Record](records []T, groupFields, sumFields []string) *Summary {
	s := &Summary{
		counts: make(map[string]int),
		totals: make(map[string]map[string]float64),
	}
	for _, rec := range records {
		key := groupKey(rec, groupFields)
		if _, seen := s.counts[key]; !seen {
			s.order = append(s.order, key)
			s.totals[key] = make(map[string]float64, len(sumFields))
		}
		s.counts[key]++
		for _, field := range sumFields {
			if v, ok := rec.Field(field); ok {
				if n, ok := numberValue(v); ok {
					s.totals[key][field] += n
				}
			}
		}
	}
	return s
}

func groupKey(rec Record, groupFields []string) string {
	parts := make([]string, len(groupFields))
	for i, field := range groupFields {
		parts[i] = UnknownGroup
		if v, ok := rec.Field(field); ok {
			if sv, ok := stringValue(v); ok {
				parts[i] = sv
			}
		}
	}
	return strings.Join(parts, keySeparator)
}

// Groups returns the group keys in first-seen order.
func (s *Summary) Groups() []string {
	return s.order
}

// Count returns the number of records that fell into group.
func (s *Summary) Count(group string) int {
	return s.counts[group]
}

// Total returns the summed value of sumField for group.
func (s *Summary) Total(group, sumField string) float64 {
	return s.totals[group][sumField]
}

// Average returns Total/Count for the group, and 0 when the group is empty
// or unknown. Division by zero cannot occur.
func (s *Summary) Average(group, sumField string) float64 {
	n := s.counts[group]
	if n == 0 {
		return 0
	}
	return s.totals[group][sumField] / float64(n)
}

// GrandTotal sums sumField across every group.
func (s *Summary) GrandTotal(sumField string) float64 {
	var total float64
	for _, key := range s.order {
		total += s.totals[key][sumField]
	}
	return total
}

// GroupTotals renders the per-group totals of one sum field as a map, the
// shape the summary response envelopes use.
func (s *Summary) GroupTotals(sumField string) map[string]float64 {
	out := make(map[string]float64, len(s.order))
	for _, key := range s.order {
		out[key] = s.totals[key][sumField]
	}
	return out
}

// GroupCounts renders per-group record counts as a map.
func (s *Summary) GroupCounts() map[string]int {
	out := make(map[string]int, len(s.order))
	for _, key := range s.order {
		out[key] = s.counts[key]
	}
	return out
}

// Sum totals one numeric field across records without grouping.
func Sum[T Record](records []T, field string) float64 {
	var total float64
	for _, rec := range records {
		if v, ok := rec.Field(field); ok {
			if n, ok := numberValue(v); ok {
				total += n
			}
		}
	}
	return total
}

// Avg averages one numeric field across records, 0 when records is empty.
func Avg[T Record](records []T, field string) float64 {
	if len(records) == 0 {
		return 0
	}
	return Sum(records, field) / float64(len(records))
}
