package audit

import "math"

// Column names recognized in an audit sheet.
const (
	ColQuestionID       = "Question ID"
	ColObservation      = "Observation"
	ColBaselineEvidence = "Baseline Evidence"
	ColConformityLevel  = "Conformity Level"
)

// Record is one row of an audit sheet, keyed by column name.
type Record map[string]any

func (r Record) Copy() Record {
	cpy := make(Record, len(r))
	for k, v := range r {
		cpy[k] = v
	}
	return cpy
}

// String returns the named cell as a string, or "" when the cell is
// absent or not text.
func (r Record) String(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Clean walks a value and replaces anything encoding/json would choke
// on. NaN and infinite floats become nil, matching how the audit sheet
// rows are serialized everywhere else in the system.
func Clean(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = Clean(val)
		}
		return out
	case Record:
		out := make(Record, len(x))
		for k, val := range x {
			out[k] = Clean(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = Clean(val)
		}
		return out
	case []Record:
		out := make([]Record, len(x))
		for i, rec := range x {
			out[i] = Clean(rec).(Record)
		}
		return out
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
		return x
	case float32:
		return Clean(float64(x))
	default:
		return v
	}
}

// CleanRecords is Clean applied to a slice of records.
func CleanRecords(records []Record) []Record {
	return Clean(records).([]Record)
}
