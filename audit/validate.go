package audit

import "strings"

// Issue flags a record that fails validation. Row is the 1-based
// spreadsheet row; data rows start at 2 because row 1 is the header.
type Issue struct {
	Row        int    `json:"row"`
	QuestionID any    `json:"Question ID"`
	Detail     string `json:"issue"`
}

// Validate reports every record with missing or blank baseline evidence.
func Validate(records []Record) []Issue {
	issues := []Issue{}
	for idx, rec := range records {
		if hasText(rec[ColBaselineEvidence]) {
			continue
		}
		issues = append(issues, Issue{
			Row:        idx + 2,
			QuestionID: rec[ColQuestionID],
			Detail:     "Missing Baseline Evidence",
		})
	}
	return issues
}

func hasText(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return len(strings.TrimSpace(x)) > 0
	default:
		return true
	}
}
