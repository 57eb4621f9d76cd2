package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	records := []Record{
		{ColQuestionID: "Q1", ColBaselineEvidence: "change tickets attached"},
		{ColQuestionID: "Q2", ColBaselineEvidence: "   "},
		{ColQuestionID: "Q3"},
		{ColQuestionID: "Q4", ColBaselineEvidence: nil},
		{ColQuestionID: "Q5", ColBaselineEvidence: 42.0},
	}

	issues := Validate(records)

	assert.Len(t, issues, 3)

	// rows are spreadsheet rows: header is row 1, data starts at 2
	assert.Equal(t, 3, issues[0].Row)
	assert.Equal(t, "Q2", issues[0].QuestionID)
	assert.Equal(t, "Missing Baseline Evidence", issues[0].Detail)
	assert.Equal(t, 4, issues[1].Row)
	assert.Equal(t, 5, issues[2].Row)
}

func TestValidateEmpty(t *testing.T) {
	assert.Empty(t, Validate(nil))
	assert.Empty(t, Validate([]Record{}))
}
