package audit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	records := []Record{
		{ColConformityLevel: FullConformity},
		{ColConformityLevel: FullConformity},
		{ColConformityLevel: PartialConformity},
		{}, // no level counts as N/A
	}

	summary := Summarize(records)

	assert.Equal(t, LevelStat{Count: 2, Percentage: 50.0}, summary[FullConformity])
	assert.Equal(t, LevelStat{Count: 1, Percentage: 25.0}, summary[PartialConformity])
	assert.Equal(t, LevelStat{Count: 1, Percentage: 25.0}, summary[NotApplicable])
}

func TestSummarizeRounding(t *testing.T) {
	records := []Record{
		{ColConformityLevel: FullConformity},
		{ColConformityLevel: NoConformity},
		{ColConformityLevel: NoConformity},
	}

	summary := Summarize(records)

	assert.Equal(t, 33.33, summary[FullConformity].Percentage)
	assert.Equal(t, 66.67, summary[NoConformity].Percentage)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}

func TestCleanNaN(t *testing.T) {
	records := []Record{
		{"Score": math.NaN(), "Name": "Q1", "Ratio": math.Inf(1)},
	}

	cleaned := CleanRecords(records)

	assert.Nil(t, cleaned[0]["Score"])
	assert.Nil(t, cleaned[0]["Ratio"])
	assert.Equal(t, "Q1", cleaned[0]["Name"])
}
