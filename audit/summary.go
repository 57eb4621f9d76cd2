package audit

import "math"

// LevelStat is the per-level slice of a findings summary.
type LevelStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Summarize counts records per conformity level. Records without a
// level fall under N/A. Percentages are rounded to two decimal places.
func Summarize(records []Record) map[string]LevelStat {
	counts := map[string]int{}
	total := len(records)

	for _, rec := range records {
		lvl, ok := rec[ColConformityLevel].(string)
		if !ok || len(lvl) == 0 {
			lvl = NotApplicable
		}
		counts[lvl]++
	}

	summary := make(map[string]LevelStat, len(counts))
	for lvl, cnt := range counts {
		pct := 0.0
		if total > 0 {
			pct = math.Round(float64(cnt)/float64(total)*100*100) / 100
		}
		summary[lvl] = LevelStat{Count: cnt, Percentage: pct}
	}

	return summary
}
