package audit

import "strings"

// Conformity levels assigned to audit records.
const (
	FullConformity    = "Full Conformity"
	PartialConformity = "Partial Conformity"
	NoConformity      = "No Conformity"
	NotApplicable     = "N/A"
)

// AssignLevel compares an observation against its baseline evidence and
// returns a conformity level. The comparison is rule-based: containment
// either way is full conformity, enough shared words is partial.
func AssignLevel(observation string, baselineEvidence string) string {
	if len(strings.TrimSpace(observation)) == 0 {
		return NotApplicable
	}
	if len(strings.TrimSpace(baselineEvidence)) == 0 {
		return NoConformity
	}

	obs := strings.ToLower(strings.TrimSpace(observation))
	base := strings.ToLower(strings.TrimSpace(baselineEvidence))

	if strings.Contains(obs, base) || strings.Contains(base, obs) {
		return FullConformity
	}

	obsWords := wordSet(obs)
	baseWords := wordSet(base)

	overlap := 0
	for w := range baseWords {
		if obsWords[w] {
			overlap++
		}
	}

	threshold := len(baseWords)
	if threshold > 3 {
		threshold = 3
	}
	if overlap > 0 && overlap >= threshold {
		return PartialConformity
	}

	return NoConformity
}

// Assign sets the conformity level on a copy of every record.
func Assign(records []Record) []Record {
	updated := make([]Record, 0, len(records))
	for _, rec := range records {
		cpy := rec.Copy()
		cpy[ColConformityLevel] = AssignLevel(rec.String(ColObservation), rec.String(ColBaselineEvidence))
		updated = append(updated, cpy)
	}
	return CleanRecords(updated)
}

func wordSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}
