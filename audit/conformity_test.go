package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignLevel(t *testing.T) {
	tests := []struct {
		name        string
		observation string
		evidence    string
		want        string
	}{
		{
			name:        "blank observation",
			observation: "   ",
			evidence:    "access logs retained for 90 days",
			want:        NotApplicable,
		},
		{
			name:        "empty observation",
			observation: "",
			evidence:    "anything",
			want:        NotApplicable,
		},
		{
			name:        "blank evidence",
			observation: "reviewed firewall configuration",
			evidence:    "",
			want:        NoConformity,
		},
		{
			name:        "evidence contained in observation",
			observation: "we confirmed that MFA is enforced for all admins",
			evidence:    "mfa is enforced",
			want:        FullConformity,
		},
		{
			name:        "observation contained in evidence",
			observation: "encryption at rest",
			evidence:    "Encryption at rest is enabled on all volumes",
			want:        FullConformity,
		},
		{
			name:        "case insensitive containment",
			observation: "BACKUPS RUN NIGHTLY",
			evidence:    "backups run nightly",
			want:        FullConformity,
		},
		{
			name:        "three shared words",
			observation: "the vendor rotates access keys quarterly per policy",
			evidence:    "access keys rotated quarterly",
			want:        PartialConformity,
		},
		{
			name:        "short evidence fully overlapped",
			observation: "patching cadence monthly windows documented",
			evidence:    "monthly patching",
			want:        PartialConformity,
		},
		{
			name:        "no overlap",
			observation: "team uses slack for alerts",
			evidence:    "incident response runbook exists",
			want:        NoConformity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AssignLevel(tc.observation, tc.evidence))
		})
	}
}

func TestAssign(t *testing.T) {
	records := []Record{
		{ColQuestionID: "Q1", ColObservation: "mfa enforced for admins", ColBaselineEvidence: "mfa enforced"},
		{ColQuestionID: "Q2", ColObservation: "", ColBaselineEvidence: "logs retained"},
	}

	updated := Assign(records)

	assert.Len(t, updated, 2)
	assert.Equal(t, FullConformity, updated[0][ColConformityLevel])
	assert.Equal(t, NotApplicable, updated[1][ColConformityLevel])

	// inputs are untouched
	_, ok := records[0][ColConformityLevel]
	assert.False(t, ok)
}
