package upstream

import (
	"testing"

	"github.com/jonathan/staffing-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestToRequirement_AllFieldsPresent(t *testing.T) {
	rec := types.RecruitmentRecommendation{
		SkillName:      "SAP Basis Administrator",
		Level:          "expert",
		Urgency:        "immediate",
		DurationMonths: intPtr(9),
		WorkloadPct:    intPtr(80),
		BusinessImpact: "critical",
	}

	req := ToRequirement(rec)
	assert.Equal(t, "SAP Basis Administrator", req.SkillName)
	assert.Equal(t, types.LevelExpert, req.Level)
	assert.Equal(t, types.UrgencyImmediate, req.Urgency)
	assert.Equal(t, 9, req.DurationMonths)
	assert.Equal(t, 80, req.WorkloadPercent)
	assert.Equal(t, types.ImpactCritical, req.BusinessImpact)
}

func TestToRequirement_AppliesDefaults(t *testing.T) {
	req := ToRequirement(types.RecruitmentRecommendation{SkillName: "Analyst"})

	assert.Equal(t, types.LevelMidLevel, req.Level)
	// Absent urgency must be treated as not-immediate.
	assert.Equal(t, types.UrgencyLongTerm, req.Urgency)
	assert.Equal(t, defaultDurationMonths, req.DurationMonths)
	assert.Equal(t, defaultWorkloadPercent, req.WorkloadPercent)
	assert.Equal(t, types.ImpactMedium, req.BusinessImpact)
}

func TestNormalizeLevel_SpellingVariants(t *testing.T) {
	tests := []struct {
		raw  string
		want types.SeniorityLevel
	}{
		{"junior", types.LevelJunior},
		{"Mid-Level", types.LevelMidLevel},
		{"mid level", types.LevelMidLevel},
		{"MIDLEVEL", types.LevelMidLevel},
		{"intermediate", types.LevelMidLevel},
		{"Senior", types.LevelSenior},
		{"expert", types.LevelExpert},
		{"principal", types.LevelExpert},
		{"", types.LevelMidLevel},
		{"wizard", types.LevelMidLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeLevel(tt.raw), "raw=%q", tt.raw)
	}
}

func TestNormalizeUrgency_SpellingVariants(t *testing.T) {
	assert.Equal(t, types.UrgencyImmediate, normalizeUrgency("Immediate"))
	assert.Equal(t, types.UrgencyImmediate, normalizeUrgency("urgent"))
	assert.Equal(t, types.UrgencyShortTerm, normalizeUrgency("short-term"))
	assert.Equal(t, types.UrgencyShortTerm, normalizeUrgency("Short Term"))
	assert.Equal(t, types.UrgencyLongTerm, normalizeUrgency("long_term"))
	assert.Equal(t, types.UrgencyLongTerm, normalizeUrgency(""))
}

func TestToRequirements(t *testing.T) {
	response := &types.RecommendationsResponse{
		Recommendations: []types.RecruitmentRecommendation{
			{SkillName: "A", Level: "senior"},
			{SkillName: "B", Level: "junior", DurationMonths: intPtr(3)},
		},
	}

	reqs := ToRequirements(response)
	require.Len(t, reqs, 2)
	assert.Equal(t, types.LevelSenior, reqs[0].Level)
	assert.Equal(t, 3, reqs[1].DurationMonths)

	assert.Nil(t, ToRequirements(nil))
}

func TestConvertedRequirementsPassValidation(t *testing.T) {
	// A minimal backend record must convert into a requirement the
	// optimizer accepts without further fixup.
	req := ToRequirement(types.RecruitmentRecommendation{SkillName: "Tester"})
	assert.NoError(t, req.Validate())
}
