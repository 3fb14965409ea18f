package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleRequirement_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RoleRequirement
		wantErr bool
	}{
		{
			name: "valid full requirement",
			req: RoleRequirement{
				SkillName: "Backend Engineer", Level: LevelSenior, Urgency: UrgencyImmediate,
				DurationMonths: 12, WorkloadPercent: 100, BusinessImpact: ImpactHigh,
			},
		},
		{
			name: "valid minimal requirement",
			req: RoleRequirement{
				SkillName: "QA Engineer", Level: LevelJunior, DurationMonths: 6,
			},
		},
		{
			name:    "missing skill name",
			req:     RoleRequirement{Level: LevelSenior, DurationMonths: 12},
			wantErr: true,
		},
		{
			name:    "unknown level",
			req:     RoleRequirement{SkillName: "x", Level: "principal", DurationMonths: 12},
			wantErr: true,
		},
		{
			name:    "unknown urgency",
			req:     RoleRequirement{SkillName: "x", Level: LevelSenior, Urgency: "yesterday", DurationMonths: 12},
			wantErr: true,
		},
		{
			name:    "zero duration",
			req:     RoleRequirement{SkillName: "x", Level: LevelSenior, DurationMonths: 0},
			wantErr: true,
		},
		{
			name:    "workload above 100",
			req:     RoleRequirement{SkillName: "x", Level: LevelSenior, DurationMonths: 12, WorkloadPercent: 120},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoleRequirement_Normalized(t *testing.T) {
	req := RoleRequirement{
		SkillName:      "Backend Engineer",
		Level:          LevelSenior,
		DurationMonths: 12,
	}

	norm := req.Normalized()
	assert.Equal(t, UrgencyLongTerm, norm.Urgency)
	assert.Equal(t, ImpactMedium, norm.BusinessImpact)

	// Original is untouched.
	assert.Empty(t, req.Urgency)

	// Explicit values survive normalization.
	explicit := RoleRequirement{
		SkillName: "x", Level: LevelJunior, Urgency: UrgencyImmediate,
		DurationMonths: 3, WorkloadPercent: 50, BusinessImpact: ImpactLow,
	}
	assert.Equal(t, explicit, explicit.Normalized())
}

func TestRoleRequirement_UnmarshalJSON_WorkloadDefault(t *testing.T) {
	tests := []struct {
		name         string
		json         string
		wantWorkload int
	}{
		{
			name:         "absent workload means full time",
			json:         `{"skill_name":"Backend Engineer","level":"senior","duration_months":12}`,
			wantWorkload: 100,
		},
		{
			name:         "explicit zero workload is kept",
			json:         `{"skill_name":"Backend Engineer","level":"senior","duration_months":12,"workload_percent":0}`,
			wantWorkload: 0,
		},
		{
			name:         "explicit partial workload is kept",
			json:         `{"skill_name":"Backend Engineer","level":"senior","duration_months":12,"workload_percent":60}`,
			wantWorkload: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req RoleRequirement
			require.NoError(t, json.Unmarshal([]byte(tt.json), &req))
			assert.Equal(t, tt.wantWorkload, req.WorkloadPercent)
			assert.Equal(t, "Backend Engineer", req.SkillName)
			assert.Equal(t, LevelSenior, req.Level)
		})
	}
}

func TestRoleRequirement_JSONFieldNames(t *testing.T) {
	req := RoleRequirement{
		SkillName: "Backend Engineer", Level: LevelSenior, Urgency: UrgencyShortTerm,
		DurationMonths: 12, WorkloadPercent: 80, BusinessImpact: ImpactCritical,
	}

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"skill_name", "level", "urgency", "duration_months", "workload_percent", "business_impact"} {
		assert.Contains(t, decoded, key)
	}
}

func TestRankedOptions_RecommendedOption(t *testing.T) {
	empty := &RankedOptions{}
	assert.Nil(t, empty.RecommendedOption())

	ranked := &RankedOptions{
		Options: []RankedOption{
			{ContractOption: ContractOption{Type: ContractExchangeProgram}, TotalProjectCost: 100, Recommended: true},
			{ContractOption: ContractOption{Type: ContractPermanent}, TotalProjectCost: 200},
		},
	}
	got := ranked.RecommendedOption()
	require.NotNil(t, got)
	assert.Equal(t, ContractExchangeProgram, got.Type)
	assert.True(t, got.Recommended)
}
