package optimizer

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/staffing-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequirement() *types.RoleRequirement {
	return &types.RoleRequirement{
		SkillName:       "Backend Engineer",
		Level:           types.LevelSenior,
		Urgency:         types.UrgencyLongTerm,
		DurationMonths:  12,
		WorkloadPercent: 100,
		BusinessImpact:  types.ImpactHigh,
	}
}

func findOption(t *testing.T, result *types.RankedOptions, contractType types.ContractType) types.RankedOption {
	t.Helper()
	for _, option := range result.Options {
		if option.Type == contractType {
			return option
		}
	}
	t.Fatalf("option %s not found in result", contractType)
	return types.RankedOption{}
}

func TestComputeRankedOptions_Completeness(t *testing.T) {
	result, err := ComputeRankedOptions(validRequirement())
	require.NoError(t, err)
	require.Len(t, result.Options, 8)

	seen := make(map[types.ContractType]bool)
	for _, option := range result.Options {
		assert.False(t, seen[option.Type], "contract type %s appears twice", option.Type)
		seen[option.Type] = true
	}
}

func TestComputeRankedOptions_TotalOrdering(t *testing.T) {
	result, err := ComputeRankedOptions(validRequirement())
	require.NoError(t, err)

	for i := 0; i < len(result.Options)-1; i++ {
		assert.LessOrEqual(t,
			result.Options[i].TotalProjectCost,
			result.Options[i+1].TotalProjectCost,
			"options must be sorted ascending by total project cost")
	}
}

func TestComputeRankedOptions_RecommendedIsCheapest(t *testing.T) {
	result, err := ComputeRankedOptions(validRequirement())
	require.NoError(t, err)

	assert.True(t, result.Options[0].Recommended)
	for _, option := range result.Options[1:] {
		assert.False(t, option.Recommended)
	}

	recommended := result.RecommendedOption()
	require.NotNil(t, recommended)
	assert.Equal(t, result.Options[0].Type, recommended.Type)

	// For a senior, year-long, full-time, non-urgent need the exchange
	// program is the cheapest fully-loaded arrangement.
	assert.Equal(t, types.ContractExchangeProgram, recommended.Type)
}

func TestComputeRankedOptions_Determinism(t *testing.T) {
	req := validRequirement()

	first, err := ComputeRankedOptions(req)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := ComputeRankedOptions(req)
		require.NoError(t, err)
		assert.Equal(t, first, next, "repeated calls must return identical results")
	}
}

func TestComputeRankedOptions_MonthlyInvariant(t *testing.T) {
	result, err := ComputeRankedOptions(validRequirement())
	require.NoError(t, err)

	for _, option := range result.Options {
		assert.Equal(t,
			option.MonthlyBaseCost+option.BenefitsCost+option.SocialChargesCost,
			option.TotalMonthlyCost)
	}
}

func TestComputeRankedOptions_NoAdjustmentBoundary(t *testing.T) {
	// Senior, 24 months, long-term: permanent is past the short-project
	// threshold and nothing is immediate, so no multiplier applies to
	// permanent at all.
	req := &types.RoleRequirement{
		SkillName:       "Platform Engineer",
		Level:           types.LevelSenior,
		Urgency:         types.UrgencyLongTerm,
		DurationMonths:  24,
		WorkloadPercent: 100,
	}

	result, err := ComputeRankedOptions(req)
	require.NoError(t, err)

	permanent := findOption(t, result, types.ContractPermanent)
	assert.Equal(t, 1.0, permanent.RiskMultiplier)
	assert.Equal(t, 1.0, permanent.UrgencyMultiplier)

	for _, option := range result.Options {
		assert.Equal(t, 1.0, option.UrgencyMultiplier,
			"non-immediate urgency must never adjust %s", option.Type)
	}
}

func TestComputeRankedOptions_ImmediateConsultantDiscount(t *testing.T) {
	// Senior, 16 months, full time, immediate. The consultant gets the 0.90
	// fast-onboarding discount and, past 12 months, the 1.10 knowledge-loss
	// risk on top of it.
	req := &types.RoleRequirement{
		SkillName:       "Integration Lead",
		Level:           types.LevelSenior,
		Urgency:         types.UrgencyImmediate,
		DurationMonths:  16,
		WorkloadPercent: 100,
		BusinessImpact:  types.ImpactCritical,
	}

	result, err := ComputeRankedOptions(req)
	require.NoError(t, err)

	consultant := findOption(t, result, types.ContractConsultant)
	assert.Equal(t, 0.90, consultant.UrgencyMultiplier)
	assert.Equal(t, 1.10, consultant.RiskMultiplier)

	baseTotal := 500.0 + 750*22*16*1.0
	assert.InDelta(t, baseTotal*1.10*0.90, consultant.TotalProjectCost, 1e-6)
	assert.InDelta(t, consultant.TotalProjectCost/16, consultant.CostPerMonth, 1e-9)

	// Every other option pays the recruitment friction premium.
	for _, option := range result.Options {
		if option.Type == types.ContractConsultant {
			continue
		}
		assert.Equal(t, 1.10, option.UrgencyMultiplier, "type %s", option.Type)
	}
}

func TestComputeRankedOptions_ExpertPermanentAtThreshold(t *testing.T) {
	// Expert, 18 months, 80%: permanent sits exactly at the short-project
	// threshold, so no over-commitment risk applies.
	req := &types.RoleRequirement{
		SkillName:       "Chief Architect",
		Level:           types.LevelExpert,
		Urgency:         types.UrgencyShortTerm,
		DurationMonths:  18,
		WorkloadPercent: 80,
	}

	result, err := ComputeRankedOptions(req)
	require.NoError(t, err)

	permanent := findOption(t, result, types.ContractPermanent)
	assert.Equal(t, 1.0, permanent.RiskMultiplier)

	monthlySalary := 100000.0 / 12
	assert.InDelta(t, monthlySalary, permanent.MonthlyBaseCost, 1e-9)
	assert.InDelta(t, monthlySalary*1.6, permanent.TotalMonthlyCost, 1e-9)

	baseTotal := 5000 + monthlySalary*1.6*18*0.8
	assert.InDelta(t, baseTotal, permanent.TotalProjectCost, 1e-6)
}

func TestComputeRankedOptions_MidLevelShortProject(t *testing.T) {
	// Mid-level, 8 months: neither the consultant knowledge-loss risk
	// (duration <= 12) nor the fixed-term conversion risk (duration <= 18)
	// applies.
	req := &types.RoleRequirement{
		SkillName:       "Data Engineer",
		Level:           types.LevelMidLevel,
		Urgency:         types.UrgencyLongTerm,
		DurationMonths:  8,
		WorkloadPercent: 100,
	}

	result, err := ComputeRankedOptions(req)
	require.NoError(t, err)

	assert.Equal(t, 1.0, findOption(t, result, types.ContractConsultant).RiskMultiplier)
	assert.Equal(t, 1.0, findOption(t, result, types.ContractFixedTerm).RiskMultiplier)
	// Permanent on 8 months is still an over-commitment.
	assert.Equal(t, 1.2, findOption(t, result, types.ContractPermanent).RiskMultiplier)
}

func TestComputeRankedOptions_InvalidRequirement(t *testing.T) {
	tests := []struct {
		name string
		req  *types.RoleRequirement
	}{
		{
			name: "zero duration",
			req: &types.RoleRequirement{
				SkillName: "x", Level: types.LevelSenior, DurationMonths: 0, WorkloadPercent: 100,
			},
		},
		{
			name: "negative duration",
			req: &types.RoleRequirement{
				SkillName: "x", Level: types.LevelSenior, DurationMonths: -3, WorkloadPercent: 100,
			},
		},
		{
			name: "workload above 100",
			req: &types.RoleRequirement{
				SkillName: "x", Level: types.LevelSenior, DurationMonths: 6, WorkloadPercent: 150,
			},
		},
		{
			name: "negative workload",
			req: &types.RoleRequirement{
				SkillName: "x", Level: types.LevelSenior, DurationMonths: 6, WorkloadPercent: -1,
			},
		},
		{
			name: "unknown level",
			req: &types.RoleRequirement{
				SkillName: "x", Level: "principal", DurationMonths: 6, WorkloadPercent: 100,
			},
		},
		{
			name: "unknown urgency",
			req: &types.RoleRequirement{
				SkillName: "x", Level: types.LevelSenior, Urgency: "yesterday",
				DurationMonths: 6, WorkloadPercent: 100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeRankedOptions(tt.req)
			require.Error(t, err)
			assert.Nil(t, result)

			var invalidErr *InvalidRequirementError
			assert.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestComputeRankedOptions_NilRequirement(t *testing.T) {
	result, err := ComputeRankedOptions(nil)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestComputeRankedOptions_DefaultsForAbsentOptionalFields(t *testing.T) {
	// Absent urgency is treated as not-immediate: no urgency adjustment.
	req := &types.RoleRequirement{
		SkillName:       "QA Engineer",
		Level:           types.LevelJunior,
		DurationMonths:  6,
		WorkloadPercent: 50,
	}

	result, err := ComputeRankedOptions(req)
	require.NoError(t, err)

	assert.Equal(t, types.UrgencyLongTerm, result.Requirement.Urgency)
	assert.Equal(t, types.ImpactMedium, result.Requirement.BusinessImpact)
	for _, option := range result.Options {
		assert.Equal(t, 1.0, option.UrgencyMultiplier)
	}
}

func TestComputeRankedOptions_OmittedWorkloadDecodesAsFullTime(t *testing.T) {
	var decoded types.RoleRequirement
	require.NoError(t, json.Unmarshal(
		[]byte(`{"skill_name":"Backend Engineer","level":"senior","urgency":"long_term","duration_months":12,"business_impact":"high"}`),
		&decoded,
	))

	explicitResult, err := ComputeRankedOptions(validRequirement())
	require.NoError(t, err)
	decodedResult, err := ComputeRankedOptions(&decoded)
	require.NoError(t, err)

	assert.Equal(t, 100, decodedResult.Requirement.WorkloadPercent)
	assert.Equal(t, explicitResult.Options, decodedResult.Options)
}

func TestComputeRankedOptions_ExplicitZeroWorkload(t *testing.T) {
	// Workload 0 is a valid boundary: only setup costs remain.
	req := validRequirement()
	req.WorkloadPercent = 0

	result, err := ComputeRankedOptions(req)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Requirement.WorkloadPercent)
	consultant := findOption(t, result, types.ContractConsultant)
	assert.InDelta(t, 500.0, consultant.TotalProjectCost, 1e-6)
}

func TestSortByTotalCost_StableOnTies(t *testing.T) {
	// Contrived tie: three options share a total cost. Sorting must keep
	// their original order, and re-sorting a sorted slice must be a no-op.
	options := []types.RankedOption{
		{ContractOption: types.ContractOption{Type: types.ContractPermanent}, TotalProjectCost: 100},
		{ContractOption: types.ContractOption{Type: types.ContractConsultant}, TotalProjectCost: 100},
		{ContractOption: types.ContractOption{Type: types.ContractFreelancer}, TotalProjectCost: 100},
		{ContractOption: types.ContractOption{Type: types.ContractInterimManager}, TotalProjectCost: 50},
	}

	SortByTotalCost(options)

	want := []types.ContractType{
		types.ContractInterimManager,
		types.ContractPermanent,
		types.ContractConsultant,
		types.ContractFreelancer,
	}
	for i, contractType := range want {
		assert.Equal(t, contractType, options[i].Type)
	}

	sorted := make([]types.RankedOption, len(options))
	copy(sorted, options)
	SortByTotalCost(sorted)
	assert.Equal(t, options, sorted, "sorting an already-sorted slice must not reorder ties")
}

func TestComputeRankedOptions_WorkloadScalesCost(t *testing.T) {
	full := validRequirement()
	half := validRequirement()
	half.WorkloadPercent = 50

	fullResult, err := ComputeRankedOptions(full)
	require.NoError(t, err)
	halfResult, err := ComputeRankedOptions(half)
	require.NoError(t, err)

	fullConsultant := findOption(t, fullResult, types.ContractConsultant)
	halfConsultant := findOption(t, halfResult, types.ContractConsultant)

	// Setup cost does not scale with workload, the monthly run rate does.
	wantFull := 500.0 + 750*22*12
	wantHalf := 500.0 + 750*22*12*0.5
	assert.InDelta(t, wantFull, fullConsultant.TotalProjectCost, 1e-6)
	assert.InDelta(t, wantHalf, halfConsultant.TotalProjectCost, 1e-6)
}
