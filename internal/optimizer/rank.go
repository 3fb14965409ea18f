package optimizer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/staffing-optimizer/internal/catalog"
	"github.com/jonathan/staffing-optimizer/internal/types"
)

// ComputeRankedOptions computes the fully-loaded project cost of every
// contract type in the catalog for the given requirement and returns them
// sorted ascending by total project cost. The first option is flagged as
// recommended.
//
// The computation is pure and deterministic: repeated calls with the same
// requirement return identical results, and concurrent callers need no
// coordination.
func ComputeRankedOptions(requirement *types.RoleRequirement) (*types.RankedOptions, error) {
	if requirement == nil {
		return nil, &InvalidRequirementError{Field: "requirement", Message: "must not be nil"}
	}

	req := requirement.Normalized()
	if err := validateRequirement(&req); err != nil {
		return nil, err
	}

	workloadFraction := float64(req.WorkloadPercent) / 100

	options := catalog.BuildOptions(req.Level)
	ranked := make([]types.RankedOption, 0, len(options))
	for _, option := range options {
		baseTotal := option.SetupCost + option.TotalMonthlyCost*float64(req.DurationMonths)*workloadFraction
		risk := riskMultiplier(option.Type, req.DurationMonths)
		urgency := urgencyMultiplier(option.Type, req.Urgency)
		totalProjectCost := baseTotal * risk * urgency

		ranked = append(ranked, types.RankedOption{
			ContractOption:    option,
			TotalProjectCost:  totalProjectCost,
			CostPerMonth:      totalProjectCost / float64(req.DurationMonths),
			RiskMultiplier:    risk,
			UrgencyMultiplier: urgency,
			Notes:             generateNotes(option, risk, urgency),
		})
	}

	SortByTotalCost(ranked)
	ranked[0].Recommended = true

	return &types.RankedOptions{
		Requirement: req,
		Options:     ranked,
	}, nil
}

// SortByTotalCost sorts ranked options ascending by total project cost.
// The sort is stable: equal costs keep their catalog order.
func SortByTotalCost(options []types.RankedOption) {
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].TotalProjectCost < options[j].TotalProjectCost
	})
}

// validateRequirement checks the optimizer's preconditions once, before any
// arithmetic. A zero duration would otherwise surface as a division by zero
// in the per-month cost.
func validateRequirement(req *types.RoleRequirement) error {
	if req.DurationMonths <= 0 {
		return &InvalidRequirementError{
			Field:   "duration_months",
			Message: fmt.Sprintf("must be positive, got %d", req.DurationMonths),
		}
	}
	if req.WorkloadPercent < 0 || req.WorkloadPercent > 100 {
		return &InvalidRequirementError{
			Field:   "workload_percent",
			Message: fmt.Sprintf("must be between 0 and 100, got %d", req.WorkloadPercent),
		}
	}
	if !catalog.KnownLevel(req.Level) {
		return &InvalidRequirementError{
			Field:   "level",
			Message: fmt.Sprintf("unrecognized seniority level %q", req.Level),
		}
	}
	if !types.ValidUrgencies[req.Urgency] {
		return &InvalidRequirementError{
			Field:   "urgency",
			Message: fmt.Sprintf("unrecognized urgency %q", req.Urgency),
		}
	}
	return nil
}

// generateNotes creates a brief explanation of the adjustments applied to an option.
func generateNotes(option types.ContractOption, risk, urgency float64) string {
	var parts []string

	switch {
	case risk == overCommitmentRisk:
		parts = append(parts, "Over-commitment risk for a permanent hire on a short project")
	case risk == conversionRisk:
		parts = append(parts, "Conversion risk for a fixed-term contract on a long project")
	case risk == knowledgeLossRisk:
		parts = append(parts, "Knowledge-loss risk for a long consultant mission")
	}

	switch urgency {
	case consultantUrgencyDiscount:
		parts = append(parts, "Discounted for fast consultant onboarding")
	case recruitmentFrictionCost:
		parts = append(parts, "Recruitment friction premium for an immediate need")
	}

	if len(parts) == 0 {
		parts = append(parts, "No cost adjustments")
	}

	parts = append(parts, fmt.Sprintf("Available in %s", strings.ReplaceAll(string(option.Availability), "_", " ")))

	return strings.Join(parts, ". ")
}
