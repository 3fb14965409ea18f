// Package types provides type definitions for structured data used throughout the staffing-optimizer system.
package types

// ContractType identifies a staffing contract arrangement.
type ContractType string

// The eight contract types known to the catalog, in canonical catalog order.
const (
	ContractPermanent        ContractType = "permanent"
	ContractFixedTerm        ContractType = "fixed_term"
	ContractConsultant       ContractType = "consultant"
	ContractExpertMission    ContractType = "expert_mission"
	ContractInternalTransfer ContractType = "internal_transfer"
	ContractExchangeProgram  ContractType = "exchange_program"
	ContractFreelancer       ContractType = "freelancer"
	ContractInterimManager   ContractType = "interim_manager"
)

// AvailabilityWindow describes how quickly a contract type can start.
type AvailabilityWindow string

// Availability windows, from fastest to slowest.
const (
	AvailabilityImmediate        AvailabilityWindow = "immediate"
	AvailabilityOneToTwoWeeks    AvailabilityWindow = "one_to_two_weeks"
	AvailabilityOneMonth         AvailabilityWindow = "one_month"
	AvailabilityTwoToThreeMonths AvailabilityWindow = "two_to_three_months"
)

// Rating is a coarse qualitative grade used for knowledge retention and team integration.
type Rating string

// Rating values.
const (
	RatingHigh   Rating = "high"
	RatingMedium Rating = "medium"
	RatingLow    Rating = "low"
)

// Specialization describes the skill profile a contract type typically brings.
type Specialization string

// Specialization values.
const (
	SpecializationGeneral     Specialization = "general"
	SpecializationSpecialized Specialization = "specialized"
	SpecializationExpert      Specialization = "expert"
)

// ContractOption represents one staffing-contract type's economics and
// qualitative profile for a given seniority level. Options are derived
// deterministically from the catalog rate tables and are never persisted.
type ContractOption struct {
	Type              ContractType `json:"type"`
	MonthlyBaseCost   float64      `json:"monthly_base_cost"`
	SetupCost         float64      `json:"setup_cost"`
	BenefitsCost      float64      `json:"benefits_cost"`
	SocialChargesCost float64      `json:"social_charges_cost"`
	// TotalMonthlyCost is always MonthlyBaseCost + BenefitsCost + SocialChargesCost.
	TotalMonthlyCost   float64            `json:"total_monthly_cost"`
	Availability       AvailabilityWindow `json:"availability"`
	MinDurationWeeks   int                `json:"min_duration_weeks"`
	MaxDurationWeeks   int                `json:"max_duration_weeks"`
	KnowledgeRetention Rating             `json:"knowledge_retention"`
	TeamIntegration    Rating             `json:"team_integration"`
	Specialization     Specialization     `json:"specialization"`
}

// RankedOption is a ContractOption extended with the adjusted project cost
// used for ranking.
type RankedOption struct {
	ContractOption
	TotalProjectCost  float64 `json:"total_project_cost"`
	CostPerMonth      float64 `json:"cost_per_month"`
	RiskMultiplier    float64 `json:"risk_multiplier"`
	UrgencyMultiplier float64 `json:"urgency_multiplier"`
	Recommended       bool    `json:"recommended"`
	Notes             string  `json:"notes,omitempty"`
}

// RankedOptions is the result of one optimization run: all contract options
// for a requirement, sorted ascending by total project cost. The first
// option is the recommended choice.
type RankedOptions struct {
	Requirement RoleRequirement `json:"requirement"`
	Options     []RankedOption  `json:"options"`
}

// RecommendedOption returns the lowest-cost option, or nil for an empty result.
func (r *RankedOptions) RecommendedOption() *RankedOption {
	if len(r.Options) == 0 {
		return nil
	}
	return &r.Options[0]
}
