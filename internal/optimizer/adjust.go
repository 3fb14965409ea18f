package optimizer

import (
	"github.com/jonathan/staffing-optimizer/internal/types"
)

// Risk adjustment multipliers. Each models a cost risk specific to one
// contract type at a duration where that arrangement tends to go wrong.
const (
	overCommitmentRisk = 1.20 // permanent hire on a short project
	conversionRisk     = 1.15 // fixed-term contract running past renewal limits
	knowledgeLossRisk  = 1.10 // consultant on a long mission
	noRisk             = 1.00
)

// Duration thresholds (months) at which the risk adjustments kick in.
const (
	permanentShortProjectMonths = 18
	fixedTermConversionMonths   = 18
	consultantKnowledgeMonths   = 12
)

// Urgency adjustment multipliers for immediate needs: consultants can start
// faster, everything else pays a recruitment-friction premium.
const (
	consultantUrgencyDiscount = 0.90
	recruitmentFrictionCost   = 1.10
	noUrgencyAdjustment       = 1.00
)

// riskMultiplier returns the duration-dependent risk adjustment for a
// contract type.
func riskMultiplier(contractType types.ContractType, durationMonths int) float64 {
	switch {
	case contractType == types.ContractPermanent && durationMonths < permanentShortProjectMonths:
		return overCommitmentRisk
	case contractType == types.ContractFixedTerm && durationMonths > fixedTermConversionMonths:
		return conversionRisk
	case contractType == types.ContractConsultant && durationMonths > consultantKnowledgeMonths:
		return knowledgeLossRisk
	default:
		return noRisk
	}
}

// urgencyMultiplier returns the urgency adjustment for a contract type.
// Only immediate needs are adjusted.
func urgencyMultiplier(contractType types.ContractType, urgency types.Urgency) float64 {
	if urgency != types.UrgencyImmediate {
		return noUrgencyAdjustment
	}
	if contractType == types.ContractConsultant {
		return consultantUrgencyDiscount
	}
	return recruitmentFrictionCost
}
