package catalog

import (
	"github.com/jonathan/staffing-optimizer/internal/types"
)

// profile holds the static, non-monetary attributes of a contract type.
// These are configuration data, not computed values.
type profile struct {
	availability       types.AvailabilityWindow
	minDurationWeeks   int
	maxDurationWeeks   int
	knowledgeRetention types.Rating
	teamIntegration    types.Rating
	specialization     types.Specialization
}

// contractOrder is the canonical catalog order. It doubles as the tie-break
// order when two options end up with identical project costs.
var contractOrder = []types.ContractType{
	types.ContractPermanent,
	types.ContractFixedTerm,
	types.ContractConsultant,
	types.ContractExpertMission,
	types.ContractInternalTransfer,
	types.ContractExchangeProgram,
	types.ContractFreelancer,
	types.ContractInterimManager,
}

var profileByType = map[types.ContractType]profile{
	types.ContractPermanent: {
		availability:       types.AvailabilityTwoToThreeMonths,
		minDurationWeeks:   52,
		maxDurationWeeks:   520,
		knowledgeRetention: types.RatingHigh,
		teamIntegration:    types.RatingHigh,
		specialization:     types.SpecializationGeneral,
	},
	types.ContractFixedTerm: {
		availability:       types.AvailabilityOneMonth,
		minDurationWeeks:   13,
		maxDurationWeeks:   104,
		knowledgeRetention: types.RatingMedium,
		teamIntegration:    types.RatingHigh,
		specialization:     types.SpecializationGeneral,
	},
	types.ContractConsultant: {
		availability:       types.AvailabilityOneToTwoWeeks,
		minDurationWeeks:   4,
		maxDurationWeeks:   78,
		knowledgeRetention: types.RatingLow,
		teamIntegration:    types.RatingMedium,
		specialization:     types.SpecializationSpecialized,
	},
	types.ContractExpertMission: {
		availability:       types.AvailabilityImmediate,
		minDurationWeeks:   1,
		maxDurationWeeks:   26,
		knowledgeRetention: types.RatingLow,
		teamIntegration:    types.RatingLow,
		specialization:     types.SpecializationExpert,
	},
	types.ContractInternalTransfer: {
		availability:       types.AvailabilityOneMonth,
		minDurationWeeks:   13,
		maxDurationWeeks:   260,
		knowledgeRetention: types.RatingHigh,
		teamIntegration:    types.RatingHigh,
		specialization:     types.SpecializationGeneral,
	},
	types.ContractExchangeProgram: {
		availability:       types.AvailabilityTwoToThreeMonths,
		minDurationWeeks:   26,
		maxDurationWeeks:   104,
		knowledgeRetention: types.RatingMedium,
		teamIntegration:    types.RatingMedium,
		specialization:     types.SpecializationSpecialized,
	},
	types.ContractFreelancer: {
		availability:       types.AvailabilityImmediate,
		minDurationWeeks:   1,
		maxDurationWeeks:   52,
		knowledgeRetention: types.RatingLow,
		teamIntegration:    types.RatingLow,
		specialization:     types.SpecializationSpecialized,
	},
	types.ContractInterimManager: {
		availability:       types.AvailabilityOneToTwoWeeks,
		minDurationWeeks:   4,
		maxDurationWeeks:   52,
		knowledgeRetention: types.RatingMedium,
		teamIntegration:    types.RatingMedium,
		specialization:     types.SpecializationExpert,
	},
}

// ContractTypes returns the contract types in canonical catalog order.
func ContractTypes() []types.ContractType {
	out := make([]types.ContractType, len(contractOrder))
	copy(out, contractOrder)
	return out
}
