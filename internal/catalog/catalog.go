package catalog

import (
	"github.com/jonathan/staffing-optimizer/internal/types"
)

// Setup costs per contract type (one-time recruitment and onboarding fees).
const (
	permanentSetupCost        = 5000
	fixedTermSetupCost        = 2000
	consultantSetupCost       = 500
	expertMissionSetupCost    = 200
	internalTransferSetupCost = 1000
	exchangeProgramSetupCost  = 3000
	freelancerSetupCost       = 100
	interimManagerSetupCost   = 2000
)

// Payroll charge rates. Benefits and social charges are computed on the plain
// monthly salary; premium or discount factors on the base cost do not change
// the charge amounts. This keeps the totals at exactly 1.6x (permanent),
// 1.52x (fixed-term), 1.7x (internal transfer) and 1.15x (exchange program)
// of the monthly salary.
const (
	permanentBenefitsRate       = 0.15
	permanentSocialRate         = 0.45
	fixedTermBenefitsRate       = 0.10
	fixedTermSocialRate         = 0.42
	internalTransferPremium     = 1.1
	internalTransferBenefits    = 0.15
	internalTransferSocialRate  = 0.45
	exchangeProgramDiscount     = 0.8
	exchangeProgramBenefitsRate = 0.10
	exchangeProgramSocialRate   = 0.25
)

// BuildOptions derives the full set of contract options for a seniority
// level, one per contract type, in canonical catalog order.
// The caller guarantees the level is one of the four enumerated values;
// an unknown level is a programming error, not a runtime condition.
func BuildOptions(level types.SeniorityLevel) []types.ContractOption {
	monthlySalary := AnnualSalary(level) / 12
	dailyRate := DailyConsultantRate(level)

	options := make([]types.ContractOption, 0, len(contractOrder))
	for _, contractType := range contractOrder {
		options = append(options, buildOption(contractType, monthlySalary, dailyRate))
	}
	return options
}

// BuildOption derives the contract option of a single type for a level.
func BuildOption(contractType types.ContractType, level types.SeniorityLevel) types.ContractOption {
	return buildOption(contractType, AnnualSalary(level)/12, DailyConsultantRate(level))
}

func buildOption(contractType types.ContractType, monthlySalary, dailyRate float64) types.ContractOption {
	var base, setup, benefits, social float64

	switch contractType {
	case types.ContractPermanent:
		base = monthlySalary
		setup = permanentSetupCost
		benefits = monthlySalary * permanentBenefitsRate
		social = monthlySalary * permanentSocialRate
	case types.ContractFixedTerm:
		base = monthlySalary
		setup = fixedTermSetupCost
		benefits = monthlySalary * fixedTermBenefitsRate
		social = monthlySalary * fixedTermSocialRate
	case types.ContractConsultant:
		base = dailyRate * WorkingDaysPerMonth
		setup = consultantSetupCost
	case types.ContractExpertMission:
		base = dailyRate * expertMissionRateFactor * WorkingDaysPerMonth
		setup = expertMissionSetupCost
	case types.ContractInternalTransfer:
		base = monthlySalary * internalTransferPremium
		setup = internalTransferSetupCost
		benefits = monthlySalary * internalTransferBenefits
		social = monthlySalary * internalTransferSocialRate
	case types.ContractExchangeProgram:
		base = monthlySalary * exchangeProgramDiscount
		setup = exchangeProgramSetupCost
		benefits = monthlySalary * exchangeProgramBenefitsRate
		social = monthlySalary * exchangeProgramSocialRate
	case types.ContractFreelancer:
		base = dailyRate * freelancerRateFactor * WorkingDaysPerMonth
		setup = freelancerSetupCost
	case types.ContractInterimManager:
		base = dailyRate * expertMissionRateFactor * WorkingDaysPerMonth * interimManagerLoadFactor
		setup = interimManagerSetupCost
	}

	p := profileByType[contractType]

	return types.ContractOption{
		Type:               contractType,
		MonthlyBaseCost:    base,
		SetupCost:          setup,
		BenefitsCost:       benefits,
		SocialChargesCost:  social,
		TotalMonthlyCost:   base + benefits + social,
		Availability:       p.availability,
		MinDurationWeeks:   p.minDurationWeeks,
		MaxDurationWeeks:   p.maxDurationWeeks,
		KnowledgeRetention: p.knowledgeRetention,
		TeamIntegration:    p.teamIntegration,
		Specialization:     p.specialization,
	}
}
