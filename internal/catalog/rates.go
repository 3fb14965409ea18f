// Package catalog provides the static contract-type catalog: rate tables by
// seniority level and the per-type cost and profile derivation used by the
// optimizer.
package catalog

import (
	"github.com/jonathan/staffing-optimizer/internal/types"
)

// WorkingDaysPerMonth is the business constant used to convert daily rates
// to monthly costs.
const WorkingDaysPerMonth = 22

// Rate adjustment factors applied to the consultant daily rate.
const (
	expertMissionRateFactor  = 1.5
	freelancerRateFactor     = 0.8
	interimManagerLoadFactor = 1.2
)

// annualSalaryByLevel maps seniority level to base annual salary.
var annualSalaryByLevel = map[types.SeniorityLevel]float64{
	types.LevelJunior:   45000,
	types.LevelMidLevel: 60000,
	types.LevelSenior:   80000,
	types.LevelExpert:   100000,
}

// dailyRateByLevel maps seniority level to the daily consultant rate.
var dailyRateByLevel = map[types.SeniorityLevel]float64{
	types.LevelJunior:   400,
	types.LevelMidLevel: 550,
	types.LevelSenior:   750,
	types.LevelExpert:   950,
}

// AnnualSalary returns the base annual salary for a level.
// The caller guarantees the level is one of the four enumerated values.
func AnnualSalary(level types.SeniorityLevel) float64 {
	return annualSalaryByLevel[level]
}

// DailyConsultantRate returns the daily consultant rate for a level.
// The caller guarantees the level is one of the four enumerated values.
func DailyConsultantRate(level types.SeniorityLevel) float64 {
	return dailyRateByLevel[level]
}

// KnownLevel reports whether the given level exists in the rate tables.
func KnownLevel(level types.SeniorityLevel) bool {
	_, ok := annualSalaryByLevel[level]
	return ok
}
