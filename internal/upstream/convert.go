package upstream

import (
	"strings"

	"github.com/jonathan/staffing-optimizer/internal/types"
)

// Defaults applied to recommendation records with absent optional fields.
// An absent urgency is treated as not-immediate per the backend contract.
const (
	defaultDurationMonths  = 6
	defaultWorkloadPercent = 100
)

// ToRequirement converts one backend recommendation record into a role
// requirement, applying documented defaults for absent optional fields.
func ToRequirement(rec types.RecruitmentRecommendation) types.RoleRequirement {
	req := types.RoleRequirement{
		SkillName:       rec.SkillName,
		Level:           normalizeLevel(rec.Level),
		Urgency:         normalizeUrgency(rec.Urgency),
		DurationMonths:  defaultDurationMonths,
		WorkloadPercent: defaultWorkloadPercent,
		BusinessImpact:  normalizeImpact(rec.BusinessImpact),
	}

	if rec.DurationMonths != nil {
		req.DurationMonths = *rec.DurationMonths
	}
	if rec.WorkloadPct != nil {
		req.WorkloadPercent = *rec.WorkloadPct
	}

	return req
}

// ToRequirements converts a full backend response.
func ToRequirements(response *types.RecommendationsResponse) []types.RoleRequirement {
	if response == nil {
		return nil
	}

	out := make([]types.RoleRequirement, 0, len(response.Recommendations))
	for _, rec := range response.Recommendations {
		out = append(out, ToRequirement(rec))
	}
	return out
}

// normalizeLevel maps backend level spellings onto catalog levels.
// Backend exports have used "mid-level", "Mid Level" and "midlevel"
// interchangeably; an unrecognized or absent level defaults to mid-level.
func normalizeLevel(raw string) types.SeniorityLevel {
	switch canonical(raw) {
	case "junior":
		return types.LevelJunior
	case "mid_level", "midlevel", "mid", "intermediate":
		return types.LevelMidLevel
	case "senior":
		return types.LevelSenior
	case "expert", "principal":
		return types.LevelExpert
	default:
		return types.LevelMidLevel
	}
}

func normalizeUrgency(raw string) types.Urgency {
	switch canonical(raw) {
	case "immediate", "urgent":
		return types.UrgencyImmediate
	case "short_term", "shortterm", "soon":
		return types.UrgencyShortTerm
	default:
		// Absent urgency is treated as not-immediate.
		return types.UrgencyLongTerm
	}
}

func normalizeImpact(raw string) types.BusinessImpact {
	switch canonical(raw) {
	case "critical":
		return types.ImpactCritical
	case "high":
		return types.ImpactHigh
	case "low":
		return types.ImpactLow
	default:
		return types.ImpactMedium
	}
}

// canonical lowercases a raw field value and flattens separators so that
// "Mid-Level", "mid level" and "MID_LEVEL" all compare equal.
func canonical(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
