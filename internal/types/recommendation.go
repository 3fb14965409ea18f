// Package types provides type definitions for structured data used throughout the staffing-optimizer system.
package types

// RecruitmentRecommendation is the wire shape of one record returned by the
// analysis backend's recruitment recommendations endpoint. Optional fields
// vary between backend versions, so everything beyond the skill name is
// nullable and defaulted during conversion.
type RecruitmentRecommendation struct {
	SkillName      string  `json:"skill_name"`
	Level          string  `json:"level,omitempty"`
	Urgency        string  `json:"urgency,omitempty"`
	ContractType   string  `json:"contract_type,omitempty"`
	EstimatedCost  float64 `json:"estimated_cost,omitempty"`
	DurationMonths *int    `json:"duration_months,omitempty"`
	WorkloadPct    *int    `json:"workload_percent,omitempty"`
	BusinessImpact string  `json:"business_impact,omitempty"`
	Justification  string  `json:"justification,omitempty"`
	Source         string  `json:"source,omitempty"`
}

// RecommendationsResponse is the envelope returned by the backend.
type RecommendationsResponse struct {
	Recommendations []RecruitmentRecommendation `json:"recommendations"`
	AnalysisID      string                      `json:"analysis_id,omitempty"`
	Status          string                      `json:"status,omitempty"`
}
