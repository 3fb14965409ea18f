// Package types provides type definitions for structured data used throughout the staffing-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// SeniorityLevel represents the seniority of a role requirement.
type SeniorityLevel string

// Seniority levels drive the base rate lookup in the contract catalog.
const (
	LevelJunior   SeniorityLevel = "junior"
	LevelMidLevel SeniorityLevel = "mid_level"
	LevelSenior   SeniorityLevel = "senior"
	LevelExpert   SeniorityLevel = "expert"
)

// Urgency represents how quickly a role needs to be filled.
type Urgency string

// Urgency values affect the ranking adjustment multiplier.
const (
	UrgencyImmediate Urgency = "immediate"
	UrgencyShortTerm Urgency = "short_term"
	UrgencyLongTerm  Urgency = "long_term"
)

// BusinessImpact represents the business criticality of a role requirement.
type BusinessImpact string

// Business impact values.
const (
	ImpactCritical BusinessImpact = "critical"
	ImpactHigh     BusinessImpact = "high"
	ImpactMedium   BusinessImpact = "medium"
	ImpactLow      BusinessImpact = "low"
)

// ValidSeniorityLevels is the set of recognized seniority levels.
var ValidSeniorityLevels = map[SeniorityLevel]bool{
	LevelJunior:   true,
	LevelMidLevel: true,
	LevelSenior:   true,
	LevelExpert:   true,
}

// ValidUrgencies is the set of recognized urgency values.
var ValidUrgencies = map[Urgency]bool{
	UrgencyImmediate: true,
	UrgencyShortTerm: true,
	UrgencyLongTerm:  true,
}

// ValidBusinessImpacts is the set of recognized business impact values.
var ValidBusinessImpacts = map[BusinessImpact]bool{
	ImpactCritical: true,
	ImpactHigh:     true,
	ImpactMedium:   true,
	ImpactLow:      true,
}

// RoleRequirement represents a staffing need for one role on one project.
// It is constructed from analysis output or static configuration, consumed
// once per cost computation, and never mutated.
type RoleRequirement struct {
	SkillName       string         `json:"skill_name" validate:"required,min=1"`
	Level           SeniorityLevel `json:"level" validate:"required,oneof=junior mid_level senior expert"`
	Urgency         Urgency        `json:"urgency,omitempty" validate:"omitempty,oneof=immediate short_term long_term"`
	DurationMonths  int            `json:"duration_months" validate:"required,gt=0"`
	WorkloadPercent int            `json:"workload_percent" validate:"gte=0,lte=100"`
	BusinessImpact  BusinessImpact `json:"business_impact,omitempty" validate:"omitempty,oneof=critical high medium low"`
}

// UnmarshalJSON decodes a requirement, treating an absent workload_percent
// as full time. An explicit 0 is kept as-is.
func (r *RoleRequirement) UnmarshalJSON(data []byte) error {
	type roleRequirement RoleRequirement
	aux := struct {
		WorkloadPercent *int `json:"workload_percent"`
		*roleRequirement
	}{roleRequirement: (*roleRequirement)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.WorkloadPercent == nil {
		r.WorkloadPercent = 100
	} else {
		r.WorkloadPercent = *aux.WorkloadPercent
	}
	return nil
}

// Validate validates the RoleRequirement using the validator.
func (r *RoleRequirement) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Normalized returns a copy of the requirement with documented defaults
// applied for absent optional fields: missing urgency is treated as not
// immediate (long_term) and missing business impact as medium.
func (r RoleRequirement) Normalized() RoleRequirement {
	if r.Urgency == "" {
		r.Urgency = UrgencyLongTerm
	}
	if r.BusinessImpact == "" {
		r.BusinessImpact = ImpactMedium
	}
	return r
}
