// Package optimizer computes and ranks fully-loaded staffing contract costs
// for a role requirement.
package optimizer

import "fmt"

// InvalidRequirementError indicates a role requirement that fails the
// optimizer's preconditions. It is a caller bug, not a transient condition,
// and is never silently coerced.
type InvalidRequirementError struct {
	Field   string
	Message string
	Cause   error
}

func (e *InvalidRequirementError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid requirement: %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid requirement: %s: %s", e.Field, e.Message)
}

func (e *InvalidRequirementError) Unwrap() error {
	return e.Cause
}
