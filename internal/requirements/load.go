// Package requirements provides functionality to load role requirement files.
package requirements

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/staffing-optimizer/internal/types"
)

// LoadError represents an error loading a requirements file.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("requirements load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("requirements load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load loads a single role requirement from a JSON file.
func Load(path string) (*types.RoleRequirement, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var req types.RoleRequirement
	if err := json.Unmarshal(content, &req); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &req, nil
}

// LoadList loads a list of role requirements from a JSON file holding either
// a bare array or an object with a "requirements" field. Both shapes occur in
// exports from the analysis backend.
func LoadList(path string) ([]types.RoleRequirement, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var list []types.RoleRequirement
	if err := json.Unmarshal(content, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Requirements []types.RoleRequirement `json:"requirements"`
	}
	if err := json.Unmarshal(content, &wrapped); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return wrapped.Requirements, nil
}
