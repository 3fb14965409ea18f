// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Requirements string `json:"requirements,omitempty"` // Path to role requirements JSON file
	Output       string `json:"output,omitempty"`       // Path for ranked options output

	// Upstream
	BackendURL string `json:"backend_url,omitempty"` // RFP analysis backend base URL
	AnalysisID string `json:"analysis_id,omitempty"` // Analysis to fetch recommendations for

	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Behavior
	Verbose            bool `json:"verbose,omitempty"`              // Print detailed output
	BatchConcurrency   int  `json:"batch_concurrency,omitempty"`    // Max concurrent optimizations in batch requests
	SkipOutputSchema   bool `json:"skip_output_schema,omitempty"`   // Skip JSON Schema validation of CLI output
	RequestTimeoutSecs int  `json:"request_timeout_secs,omitempty"` // Backend request timeout
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are enforced later by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.BatchConcurrency < 0 {
		return fmt.Errorf("config error: 'batch_concurrency' must be non-negative")
	}
	if c.RequestTimeoutSecs < 0 {
		return fmt.Errorf("config error: 'request_timeout_secs' must be non-negative")
	}

	if c.BackendURL != "" {
		parsed, err := url.Parse(c.BackendURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config error: 'backend_url' is not a valid URL: %s", c.BackendURL)
		}
	}

	if c.Requirements != "" {
		if _, err := os.Stat(c.Requirements); os.IsNotExist(err) {
			return fmt.Errorf("config error: requirements file not found: %s", c.Requirements)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Requirements == "" {
		result.Requirements = defaults.Requirements
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.BackendURL == "" {
		result.BackendURL = defaults.BackendURL
	}
	if result.AnalysisID == "" {
		result.AnalysisID = defaults.AnalysisID
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RequestTimeoutSecs == 0 {
		result.RequestTimeoutSecs = defaults.RequestTimeoutSecs
	}
	if result.BatchConcurrency == 0 {
		if defaults.BatchConcurrency > 0 {
			result.BatchConcurrency = defaults.BatchConcurrency
		} else {
			result.BatchConcurrency = 4 // Default to four concurrent optimizations
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
