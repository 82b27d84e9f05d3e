// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-matcher/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"`  // Path to resume text file
	Job    string `json:"job,omitempty"`     // Path to job description text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch the job posting from

	// Salary expectations, annual amounts in one shared currency.
	// Bounds are pointers so a single-sided range survives the trip
	// through JSON.
	CandidateSalaryMin *int `json:"candidate_salary_min,omitempty"`
	CandidateSalaryMax *int `json:"candidate_salary_max,omitempty"`
	RoleSalaryMin      *int `json:"role_salary_min,omitempty"`
	RoleSalaryMax      *int `json:"role_salary_max,omitempty"`

	// Behavior
	APIKey        string  `json:"api_key,omitempty"`         // Gemini API key
	SkillWeight   float64 `json:"skill_weight,omitempty"`    // Match score weight in the overall score
	MaxInputBytes int     `json:"max_input_bytes,omitempty"` // Size cap for resume and job documents
	Offline       bool    `json:"offline,omitempty"`         // Skip the LLM narrative
	Verbose       bool    `json:"verbose,omitempty"`         // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values. Skill weight is
// deliberately not range-checked; out-of-range values resolve to the default
// weight at combine time. Required fields are handled by CLI flag validation
// after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.MaxInputBytes < 0 {
		return fmt.Errorf("config error: 'max_input_bytes' must be non-negative")
	}

	for name, bound := range map[string]*int{
		"candidate_salary_min": c.CandidateSalaryMin,
		"candidate_salary_max": c.CandidateSalaryMax,
		"role_salary_min":      c.RoleSalaryMin,
		"role_salary_max":      c.RoleSalaryMax,
	} {
		if bound != nil && *bound < 0 {
			return fmt.Errorf("config error: '%s' must be non-negative", name)
		}
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Pointer fields: use default if nil
	if result.CandidateSalaryMin == nil {
		result.CandidateSalaryMin = defaults.CandidateSalaryMin
	}
	if result.CandidateSalaryMax == nil {
		result.CandidateSalaryMax = defaults.CandidateSalaryMax
	}
	if result.RoleSalaryMin == nil {
		result.RoleSalaryMin = defaults.RoleSalaryMin
	}
	if result.RoleSalaryMax == nil {
		result.RoleSalaryMax = defaults.RoleSalaryMax
	}

	// Int fields: use default if zero
	if result.MaxInputBytes == 0 {
		result.MaxInputBytes = defaults.MaxInputBytes
	}

	// Skill weight falls back to the scoring default so every caller
	// sees the same effective weight.
	if result.SkillWeight == 0 {
		if defaults.SkillWeight > 0 {
			result.SkillWeight = defaults.SkillWeight
		} else {
			result.SkillWeight = scoring.DefaultSkillWeight
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
