// Package config provides configuration management for the survey
// cleaning pipeline.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingRawPath        = errors.New("inputs.raw_csv is required")
	ErrMissingCodebookPath   = errors.New("inputs.codebook is required")
	ErrMissingSemiCleanPath  = errors.New("outputs.semi_clean is required")
	ErrMissingCleanPath      = errors.New("outputs.clean is required")
	ErrMissingXLSXPath       = errors.New("outputs.xlsx is required when outputs.export_xlsx is enabled")
	ErrInvalidLabelLineStart = errors.New("codebook.label_line_start must be at least 1")
	ErrInvalidLabelLineRange = errors.New("codebook.label_line_start cannot exceed codebook.label_line_end")
	ErrInvalidDurationCap    = errors.New("recode.duration_cap_minutes must be positive")
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Inputs   InputsConfig   `yaml:"inputs"`
	Codebook CodebookConfig `yaml:"codebook"`
	Outputs  OutputsConfig  `yaml:"outputs"`
	Recode   RecodeConfig   `yaml:"recode"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// InputsConfig locates the two input files.
type InputsConfig struct {
	RawCSV   string `yaml:"raw_csv"`
	Codebook string `yaml:"codebook"`
}

// CodebookConfig pins the label block inside the codebook document.
// The line range is positional and tied to the codebook version in use;
// the parser does not detect it.
type CodebookConfig struct {
	LabelLineStart int `yaml:"label_line_start"`
	LabelLineEnd   int `yaml:"label_line_end"`

	// Variable codes ending with this suffix are duplicate duration
	// markers and are excluded before renaming.
	DuplicateSuffix string `yaml:"duplicate_suffix"`
}

// OutputsConfig locates the output files.
type OutputsConfig struct {
	SemiClean  string `yaml:"semi_clean"`
	Clean      string `yaml:"clean"`
	ExportXLSX bool   `yaml:"export_xlsx"`
	XLSX       string `yaml:"xlsx"`
}

// RecodeConfig holds the recoding thresholds that vary by survey cycle.
type RecodeConfig struct {
	DurationCapMinutes    int `yaml:"duration_cap_minutes"`
	LivingArrangementCode int `yaml:"living_arrangement_code"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LoadConfig loads configuration from a YAML file, applies defaults and
// validates the result.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills unset fields with the GSS time-use cycle defaults.
func (c *Config) applyDefaults() {
	if c.Codebook.DuplicateSuffix == "" {
		c.Codebook.DuplicateSuffix = "dd"
	}

	if c.Recode.DurationCapMinutes == 0 {
		c.Recode.DurationCapMinutes = 3600
	}

	if c.Recode.LivingArrangementCode == 0 {
		// Code 3: respondent living with spouse/partner and children.
		c.Recode.LivingArrangementCode = 3
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Inputs.RawCSV == "" {
		return ErrMissingRawPath
	}

	if c.Inputs.Codebook == "" {
		return ErrMissingCodebookPath
	}

	if c.Outputs.SemiClean == "" {
		return ErrMissingSemiCleanPath
	}

	if c.Outputs.Clean == "" {
		return ErrMissingCleanPath
	}

	if c.Outputs.ExportXLSX && c.Outputs.XLSX == "" {
		return ErrMissingXLSXPath
	}

	if c.Codebook.LabelLineStart < 1 {
		return ErrInvalidLabelLineStart
	}

	if c.Codebook.LabelLineStart > c.Codebook.LabelLineEnd {
		return ErrInvalidLabelLineRange
	}

	if c.Recode.DurationCapMinutes < 1 {
		return ErrInvalidDurationCap
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Raw: %s, Codebook: %s (lines %d-%d), Clean: %s}",
		c.Inputs.RawCSV,
		c.Inputs.Codebook,
		c.Codebook.LabelLineStart,
		c.Codebook.LabelLineEnd,
		c.Outputs.Clean,
	)
}
