// =============================================================================
// NACHA Validator - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The
// configuration covers the directories used by batch processing, logging,
// and the severity policy: the findings whose urgency legitimately varies
// between originators (overlong records, block-count mismatches, malformed
// creation times) carry configurable severities instead of hard-coded ones.
//
// A missing configuration file is not an error; defaults apply, so the CLI
// works out of the box on a single file argument.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rvrn22/nacha-validate/internal/types"
	"github.com/rvrn22/nacha-validate/internal/validation"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// InputDir is scanned for ACH files when the validate command is run
	// without file arguments.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// ArchiveDir receives cleanly validated files when archival is enabled.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// ReportDir receives generated XLSX diagnostic reports.
	// Default: "./reports"
	ReportDir string `yaml:"report_dir"`

	// InputExtensions are the file extensions considered ACH files during
	// directory discovery.
	// Default: [".ach", ".txt"]
	InputExtensions []string `yaml:"input_extensions"`

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Severities is the severity policy for tolerance-level findings.
	Severities SeverityPolicy `yaml:"severities"`
}

// SeverityPolicy names the severity for each configurable finding. Valid
// values: "error", "warning", "information", "hint".
type SeverityPolicy struct {
	// OverlongRecord applies to records longer than 94 characters.
	// Default: "hint"
	OverlongRecord string `yaml:"overlong_record"`

	// BlockCountMismatch applies to declared vs. computed block counts.
	// Default: "warning"
	BlockCountMismatch string `yaml:"block_count_mismatch"`

	// MalformedCreationTime applies to a present but malformed File
	// Creation Time.
	// Default: "warning"
	MalformedCreationTime string `yaml:"malformed_creation_time"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from a YAML file. A nonexistent path yields
// the default configuration rather than an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{}
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "./reports"
	}
	if len(cfg.InputExtensions) == 0 {
		cfg.InputExtensions = []string{".ach", ".txt"}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Severities.OverlongRecord == "" {
		cfg.Severities.OverlongRecord = "hint"
	}
	if cfg.Severities.BlockCountMismatch == "" {
		cfg.Severities.BlockCountMismatch = "warning"
	}
	if cfg.Severities.MalformedCreationTime == "" {
		cfg.Severities.MalformedCreationTime = "warning"
	}
}

// validate rejects configurations with unknown severity names, so a typo
// surfaces at startup rather than silently falling back.
func validate(cfg *Config) error {
	names := map[string]string{
		"severities.overlong_record":         cfg.Severities.OverlongRecord,
		"severities.block_count_mismatch":    cfg.Severities.BlockCountMismatch,
		"severities.malformed_creation_time": cfg.Severities.MalformedCreationTime,
	}
	for key, value := range names {
		if _, err := types.ParseSeverity(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// ValidationOptions converts the severity policy into engine options.
// Config validation has already established the names parse.
func (c *Config) ValidationOptions() validation.Options {
	opts := validation.DefaultOptions()
	if s, err := types.ParseSeverity(c.Severities.OverlongRecord); err == nil {
		opts.OverlongRecord = s
	}
	if s, err := types.ParseSeverity(c.Severities.BlockCountMismatch); err == nil {
		opts.BlockCountMismatch = s
	}
	if s, err := types.ParseSeverity(c.Severities.MalformedCreationTime); err == nil {
		opts.MalformedCreationTime = s
	}
	return opts
}
