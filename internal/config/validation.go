package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "warning": true,
	"error": true, "disabled": true, "off": true,
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateTerminal(config)...)
	validationErrors = append(validationErrors, validatePersistence(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if config.Layout.MinWidth <= 0 {
		validationErrors = append(validationErrors, "layout.min_width must be positive")
	}
	if config.Layout.MinHeight <= 0 {
		validationErrors = append(validationErrors, "layout.min_height must be positive")
	}
	if config.Layout.HandleSize <= 0 {
		validationErrors = append(validationErrors, "layout.handle_size must be positive")
	}
	if config.Layout.DividerSize <= 0 {
		validationErrors = append(validationErrors, "layout.divider_size must be positive")
	}
	if config.Layout.DividerSize > config.Layout.HandleSize && config.Layout.HandleSize > 0 {
		validationErrors = append(validationErrors, "layout.divider_size must not exceed layout.handle_size")
	}
	return validationErrors
}

func validateTerminal(config *Config) []string {
	var validationErrors []string
	if config.Terminal.CellWidth < 1 {
		validationErrors = append(validationErrors, "terminal.cell_width must be at least 1")
	}
	if config.Terminal.CellHeight < 1 {
		validationErrors = append(validationErrors, "terminal.cell_height must be at least 1")
	}
	return validationErrors
}

func validatePersistence(config *Config) []string {
	var validationErrors []string
	if config.Persistence.DebounceMs < 0 {
		validationErrors = append(validationErrors, "persistence.debounce_ms must be non-negative")
	}
	if config.Persistence.Enabled && config.Persistence.DatabasePath == "" {
		validationErrors = append(validationErrors, "persistence.database_path is required when persistence is enabled")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !validLogLevels[config.Logging.Level] {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level %q is not one of trace, debug, info, warn, error, disabled", config.Logging.Level))
	}
	if config.Logging.MaxSizeMB < 0 || config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb, max_backups and max_age_days must be non-negative")
	}
	if config.Logging.EnableFileLog && config.Logging.LogDir == "" {
		validationErrors = append(validationErrors, "logging.log_dir is required when enable_file_log is set")
	}
	return validationErrors
}
