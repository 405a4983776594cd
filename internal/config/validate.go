package config

import (
	"fmt"

	"github.com/KilimcininKorOglu/bintree/internal/bintree"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the configuration and returns a list of validation errors.
// An empty slice indicates the configuration is valid.
func ValidateConfig(config *Config) []error {
	var errs []error

	if config.Tree != "" {
		if _, err := bintree.Deserialize[int64](config.Tree); err != nil {
			errs = append(errs, ValidationError{
				Field:   "tree",
				Message: err.Error(),
			})
		}
	}

	errs = append(errs, validateLogConfig(&config.Logging)...)
	errs = append(errs, validateRenderConfig(&config.Render)...)

	return errs
}

func validateLogConfig(config *LogConfig) []error {
	var errs []error

	switch config.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level %q, must be one of: debug, info, warn, error", config.Level),
		})
	}

	switch config.Format {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid log format %q, must be one of: text, json", config.Format),
		})
	}

	return errs
}

func validateRenderConfig(config *RenderConfig) []error {
	if config.NullMarker == "" {
		return []error{ValidationError{
			Field:   "render.nullMarker",
			Message: "null marker cannot be empty",
		}}
	}
	return nil
}
