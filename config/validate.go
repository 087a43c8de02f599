package config

import (
	"fmt"
	"io"
	"strings"
)

// validColorModes is the set of accepted values for the "color" setting.
//
//nolint:gochecknoglobals // package-level lookup table for validation
var validColorModes = map[string]bool{
	ColorModeAuto:   true,
	ColorModeAlways: true,
	ColorModeNever:  true,
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
}

func (w ValidationWarning) String() string {
	return fmt.Sprintf("config warning: %s: %s", w.Field, w.Message)
}

// ValidationResults holds the results of configuration validation.
type ValidationResults struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are validation errors.
func (r ValidationResults) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are validation warnings.
func (r ValidationResults) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// ErrorMessage returns a combined error message for all validation errors.
func (r ValidationResults) ErrorMessage() string {
	if !r.HasErrors() {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// WriteWarnings writes all warnings to the given writer.
func (r ValidationResults) WriteWarnings(w io.Writer) {
	for _, warn := range r.Warnings {
		_, _ = fmt.Fprintln(w, warn.String())
	}
}

// Validate checks the configuration for errors and warnings.
// It returns errors for invalid values that would cause runtime issues,
// and warnings for issues that can be safely ignored.
func (c *Config) Validate() ValidationResults {
	var result ValidationResults

	if c.ColorMode != "" && !validColorModes[strings.ToLower(c.ColorMode)] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Message: fmt.Sprintf("invalid mode %q, must be one of: auto, always, never", c.ColorMode),
		})
	}

	if c.WrapWidth < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "wrap_width",
			Message: fmt.Sprintf("must not be negative, got %d", c.WrapWidth),
		})
	}

	if c.UpdateCheck.Interval < 0 {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Field:   "update_check.interval",
			Message: "negative interval disables caching; every run will check",
		})
	}

	return result
}
