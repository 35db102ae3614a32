package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "api.timeout_seconds")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the list of valid TUI themes
func ValidThemes() []string {
	return []string{"default", "monokai", "dracula", "nord"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateAPI()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validatePayment()...)
	errors = append(errors, c.validateMeeting()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateAPI validates the APIConfig
func (c *Config) validateAPI() []ValidationError {
	var errors []ValidationError

	if c.API.BaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must not be empty",
		})
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must be an absolute URL with scheme and host",
		})
	}

	if c.API.TimeoutSeconds <= 0 {
		errors = append(errors, ValidationError{
			Field:   "api.timeout_seconds",
			Value:   c.API.TimeoutSeconds,
			Message: "must be positive",
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	// Theme names are not validated here: custom themes are discovered
	// from the themes directory at startup, and unknown names fall back
	// to the default palette.

	if c.TUI.MaxListRows < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.max_list_rows",
			Value:   c.TUI.MaxListRows,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validatePayment validates the PaymentConfig
func (c *Config) validatePayment() []ValidationError {
	var errors []ValidationError

	if c.Payment.Provider != "" && !IsValidProvider(c.Payment.Provider) {
		errors = append(errors, ValidationError{
			Field:   "payment.provider",
			Value:   c.Payment.Provider,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidProviders(), ", ")),
		})
	}

	if c.Payment.CheckoutTimeoutMinutes <= 0 {
		errors = append(errors, ValidationError{
			Field:   "payment.checkout_timeout_minutes",
			Value:   c.Payment.CheckoutTimeoutMinutes,
			Message: "must be positive",
		})
	}

	return errors
}

// validateMeeting validates the MeetingConfig
func (c *Config) validateMeeting() []ValidationError {
	var errors []ValidationError

	windows := []struct {
		field string
		value int
	}{
		{"meeting.mentor_join_lead_minutes", c.Meeting.MentorJoinLeadMinutes},
		{"meeting.mentor_join_lag_minutes", c.Meeting.MentorJoinLagMinutes},
		{"meeting.user_join_lead_minutes", c.Meeting.UserJoinLeadMinutes},
		{"meeting.user_join_lag_minutes", c.Meeting.UserJoinLagMinutes},
		{"meeting.warn_before_end_minutes", c.Meeting.WarnBeforeEndMinutes},
	}
	for _, w := range windows {
		if w.value < 0 {
			errors = append(errors, ValidationError{
				Field:   w.field,
				Value:   w.value,
				Message: "must be non-negative",
			})
		}
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative",
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}
