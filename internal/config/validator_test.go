package config

import (
	"strings"
	"testing"
)

// validConfig returns a config that passes validation, for tests to break.
func validConfig() *Config {
	return Default()
}

func TestValidateAPI(t *testing.T) {
	t.Run("empty base URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.API.BaseURL = ""
		errs := cfg.Validate()
		if !hasFieldError(errs, "api.base_url") {
			t.Errorf("expected api.base_url error, got %v", errs)
		}
	})

	t.Run("relative base URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.API.BaseURL = "not-a-url"
		if !hasFieldError(cfg.Validate(), "api.base_url") {
			t.Error("expected error for URL without scheme")
		}
	})

	t.Run("zero timeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.API.TimeoutSeconds = 0
		if !hasFieldError(cfg.Validate(), "api.timeout_seconds") {
			t.Error("expected error for zero timeout")
		}
	})

}

func TestValidateTUI(t *testing.T) {
	t.Run("unknown theme passes through", func(t *testing.T) {
		// Custom themes are resolved against the themes directory at
		// startup, so config validation accepts any name.
		cfg := validConfig()
		cfg.TUI.Theme = "solarized"
		if hasFieldError(cfg.Validate(), "tui.theme") {
			t.Error("theme names should not fail config validation")
		}
	})

	t.Run("negative list rows", func(t *testing.T) {
		cfg := validConfig()
		cfg.TUI.MaxListRows = -1
		if !hasFieldError(cfg.Validate(), "tui.max_list_rows") {
			t.Error("expected error for negative list rows")
		}
	})
}

func TestValidatePayment(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		cfg := validConfig()
		cfg.Payment.Provider = "stripe"
		if !hasFieldError(cfg.Validate(), "payment.provider") {
			t.Error("expected error for unsupported provider")
		}
	})

	t.Run("zero checkout timeout", func(t *testing.T) {
		cfg := validConfig()
		cfg.Payment.CheckoutTimeoutMinutes = 0
		if !hasFieldError(cfg.Validate(), "payment.checkout_timeout_minutes") {
			t.Error("expected error for zero checkout timeout")
		}
	})
}

func TestValidateMeeting(t *testing.T) {
	t.Run("negative windows rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Meeting.MentorJoinLeadMinutes = -5
		cfg.Meeting.UserJoinLagMinutes = -1
		errs := cfg.Validate()
		if !hasFieldError(errs, "meeting.mentor_join_lead_minutes") {
			t.Error("expected error for negative mentor lead")
		}
		if !hasFieldError(errs, "meeting.user_join_lag_minutes") {
			t.Error("expected error for negative user lag")
		}
	})
}

func TestValidateLogging(t *testing.T) {
	t.Run("unknown level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logging.Level = "verbose"
		if !hasFieldError(cfg.Validate(), "logging.level") {
			t.Error("expected error for unknown log level")
		}
	})

	t.Run("level is case insensitive", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logging.Level = "DEBUG"
		if hasFieldError(cfg.Validate(), "logging.level") {
			t.Error("uppercase level should be accepted")
		}
	})

	t.Run("negative rotation values", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logging.MaxSizeMB = -1
		cfg.Logging.MaxBackups = -1
		errs := cfg.Validate()
		if !hasFieldError(errs, "logging.max_size_mb") || !hasFieldError(errs, "logging.max_backups") {
			t.Errorf("expected rotation errors, got %v", errs)
		}
	})
}

func TestValidationErrorsFormatting(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{{Field: "api.base_url", Value: "", Message: "must not be empty"}}
		got := errs.Error()
		if !strings.Contains(got, "api.base_url") {
			t.Errorf("Error() = %q, missing field", got)
		}
		if strings.Contains(got, "validation errors") {
			t.Error("single error should not use the multi-error header")
		}
	})

	t.Run("multiple errors numbered", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "a", Value: 1, Message: "bad"},
			{Field: "b", Value: 2, Message: "worse"},
		}
		got := errs.Error()
		if !strings.Contains(got, "2 validation errors") {
			t.Errorf("Error() = %q, missing header", got)
		}
		if !strings.Contains(got, "1. ") || !strings.Contains(got, "2. ") {
			t.Errorf("Error() = %q, missing numbering", got)
		}
	})

	t.Run("empty collection", func(t *testing.T) {
		if got := (ValidationErrors{}).Error(); got != "" {
			t.Errorf("Error() = %q, want empty", got)
		}
	})
}

// hasFieldError reports whether errs contains an error for the given field.
func hasFieldError(errs []ValidationError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
