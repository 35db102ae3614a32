package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete Mentorlane configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Session SessionConfig `mapstructure:"session"`
	Payment PaymentConfig `mapstructure:"payment"`
	Meeting MeetingConfig `mapstructure:"meeting"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig controls how the client talks to the marketplace backend
type APIConfig struct {
	// BaseURL is the backend base URL, without a trailing slash
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds is the per-request timeout (default: 15)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// UserAgent is sent with every request
	UserAgent string `mapstructure:"user_agent"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// Clock24h renders slot times in 24-hour format instead of AM/PM
	Clock24h bool `mapstructure:"clock_24h"`
	// MaxListRows limits how many mentors or orders are shown per page
	MaxListRows int `mapstructure:"max_list_rows"`
}

// SessionConfig controls the persisted login session
type SessionConfig struct {
	// Dir overrides where the session file is stored.
	// If empty, defaults to the config directory.
	// Supports ~ for home directory expansion.
	Dir string `mapstructure:"dir"`
	// PersistCookies keeps backend auth cookies across restarts (default: true)
	PersistCookies bool `mapstructure:"persist_cookies"`
}

// PaymentConfig controls the payment-provider hand-off
type PaymentConfig struct {
	// Provider is the checkout provider (default: "razorpay")
	Provider string `mapstructure:"provider"`
	// KeyID is the provider's publishable key passed to checkout
	KeyID string `mapstructure:"key_id"`
	// CheckoutTimeoutMinutes bounds how long a checkout hand-off may stay open
	// before the client treats it as dismissed (default: 10)
	CheckoutTimeoutMinutes int `mapstructure:"checkout_timeout_minutes"`
	// OpenCommand overrides the command used to open the hosted checkout
	// page. Empty picks the platform browser opener.
	OpenCommand string `mapstructure:"open_command"`
}

// MeetingConfig controls join windows and the in-meeting timer.
// Lead is minutes before the scheduled start when joining opens;
// lag is minutes after the start when joining closes. Both inclusive.
type MeetingConfig struct {
	MentorJoinLeadMinutes int `mapstructure:"mentor_join_lead_minutes"`
	MentorJoinLagMinutes  int `mapstructure:"mentor_join_lag_minutes"`
	UserJoinLeadMinutes   int `mapstructure:"user_join_lead_minutes"`
	UserJoinLagMinutes    int `mapstructure:"user_join_lag_minutes"`
	// WarnBeforeEndMinutes is when the single end-of-session warning fires
	WarnBeforeEndMinutes int `mapstructure:"warn_before_end_minutes"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir overrides where log files are written. Empty means the config directory.
	Dir string `mapstructure:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 5)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 2)
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated log files (default: false)
	Compress bool `mapstructure:"compress"`
}

// Timeout returns the API request timeout as a time.Duration
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CheckoutTimeout returns the checkout hand-off timeout as a time.Duration
func (c *PaymentConfig) CheckoutTimeout() time.Duration {
	return time.Duration(c.CheckoutTimeoutMinutes) * time.Minute
}

// MentorJoinLead returns the mentor join lead as a time.Duration
func (c *MeetingConfig) MentorJoinLead() time.Duration {
	return time.Duration(c.MentorJoinLeadMinutes) * time.Minute
}

// MentorJoinLag returns the mentor join lag as a time.Duration
func (c *MeetingConfig) MentorJoinLag() time.Duration {
	return time.Duration(c.MentorJoinLagMinutes) * time.Minute
}

// UserJoinLead returns the user join lead as a time.Duration
func (c *MeetingConfig) UserJoinLead() time.Duration {
	return time.Duration(c.UserJoinLeadMinutes) * time.Minute
}

// UserJoinLag returns the user join lag as a time.Duration
func (c *MeetingConfig) UserJoinLag() time.Duration {
	return time.Duration(c.UserJoinLagMinutes) * time.Minute
}

// WarnBeforeEnd returns the end-of-session warning threshold as a time.Duration
func (c *MeetingConfig) WarnBeforeEnd() time.Duration {
	return time.Duration(c.WarnBeforeEndMinutes) * time.Minute
}

// ResolveSessionDir returns the resolved session directory path.
// If Dir is empty, it returns the config directory.
// If Dir starts with ~, it expands to the user's home directory.
func (c *SessionConfig) ResolveSessionDir() string {
	if c.Dir == "" {
		return ConfigDir()
	}
	return expandHome(c.Dir)
}

// ResolveLogDir returns the resolved log directory path.
// If Dir is empty, it returns the config directory.
func (c *LoggingConfig) ResolveLogDir() string {
	if c.Dir == "" {
		return ConfigDir()
	}
	return expandHome(c.Dir)
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://api.mentorlane.app",
			TimeoutSeconds: 15,
			UserAgent:      "mentorlane-cli",
		},
		TUI: TUIConfig{
			Theme:       "default",
			Clock24h:    false,
			MaxListRows: 20,
		},
		Session: SessionConfig{
			Dir:            "", // Empty means use the config directory
			PersistCookies: true,
		},
		Payment: PaymentConfig{
			Provider:               "razorpay",
			KeyID:                  "",
			CheckoutTimeoutMinutes: 10, // Backend releases reserved slots after 10 minutes
		},
		Meeting: MeetingConfig{
			MentorJoinLeadMinutes: 15,
			MentorJoinLagMinutes:  30,
			UserJoinLeadMinutes:   5,
			UserJoinLagMinutes:    15,
			WarnBeforeEndMinutes:  2,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "",
			MaxSizeMB:  5,
			MaxBackups: 2,
			Compress:   false,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// API defaults
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)
	viper.SetDefault("api.user_agent", defaults.API.UserAgent)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.clock_24h", defaults.TUI.Clock24h)
	viper.SetDefault("tui.max_list_rows", defaults.TUI.MaxListRows)

	// Session defaults
	viper.SetDefault("session.dir", defaults.Session.Dir)
	viper.SetDefault("session.persist_cookies", defaults.Session.PersistCookies)

	// Payment defaults
	viper.SetDefault("payment.provider", defaults.Payment.Provider)
	viper.SetDefault("payment.key_id", defaults.Payment.KeyID)
	viper.SetDefault("payment.checkout_timeout_minutes", defaults.Payment.CheckoutTimeoutMinutes)
	viper.SetDefault("payment.open_command", defaults.Payment.OpenCommand)

	// Meeting defaults
	viper.SetDefault("meeting.mentor_join_lead_minutes", defaults.Meeting.MentorJoinLeadMinutes)
	viper.SetDefault("meeting.mentor_join_lag_minutes", defaults.Meeting.MentorJoinLagMinutes)
	viper.SetDefault("meeting.user_join_lead_minutes", defaults.Meeting.UserJoinLeadMinutes)
	viper.SetDefault("meeting.user_join_lag_minutes", defaults.Meeting.UserJoinLagMinutes)
	viper.SetDefault("meeting.warn_before_end_minutes", defaults.Meeting.WarnBeforeEndMinutes)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mentorlane")
	}
	// Fall back to ~/.config/mentorlane
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mentorlane"
	}
	return filepath.Join(home, ".config", "mentorlane")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidProviders returns the list of supported payment providers
func ValidProviders() []string {
	return []string{"razorpay"}
}

// IsValidProvider checks if the given provider is supported
func IsValidProvider(provider string) bool {
	for _, valid := range ValidProviders() {
		if provider == valid {
			return true
		}
	}
	return false
}
