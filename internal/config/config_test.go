package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	t.Run("api defaults", func(t *testing.T) {
		if cfg.API.BaseURL == "" {
			t.Error("default base URL should not be empty")
		}
		if cfg.API.TimeoutSeconds != 15 {
			t.Errorf("TimeoutSeconds = %d, want 15", cfg.API.TimeoutSeconds)
		}
	})

	t.Run("meeting window defaults", func(t *testing.T) {
		if cfg.Meeting.MentorJoinLeadMinutes != 15 {
			t.Errorf("MentorJoinLeadMinutes = %d, want 15", cfg.Meeting.MentorJoinLeadMinutes)
		}
		if cfg.Meeting.MentorJoinLagMinutes != 30 {
			t.Errorf("MentorJoinLagMinutes = %d, want 30", cfg.Meeting.MentorJoinLagMinutes)
		}
		if cfg.Meeting.UserJoinLeadMinutes != 5 {
			t.Errorf("UserJoinLeadMinutes = %d, want 5", cfg.Meeting.UserJoinLeadMinutes)
		}
		if cfg.Meeting.UserJoinLagMinutes != 15 {
			t.Errorf("UserJoinLagMinutes = %d, want 15", cfg.Meeting.UserJoinLagMinutes)
		}
	})

	t.Run("payment defaults", func(t *testing.T) {
		if cfg.Payment.Provider != "razorpay" {
			t.Errorf("Provider = %q, want %q", cfg.Payment.Provider, "razorpay")
		}
		if cfg.Payment.CheckoutTimeoutMinutes != 10 {
			t.Errorf("CheckoutTimeoutMinutes = %d, want 10", cfg.Payment.CheckoutTimeoutMinutes)
		}
	})

	t.Run("defaults validate cleanly", func(t *testing.T) {
		if errs := cfg.Validate(); len(errs) > 0 {
			t.Errorf("default config should validate, got %v", errs)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("loads defaults through viper", func(t *testing.T) {
		viper.Reset()
		SetDefaults()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.API.BaseURL != Default().API.BaseURL {
			t.Errorf("BaseURL = %q, want default", cfg.API.BaseURL)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("Level = %q, want %q", cfg.Logging.Level, "info")
		}
	})

	t.Run("overrides from config file", func(t *testing.T) {
		viper.Reset()
		SetDefaults()

		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := "api:\n  base_url: http://localhost:8080\ntui:\n  clock_24h: true\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			t.Fatalf("read config: %v", err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.API.BaseURL != "http://localhost:8080" {
			t.Errorf("BaseURL = %q, want override", cfg.API.BaseURL)
		}
		if !cfg.TUI.Clock24h {
			t.Error("Clock24h override not applied")
		}
		// Defaults still fill the rest.
		if cfg.Payment.Provider != "razorpay" {
			t.Errorf("Provider = %q, want default", cfg.Payment.Provider)
		}
	})

	t.Run("invalid config fails load", func(t *testing.T) {
		viper.Reset()
		SetDefaults()
		viper.Set("api.timeout_seconds", -1)

		if _, err := Load(); err == nil {
			t.Error("expected validation error for negative timeout")
		}
	})
}

func TestConfigDir(t *testing.T) {
	t.Run("respects XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		want := filepath.Join("/tmp/xdg", "mentorlane")
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})

	t.Run("falls back to home config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		got := ConfigDir()
		if !strings.HasSuffix(got, filepath.Join(".config", "mentorlane")) && got != ".mentorlane" {
			t.Errorf("ConfigDir() = %q, want ~/.config/mentorlane", got)
		}
	})
}

func TestResolveSessionDir(t *testing.T) {
	t.Run("empty uses config dir", func(t *testing.T) {
		s := SessionConfig{}
		if got := s.ResolveSessionDir(); got != ConfigDir() {
			t.Errorf("ResolveSessionDir() = %q, want config dir", got)
		}
	})

	t.Run("tilde expansion", func(t *testing.T) {
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		s := SessionConfig{Dir: "~/sessions"}
		want := filepath.Join(home, "sessions")
		if got := s.ResolveSessionDir(); got != want {
			t.Errorf("ResolveSessionDir() = %q, want %q", got, want)
		}
	})

	t.Run("explicit path passes through", func(t *testing.T) {
		s := SessionConfig{Dir: "/var/lib/mentorlane"}
		if got := s.ResolveSessionDir(); got != "/var/lib/mentorlane" {
			t.Errorf("ResolveSessionDir() = %q", got)
		}
	})
}
