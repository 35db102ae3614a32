// Package config provides CLI commands for inspecting and bootstrapping
// the Mentorlane configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	appconfig "mentorlane/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or bootstrap the Mentorlane configuration",
	Long: `View the effective configuration or create a starter config file.

Use 'config show' to display the merged configuration (defaults, config
file and MENTORLANE_* environment variables), 'config path' to print
where the config file is read from, and 'config init' to write a
commented starter file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	RunE:  runConfigInit,
}

// Register adds the config command tree to the given parent command.
func Register(parent *cobra.Command) {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	registerThemeCmd(configCmd)
	parent.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if _, err := appconfig.Load(); err != nil {
		return err
	}
	out, err := yaml.Marshal(viper.AllSettings())
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintln(cmd.OutOrStdout(), used)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (not created yet; run 'mentorlane config init')\n", appconfig.ConfigFile())
	return nil
}

const starterConfig = `# Mentorlane configuration.
# Every key can also be set via MENTORLANE_* environment variables,
# e.g. MENTORLANE_API_BASE_URL.

api:
  base_url: "https://api.mentorlane.example"
  timeout_seconds: 15

tui:
  # Built-in themes: default, monokai, dracula, nord.
  # Drop *.yaml files into the themes/ directory next to this file for
  # custom themes.
  theme: default
  clock_24h: true

payment:
  provider: razorpay
  # Publishable key for the hosted checkout page.
  key_id: ""
  checkout_timeout_minutes: 10

logging:
  enabled: true
  level: info
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	dir := appconfig.ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
