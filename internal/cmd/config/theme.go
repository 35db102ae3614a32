package config

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	appconfig "mentorlane/internal/config"
	"mentorlane/internal/tui/styles"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List and preview color themes",
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and custom themes",
	RunE:  runThemeList,
}

var themePreviewCmd = &cobra.Command{
	Use:   "preview <name>",
	Short: "Preview a theme's palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemePreview,
}

func registerThemeCmd(parent *cobra.Command) {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themePreviewCmd)
	parent.AddCommand(themeCmd)
}

func themesDir() string {
	return filepath.Join(appconfig.ConfigDir(), "themes")
}

func runThemeList(cmd *cobra.Command, args []string) error {
	_, errs := styles.DiscoverCustomThemes(themesDir())
	for _, err := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipping theme: %v\n", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Built-in:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
	}
	custom := styles.CustomThemeNames()
	if len(custom) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Custom (%s):\n", themesDir())
		for _, name := range custom {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
		}
	}
	return nil
}

func runThemePreview(cmd *cobra.Command, args []string) error {
	name := args[0]
	styles.DiscoverCustomThemes(themesDir())
	if !styles.IsValidTheme(name) {
		return fmt.Errorf("unknown theme %q; see 'mentorlane config theme list'", name)
	}

	p := styles.PaletteFor(name)
	swatches := []struct {
		label string
		color lipgloss.Color
	}{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"warning", p.Warning},
		{"error", p.Error},
		{"muted", p.Muted},
		{"text", p.Text},
		{"slot available", p.SlotAvailable},
		{"slot selected", p.SlotSelected},
		{"slot taken", p.SlotTaken},
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Theme %s:\n", name)
	for _, s := range swatches {
		block := lipgloss.NewStyle().Background(s.color).Render("      ")
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %-14s %s\n", block, s.label, string(s.color))
	}
	return nil
}
