package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestApplyTheme(t *testing.T) {
	t.Cleanup(func() { Apply(builtinPalettes[ThemeDefault]) })

	t.Run("switches colors to the named palette", func(t *testing.T) {
		ApplyTheme("dracula")
		if PrimaryColor != builtinPalettes[ThemeDracula].Primary {
			t.Errorf("PrimaryColor = %v", PrimaryColor)
		}
	})

	t.Run("unknown theme falls back to default", func(t *testing.T) {
		ApplyTheme("no-such-theme")
		if PrimaryColor != builtinPalettes[ThemeDefault].Primary {
			t.Errorf("PrimaryColor = %v", PrimaryColor)
		}
	})
}

func TestIsValidTheme(t *testing.T) {
	for _, name := range BuiltinThemes() {
		if !IsValidTheme(name) {
			t.Errorf("IsValidTheme(%q) = false", name)
		}
	}
	if IsValidTheme("hot-dog-stand") {
		t.Error("IsValidTheme(hot-dog-stand) = true")
	}
}

func TestStatusColor(t *testing.T) {
	if StatusColor("scheduled") != StatusScheduledColor {
		t.Error("scheduled should use the scheduled color")
	}
	if StatusColor("???") != MutedColor {
		t.Error("unknown statuses should render muted")
	}
}

const validTheme = `
name: Test Theme
version: "1"
colors:
  primary: "#FF0000"
  secondary: "#00FF00"
  warning: "#FFFF00"
  error: "#FF00FF"
  muted: "#888888"
  surface: "#111111"
  text: "#FFFFFF"
  border: "#444444"
  status:
    cancelled: "#123456"
`

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadThemeFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid theme loads", func(t *testing.T) {
		theme, err := LoadThemeFile(writeTheme(t, dir, "test.yaml", validTheme))
		if err != nil {
			t.Fatalf("LoadThemeFile() error = %v", err)
		}
		if theme.Name != "Test Theme" {
			t.Errorf("Name = %q", theme.Name)
		}

		p := theme.ToPalette()
		if p.Primary != lipgloss.Color("#FF0000") {
			t.Errorf("Primary = %v", p.Primary)
		}
		// Explicit status color wins, omitted ones fall back.
		if p.StatusCancelled != lipgloss.Color("#123456") {
			t.Errorf("StatusCancelled = %v", p.StatusCancelled)
		}
		if p.StatusInProgress != lipgloss.Color("#00FF00") {
			t.Errorf("StatusInProgress = %v, want secondary fallback", p.StatusInProgress)
		}
	})

	t.Run("bad hex color rejected", func(t *testing.T) {
		bad := "name: Bad\nversion: \"1\"\ncolors:\n  primary: \"red\"\n"
		if _, err := LoadThemeFile(writeTheme(t, dir, "bad.yaml", bad)); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("missing name rejected", func(t *testing.T) {
		theme := &ThemeFile{Version: "1"}
		if err := theme.Validate(); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestDiscoverCustomThemes(t *testing.T) {
	t.Cleanup(ClearCustomThemes)
	dir := t.TempDir()

	writeTheme(t, dir, "sunrise.yaml", validTheme)
	writeTheme(t, dir, "broken.yaml", "name: Broken\ncolors:\n  primary: nope\n")
	writeTheme(t, dir, "notes.txt", "not a theme")

	loaded, errs := DiscoverCustomThemes(dir)
	if len(loaded) != 1 || loaded[0] != "sunrise" {
		t.Errorf("loaded = %v", loaded)
	}
	if len(errs) != 1 {
		t.Errorf("errs = %v", errs)
	}
	if !IsCustomTheme("sunrise") {
		t.Error("sunrise should be registered")
	}
	if !IsValidTheme("sunrise") {
		t.Error("registered custom themes are valid")
	}

	t.Run("missing dir is not an error", func(t *testing.T) {
		loaded, errs := DiscoverCustomThemes(filepath.Join(dir, "nope"))
		if loaded != nil || errs != nil {
			t.Errorf("DiscoverCustomThemes() = %v, %v", loaded, errs)
		}
	})
}
