package styles

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors are hex format (#RRGGBB or #RGB). Status and slot colors
// default to base colors when omitted.
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	Status ThemeStatusColors `yaml:"status,omitempty"`
	Slots  ThemeSlotColors   `yaml:"slots,omitempty"`
}

// ThemeStatusColors defines colors for meeting statuses.
type ThemeStatusColors struct {
	Scheduled  string `yaml:"scheduled,omitempty"`
	InProgress string `yaml:"in_progress,omitempty"`
	Completed  string `yaml:"completed,omitempty"`
	Cancelled  string `yaml:"cancelled,omitempty"`
	NoShow     string `yaml:"no_show,omitempty"`
}

// ThemeSlotColors defines colors for calendar slots.
type ThemeSlotColors struct {
	Available string `yaml:"available,omitempty"`
	Selected  string `yaml:"selected,omitempty"`
	Taken     string `yaml:"taken,omitempty"`
}

// LoadThemeFile reads and validates a theme definition from path.
func LoadThemeFile(path string) (*ThemeFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	var theme ThemeFile
	if err := yaml.Unmarshal(raw, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return &theme, nil
}

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks that the theme has a name and that every required
// base color is a valid hex value.
func (t *ThemeFile) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("theme is missing a name")
	}
	required := map[string]string{
		"primary":   t.Colors.Primary,
		"secondary": t.Colors.Secondary,
		"warning":   t.Colors.Warning,
		"error":     t.Colors.Error,
		"muted":     t.Colors.Muted,
		"surface":   t.Colors.Surface,
		"text":      t.Colors.Text,
		"border":    t.Colors.Border,
	}
	for field, value := range required {
		if !hexColorRe.MatchString(value) {
			return fmt.Errorf("theme %q: color %q is not a valid hex color: %q", t.Name, field, value)
		}
	}
	return nil
}

// ToPalette converts a theme file into a ColorPalette, filling omitted
// status and slot colors from the base palette.
func (t *ThemeFile) ToPalette() ColorPalette {
	c := t.Colors
	return ColorPalette{
		Primary:   lipgloss.Color(c.Primary),
		Secondary: lipgloss.Color(c.Secondary),
		Warning:   lipgloss.Color(c.Warning),
		Error:     lipgloss.Color(c.Error),
		Muted:     lipgloss.Color(c.Muted),
		Surface:   lipgloss.Color(c.Surface),
		Text:      lipgloss.Color(c.Text),
		Border:    lipgloss.Color(c.Border),

		StatusScheduled:  colorOrDefault(c.Status.Scheduled, c.Primary),
		StatusInProgress: colorOrDefault(c.Status.InProgress, c.Secondary),
		StatusCompleted:  colorOrDefault(c.Status.Completed, c.Primary),
		StatusCancelled:  colorOrDefault(c.Status.Cancelled, c.Muted),
		StatusNoShow:     colorOrDefault(c.Status.NoShow, c.Error),

		SlotAvailable: colorOrDefault(c.Slots.Available, c.Secondary),
		SlotSelected:  colorOrDefault(c.Slots.Selected, c.Primary),
		SlotTaken:     colorOrDefault(c.Slots.Taken, c.Muted),
	}
}

func colorOrDefault(color, fallback string) lipgloss.Color {
	if hexColorRe.MatchString(color) {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(fallback)
}

var (
	customMu     sync.RWMutex
	customThemes = map[string]*ThemeFile{}
)

// RegisterCustomTheme makes a loaded theme available by name.
func RegisterCustomTheme(name string, theme *ThemeFile) {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes[name] = theme
}

// ClearCustomThemes drops every registered custom theme. Used by tests.
func ClearCustomThemes() {
	customMu.Lock()
	defer customMu.Unlock()
	customThemes = map[string]*ThemeFile{}
}

// IsCustomTheme checks whether a custom theme is registered under name.
func IsCustomTheme(name string) bool {
	customMu.RLock()
	defer customMu.RUnlock()
	_, ok := customThemes[name]
	return ok
}

// CustomThemeNames returns registered custom theme names, sorted.
func CustomThemeNames() []string {
	customMu.RLock()
	defer customMu.RUnlock()
	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func loadCustomPalette(name string) (ColorPalette, bool) {
	customMu.RLock()
	theme := customThemes[name]
	customMu.RUnlock()
	if theme == nil {
		return ColorPalette{}, false
	}
	return theme.ToPalette(), true
}

// DiscoverCustomThemes loads every *.yaml theme under dir and registers
// each one under its file stem. Invalid files are reported, not fatal.
func DiscoverCustomThemes(dir string) ([]string, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{err}
	}

	var loaded []string
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		theme, err := LoadThemeFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		RegisterCustomTheme(name, theme)
		loaded = append(loaded, name)
	}
	sort.Strings(loaded)
	return loaded, errs
}
