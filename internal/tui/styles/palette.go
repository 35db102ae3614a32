package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme, cool blue-gray
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
	}
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// ColorPalette defines the color scheme for a theme.
// All colors should meet WCAG AA contrast requirements (4.5:1 ratio).
type ColorPalette struct {
	// Primary accent color (emphasis, active elements)
	Primary lipgloss.Color
	// Secondary accent color (secondary emphasis, success states)
	Secondary lipgloss.Color
	// Warning color (warnings, attention-needed states)
	Warning lipgloss.Color
	// Error color (errors, failures)
	Error lipgloss.Color
	// Muted color (de-emphasized text)
	Muted lipgloss.Color
	// Surface color (panel backgrounds)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (panel borders)
	Border lipgloss.Color

	// Meeting status colors
	StatusScheduled  lipgloss.Color
	StatusInProgress lipgloss.Color
	StatusCompleted  lipgloss.Color
	StatusCancelled  lipgloss.Color
	StatusNoShow     lipgloss.Color

	// Calendar slot colors
	SlotAvailable lipgloss.Color
	SlotSelected  lipgloss.Color
	SlotTaken     lipgloss.Color
}

// builtinPalettes maps theme names to their color palettes.
var builtinPalettes = map[ThemeName]ColorPalette{
	ThemeDefault: {
		Primary:   lipgloss.Color("#A78BFA"),
		Secondary: lipgloss.Color("#10B981"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#F87171"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Surface:   lipgloss.Color("#1F2937"),
		Text:      lipgloss.Color("#F9FAFB"),
		Border:    lipgloss.Color("#6B7280"),

		StatusScheduled:  lipgloss.Color("#60A5FA"),
		StatusInProgress: lipgloss.Color("#10B981"),
		StatusCompleted:  lipgloss.Color("#A78BFA"),
		StatusCancelled:  lipgloss.Color("#9CA3AF"),
		StatusNoShow:     lipgloss.Color("#F87171"),

		SlotAvailable: lipgloss.Color("#10B981"),
		SlotSelected:  lipgloss.Color("#A78BFA"),
		SlotTaken:     lipgloss.Color("#6B7280"),
	},
	ThemeMonokai: {
		Primary:   lipgloss.Color("#AE81FF"),
		Secondary: lipgloss.Color("#A6E22E"),
		Warning:   lipgloss.Color("#E6DB74"),
		Error:     lipgloss.Color("#F92672"),
		Muted:     lipgloss.Color("#88846F"),
		Surface:   lipgloss.Color("#272822"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#75715E"),

		StatusScheduled:  lipgloss.Color("#66D9EF"),
		StatusInProgress: lipgloss.Color("#A6E22E"),
		StatusCompleted:  lipgloss.Color("#AE81FF"),
		StatusCancelled:  lipgloss.Color("#88846F"),
		StatusNoShow:     lipgloss.Color("#F92672"),

		SlotAvailable: lipgloss.Color("#A6E22E"),
		SlotSelected:  lipgloss.Color("#AE81FF"),
		SlotTaken:     lipgloss.Color("#75715E"),
	},
	ThemeDracula: {
		Primary:   lipgloss.Color("#BD93F9"),
		Secondary: lipgloss.Color("#50FA7B"),
		Warning:   lipgloss.Color("#F1FA8C"),
		Error:     lipgloss.Color("#FF5555"),
		Muted:     lipgloss.Color("#6272A4"),
		Surface:   lipgloss.Color("#282A36"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#6272A4"),

		StatusScheduled:  lipgloss.Color("#8BE9FD"),
		StatusInProgress: lipgloss.Color("#50FA7B"),
		StatusCompleted:  lipgloss.Color("#BD93F9"),
		StatusCancelled:  lipgloss.Color("#6272A4"),
		StatusNoShow:     lipgloss.Color("#FF5555"),

		SlotAvailable: lipgloss.Color("#50FA7B"),
		SlotSelected:  lipgloss.Color("#BD93F9"),
		SlotTaken:     lipgloss.Color("#6272A4"),
	},
	ThemeNord: {
		Primary:   lipgloss.Color("#88C0D0"),
		Secondary: lipgloss.Color("#A3BE8C"),
		Warning:   lipgloss.Color("#EBCB8B"),
		Error:     lipgloss.Color("#BF616A"),
		Muted:     lipgloss.Color("#7B88A1"),
		Surface:   lipgloss.Color("#2E3440"),
		Text:      lipgloss.Color("#ECEFF4"),
		Border:    lipgloss.Color("#4C566A"),

		StatusScheduled:  lipgloss.Color("#81A1C1"),
		StatusInProgress: lipgloss.Color("#A3BE8C"),
		StatusCompleted:  lipgloss.Color("#88C0D0"),
		StatusCancelled:  lipgloss.Color("#7B88A1"),
		StatusNoShow:     lipgloss.Color("#BF616A"),

		SlotAvailable: lipgloss.Color("#A3BE8C"),
		SlotSelected:  lipgloss.Color("#88C0D0"),
		SlotTaken:     lipgloss.Color("#4C566A"),
	},
}

// PaletteFor returns the palette for a theme name. Custom themes are
// looked up on disk; unknown names fall back to the default palette.
func PaletteFor(name string) ColorPalette {
	if p, ok := builtinPalettes[ThemeName(name)]; ok {
		return p
	}
	if p, ok := loadCustomPalette(name); ok {
		return p
	}
	return builtinPalettes[ThemeDefault]
}

// ApplyTheme switches the active style set to the named theme.
func ApplyTheme(name string) {
	Apply(PaletteFor(name))
}
