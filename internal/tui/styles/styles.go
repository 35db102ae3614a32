package styles

import "github.com/charmbracelet/lipgloss"

// Colors of the active palette. Reassigned by Apply.
var (
	PrimaryColor   = lipgloss.Color("#A78BFA")
	SecondaryColor = lipgloss.Color("#10B981")
	WarningColor   = lipgloss.Color("#F59E0B")
	ErrorColor     = lipgloss.Color("#F87171")
	MutedColor     = lipgloss.Color("#9CA3AF")
	SurfaceColor   = lipgloss.Color("#1F2937")
	TextColor      = lipgloss.Color("#F9FAFB")
	BorderColor    = lipgloss.Color("#6B7280")

	StatusScheduledColor  = lipgloss.Color("#60A5FA")
	StatusInProgressColor = lipgloss.Color("#10B981")
	StatusCompletedColor  = lipgloss.Color("#A78BFA")
	StatusCancelledColor  = lipgloss.Color("#9CA3AF")
	StatusNoShowColor     = lipgloss.Color("#F87171")

	SlotAvailableColor = lipgloss.Color("#10B981")
	SlotSelectedColor  = lipgloss.Color("#A78BFA")
	SlotTakenColor     = lipgloss.Color("#6B7280")
)

// Convenience styles and composites. Rebuilt by Apply.
var (
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Header      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	StatusBadge lipgloss.Style
	ContentBox  lipgloss.Style
	Sidebar     lipgloss.Style
	StatusBar   lipgloss.Style
	HelpBar     lipgloss.Style
	HelpKey     lipgloss.Style

	SlotAvailable lipgloss.Style
	SlotSelected  lipgloss.Style
	SlotTaken     lipgloss.Style

	WarningBanner lipgloss.Style
	ErrorBanner   lipgloss.Style
)

func init() {
	Apply(builtinPalettes[ThemeDefault])
}

// Apply rebuilds every exported style from the given palette.
func Apply(p ColorPalette) {
	PrimaryColor = p.Primary
	SecondaryColor = p.Secondary
	WarningColor = p.Warning
	ErrorColor = p.Error
	MutedColor = p.Muted
	SurfaceColor = p.Surface
	TextColor = p.Text
	BorderColor = p.Border

	StatusScheduledColor = p.StatusScheduled
	StatusInProgressColor = p.StatusInProgress
	StatusCompletedColor = p.StatusCompleted
	StatusCancelledColor = p.StatusCancelled
	StatusNoShowColor = p.StatusNoShow

	SlotAvailableColor = p.SlotAvailable
	SlotSelectedColor = p.SlotSelected
	SlotTakenColor = p.SlotTaken

	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning = lipgloss.NewStyle().Foreground(WarningColor)
	Error = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted = lipgloss.NewStyle().Foreground(MutedColor)
	Text = lipgloss.NewStyle().Foreground(TextColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1).
		PaddingBottom(1)

	TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(PrimaryColor).
		Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
		Foreground(MutedColor).
		Padding(0, 2)

	StatusBadge = lipgloss.NewStyle().
		Padding(0, 1).
		MarginRight(1)

	ContentBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 2)

	Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 1)

	StatusBar = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(SurfaceColor).
		Padding(0, 1)

	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	SlotAvailable = lipgloss.NewStyle().Foreground(SlotAvailableColor)
	SlotSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(SlotSelectedColor)
	SlotTaken = lipgloss.NewStyle().
		Foreground(SlotTakenColor).
		Strikethrough(true)

	WarningBanner = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(WarningColor).
		Padding(0, 1)

	ErrorBanner = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(ErrorColor).
		Padding(0, 1)
}

// StatusColor returns the color for a meeting status display string.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "scheduled":
		return StatusScheduledColor
	case "in_progress":
		return StatusInProgressColor
	case "completed":
		return StatusCompletedColor
	case "cancelled":
		return StatusCancelledColor
	case "no_show":
		return StatusNoShowColor
	default:
		return MutedColor
	}
}
