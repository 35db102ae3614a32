package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"mentorlane/internal/api"
	"mentorlane/internal/booking"
	"mentorlane/internal/logging"
	"mentorlane/internal/meeting"
	"mentorlane/internal/session"
	"mentorlane/internal/tui/styles"
)

// activeView identifies the screen the model is showing.
type activeView int

const (
	viewDirectory activeView = iota
	viewBooking
	viewOrders
	viewRoom
)

// Deps bundles what the TUI needs from the rest of the application.
type Deps struct {
	Client  *api.Client
	Flow    *booking.Flow
	Prompt  *PaymentPrompt
	User    *session.User
	Windows meeting.Windows
	Log     *logging.Logger
	// PageSize is the dashboard page size. Zero means 20.
	PageSize int
	// Clock24h renders times as 15:04 instead of 3:04 PM.
	Clock24h bool
	// WarnBeforeEnd is the end-of-session warning threshold. Zero means
	// two minutes.
	WarnBeforeEnd time.Duration
	// Clock overrides time.Now. Used by tests.
	Clock func() time.Time
}

// Model holds the TUI application state.
type Model struct {
	deps Deps

	view     activeView
	width    int
	height   int
	ready    bool
	quitting bool
	showHelp bool

	errorMessage  string
	statusMessage string

	spinner spinner.Model

	directory directoryState
	booking   bookingState
	orders    ordersState
	room      roomState
}

// NewModel creates the TUI model. Start is viewDirectory.
func NewModel(deps Deps) Model {
	if deps.Log == nil {
		deps.Log = logging.NopLogger()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.PageSize <= 0 {
		deps.PageSize = 20
	}
	if deps.WarnBeforeEnd <= 0 {
		deps.WarnBeforeEnd = 2 * time.Minute
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Primary
	return Model{
		deps:      deps,
		spinner:   sp,
		directory: newDirectoryState(),
		orders:    newOrdersState(deps.PageSize),
	}
}

func (m Model) now() time.Time {
	return m.deps.Clock()
}

// whenLayout is the schedule timestamp layout, honoring the 24-hour
// clock setting.
func (m Model) whenLayout() string {
	if m.deps.Clock24h {
		return "Mon Jan 2 15:04"
	}
	return "Mon Jan 2 3:04 PM"
}

// role returns the signed-in user's role, defaulting to the user role
// so join windows stay conservative.
func (m Model) role() session.Role {
	if m.deps.User == nil {
		return session.RoleUser
	}
	return m.deps.User.Role
}

// setError records an error for the status line.
func (m *Model) setError(err error) {
	m.statusMessage = ""
	m.errorMessage = userMessage(err)
	m.deps.Log.Error("tui error", "error", err)
}

// setStatus records a transient status line message.
func (m *Model) setStatus(msg string) {
	m.errorMessage = ""
	m.statusMessage = msg
}
