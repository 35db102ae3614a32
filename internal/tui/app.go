package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mentorlane/internal/errors"
	"mentorlane/internal/tui/styles"
)

// Run starts the TUI and blocks until the user quits.
func Run(deps Deps) error {
	program := tea.NewProgram(NewModel(deps), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init starts the directory load, the payment listener, and the clock.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadMentors(m.deps.Client),
		tick(),
		m.spinner.Tick,
	}
	if m.deps.Prompt != nil {
		cmds = append(cmds, awaitPaymentRequest(m.deps.Prompt))
	}
	return tea.Batch(cmds...)
}

// Update routes messages to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		var cmd tea.Cmd
		if m.view == viewRoom {
			m, cmd = m.updateRoomTick()
		}
		return m, tea.Batch(cmd, tick())

	case errMsg:
		m.setError(msg.err)
		m.directory.loading = false
		m.booking.loading = false
		m.orders.loading = false
		return m, nil

	case paymentOpenMsg:
		m.booking.payment = newPaymentForm(msg.order)
		// Re-arm the listener for the next hand-off.
		return m, awaitPaymentRequest(m.deps.Prompt)

	case mentorsLoadedMsg:
		return m.updateMentorsLoaded(msg), nil

	case calendarLoadedMsg:
		return m.updateCalendarLoaded(msg), nil

	case submitDoneMsg:
		return m.updateSubmitDone(msg)

	case meetingsLoadedMsg:
		return m.updateMeetingsLoaded(msg), nil

	case meetingCancelledMsg:
		return m.updateMeetingCancelled(msg)

	case joinRecordedMsg:
		if msg.err != nil {
			// The room stays open; the backend record is advisory.
			m.deps.Log.Warn("join not recorded", "meeting_id", msg.meetingID, "error", msg.err)
		}
		return m, nil

	case credentialsMsg:
		if m.room.meeting != nil && m.room.meeting.ID == msg.meetingID {
			m.room.creds = msg.creds
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

// updateKey routes key presses, giving focused inputs first claim.
func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys that work everywhere except inside a text input.
	if !m.inputFocused() {
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case "1":
			return m.switchToDirectory()
		case "2":
			return m.switchToOrders()
		}
	} else if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.view {
	case viewDirectory:
		return m.updateDirectory(msg)
	case viewBooking:
		return m.updateBooking(msg)
	case viewOrders:
		return m.updateOrders(msg)
	case viewRoom:
		return m.updateRoom(msg)
	}
	return m, nil
}

// inputFocused reports whether a text input currently owns key presses.
func (m Model) inputFocused() bool {
	switch m.view {
	case viewDirectory:
		return m.directory.search.Focused()
	case viewBooking:
		if m.booking.payment != nil {
			return true
		}
		return m.booking.topic.Focused()
	case viewOrders:
		return m.orders.cancel != nil
	}
	return false
}

func (m Model) switchToDirectory() (tea.Model, tea.Cmd) {
	m.view = viewDirectory
	m.errorMessage = ""
	if len(m.directory.mentors) == 0 && !m.directory.loading {
		m.directory.loading = true
		return m, loadMentors(m.deps.Client)
	}
	return m, nil
}

func (m Model) switchToOrders() (tea.Model, tea.Cmd) {
	m.view = viewOrders
	m.errorMessage = ""
	m.orders.loading = true
	return m, loadMeetings(m.deps.Client, m.orders.query())
}

// View renders the active screen with the shared chrome.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting mentorlane..."
	}

	var body string
	switch m.view {
	case viewDirectory:
		body = m.viewDirectory()
	case viewBooking:
		body = m.viewBooking()
	case viewOrders:
		body = m.viewOrders()
	case viewRoom:
		body = m.viewRoom()
	}

	sections := []string{m.renderHeader(), body}
	if m.errorMessage != "" {
		sections = append(sections, styles.ErrorBanner.Render(m.errorMessage))
	} else if m.statusMessage != "" {
		sections = append(sections, styles.Secondary.Render(m.statusMessage))
	}
	sections = append(sections, m.renderHelpBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	tabs := []string{
		m.renderTab("Mentors", viewDirectory),
		m.renderTab("My Sessions", viewOrders),
	}
	if m.view == viewBooking {
		tabs = append(tabs, styles.TabActive.Render("Book"))
	}
	if m.view == viewRoom {
		tabs = append(tabs, styles.TabActive.Render("Room"))
	}

	who := ""
	if m.deps.User != nil {
		who = styles.Muted.Render(fmt.Sprintf("%s (%s)", m.deps.User.Name, m.deps.User.Role))
	}
	left := strings.Join(tabs, " ")
	if who == "" {
		return styles.Header.Render(left)
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(who) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Render(left + strings.Repeat(" ", gap) + who)
}

func (m Model) renderTab(label string, v activeView) string {
	if m.view == v {
		return styles.TabActive.Render(label)
	}
	return styles.TabInactive.Render(label)
}

func (m Model) renderHelpBar() string {
	var keys []string
	switch m.view {
	case viewDirectory:
		keys = []string{"[/] search", "[s] sort", "[m] mode", "[enter] book", "[2] sessions"}
	case viewBooking:
		if m.booking.payment != nil {
			keys = []string{"[tab] next field", "[enter] paid", "[esc] dismiss", "[ctrl+f] failed"}
		} else {
			keys = []string{"[←/→] day", "[↑/↓] slot", "[space] pick", "[t] topic", "[m] mode", "[enter] book", "[esc] back"}
		}
	case viewOrders:
		if m.orders.cancel != nil {
			keys = []string{"[enter] confirm", "[esc] keep"}
		} else {
			keys = []string{"[f] filter", "[n/p] page", "[enter] join", "[c] cancel", "[1] mentors"}
		}
	case viewRoom:
		keys = []string{"[esc] leave"}
	}
	keys = append(keys, "[?] help", "[q] quit")

	styled := make([]string, len(keys))
	for i, k := range keys {
		open := strings.Index(k, "]")
		styled[i] = styles.HelpKey.Render(k[:open+1]) + styles.Muted.Render(k[open+1:])
	}
	return styles.HelpBar.Render(strings.Join(styled, "  "))
}

// userMessage turns an error into a line safe to show.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.NeedsSupport(err) {
		return err.Error() + " (reference your order ID when contacting support)"
	}
	if errors.IsUserFacing(err) {
		return err.Error()
	}
	return "something went wrong; see the log for details"
}
