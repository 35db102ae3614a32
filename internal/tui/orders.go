package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mentorlane/internal/api"
	"mentorlane/internal/meeting"
	"mentorlane/internal/session"
	"mentorlane/internal/tui/styles"
	"mentorlane/internal/util"
)

// ordersState is the sessions dashboard: one page of meeting records
// under a range filter, plus the cancellation form when open.
type ordersState struct {
	loading bool
	page    *api.MeetingPage
	rng     meeting.RangeFilter
	limit   int
	cursor  int
	cancel  *cancelForm
}

// cancelForm collects the organizer's cancellation reason.
type cancelForm struct {
	meetingID string
	reason    textinput.Model
}

func newOrdersState(limit int) ordersState {
	return ordersState{rng: meeting.RangeUpcoming, limit: limit}
}

func (o ordersState) query() api.MeetingQuery {
	page := 1
	if o.page != nil {
		page = o.page.Page
	}
	limit := o.limit
	if limit <= 0 {
		limit = 20
	}
	return api.MeetingQuery{Range: o.rng, Page: page, Limit: limit}
}

// selected returns the meeting under the cursor.
func (o ordersState) selected() *meeting.Meeting {
	if o.page == nil || o.cursor < 0 || o.cursor >= len(o.page.Items) {
		return nil
	}
	return &o.page.Items[o.cursor]
}

func (m Model) updateMeetingsLoaded(msg meetingsLoadedMsg) Model {
	o := &m.orders
	o.loading = false
	o.page = msg.page
	// Re-partition locally: the page may have been fetched before a
	// boundary crossed, so the backend's range can be stale by now.
	o.page.Items = meeting.FilterRecords(msg.page.Items, o.rng, "", m.now())
	if o.cursor >= len(o.page.Items) {
		o.cursor = len(o.page.Items) - 1
	}
	if o.cursor < 0 {
		o.cursor = 0
	}
	return m
}

func (m Model) updateMeetingCancelled(msg meetingCancelledMsg) (tea.Model, tea.Cmd) {
	o := &m.orders
	o.cancel = nil
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.setStatus("session cancelled; the refund is on its way")
	o.loading = true
	return m, loadMeetings(m.deps.Client, o.query())
}

func (m Model) updateOrders(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	o := &m.orders

	if o.cancel != nil {
		switch msg.String() {
		case "esc":
			o.cancel = nil
			return m, nil
		case "enter":
			reason := strings.TrimSpace(o.cancel.reason.Value())
			if reason == "" {
				m.setStatus("a cancellation reason is required")
				return m, nil
			}
			return m, cancelMeeting(m.deps.Client, o.cancel.meetingID, reason)
		default:
			var cmd tea.Cmd
			o.cancel.reason, cmd = o.cancel.reason.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "up", "k":
		if o.cursor > 0 {
			o.cursor--
		}
	case "down", "j":
		if o.page != nil && o.cursor < len(o.page.Items)-1 {
			o.cursor++
		}
	case "f":
		o.rng = nextRange(o.rng)
		o.cursor = 0
		o.loading = true
		q := o.query()
		q.Page = 1
		return m, loadMeetings(m.deps.Client, q)
	case "r":
		o.loading = true
		return m, loadMeetings(m.deps.Client, o.query())
	case "n":
		if o.page != nil && o.page.HasMore() {
			q := o.query()
			q.Page = o.page.Page + 1
			o.loading = true
			o.cursor = 0
			return m, loadMeetings(m.deps.Client, q)
		}
	case "p":
		if o.page != nil && o.page.Page > 1 {
			q := o.query()
			q.Page = o.page.Page - 1
			o.loading = true
			o.cursor = 0
			return m, loadMeetings(m.deps.Client, q)
		}
	case "c":
		if sel := o.selected(); sel != nil && !sel.Status.Terminal() {
			reason := textinput.New()
			reason.Placeholder = "reason shared with the other party"
			reason.CharLimit = 140
			reason.Width = 48
			reason.Focus()
			o.cancel = &cancelForm{meetingID: sel.ID, reason: reason}
			return m, textinput.Blink
		}
	case "enter":
		if sel := o.selected(); sel != nil {
			return m.openRoom(*sel)
		}
	}
	return m, nil
}

func nextRange(r meeting.RangeFilter) meeting.RangeFilter {
	switch r {
	case meeting.RangeUpcoming:
		return meeting.RangePast
	case meeting.RangePast:
		return meeting.RangeAll
	default:
		return meeting.RangeUpcoming
	}
}

func (m Model) viewOrders() string {
	o := m.orders
	var b strings.Builder

	b.WriteString(styles.Title.Render("My sessions"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Showing: ") + styles.Text.Render(string(o.rng)))
	if o.page != nil && o.page.Total > 0 {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("  page %d, %d total", o.page.Page, o.page.Total)))
	}
	b.WriteString("\n\n")

	switch {
	case o.cancel != nil:
		b.WriteString(styles.Warning.Render("Cancel this session? A refund is triggered for the booker."))
		b.WriteString("\n\n")
		b.WriteString(styles.Muted.Render("Reason: ") + o.cancel.reason.View())
	case o.loading:
		b.WriteString(m.spinner.View() + " Loading sessions...")
	case o.page == nil || len(o.page.Items) == 0:
		b.WriteString(styles.Muted.Render("Nothing here yet. Book a mentor with [1]."))
	default:
		for i := range o.page.Items {
			b.WriteString(m.renderMeetingRow(&o.page.Items[i], i == o.cursor))
			b.WriteString("\n")
		}
	}
	return styles.ContentBox.Render(b.String())
}

func (m Model) renderMeetingRow(mt *meeting.Meeting, active bool) string {
	marker := "  "
	if active {
		marker = styles.Primary.Render("> ")
	}

	badge := styles.StatusBadge.
		Background(styles.StatusColor(string(mt.Status))).
		Foreground(lipgloss.Color("#FFFFFF")).
		Render(mt.Status.Display())

	when := mt.ScheduledAt.Format(m.whenLayout())
	with := mt.MentorName
	if m.role() == session.RoleMentor {
		with = mt.UserName
	}

	parts := []string{
		marker + badge,
		styles.Text.Render(when),
		styles.Muted.Render(fmt.Sprintf("%dm %s", mt.DurationMinutes, mt.Mode)),
		styles.Text.Render("with " + with),
	}
	if mt.Topic != "" {
		parts = append(parts, util.TruncateANSI(styles.Subtitle.Render(mt.Topic), 30))
	}
	if mt.Upcoming(m.now()) && !mt.Status.Terminal() {
		wait := mt.ScheduledAt.Sub(m.now())
		parts = append(parts, styles.Secondary.Render("in "+meeting.FormatUntil(wait)))
	}
	return strings.Join(parts, "  ")
}
