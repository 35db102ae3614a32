package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"mentorlane/internal/api"
	"mentorlane/internal/meeting"
	"mentorlane/internal/session"
	"mentorlane/internal/tui/styles"
)

// roomState is the meeting room screen: the join gate before entry, and
// the countdown once joined.
type roomState struct {
	meeting *meeting.Meeting
	gate    meeting.JoinGate
	joined  bool
	creds   *api.RoomCredentials
	timer   *meeting.Timer
	last    meeting.Tick
	bar     progress.Model
}

// openRoom switches to the room screen for a meeting. Entry itself is
// still gated on the join window.
func (m Model) openRoom(mt meeting.Meeting) (tea.Model, tea.Cmd) {
	m.view = viewRoom
	m.errorMessage = ""
	m.statusMessage = ""
	bar := progress.New(progress.WithSolidFill(string(styles.PrimaryColor)))
	bar.Width = 40
	m.room = roomState{
		meeting: &mt,
		gate:    m.deps.Windows.Gate(&mt, m.now(), m.role()),
		bar:     bar,
	}
	return m, nil
}

// updateRoomTick advances the gate or the countdown on each clock tick.
func (m Model) updateRoomTick() (Model, tea.Cmd) {
	r := &m.room
	if r.meeting == nil {
		return m, nil
	}

	if !r.joined {
		r.gate = m.deps.Windows.Gate(r.meeting, m.now(), m.role())
		return m, nil
	}

	tick := r.timer.Advance(m.now())
	r.last = tick
	if tick.Warn {
		m.setStatus(fmt.Sprintf("wrap up: %s left", meeting.FormatClock(tick.Remaining)))
	}
	if tick.Expired {
		// Time is up; hand back to the dashboard. The mentor's client
		// closes the session, everyone just leaves.
		m.view = viewOrders
		m.orders.loading = true
		m.setStatus("session time is up")
		cmds := []tea.Cmd{
			recordLeave(m.deps.Client, r.meeting.ID),
			loadMeetings(m.deps.Client, m.orders.query()),
		}
		if m.role() == session.RoleMentor {
			cmds = append(cmds, endMeeting(m.deps.Client, r.meeting.ID))
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m Model) updateRoom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := &m.room

	switch msg.String() {
	case "esc":
		m.view = viewOrders
		m.orders.loading = true
		cmds := []tea.Cmd{loadMeetings(m.deps.Client, m.orders.query())}
		if r.joined {
			cmds = append(cmds, recordLeave(m.deps.Client, r.meeting.ID))
		}
		return m, tea.Batch(cmds...)
	case "enter":
		if r.joined || r.meeting == nil {
			return m, nil
		}
		if r.gate.State != meeting.JoinOpen {
			m.setStatus(gateMessage(r.gate))
			return m, nil
		}
		r.joined = true
		r.timer = meeting.NewTimer(m.now(), r.meeting.Duration(), m.deps.WarnBeforeEnd)
		r.last = r.timer.Advance(m.now())
		return m, tea.Batch(
			recordJoin(m.deps.Client, r.meeting.ID),
			loadCredentials(m.deps.Client, r.meeting.ID),
		)
	}
	return m, nil
}

// gateMessage explains why the room cannot be entered right now.
func gateMessage(gate meeting.JoinGate) string {
	switch gate.State {
	case meeting.JoinNotYet:
		return "the room opens in " + meeting.FormatUntil(gate.Until)
	case meeting.JoinExpired:
		return "the join window has closed"
	case meeting.JoinBlocked:
		return "this session can no longer be joined"
	default:
		return ""
	}
}

func (m Model) viewRoom() string {
	r := m.room
	if r.meeting == nil {
		return styles.ContentBox.Render("No meeting selected.")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Meeting room"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(r.meeting.Topic))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf(
		"%s  %dm %s  with %s",
		r.meeting.ScheduledAt.Format(m.whenLayout()),
		r.meeting.DurationMinutes, r.meeting.Mode, r.meeting.MentorName,
	)))
	b.WriteString("\n\n")

	if !r.joined {
		b.WriteString(m.renderGate())
		return styles.ContentBox.Render(b.String())
	}

	b.WriteString(m.renderCountdown())
	return styles.ContentBox.Render(b.String())
}

func (m Model) renderGate() string {
	r := m.room
	switch r.gate.State {
	case meeting.JoinOpen:
		return styles.Secondary.Render("The room is open.") + "\n" +
			styles.Muted.Render("Press ") + styles.HelpKey.Render("[enter]") + styles.Muted.Render(" to join.")
	case meeting.JoinNotYet:
		return styles.Muted.Render("Opens in ") + styles.Primary.Render(meeting.FormatUntil(r.gate.Until))
	case meeting.JoinExpired:
		return styles.Warning.Render("The join window has closed.")
	default:
		return styles.Muted.Render(fmt.Sprintf("This session is %s and cannot be joined.", r.meeting.Status.Display()))
	}
}

func (m Model) renderCountdown() string {
	r := m.room
	var b strings.Builder

	total := r.meeting.Duration()
	frac := 0.0
	if total > 0 {
		frac = float64(r.last.Elapsed) / float64(total)
	}
	if frac > 1 {
		frac = 1
	}

	clock := meeting.FormatClock(r.last.Remaining)
	if r.last.Remaining <= m.deps.WarnBeforeEnd {
		b.WriteString(styles.WarningBanner.Render(" " + clock + " remaining "))
	} else {
		b.WriteString(styles.Primary.Render(clock + " remaining"))
	}
	b.WriteString("\n\n")
	b.WriteString(r.bar.ViewAs(frac))
	b.WriteString("\n\n")
	b.WriteString(styles.Muted.Render("Elapsed " + meeting.FormatClock(r.last.Elapsed)))
	if r.creds != nil {
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render("Room " + r.creds.RoomID))
	}
	return b.String()
}
