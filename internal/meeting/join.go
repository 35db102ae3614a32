package meeting

import (
	"fmt"
	"time"

	"mentorlane/internal/session"
)

// Windows holds the role-dependent join window bounds. Lead is how long
// before the scheduled start joining opens; lag is how long after the
// start it stays open. Both bounds are inclusive.
type Windows struct {
	MentorLead time.Duration
	MentorLag  time.Duration
	UserLead   time.Duration
	UserLag    time.Duration
}

// DefaultWindows returns the standard join windows: mentors get 15 minutes
// before through 30 after, users 5 before through 15 after.
func DefaultWindows() Windows {
	return Windows{
		MentorLead: 15 * time.Minute,
		MentorLag:  30 * time.Minute,
		UserLead:   5 * time.Minute,
		UserLag:    15 * time.Minute,
	}
}

// bounds returns the lead and lag for a role. Unknown roles get the
// tighter user window.
func (w Windows) bounds(role session.Role) (lead, lag time.Duration) {
	if role == session.RoleMentor {
		return w.MentorLead, w.MentorLag
	}
	return w.UserLead, w.UserLag
}

// CanJoin reports whether joining is permitted at now for the given role:
// now must fall within [scheduledAt - lead, scheduledAt + lag], inclusive
// at both ends. These checks are a UX convenience; the backend re-validates
// eligibility at join time and remains the authority.
func (w Windows) CanJoin(now, scheduledAt time.Time, role session.Role) bool {
	lead, lag := w.bounds(role)
	start := scheduledAt.Add(-lead)
	end := scheduledAt.Add(lag)
	return !now.Before(start) && !now.After(end)
}

// JoinState classifies the join gate's answer.
type JoinState int

const (
	// JoinOpen means joining is permitted right now.
	JoinOpen JoinState = iota
	// JoinNotYet means the window has not opened; Until says how long remains.
	JoinNotYet
	// JoinExpired means the window has closed.
	JoinExpired
	// JoinBlocked means the meeting status forbids joining regardless of time.
	JoinBlocked
)

// JoinGate is the full gate result for display.
type JoinGate struct {
	State JoinState
	// Until is the time remaining before the window opens, ceiling-rounded
	// to whole minutes. Only set for JoinNotYet.
	Until time.Duration
}

// Gate evaluates the join gate for a meeting. A Cancelled or Completed
// (or No-Show) meeting is never joinable, independent of the time window.
func (w Windows) Gate(m *Meeting, now time.Time, role session.Role) JoinGate {
	if m.Status.Terminal() {
		return JoinGate{State: JoinBlocked}
	}

	lead, lag := w.bounds(role)
	start := m.ScheduledAt.Add(-lead)
	end := m.ScheduledAt.Add(lag)

	switch {
	case now.Before(start):
		return JoinGate{State: JoinNotYet, Until: ceilMinutes(start.Sub(now))}
	case now.After(end):
		return JoinGate{State: JoinExpired}
	default:
		return JoinGate{State: JoinOpen}
	}
}

// ceilMinutes rounds a duration up to whole minutes.
func ceilMinutes(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	m := d / time.Minute
	if d%time.Minute != 0 {
		m++
	}
	return m * time.Minute
}

// FormatUntil renders a wait duration for display: whole minutes under an
// hour, hours with minute remainder under a day, then days with hour
// remainder. The input is ceiling-rounded to minutes first.
func FormatUntil(d time.Duration) string {
	d = ceilMinutes(d)
	minutes := int(d / time.Minute)

	switch {
	case minutes < 60:
		return fmt.Sprintf("%dm", minutes)
	case minutes < 24*60:
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	default:
		hours := minutes / 60
		return fmt.Sprintf("%dd %dh", hours/24, hours%24)
	}
}
