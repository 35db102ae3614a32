package meeting

import (
	"fmt"
	"time"
)

// Timer tracks elapsed and remaining time inside a running meeting.
//
// Every tick recomputes elapsed time from wall clock (now minus the
// scheduled start), never from an internal counter, so a suspended and
// resumed process snaps back to the correct remaining time with no
// accumulated drift. The warning and expiry events each fire exactly once.
type Timer struct {
	startedAt time.Time
	total     time.Duration
	warnAt    time.Duration

	hasWarned bool
	expired   bool
}

// Tick is the result of advancing the timer to a given wall-clock time.
type Tick struct {
	Elapsed   time.Duration
	Remaining time.Duration
	// Warn is true on exactly one tick: the first where remaining time is
	// at or under the warning threshold.
	Warn bool
	// Expired is true on exactly one tick: the first where elapsed time
	// reaches the total duration. The timer stops afterwards.
	Expired bool
	// Done reports that the timer has stopped and further ticks are no-ops.
	Done bool
}

// NewTimer creates a timer for a meeting that started at startedAt and runs
// for total. warnAt is the remaining-time threshold for the single warning;
// zero disables the warning.
func NewTimer(startedAt time.Time, total, warnAt time.Duration) *Timer {
	return &Timer{
		startedAt: startedAt,
		total:     total,
		warnAt:    warnAt,
	}
}

// Advance recomputes the timer at now and returns what happened.
// Calling Advance after expiry returns a Done tick and changes nothing.
func (t *Timer) Advance(now time.Time) Tick {
	if t.expired {
		return Tick{Elapsed: t.total, Remaining: 0, Done: true}
	}

	elapsed := now.Sub(t.startedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := t.total - elapsed
	if remaining < 0 {
		remaining = 0
	}

	tick := Tick{Elapsed: elapsed, Remaining: remaining}

	if t.warnAt > 0 && !t.hasWarned && remaining > 0 && remaining <= t.warnAt {
		t.hasWarned = true
		tick.Warn = true
	}

	if elapsed >= t.total {
		t.expired = true
		tick.Expired = true
		tick.Done = true
	}

	return tick
}

// Done reports whether the timer has expired and stopped.
func (t *Timer) Done() bool {
	return t.expired
}

// FormatClock renders a duration as M:SS or H:MM:SS for the in-meeting
// display.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
