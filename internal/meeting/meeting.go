// Package meeting models booked meetings and the two pure time computations
// around them: the role-dependent join-window gate and the in-meeting
// countdown timer. Both take the current time as an argument so they stay
// deterministic under test and resilient to process suspend/resume.
package meeting

import (
	"time"

	"mentorlane/internal/mentor"
)

// Status is the backend-owned lifecycle state of a meeting.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// Display returns the human-readable status label.
func (s Status) Display() string {
	switch s {
	case StatusScheduled:
		return "Scheduled"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	case StatusNoShow:
		return "No-Show"
	default:
		return string(s)
	}
}

// Terminal reports whether the meeting can no longer be joined or changed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// OrderInfo is the payment order attached to a confirmed meeting.
type OrderInfo struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// Meeting is one booked session as returned by the history endpoints.
type Meeting struct {
	ID              string             `json:"id"`
	MentorID        string             `json:"mentor_id"`
	MentorName      string             `json:"mentor_name"`
	UserID          string             `json:"user_id"`
	UserName        string             `json:"user_name"`
	Topic           string             `json:"topic"`
	Mode            mentor.SessionType `json:"session_type"`
	ScheduledAt     time.Time          `json:"scheduled_at"`
	DurationMinutes int                `json:"duration_minutes"`
	Status          Status             `json:"status"`
	Order           OrderInfo          `json:"order"`
}

// Duration returns the allotted meeting length.
func (m *Meeting) Duration() time.Duration {
	return time.Duration(m.DurationMinutes) * time.Minute
}

// EndsAt returns the scheduled end of the meeting.
func (m *Meeting) EndsAt() time.Time {
	return m.ScheduledAt.Add(m.Duration())
}

// Upcoming reports whether the meeting has not yet ended, relative to now.
func (m *Meeting) Upcoming(now time.Time) bool {
	return now.Before(m.EndsAt())
}
