package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mentorlane/internal/api"
	"mentorlane/internal/booking"
	"mentorlane/internal/mentor"
)

// tickMsg is sent once a second to drive join gates and the countdown.
type tickMsg time.Time

// errMsg wraps an error for display in the status line.
type errMsg struct {
	err error
}

// mentorsLoadedMsg carries the fetched mentor directory.
type mentorsLoadedMsg struct {
	mentors []mentor.Mentor
}

// calendarLoadedMsg carries a mentor's calendar for the booking view.
type calendarLoadedMsg struct {
	mentorID string
	days     []booking.CalendarDay
}

// paymentOpenMsg is sent when the checkout provider wants the payment
// form shown for an order.
type paymentOpenMsg struct {
	order booking.Order
}

// submitDoneMsg is sent when the booking flow finishes, one way or the
// other.
type submitDoneMsg struct {
	receipt *booking.Receipt
	err     error
}

// meetingsLoadedMsg carries a dashboard page.
type meetingsLoadedMsg struct {
	page *api.MeetingPage
}

// meetingCancelledMsg is sent when an organizer cancellation completes.
type meetingCancelledMsg struct {
	meetingID string
	err       error
}

// joinRecordedMsg is sent when the backend acknowledged a room join.
type joinRecordedMsg struct {
	meetingID string
	err       error
}

// credentialsMsg carries room credentials issued on join.
type credentialsMsg struct {
	meetingID string
	creds     *api.RoomCredentials
}

// Commands

// tick returns a command that sends a tickMsg after one second.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadMentors fetches the mentor directory.
func loadMentors(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		mentors, err := client.Mentors(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return mentorsLoadedMsg{mentors: mentors}
	}
}

// loadCalendar fetches a mentor's bookable days for the given window.
func loadCalendar(client *api.Client, mentorID, from, to string) tea.Cmd {
	return func() tea.Msg {
		days, err := client.CalendarSlots(context.Background(), mentorID, from, to)
		if err != nil {
			return errMsg{err}
		}
		return calendarLoadedMsg{mentorID: mentorID, days: days}
	}
}

// submitBooking runs the booking flow to completion. The flow blocks on
// the checkout hand-off, so this must run off the update loop.
func submitBooking(flow *booking.Flow, mentorID string, sel *booking.Selection, table mentor.PricingTable) tea.Cmd {
	return func() tea.Msg {
		receipt, err := flow.Submit(context.Background(), mentorID, sel, table)
		return submitDoneMsg{receipt: receipt, err: err}
	}
}

// awaitPaymentRequest listens for the next checkout hand-off.
func awaitPaymentRequest(prompt *PaymentPrompt) tea.Cmd {
	return func() tea.Msg {
		return paymentOpenMsg{order: <-prompt.requests}
	}
}

// loadMeetings fetches a dashboard page.
func loadMeetings(client *api.Client, q api.MeetingQuery) tea.Cmd {
	return func() tea.Msg {
		page, err := client.Meetings(context.Background(), q)
		if err != nil {
			return errMsg{err}
		}
		return meetingsLoadedMsg{page: page}
	}
}

// cancelMeeting cancels a meeting with the organizer's reason.
func cancelMeeting(client *api.Client, meetingID, reason string) tea.Cmd {
	return func() tea.Msg {
		err := client.CancelMeeting(context.Background(), meetingID, reason)
		return meetingCancelledMsg{meetingID: meetingID, err: err}
	}
}

// recordJoin tells the backend the user entered the room. Best effort;
// the room opens regardless.
func recordJoin(client *api.Client, meetingID string) tea.Cmd {
	return func() tea.Msg {
		err := client.JoinMeeting(context.Background(), meetingID)
		return joinRecordedMsg{meetingID: meetingID, err: err}
	}
}

// recordLeave tells the backend the user left the room.
func recordLeave(client *api.Client, meetingID string) tea.Cmd {
	return func() tea.Msg {
		_ = client.LeaveMeeting(context.Background(), meetingID)
		return nil
	}
}

// loadCredentials fetches room credentials after a join. Failures are
// swallowed; the room just shows no room reference.
func loadCredentials(client *api.Client, meetingID string) tea.Cmd {
	return func() tea.Msg {
		creds, err := client.JoinCredentials(context.Background(), meetingID)
		if err != nil {
			return nil
		}
		return credentialsMsg{meetingID: meetingID, creds: creds}
	}
}

// endMeeting marks the session finished when its time runs out.
func endMeeting(client *api.Client, meetingID string) tea.Cmd {
	return func() tea.Msg {
		_ = client.EndMeeting(context.Background(), meetingID)
		return nil
	}
}
