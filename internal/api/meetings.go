package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"mentorlane/internal/errors"
	"mentorlane/internal/meeting"
)

// MeetingQuery selects a page of booking history.
type MeetingQuery struct {
	// Range is all, upcoming, or past. Empty means all.
	Range meeting.RangeFilter
	// Status keeps only meetings in this state. Empty means any.
	Status meeting.Status
	// Page is 1-based. Zero means the first page.
	Page int
	// Limit is the page size. Zero means the backend default.
	Limit int
}

// MeetingPage is one page of history plus pagination metadata.
type MeetingPage struct {
	Items []meeting.Meeting `json:"items"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int               `json:"total"`
}

// HasMore reports whether another page follows this one.
func (p *MeetingPage) HasMore() bool {
	return p.Page*p.Limit < p.Total
}

// Meetings fetches a page of the signed-in account's booking history.
// The backend scopes results to the caller's role: users see their
// bookings, mentors see their hosted sessions.
func (c *Client) Meetings(ctx context.Context, q MeetingQuery) (*MeetingPage, error) {
	query := url.Values{}
	if q.Range != "" && q.Range != meeting.RangeAll {
		query.Set("range", string(q.Range))
	}
	if q.Status != "" {
		query.Set("status", string(q.Status))
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}

	var page MeetingPage
	if err := c.get(ctx, "/meetings", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Meeting fetches one meeting by ID.
func (c *Client) Meeting(ctx context.Context, meetingID string) (*meeting.Meeting, error) {
	var m meeting.Meeting
	if err := c.get(ctx, "/meetings/"+meetingID, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// cancelMeetingRequest cancels a confirmed booking with a refund.
type cancelMeetingRequest struct {
	Reason string `json:"reason"`
}

// CancelMeeting cancels a confirmed meeting as its organizer, triggering a
// backend refund. The reason is required and surfaces to the other party.
func (c *Client) CancelMeeting(ctx context.Context, meetingID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errors.NewValidationError("cancellation reason is required").
			WithField("reason").
			WithCause(errors.ErrReasonRequired)
	}
	return c.post(ctx, "/meetings/"+meetingID+"/cancel", cancelMeetingRequest{Reason: reason}, nil)
}

// JoinMeeting records that the caller entered the meeting room. The
// backend enforces the join window on its side too.
func (c *Client) JoinMeeting(ctx context.Context, meetingID string) error {
	return c.post(ctx, "/meetings/"+meetingID+"/join", nil, nil)
}

// LeaveMeeting records that the caller left the meeting room.
func (c *Client) LeaveMeeting(ctx context.Context, meetingID string) error {
	return c.post(ctx, "/meetings/"+meetingID+"/leave", nil, nil)
}

// RoomCredentials identify the backend room a joined caller belongs in.
type RoomCredentials struct {
	RoomID string `json:"room_id"`
	Token  string `json:"token"`
}

// JoinCredentials fetches the room credentials for a meeting. The backend
// only issues them while the caller's join window is open.
func (c *Client) JoinCredentials(ctx context.Context, meetingID string) (*RoomCredentials, error) {
	var creds RoomCredentials
	if err := c.get(ctx, "/meetings/"+meetingID+"/credentials", nil, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// EndMeeting marks a session finished once its time is up. Only the
// mentor may end a session early.
func (c *Client) EndMeeting(ctx context.Context, meetingID string) error {
	return c.post(ctx, "/meetings/"+meetingID+"/end", nil, nil)
}
