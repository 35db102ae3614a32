package api

import (
	"context"
	"net/url"

	"mentorlane/internal/booking"
	"mentorlane/internal/mentor"
)

// Mentors fetches the active mentor list. Filtering and sorting happen
// client-side; see mentor.Filter.
func (c *Client) Mentors(ctx context.Context) ([]mentor.Mentor, error) {
	var mentors []mentor.Mentor
	if err := c.get(ctx, "/mentors", nil, &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}

// Mentor fetches one mentor's full profile.
func (c *Client) Mentor(ctx context.Context, mentorID string) (*mentor.Mentor, error) {
	var m mentor.Mentor
	if err := c.get(ctx, "/mentors/"+mentorID, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// CalendarSlots fetches the per-date slot lists for a mentor across a date
// range. Dates are "YYYY-MM-DD"; the range is inclusive.
func (c *Client) CalendarSlots(ctx context.Context, mentorID, from, to string) ([]booking.CalendarDay, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)

	var days []booking.CalendarDay
	if err := c.get(ctx, "/mentors/"+mentorID+"/calendar", query, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// DaySlots fetches the time slots for one date, including booked
// (unavailable) ones so the picker can render them disabled.
func (c *Client) DaySlots(ctx context.Context, mentorID, date string) ([]booking.TimeSlot, error) {
	query := url.Values{}
	query.Set("date", date)

	var slots []booking.TimeSlot
	if err := c.get(ctx, "/mentors/"+mentorID+"/slots", query, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
