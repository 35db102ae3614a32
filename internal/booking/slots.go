// Package booking implements the slot-selection and booking submission flow:
// calendar and day-slot models, duration and price computation, submission
// gating, and the multi-party payment reconciliation state machine.
//
// Everything here is client-side orchestration. Reservation atomicity,
// double-booking prevention, and payment capture are backend- and
// provider-owned; this package only consumes their results.
package booking

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"mentorlane/internal/errors"
)

// TimeSlot is one bookable time range on a given date. Start and End are
// same-day wall-clock values in "HH:MM" form, with no timezone encoded.
// Available turns false once anyone books the slot.
type TimeSlot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// SameRange reports slot identity: two slots are the same pick when their
// start and end times match, regardless of availability.
func (s TimeSlot) SameRange(other TimeSlot) bool {
	return s.Start == other.Start && s.End == other.End
}

// DurationMinutes returns the slot's length in minutes.
// A slot whose end precedes its start is malformed input and is rejected
// rather than computed as negative.
func (s TimeSlot) DurationMinutes() (int, error) {
	start, err := parseClock(s.Start)
	if err != nil {
		return 0, err
	}
	end, err := parseClock(s.End)
	if err != nil {
		return 0, err
	}
	if end < start {
		return 0, errors.Wrapf(errors.ErrSlotMalformed, "%s-%s", s.Start, s.End)
	}
	return end - start, nil
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(v string) (int, error) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", v)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", v)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", v)
	}
	return h*60 + m, nil
}

// CalendarDay is one calendar date's slot list as returned by the calendar
// endpoint. Date is in "YYYY-MM-DD" form. Blocked is a day-level override
// that hides the date even when individual slots are marked available.
type CalendarDay struct {
	Date    string     `json:"date"`
	Slots   []TimeSlot `json:"slots"`
	Blocked bool       `json:"blocked"`
}

// Bookable reports whether the day should appear in the date picker:
// not blocked, with at least one available slot.
func (d CalendarDay) Bookable() bool {
	if d.Blocked {
		return false
	}
	for _, s := range d.Slots {
		if s.Available {
			return true
		}
	}
	return false
}

// AvailableDates returns the bookable dates in chronological order.
// The "YYYY-MM-DD" form sorts lexicographically, so no parsing is needed.
func AvailableDates(days []CalendarDay) []string {
	var dates []string
	for _, d := range days {
		if d.Bookable() {
			dates = append(dates, d.Date)
		}
	}
	sort.Strings(dates)
	return dates
}
