package booking

import (
	"strings"

	"mentorlane/internal/mentor"
)

// Selection is the caller's in-progress pick for one booking attempt:
// one date, any number of that date's slots (contiguity is not required),
// a session type, and a free-text topic. It is ephemeral UI state,
// discarded on navigation or successful submission.
type Selection struct {
	Date  string
	Slots []TimeSlot
	Mode  mentor.SessionType
	Topic string
}

// NewSelection returns an empty selection for the given session type.
func NewSelection(mode mentor.SessionType) *Selection {
	return &Selection{Mode: mode}
}

// SelectDate switches the active date. Any previously selected slots are
// cleared: selection is scoped to one date at a time, so switching dates
// invalidates prior picks. Re-selecting the current date is a no-op.
func (s *Selection) SelectDate(date string) {
	if s.Date == date {
		return
	}
	s.Date = date
	s.Slots = nil
}

// ToggleSlot adds the slot to the selection, or removes it if the same
// range is already selected. A slot with Available=false is never
// selectable; toggling it leaves the selection unchanged.
func (s *Selection) ToggleSlot(slot TimeSlot) {
	if !slot.Available {
		return
	}
	for i, picked := range s.Slots {
		if picked.SameRange(slot) {
			s.Slots = append(s.Slots[:i], s.Slots[i+1:]...)
			return
		}
	}
	s.Slots = append(s.Slots, slot)
}

// Selected reports whether a slot with the same range is currently picked.
func (s *Selection) Selected(slot TimeSlot) bool {
	for _, picked := range s.Slots {
		if picked.SameRange(slot) {
			return true
		}
	}
	return false
}

// Clear drops the selected slots but keeps the date, topic, and mode.
// Used after a reservation conflict, when the caller must re-select.
func (s *Selection) Clear() {
	s.Slots = nil
}

// TotalDurationMinutes sums the selected slots' lengths.
// A malformed slot poisons the whole selection rather than being skipped.
func (s *Selection) TotalDurationMinutes() (int, error) {
	total := 0
	for _, slot := range s.Slots {
		d, err := slot.DurationMinutes()
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// CanSubmit reports submission readiness: a date is selected, at least one
// slot is picked, a non-empty topic is present, the mentor prices the
// selected session type, and the payment provider is ready to open
// checkout. It never errors; incomplete state just reads as not-ready.
func (s *Selection) CanSubmit(table mentor.PricingTable, providerReady bool) bool {
	if s.Date == "" || len(s.Slots) == 0 {
		return false
	}
	if strings.TrimSpace(s.Topic) == "" {
		return false
	}
	total, err := s.TotalDurationMinutes()
	if err != nil || total <= 0 {
		return false
	}
	if _, err := ComputePrice(total, s.Mode, table); err != nil {
		return false
	}
	return providerReady
}
