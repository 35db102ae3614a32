package booking

import (
	"testing"

	"mentorlane/internal/errors"
)

func TestTimeSlotDuration(t *testing.T) {
	t.Run("normal range", func(t *testing.T) {
		slot := TimeSlot{Start: "10:00", End: "10:45"}
		d, err := slot.DurationMinutes()
		if err != nil {
			t.Fatalf("DurationMinutes() error = %v", err)
		}
		if d != 45 {
			t.Errorf("DurationMinutes() = %d, want 45", d)
		}
	})

	t.Run("zero length range", func(t *testing.T) {
		slot := TimeSlot{Start: "10:00", End: "10:00"}
		d, err := slot.DurationMinutes()
		if err != nil || d != 0 {
			t.Errorf("DurationMinutes() = %d, %v, want 0, nil", d, err)
		}
	})

	t.Run("end before start is malformed", func(t *testing.T) {
		slot := TimeSlot{Start: "11:00", End: "10:30"}
		if _, err := slot.DurationMinutes(); !errors.Is(err, errors.ErrSlotMalformed) {
			t.Errorf("error = %v, want ErrSlotMalformed", err)
		}
	})

	t.Run("garbage times rejected", func(t *testing.T) {
		for _, v := range []string{"25:00", "10:75", "noon", "10", ""} {
			slot := TimeSlot{Start: v, End: "11:00"}
			if _, err := slot.DurationMinutes(); err == nil {
				t.Errorf("start %q should be rejected", v)
			}
		}
	})
}

func TestSameRange(t *testing.T) {
	a := TimeSlot{Start: "10:00", End: "10:15", Available: true}
	b := TimeSlot{Start: "10:00", End: "10:15", Available: false}
	c := TimeSlot{Start: "10:15", End: "10:30", Available: true}

	if !a.SameRange(b) {
		t.Error("identity should ignore availability")
	}
	if a.SameRange(c) {
		t.Error("different ranges should not match")
	}
}

func TestAvailableDates(t *testing.T) {
	days := []CalendarDay{
		{Date: "2026-09-03", Slots: []TimeSlot{{Start: "10:00", End: "10:15", Available: true}}},
		{Date: "2026-09-01", Slots: []TimeSlot{{Start: "09:00", End: "09:15", Available: true}}},
		{Date: "2026-09-02", Slots: []TimeSlot{{Start: "09:00", End: "09:15", Available: false}}},
		{
			Date:    "2026-09-04",
			Slots:   []TimeSlot{{Start: "10:00", End: "10:15", Available: true}},
			Blocked: true,
		},
	}

	got := AvailableDates(days)
	want := []string{"2026-09-01", "2026-09-03"}
	if len(got) != len(want) {
		t.Fatalf("AvailableDates() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AvailableDates() = %v, want %v", got, want)
			break
		}
	}
}

func TestAvailableDatesEmpty(t *testing.T) {
	if got := AvailableDates(nil); len(got) != 0 {
		t.Errorf("AvailableDates(nil) = %v, want empty", got)
	}

	// A day with slots but all booked does not qualify.
	days := []CalendarDay{
		{Date: "2026-09-01", Slots: []TimeSlot{{Start: "09:00", End: "09:15"}}},
	}
	if got := AvailableDates(days); len(got) != 0 {
		t.Errorf("fully booked day should not qualify, got %v", got)
	}
}
