package tui

import (
	"strings"
	"testing"

	"mentorlane/internal/booking"
	"mentorlane/internal/mentor"
)

func sampleDays() []booking.CalendarDay {
	return []booking.CalendarDay{
		{
			Date: "2026-09-02",
			Slots: []booking.TimeSlot{
				{Start: "10:00", End: "10:15", Available: true},
				{Start: "10:15", End: "10:30", Available: false},
				{Start: "10:30", End: "10:45", Available: true},
			},
		},
		{
			Date: "2026-09-03",
			Slots: []booking.TimeSlot{
				{Start: "14:00", End: "14:30", Available: true},
			},
		},
	}
}

// openedBooking returns a model on the booking screen with a loaded
// calendar.
func openedBooking(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	next, _ := m.openBooking(sampleMentor())
	m = next.(Model)
	updated, _ := m.Update(calendarLoadedMsg{mentorID: "m-1", days: sampleDays()})
	return updated.(Model)
}

func TestCalendarLoaded(t *testing.T) {
	m := openedBooking(t)
	b := m.booking

	if b.loading {
		t.Error("calendar load should clear loading")
	}
	if len(b.dates) != 2 {
		t.Fatalf("dates = %v", b.dates)
	}
	if b.sel.Date != "2026-09-02" {
		t.Errorf("first date should be preselected, got %q", b.sel.Date)
	}

	t.Run("stale mentor ignored", func(t *testing.T) {
		next, _ := m.Update(calendarLoadedMsg{mentorID: "m-other", days: nil})
		if len(next.(Model).booking.dates) != 2 {
			t.Error("calendar for another mentor must not overwrite state")
		}
	})
}

func TestSlotPicking(t *testing.T) {
	m := openedBooking(t)

	m = press(t, m, "space")
	if got := len(m.booking.sel.Slots); got != 1 {
		t.Fatalf("selected slots = %d", got)
	}

	// The second slot is taken; toggling it is a no-op.
	m = press(t, m, "down")
	m = press(t, m, "space")
	if got := len(m.booking.sel.Slots); got != 1 {
		t.Errorf("taken slot should not be selectable, slots = %d", got)
	}

	m = press(t, m, "down")
	m = press(t, m, "space")
	if got := len(m.booking.sel.Slots); got != 2 {
		t.Errorf("slots = %d", got)
	}

	// Switching days clears the picks.
	m = press(t, m, "right")
	if got := len(m.booking.sel.Slots); got != 0 {
		t.Errorf("date switch should clear slots, got %d", got)
	}
	if m.booking.sel.Date != "2026-09-03" {
		t.Errorf("date = %q", m.booking.sel.Date)
	}

	// And back again stays clear.
	m = press(t, m, "left")
	if m.booking.sel.Date != "2026-09-02" {
		t.Errorf("date = %q", m.booking.sel.Date)
	}
}

func TestTopicEntry(t *testing.T) {
	m := openedBooking(t)

	m = press(t, m, "t")
	if !m.booking.topic.Focused() {
		t.Fatal("t should focus the topic input")
	}
	for _, r := range "go interview prep" {
		if r == ' ' {
			m = press(t, m, "space")
			continue
		}
		m = press(t, m, string(r))
	}
	m = press(t, m, "enter")
	if m.booking.topic.Focused() {
		t.Error("enter should blur the topic input")
	}
	if m.booking.sel.Topic != "go interview prep" {
		t.Errorf("Topic = %q", m.booking.sel.Topic)
	}
}

func TestModeCycle(t *testing.T) {
	m := openedBooking(t)
	if m.booking.sel.Mode != mentor.SessionVideo {
		t.Fatalf("Mode = %q", m.booking.sel.Mode)
	}
	m = press(t, m, "m")
	if m.booking.sel.Mode != mentor.SessionChat {
		t.Errorf("Mode = %q", m.booking.sel.Mode)
	}

	t.Run("skips unpriced modes", func(t *testing.T) {
		table := mentor.PricingTable{mentor.SessionChat: 50}
		if got := nextOfferedMode(mentor.SessionChat, table); got != mentor.SessionChat {
			t.Errorf("nextOfferedMode = %q, want to stay on the only priced mode", got)
		}
	})
}

func TestSubmitRequiresReadySelection(t *testing.T) {
	m := openedBooking(t)
	m = press(t, m, "enter")
	if m.booking.submitting {
		t.Error("enter without slots and topic must not submit")
	}
	if m.statusMessage == "" {
		t.Error("expected a hint about what is missing")
	}
}

func TestPaymentForm(t *testing.T) {
	t.Run("completion carries the entered credentials", func(t *testing.T) {
		m := newTestModel(t)
		m.deps.Prompt = NewPaymentPrompt()
		m.view = viewBooking
		mt := sampleMentor()
		m.booking.mentor = &mt
		m.booking.sel = booking.NewSelection(mentor.SessionVideo)

		next, _ := m.Update(paymentOpenMsg{order: booking.Order{ID: "ord_1", Amount: 200, Currency: "INR"}})
		m = next.(Model)
		if m.booking.payment == nil {
			t.Fatal("payment form should open")
		}

		for _, r := range "pay_9" {
			m = press(t, m, string(r))
		}
		m = press(t, m, "tab")
		for _, r := range "sig_9" {
			m = press(t, m, string(r))
		}
		m = press(t, m, "enter")

		if m.booking.payment != nil {
			t.Error("enter should close the form")
		}
		outcome := <-m.deps.Prompt.replies
		if outcome.Result != booking.ResultCompleted || outcome.PaymentID != "pay_9" || outcome.Signature != "sig_9" {
			t.Errorf("outcome = %+v", outcome)
		}
	})

	t.Run("esc dismisses", func(t *testing.T) {
		m := newTestModel(t)
		m.deps.Prompt = NewPaymentPrompt()
		m.view = viewBooking
		mt := sampleMentor()
		m.booking.mentor = &mt
		m.booking.sel = booking.NewSelection(mentor.SessionVideo)
		m.booking.payment = newPaymentForm(booking.Order{ID: "ord_1"})

		m = press(t, m, "esc")
		outcome := <-m.deps.Prompt.replies
		if outcome.Result != booking.ResultDismissed {
			t.Errorf("outcome = %+v", outcome)
		}
	})

	t.Run("ctrl+f reports a failed payment", func(t *testing.T) {
		m := newTestModel(t)
		m.deps.Prompt = NewPaymentPrompt()
		m.view = viewBooking
		mt := sampleMentor()
		m.booking.mentor = &mt
		m.booking.sel = booking.NewSelection(mentor.SessionVideo)
		m.booking.payment = newPaymentForm(booking.Order{ID: "ord_1"})

		m = press(t, m, "ctrl+f")
		outcome := <-m.deps.Prompt.replies
		if outcome.Result != booking.ResultFailed || outcome.Reason == "" {
			t.Errorf("outcome = %+v", outcome)
		}
	})
}

func TestQuoteRender(t *testing.T) {
	m := openedBooking(t)
	m = press(t, m, "space") // 10:00-10:15
	m = press(t, m, "down")
	m = press(t, m, "down")
	m = press(t, m, "space") // 10:30-10:45

	out := m.renderQuote()
	if !strings.Contains(out, "₹200") {
		t.Errorf("quote = %q, want 2 video units at 100", out)
	}
	if !strings.Contains(out, "30 min") {
		t.Errorf("quote = %q", out)
	}
}

func TestReceiptView(t *testing.T) {
	m := openedBooking(t)
	m.booking.receipt = &booking.Receipt{
		OrderID:   "ord_1",
		PaymentID: "pay_1",
		Reference: "rcpt-abc",
		Amount:    200,
		Currency:  "INR",
	}
	out := m.viewBooking()
	for _, want := range []string{"confirmed", "ord_1", "pay_1", "rcpt-abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("receipt view missing %q", want)
		}
	}
}
