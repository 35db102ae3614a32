package booking

import (
	"testing"

	"mentorlane/internal/errors"
	"mentorlane/internal/mentor"
)

func TestComputePrice(t *testing.T) {
	table := mentor.PricingTable{mentor.SessionVideo: 100}

	t.Run("exact multiples of the unit", func(t *testing.T) {
		cases := []struct {
			minutes int
			want    int64
		}{
			{15, 100},
			{30, 200},
			{45, 300},
			{150, 1000},
		}
		for _, tc := range cases {
			got, err := ComputePrice(tc.minutes, mentor.SessionVideo, table)
			if err != nil {
				t.Fatalf("ComputePrice(%d) error = %v", tc.minutes, err)
			}
			if got != tc.want {
				t.Errorf("ComputePrice(%d) = %d, want %d", tc.minutes, got, tc.want)
			}
		}
	})

	t.Run("partial units bill as whole ones", func(t *testing.T) {
		// 20 minutes is two units, not one.
		got, err := ComputePrice(20, mentor.SessionVideo, table)
		if err != nil {
			t.Fatalf("ComputePrice(20) error = %v", err)
		}
		if got != 200 {
			t.Errorf("ComputePrice(20) = %d, want 200 (ceiling)", got)
		}

		got, err = ComputePrice(16, mentor.SessionVideo, table)
		if err != nil {
			t.Fatalf("ComputePrice(16) error = %v", err)
		}
		if got != 200 {
			t.Errorf("ComputePrice(16) = %d, want 200", got)
		}
	})

	t.Run("unpriced mode is unavailable", func(t *testing.T) {
		if _, err := ComputePrice(30, mentor.SessionChat, table); !errors.Is(err, errors.ErrPricingUnavailable) {
			t.Errorf("error = %v, want ErrPricingUnavailable", err)
		}
	})

	t.Run("non-positive duration rejected", func(t *testing.T) {
		for _, minutes := range []int{0, -15} {
			if _, err := ComputePrice(minutes, mentor.SessionVideo, table); !errors.Is(err, errors.ErrInvalidInput) {
				t.Errorf("ComputePrice(%d) error = %v, want ErrInvalidInput", minutes, err)
			}
		}
	})
}

func TestQuoteSelection(t *testing.T) {
	table := mentor.PricingTable{mentor.SessionVideo: 100}

	t.Run("22 minutes quotes two units", func(t *testing.T) {
		sel := NewSelection(mentor.SessionVideo)
		sel.SelectDate("2026-09-01")
		sel.ToggleSlot(slot("10:00", "10:15", true))
		sel.ToggleSlot(slot("11:00", "11:07", true))

		quote, err := QuoteSelection(sel, table)
		if err != nil {
			t.Fatalf("QuoteSelection() error = %v", err)
		}
		if quote.TotalMinutes != 22 {
			t.Errorf("TotalMinutes = %d, want 22", quote.TotalMinutes)
		}
		if quote.Units != 2 {
			t.Errorf("Units = %d, want 2", quote.Units)
		}
		if quote.Price != 200 {
			t.Errorf("Price = %d, want 200", quote.Price)
		}
	})

	t.Run("malformed slot poisons the quote", func(t *testing.T) {
		sel := NewSelection(mentor.SessionVideo)
		sel.SelectDate("2026-09-01")
		sel.Slots = []TimeSlot{{Start: "11:00", End: "10:00", Available: true}}

		if _, err := QuoteSelection(sel, table); !errors.Is(err, errors.ErrSlotMalformed) {
			t.Errorf("error = %v, want ErrSlotMalformed", err)
		}
	})
}
