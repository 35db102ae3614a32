package payment

import (
	"context"

	"mentorlane/internal/booking"
)

// StubCheckout is a scriptable checkout used by tests and by demo runs
// against a fixture backend. It records every order it is asked to open.
type StubCheckout struct {
	// NotReady makes Ready report false.
	NotReady bool
	// Outcome is returned from Open when Err is nil.
	Outcome booking.CheckoutOutcome
	// Err is returned from Open when set.
	Err error

	Opened []booking.Order
}

var _ booking.Checkout = (*StubCheckout)(nil)

func (s *StubCheckout) Ready() bool { return !s.NotReady }

func (s *StubCheckout) Open(_ context.Context, ord booking.Order) (booking.CheckoutOutcome, error) {
	s.Opened = append(s.Opened, ord)
	if s.Err != nil {
		return booking.CheckoutOutcome{}, s.Err
	}
	return s.Outcome, nil
}
