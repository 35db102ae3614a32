package tui

import (
	"context"

	"mentorlane/internal/booking"
	"mentorlane/internal/payment"
)

// PaymentPrompt bridges the blocking checkout collector to the event
// loop. The provider calls Collect from the submit goroutine; the model
// shows the payment form when the order arrives on requests and feeds
// the outcome back on replies.
type PaymentPrompt struct {
	requests chan booking.Order
	replies  chan booking.CheckoutOutcome
}

var _ payment.Collector = (*PaymentPrompt)(nil)

func NewPaymentPrompt() *PaymentPrompt {
	return &PaymentPrompt{
		requests: make(chan booking.Order, 1),
		replies:  make(chan booking.CheckoutOutcome, 1),
	}
}

func (p *PaymentPrompt) Collect(ctx context.Context, ord booking.Order) (booking.CheckoutOutcome, error) {
	select {
	case p.requests <- ord:
	case <-ctx.Done():
		return booking.CheckoutOutcome{}, ctx.Err()
	}
	select {
	case outcome := <-p.replies:
		return outcome, nil
	case <-ctx.Done():
		return booking.CheckoutOutcome{}, ctx.Err()
	}
}

// resolve hands the form's outcome back to the waiting collector.
func (p *PaymentPrompt) resolve(outcome booking.CheckoutOutcome) {
	select {
	case p.replies <- outcome:
	default:
	}
}
