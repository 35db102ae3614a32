package api

import (
	"context"

	"mentorlane/internal/booking"
	"mentorlane/internal/errors"
)

// The Client implements booking.Backend, so it can drive the submission
// state machine directly.
var _ booking.Backend = (*Client)(nil)

// CreateBooking asks the backend to atomically reserve the selected slots
// and open a payment order. A 409 means a slot was taken between fetch and
// submit, surfaced as ErrSlotConflict.
func (c *Client) CreateBooking(ctx context.Context, req booking.CreateRequest) (*booking.Order, error) {
	var order booking.Order
	if err := c.post(ctx, "/bookings", req, &order); err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, errors.NewAPIError("booking response missing order", nil).WithEndpoint("/bookings")
	}
	return &order, nil
}

// VerifyPayment forwards the provider's payment evidence for signature
// verification. Any failure here, after a captured payment, is the severe
// case the booking flow escalates to support.
func (c *Client) VerifyPayment(ctx context.Context, req booking.VerifyRequest) error {
	return c.post(ctx, "/bookings/verify", req, nil)
}

// cancelBookingRequest releases a reserved-but-unpaid order.
type cancelBookingRequest struct {
	OrderID string `json:"order_id"`
}

// CancelBooking releases a reserved-but-unpaid order after the caller
// dismissed checkout.
func (c *Client) CancelBooking(ctx context.Context, orderID string) error {
	return c.post(ctx, "/bookings/cancel", cancelBookingRequest{OrderID: orderID}, nil)
}
