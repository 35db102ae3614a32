package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"mentorlane/internal/errors"
	"mentorlane/internal/logging"
	"mentorlane/internal/mentor"
)

// State names the steps of a booking attempt. Three parties hold partial
// state during an attempt: this client, the backend (reservation and
// verification), and the payment provider (capture). Explicit states keep
// every exit path reachable and prevent double submission.
type State string

const (
	StateIdle            State = "idle"
	StateCreating        State = "creating"
	StateAwaitingPayment State = "awaiting_payment"
	StateVerifying       State = "verifying"
	StateConfirmed       State = "confirmed"
	StateFailed          State = "failed"
	StateCancelling      State = "cancelling"
)

// ReservationAutoRelease is how long the backend holds unpaid
// reservations before releasing them on its own. It is backend-owned and
// fixed; the client only quotes it when an explicit release fails.
const ReservationAutoRelease = 10 * time.Minute

// Order is the payment-provider order descriptor returned by the backend
// when it reserves the selected slots.
type Order struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	ProviderKey string `json:"provider_key"`
}

// SlotRequest is one reserved range in a booking creation request.
type SlotRequest struct {
	Date  string             `json:"date"`
	Start string             `json:"start"`
	End   string             `json:"end"`
	Mode  mentor.SessionType `json:"session_type"`
}

// CreateRequest asks the backend to atomically reserve slots and open a
// payment order. Receipt is a client-generated reference so a retried
// request can be correlated server-side.
type CreateRequest struct {
	MentorID string        `json:"mentor_id"`
	Topic    string        `json:"topic"`
	Receipt  string        `json:"receipt"`
	Slots    []SlotRequest `json:"slots"`
}

// VerifyRequest forwards the provider's payment evidence to the backend
// for signature verification.
type VerifyRequest struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
	Signature string `json:"signature"`
}

// Backend is the subset of the marketplace API the booking flow drives.
type Backend interface {
	CreateBooking(ctx context.Context, req CreateRequest) (*Order, error)
	VerifyPayment(ctx context.Context, req VerifyRequest) error
	CancelBooking(ctx context.Context, orderID string) error
}

// CheckoutResult is how a provider checkout hand-off ended.
type CheckoutResult string

const (
	// ResultCompleted means the provider captured a payment.
	ResultCompleted CheckoutResult = "completed"
	// ResultDismissed means the caller closed checkout without paying.
	ResultDismissed CheckoutResult = "dismissed"
	// ResultFailed means the provider reported a failed payment attempt.
	ResultFailed CheckoutResult = "failed"
)

// CheckoutOutcome carries the provider's payment evidence back from a
// completed checkout.
type CheckoutOutcome struct {
	Result    CheckoutResult
	PaymentID string
	Signature string
	// Reason is the provider's failure description when Result is failed.
	Reason string
}

// Checkout is the payment-provider hand-off. Ready gates submission;
// Open blocks until the checkout resolves one way or another.
type Checkout interface {
	Ready() bool
	Open(ctx context.Context, order Order) (CheckoutOutcome, error)
}

// Receipt summarizes a confirmed booking.
type Receipt struct {
	OrderID   string
	PaymentID string
	Reference string
	Amount    int64
	Currency  string
}

// Flow drives one booking attempt through the submission state machine.
// A Flow is single-flight: a second Submit while one is in progress fails
// with ErrFlowBusy.
type Flow struct {
	backend  Backend
	checkout Checkout
	log      *logging.Logger

	// autoRelease is how long the backend holds unpaid reservations before
	// releasing them, quoted to the caller when cancellation itself fails.
	autoRelease time.Duration

	mu    sync.Mutex
	state State
}

// NewFlow creates a Flow in the Idle state. autoRelease is the backend's
// unpaid-reservation timeout, used only for messaging.
func NewFlow(backend Backend, checkout Checkout, log *logging.Logger, autoRelease time.Duration) *Flow {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Flow{
		backend:     backend,
		checkout:    checkout,
		log:         log,
		autoRelease: autoRelease,
		state:       StateIdle,
	}
}

// State returns the current state.
// CheckoutReady reports whether the payment provider can be opened.
// UIs use it to gate the submit action before Submit re-checks it.
func (f *Flow) CheckoutReady() bool {
	return f.checkout.Ready()
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Reset returns a finished flow to Idle so another attempt can start.
// Resetting an in-flight flow is not permitted.
func (f *Flow) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.state {
	case StateIdle, StateConfirmed, StateFailed:
		f.state = StateIdle
		return nil
	default:
		return errors.ErrFlowBusy
	}
}

// begin transitions Idle to Creating, rejecting concurrent submissions.
func (f *Flow) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateIdle {
		return errors.ErrFlowBusy
	}
	f.state = StateCreating
	return nil
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

// Submit runs one booking attempt end to end: create the backend order,
// open provider checkout, and reconcile the outcome. It returns a Receipt
// only from the Confirmed state.
//
// On a reservation conflict the selection's slots are cleared, since the
// caller must re-pick against fresh availability. On checkout dismissal
// the reserved order is cancelled best-effort; if that call fails, the
// returned error still reports the backend's auto-release backstop rather
// than a hard failure.
func (f *Flow) Submit(ctx context.Context, mentorID string, sel *Selection, table mentor.PricingTable) (*Receipt, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}

	if !sel.CanSubmit(table, f.checkout.Ready()) {
		f.setState(StateIdle)
		return nil, errors.NewValidationError("selection is not ready to submit")
	}

	quote, err := QuoteSelection(sel, table)
	if err != nil {
		f.setState(StateIdle)
		return nil, err
	}

	reference := "rcpt-" + uuid.NewString()
	req := CreateRequest{
		MentorID: mentorID,
		Topic:    sel.Topic,
		Receipt:  reference,
	}
	for _, slot := range sel.Slots {
		req.Slots = append(req.Slots, SlotRequest{
			Date:  sel.Date,
			Start: slot.Start,
			End:   slot.End,
			Mode:  sel.Mode,
		})
	}

	log := f.log.WithMentor(mentorID).With("receipt", reference)
	log.Info("creating booking",
		"date", sel.Date, "slots", len(sel.Slots),
		"minutes", quote.TotalMinutes, "price", quote.Price)

	order, err := f.backend.CreateBooking(ctx, req)
	if err != nil {
		f.setState(StateIdle)
		if errors.Is(err, errors.ErrSlotConflict) {
			// Availability changed between fetch and submit; prior picks
			// are stale and the caller must re-select.
			sel.Clear()
		}
		log.Warn("booking creation rejected", "error", err)
		return nil, errors.NewBookingError("booking creation rejected", err).WithMentorID(mentorID)
	}

	f.setState(StateAwaitingPayment)
	log = log.WithOrder(order.ID)
	log.Info("awaiting payment", "amount", order.Amount, "currency", order.Currency)

	outcome, err := f.checkout.Open(ctx, *order)
	if err != nil {
		f.setState(StateIdle)
		log.Error("checkout failed to open", "error", err)
		return nil, errors.NewPaymentError("checkout failed to open", err).WithOrderID(order.ID)
	}

	switch outcome.Result {
	case ResultCompleted:
		return f.verify(ctx, log, order, outcome, reference)
	case ResultDismissed:
		return nil, f.dismiss(ctx, log, order)
	default:
		f.setState(StateIdle)
		log.Warn("payment failed", "reason", outcome.Reason)
		err := errors.NewPaymentError("payment failed", nil).WithOrderID(order.ID)
		if outcome.Reason != "" {
			err = errors.NewPaymentError(fmt.Sprintf("payment failed: %s", outcome.Reason), nil).WithOrderID(order.ID)
		}
		return nil, err
	}
}

// verify forwards payment evidence to the backend and resolves the attempt.
func (f *Flow) verify(ctx context.Context, log *logging.Logger, order *Order, outcome CheckoutOutcome, reference string) (*Receipt, error) {
	f.setState(StateVerifying)

	err := f.backend.VerifyPayment(ctx, VerifyRequest{
		PaymentID: outcome.PaymentID,
		OrderID:   order.ID,
		Signature: outcome.Signature,
	})
	if err != nil {
		// The provider captured a payment the backend will not confirm.
		// This is the one outcome that must reach a human, never a retry.
		f.setState(StateFailed)
		log.Error("payment verification rejected", "payment_id", outcome.PaymentID, "error", err)
		return nil, errors.NewPaymentError(
			"payment succeeded but verification failed; contact support",
			errors.Join(errors.ErrVerificationFailed, err),
		).WithOrderID(order.ID).WithPaymentID(outcome.PaymentID)
	}

	f.setState(StateConfirmed)
	log.Info("booking confirmed", "payment_id", outcome.PaymentID)
	return &Receipt{
		OrderID:   order.ID,
		PaymentID: outcome.PaymentID,
		Reference: reference,
		Amount:    order.Amount,
		Currency:  order.Currency,
	}, nil
}

// dismiss releases a reserved-but-unpaid order after the caller closed
// checkout. Cancellation failure is non-fatal: the backend releases unpaid
// reservations on its own after the auto-release timeout.
func (f *Flow) dismiss(ctx context.Context, log *logging.Logger, order *Order) error {
	f.setState(StateCancelling)
	log.Info("checkout dismissed, releasing reservation")

	cancelErr := f.backend.CancelBooking(ctx, order.ID)
	f.setState(StateIdle)

	if cancelErr != nil {
		log.Warn("reservation release failed, backend will auto-release", "error", cancelErr)
		minutes := int(f.autoRelease.Minutes())
		return errors.NewPaymentError(
			fmt.Sprintf("checkout dismissed; reserved slots release automatically after %d minutes", minutes),
			errors.ErrCheckoutDismissed,
		).WithOrderID(order.ID)
	}

	return errors.NewPaymentError("checkout dismissed", errors.ErrCheckoutDismissed).WithOrderID(order.ID)
}
