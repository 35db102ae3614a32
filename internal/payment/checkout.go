// Package payment hands a created order off to the hosted payment
// provider and reports the outcome back to the booking flow.
package payment

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"mentorlane/internal/booking"
	"mentorlane/internal/config"
	"mentorlane/internal/errors"
	"mentorlane/internal/logging"
)

// Collector gathers the checkout outcome after the hosted page has been
// opened. The TUI implements this by prompting for the provider's
// completion fields; tests script it directly.
type Collector interface {
	Collect(ctx context.Context, ord booking.Order) (booking.CheckoutOutcome, error)
}

// CollectorFunc adapts a function to the Collector interface.
type CollectorFunc func(ctx context.Context, ord booking.Order) (booking.CheckoutOutcome, error)

func (f CollectorFunc) Collect(ctx context.Context, ord booking.Order) (booking.CheckoutOutcome, error) {
	return f(ctx, ord)
}

// Provider opens the hosted checkout page for an order and waits for the
// outcome. It implements booking.Checkout.
type Provider struct {
	name    string
	keyID   string
	timeout time.Duration
	launch  Launcher
	collect Collector
	log     *logging.Logger
}

var _ booking.Checkout = (*Provider)(nil)

// NewProvider builds a Provider from configuration. The collector is
// required; a nil launcher falls back to the platform browser opener.
func NewProvider(cfg config.PaymentConfig, collect Collector, log *logging.Logger) *Provider {
	launch := Launcher(BrowserLauncher{Command: cfg.OpenCommand})
	if log == nil {
		log = logging.NopLogger()
	}
	return &Provider{
		name:    cfg.Provider,
		keyID:   cfg.KeyID,
		timeout: cfg.CheckoutTimeout(),
		launch:  launch,
		collect: collect,
		log:     log,
	}
}

// WithLauncher replaces the page opener. Used by tests.
func (p *Provider) WithLauncher(l Launcher) *Provider {
	p.launch = l
	return p
}

// Ready reports whether the provider hand-off can be attempted. A
// missing publishable key means the hosted page could never initialize.
func (p *Provider) Ready() bool {
	return p.keyID != "" && config.IsValidProvider(p.name)
}

// Open launches the hosted checkout page for ord and blocks until the
// collector reports an outcome or the checkout timeout elapses. A
// timed-out checkout is reported as dismissed, not as an error.
func (p *Provider) Open(ctx context.Context, ord booking.Order) (booking.CheckoutOutcome, error) {
	if !p.Ready() {
		return booking.CheckoutOutcome{}, errors.NewPaymentError(
			"checkout provider is not configured", errors.ErrCheckoutNotReady,
		).WithOrderID(ord.ID)
	}

	pageURL := p.checkoutURL(ord)
	if err := p.launch.Launch(ctx, pageURL); err != nil {
		// The user can still open the page by hand, so a launch
		// failure does not abort the hand-off.
		p.log.Warn("could not open checkout page", "url", pageURL, "error", err)
	} else {
		p.log.Info("opened checkout page", "order_id", ord.ID, "provider", p.name)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	outcome, err := p.collect.Collect(ctx, ord)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return booking.CheckoutOutcome{
				Result: booking.ResultDismissed,
				Reason: fmt.Sprintf("checkout not completed within %s", p.timeout),
			}, nil
		}
		return booking.CheckoutOutcome{}, errors.NewPaymentError(
			"collecting checkout outcome failed", err,
		).WithOrderID(ord.ID)
	}

	if outcome.Result == booking.ResultCompleted && (outcome.PaymentID == "" || outcome.Signature == "") {
		return booking.CheckoutOutcome{
			Result: booking.ResultFailed,
			Reason: "provider reported completion without payment credentials",
		}, nil
	}
	return outcome, nil
}

// checkoutURL builds the hosted page URL carrying the order hand-off
// parameters the provider's standard checkout expects.
func (p *Provider) checkoutURL(ord booking.Order) string {
	q := url.Values{}
	q.Set("key_id", p.keyID)
	q.Set("order_id", ord.ID)
	q.Set("amount", strconv.FormatInt(ord.Amount, 10))
	q.Set("currency", ord.Currency)
	return fmt.Sprintf("https://checkout.%s.com/v1/checkout?%s", p.name, q.Encode())
}
