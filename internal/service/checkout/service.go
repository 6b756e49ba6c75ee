package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"goodshop/internal/domain"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
)

// sessionCreator is the slice of the Stripe client this service uses.
type sessionCreator interface {
	Create(ctx context.Context, params *stripe.CheckoutSessionCreateParams) (*stripe.CheckoutSession, error)
}

// ProviderError wraps a provider-side rejection with a payer-safe reason.
// Raw provider error text never reaches a response body through it.
type ProviderError struct {
	Reason string
	err    error
}

func (e *ProviderError) Error() string { return e.Reason }
func (e *ProviderError) Unwrap() error { return e.err }

// Service creates hosted checkout sessions through Stripe. It holds no state
// beyond the client handle and is safe for concurrent use.
type Service struct {
	sessions sessionCreator
	currency string
	logger   *log.Logger
}

func New(client *stripe.Client, currency string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{sessions: client.V1CheckoutSessions, currency: currency, logger: logger}
}

// Create builds one payment-mode session with a price-and-quantity line per
// item and delegates creation to the provider. Validation failures are
// reported before any provider contact. A failed creation is never retried;
// retrying could mint a duplicate session with billing implications.
func (s *Service) Create(ctx context.Context, items []domain.CheckoutLineItem, successURL, cancelURL string) (*domain.CheckoutSession, error) {
	if len(items) == 0 {
		return nil, domain.ErrNoLineItems
	}

	lineItems := make([]*stripe.CheckoutSessionCreateLineItemParams, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 || item.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: %q quantity=%d price=%v", domain.ErrBadLineItem, item.Name, item.Quantity, item.UnitPrice)
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionCreateLineItemParams{
			PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
				Currency:   stripe.String(s.currency),
				UnitAmount: stripe.Int64(minorUnits(item.UnitPrice)),
				ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
		LineItems:          lineItems,
	}
	// One key per attempt: guards against transport-level duplicate
	// submission without retrying a failed creation.
	params.IdempotencyKey = stripe.String(uuid.NewString())

	session, err := s.sessions.Create(ctx, params)
	if err != nil {
		s.logger.Printf("checkout service: create session error=%v", err)
		return nil, &ProviderError{Reason: providerReason(err), err: err}
	}
	if session.URL == "" {
		s.logger.Printf("checkout service: session id=%s has no redirect url", session.ID)
		return nil, domain.ErrMissingRedirectURL
	}

	s.logger.Printf("checkout service: created session id=%s", session.ID)
	return &domain.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// minorUnits converts a major-unit price to the provider's minor-unit
// representation: multiply by 100, truncate toward zero. Truncation of
// fractional sub-cent prices is deliberate; changing it to rounding would
// shift charge amounts by one minor unit.
func minorUnits(price float64) int64 {
	return int64(price * 100)
}

func providerReason(err error) string {
	var sErr *stripe.Error
	if errors.As(err, &sErr) && sErr.Msg != "" {
		return sErr.Msg
	}
	return "checkout session creation failed"
}
