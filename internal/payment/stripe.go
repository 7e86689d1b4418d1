package payment

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/veloralabs/agencydesk/internal/config"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/logger"
)

// StripeGateway implements Gateway over Stripe checkout sessions
type StripeGateway struct {
	client     *stripe.Client
	successURL string
	cancelURL  string
	logger     *logger.Logger
}

// NewStripeGateway creates a Stripe-backed gateway. Returns a disabled
// gateway when no API key is configured; callers get a clear error
// instead of a nil pointer.
func NewStripeGateway(cfg *config.Configuration, logger *logger.Logger) Gateway {
	if cfg.Payment.StripeAPIKey == "" {
		return &StripeGateway{logger: logger}
	}

	return &StripeGateway{
		client:     stripe.NewClient(cfg.Payment.StripeAPIKey, nil),
		successURL: cfg.Payment.CheckoutSuccessURL,
		cancelURL:  cfg.Payment.CheckoutCancelURL,
		logger:     logger,
	}
}

// CreatePaymentLink creates a Stripe checkout session for the invoice's
// outstanding amount
func (g *StripeGateway) CreatePaymentLink(ctx context.Context, req *PaymentLinkRequest) (*PaymentLink, error) {
	if g.client == nil {
		return nil, ierr.NewError("payment gateway is not configured").
			WithHint("Card payments are not available").
			Mark(ierr.ErrInvalidOperation)
	}

	// Stripe amounts are in the currency's smallest unit
	amountCents := req.Amount.Shift(2).IntPart()
	if amountCents <= 0 {
		return nil, ierr.NewError("payment amount must be positive").
			WithHint("Nothing is due on this invoice").
			WithReportableDetails(map[string]any{"amount": req.Amount.String()}).
			Mark(ierr.ErrValidation)
	}

	metadata := map[string]string{
		"invoice_id": req.InvoiceID,
	}
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	successURL := req.SuccessURL
	if successURL == "" {
		successURL = g.successURL
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = g.cancelURL
	}

	params := &stripe.CheckoutSessionCreateParams{
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(req.InvoiceName),
					},
					UnitAmount: stripe.Int64(amountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String("payment"),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		Metadata:   metadata,
	}

	session, err := g.client.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		g.logger.Errorw("failed to create Stripe checkout session",
			"error", err,
			"invoice_id", req.InvoiceID)
		return nil, ierr.WithError(err).
			WithHint("Unable to create payment link").
			WithReportableDetails(map[string]any{"invoice_id": req.InvoiceID}).
			Mark(ierr.ErrSystem)
	}

	g.logger.Infow("created payment link",
		"invoice_id", req.InvoiceID,
		"session_id", session.ID)

	return &PaymentLink{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}
