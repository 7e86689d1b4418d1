package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentLinkRequest asks the gateway for a hosted card checkout page
// collecting an invoice's outstanding balance.
type PaymentLinkRequest struct {
	InvoiceID   string
	InvoiceName string
	Amount      decimal.Decimal
	Currency    string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// PaymentLink is the gateway's hosted checkout handle.
type PaymentLink struct {
	ID  string
	URL string
}

// Gateway is the card-payment processor surface. UPI and bank transfers
// are recorded manually and never touch the gateway.
type Gateway interface {
	// CreatePaymentLink creates a hosted checkout session for the invoice
	CreatePaymentLink(ctx context.Context, req *PaymentLinkRequest) (*PaymentLink, error)
}
