package payment

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/veloralabs/agencydesk/internal/types"
)

// Payment records money received against an invoice. Card payments carry
// gateway references; UPI and bank transfers are recorded manually with
// the customer's transaction reference.
type Payment struct {
	ID string `db:"id" json:"id"`

	// InvoiceID is the internal primary key of the invoice being paid
	InvoiceID string `db:"invoice_id" json:"invoice_id"`

	Amount   decimal.Decimal `db:"amount" json:"amount"`
	Currency string          `db:"currency" json:"currency"`

	PaymentMethod types.PaymentMethod `db:"payment_method" json:"payment_method"`
	PaymentStatus types.PaymentStatus `db:"payment_status" json:"payment_status"`

	// GatewayPaymentID is the processor's transaction id for card payments
	GatewayPaymentID *string `db:"gateway_payment_id" json:"gateway_payment_id,omitempty"`

	// ReferenceNumber is the UTR / transfer reference for manual payments
	ReferenceNumber *string `db:"reference_number" json:"reference_number,omitempty"`

	SucceededAt *time.Time `db:"succeeded_at" json:"succeeded_at,omitempty"`

	types.BaseModel
}
