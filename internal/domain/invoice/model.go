package invoice

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/veloralabs/agencydesk/internal/types"
)

// Invoice is a bill issued to a client
type Invoice struct {
	// ID is the internal primary key
	ID string `db:"id" json:"id"`

	// InvoiceID is the generated identifier, e.g. IN1-FY24-EA701-001.
	// Immutable once assigned.
	InvoiceID string `db:"invoice_id" json:"invoice_id"`

	// SequenceNumber is the raw per-(client, fiscal year) value consumed
	SequenceNumber int64 `db:"sequence_number" json:"sequence_number"`

	// FiscalYear is the 4-digit label the sequence was scoped to, e.g. 2425
	FiscalYear string `db:"fiscal_year" json:"fiscal_year"`

	// ClientID is the internal primary key of the client
	ClientID string `db:"client_id" json:"client_id"`

	// QuotationID optionally links the accepted quotation this bill came from
	QuotationID *string `db:"quotation_id" json:"quotation_id,omitempty"`

	Version int `db:"version" json:"version"`

	LineItems  types.LineItems `db:"line_items" json:"line_items"`
	Total      decimal.Decimal `db:"total" json:"total"`
	AmountPaid decimal.Decimal `db:"amount_paid" json:"amount_paid"`
	Currency   string          `db:"currency" json:"currency"`

	InvoiceStatus types.InvoiceStatus `db:"invoice_status" json:"invoice_status"`

	DueDate *time.Time `db:"due_date" json:"due_date,omitempty"`

	// PaymentLinkURL is the card checkout link created on finalize
	PaymentLinkURL *string `db:"payment_link_url" json:"payment_link_url,omitempty"`

	// FinalizedAt records when the invoice was issued to the client
	FinalizedAt *time.Time `db:"finalized_at" json:"finalized_at,omitempty"`

	// PaidAt records when the invoice was fully paid
	PaidAt *time.Time `db:"paid_at" json:"paid_at,omitempty"`

	types.BaseModel
}

// AmountDue is the outstanding balance
func (i *Invoice) AmountDue() decimal.Decimal {
	return i.Total.Sub(i.AmountPaid)
}
