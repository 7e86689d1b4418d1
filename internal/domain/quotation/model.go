package quotation

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/veloralabs/agencydesk/internal/types"
)

// Quotation is a priced proposal issued to a client
type Quotation struct {
	// ID is the internal primary key
	ID string `db:"id" json:"id"`

	// QuotationID is the generated identifier, e.g. QN1-EA701-001.
	// Immutable once assigned.
	QuotationID string `db:"quotation_id" json:"quotation_id"`

	// SequenceNumber is the raw per-client sequence value consumed
	SequenceNumber int64 `db:"sequence_number" json:"sequence_number"`

	// ClientID is the internal primary key of the client
	ClientID string `db:"client_id" json:"client_id"`

	// Version starts at 1 and increments on re-issues of the same proposal
	Version int `db:"version" json:"version"`

	Title     string          `db:"title" json:"title"`
	LineItems types.LineItems `db:"line_items" json:"line_items"`
	Total     decimal.Decimal `db:"total" json:"total"`
	Currency  string          `db:"currency" json:"currency"`

	QuotationStatus types.QuotationStatus `db:"quotation_status" json:"quotation_status"`

	// ValidUntil is the offer expiry shown on the document
	ValidUntil *time.Time `db:"valid_until" json:"valid_until,omitempty"`

	// SentAt records when the quotation was emailed to the client
	SentAt *time.Time `db:"sent_at" json:"sent_at,omitempty"`

	types.BaseModel
}
