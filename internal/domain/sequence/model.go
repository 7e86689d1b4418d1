package sequence

import (
	"time"

	"github.com/veloralabs/agencydesk/internal/types"
)

// Counter is one durable counting series. A series is identified by the
// (sequence_type, scope_key, fiscal_year) triple; scope_key and fiscal_year
// are empty for series that are not scoped by them. The row is created
// lazily on first allocation and never deleted.
type Counter struct {
	SequenceType types.SequenceType `db:"sequence_type"`
	ScopeKey     string             `db:"scope_key"`
	FiscalYear   string             `db:"fiscal_year"`
	CurrentValue int64              `db:"current_value"`
	CreatedAt    time.Time          `db:"created_at"`
	UpdatedAt    time.Time          `db:"updated_at"`
}

// Key identifies one counting series.
type Key struct {
	Type       types.SequenceType
	ScopeKey   string
	FiscalYear string
}

// ClientKey is the single global series for client numbers.
func ClientKey() Key {
	return Key{Type: types.SequenceTypeClient}
}

// QuotationKey scopes quotation numbers per base client id.
func QuotationKey(baseClientID string) Key {
	return Key{Type: types.SequenceTypeQuotation, ScopeKey: baseClientID}
}

// InvoiceKey scopes invoice numbers per base client id and fiscal year.
func InvoiceKey(baseClientID, fiscalYear string) Key {
	return Key{Type: types.SequenceTypeInvoice, ScopeKey: baseClientID, FiscalYear: fiscalYear}
}
