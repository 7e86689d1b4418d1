package dto

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/veloralabs/agencydesk/internal/domain/invoice"
	"github.com/veloralabs/agencydesk/internal/types"
)

type CreateInvoiceRequest struct {
	ClientID string `json:"client_id" validate:"required"`

	// QuotationID optionally links the accepted quotation being billed
	QuotationID *string `json:"quotation_id,omitempty"`

	Version   int               `json:"version" validate:"omitempty,min=1"`
	Currency  string            `json:"currency" validate:"required,len=3"`
	LineItems []LineItemRequest `json:"line_items" validate:"required,min=1,dive"`
	DueDate   *time.Time        `json:"due_date,omitempty"`

	// IssueDate selects the fiscal year the invoice number is scoped to;
	// defaults to now
	IssueDate *time.Time `json:"issue_date,omitempty"`
}

type InvoiceResponse struct {
	*invoice.Invoice

	// AmountDue is the outstanding balance
	AmountDue decimal.Decimal `json:"amount_due"`
}

func NewInvoiceResponse(inv *invoice.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		Invoice:   inv,
		AmountDue: inv.AmountDue(),
	}
}

// ListInvoicesResponse represents the response for listing invoices
type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]

func (r *CreateInvoiceRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	return ToLineItems(r.LineItems).Validate()
}

// ToInvoice builds the invoice without its generated identifier; the
// service assigns InvoiceID, SequenceNumber and FiscalYear atomically
// with the sequence allocation.
func (r *CreateInvoiceRequest) ToInvoice(ctx context.Context) *invoice.Invoice {
	version := r.Version
	if version < 1 {
		version = 1
	}
	lineItems := ToLineItems(r.LineItems)
	return &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		ClientID:      r.ClientID,
		QuotationID:   r.QuotationID,
		Version:       version,
		Currency:      r.Currency,
		LineItems:     lineItems,
		Total:         lineItems.Total(),
		AmountPaid:    decimal.Zero,
		InvoiceStatus: types.InvoiceStatusDraft,
		DueDate:       r.DueDate,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}
