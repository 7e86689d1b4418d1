package dto

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/veloralabs/agencydesk/internal/domain/quotation"
	"github.com/veloralabs/agencydesk/internal/types"
)

// LineItemRequest is a billable line as submitted; Amount is derived
// from Quantity and UnitPrice when omitted
type LineItemRequest struct {
	Description string          `json:"description" validate:"required,max=500"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r LineItemRequest) toLineItem() types.LineItem {
	amount := r.Amount
	if amount.IsZero() {
		amount = r.Quantity.Mul(r.UnitPrice)
	}
	return types.LineItem{
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Amount:      amount,
	}
}

// ToLineItems converts submitted lines into the stored representation
func ToLineItems(items []LineItemRequest) types.LineItems {
	lineItems := make(types.LineItems, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, item.toLineItem())
	}
	return lineItems
}

type CreateQuotationRequest struct {
	ClientID   string            `json:"client_id" validate:"required"`
	Title      string            `json:"title" validate:"required,max=255"`
	Version    int               `json:"version" validate:"omitempty,min=1"`
	Currency   string            `json:"currency" validate:"required,len=3"`
	LineItems  []LineItemRequest `json:"line_items" validate:"required,min=1,dive"`
	ValidUntil *time.Time        `json:"valid_until,omitempty"`
}

type UpdateQuotationRequest struct {
	Title           *string               `json:"title" validate:"omitempty,max=255"`
	LineItems       []LineItemRequest     `json:"line_items" validate:"omitempty,min=1,dive"`
	QuotationStatus types.QuotationStatus `json:"quotation_status" validate:"omitempty,oneof=draft sent accepted declined"`
	ValidUntil      *time.Time            `json:"valid_until,omitempty"`
}

type QuotationResponse struct {
	*quotation.Quotation
}

// ListQuotationsResponse represents the response for listing quotations
type ListQuotationsResponse = types.ListResponse[*QuotationResponse]

func (r *CreateQuotationRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	return ToLineItems(r.LineItems).Validate()
}

// ToQuotation builds the quotation without its generated identifier;
// the service assigns QuotationID and SequenceNumber atomically with
// the sequence allocation.
func (r *CreateQuotationRequest) ToQuotation(ctx context.Context) *quotation.Quotation {
	version := r.Version
	if version < 1 {
		version = 1
	}
	lineItems := ToLineItems(r.LineItems)
	return &quotation.Quotation{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTATION),
		ClientID:        r.ClientID,
		Title:           r.Title,
		Version:         version,
		Currency:        r.Currency,
		LineItems:       lineItems,
		Total:           lineItems.Total(),
		QuotationStatus: types.QuotationStatusDraft,
		ValidUntil:      r.ValidUntil,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateQuotationRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if len(r.LineItems) > 0 {
		return ToLineItems(r.LineItems).Validate()
	}
	return nil
}
