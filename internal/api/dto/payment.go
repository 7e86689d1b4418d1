package dto

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/veloralabs/agencydesk/internal/domain/payment"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/types"
)

// RecordPaymentRequest records money received against an invoice. Card
// payments carry the gateway transaction id; UPI and bank transfers
// carry the customer's reference number.
type RecordPaymentRequest struct {
	Amount           decimal.Decimal     `json:"amount" validate:"required"`
	PaymentMethod    types.PaymentMethod `json:"payment_method" validate:"required"`
	GatewayPaymentID *string             `json:"gateway_payment_id,omitempty"`
	ReferenceNumber  *string             `json:"reference_number,omitempty"`
}

type PaymentResponse struct {
	*payment.Payment
}

// ListPaymentsResponse represents the response for listing payments
type ListPaymentsResponse = types.ListResponse[*PaymentResponse]

func (r *RecordPaymentRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if err := r.PaymentMethod.Validate(); err != nil {
		return err
	}
	if !r.Amount.IsPositive() {
		return ierr.NewError("payment amount must be positive").
			WithHint("Payment amount must be greater than zero").
			WithReportableDetails(map[string]any{"amount": r.Amount.String()}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *RecordPaymentRequest) ToPayment(ctx context.Context, invoiceID, currency string) *payment.Payment {
	return &payment.Payment{
		ID:               types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		InvoiceID:        invoiceID,
		Amount:           r.Amount,
		Currency:         currency,
		PaymentMethod:    r.PaymentMethod,
		PaymentStatus:    types.PaymentStatusPending,
		GatewayPaymentID: r.GatewayPaymentID,
		ReferenceNumber:  r.ReferenceNumber,
		BaseModel:        types.GetDefaultBaseModel(ctx),
	}
}
