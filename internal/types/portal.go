package types

import (
	ierr "github.com/veloralabs/agencydesk/internal/errors"
)

// InquiryStatus tracks a marketing-site inquiry through triage
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusConverted InquiryStatus = "converted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// QuotationStatus tracks a quotation's lifecycle
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusDeclined QuotationStatus = "declined"
)

// InvoiceStatus tracks an invoice's lifecycle
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusFinalized InvoiceStatus = "finalized"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusVoid      InvoiceStatus = "void"
)

// PaymentMethod is how an invoice payment was collected
type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodBankTransfer:
		return nil
	}
	return ierr.NewError("invalid payment method").
		WithHint("Payment method must be one of card, upi, bank_transfer").
		WithReportableDetails(map[string]any{"payment_method": string(m)}).
		Mark(ierr.ErrValidation)
}

// PaymentStatus tracks a recorded payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
)
