package service

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/veloralabs/agencydesk/internal/api/dto"
	"github.com/veloralabs/agencydesk/internal/domain/invoice"
	domainpayment "github.com/veloralabs/agencydesk/internal/domain/payment"
	"github.com/veloralabs/agencydesk/internal/email"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	gateway "github.com/veloralabs/agencydesk/internal/payment"
	"github.com/veloralabs/agencydesk/internal/types"
)

// InvoiceService handles invoice issuance, finalization and payment
// collection
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, clientID string) (*dto.ListInvoicesResponse, error)
	FinalizeInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	VoidInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
	ListPayments(ctx context.Context, invoiceID string) (*dto.ListPaymentsResponse, error)
}

type invoiceService struct {
	ServiceParams
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
	}
}

// CreateInvoice issues a new draft invoice. The identifier is scoped per
// client and fiscal year; allocation and insert commit together.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please check the invoice details").
			Mark(ierr.ErrValidation)
	}

	cl, err := s.ClientRepo.Get(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	if req.QuotationID != nil {
		quot, err := s.QuotationRepo.Get(ctx, *req.QuotationID)
		if err != nil {
			return nil, err
		}
		if quot.ClientID != cl.ID {
			return nil, ierr.NewError("quotation belongs to a different client").
				WithHint("The quotation must belong to the invoiced client").
				Mark(ierr.ErrInvalidOperation)
		}
	}

	issueDate := time.Now().UTC()
	if req.IssueDate != nil {
		issueDate = req.IssueDate.UTC()
	}

	inv := req.ToInvoice(ctx)

	err = s.DB.WithTx(ctx, func(txCtx context.Context) error {
		identifier, err := s.IDGen.NextInvoiceID(txCtx, cl.ClientID, inv.Version, issueDate)
		if err != nil {
			return err
		}
		inv.InvoiceID = identifier.ID
		inv.SequenceNumber = identifier.Sequence
		inv.FiscalYear = identifier.FiscalYear

		return s.InvoiceRepo.Create(txCtx, inv)
	})
	if err != nil {
		return nil, err
	}

	return dto.NewInvoiceResponse(inv), nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv), nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, clientID string) (*dto.ListInvoicesResponse, error) {
	invoices, err := s.InvoiceRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	items := lo.Map(invoices, func(inv *invoice.Invoice, _ int) *dto.InvoiceResponse {
		return dto.NewInvoiceResponse(inv)
	})

	response := types.NewListResponse(items)
	return &response, nil
}

// FinalizeInvoice issues a draft invoice to the client. A card checkout
// link is created when the gateway is configured; link creation failure
// does not block finalization since manual payment rails remain open.
func (s *invoiceService) FinalizeInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.InvoiceStatus != types.InvoiceStatusDraft {
		return nil, ierr.NewError("invoice is not a draft").
			WithHint("Only draft invoices can be finalized").
			WithReportableDetails(map[string]any{"invoice_status": inv.InvoiceStatus}).
			Mark(ierr.ErrInvalidOperation)
	}
	if inv.Total.IsZero() {
		return nil, ierr.NewError("invoice total is zero").
			WithHint("Cannot finalize an invoice with nothing due").
			Mark(ierr.ErrInvalidOperation)
	}

	cl, err := s.ClientRepo.Get(ctx, inv.ClientID)
	if err != nil {
		return nil, err
	}

	link, err := s.PaymentGateway.CreatePaymentLink(ctx, &gateway.PaymentLinkRequest{
		InvoiceID:   inv.ID,
		InvoiceName: inv.InvoiceID,
		Amount:      inv.AmountDue(),
		Currency:    inv.Currency,
	})
	if err != nil {
		s.Logger.Errorw("failed to create payment link",
			"error", err,
			"invoice_id", inv.InvoiceID)
	}

	now := time.Now().UTC()
	inv.InvoiceStatus = types.InvoiceStatusFinalized
	inv.FinalizedAt = &now
	if link != nil {
		inv.PaymentLinkURL = lo.ToPtr(link.URL)
	}
	inv.UpdatedAt = now
	inv.UpdatedBy = types.GetUserID(ctx)

	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	paymentLink := ""
	if inv.PaymentLinkURL != nil {
		paymentLink = *inv.PaymentLinkURL
	}
	subject, text := email.InvoiceFinalized(cl.Name, inv.InvoiceID, inv.Total, inv.Currency, paymentLink, s.Config.Payment.UPIAddress)
	if _, err := s.Email.SendEmail(ctx, email.SendEmailRequest{
		ToAddress: cl.Email,
		Subject:   subject,
		Text:      text,
	}); err != nil {
		s.Logger.Errorw("failed to send invoice email",
			"error", err,
			"invoice_id", inv.InvoiceID)
	}

	return dto.NewInvoiceResponse(inv), nil
}

// VoidInvoice cancels an invoice that has no recorded payments
func (s *invoiceService) VoidInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.InvoiceStatus == types.InvoiceStatusPaid || inv.InvoiceStatus == types.InvoiceStatusVoid {
		return nil, ierr.NewError("invoice cannot be voided").
			WithHint("Paid or voided invoices cannot be voided").
			WithReportableDetails(map[string]any{"invoice_status": inv.InvoiceStatus}).
			Mark(ierr.ErrInvalidOperation)
	}
	if inv.AmountPaid.IsPositive() {
		return nil, ierr.NewError("invoice has recorded payments").
			WithHint("Invoices with payments cannot be voided").
			Mark(ierr.ErrInvalidOperation)
	}

	inv.InvoiceStatus = types.InvoiceStatusVoid
	inv.UpdatedAt = time.Now().UTC()
	inv.UpdatedBy = types.GetUserID(ctx)

	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	return dto.NewInvoiceResponse(inv), nil
}

// RecordPayment records money received against a finalized invoice and
// transitions it to paid when the balance reaches zero. The payment row
// and the invoice update commit together.
func (s *invoiceService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Please check the payment details").
			Mark(ierr.ErrValidation)
	}

	inv, err := s.InvoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if inv.InvoiceStatus != types.InvoiceStatusFinalized {
		return nil, ierr.NewError("invoice is not finalized").
			WithHint("Payments can only be recorded against finalized invoices").
			WithReportableDetails(map[string]any{"invoice_status": inv.InvoiceStatus}).
			Mark(ierr.ErrInvalidOperation)
	}
	if req.Amount.GreaterThan(inv.AmountDue()) {
		return nil, ierr.NewError("payment exceeds amount due").
			WithHint("Payment amount cannot exceed the outstanding balance").
			WithReportableDetails(map[string]any{
				"amount":     req.Amount.String(),
				"amount_due": inv.AmountDue().String(),
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	pay := req.ToPayment(ctx, inv.ID, inv.Currency)
	pay.PaymentStatus = types.PaymentStatusSucceeded
	pay.SucceededAt = &now

	err = s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.PaymentRepo.Create(txCtx, pay); err != nil {
			return err
		}

		inv.AmountPaid = inv.AmountPaid.Add(pay.Amount)
		if inv.AmountDue().IsZero() {
			inv.InvoiceStatus = types.InvoiceStatusPaid
			inv.PaidAt = &now
		}
		inv.UpdatedAt = now
		inv.UpdatedBy = types.GetUserID(txCtx)
		return s.InvoiceRepo.Update(txCtx, inv)
	})
	if err != nil {
		return nil, err
	}

	if cl, err := s.ClientRepo.Get(ctx, inv.ClientID); err == nil {
		subject, text := email.PaymentReceived(cl.Name, inv.InvoiceID, pay.Amount, pay.Currency)
		if _, err := s.Email.SendEmail(ctx, email.SendEmailRequest{
			ToAddress: cl.Email,
			Subject:   subject,
			Text:      text,
		}); err != nil {
			s.Logger.Errorw("failed to send payment confirmation",
				"error", err,
				"invoice_id", inv.InvoiceID)
		}
	}

	s.Logger.Infow("recorded payment",
		"invoice_id", inv.InvoiceID,
		"amount", pay.Amount.String(),
		"payment_method", pay.PaymentMethod)

	return &dto.PaymentResponse{Payment: pay}, nil
}

func (s *invoiceService) ListPayments(ctx context.Context, invoiceID string) (*dto.ListPaymentsResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.ListByInvoice(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	items := lo.Map(payments, func(pay *domainpayment.Payment, _ int) *dto.PaymentResponse {
		return &dto.PaymentResponse{Payment: pay}
	})

	response := types.NewListResponse(items)
	return &response, nil
}
