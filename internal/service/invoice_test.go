package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/veloralabs/agencydesk/internal/api/dto"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/types"
)

type InvoiceServiceSuite struct {
	testutilServiceSuite
	service InvoiceService
	quotSvc QuotationService
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.testutilServiceSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewInvoiceService(params)
	s.quotSvc = NewQuotationService(params)
}

func (s *InvoiceServiceSuite) createRequest(clientID string, issueDate time.Time) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientID:  clientID,
		Currency:  "INR",
		IssueDate: lo.ToPtr(issueDate),
		LineItems: []dto.LineItemRequest{
			{
				Description: "Milestone 1",
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(100000),
			},
		},
	}
}

func (s *InvoiceServiceSuite) TestCreateInvoice() {
	cl := s.createClient("EA701-IND-253")

	issueDate := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)
	resp, err := s.service.CreateInvoice(s.GetContext(), s.createRequest(cl.ID, issueDate))
	s.Require().NoError(err)

	s.Equal("IN1-FY24-EA701-001", resp.InvoiceID)
	s.Equal("2425", resp.FiscalYear)
	s.Equal(int64(1), resp.SequenceNumber)
	s.Equal(types.InvoiceStatusDraft, resp.InvoiceStatus)
	s.True(resp.AmountDue.Equal(decimal.NewFromInt(100000)))
}

func (s *InvoiceServiceSuite) TestCreateInvoiceFiscalYearScoping() {
	cl := s.createClient("EA701-IND-253")

	// two invoices in the same fiscal year share a sequence
	first, err := s.service.CreateInvoice(s.GetContext(), s.createRequest(cl.ID, time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(err)
	second, err := s.service.CreateInvoice(s.GetContext(), s.createRequest(cl.ID, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(err)

	s.Equal("IN1-FY24-EA701-001", first.InvoiceID)
	s.Equal("IN1-FY24-EA701-002", second.InvoiceID)
	s.Equal("2425", second.FiscalYear)

	// April starts a new fiscal year and resets the sequence
	third, err := s.service.CreateInvoice(s.GetContext(), s.createRequest(cl.ID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(err)
	s.Equal("IN1-FY25-EA701-001", third.InvoiceID)
	s.Equal("2526", third.FiscalYear)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceFromQuotation() {
	cl := s.createClient("EA701-IND-253")

	quot, err := s.quotSvc.CreateQuotation(s.GetContext(), dto.CreateQuotationRequest{
		ClientID: cl.ID,
		Title:    "Website redesign",
		Currency: "INR",
		LineItems: []dto.LineItemRequest{
			{
				Description: "Design",
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(50000),
			},
		},
	})
	s.Require().NoError(err)

	req := s.createRequest(cl.ID, time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC))
	req.QuotationID = lo.ToPtr(quot.Quotation.ID)
	resp, err := s.service.CreateInvoice(s.GetContext(), req)
	s.NoError(err)
	s.Equal(quot.Quotation.ID, *resp.QuotationID)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceRejectsForeignQuotation() {
	owner := s.createClient("EA701-IND-253")
	other := s.createClient("SW702-USA-253")

	quot, err := s.quotSvc.CreateQuotation(s.GetContext(), dto.CreateQuotationRequest{
		ClientID: owner.ID,
		Title:    "Website redesign",
		Currency: "INR",
		LineItems: []dto.LineItemRequest{
			{
				Description: "Design",
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(50000),
			},
		},
	})
	s.Require().NoError(err)

	req := s.createRequest(other.ID, time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC))
	req.QuotationID = lo.ToPtr(quot.Quotation.ID)
	_, err = s.service.CreateInvoice(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestFinalizeInvoice() {
	cl := s.createClient("EA701-IND-253")
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest(cl.ID, time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(err)

	finalized, err := s.service.FinalizeInvoice(s.GetContext(), created.Invoice.ID)
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusFinalized, finalized.InvoiceStatus)
	s.NotNil(finalized.FinalizedAt)
	s.Require().NotNil(finalized.PaymentLinkURL)

	requests := s.GetPaymentGateway().Requests()
	s.Require().Len(requests, 1)
	s.Equal(created.Invoice.ID, requests[0].InvoiceID)
	s.True(requests[0].Amount.Equal(decimal.NewFromInt(100000)))

	emails := s.GetEmailSender().Sent()
	s.Require().Len(emails, 1)
	s.Equal(cl.Email, emails[0].ToAddress)
	s.Contains(emails[0].Text, *finalized.PaymentLinkURL)
	s.Contains(emails[0].Text, s.GetConfig().Payment.UPIAddress)

	// already finalized
	_, err = s.service.FinalizeInvoice(s.GetContext(), created.Invoice.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestFinalizeSurvivesGatewayFailure() {
	cl := s.createClient("EA701-IND-253")
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest(cl.ID, time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(err)

	s.GetPaymentGateway().Err = ierr.NewError("gateway unavailable").Mark(ierr.ErrHTTPClient)

	finalized, err := s.service.FinalizeInvoice(s.GetContext(), created.Invoice.ID)
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusFinalized, finalized.InvoiceStatus)
	s.Nil(finalized.PaymentLinkURL)

	// the email still goes out with the manual rails only
	emails := s.GetEmailSender().Sent()
	s.Require().Len(emails, 1)
	s.Contains(emails[0].Text, s.GetConfig().Payment.UPIAddress)
}

func (s *InvoiceServiceSuite) TestFinalizeZeroTotalRejected() {
	cl := s.createClient("EA701-IND-253")
	req := s.createRequest(cl.ID, time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC))
	req.LineItems = []dto.LineItemRequest{
		{Description: "Goodwill discount"},
	}
	created, err := s.service.CreateInvoice(s.GetContext(), req)
	s.Require().NoError(err)

	_, err = s.service.FinalizeInvoice(s.GetContext(), created.Invoice.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestRecordPayment() {
	cl := s.createClient("EA701-IND-253")
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest(cl.ID, time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(err)
	_, err = s.service.FinalizeInvoice(s.GetContext(), created.Invoice.ID)
	s.Require().NoError(err)
	s.GetEmailSender().Clear()

	// partial payment keeps the invoice finalized
	partial, err := s.service.RecordPayment(s.GetContext(), created.Invoice.ID, dto.RecordPaymentRequest{
		Amount:          decimal.NewFromInt(40000),
		PaymentMethod:   types.PaymentMethodUPI,
		ReferenceNumber: lo.ToPtr("UPI123456"),
	})
	s.Require().NoError(err)
	s.Equal(types.PaymentStatusSucceeded, partial.PaymentStatus)
	s.NotNil(partial.SucceededAt)

	inv, err := s.service.GetInvoice(s.GetContext(), created.Invoice.ID)
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusFinalized, inv.InvoiceStatus)
	s.True(inv.AmountDue.Equal(decimal.NewFromInt(60000)))

	// paying the balance transitions to paid
	_, err = s.service.RecordPayment(s.GetContext(), created.Invoice.ID, dto.RecordPaymentRequest{
		Amount:        decimal.NewFromInt(60000),
		PaymentMethod: types.PaymentMethodBankTransfer,
	})
	s.Require().NoError(err)

	inv, err = s.service.GetInvoice(s.GetContext(), created.Invoice.ID)
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.InvoiceStatus)
	s.NotNil(inv.PaidAt)
	s.True(inv.AmountDue.IsZero())

	// one confirmation per recorded payment
	s.Len(s.GetEmailSender().Sent(), 2)
}

func (s *InvoiceServiceSuite) TestRecordPaymentRejections() {
	cl := s.createClient("EA701-IND-253")
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest(cl.ID, time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(err)

	// draft invoices cannot take payments
	_, err = s.service.RecordPayment(s.GetContext(), created.Invoice.ID, dto.RecordPaymentRequest{
		Amount:        decimal.NewFromInt(1000),
		PaymentMethod: types.PaymentMethodUPI,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	_, err = s.service.FinalizeInvoice(s.GetContext(), created.Invoice.ID)
	s.Require().NoError(err)

	// overpayment
	_, err = s.service.RecordPayment(s.GetContext(), created.Invoice.ID, dto.RecordPaymentRequest{
		Amount:        decimal.NewFromInt(100001),
		PaymentMethod: types.PaymentMethodUPI,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	// non-positive amount
	_, err = s.service.RecordPayment(s.GetContext(), created.Invoice.ID, dto.RecordPaymentRequest{
		Amount:        decimal.Zero,
		PaymentMethod: types.PaymentMethodUPI,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestVoidInvoice() {
	cl := s.createClient("EA701-IND-253")
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest(cl.ID, time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(err)

	voided, err := s.service.VoidInvoice(s.GetContext(), created.Invoice.ID)
	s.Require().NoError(err)
	s.Equal(types.InvoiceStatusVoid, voided.InvoiceStatus)

	// voiding twice
	_, err = s.service.VoidInvoice(s.GetContext(), created.Invoice.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestVoidInvoiceWithPaymentsRejected() {
	cl := s.createClient("EA701-IND-253")
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest(cl.ID, time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(err)
	_, err = s.service.FinalizeInvoice(s.GetContext(), created.Invoice.ID)
	s.Require().NoError(err)

	_, err = s.service.RecordPayment(s.GetContext(), created.Invoice.ID, dto.RecordPaymentRequest{
		Amount:        decimal.NewFromInt(40000),
		PaymentMethod: types.PaymentMethodUPI,
	})
	s.Require().NoError(err)

	_, err = s.service.VoidInvoice(s.GetContext(), created.Invoice.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestListPayments() {
	cl := s.createClient("EA701-IND-253")
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest(cl.ID, time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)))
	s.Require().NoError(err)
	_, err = s.service.FinalizeInvoice(s.GetContext(), created.Invoice.ID)
	s.Require().NoError(err)

	for _, amount := range []int64{25000, 30000} {
		_, err = s.service.RecordPayment(s.GetContext(), created.Invoice.ID, dto.RecordPaymentRequest{
			Amount:        decimal.NewFromInt(amount),
			PaymentMethod: types.PaymentMethodBankTransfer,
		})
		s.Require().NoError(err)
	}

	resp, err := s.service.ListPayments(s.GetContext(), created.Invoice.ID)
	s.NoError(err)
	s.Equal(2, resp.Total)
}
