package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/veloralabs/agencydesk/internal/api/dto"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/types"
)

type QuotationServiceSuite struct {
	testutilServiceSuite
	service QuotationService
}

func TestQuotationService(t *testing.T) {
	suite.Run(t, new(QuotationServiceSuite))
}

func (s *QuotationServiceSuite) SetupTest() {
	s.testutilServiceSuite.SetupTest()
	s.service = NewQuotationService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *QuotationServiceSuite) createRequest(clientID string) dto.CreateQuotationRequest {
	return dto.CreateQuotationRequest{
		ClientID: clientID,
		Title:    "Website redesign",
		Currency: "INR",
		LineItems: []dto.LineItemRequest{
			{
				Description: "Design",
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(50000),
			},
			{
				Description: "Development",
				Quantity:    decimal.NewFromInt(2),
				UnitPrice:   decimal.NewFromInt(75000),
			},
		},
	}
}

func (s *QuotationServiceSuite) TestCreateQuotation() {
	cl := s.createClient("EA701-IND-253")

	resp, err := s.service.CreateQuotation(s.GetContext(), s.createRequest(cl.ID))
	s.Require().NoError(err)

	s.Equal("QN1-EA701-001", resp.QuotationID)
	s.Equal(int64(1), resp.SequenceNumber)
	s.Equal(types.QuotationStatusDraft, resp.QuotationStatus)
	s.True(resp.Total.Equal(decimal.NewFromInt(200000)))
}

func (s *QuotationServiceSuite) TestCreateQuotationPerClientScoping() {
	first := s.createClient("EA701-IND-253")
	second := s.createClient("SW702-USA-253")

	q1, err := s.service.CreateQuotation(s.GetContext(), s.createRequest(first.ID))
	s.Require().NoError(err)
	q2, err := s.service.CreateQuotation(s.GetContext(), s.createRequest(first.ID))
	s.Require().NoError(err)
	q3, err := s.service.CreateQuotation(s.GetContext(), s.createRequest(second.ID))
	s.Require().NoError(err)

	s.Equal("QN1-EA701-001", q1.QuotationID)
	s.Equal("QN1-EA701-002", q2.QuotationID)
	// a different client starts its own sequence
	s.Equal("QN1-SW702-001", q3.QuotationID)
}

func (s *QuotationServiceSuite) TestCreateQuotationVersioning() {
	cl := s.createClient("EA701-IND-253")

	req := s.createRequest(cl.ID)
	req.Version = 2
	resp, err := s.service.CreateQuotation(s.GetContext(), req)
	s.Require().NoError(err)
	s.Equal("QN2-EA701-001", resp.QuotationID)
	s.Equal(2, resp.Version)
}

func (s *QuotationServiceSuite) TestCreateQuotationUnknownClient() {
	_, err := s.service.CreateQuotation(s.GetContext(), s.createRequest("client_missing"))
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *QuotationServiceSuite) TestCreateQuotationValidation() {
	cl := s.createClient("EA701-IND-253")

	req := s.createRequest(cl.ID)
	req.LineItems = nil
	_, err := s.service.CreateQuotation(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))

	req = s.createRequest(cl.ID)
	req.Currency = "RUPEES"
	_, err = s.service.CreateQuotation(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *QuotationServiceSuite) TestSendQuotation() {
	cl := s.createClient("EA701-IND-253")
	created, err := s.service.CreateQuotation(s.GetContext(), s.createRequest(cl.ID))
	s.Require().NoError(err)

	sent, err := s.service.SendQuotation(s.GetContext(), created.Quotation.ID)
	s.Require().NoError(err)
	s.Equal(types.QuotationStatusSent, sent.QuotationStatus)
	s.NotNil(sent.SentAt)

	emails := s.GetEmailSender().Sent()
	s.Require().Len(emails, 1)
	s.Equal(cl.Email, emails[0].ToAddress)
	s.Contains(emails[0].Subject, created.QuotationID)

	// already sent
	_, err = s.service.SendQuotation(s.GetContext(), created.Quotation.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *QuotationServiceSuite) TestUpdateQuotationContent() {
	cl := s.createClient("EA701-IND-253")
	created, err := s.service.CreateQuotation(s.GetContext(), s.createRequest(cl.ID))
	s.Require().NoError(err)

	updated, err := s.service.UpdateQuotation(s.GetContext(), created.Quotation.ID, dto.UpdateQuotationRequest{
		Title: lo.ToPtr("Website redesign v2"),
		LineItems: []dto.LineItemRequest{
			{
				Description: "Design",
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(60000),
			},
		},
	})
	s.Require().NoError(err)
	s.Equal("Website redesign v2", updated.Title)
	s.True(updated.Total.Equal(decimal.NewFromInt(60000)))
	s.Equal(created.QuotationID, updated.QuotationID)
}

func (s *QuotationServiceSuite) TestUpdateSentQuotationContentRejected() {
	cl := s.createClient("EA701-IND-253")
	created, err := s.service.CreateQuotation(s.GetContext(), s.createRequest(cl.ID))
	s.Require().NoError(err)
	_, err = s.service.SendQuotation(s.GetContext(), created.Quotation.ID)
	s.Require().NoError(err)

	_, err = s.service.UpdateQuotation(s.GetContext(), created.Quotation.ID, dto.UpdateQuotationRequest{
		Title: lo.ToPtr("Edited after send"),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *QuotationServiceSuite) TestQuotationStatusTransitions() {
	cl := s.createClient("EA701-IND-253")
	created, err := s.service.CreateQuotation(s.GetContext(), s.createRequest(cl.ID))
	s.Require().NoError(err)

	// drafts cannot jump straight to accepted
	_, err = s.service.UpdateQuotation(s.GetContext(), created.Quotation.ID, dto.UpdateQuotationRequest{
		QuotationStatus: types.QuotationStatusAccepted,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	_, err = s.service.SendQuotation(s.GetContext(), created.Quotation.ID)
	s.Require().NoError(err)

	accepted, err := s.service.UpdateQuotation(s.GetContext(), created.Quotation.ID, dto.UpdateQuotationRequest{
		QuotationStatus: types.QuotationStatusAccepted,
	})
	s.Require().NoError(err)
	s.Equal(types.QuotationStatusAccepted, accepted.QuotationStatus)

	// accepted is terminal
	_, err = s.service.UpdateQuotation(s.GetContext(), created.Quotation.ID, dto.UpdateQuotationRequest{
		QuotationStatus: types.QuotationStatusDeclined,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *QuotationServiceSuite) TestListQuotationsByClient() {
	first := s.createClient("EA701-IND-253")
	second := s.createClient("SW702-USA-253")

	_, err := s.service.CreateQuotation(s.GetContext(), s.createRequest(first.ID))
	s.Require().NoError(err)
	_, err = s.service.CreateQuotation(s.GetContext(), s.createRequest(first.ID))
	s.Require().NoError(err)
	_, err = s.service.CreateQuotation(s.GetContext(), s.createRequest(second.ID))
	s.Require().NoError(err)

	resp, err := s.service.ListQuotations(s.GetContext(), first.ID)
	s.NoError(err)
	s.Equal(2, resp.Total)
}
