package service

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/veloralabs/agencydesk/internal/api/dto"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/testutil"
	"github.com/veloralabs/agencydesk/internal/types"
)

type InquiryServiceSuite struct {
	testutil.BaseServiceTestSuite
	service InquiryService
}

func TestInquiryService(t *testing.T) {
	suite.Run(t, new(InquiryServiceSuite))
}

func (s *InquiryServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewInquiryService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *InquiryServiceSuite) TestCreateInquiry() {
	testCases := []struct {
		name          string
		request       dto.CreateInquiryRequest
		expectedError bool
	}{
		{
			name: "successful_creation",
			request: dto.CreateInquiryRequest{
				Name:            "Asha Rao",
				Email:           "asha@example.com",
				Company:         "Rao Textiles",
				ServiceInterest: "ecommerce",
				Message:         "We need an online storefront.",
			},
			expectedError: false,
		},
		{
			name: "missing_email",
			request: dto.CreateInquiryRequest{
				Name:    "Asha Rao",
				Message: "We need an online storefront.",
			},
			expectedError: true,
		},
		{
			name: "invalid_email",
			request: dto.CreateInquiryRequest{
				Name:    "Asha Rao",
				Email:   "not-an-email",
				Message: "We need an online storefront.",
			},
			expectedError: true,
		},
		{
			name: "missing_message",
			request: dto.CreateInquiryRequest{
				Name:  "Asha Rao",
				Email: "asha@example.com",
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.CreateInquiry(s.GetContext(), tc.request)
			if tc.expectedError {
				s.Error(err)
				s.True(ierr.IsValidation(err))
				return
			}
			s.NoError(err)
			s.NotEmpty(resp.ID)
			s.Equal(types.InquiryStatusNew, resp.InquiryStatus)
		})
	}
}

func (s *InquiryServiceSuite) TestCreateInquirySendsAcknowledgement() {
	_, err := s.service.CreateInquiry(s.GetContext(), dto.CreateInquiryRequest{
		Name:            "Asha Rao",
		Email:           "asha@example.com",
		ServiceInterest: "ecommerce",
		Message:         "We need an online storefront.",
	})
	s.NoError(err)

	sent := s.GetEmailSender().Sent()
	s.Require().Len(sent, 1)
	s.Equal("asha@example.com", sent[0].ToAddress)
	s.Contains(sent[0].Text, "ecommerce")
}

func (s *InquiryServiceSuite) TestUpdateInquiryStatus() {
	resp, err := s.service.CreateInquiry(s.GetContext(), dto.CreateInquiryRequest{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Message: "Hello",
	})
	s.Require().NoError(err)

	updated, err := s.service.UpdateInquiry(s.GetContext(), resp.ID, dto.UpdateInquiryRequest{
		InquiryStatus: types.InquiryStatusContacted,
	})
	s.NoError(err)
	s.Equal(types.InquiryStatusContacted, updated.InquiryStatus)

	// converted is reserved for the convert endpoint
	_, err = s.service.UpdateInquiry(s.GetContext(), resp.ID, dto.UpdateInquiryRequest{
		InquiryStatus: types.InquiryStatusConverted,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InquiryServiceSuite) TestListInquiriesByStatus() {
	for i := 0; i < 3; i++ {
		_, err := s.service.CreateInquiry(s.GetContext(), dto.CreateInquiryRequest{
			Name:    "Prospect",
			Email:   "prospect@example.com",
			Message: "Hello",
		})
		s.Require().NoError(err)
	}

	all, err := s.service.ListInquiries(s.GetContext(), "")
	s.NoError(err)
	s.Equal(3, all.Total)

	fresh, err := s.service.ListInquiries(s.GetContext(), types.InquiryStatusNew)
	s.NoError(err)
	s.Equal(3, fresh.Total)

	closed, err := s.service.ListInquiries(s.GetContext(), types.InquiryStatusClosed)
	s.NoError(err)
	s.Equal(0, closed.Total)
}

func (s *InquiryServiceSuite) TestConvertInquiry() {
	resp, err := s.service.CreateInquiry(s.GetContext(), dto.CreateInquiryRequest{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Company: "Rao Textiles",
		Message: "We need an online storefront.",
	})
	s.Require().NoError(err)

	clientResp, err := s.service.ConvertInquiry(s.GetContext(), resp.ID, dto.ConvertInquiryRequest{
		ProjectCode:  types.ProjectCodeEnterprise,
		PlatformCode: types.PlatformCodeApp,
		CountryCode:  "IND",
	})
	s.NoError(err)
	s.NotEmpty(clientResp.ClientID)
	s.True(len(clientResp.ClientID) > 0)
	s.Equal("Asha Rao", clientResp.Name)
	s.Equal(int64(1), clientResp.SequenceNumber)
	s.Require().NotNil(clientResp.InquiryID)
	s.Equal(resp.ID, *clientResp.InquiryID)

	// the inquiry is marked converted and linked to the client
	inq, err := s.service.GetInquiry(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal(types.InquiryStatusConverted, inq.InquiryStatus)
	s.Require().NotNil(inq.ConvertedClientID)
	s.Equal(clientResp.Client.ID, *inq.ConvertedClientID)

	// converting twice is rejected
	_, err = s.service.ConvertInquiry(s.GetContext(), resp.ID, dto.ConvertInquiryRequest{
		ProjectCode:  types.ProjectCodeEnterprise,
		PlatformCode: types.PlatformCodeApp,
		CountryCode:  "IND",
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InquiryServiceSuite) TestConvertClosedInquiry() {
	resp, err := s.service.CreateInquiry(s.GetContext(), dto.CreateInquiryRequest{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Message: "Hello",
	})
	s.Require().NoError(err)

	_, err = s.service.UpdateInquiry(s.GetContext(), resp.ID, dto.UpdateInquiryRequest{
		InquiryStatus: types.InquiryStatusClosed,
	})
	s.Require().NoError(err)

	_, err = s.service.ConvertInquiry(s.GetContext(), resp.ID, dto.ConvertInquiryRequest{
		ProjectCode:  types.ProjectCodeEnterprise,
		PlatformCode: types.PlatformCodeApp,
		CountryCode:  "IND",
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}
