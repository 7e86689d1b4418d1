package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"github.com/veloralabs/agencydesk/internal/api/dto"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/idgen"
	"github.com/veloralabs/agencydesk/internal/testutil"
	"github.com/veloralabs/agencydesk/internal/types"
)

type ClientServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ClientService
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceSuite))
}

func (s *ClientServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewClientService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *ClientServiceSuite) TestCreateClient() {
	testCases := []struct {
		name          string
		request       dto.CreateClientRequest
		expectedError bool
	}{
		{
			name: "successful_creation",
			request: dto.CreateClientRequest{
				Name:         "Asha Rao",
				Email:        "asha@example.com",
				ProjectCode:  types.ProjectCodeEnterprise,
				PlatformCode: types.PlatformCodeApp,
				CountryCode:  "IND",
			},
			expectedError: false,
		},
		{
			name: "invalid_project_code",
			request: dto.CreateClientRequest{
				Name:         "Asha Rao",
				Email:        "asha@example.com",
				ProjectCode:  "X",
				PlatformCode: types.PlatformCodeApp,
				CountryCode:  "IND",
			},
			expectedError: true,
		},
		{
			name: "invalid_platform_code",
			request: dto.CreateClientRequest{
				Name:         "Asha Rao",
				Email:        "asha@example.com",
				ProjectCode:  types.ProjectCodeEnterprise,
				PlatformCode: "Z",
				CountryCode:  "IND",
			},
			expectedError: true,
		},
		{
			name: "two_letter_country",
			request: dto.CreateClientRequest{
				Name:         "Asha Rao",
				Email:        "asha@example.com",
				ProjectCode:  types.ProjectCodeEnterprise,
				PlatformCode: types.PlatformCodeApp,
				CountryCode:  "IN",
			},
			expectedError: true,
		},
		{
			name: "missing_email",
			request: dto.CreateClientRequest{
				Name:         "Asha Rao",
				ProjectCode:  types.ProjectCodeEnterprise,
				PlatformCode: types.PlatformCodeApp,
				CountryCode:  "IND",
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.CreateClient(s.GetContext(), tc.request)
			if tc.expectedError {
				s.Error(err)
				s.True(ierr.IsValidation(err))
				return
			}
			s.NoError(err)
			s.True(idgen.IsValidClientID(resp.ClientID))
			s.Equal("IND", idgen.ParseClientID(resp.ClientID).CountryCode)
		})
	}
}

func (s *ClientServiceSuite) TestCreateClientSequencing() {
	first, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		Name:         "First",
		Email:        "first@example.com",
		ProjectCode:  types.ProjectCodeEnterprise,
		PlatformCode: types.PlatformCodeApp,
		CountryCode:  "IND",
	})
	s.Require().NoError(err)

	// the counter is global, so a different classification still advances it
	second, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		Name:         "Second",
		Email:        "second@example.com",
		ProjectCode:  types.ProjectCodeStartup,
		PlatformCode: types.PlatformCodeWeb,
		CountryCode:  "usa",
	})
	s.Require().NoError(err)

	s.Equal(int64(1), first.SequenceNumber)
	s.Equal(int64(2), second.SequenceNumber)
	s.Equal(1, idgen.ParseClientID(first.ClientID).SequenceNumber)
	s.Equal(2, idgen.ParseClientID(second.ClientID).SequenceNumber)

	// country codes are stored upper-cased
	s.Equal("USA", idgen.ParseClientID(second.ClientID).CountryCode)
}

func (s *ClientServiceSuite) TestFailedValidationConsumesNoSequence() {
	_, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		Name:         "Bad",
		Email:        "bad@example.com",
		ProjectCode:  "X",
		PlatformCode: types.PlatformCodeApp,
		CountryCode:  "IND",
	})
	s.Require().Error(err)

	resp, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		Name:         "Good",
		Email:        "good@example.com",
		ProjectCode:  types.ProjectCodeEnterprise,
		PlatformCode: types.PlatformCodeApp,
		CountryCode:  "IND",
	})
	s.Require().NoError(err)
	s.Equal(int64(1), resp.SequenceNumber)
}

func (s *ClientServiceSuite) TestGetClientByGeneratedIdentifier() {
	created, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		ProjectCode:  types.ProjectCodeEnterprise,
		PlatformCode: types.PlatformCodeApp,
		CountryCode:  "IND",
	})
	s.Require().NoError(err)

	byInternal, err := s.service.GetClient(s.GetContext(), created.Client.ID)
	s.NoError(err)
	s.Equal(created.ClientID, byInternal.ClientID)

	byIdentifier, err := s.service.GetClientByClientID(s.GetContext(), created.ClientID)
	s.NoError(err)
	s.Equal(created.Client.ID, byIdentifier.Client.ID)

	_, err = s.service.GetClientByClientID(s.GetContext(), "EA799-XXX-999")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ClientServiceSuite) TestUpdateClientKeepsIdentifier() {
	created, err := s.service.CreateClient(s.GetContext(), dto.CreateClientRequest{
		Name:         "Asha Rao",
		Email:        "asha@example.com",
		ProjectCode:  types.ProjectCodeEnterprise,
		PlatformCode: types.PlatformCodeApp,
		CountryCode:  "IND",
	})
	s.Require().NoError(err)

	updated, err := s.service.UpdateClient(s.GetContext(), created.Client.ID, dto.UpdateClientRequest{
		Name:  lo.ToPtr("Asha R."),
		Phone: lo.ToPtr("+919900000000"),
	})
	s.NoError(err)
	s.Equal("Asha R.", updated.Name)
	s.Equal("+919900000000", updated.Phone)
	s.Equal(created.ClientID, updated.ClientID)
	s.Equal(created.SequenceNumber, updated.SequenceNumber)
}
