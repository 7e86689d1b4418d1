package service

import (
	"github.com/veloralabs/agencydesk/internal/domain/client"
	"github.com/veloralabs/agencydesk/internal/idgen"
	"github.com/veloralabs/agencydesk/internal/testutil"
	"github.com/veloralabs/agencydesk/internal/types"
)

// testutilServiceSuite adds seeding helpers shared by the service suites
type testutilServiceSuite struct {
	testutil.BaseServiceTestSuite
}

// createClient seeds a client record directly with a pre-assigned
// identifier, bypassing the service so tests control the identifier
func (s *testutilServiceSuite) createClient(clientID string) *client.Client {
	parts := idgen.ParseClientID(clientID)
	s.Require().NotNil(parts)

	cl := &client.Client{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		ClientID:       clientID,
		SequenceNumber: int64(parts.SequenceNumber),
		ProjectCode:    parts.ProjectCode,
		PlatformCode:   parts.PlatformCode,
		CountryCode:    parts.CountryCode,
		Name:           "Asha Rao",
		Email:          "asha@example.com",
		BaseModel:      types.GetDefaultBaseModel(s.GetContext()),
	}
	s.Require().NoError(s.GetStores().ClientRepo.Create(s.GetContext(), cl))
	return cl
}

// newTestServiceParams builds ServiceParams from the shared test suite's
// in-memory stores and mocks
func newTestServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		DB:             s.GetDB(),
		Cache:          s.GetCache(),
		IDGen:          s.GetIDGen(),
		Email:          s.GetEmailSender(),
		PaymentGateway: s.GetPaymentGateway(),
		InquiryRepo:    stores.InquiryRepo,
		ClientRepo:     stores.ClientRepo,
		QuotationRepo:  stores.QuotationRepo,
		InvoiceRepo:    stores.InvoiceRepo,
		PaymentRepo:    stores.PaymentRepo,
	}
}
