package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/veloralabs/agencydesk/internal/cache"
	"github.com/veloralabs/agencydesk/internal/config"
	"github.com/veloralabs/agencydesk/internal/domain/client"
	"github.com/veloralabs/agencydesk/internal/domain/inquiry"
	"github.com/veloralabs/agencydesk/internal/domain/invoice"
	"github.com/veloralabs/agencydesk/internal/domain/payment"
	"github.com/veloralabs/agencydesk/internal/domain/quotation"
	"github.com/veloralabs/agencydesk/internal/domain/sequence"
	"github.com/veloralabs/agencydesk/internal/idgen"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/postgres"
	"github.com/veloralabs/agencydesk/internal/types"
	"github.com/veloralabs/agencydesk/internal/validator"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	SequenceStore sequence.Store
	InquiryRepo   inquiry.Repository
	ClientRepo    client.Repository
	QuotationRepo quotation.Repository
	InvoiceRepo   invoice.Repository
	PaymentRepo   payment.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	stores  Stores
	db      postgres.IClient
	cache   cache.Cache
	logger  *logger.Logger
	config  *config.Configuration
	idGen   *idgen.Generator
	email   *MockEmailSender
	gateway *MockPaymentGateway
	now     time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := &config.Configuration{
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
		Auth: config.AuthConfig{
			Secret: "test-secret-for-unit-tests-only",
		},
		Payment: config.PaymentConfig{
			UPIAddress: "payments@agency.test",
		},
	}
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}

	s.cache = cache.Initialize(s.logger)
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = SetupContext()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		SequenceStore: NewInMemorySequenceStore(),
		InquiryRepo:   NewInMemoryInquiryStore(),
		ClientRepo:    NewInMemoryClientStore(),
		QuotationRepo: NewInMemoryQuotationStore(),
		InvoiceRepo:   NewInMemoryInvoiceStore(),
		PaymentRepo:   NewInMemoryPaymentStore(),
	}

	s.db = NewMockPostgresClient(s.logger)
	s.idGen = idgen.NewGenerator(s.stores.SequenceStore, s.logger)
	s.email = NewMockEmailSender()
	s.gateway = NewMockPaymentGateway()
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.SequenceStore.(*InMemorySequenceStore).Clear()
	s.stores.InquiryRepo.(*InMemoryInquiryStore).Clear()
	s.stores.ClientRepo.(*InMemoryClientStore).Clear()
	s.stores.QuotationRepo.(*InMemoryQuotationStore).Clear()
	s.stores.InvoiceRepo.(*InMemoryInvoiceStore).Clear()
	s.stores.PaymentRepo.(*InMemoryPaymentStore).Clear()
	s.email.Clear()
	s.gateway.Clear()
	s.cache.Flush(s.ctx)
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetStores returns the in-memory repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetDB returns the mock database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetIDGen returns the identifier generator backed by the in-memory
// sequence store
func (s *BaseServiceTestSuite) GetIDGen() *idgen.Generator {
	return s.idGen
}

// GetEmailSender returns the recording email sender
func (s *BaseServiceTestSuite) GetEmailSender() *MockEmailSender {
	return s.email
}

// GetPaymentGateway returns the mock payment gateway
func (s *BaseServiceTestSuite) GetPaymentGateway() *MockPaymentGateway {
	return s.gateway
}

// GetNow returns the current time used in tests
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
