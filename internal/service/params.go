package service

import (
	"github.com/veloralabs/agencydesk/internal/cache"
	"github.com/veloralabs/agencydesk/internal/config"
	"github.com/veloralabs/agencydesk/internal/domain/client"
	"github.com/veloralabs/agencydesk/internal/domain/inquiry"
	"github.com/veloralabs/agencydesk/internal/domain/invoice"
	"github.com/veloralabs/agencydesk/internal/domain/payment"
	"github.com/veloralabs/agencydesk/internal/domain/quotation"
	"github.com/veloralabs/agencydesk/internal/email"
	"github.com/veloralabs/agencydesk/internal/idgen"
	"github.com/veloralabs/agencydesk/internal/logger"
	gateway "github.com/veloralabs/agencydesk/internal/payment"
	"github.com/veloralabs/agencydesk/internal/postgres"
)

// ServiceParams bundles common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	Cache  cache.Cache

	IDGen          *idgen.Generator
	Email          email.Sender
	PaymentGateway gateway.Gateway

	// Repositories
	InquiryRepo   inquiry.Repository
	ClientRepo    client.Repository
	QuotationRepo quotation.Repository
	InvoiceRepo   invoice.Repository
	PaymentRepo   payment.Repository
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	cache cache.Cache,
	idGen *idgen.Generator,
	emailSender email.Sender,
	paymentGateway gateway.Gateway,
	inquiryRepo inquiry.Repository,
	clientRepo client.Repository,
	quotationRepo quotation.Repository,
	invoiceRepo invoice.Repository,
	paymentRepo payment.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:         logger,
		Config:         config,
		DB:             db,
		Cache:          cache,
		IDGen:          idGen,
		Email:          emailSender,
		PaymentGateway: paymentGateway,
		InquiryRepo:    inquiryRepo,
		ClientRepo:     clientRepo,
		QuotationRepo:  quotationRepo,
		InvoiceRepo:    invoiceRepo,
		PaymentRepo:    paymentRepo,
	}
}
