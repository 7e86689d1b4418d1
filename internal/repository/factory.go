package repository

import (
	"github.com/veloralabs/agencydesk/internal/domain/client"
	"github.com/veloralabs/agencydesk/internal/domain/inquiry"
	"github.com/veloralabs/agencydesk/internal/domain/invoice"
	"github.com/veloralabs/agencydesk/internal/domain/payment"
	"github.com/veloralabs/agencydesk/internal/domain/quotation"
	"github.com/veloralabs/agencydesk/internal/domain/sequence"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/postgres"
	postgresRepo "github.com/veloralabs/agencydesk/internal/repository/postgres"
)

func NewSequenceStore(db *postgres.DB, logger *logger.Logger) sequence.Store {
	return postgresRepo.NewSequenceStore(db, logger)
}

func NewInquiryRepository(db *postgres.DB, logger *logger.Logger) inquiry.Repository {
	return postgresRepo.NewInquiryRepository(db, logger)
}

func NewClientRepository(db *postgres.DB, logger *logger.Logger) client.Repository {
	return postgresRepo.NewClientRepository(db, logger)
}

func NewQuotationRepository(db *postgres.DB, logger *logger.Logger) quotation.Repository {
	return postgresRepo.NewQuotationRepository(db, logger)
}

func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return postgresRepo.NewInvoiceRepository(db, logger)
}

func NewPaymentRepository(db *postgres.DB, logger *logger.Logger) payment.Repository {
	return postgresRepo.NewPaymentRepository(db, logger)
}
