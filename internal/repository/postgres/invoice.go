package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/veloralabs/agencydesk/internal/domain/invoice"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/postgres"
)

const invoiceIDUniqueConstraint = "invoices_invoice_id_key"

type invoiceRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return &invoiceRepository{db: db, logger: logger}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (
			id, invoice_id, sequence_number, fiscal_year, client_id, quotation_id, version,
			line_items, total, amount_paid, currency, invoice_status,
			due_date, payment_link_url, finalized_at, paid_at,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :invoice_id, :sequence_number, :fiscal_year, :client_id, :quotation_id, :version,
			:line_items, :total, :amount_paid, :currency, :invoice_status,
			:due_date, :payment_link_url, :finalized_at, :paid_at,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	if _, err := r.db.NamedExecContext(ctx, query, inv); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Constraint == invoiceIDUniqueConstraint {
			return ierr.WithError(err).
				WithHint("An invoice with this identifier already exists").
				WithReportableDetails(map[string]any{"invoice_id": inv.InvoiceID}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create invoice").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	query := `SELECT * FROM invoices WHERE id = $1 AND status != 'deleted'`

	if err := r.db.GetQuerier(ctx).GetContext(ctx, &inv, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("invoice not found").
				WithHint("Invoice not found").
				WithReportableDetails(map[string]any{"id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get invoice").
			Mark(ierr.ErrDatabase)
	}

	return &inv, nil
}

func (r *invoiceRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	query := `SELECT * FROM invoices WHERE invoice_id = $1 AND status != 'deleted'`

	if err := r.db.GetQuerier(ctx).GetContext(ctx, &inv, query, invoiceID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("invoice not found").
				WithHint("Invoice not found").
				WithReportableDetails(map[string]any{"invoice_id": invoiceID}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get invoice").
			Mark(ierr.ErrDatabase)
	}

	return &inv, nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	// invoice_id, sequence_number and fiscal_year are immutable
	query := `
		UPDATE invoices SET
			line_items = :line_items,
			total = :total,
			amount_paid = :amount_paid,
			currency = :currency,
			invoice_status = :invoice_status,
			due_date = :due_date,
			payment_link_url = :payment_link_url,
			finalized_at = :finalized_at,
			paid_at = :paid_at,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, inv)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update invoice").
			Mark(ierr.ErrDatabase)
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			WithReportableDetails(map[string]any{"id": inv.ID}).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *invoiceRepository) ListByClient(ctx context.Context, clientID string) ([]*invoice.Invoice, error) {
	invoices := []*invoice.Invoice{}

	if clientID == "" {
		query := `SELECT * FROM invoices WHERE status != 'deleted' ORDER BY created_at DESC`
		if err := r.db.GetQuerier(ctx).SelectContext(ctx, &invoices, query); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to list invoices").
				Mark(ierr.ErrDatabase)
		}
		return invoices, nil
	}

	query := `SELECT * FROM invoices WHERE client_id = $1 AND status != 'deleted' ORDER BY created_at DESC`
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &invoices, query, clientID); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}

	return invoices, nil
}
