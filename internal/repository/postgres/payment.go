package postgres

import (
	"context"
	"database/sql"

	"github.com/veloralabs/agencydesk/internal/domain/payment"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/postgres"
)

type paymentRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPaymentRepository(db *postgres.DB, logger *logger.Logger) payment.Repository {
	return &paymentRepository{db: db, logger: logger}
}

func (r *paymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO payments (
			id, invoice_id, amount, currency, payment_method, payment_status,
			gateway_payment_id, reference_number, succeeded_at,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :invoice_id, :amount, :currency, :payment_method, :payment_status,
			:gateway_payment_id, :reference_number, :succeeded_at,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to record payment").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *paymentRepository) Get(ctx context.Context, id string) (*payment.Payment, error) {
	var p payment.Payment
	query := `SELECT * FROM payments WHERE id = $1 AND status != 'deleted'`

	if err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("payment not found").
				WithHint("Payment not found").
				WithReportableDetails(map[string]any{"id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get payment").
			Mark(ierr.ErrDatabase)
	}

	return &p, nil
}

func (r *paymentRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*payment.Payment, error) {
	payments := []*payment.Payment{}
	query := `SELECT * FROM payments WHERE invoice_id = $1 AND status != 'deleted' ORDER BY created_at DESC`

	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &payments, query, invoiceID); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments").
			Mark(ierr.ErrDatabase)
	}

	return payments, nil
}
