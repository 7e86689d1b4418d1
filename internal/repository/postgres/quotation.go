package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/veloralabs/agencydesk/internal/domain/quotation"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/postgres"
)

const quotationIDUniqueConstraint = "quotations_quotation_id_key"

type quotationRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewQuotationRepository(db *postgres.DB, logger *logger.Logger) quotation.Repository {
	return &quotationRepository{db: db, logger: logger}
}

func (r *quotationRepository) Create(ctx context.Context, q *quotation.Quotation) error {
	query := `
		INSERT INTO quotations (
			id, quotation_id, sequence_number, client_id, version,
			title, line_items, total, currency, quotation_status,
			valid_until, sent_at,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :quotation_id, :sequence_number, :client_id, :version,
			:title, :line_items, :total, :currency, :quotation_status,
			:valid_until, :sent_at,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	if _, err := r.db.NamedExecContext(ctx, query, q); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Constraint == quotationIDUniqueConstraint {
			return ierr.WithError(err).
				WithHint("A quotation with this identifier already exists").
				WithReportableDetails(map[string]any{"quotation_id": q.QuotationID}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create quotation").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *quotationRepository) Get(ctx context.Context, id string) (*quotation.Quotation, error) {
	var q quotation.Quotation
	query := `SELECT * FROM quotations WHERE id = $1 AND status != 'deleted'`

	if err := r.db.GetQuerier(ctx).GetContext(ctx, &q, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("quotation not found").
				WithHint("Quotation not found").
				WithReportableDetails(map[string]any{"id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get quotation").
			Mark(ierr.ErrDatabase)
	}

	return &q, nil
}

func (r *quotationRepository) Update(ctx context.Context, q *quotation.Quotation) error {
	// quotation_id, sequence_number and version are immutable
	query := `
		UPDATE quotations SET
			title = :title,
			line_items = :line_items,
			total = :total,
			currency = :currency,
			quotation_status = :quotation_status,
			valid_until = :valid_until,
			sent_at = :sent_at,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, q)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update quotation").
			Mark(ierr.ErrDatabase)
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ierr.NewError("quotation not found").
			WithHint("Quotation not found").
			WithReportableDetails(map[string]any{"id": q.ID}).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *quotationRepository) ListByClient(ctx context.Context, clientID string) ([]*quotation.Quotation, error) {
	quotations := []*quotation.Quotation{}

	if clientID == "" {
		query := `SELECT * FROM quotations WHERE status != 'deleted' ORDER BY created_at DESC`
		if err := r.db.GetQuerier(ctx).SelectContext(ctx, &quotations, query); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to list quotations").
				Mark(ierr.ErrDatabase)
		}
		return quotations, nil
	}

	query := `SELECT * FROM quotations WHERE client_id = $1 AND status != 'deleted' ORDER BY created_at DESC`
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &quotations, query, clientID); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list quotations").
			Mark(ierr.ErrDatabase)
	}

	return quotations, nil
}
