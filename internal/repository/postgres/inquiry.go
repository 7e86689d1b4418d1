package postgres

import (
	"context"
	"database/sql"

	"github.com/veloralabs/agencydesk/internal/domain/inquiry"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/postgres"
	"github.com/veloralabs/agencydesk/internal/types"
)

type inquiryRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewInquiryRepository(db *postgres.DB, logger *logger.Logger) inquiry.Repository {
	return &inquiryRepository{db: db, logger: logger}
}

func (r *inquiryRepository) Create(ctx context.Context, inq *inquiry.Inquiry) error {
	query := `
		INSERT INTO inquiries (
			id, name, email, phone, company, service_interest, message,
			inquiry_status, converted_client_id,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :name, :email, :phone, :company, :service_interest, :message,
			:inquiry_status, :converted_client_id,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	if _, err := r.db.NamedExecContext(ctx, query, inq); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create inquiry").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *inquiryRepository) Get(ctx context.Context, id string) (*inquiry.Inquiry, error) {
	var inq inquiry.Inquiry
	query := `SELECT * FROM inquiries WHERE id = $1 AND status != 'deleted'`

	if err := r.db.GetQuerier(ctx).GetContext(ctx, &inq, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("inquiry not found").
				WithHint("Inquiry not found").
				WithReportableDetails(map[string]any{"id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get inquiry").
			Mark(ierr.ErrDatabase)
	}

	return &inq, nil
}

func (r *inquiryRepository) Update(ctx context.Context, inq *inquiry.Inquiry) error {
	query := `
		UPDATE inquiries SET
			inquiry_status = :inquiry_status,
			converted_client_id = :converted_client_id,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, inq)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update inquiry").
			Mark(ierr.ErrDatabase)
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ierr.NewError("inquiry not found").
			WithHint("Inquiry not found").
			WithReportableDetails(map[string]any{"id": inq.ID}).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *inquiryRepository) List(ctx context.Context, status types.InquiryStatus) ([]*inquiry.Inquiry, error) {
	inquiries := []*inquiry.Inquiry{}

	if status == "" {
		query := `SELECT * FROM inquiries WHERE status != 'deleted' ORDER BY created_at DESC`
		if err := r.db.GetQuerier(ctx).SelectContext(ctx, &inquiries, query); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to list inquiries").
				Mark(ierr.ErrDatabase)
		}
		return inquiries, nil
	}

	query := `SELECT * FROM inquiries WHERE inquiry_status = $1 AND status != 'deleted' ORDER BY created_at DESC`
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &inquiries, query, string(status)); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list inquiries").
			Mark(ierr.ErrDatabase)
	}

	return inquiries, nil
}
