package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/veloralabs/agencydesk/internal/domain/client"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/postgres"
)

const clientIDUniqueConstraint = "clients_client_id_key"

type clientRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewClientRepository(db *postgres.DB, logger *logger.Logger) client.Repository {
	return &clientRepository{db: db, logger: logger}
}

func (r *clientRepository) Create(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (
			id, client_id, sequence_number, project_code, platform_code, country_code,
			name, email, phone, company, inquiry_id, metadata,
			status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :client_id, :sequence_number, :project_code, :platform_code, :country_code,
			:name, :email, :phone, :company, :inquiry_id, :metadata,
			:status, :created_at, :updated_at, :created_by, :updated_by
		)`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Constraint == clientIDUniqueConstraint {
			return ierr.WithError(err).
				WithHint("A client with this identifier already exists").
				WithReportableDetails(map[string]any{"client_id": c.ClientID}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create client").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *clientRepository) Get(ctx context.Context, id string) (*client.Client, error) {
	var c client.Client
	query := `SELECT * FROM clients WHERE id = $1 AND status != 'deleted'`

	if err := r.db.GetQuerier(ctx).GetContext(ctx, &c, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("client not found").
				WithHint("Client not found").
				WithReportableDetails(map[string]any{"id": id}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get client").
			Mark(ierr.ErrDatabase)
	}

	return &c, nil
}

func (r *clientRepository) GetByClientID(ctx context.Context, clientID string) (*client.Client, error) {
	var c client.Client
	query := `SELECT * FROM clients WHERE client_id = $1 AND status != 'deleted'`

	if err := r.db.GetQuerier(ctx).GetContext(ctx, &c, query, clientID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("client not found").
				WithHint("Client not found").
				WithReportableDetails(map[string]any{"client_id": clientID}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get client").
			Mark(ierr.ErrDatabase)
	}

	return &c, nil
}

func (r *clientRepository) Update(ctx context.Context, c *client.Client) error {
	// client_id is immutable once assigned and is deliberately absent
	// from the update list
	query := `
		UPDATE clients SET
			name = :name,
			email = :email,
			phone = :phone,
			company = :company,
			metadata = :metadata,
			status = :status,
			updated_at = :updated_at,
			updated_by = :updated_by
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update client").
			Mark(ierr.ErrDatabase)
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ierr.NewError("client not found").
			WithHint("Client not found").
			WithReportableDetails(map[string]any{"id": c.ID}).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *clientRepository) List(ctx context.Context) ([]*client.Client, error) {
	clients := []*client.Client{}
	query := `SELECT * FROM clients WHERE status != 'deleted' ORDER BY created_at DESC`

	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &clients, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list clients").
			Mark(ierr.ErrDatabase)
	}

	return clients, nil
}
