package postgres

import (
	"context"

	"github.com/veloralabs/agencydesk/internal/domain/sequence"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/logger"
	"github.com/veloralabs/agencydesk/internal/postgres"
)

type sequenceStore struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSequenceStore(db *postgres.DB, logger *logger.Logger) sequence.Store {
	return &sequenceStore{db: db, logger: logger}
}

// Next performs the read-increment-write as one server-side statement.
// The upsert creates the series at 1 on first allocation; afterwards the
// increment and the returned value come from the same row lock, so two
// concurrent callers can never both observe the same current value.
func (r *sequenceStore) Next(ctx context.Context, key sequence.Key) (int64, error) {
	if err := key.Type.Validate(); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO sequence_counters (sequence_type, scope_key, fiscal_year, current_value, created_at, updated_at)
		VALUES ($1, $2, $3, 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (sequence_type, scope_key, fiscal_year) DO UPDATE
		SET current_value = sequence_counters.current_value + 1,
			updated_at = CURRENT_TIMESTAMP
		RETURNING current_value`

	var currentValue int64
	rows, err := r.db.GetQuerier(ctx).QueryContext(ctx, query, string(key.Type), key.ScopeKey, key.FiscalYear)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("sequence allocation failed").
			WithReportableDetails(map[string]any{
				"sequence_type": string(key.Type),
				"scope_key":     key.ScopeKey,
				"fiscal_year":   key.FiscalYear,
			}).
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return 0, ierr.NewError("no sequence value returned").
			WithHint("sequence allocation failed").
			Mark(ierr.ErrDatabase)
	}

	if err := rows.Scan(&currentValue); err != nil {
		return 0, ierr.WithError(err).
			WithHint("sequence allocation failed").
			Mark(ierr.ErrDatabase)
	}

	r.logger.Debugw("allocated sequence value",
		"sequence_type", string(key.Type),
		"scope_key", key.ScopeKey,
		"fiscal_year", key.FiscalYear,
		"value", currentValue)

	return currentValue, nil
}
