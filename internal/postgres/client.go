package postgres

import (
	"context"
)

// IClient is the database surface the service layer depends on.
// *DB implements it for production; tests substitute a no-op client
// together with in-memory repositories.
type IClient interface {
	// WithTx wraps the given function in a transaction
	WithTx(ctx context.Context, fn func(context.Context) error) error

	// GetQuerier returns the current transaction querier if in a
	// transaction, or the base connection
	GetQuerier(ctx context.Context) Querier
}

var _ IClient = (*DB)(nil)
