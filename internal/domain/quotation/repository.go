package quotation

import (
	"context"
)

// Repository defines the interface for quotation persistence operations
type Repository interface {
	// Create creates a new quotation
	Create(ctx context.Context, quotation *Quotation) error

	// Get retrieves a quotation by internal ID
	Get(ctx context.Context, id string) (*Quotation, error)

	// Update updates an existing quotation
	Update(ctx context.Context, quotation *Quotation) error

	// ListByClient retrieves quotations for a client; empty clientID lists all
	ListByClient(ctx context.Context, clientID string) ([]*Quotation, error)
}
