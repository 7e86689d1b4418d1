package invoice

import (
	"context"
)

// Repository defines the interface for invoice persistence operations
type Repository interface {
	// Create creates a new invoice
	Create(ctx context.Context, invoice *Invoice) error

	// Get retrieves an invoice by internal ID
	Get(ctx context.Context, id string) (*Invoice, error)

	// GetByInvoiceID retrieves an invoice by its generated identifier
	GetByInvoiceID(ctx context.Context, invoiceID string) (*Invoice, error)

	// Update updates an existing invoice
	Update(ctx context.Context, invoice *Invoice) error

	// ListByClient retrieves invoices for a client; empty clientID lists all
	ListByClient(ctx context.Context, clientID string) ([]*Invoice, error)
}
