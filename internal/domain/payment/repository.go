package payment

import (
	"context"
)

// Repository defines the interface for payment persistence operations
type Repository interface {
	// Create creates a new payment record
	Create(ctx context.Context, payment *Payment) error

	// Get retrieves a payment by ID
	Get(ctx context.Context, id string) (*Payment, error)

	// ListByInvoice retrieves payments recorded against an invoice
	ListByInvoice(ctx context.Context, invoiceID string) ([]*Payment, error)
}
