package inquiry

import (
	"context"

	"github.com/veloralabs/agencydesk/internal/types"
)

// Repository defines the interface for inquiry persistence operations
type Repository interface {
	// Create creates a new inquiry
	Create(ctx context.Context, inquiry *Inquiry) error

	// Get retrieves an inquiry by ID
	Get(ctx context.Context, id string) (*Inquiry, error)

	// Update updates an existing inquiry
	Update(ctx context.Context, inquiry *Inquiry) error

	// List retrieves inquiries filtered by status; empty status lists all
	List(ctx context.Context, status types.InquiryStatus) ([]*Inquiry, error)
}
