package client

import (
	"context"
)

// Repository defines the interface for client persistence operations
type Repository interface {
	// Create creates a new client
	Create(ctx context.Context, client *Client) error

	// Get retrieves a client by internal ID
	Get(ctx context.Context, id string) (*Client, error)

	// GetByClientID retrieves a client by its generated identifier
	GetByClientID(ctx context.Context, clientID string) (*Client, error)

	// Update updates an existing client
	Update(ctx context.Context, client *Client) error

	// List retrieves all clients
	List(ctx context.Context) ([]*Client, error)
}
