package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/veloralabs/agencydesk/internal/domain/client"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/types"
)

// InMemoryClientStore implements client.Repository
type InMemoryClientStore struct {
	*InMemoryStore[*client.Client]
}

// NewInMemoryClientStore creates a new in-memory client store
func NewInMemoryClientStore() *InMemoryClientStore {
	return &InMemoryClientStore{
		InMemoryStore: NewInMemoryStore[*client.Client](),
	}
}

func copyClient(c *client.Client) *client.Client {
	if c == nil {
		return nil
	}
	cp := *c
	if c.InquiryID != nil {
		cp.InquiryID = lo.ToPtr(*c.InquiryID)
	}
	if c.Metadata != nil {
		cp.Metadata = lo.Assign(types.Metadata{}, c.Metadata)
	}
	return &cp
}

func (s *InMemoryClientStore) Create(ctx context.Context, c *client.Client) error {
	// mirror the unique constraint on the generated identifier
	existing, _ := s.InMemoryStore.List(ctx, nil, func(_ context.Context, item *client.Client, _ interface{}) bool {
		return item.ClientID == c.ClientID
	}, nil)
	if len(existing) > 0 {
		return ierr.NewError("client identifier already exists").
			WithHint("A client with this identifier already exists").
			Mark(ierr.ErrAlreadyExists)
	}

	return s.InMemoryStore.Create(ctx, c.ID, copyClient(c))
}

func (s *InMemoryClientStore) Get(ctx context.Context, id string) (*client.Client, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyClient(c), nil
}

func (s *InMemoryClientStore) GetByClientID(ctx context.Context, clientID string) (*client.Client, error) {
	clients, err := s.InMemoryStore.List(ctx, nil, func(_ context.Context, c *client.Client, _ interface{}) bool {
		return c.ClientID == clientID
	}, nil)
	if err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, ierr.NewError("client not found").
			WithHint("No client exists with this identifier").
			Mark(ierr.ErrNotFound)
	}
	return copyClient(clients[0]), nil
}

func (s *InMemoryClientStore) Update(ctx context.Context, c *client.Client) error {
	return s.InMemoryStore.Update(ctx, c.ID, copyClient(c))
}

func (s *InMemoryClientStore) List(ctx context.Context) ([]*client.Client, error) {
	sortFn := func(a, b *client.Client) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}

	items, err := s.InMemoryStore.List(ctx, nil, nil, sortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(c *client.Client, _ int) *client.Client {
		return copyClient(c)
	}), nil
}
