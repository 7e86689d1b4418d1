package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/veloralabs/agencydesk/internal/domain/inquiry"
	"github.com/veloralabs/agencydesk/internal/types"
)

// InMemoryInquiryStore implements inquiry.Repository
type InMemoryInquiryStore struct {
	*InMemoryStore[*inquiry.Inquiry]
}

// NewInMemoryInquiryStore creates a new in-memory inquiry store
func NewInMemoryInquiryStore() *InMemoryInquiryStore {
	return &InMemoryInquiryStore{
		InMemoryStore: NewInMemoryStore[*inquiry.Inquiry](),
	}
}

func copyInquiry(i *inquiry.Inquiry) *inquiry.Inquiry {
	if i == nil {
		return nil
	}
	c := *i
	if i.ConvertedClientID != nil {
		c.ConvertedClientID = lo.ToPtr(*i.ConvertedClientID)
	}
	return &c
}

func (s *InMemoryInquiryStore) Create(ctx context.Context, i *inquiry.Inquiry) error {
	return s.InMemoryStore.Create(ctx, i.ID, copyInquiry(i))
}

func (s *InMemoryInquiryStore) Get(ctx context.Context, id string) (*inquiry.Inquiry, error) {
	i, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyInquiry(i), nil
}

func (s *InMemoryInquiryStore) Update(ctx context.Context, i *inquiry.Inquiry) error {
	return s.InMemoryStore.Update(ctx, i.ID, copyInquiry(i))
}

func (s *InMemoryInquiryStore) List(ctx context.Context, status types.InquiryStatus) ([]*inquiry.Inquiry, error) {
	filterFn := func(_ context.Context, i *inquiry.Inquiry, _ interface{}) bool {
		return status == "" || i.InquiryStatus == status
	}
	sortFn := func(a, b *inquiry.Inquiry) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}

	items, err := s.InMemoryStore.List(ctx, nil, filterFn, sortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(i *inquiry.Inquiry, _ int) *inquiry.Inquiry {
		return copyInquiry(i)
	}), nil
}
