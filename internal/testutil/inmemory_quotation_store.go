package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/veloralabs/agencydesk/internal/domain/quotation"
	"github.com/veloralabs/agencydesk/internal/types"
)

// InMemoryQuotationStore implements quotation.Repository
type InMemoryQuotationStore struct {
	*InMemoryStore[*quotation.Quotation]
}

// NewInMemoryQuotationStore creates a new in-memory quotation store
func NewInMemoryQuotationStore() *InMemoryQuotationStore {
	return &InMemoryQuotationStore{
		InMemoryStore: NewInMemoryStore[*quotation.Quotation](),
	}
}

func copyQuotation(q *quotation.Quotation) *quotation.Quotation {
	if q == nil {
		return nil
	}
	cp := *q
	if q.ValidUntil != nil {
		cp.ValidUntil = lo.ToPtr(*q.ValidUntil)
	}
	if q.SentAt != nil {
		cp.SentAt = lo.ToPtr(*q.SentAt)
	}
	cp.LineItems = append(types.LineItems{}, q.LineItems...)
	return &cp
}

func (s *InMemoryQuotationStore) Create(ctx context.Context, q *quotation.Quotation) error {
	return s.InMemoryStore.Create(ctx, q.ID, copyQuotation(q))
}

func (s *InMemoryQuotationStore) Get(ctx context.Context, id string) (*quotation.Quotation, error) {
	q, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyQuotation(q), nil
}

func (s *InMemoryQuotationStore) Update(ctx context.Context, q *quotation.Quotation) error {
	return s.InMemoryStore.Update(ctx, q.ID, copyQuotation(q))
}

func (s *InMemoryQuotationStore) ListByClient(ctx context.Context, clientID string) ([]*quotation.Quotation, error) {
	filterFn := func(_ context.Context, q *quotation.Quotation, _ interface{}) bool {
		return clientID == "" || q.ClientID == clientID
	}
	sortFn := func(a, b *quotation.Quotation) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}

	items, err := s.InMemoryStore.List(ctx, nil, filterFn, sortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(q *quotation.Quotation, _ int) *quotation.Quotation {
		return copyQuotation(q)
	}), nil
}
