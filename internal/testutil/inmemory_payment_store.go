package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/veloralabs/agencydesk/internal/domain/payment"
)

// InMemoryPaymentStore implements payment.Repository
type InMemoryPaymentStore struct {
	*InMemoryStore[*payment.Payment]
}

// NewInMemoryPaymentStore creates a new in-memory payment store
func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore: NewInMemoryStore[*payment.Payment](),
	}
}

func copyPayment(p *payment.Payment) *payment.Payment {
	if p == nil {
		return nil
	}
	cp := *p
	if p.GatewayPaymentID != nil {
		cp.GatewayPaymentID = lo.ToPtr(*p.GatewayPaymentID)
	}
	if p.ReferenceNumber != nil {
		cp.ReferenceNumber = lo.ToPtr(*p.ReferenceNumber)
	}
	if p.SucceededAt != nil {
		cp.SucceededAt = lo.ToPtr(*p.SucceededAt)
	}
	return &cp
}

func (s *InMemoryPaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	return s.InMemoryStore.Create(ctx, p.ID, copyPayment(p))
}

func (s *InMemoryPaymentStore) Get(ctx context.Context, id string) (*payment.Payment, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyPayment(p), nil
}

func (s *InMemoryPaymentStore) ListByInvoice(ctx context.Context, invoiceID string) ([]*payment.Payment, error) {
	filterFn := func(_ context.Context, p *payment.Payment, _ interface{}) bool {
		return p.InvoiceID == invoiceID
	}
	sortFn := func(a, b *payment.Payment) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}

	items, err := s.InMemoryStore.List(ctx, nil, filterFn, sortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(p *payment.Payment, _ int) *payment.Payment {
		return copyPayment(p)
	}), nil
}
