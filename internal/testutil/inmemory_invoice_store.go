package testutil

import (
	"context"

	"github.com/samber/lo"
	"github.com/veloralabs/agencydesk/internal/domain/invoice"
	ierr "github.com/veloralabs/agencydesk/internal/errors"
	"github.com/veloralabs/agencydesk/internal/types"
)

// InMemoryInvoiceStore implements invoice.Repository
type InMemoryInvoiceStore struct {
	*InMemoryStore[*invoice.Invoice]
}

// NewInMemoryInvoiceStore creates a new in-memory invoice store
func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		InMemoryStore: NewInMemoryStore[*invoice.Invoice](),
	}
}

func copyInvoice(i *invoice.Invoice) *invoice.Invoice {
	if i == nil {
		return nil
	}
	cp := *i
	if i.QuotationID != nil {
		cp.QuotationID = lo.ToPtr(*i.QuotationID)
	}
	if i.DueDate != nil {
		cp.DueDate = lo.ToPtr(*i.DueDate)
	}
	if i.PaymentLinkURL != nil {
		cp.PaymentLinkURL = lo.ToPtr(*i.PaymentLinkURL)
	}
	if i.FinalizedAt != nil {
		cp.FinalizedAt = lo.ToPtr(*i.FinalizedAt)
	}
	if i.PaidAt != nil {
		cp.PaidAt = lo.ToPtr(*i.PaidAt)
	}
	cp.LineItems = append(types.LineItems{}, i.LineItems...)
	return &cp
}

func (s *InMemoryInvoiceStore) Create(ctx context.Context, i *invoice.Invoice) error {
	return s.InMemoryStore.Create(ctx, i.ID, copyInvoice(i))
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	i, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyInvoice(i), nil
}

func (s *InMemoryInvoiceStore) GetByInvoiceID(ctx context.Context, invoiceID string) (*invoice.Invoice, error) {
	invoices, err := s.InMemoryStore.List(ctx, nil, func(_ context.Context, i *invoice.Invoice, _ interface{}) bool {
		return i.InvoiceID == invoiceID
	}, nil)
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, ierr.NewError("invoice not found").
			WithHint("No invoice exists with this identifier").
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(invoices[0]), nil
}

func (s *InMemoryInvoiceStore) Update(ctx context.Context, i *invoice.Invoice) error {
	return s.InMemoryStore.Update(ctx, i.ID, copyInvoice(i))
}

func (s *InMemoryInvoiceStore) ListByClient(ctx context.Context, clientID string) ([]*invoice.Invoice, error) {
	filterFn := func(_ context.Context, i *invoice.Invoice, _ interface{}) bool {
		return clientID == "" || i.ClientID == clientID
	}
	sortFn := func(a, b *invoice.Invoice) bool {
		return a.CreatedAt.After(b.CreatedAt)
	}

	items, err := s.InMemoryStore.List(ctx, nil, filterFn, sortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(i *invoice.Invoice, _ int) *invoice.Invoice {
		return copyInvoice(i)
	}), nil
}
