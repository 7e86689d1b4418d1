package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/veloralabs/agencydesk/internal/payment"
)

// MockPaymentGateway records payment link requests and returns
// deterministic links
type MockPaymentGateway struct {
	mu       sync.Mutex
	requests []payment.PaymentLinkRequest

	// Err, when set, is returned by CreatePaymentLink
	Err error
}

// NewMockPaymentGateway creates a new mock payment gateway
func NewMockPaymentGateway() *MockPaymentGateway {
	return &MockPaymentGateway{}
}

func (m *MockPaymentGateway) CreatePaymentLink(ctx context.Context, req *payment.PaymentLinkRequest) (*payment.PaymentLink, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	m.requests = append(m.requests, *req)
	return &payment.PaymentLink{
		ID:  fmt.Sprintf("cs_test_%d", len(m.requests)),
		URL: fmt.Sprintf("https://checkout.test/session/%d", len(m.requests)),
	}, nil
}

// Requests returns all recorded payment link requests
func (m *MockPaymentGateway) Requests() []payment.PaymentLinkRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]payment.PaymentLinkRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// Clear removes all recorded requests
func (m *MockPaymentGateway) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = nil
	m.Err = nil
}
