package testutil

import (
	"context"
	"sync"

	"github.com/veloralabs/agencydesk/internal/email"
)

// MockEmailSender records sent emails for assertions
type MockEmailSender struct {
	mu   sync.Mutex
	sent []email.SendEmailRequest
}

// NewMockEmailSender creates a new mock email sender
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

func (m *MockEmailSender) SendEmail(ctx context.Context, req email.SendEmailRequest) (*email.SendEmailResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, req)
	return &email.SendEmailResponse{
		MessageID: "test-message",
		Success:   true,
	}, nil
}

// Sent returns all recorded emails
func (m *MockEmailSender) Sent() []email.SendEmailRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]email.SendEmailRequest, len(m.sent))
	copy(out, m.sent)
	return out
}

// Clear removes all recorded emails
func (m *MockEmailSender) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
}
