package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/veloralabs/agencydesk/internal/config"
	"github.com/veloralabs/agencydesk/internal/httpclient"
)

// Client wraps the email provider's HTTP API. When disabled (no API key
// configured) sends are skipped, which keeps local development and tests
// from reaching the provider.
type Client struct {
	http        httpclient.Client
	enabled     bool
	baseURL     string
	apiKey      string
	fromAddress string
	replyTo     string
}

// NewClient creates a new email provider client
func NewClient(cfg *config.Configuration, http httpclient.Client) *Client {
	if !cfg.Email.Enabled || cfg.Email.APIKey == "" {
		return &Client{enabled: false}
	}

	return &Client{
		http:        http,
		enabled:     true,
		baseURL:     cfg.Email.BaseURL,
		apiKey:      cfg.Email.APIKey,
		fromAddress: cfg.Email.FromAddress,
		replyTo:     cfg.Email.ReplyTo,
	}
}

// IsEnabled returns whether the email client is enabled
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// GetFromAddress returns the default from address
func (c *Client) GetFromAddress() string {
	return c.fromAddress
}

type providerSendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type providerSendResponse struct {
	ID string `json:"id"`
}

// SendEmail sends a plain text or HTML email through the provider
func (c *Client) SendEmail(ctx context.Context, from, to, subject, htmlContent, textContent string) (string, error) {
	if !c.enabled {
		return "", fmt.Errorf("email client is disabled")
	}

	payload, err := json.Marshal(providerSendRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlContent,
		Text:    textContent,
		ReplyTo: c.replyTo,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode email request: %w", err)
	}

	resp, err := c.http.Send(ctx, &httpclient.Request{
		Method: http.MethodPost,
		URL:    c.baseURL + "/emails",
		Headers: map[string]string{
			"Authorization": "Bearer " + c.apiKey,
		},
		Body: payload,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	var sent providerSendResponse
	if err := json.Unmarshal(resp.Body, &sent); err != nil {
		return "", fmt.Errorf("failed to decode email response: %w", err)
	}

	return sent.ID, nil
}
