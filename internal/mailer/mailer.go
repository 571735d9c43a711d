// Package mailer sends transactional email through the Brevo API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured is returned by Send when no API key is set.
var ErrNotConfigured = errors.New("mailer: api key not configured")

// Address is a sender or recipient.
type Address struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// Attachment is a base64-encoded file.
type Attachment struct {
	Content string `json:"content"`
	Name    string `json:"name"`
}

// Message is a single outgoing email.
type Message struct {
	To          []Address
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Sender delivers a message and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Config configures a BrevoClient.
type Config struct {
	APIKey      string
	BaseURL     string
	SenderName  string
	SenderEmail string
	Timeout     time.Duration
}

// BrevoClient sends email with Brevo's transactional API.
type BrevoClient struct {
	apiKey     string
	baseURL    string // overridable for tests
	sender     Address
	httpClient *http.Client
}

// NewBrevoClient creates a Brevo client.
func NewBrevoClient(cfg Config) *BrevoClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.brevo.com/v3"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &BrevoClient{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		sender:     Address{Name: cfg.SenderName, Email: cfg.SenderEmail},
		httpClient: &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	Sender      Address      `json:"sender"`
	To          []Address    `json:"to"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"htmlContent"`
	Attachment  []Attachment `json:"attachment,omitempty"`
}

// Send posts msg to /smtp/email.
func (c *BrevoClient) Send(ctx context.Context, msg Message) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}
	if len(msg.To) == 0 {
		return "", fmt.Errorf("sending email: no recipients")
	}

	jsonBody, err := json.Marshal(sendRequest{
		Sender:      c.sender,
		To:          msg.To,
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
		Attachment:  msg.Attachments,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/smtp/email", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending email: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message != "" {
			return "", fmt.Errorf("sending email: unexpected status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("sending email: unexpected status %d", resp.StatusCode)
	}

	var result struct {
		MessageID string `json:"messageId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding email response: %w", err)
	}
	return result.MessageID, nil
}
