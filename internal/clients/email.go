package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/inkwell-books/orders-service/internal/config"
)

// EmailSender delivers transactional email.
type EmailSender interface {
	SendEmail(ctx context.Context, msg *EmailMessage) error
}

// EmailMessage is one transactional email.
type EmailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// HTTPEmailClient sends email through the transactional-email provider's HTTP
// API, authenticated with the sender's credential.
type HTTPEmailClient struct {
	baseURL    string
	sender     string
	password   string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ EmailSender = (*HTTPEmailClient)(nil)

func NewHTTPEmailClient(cfg config.EmailConfig, logger *slog.Logger) *HTTPEmailClient {
	return &HTTPEmailClient{
		baseURL:  cfg.BaseURL,
		sender:   cfg.Sender,
		password: cfg.Password,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Sender returns the configured sender address.
func (c *HTTPEmailClient) Sender() string {
	return c.sender
}

// SendEmail posts one message to the provider.
func (c *HTTPEmailClient) SendEmail(ctx context.Context, msg *EmailMessage) error {
	if msg.From == "" {
		msg.From = c.sender
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1/mail/send", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to send email", "to", msg.To, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("email service returned status %d", resp.StatusCode)
	}

	c.logger.Info("email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (c *HTTPEmailClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.sender, c.password)
}

// MockEmailClient records messages for tests.
type MockEmailClient struct {
	Messages []*EmailMessage
	Err      error
}

func NewMockEmailClient() *MockEmailClient {
	return &MockEmailClient{Messages: make([]*EmailMessage, 0)}
}

func (m *MockEmailClient) SendEmail(ctx context.Context, msg *EmailMessage) error {
	if m.Err != nil {
		return m.Err
	}
	m.Messages = append(m.Messages, msg)
	return nil
}
