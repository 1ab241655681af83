package clients

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/inkwell-books/orders-service/internal/config"
)

// MessageSender delivers short messages over a WhatsApp-style channel.
type MessageSender interface {
	SendMessage(ctx context.Context, to, body string) error
}

// HTTPMessagingClient talks to the messaging provider's REST API using the
// account SID and auth token as basic-auth credentials, form-encoded requests
// in the provider's convention.
type HTTPMessagingClient struct {
	baseURL    string
	accountSID string
	authToken  string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ MessageSender = (*HTTPMessagingClient)(nil)

func NewHTTPMessagingClient(cfg config.MessagingConfig, logger *slog.Logger) *HTTPMessagingClient {
	return &HTTPMessagingClient{
		baseURL:    cfg.BaseURL,
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// SendMessage posts one outbound message.
func (c *HTTPMessagingClient) SendMessage(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to send message", "to", to, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("messaging service returned status %d", resp.StatusCode)
	}

	c.logger.Info("message sent", "to", to)
	return nil
}

// MockMessagingClient records messages for tests.
type MockMessagingClient struct {
	Sent []string
	Err  error
}

func NewMockMessagingClient() *MockMessagingClient {
	return &MockMessagingClient{Sent: make([]string, 0)}
}

func (m *MockMessagingClient) SendMessage(ctx context.Context, to, body string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, body)
	return nil
}
