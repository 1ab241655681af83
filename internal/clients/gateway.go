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

// HTTPGatewayClient is the payment-gateway client. It is constructed at
// startup with the storefront's key pair but the COD flow never charges
// through it; CreatePaymentOrder exists for the online-payment path.
type HTTPGatewayClient struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTPGatewayClient(cfg config.GatewayConfig, logger *slog.Logger) *HTTPGatewayClient {
	return &HTTPGatewayClient{
		baseURL:   cfg.BaseURL,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// GatewayOrder is the gateway's order resource.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreatePaymentOrder registers an order with the gateway. Amount is in the
// currency's smallest unit.
func (c *HTTPGatewayClient) CreatePaymentOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error) {
	payload := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/orders", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("gateway order creation failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var order GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}

	c.logger.Info("gateway order created", "gateway_order_id", order.ID)
	return &order, nil
}
