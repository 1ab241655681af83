package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-books/orders-service/internal/clients"
	"github.com/inkwell-books/orders-service/internal/config"
	"github.com/inkwell-books/orders-service/internal/models"
	"github.com/inkwell-books/orders-service/internal/notify"
	"github.com/inkwell-books/orders-service/internal/repository"
	"github.com/inkwell-books/orders-service/internal/service"
)

func newTestRouter(t *testing.T, ordersFile string) (*gin.Engine, *clients.MockEmailClient) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := config.Load()

	repo := repository.NewFileOrderRepository(ordersFile, logger)
	email := clients.NewMockEmailClient()
	dispatcher := notify.NewDispatcher(email, nil, "seller@example.com", "", 16, logger)
	t.Cleanup(dispatcher.Close)

	svc := service.NewOrderService(repo, nil, dispatcher, nil, nil, cfg, logger)
	h := NewHandlers(svc, cfg, logger)

	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.POST("/order-cod", h.SubmitCODOrder)
	r.GET("/orders", h.ListOrders)

	return r, email
}

func postOrder(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/order-cod", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func getOrders(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))
	return w
}

func TestSubmitCODOrder_MinimalPayload(t *testing.T) {
	r, _ := newTestRouter(t, filepath.Join(t.TempDir(), "orders.json"))

	w := postOrder(r, `{"name":"A","phone":"123","address":"X","book":"Y"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.CODOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if !resp.Success {
		t.Error("Expected success true")
	}
	if resp.Message != "Order placed!" {
		t.Errorf("Expected message 'Order placed!', got %q", resp.Message)
	}
	if resp.OrderID == 0 {
		t.Error("Expected non-zero orderId")
	}

	lw := getOrders(r)
	if lw.Code != http.StatusOK {
		t.Fatalf("Expected status 200 from /orders, got %d", lw.Code)
	}

	var orders []models.Order
	if err := json.Unmarshal(lw.Body.Bytes(), &orders); err != nil {
		t.Fatalf("Failed to parse orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("Expected 1 order, got %d", len(orders))
	}
	if orders[0].ID != resp.OrderID {
		t.Errorf("Expected stored id %d, got %d", resp.OrderID, orders[0].ID)
	}
	if orders[0].Price != 299 {
		t.Errorf("Expected defaulted price 299, got %v", orders[0].Price)
	}
	if orders[0].Payment != "COD" {
		t.Errorf("Expected payment COD, got %q", orders[0].Payment)
	}
	if orders[0].Status != "Pending" {
		t.Errorf("Expected status Pending, got %q", orders[0].Status)
	}

	// email was absent, so the persisted record must not carry the key.
	if bytes.Contains(lw.Body.Bytes(), []byte(`"email"`)) {
		t.Error("Expected email to be omitted from the persisted order")
	}
}

func TestSubmitCODOrder_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no name", `{"phone":"123","address":"X","book":"Y"}`},
		{"no phone", `{"name":"A","address":"X","book":"Y"}`},
		{"no address", `{"name":"A","phone":"123","book":"Y"}`},
		{"no book", `{"name":"A","phone":"123","address":"X"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRouter(t, filepath.Join(t.TempDir(), "orders.json"))

			w := postOrder(r, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", w.Code)
			}

			var resp models.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if resp.Success {
				t.Error("Expected success false")
			}
			if resp.Message != "Missing fields" {
				t.Errorf("Expected message 'Missing fields', got %q", resp.Message)
			}

			lw := getOrders(r)
			if body := strings.TrimSpace(lw.Body.String()); body != "[]" {
				t.Errorf("Expected no persisted orders, got %s", body)
			}
		})
	}
}

func TestSubmitCODOrder_MalformedBody(t *testing.T) {
	r, _ := newTestRouter(t, filepath.Join(t.TempDir(), "orders.json"))

	w := postOrder(r, `{"name":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
}

func TestSubmitCODOrder_NonNumericPrice(t *testing.T) {
	r, _ := newTestRouter(t, filepath.Join(t.TempDir(), "orders.json"))

	// price must be numeric; a string fails the decode closed.
	w := postOrder(r, `{"name":"A","phone":"123","address":"X","book":"Y","price":"cheap"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}

	lw := getOrders(r)
	if body := strings.TrimSpace(lw.Body.String()); body != "[]" {
		t.Errorf("Expected no persisted orders, got %s", body)
	}
}

func TestSubmitCODOrder_PersistenceFailure(t *testing.T) {
	// Parent directory does not exist, so the snapshot write fails.
	r, email := newTestRouter(t, filepath.Join(t.TempDir(), "missing", "orders.json"))

	w := postOrder(r, `{"name":"A","phone":"123","address":"X","book":"Y"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Message != "Server error" {
		t.Errorf("Expected message 'Server error', got %q", resp.Message)
	}

	if len(email.Messages) != 0 {
		t.Errorf("Expected no notifications for unrecorded order, got %d", len(email.Messages))
	}
}

func TestListOrders_EmptyStore(t *testing.T) {
	r, _ := newTestRouter(t, filepath.Join(t.TempDir(), "orders.json"))

	w := getOrders(r)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("Expected empty JSON array, got %s", body)
	}
}

func TestListOrders_Idempotent(t *testing.T) {
	r, _ := newTestRouter(t, filepath.Join(t.TempDir(), "orders.json"))

	postOrder(r, `{"name":"A","phone":"123","address":"X","book":"Y","email":"a@example.com"}`)

	first := getOrders(r)
	second := getOrders(r)
	if first.Body.String() != second.Body.String() {
		t.Error("Expected identical listings with no intervening submission")
	}
}

func TestRoot(t *testing.T) {
	r, _ := newTestRouter(t, filepath.Join(t.TempDir(), "orders.json"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "Server is running" {
		t.Errorf("Expected liveness string, got %q", w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t, filepath.Join(t.TempDir(), "orders.json"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", resp["status"])
	}
}
