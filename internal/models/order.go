package models

import "time"

const (
	// PaymentCOD is the only payment method handled by the intake flow.
	PaymentCOD = "COD"

	// OrderStatusPending is the initial status of every accepted order.
	OrderStatusPending = "Pending"

	// DefaultPrice is applied when the caller does not supply a price.
	DefaultPrice = 299
)

// Order is a single customer purchase record. Orders are never mutated or
// deleted after creation; the repository owns their lifetime.
type Order struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address"`
	Book      string    `json:"book"`
	Payment   string    `json:"payment"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// CODOrderRequest is the wire shape of POST /order-cod. Price is a pointer so
// a non-numeric value fails the decode instead of silently becoming zero.
type CODOrderRequest struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Book    string   `json:"book"`
	Price   *float64 `json:"price"`
}

// CODOrderResponse acknowledges an accepted order.
type CODOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
