package repository

import (
	"context"

	"github.com/inkwell-books/orders-service/internal/models"
)

// OrderRepository is the durable order store. Orders are append-only; there is
// no update or delete surface.
type OrderRepository interface {
	// List returns every persisted order in insertion order. A missing
	// backing file means no orders yet, not an error.
	List(ctx context.Context) ([]models.Order, error)

	// Append durably adds one order to the persisted set.
	Append(ctx context.Context, order models.Order) error
}

// OrderCache caches the full order listing.
type OrderCache interface {
	Get(ctx context.Context) ([]models.Order, error)
	Set(ctx context.Context, orders []models.Order) error
	Invalidate(ctx context.Context) error
}
