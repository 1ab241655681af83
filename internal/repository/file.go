package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"

	apperrors "github.com/inkwell-books/orders-service/internal/errors"
	"github.com/inkwell-books/orders-service/internal/models"
)

// FileOrderRepository persists orders as a single pretty-printed JSON array
// file. Every append rewrites the whole snapshot; the mutex serializes the
// read-modify-write cycle so concurrent submissions cannot lose an order.
type FileOrderRepository struct {
	path   string
	mu     sync.Mutex
	logger *slog.Logger
}

var _ OrderRepository = (*FileOrderRepository)(nil)

func NewFileOrderRepository(path string, logger *slog.Logger) *FileOrderRepository {
	return &FileOrderRepository{
		path:   path,
		logger: logger,
	}
}

// List returns all persisted orders in insertion order. A missing file is
// treated as an empty store.
func (r *FileOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// Append reads the current snapshot, adds the order, and rewrites the file.
func (r *FileOrderRepository) Append(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load()
	if err != nil {
		return err
	}

	orders = append(orders, order)

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return apperrors.NewPersistenceError("encode", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		r.logger.Error("failed to write orders file",
			"path", r.path,
			"error", err,
		)
		return apperrors.NewPersistenceError("write", err)
	}

	r.logger.Debug("order appended",
		"order_id", order.ID,
		"count", len(orders),
	)
	return nil
}

func (r *FileOrderRepository) load() ([]models.Order, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, apperrors.NewPersistenceError("read", err)
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, apperrors.NewPersistenceError("decode", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}

	return orders, nil
}
