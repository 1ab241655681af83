package repository

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/inkwell-books/orders-service/internal/errors"
	"github.com/inkwell-books/orders-service/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testOrder(id int64) models.Order {
	return models.Order{
		ID:        id,
		Name:      "Asha",
		Phone:     "9876543210",
		Email:     "asha@example.com",
		Address:   "12 Lake Road",
		Book:      "The River Between",
		Payment:   models.PaymentCOD,
		Price:     299,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestFileOrderRepository_ListMissingFile(t *testing.T) {
	repo := NewFileOrderRepository(filepath.Join(t.TempDir(), "orders.json"), testLogger())

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NotNil(t, orders)
}

func TestFileOrderRepository_AppendAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	repo := NewFileOrderRepository(path, testLogger())
	ctx := context.Background()

	first := testOrder(1700000000001)
	second := testOrder(1700000000002)
	second.Name = "Ravi"
	second.Email = ""

	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Insertion order is preserved.
	assert.Equal(t, first, orders[0])
	assert.Equal(t, second, orders[1])
}

func TestFileOrderRepository_RoundTripAfterReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	ctx := context.Background()

	order := testOrder(1700000000003)
	require.NoError(t, NewFileOrderRepository(path, testLogger()).Append(ctx, order))

	// A fresh repository over the same file simulates a process restart.
	reloaded, err := NewFileOrderRepository(path, testLogger()).List(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, order, reloaded[0])
}

func TestFileOrderRepository_ListIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	repo := NewFileOrderRepository(path, testLogger())
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testOrder(1700000000004)))

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFileOrderRepository_PersistedFileIsReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	repo := NewFileOrderRepository(path, testLogger())

	require.NoError(t, repo.Append(context.Background(), testOrder(1700000000005)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// Pretty-printed array, inspectable by hand.
	assert.Contains(t, string(data), "[\n  {\n")
	assert.Contains(t, string(data), `"payment": "COD"`)
}

func TestFileOrderRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFileOrderRepository(path, testLogger())

	_, err := repo.List(context.Background())
	var persistErr *apperrors.PersistenceError
	require.ErrorAs(t, err, &persistErr)

	err = repo.Append(context.Background(), testOrder(1700000000006))
	require.ErrorAs(t, err, &persistErr)
}

func TestFileOrderRepository_UnwritablePath(t *testing.T) {
	repo := NewFileOrderRepository(filepath.Join(t.TempDir(), "missing", "orders.json"), testLogger())

	err := repo.Append(context.Background(), testOrder(1700000000007))
	var persistErr *apperrors.PersistenceError
	require.ErrorAs(t, err, &persistErr)
}
