package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkwell-books/orders-service/internal/config"
	"github.com/inkwell-books/orders-service/internal/models"
)

const (
	orderListKey    = "orders:all"
	defaultCacheTTL = 5 * time.Minute
)

// RedisOrderCache caches the full order listing under a single key. The store
// is small enough that the listing is always cached whole; any append
// invalidates it.
type RedisOrderCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ OrderCache = (*RedisOrderCache)(nil)

func NewRedisOrderCache(cfg config.RedisConfig, logger *slog.Logger) *RedisOrderCache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	return &RedisOrderCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get retrieves the cached listing. A cache miss returns (nil, nil).
func (c *RedisOrderCache) Get(ctx context.Context) ([]models.Order, error) {
	data, err := c.client.Get(ctx, orderListKey).Bytes()
	if err == redis.Nil {
		c.logger.Debug("order list cache miss")
		return nil, nil
	}
	if err != nil {
		c.logger.Error("order list cache get error", "error", err)
		return nil, err
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, err
	}

	c.logger.Debug("order list cache hit", "count", len(orders))
	return orders, nil
}

// Set stores the listing with the configured TTL.
func (c *RedisOrderCache) Set(ctx context.Context, orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, orderListKey, data, c.ttl).Err(); err != nil {
		c.logger.Error("order list cache set error", "error", err)
		return err
	}

	return nil
}

// Invalidate drops the cached listing.
func (c *RedisOrderCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, orderListKey).Err()
}
