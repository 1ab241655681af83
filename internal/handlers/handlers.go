package handlers

import (
	"log/slog"

	"github.com/inkwell-books/orders-service/internal/config"
	"github.com/inkwell-books/orders-service/internal/service"
)

// Handlers holds all HTTP handlers for the orders service.
type Handlers struct {
	orderService *service.OrderService
	config       *config.Config
	logger       *slog.Logger
}

// NewHandlers creates a new handlers instance.
func NewHandlers(orderService *service.OrderService, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		orderService: orderService,
		config:       cfg,
		logger:       logger,
	}
}
