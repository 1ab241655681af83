package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/inkwell-books/orders-service/internal/clients"
	"github.com/inkwell-books/orders-service/internal/config"
	"github.com/inkwell-books/orders-service/internal/events"
	"github.com/inkwell-books/orders-service/internal/metrics"
	"github.com/inkwell-books/orders-service/internal/models"
	"github.com/inkwell-books/orders-service/internal/notify"
	"github.com/inkwell-books/orders-service/internal/repository"
)

// OrderService runs the order intake pipeline: validate, assign identity,
// durably record, then notify. Notification outcome never affects the result.
type OrderService struct {
	orderRepo     repository.OrderRepository
	orderCache    repository.OrderCache
	dispatcher    *notify.Dispatcher
	publisher     events.OrderEventPublisher
	gatewayClient *clients.HTTPGatewayClient
	config        *config.Config
	ids           *idGenerator
	logger        *slog.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	orderCache repository.OrderCache,
	dispatcher *notify.Dispatcher,
	publisher events.OrderEventPublisher,
	gatewayClient *clients.HTTPGatewayClient,
	cfg *config.Config,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		orderCache:    orderCache,
		dispatcher:    dispatcher,
		publisher:     publisher,
		gatewayClient: gatewayClient,
		config:        cfg,
		ids:           newIDGenerator(),
		logger:        logger,
	}
}

// SubmitOrder validates the submission, records the order, and queues the
// notifications. A ValidationError or PersistenceError aborts before any
// notification is attempted.
func (s *OrderService) SubmitOrder(ctx context.Context, req *models.CODOrderRequest) (*models.Order, error) {
	if err := ValidateCODOrderRequest(req); err != nil {
		metrics.ValidationFailures.Inc()
		return nil, err
	}

	order := models.Order{
		ID:        s.ids.next(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     strings.TrimSpace(req.Email),
		Address:   req.Address,
		Book:      req.Book,
		Payment:   models.PaymentCOD,
		Price:     effectivePrice(req.Price),
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.orderRepo.Append(ctx, order); err != nil {
		metrics.PersistenceFailures.Inc()
		s.logger.Error("failed to record order",
			"order_id", order.ID,
			"error", err,
		)
		return nil, err
	}

	metrics.OrdersCreated.Inc()

	if s.config.Features.EnableOrderCaching && s.orderCache != nil {
		if err := s.orderCache.Invalidate(ctx); err != nil {
			s.logger.Error("failed to invalidate order cache", "error", err)
		}
	}

	if s.config.Features.EnableOrderEvents && s.publisher != nil {
		if err := s.publisher.PublishOrderCreated(ctx, &order); err != nil {
			// Log but don't fail
			s.logger.Error("failed to publish order created event",
				"order_id", order.ID,
				"error", err,
			)
		}
	}

	s.dispatcher.NotifySeller(order)
	if order.Email != "" {
		s.dispatcher.NotifyBuyer(order)
	}

	s.logger.Info("order recorded",
		"order_id", order.ID,
		"book", order.Book,
		"price", order.Price,
	)

	return &order, nil
}

// ListOrders returns every recorded order in insertion order.
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	if s.config.Features.EnableOrderCaching && s.orderCache != nil {
		if orders, err := s.orderCache.Get(ctx); err == nil && orders != nil {
			return orders, nil
		}
	}

	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.config.Features.EnableOrderCaching && s.orderCache != nil {
		if err := s.orderCache.Set(ctx, orders); err != nil {
			s.logger.Error("failed to cache order list", "error", err)
		}
	}

	return orders, nil
}

// Gateway exposes the payment-gateway client for the online-payment path.
func (s *OrderService) Gateway() *clients.HTTPGatewayClient {
	return s.gatewayClient
}
