package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inkwell-books/orders-service/internal/clients"
	"github.com/inkwell-books/orders-service/internal/config"
	"github.com/inkwell-books/orders-service/internal/events"
	"github.com/inkwell-books/orders-service/internal/handlers"
	"github.com/inkwell-books/orders-service/internal/notify"
	"github.com/inkwell-books/orders-service/internal/repository"
	"github.com/inkwell-books/orders-service/internal/server"
	"github.com/inkwell-books/orders-service/internal/service"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "orders-service")
	slog.SetDefault(logger)

	logger.Info("starting orders-service", "port", cfg.Server.Port)

	orderRepo := repository.NewFileOrderRepository(cfg.Store.OrdersFile, logger)

	var orderCache repository.OrderCache
	if cfg.Features.EnableOrderCaching {
		orderCache = repository.NewRedisOrderCache(cfg.Redis, logger)
	}

	emailClient := clients.NewHTTPEmailClient(cfg.Email, logger)
	messagingClient := clients.NewHTTPMessagingClient(cfg.Messaging, logger)
	gatewayClient := clients.NewHTTPGatewayClient(cfg.Gateway, logger)

	var publisher events.OrderEventPublisher
	if cfg.Features.EnableOrderEvents {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka, logger)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	dispatcher := notify.NewDispatcher(
		emailClient,
		messagingClient,
		cfg.Email.Sender,
		cfg.Messaging.SellerPhone,
		cfg.Notification.QueueSize,
		logger,
	)

	orderService := service.NewOrderService(
		orderRepo,
		orderCache,
		dispatcher,
		publisher,
		gatewayClient,
		cfg,
		logger,
	)

	h := handlers.NewHandlers(orderService, cfg, logger)

	srv := server.New(h, cfg)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	dispatcher.Close()

	logger.Info("server exited")
}
