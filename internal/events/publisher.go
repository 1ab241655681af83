package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/inkwell-books/orders-service/internal/config"
	"github.com/inkwell-books/orders-service/internal/models"
)

// EventType represents the type of order event.
type EventType string

const (
	EventTypeOrderCreated EventType = "order.created"
)

// OrderEvent is the envelope published for each order lifecycle event.
type OrderEvent struct {
	ID        string          `json:"id"`
	Type      EventType       `json:"type"`
	OrderID   int64           `json:"order_id"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// OrderEventPublisher publishes order lifecycle events.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
	Close() error
}

// KafkaPublisher publishes order events to Kafka. Publishing is best-effort;
// callers log failures and move on.
type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
	logger *slog.Logger
}

var _ OrderEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrdersTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{
		writer: writer,
		topic:  cfg.OrdersTopic,
		logger: logger,
	}
}

// PublishOrderCreated publishes an order created event.
func (p *KafkaPublisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}

	event := &OrderEvent{
		ID:        uuid.NewString(),
		Type:      EventTypeOrderCreated,
		OrderID:   order.ID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.ID),
		Value: eventData,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "event_id", Value: []byte(event.ID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish event",
			"event_id", event.ID,
			"event_type", event.Type,
			"order_id", event.OrderID,
			"error", err,
		)
		return err
	}

	p.logger.Info("event published",
		"event_id", event.ID,
		"event_type", event.Type,
		"order_id", event.OrderID,
	)
	return nil
}

// Close closes the Kafka writer.
func (p *KafkaPublisher) Close() error {
	p.logger.Info("closing event publisher")
	return p.writer.Close()
}

// MockEventPublisher records events for tests.
type MockEventPublisher struct {
	Events []*OrderEvent
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{Events: make([]*OrderEvent, 0)}
}

func (m *MockEventPublisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	m.Events = append(m.Events, &OrderEvent{
		Type:    EventTypeOrderCreated,
		OrderID: order.ID,
	})
	return nil
}

func (m *MockEventPublisher) Close() error {
	return nil
}
