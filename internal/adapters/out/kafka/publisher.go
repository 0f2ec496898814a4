// Package kafka publishes order integration events to Kafka.
// Events are announcements of already-committed state; delivery failures are
// logged, never surfaced to the workflow that produced them.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// StatusChangedEvent is the wire format of the order.status.changed topic.
type StatusChangedEvent struct {
	EventID        string    `json:"event_id"`
	OrderID        string    `json:"order_id"`
	PreviousStatus string    `json:"previous_status"`
	CurrentStatus  string    `json:"current_status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// OrderStatusPublisher implements ports.OrderEventPublisher on a Kafka topic.
// Messages are keyed by order ID so consumers observe each order's changes
// in commit order.
type OrderStatusPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewOrderStatusPublisher creates a publisher writing to the given topic on
// the given broker host.
func NewOrderStatusPublisher(host, topic string, logger *slog.Logger) *OrderStatusPublisher {
	return &OrderStatusPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(host),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		logger: logger,
	}
}

// PublishStatusChanged announces that the order moved from previous to its
// current status. Failures are logged; the status change is already durable.
func (p *OrderStatusPublisher) PublishStatusChanged(
	ctx context.Context,
	aggregate *order.Order,
	previous order.Status,
) {
	event := StatusChangedEvent{
		EventID:        uuid.NewString(),
		OrderID:        aggregate.ID().String(),
		PreviousStatus: previous.String(),
		CurrentStatus:  aggregate.Status().String(),
		OccurredAt:     time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal status changed event",
			"order_id", event.OrderID, "error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  event.OccurredAt,
	})
	if err != nil {
		p.logger.Error("publish status changed event",
			"order_id", event.OrderID,
			"previous", event.PreviousStatus,
			"current", event.CurrentStatus,
			"error", err)
		return
	}

	p.logger.Info("published status changed event",
		"order_id", event.OrderID,
		"previous", event.PreviousStatus,
		"current", event.CurrentStatus)
}

// Close flushes and closes the underlying writer.
func (p *OrderStatusPublisher) Close() error {
	return p.writer.Close()
}
