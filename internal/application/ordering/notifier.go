package ordering

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tableside/backend/internal/domain/ordering"
	"github.com/tableside/backend/internal/domain/shared"
	"github.com/tableside/backend/internal/infrastructure/notification"
)

// Wire message types pushed to kitchen dashboards
const (
	MessageTypeOrderCreated = "order_created"
	MessageTypeOrderStatus  = "order_status"
)

// orderCreatedMessage is the wire payload for a newly placed order
type orderCreatedMessage struct {
	Type    string          `json:"type"`
	OrderID uuid.UUID       `json:"order_id"`
	TableID *uuid.UUID      `json:"table_id,omitempty"`
	Total   decimal.Decimal `json:"total"`
}

// orderStatusMessage is the wire payload for an order status transition
type orderStatusMessage struct {
	Type    string    `json:"type"`
	OrderID uuid.UUID `json:"order_id"`
	Status  string    `json:"status"`
}

// KitchenNotifier translates order domain events into wire messages and
// broadcasts them to connected kitchen dashboards. Broadcast is best-effort:
// a dead dashboard connection never affects order processing.
type KitchenNotifier struct {
	hub    *notification.Hub
	logger *zap.Logger
}

// NewKitchenNotifier creates a new KitchenNotifier
func NewKitchenNotifier(hub *notification.Hub, logger *zap.Logger) *KitchenNotifier {
	return &KitchenNotifier{
		hub:    hub,
		logger: logger,
	}
}

// EventTypes returns the event types this handler subscribes to
func (n *KitchenNotifier) EventTypes() []string {
	return []string{
		ordering.EventTypeOrderCreated,
		ordering.EventTypeOrderStatusChanged,
	}
}

// Handle converts a domain event to its wire payload and broadcasts it
func (n *KitchenNotifier) Handle(ctx context.Context, event shared.DomainEvent) error {
	var message interface{}

	switch e := event.(type) {
	case *ordering.OrderCreatedEvent:
		message = orderCreatedMessage{
			Type:    MessageTypeOrderCreated,
			OrderID: e.OrderID,
			TableID: e.TableID,
			Total:   e.Total,
		}
	case *ordering.OrderStatusChangedEvent:
		message = orderStatusMessage{
			Type:    MessageTypeOrderStatus,
			OrderID: e.OrderID,
			Status:  e.Status.String(),
		}
	default:
		return nil
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}

	n.hub.Broadcast(payload)

	n.logger.Debug("Kitchen notification broadcast",
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_id", event.AggregateID().String()),
	)

	return nil
}
