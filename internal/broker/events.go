package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"fulfillment-service/internal/models"

	"github.com/segmentio/kafka-go"
)

// EventPublisher handles publishing domain events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishPackageShipped publishes a PackageShipped event
func (ep *EventPublisher) PublishPackageShipped(ctx context.Context, event *models.PackageShippedEvent) error {
	key := fmt.Sprintf("order-%d", event.OrderID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishOrderDeferred publishes an OrderDeferred event
func (ep *EventPublisher) PublishOrderDeferred(ctx context.Context, event *models.OrderDeferredEvent) error {
	key := fmt.Sprintf("order-%d", event.OrderID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishStockRestocked publishes a StockRestocked event
func (ep *EventPublisher) PublishStockRestocked(ctx context.Context, event *models.StockRestockedEvent) error {
	return ep.producer.PublishEvent(ctx, event.EventID, event)
}

// EventHandler routes consumed events to registered callbacks
type EventHandler struct {
	onPackageShipped func(context.Context, *models.PackageShippedEvent) error
	onOrderDeferred  func(context.Context, *models.OrderDeferredEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnPackageShipped registers a handler for PackageShipped events
func (eh *EventHandler) OnPackageShipped(handler func(context.Context, *models.PackageShippedEvent) error) {
	eh.onPackageShipped = handler
}

// OnOrderDeferred registers a handler for OrderDeferred events
func (eh *EventHandler) OnOrderDeferred(handler func(context.Context, *models.OrderDeferredEvent) error) {
	eh.onOrderDeferred = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	switch baseEvent.EventType {
	case models.EventTypePackageShipped:
		if eh.onPackageShipped != nil {
			var event models.PackageShippedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal PackageShipped event: %w", err)
			}
			return eh.onPackageShipped(ctx, &event)
		}

	case models.EventTypeOrderDeferred:
		if eh.onOrderDeferred != nil {
			var event models.OrderDeferredEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal OrderDeferred event: %w", err)
			}
			return eh.onOrderDeferred(ctx, &event)
		}

	default:
		log.Printf("Unhandled event type: %s", baseEvent.EventType)
	}

	return nil
}
