package worker

import (
	"context"

	"fulfillment-service/internal/broker"
	"fulfillment-service/internal/models"
	"fulfillment-service/internal/util"

	"go.uber.org/zap"
)

// ShipmentWorker plays the carrier side of the shipping hand-off: it
// consumes PackageShipped events from the shipments topic and logs each
// package it "receives". The engine never waits on it.
type ShipmentWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	logger       *zap.Logger
}

// NewShipmentWorker creates a new shipment worker
func NewShipmentWorker(consumer *broker.Consumer) *ShipmentWorker {
	w := &ShipmentWorker{
		consumer: consumer,
		logger:   util.GetLogger(),
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnPackageShipped(w.handlePackageShipped)
	eventHandler.OnOrderDeferred(w.handleOrderDeferred)
	w.eventHandler = eventHandler

	return w
}

// Start starts the worker
func (w *ShipmentWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting shipment worker")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *ShipmentWorker) Stop() error {
	w.logger.Info("Stopping shipment worker")
	return w.consumer.Close()
}

func (w *ShipmentWorker) handlePackageShipped(ctx context.Context, event *models.PackageShippedEvent) error {
	w.logger.Info("Carrier received package",
		zap.String("event_id", event.EventID),
		zap.Int64("order_id", event.OrderID),
		zap.Int64("total_weight_g", event.TotalWeight),
		zap.Int("line_items", len(event.LineItems)))
	return nil
}

func (w *ShipmentWorker) handleOrderDeferred(ctx context.Context, event *models.OrderDeferredEvent) error {
	w.logger.Info("Carrier notified of deferred remainder",
		zap.String("event_id", event.EventID),
		zap.Int64("order_id", event.OrderID),
		zap.Int("line_items", len(event.Remainder)))
	return nil
}
