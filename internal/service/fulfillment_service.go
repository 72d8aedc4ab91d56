package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment-service/internal/broker"
	"fulfillment-service/internal/engine"
	"fulfillment-service/internal/models"
	"fulfillment-service/internal/redisclient"
	"fulfillment-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FulfillmentService wraps the engine with validation, metrics, tracing,
// event publication and the Redis inventory mirror. All state lives in the
// engine; this layer is stateless.
type FulfillmentService struct {
	engine         *engine.Engine
	eventPublisher *broker.EventPublisher
	mirror         *redisclient.Client
	logger         *zap.Logger
}

// NewFulfillmentService creates a new fulfillment service. The event
// publisher and mirror may be nil, in which case those concerns are skipped.
func NewFulfillmentService(
	eng *engine.Engine,
	eventPublisher *broker.EventPublisher,
	mirror *redisclient.Client,
) *FulfillmentService {
	return &FulfillmentService{
		engine:         eng,
		eventPublisher: eventPublisher,
		mirror:         mirror,
		logger:         util.GetLogger(),
	}
}

// SubmitOrder accepts an order for fulfillment. An empty order is a logged
// no-op surfaced as engine.ErrEmptyOrder; anything else is accepted, fully
// or partially shipped, and the remainder deferred.
func (s *FulfillmentService) SubmitOrder(ctx context.Context, order models.Order) (models.FulfillmentResult, error) {
	ctx, span := util.StartSpan(ctx, "FulfillmentService.SubmitOrder")
	defer span.End()

	result, err := s.engine.Fulfill(order)
	if err != nil {
		util.OrdersRejectedTotal.WithLabelValues(orderRejectReason(err)).Inc()
		s.logger.Warn("Order rejected",
			zap.Int64("order_id", order.OrderID),
			zap.Error(err))
		return models.FulfillmentResult{}, err
	}

	util.OrdersAcceptedTotal.Inc()
	s.observeResult(ctx, &result)
	s.mirrorInventory()

	s.logger.Info("Order processed",
		zap.Int64("order_id", order.OrderID),
		zap.Int("packages", len(result.Shipped)),
		zap.Int("deferred_lines", len(result.Deferred)))
	return result, nil
}

// SubmitRestock applies a restock payload and replays deferred demand once.
func (s *FulfillmentService) SubmitRestock(ctx context.Context, restocks []models.Restock) error {
	ctx, span := util.StartSpan(ctx, "FulfillmentService.SubmitRestock")
	defer span.End()

	start := time.Now()
	replayed, err := s.engine.Restock(restocks)
	if err != nil {
		util.RestocksRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
		return fmt.Errorf("restock rejected: %w", err)
	}
	util.ReplayLatency.Observe(time.Since(start).Seconds())
	util.RestocksAppliedTotal.Inc()

	for i := range replayed {
		s.observeResult(ctx, &replayed[i])
	}
	s.mirrorInventory()

	if s.eventPublisher != nil {
		event := &models.StockRestockedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeStockRestocked,
				Timestamp: time.Now(),
			},
			Restocks: restocks,
		}
		if err := s.eventPublisher.PublishStockRestocked(ctx, event); err != nil {
			s.logger.Error("Failed to publish StockRestocked event", zap.Error(err))
		}
	}

	s.logger.Info("Restock applied",
		zap.Int("entries", len(restocks)),
		zap.Int("orders_replayed", len(replayed)))
	return nil
}

// AddProduct registers a new product in the catalog.
func (s *FulfillmentService) AddProduct(ctx context.Context, name string, unitWeight int64) (models.Product, error) {
	_, span := util.StartSpan(ctx, "FulfillmentService.AddProduct")
	defer span.End()

	product, err := s.engine.AddProduct(name, unitWeight)
	if err != nil {
		return models.Product{}, err
	}
	util.ProductsAddedTotal.Inc()
	s.mirrorInventory()
	return product, nil
}

// ListProducts returns the catalog in insertion order.
func (s *FulfillmentService) ListProducts(ctx context.Context) []models.Product {
	return s.engine.ListProducts()
}

// GetProduct looks up one product.
func (s *FulfillmentService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return s.engine.GetProduct(id)
}

// ListDeferredOrders returns a snapshot of outstanding deferred demand.
func (s *FulfillmentService) ListDeferredOrders(ctx context.Context) []models.DeferredOrder {
	return s.engine.DeferredOrders()
}

// observeResult records metrics and publishes the deferred event for one
// fulfillment pass. Package hand-off itself happens inside the engine via
// the shipment notifier.
func (s *FulfillmentService) observeResult(ctx context.Context, result *models.FulfillmentResult) {
	for _, pkg := range result.Shipped {
		util.PackagesShippedTotal.Inc()
		util.PackageWeightGrams.Observe(float64(pkg.TotalWeight))
	}
	for _, qty := range result.ShippedUnits() {
		util.UnitsShippedTotal.Add(float64(qty))
	}
	for _, qty := range result.DeferredUnits() {
		util.UnitsDeferredTotal.WithLabelValues("out_of_stock").Add(float64(qty))
	}
	util.DeferredQueueDepth.Set(float64(len(s.engine.DeferredOrders())))

	if s.eventPublisher != nil && len(result.Deferred) > 0 {
		event := &models.OrderDeferredEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeOrderDeferred,
				Timestamp: time.Now(),
			},
			OrderID:   result.OrderID,
			Remainder: result.Deferred,
		}
		if err := s.eventPublisher.PublishOrderDeferred(ctx, event); err != nil {
			s.logger.Error("Failed to publish OrderDeferred event",
				zap.Int64("order_id", result.OrderID),
				zap.Error(err))
		}
	}
}

// mirrorInventory pushes the current balances to Redis in the background.
// Best effort: the engine never depends on the mirror.
func (s *FulfillmentService) mirrorInventory() {
	if s.mirror == nil {
		return
	}
	snapshot := s.engine.InventorySnapshot()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.mirror.MirrorSnapshot(ctx, snapshot); err != nil {
			s.logger.Error("Failed to mirror inventory to Redis", zap.Error(err))
		}
	}()
}

func orderRejectReason(err error) string {
	switch {
	case errors.Is(err, engine.ErrEmptyOrder):
		return "empty_order"
	case errors.Is(err, engine.ErrInvalidQuantity):
		return "invalid_quantity"
	default:
		return "error"
	}
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, engine.ErrEmptyRestock):
		return "empty_restock"
	case errors.Is(err, engine.ErrInvalidQuantity):
		return "invalid_quantity"
	default:
		return "error"
	}
}
