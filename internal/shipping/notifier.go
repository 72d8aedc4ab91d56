package shipping

import (
	"context"
	"time"

	"fulfillment-service/internal/broker"
	"fulfillment-service/internal/models"
	"fulfillment-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogNotifier is the stand-in shipping collaborator: it only logs the
// hand-off. Useful for local runs and tests without a broker.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a log-only notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{logger: util.GetLogger()}
}

// NotifyPackageShipped logs the package hand-off
func (n *LogNotifier) NotifyPackageShipped(pkg models.Package) {
	n.logger.Info("Shipping collaborator notified",
		zap.Int64("order_id", pkg.OrderID),
		zap.Int64("total_weight_g", pkg.TotalWeight),
		zap.Int("line_items", len(pkg.LineItems)))
}

// KafkaNotifier hands packages to the carrier by publishing PackageShipped
// events. The engine-facing call never blocks: packages are queued on a
// buffered channel drained by a background goroutine, and are dropped (with
// a metric) if the buffer is full. Publish failures are logged, never
// retried and never surfaced to the engine.
type KafkaNotifier struct {
	publisher *broker.EventPublisher
	queue     chan models.Package
	done      chan struct{}
	logger    *zap.Logger
}

// NewKafkaNotifier creates a notifier draining into the given publisher
func NewKafkaNotifier(publisher *broker.EventPublisher, bufferSize int) *KafkaNotifier {
	n := &KafkaNotifier{
		publisher: publisher,
		queue:     make(chan models.Package, bufferSize),
		done:      make(chan struct{}),
		logger:    util.GetLogger(),
	}
	go n.drain()
	return n
}

// NotifyPackageShipped enqueues the package for publication
func (n *KafkaNotifier) NotifyPackageShipped(pkg models.Package) {
	select {
	case n.queue <- pkg:
	default:
		util.ShipmentNotifyDroppedTotal.Inc()
		n.logger.Error("Shipment notification dropped, buffer full",
			zap.Int64("order_id", pkg.OrderID))
	}
}

// Close stops the drain goroutine after the queue is emptied
func (n *KafkaNotifier) Close() {
	close(n.queue)
	<-n.done
}

func (n *KafkaNotifier) drain() {
	defer close(n.done)

	for pkg := range n.queue {
		event := &models.PackageShippedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypePackageShipped,
				Timestamp: time.Now(),
			},
			OrderID:     pkg.OrderID,
			LineItems:   pkg.LineItems,
			TotalWeight: pkg.TotalWeight,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := n.publisher.PublishPackageShipped(ctx, event); err != nil {
			util.ShipmentNotifyFailedTotal.Inc()
			n.logger.Error("Failed to publish PackageShipped event",
				zap.Int64("order_id", pkg.OrderID),
				zap.Error(err))
		}
		cancel()
	}
}
