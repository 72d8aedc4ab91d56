package engine

import (
	"errors"
	"sync"

	"fulfillment-service/internal/models"
	"fulfillment-service/internal/util"

	"go.uber.org/zap"
)

// ShipmentNotifier is the capability the engine uses to hand packages to the
// external shipping collaborator. Implementations must not block: a slow or
// failing carrier must never stall ledger mutation.
type ShipmentNotifier interface {
	NotifyPackageShipped(pkg models.Package)
}

// Engine owns the catalog, the inventory ledger and the deferred demand
// queue. All operations are serialized through a single mutex so that
// fulfillment and restock passes always observe a consistent ledger.
type Engine struct {
	mu        sync.Mutex
	catalog   *Catalog
	ledger    *Ledger
	deferred  []models.DeferredOrder
	notifier  ShipmentNotifier
	weightCap int64
	logger    *zap.Logger
}

// New creates an engine with an empty catalog and ledger.
func New(weightCap int64, notifier ShipmentNotifier) *Engine {
	return &Engine{
		catalog:   NewCatalog(weightCap),
		ledger:    NewLedger(),
		notifier:  notifier,
		weightCap: weightCap,
		logger:    util.GetLogger(),
	}
}

// LoadCatalog seeds the catalog and zeroes a ledger entry per product.
func (e *Engine) LoadCatalog(products []models.Product) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.catalog.Load(products); err != nil {
		return err
	}
	for _, p := range products {
		e.ledger.Ensure(p.ID)
	}
	return nil
}

// AddProduct registers a new product and its zeroed ledger entry.
func (e *Engine) AddProduct(name string, unitWeight int64) (models.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	product, err := e.catalog.Add(name, unitWeight)
	if err != nil {
		return models.Product{}, err
	}
	e.ledger.Ensure(product.ID)

	e.logger.Info("Product added",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int64("mass_g", product.UnitWeight))
	return product, nil
}

// GetProduct looks up a product by id.
func (e *Engine) GetProduct(id int64) (models.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Get(id)
}

// ListProducts returns all products in insertion order.
func (e *Engine) ListProducts() []models.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.List()
}

// OnHand returns the current stock for a product, 0 if unknown.
func (e *Engine) OnHand(productID int64) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.OnHand(productID)
}

// InventorySnapshot returns a copy of all on-hand balances.
func (e *Engine) InventorySnapshot() map[int64]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Snapshot()
}

// DeferredOrders returns a deep-copied snapshot of the deferred demand queue.
func (e *Engine) DeferredOrders() []models.DeferredOrder {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.DeferredOrder, len(e.deferred))
	for i, d := range e.deferred {
		requested := make([]models.LineItem, len(d.Requested))
		copy(requested, d.Requested)
		out[i] = models.DeferredOrder{OrderID: d.OrderID, Requested: requested}
	}
	return out
}

// Fulfill runs one order through the engine: resolve stock, pack the
// shippable units, commit the ledger decrement, notify the carrier per
// package and defer any remainder. Empty orders return ErrEmptyOrder and
// touch no state.
func (e *Engine) Fulfill(order models.Order) (models.FulfillmentResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(order.Requested) == 0 {
		return models.FulfillmentResult{}, ErrEmptyOrder
	}
	for _, item := range order.Requested {
		if item.Quantity < 0 {
			return models.FulfillmentResult{}, ErrInvalidQuantity
		}
	}
	return e.fulfillLocked(order), nil
}

// Restock applies all entries, then runs exactly one replay pass over the
// deferred demand queue. If any entry is invalid nothing is applied. The
// returned results describe the replayed orders in queue order.
func (e *Engine) Restock(restocks []models.Restock) ([]models.FulfillmentResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(restocks) == 0 {
		return nil, ErrEmptyRestock
	}
	for _, r := range restocks {
		if r.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	for _, r := range restocks {
		if _, err := e.catalog.Get(r.ProductID); err != nil {
			// Permissive upsert: the ledger records stock for ids the
			// catalog has never seen.
			e.logger.Warn("Restock for unknown product",
				zap.Int64("product_id", r.ProductID),
				zap.Int("quantity", r.Quantity))
		}
		if err := e.ledger.Restock(r.ProductID, r.Quantity); err != nil {
			return nil, err
		}
	}

	return e.replayLocked(), nil
}

// replayLocked drains the deferred queue and re-runs every order against the
// current ledger, first-deferred-first-served. Remainders re-enter the queue
// in the same relative order via fulfillLocked.
func (e *Engine) replayLocked() []models.FulfillmentResult {
	if len(e.deferred) == 0 {
		return nil
	}

	queue := e.deferred
	e.deferred = nil

	results := make([]models.FulfillmentResult, 0, len(queue))
	for _, d := range queue {
		order := models.Order{OrderID: d.OrderID, Requested: d.Requested}
		results = append(results, e.fulfillLocked(order))
	}
	return results
}

func (e *Engine) fulfillLocked(order models.Order) models.FulfillmentResult {
	demand := make([]Demand, 0, len(order.Requested))
	var remainder []models.LineItem

	// Remaining availability per product within this order, so repeated
	// line items for the same product draw from the same stock instead of
	// each seeing the full undecremented balance.
	available := make(map[int64]int)

	for _, item := range order.Requested {
		if item.Quantity <= 0 {
			continue
		}

		product, err := e.catalog.Get(item.ProductID)
		if err != nil {
			// Unknown product: fully unshippable, no ledger mutation, the
			// rest of the order still ships.
			e.logger.Warn("Order references unknown product",
				zap.Int64("order_id", order.OrderID),
				zap.Int64("product_id", item.ProductID))
			remainder = append(remainder, item)
			continue
		}

		if _, ok := available[item.ProductID]; !ok {
			available[item.ProductID] = e.ledger.OnHand(item.ProductID)
		}
		shippable := item.Quantity
		if shippable > available[item.ProductID] {
			shippable = available[item.ProductID]
		}
		available[item.ProductID] -= shippable
		if short := item.Quantity - shippable; short > 0 {
			remainder = append(remainder, models.LineItem{ProductID: item.ProductID, Quantity: short})
		}
		if shippable > 0 {
			demand = append(demand, Demand{Product: product, Quantity: shippable})
		}
	}

	packages, unpackable := Pack(order.OrderID, demand, e.weightCap)

	// Units the packer could not place despite being in stock: report
	// distinctly and keep them in the remainder so demand is conserved.
	if len(unpackable) > 0 {
		for _, d := range demand {
			qty, ok := unpackable[d.Product.ID]
			if !ok {
				continue
			}
			delete(unpackable, d.Product.ID)
			e.logger.Warn("Product cannot fit any package",
				zap.Int64("order_id", order.OrderID),
				zap.Int64("product_id", d.Product.ID),
				zap.Int64("mass_g", d.Product.UnitWeight),
				zap.Int("quantity", qty))
			remainder = append(remainder, models.LineItem{ProductID: d.Product.ID, Quantity: qty})
		}
	}

	result := models.FulfillmentResult{
		OrderID:  order.OrderID,
		Shipped:  packages,
		Deferred: remainder,
	}

	// Commit stock as shipped before the carrier hand-off: the notification
	// is fire-and-forget and is never rolled back.
	for productID, qty := range result.ShippedUnits() {
		e.ledger.Decrement(productID, qty)
	}

	for _, pkg := range packages {
		e.logger.Info("Package shipped",
			zap.Int64("order_id", pkg.OrderID),
			zap.Int64("total_weight_g", pkg.TotalWeight),
			zap.Int("line_items", len(pkg.LineItems)))
		e.notifier.NotifyPackageShipped(pkg)
	}

	if len(remainder) > 0 {
		deferred := models.DeferredOrder{OrderID: order.OrderID, Requested: remainder}
		e.deferred = append(e.deferred, deferred)
		e.logger.Info("Order remainder deferred pending restock",
			zap.Int64("order_id", order.OrderID),
			zap.Int("line_items", len(remainder)))
	}

	return result
}

// IsValidation reports whether err is one of the engine's input validation
// errors, as opposed to an infrastructure failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidProduct) ||
		errors.Is(err, ErrUnpackableProduct) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrEmptyOrder) ||
		errors.Is(err, ErrEmptyRestock)
}
