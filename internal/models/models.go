package models

// Product represents a product in the catalog
type Product struct {
	ID         int64  `json:"product_id"`
	Name       string `json:"product_name"`
	UnitWeight int64  `json:"mass_g"`
}

// LineItem represents a requested quantity of one product
type LineItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Order represents a hospital order as submitted
type Order struct {
	OrderID   int64      `json:"order_id"`
	Requested []LineItem `json:"requested"`
}

// Package is a weight-bounded shipping unit for one order.
// Invariant: TotalWeight never exceeds the configured package weight cap.
type Package struct {
	OrderID     int64      `json:"order_id"`
	LineItems   []LineItem `json:"line_items"`
	TotalWeight int64      `json:"total_weight_g"`
}

// DeferredOrder carries the unshippable remainder of an order,
// queued for retry on the next restock
type DeferredOrder struct {
	OrderID   int64      `json:"order_id"`
	Requested []LineItem `json:"requested"`
}

// Restock represents a single restock entry
type Restock struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// FulfillmentResult summarizes one pass of an order through the engine
type FulfillmentResult struct {
	OrderID  int64      `json:"order_id"`
	Shipped  []Package  `json:"shipped_packages"`
	Deferred []LineItem `json:"deferred_remainder"`
}

// ShippedUnits returns the total quantity shipped per product across all packages
func (r *FulfillmentResult) ShippedUnits() map[int64]int {
	units := make(map[int64]int)
	for _, pkg := range r.Shipped {
		for _, item := range pkg.LineItems {
			units[item.ProductID] += item.Quantity
		}
	}
	return units
}

// DeferredUnits returns the total deferred quantity per product
func (r *FulfillmentResult) DeferredUnits() map[int64]int {
	units := make(map[int64]int)
	for _, item := range r.Deferred {
		units[item.ProductID] += item.Quantity
	}
	return units
}
