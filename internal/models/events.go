package models

import "time"

// Event types
const (
	EventTypePackageShipped = "PACKAGE_SHIPPED"
	EventTypeOrderDeferred  = "ORDER_DEFERRED"
	EventTypeStockRestocked = "STOCK_RESTOCKED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// PackageShippedEvent published for every package handed to the carrier
type PackageShippedEvent struct {
	BaseEvent
	OrderID     int64      `json:"order_id"`
	LineItems   []LineItem `json:"line_items"`
	TotalWeight int64      `json:"total_weight_g"`
}

// OrderDeferredEvent published when an order leaves an unshippable remainder
type OrderDeferredEvent struct {
	BaseEvent
	OrderID   int64      `json:"order_id"`
	Remainder []LineItem `json:"remainder"`
}

// StockRestockedEvent published after a restock call is applied
type StockRestockedEvent struct {
	BaseEvent
	Restocks []Restock `json:"restocks"`
}
