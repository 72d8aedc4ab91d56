package engine

import "errors"

var (
	// ErrInvalidProduct is returned when a product is created with a non-positive unit weight.
	ErrInvalidProduct = errors.New("product unit weight must be positive")

	// ErrUnpackableProduct is returned when a product's unit weight exceeds the
	// package weight cap; such a product could never ship and is rejected at
	// catalog time rather than deferred forever.
	ErrUnpackableProduct = errors.New("product unit weight exceeds package weight cap")

	// ErrProductNotFound is returned by catalog lookups for unknown ids.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidQuantity is returned when a restock entry carries a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrEmptyOrder is returned when an order carries no line items.
	ErrEmptyOrder = errors.New("order has no line items")

	// ErrEmptyRestock is returned when a restock call carries no entries.
	ErrEmptyRestock = errors.New("restock has no entries")
)
